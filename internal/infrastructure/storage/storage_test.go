package storage

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ulysse/cms-api/internal/infrastructure/config"
)

func testConfig(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.Store.Driver = driver
	cfg.Store.ConnectTimeout = 200 * time.Millisecond
	cfg.Mongo.URI = "mongodb://127.0.0.1:1/?directConnection=true"
	cfg.Mongo.Database = "test"
	cfg.Postgres.URL = "postgres://nobody@127.0.0.1:1/test?sslmode=disable&connect_timeout=1"
	return cfg
}

func TestOpenMemory(t *testing.T) {
	b := Open(context.Background(), testConfig(DriverMemory), zerolog.Nop())
	if b.Name != DriverMemory {
		t.Fatalf("Name = %q, want memory", b.Name)
	}
	if b.Users == nil || b.Contacts == nil {
		t.Fatal("memory backend should expose users and contacts")
	}
	if err := b.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if err := b.Close(context.Background()); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestOpenFallsBackWhenDurableUnreachable(t *testing.T) {
	for _, driver := range []string{DriverMongo, DriverPostgres} {
		t.Run(driver, func(t *testing.T) {
			b := Open(context.Background(), testConfig(driver), zerolog.Nop())
			if b.Name != DriverMemory {
				t.Errorf("Name = %q, want fallback to memory", b.Name)
			}
		})
	}
}

func TestOpenDurableReportsFailure(t *testing.T) {
	if _, err := OpenDurable(context.Background(), testConfig(DriverPostgres)); err == nil {
		t.Error("OpenDurable() error = nil, want connection error")
	}
	if _, err := OpenDurable(context.Background(), testConfig("sqlite")); err == nil {
		t.Error("OpenDurable() error = nil for unknown driver")
	}
}
