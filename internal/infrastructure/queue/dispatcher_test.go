package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ulysse/cms-api/internal/core/domain"
)

type recordingService struct {
	mu    sync.Mutex
	seen  []string
	block chan struct{}
}

func (s *recordingService) Process(_ context.Context, sub domain.ContactSubmission) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, sub.ID)
	return nil
}

func (s *recordingService) ids() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.seen...)
}

func TestDispatcherProcessesPerSenderInOrder(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, 16, svc, zerolog.Nop())
	d.Start(context.Background())

	for _, id := range []string{"1", "2", "3", "4", "5"} {
		if err := d.Enqueue(context.Background(), domain.ContactSubmission{ID: id, Email: "same@example.com"}); err != nil {
			t.Fatalf("Enqueue(%s) error = %v", id, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	got := svc.ids()
	want := []string{"1", "2", "3", "4", "5"}
	if len(got) != len(want) {
		t.Fatalf("processed %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("processed %v, want %v", got, want)
		}
	}
}

func TestDispatcherQueueFull(t *testing.T) {
	svc := &recordingService{block: make(chan struct{})}
	d := NewDispatcher(1, 1, svc, zerolog.Nop())
	d.Start(context.Background())

	sub := domain.ContactSubmission{Email: "a@example.com"}
	var full bool
	for i := 0; i < 3; i++ {
		if err := d.Enqueue(context.Background(), sub); errors.Is(err, ErrQueueFull) {
			full = true
			break
		}
	}
	if !full {
		t.Fatal("expected ErrQueueFull once the single-slot buffer is occupied")
	}

	close(svc.block)
	if err := d.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}

func TestDispatcherRejectsAfterShutdown(t *testing.T) {
	d := NewDispatcher(1, 1, &recordingService{}, zerolog.Nop())
	d.Start(context.Background())
	if err := d.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := d.Shutdown(context.Background()); err != nil {
		t.Fatalf("second Shutdown() error = %v", err)
	}
	if err := d.Enqueue(context.Background(), domain.ContactSubmission{}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("Enqueue after Shutdown = %v, want ErrQueueClosed", err)
	}
}

func TestShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, 1, &recordingService{}, zerolog.Nop())
	first := d.shardIndex("ana@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("ana@example.com"); got != first {
			t.Fatalf("shardIndex changed from %d to %d", first, got)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shardIndex out of range: %d", first)
	}
}
