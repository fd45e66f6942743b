package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// DefaultSecretKey is used when SECRET_KEY is unset. Tokens signed with it
// are forgeable by anyone who reads the source, so callers should warn.
const DefaultSecretKey = "your-default-secret-key"

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth      AuthConfig
	Store     StoreConfig
	Mongo     MongoConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	HTTP      HTTPConfig
	Contact   ContactConfig
}

type AuthConfig struct {
	SecretKey  string        `env:"SECRET_KEY, default=your-default-secret-key"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,  default=30m"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
}

type StoreConfig struct {
	// Driver selects the credential store: mongo, postgres or memory.
	Driver         string        `env:"STORE_DRIVER,          default=mongo"`
	ConnectTimeout time.Duration `env:"STORE_CONNECT_TIMEOUT, default=5s"`
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGODB_DB,  default=ulysse_cms"`
}

type PostgresConfig struct {
	URL string `env:"POSTGRES_URL, default=postgres://localhost:5432/ulysse_cms?sslmode=disable"`
}

type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED, default=false"`
	Addr     string `env:"REDIS_ADDR,    default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,      default=0"`
}

type RateLimitConfig struct {
	Enabled         bool `env:"RATE_LIMIT_ENABLED,          default=true"`
	DefaultPerHour  int  `env:"RATE_LIMIT_DEFAULT_PER_HOUR, default=50"`
	DefaultPerDay   int  `env:"RATE_LIMIT_DEFAULT_PER_DAY,  default=200"`
	RegisterPerHour int  `env:"RATE_LIMIT_REGISTER_PER_HOUR, default=5"`
	LoginPerHour    int  `env:"RATE_LIMIT_LOGIN_PER_HOUR,   default=10"`
}

type HTTPConfig struct {
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`
	BodyLimit   string   `env:"BODY_LIMIT,   default=1M"`
	// TrustedProxies lists the CIDRs whose X-Forwarded-For is believed.
	// Empty means clients are identified by their socket address.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// TrustedProxyNets parses TrustedProxies. A bare IP is read as a single host.
func (h HTTPConfig) TrustedProxyNets() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(h.TrustedProxies))
	for _, raw := range h.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			ip := net.ParseIP(raw)
			if ip == nil {
				return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q", raw)
			}
			bits := 8 * net.IPv6len
			if ip.To4() != nil {
				ip, bits = ip.To4(), 8*net.IPv4len
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", raw, err)
		}
		nets = append(nets, n)
	}
	return nets, nil
}

type ContactConfig struct {
	Workers   int `env:"CONTACT_WORKERS,    default=2"`
	QueueSize int `env:"CONTACT_QUEUE_SIZE, default=64"`
}

// IsDevelopment reports whether ENV selects development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// UsesDefaultSecret reports whether tokens are signed with DefaultSecretKey.
func (c *Config) UsesDefaultSecret() bool {
	return c.Auth.SecretKey == DefaultSecretKey
}

// Load reads a .env file when one exists and then the process environment.
// Variables already set in the environment win over .env entries.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "mongo", "postgres", "memory":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Auth.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.Contact.Workers < 1 {
		return errors.New("CONTACT_WORKERS must be at least 1")
	}
	if _, err := c.HTTP.TrustedProxyNets(); err != nil {
		return err
	}
	return nil
}
