package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Database   DatabaseConfig
	Cache      CacheConfig
	Metrics    MetricsConfig
	RateLimit  RateLimitConfig
	Pprof      PprofConfig
	App        AppConfig
	Validation ValidationConfig
	Fetch      FetchConfig
	Storage    StorageConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"profiles"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type CacheConfig struct {
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"20"`
	SessionTTL  time.Duration `env:"CACHE_SESSION_TTL" envDefault:"5m"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"true"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"1"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"5"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type AppConfig struct {
	BasePath string `env:"BASE_PATH" envDefault:""`
}

type ValidationConfig struct {
	AllowedHosts       []string `env:"ALLOWED_IMAGE_HOSTS" envDefault:"imgur.com,images.example.com" envSeparator:","`
	MaxURLLength       int      `env:"MAX_URL_LENGTH" envDefault:"2048"`
	MaxRequestBodySize string   `env:"MAX_REQUEST_BODY_SIZE" envDefault:"16K"`
}

type FetchConfig struct {
	Timeout         time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
	DialTimeout     time.Duration `env:"FETCH_DIAL_TIMEOUT" envDefault:"5s"`
	MaxBytes        int64         `env:"FETCH_MAX_BYTES" envDefault:"5242880"`
	MaxRedirects    int           `env:"FETCH_MAX_REDIRECTS" envDefault:"3"`
	UserAgent       string        `env:"FETCH_USER_AGENT" envDefault:"profileimage/1.0"`
	AllowPrivateIPs bool          `env:"FETCH_ALLOW_PRIVATE_IPS" envDefault:"false"`
}

type StorageConfig struct {
	UploadDir        string        `env:"UPLOAD_DIR" envDefault:"frontend/dist/frontend/assets/public/images/uploads"`
	PublicPrefix     string        `env:"UPLOAD_PUBLIC_PREFIX" envDefault:"/assets/public/images/uploads"`
	OperationTimeout time.Duration `env:"PROFILE_IMAGE_TIMEOUT" envDefault:"15s"`
}

var ErrTimeoutOrder = errors.New("FETCH_TIMEOUT must be shorter than PROFILE_IMAGE_TIMEOUT")

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.Fetch.Timeout >= cfg.Storage.OperationTimeout {
		return nil, fmt.Errorf("%w: fetch %s, operation %s",
			ErrTimeoutOrder, cfg.Fetch.Timeout, cfg.Storage.OperationTimeout)
	}
	return &cfg, nil
}
