package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Драйверы хранилища
const (
	StorageDriverPostgres = "postgres"
	StorageDriverFile     = "file"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Storage  StorageConfig  `toml:"storage"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Identity IdentityConfig `toml:"identity"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type StorageConfig struct {
	Driver   string `toml:"driver"`    // postgres | file
	FilePath string `toml:"file_path"` // используется драйвером file
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type IdentityConfig struct {
	URL        string `toml:"url"`
	ServiceKey string `toml:"service_key"`
	JWTSecret  string `toml:"jwt_secret"`
	Timeout    int    `toml:"timeout"` // секунды
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

type BookingConfig struct {
	Timezone           string   `toml:"timezone"` // имя IANA, пустое значение означает локальное время сервера
	RateLimitPerMinute int      `toml:"rate_limit_per_minute"`
	RateLimitBurst     int      `toml:"rate_limit_burst"`
	TrustedProxies     []string `toml:"trusted_proxies"` // CIDR reverse proxy, которым разрешено задавать X-Forwarded-For

	location *time.Location
}

// Location таймзона бронирований
func (c BookingConfig) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// Load читает TOML файл, затем применяет .env и переменные окружения для секретов
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Storage: StorageConfig{
			Driver:   StorageDriverPostgres,
			FilePath: "data/db.json",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "cleanclick-booking",
		},
		Identity: IdentityConfig{
			Timeout: 5,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  60,
		},
		Booking: BookingConfig{
			RateLimitPerMinute: 30,
			RateLimitBurst:     5,
		},
	}
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"DB_PASSWORD":          &cfg.Database.Password,
		"IDENTITY_SERVICE_KEY": &cfg.Identity.ServiceKey,
		"IDENTITY_JWT_SECRET":  &cfg.Identity.JWTSecret,
		"REDIS_PASSWORD":       &cfg.Redis.Password,
		"BOOKING_TIMEZONE":     &cfg.Booking.Timezone,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres:
	case StorageDriverFile:
		if c.Storage.FilePath == "" {
			return fmt.Errorf("%w: storage.file_path is required for the file driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Booking.RateLimitPerMinute < 0 || c.Booking.RateLimitBurst < 0 {
		return fmt.Errorf("%w: booking rate limit must be non-negative", ErrInvalidConfig)
	}
	if c.Booking.RateLimitPerMinute > 0 && c.Booking.RateLimitBurst < 1 {
		return fmt.Errorf("%w: booking.rate_limit_burst must be at least 1 when rate limiting is on", ErrInvalidConfig)
	}
	for _, cidr := range c.Booking.TrustedProxies {
		if _, err := netip.ParsePrefix(cidr); err != nil {
			return fmt.Errorf("%w: booking.trusted_proxies: %v", ErrInvalidConfig, err)
		}
	}

	if c.Booking.Timezone != "" {
		loc, err := time.LoadLocation(c.Booking.Timezone)
		if err != nil {
			return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
		}
		c.Booking.location = loc
	}

	return nil
}
