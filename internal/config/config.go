package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Поддерживаемые бэкенды хранилища сессий
const (
	SessionBackendMemory   = "memory"
	SessionBackendPostgres = "postgres"
	SessionBackendRedis    = "redis"
)

// Переменные окружения, перекрывающие значения из config.toml
const (
	EnvAPIBaseURL     = "STOREFRONT_API_BASE_URL"
	EnvSessionBackend = "STOREFRONT_SESSION_BACKEND"
	EnvHTTPPort       = "STOREFRONT_HTTP_PORT"
	EnvDatabasePass   = "STOREFRONT_DB_PASSWORD"
	EnvRedisPassword  = "STOREFRONT_REDIS_PASSWORD"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	ExperienceAPI ExperienceAPIConfig `toml:"experience_api"`
	Session       SessionConfig       `toml:"session"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
	CORS          CORSConfig          `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ExperienceAPIConfig настройки удаленного API каталога и бронирований
// Timeout в секундах, 0 - используется поведение транспорта по умолчанию
type ExperienceAPIConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"`
}

type SessionConfig struct {
	Backend       string `toml:"backend"`
	TTLMinutes    int    `toml:"ttl_minutes"`
	PurgeSchedule string `toml:"purge_schedule"`
	CookieName    string `toml:"cookie_name"`
	SecureCookie  bool   `toml:"secure_cookie"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RateLimitConfig ограничение частоты проверок промокодов на одну сессию
type RateLimitConfig struct {
	PromoPerMinute int `toml:"promo_per_minute"`
	PromoBurst     int `toml:"promo_burst"`
}

// CORSConfig доступ SPA с другого origin
// AllowCredentials требует явного списка origin: браузер не отправит cookie на "*"
type CORSConfig struct {
	AllowedOrigins   []string `toml:"allowed_origins"`
	AllowCredentials bool     `toml:"allow_credentials"`
}

// Load читает конфигурацию из TOML-файла
// Перед чтением подгружается .env (если есть), затем применяются переопределения из окружения
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.ExperienceAPI.BaseURL = v
	}
	if v := os.Getenv(EnvSessionBackend); v != "" {
		c.Session.Backend = v
	}
	if v := os.Getenv(EnvHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", ErrInvalidConfig, EnvHTTPPort)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv(EnvDatabasePass); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		c.Redis.Password = v
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "storefront"
	}
	if c.Session.Backend == "" {
		c.Session.Backend = SessionBackendMemory
	}
	if c.Session.TTLMinutes == 0 {
		c.Session.TTLMinutes = 60
	}
	if c.Session.PurgeSchedule == "" {
		c.Session.PurgeSchedule = "@every 5m"
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "storefront_session"
	}
	if c.RateLimit.PromoPerMinute == 0 {
		c.RateLimit.PromoPerMinute = 20
	}
	if c.RateLimit.PromoBurst == 0 {
		c.RateLimit.PromoBurst = 5
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ExperienceAPI.BaseURL) == "" {
		return fmt.Errorf("%w: experience_api.base_url is required", ErrInvalidConfig)
	}
	if c.ExperienceAPI.Timeout < 0 {
		return fmt.Errorf("%w: experience_api.timeout must not be negative", ErrInvalidConfig)
	}
	if c.Session.TTLMinutes < 0 {
		return fmt.Errorf("%w: session.ttl_minutes must not be negative", ErrInvalidConfig)
	}

	if c.CORS.AllowCredentials {
		if len(c.CORS.AllowedOrigins) == 0 {
			return fmt.Errorf("%w: cors.allowed_origins is required when cors.allow_credentials is set", ErrInvalidConfig)
		}
		for _, origin := range c.CORS.AllowedOrigins {
			if strings.TrimSpace(origin) == "*" {
				return fmt.Errorf("%w: cors.allowed_origins must not contain \"*\" when cors.allow_credentials is set", ErrInvalidConfig)
			}
		}
	}

	switch c.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres sessions", ErrInvalidConfig)
		}
	case SessionBackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis sessions", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown session backend %q", ErrInvalidConfig, c.Session.Backend)
	}

	return nil
}
