package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Postgres  PostgresConfig  `json:"postgres"`
	Redis     RedisConfig     `json:"redis"`
	Gemini    GeminiConfig    `json:"gemini"`
	Geocoder  GeocoderConfig  `json:"geocoder"`
	Scraper   ScraperConfig   `json:"scraper"`
	Cache     CacheConfig     `json:"cache"`
	Resources ResourcesConfig `json:"resources"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type GeminiConfig struct {
	APIKey  string        `json:"api_key,omitempty"`
	Model   string        `json:"model"`
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

type GeocoderConfig struct {
	BaseURL string `json:"base_url"`
	// UserAgent is the fixed client identifier sent on every outbound
	// request, required by the Nominatim usage policy.
	UserAgent string        `json:"user_agent"`
	Timeout   time.Duration `json:"timeout"`
}

type ScraperConfig struct {
	URL      string        `json:"url"`
	MaxItems int           `json:"max_items"`
	Timeout  time.Duration `json:"timeout"`
}

type CacheConfig struct {
	// Scraped news goes stale quickly; verification verdicts are treated
	// as far more stable.
	UpdatesTTL      time.Duration `json:"updates_ttl"`
	VerificationTTL time.Duration `json:"verification_ttl"`
}

type ResourcesConfig struct {
	RadiusMeters float64 `json:"radius_meters"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "disaster_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
			Timeout: getEnvDuration("GEMINI_TIMEOUT", 15*time.Second),
		},
		Geocoder: GeocoderConfig{
			BaseURL:   getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: getEnv("GEOCODER_USER_AGENT", "DisasterResponsePlatform/1.0 (ops@disaster-response.example)"),
			Timeout:   getEnvDuration("GEOCODER_TIMEOUT", 10*time.Second),
		},
		Scraper: ScraperConfig{
			URL:      getEnv("SCRAPER_URL", "https://www.fema.gov/news-releases"),
			MaxItems: getEnvInt("SCRAPER_MAX_ITEMS", 5),
			Timeout:  getEnvDuration("SCRAPER_TIMEOUT", 15*time.Second),
		},
		Cache: CacheConfig{
			UpdatesTTL:      getEnvDuration("CACHE_UPDATES_TTL", 1*time.Hour),
			VerificationTTL: getEnvDuration("CACHE_VERIFICATION_TTL", 24*time.Hour),
		},
		Resources: ResourcesConfig{
			RadiusMeters: getEnvFloat("RESOURCES_RADIUS_METERS", 10000),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("gemini_model", cfg.Gemini.Model),
		slog.String("geocoder", cfg.Geocoder.BaseURL))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Geocoder.UserAgent == "" {
		return errors.New("GEOCODER_USER_AGENT required")
	}

	if c.Cache.UpdatesTTL <= 0 || c.Cache.VerificationTTL <= 0 {
		return errors.New("cache TTLs must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
