package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Бэкенды хранилища турниров.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreR2       = "r2"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort   int    `yaml:"server_port"`
	StoreBackend string `yaml:"store_backend"`
	DatabaseURL  string `yaml:"database_url"`
	JWTSecretKey string `yaml:"jwt_secret_key"`

	R2 R2Config `yaml:"r2"`

	CORSAllowedOrigins  []string      `yaml:"cors_allowed_origins"`
	RateLimitRPS        float64       `yaml:"rate_limit_rps"`
	RateLimitBurst      int           `yaml:"rate_limit_burst"`
	RevealFrameInterval time.Duration `yaml:"reveal_frame_interval"`

	DefaultGroupCount int `yaml:"default_group_count"`
	DefaultGroupSize  int `yaml:"default_group_size"`
}

type R2Config struct {
	AccountID       string `yaml:"account_id"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	BucketName      string `yaml:"bucket_name"`
	Endpoint        string `yaml:"endpoint"`
	Prefix          string `yaml:"prefix"`
}

func defaults() Config {
	return Config{
		ServerPort:          8080,
		StoreBackend:        StoreMemory,
		RateLimitRPS:        5,
		RateLimitBurst:      20,
		RevealFrameInterval: 150 * time.Millisecond,
		DefaultGroupCount:   models.DefaultGroupCount,
		DefaultGroupSize:    models.DefaultGroupSize,
		R2:                  R2Config{Prefix: "tournaments"},
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем YAML-файл (если path не пустой
// и файл существует), затем .env и переменные окружения. Окружение важнее файла.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// файла нет: работаем на окружении
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.StoreBackend, "STORE_BACKEND")
	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.JWTSecretKey, "JWT_SECRET_KEY")
	setString(&cfg.R2.AccountID, "R2_ACCOUNT_ID")
	setString(&cfg.R2.AccessKeyID, "R2_ACCESS_KEY_ID")
	setString(&cfg.R2.SecretAccessKey, "R2_SECRET_ACCESS_KEY")
	setString(&cfg.R2.BucketName, "R2_BUCKET_NAME")
	setString(&cfg.R2.Endpoint, "R2_ENDPOINT")
	setString(&cfg.R2.Prefix, "R2_PREFIX")

	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		cfg.CORSAllowedOrigins = splitList(v)
	}

	var err error
	if cfg.ServerPort, err = envInt("SERVER_PORT", cfg.ServerPort); err != nil {
		return err
	}
	if cfg.RateLimitBurst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return err
	}
	if cfg.DefaultGroupCount, err = envInt("DEFAULT_GROUP_COUNT", cfg.DefaultGroupCount); err != nil {
		return err
	}
	if cfg.DefaultGroupSize, err = envInt("DEFAULT_GROUP_SIZE", cfg.DefaultGroupSize); err != nil {
		return err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimitRPS, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS environment variable: %w", err)
		}
	}
	if v := os.Getenv("REVEAL_FRAME_INTERVAL"); v != "" {
		if cfg.RevealFrameInterval, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid REVEAL_FRAME_INTERVAL environment variable: %w", err)
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	switch c.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	case StoreR2:
		if c.R2.BucketName == "" || c.R2.AccessKeyID == "" || c.R2.SecretAccessKey == "" {
			return errors.New("R2_BUCKET_NAME, R2_ACCESS_KEY_ID and R2_SECRET_ACCESS_KEY are required for the r2 store")
		}
		if c.R2.AccountID == "" && c.R2.Endpoint == "" {
			return errors.New("R2_ACCOUNT_ID or R2_ENDPOINT is required for the r2 store")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (memory, postgres, r2)", c.StoreBackend)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return errors.New("rate limit values must not be negative")
	}
	if c.RevealFrameInterval < 0 {
		return errors.New("REVEAL_FRAME_INTERVAL must not be negative")
	}
	if c.DefaultGroupCount < 1 || c.DefaultGroupSize < 1 {
		return fmt.Errorf("default group layout must be at least 1x1, got %dx%d", c.DefaultGroupCount, c.DefaultGroupSize)
	}
	return nil
}

// TournamentDefaults - настройки для турниров, у которых своих ещё нет.
func (c *Config) TournamentDefaults() models.TournamentSettings {
	s := models.DefaultSettings()
	s.GroupCount = c.DefaultGroupCount
	s.GroupSize = c.DefaultGroupSize
	return s
}
