package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config contains runtime settings for the intelligence server
type Config struct {
	LogLevel        string        `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	Host            string        `yaml:"host"`                             // default 0.0.0.0
	Port            string        `yaml:"port" validate:"required,numeric"` // default PORT env or 3000
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`

	SerpAPI struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url" validate:"required,url"`
		Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	} `yaml:"serpapi"`

	RateLimit struct {
		RPS   float64 `yaml:"rps" validate:"gte=0"` // 0 disables limiting
		Burst int     `yaml:"burst" validate:"gte=0"`
	} `yaml:"rate_limit"`

	Sheets struct {
		CredentialsPath string `yaml:"credentials_path"`
		DefaultTab      string `yaml:"default_tab" validate:"required"`
	} `yaml:"sheets"`
}

// Default returns the built-in settings
func Default() Config {
	var cfg Config
	cfg.LogLevel = "info"
	cfg.Host = "0.0.0.0"
	cfg.Port = "3000"
	cfg.ShutdownTimeout = 10 * time.Second
	cfg.SerpAPI.BaseURL = "https://serpapi.com/search"
	cfg.SerpAPI.Timeout = 30 * time.Second
	cfg.RateLimit.RPS = 5
	cfg.RateLimit.Burst = 10
	cfg.Sheets.DefaultTab = "Intelligence"
	return cfg
}

// Load builds config from defaults, the optional CONFIG_FILE yaml overlay,
// and environment variables, in that order.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("config: invalid settings: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address, host:port
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func overlayFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.Host, "HOST")
	setString(&cfg.Port, "PORT")
	setString(&cfg.SerpAPI.APIKey, "SERP_API_KEY")
	setString(&cfg.SerpAPI.BaseURL, "SERPAPI_BASE_URL")
	setString(&cfg.Sheets.CredentialsPath, "GOOGLE_SHEETS_CREDENTIALS_PATH")
	setString(&cfg.Sheets.DefaultTab, "GOOGLE_SHEETS_TAB")

	var errs []error

	if v := os.Getenv("SERPAPI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("SERPAPI_TIMEOUT: %w", err))
		}
		cfg.SerpAPI.Timeout = d
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS: %w", err))
		}
		cfg.RateLimit.RPS = rps
	}

	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST: %w", err))
		}
		cfg.RateLimit.Burst = burst
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
