package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	App struct {
		Port      string `toml:"port"`
		BaseUrl   string `toml:"base_url"`
		LogLevel  string `toml:"log_level"`
		StaticDir string `toml:"static_dir"`
		// TrustedProxies are IPs or CIDR ranges of reverse proxies whose
		// X-Forwarded-For header is honoured.
		TrustedProxies []string `toml:"trusted_proxies"`
	} `toml:"app"`

	Store struct {
		// Driver is "supabase" or "sqlite".
		Driver      string `toml:"driver"`
		SupabaseUrl string `toml:"supabase_url"`
		DBApiKey    string `toml:"db_api_key"`
		Table       string `toml:"table"`
		SQLitePath  string `toml:"sqlite_path"`
	} `toml:"store"`

	Images struct {
		UnsplashAccessKey string `toml:"unsplash_access_key"`
		PerQuery          int    `toml:"per_query"`
	} `toml:"images"`

	Email struct {
		ResendApiKey string `toml:"resend_api_key"`
		From         string `toml:"from"`
	} `toml:"email"`

	Analytics struct {
		PostHogApiKey string `toml:"posthog_api_key"`
	} `toml:"analytics"`

	Jobs struct {
		TimeoutSeconds int `toml:"timeout_seconds"`
	} `toml:"jobs"`

	RateLimit struct {
		SubmitPerSecond float64 `toml:"submit_per_second"`
		SubmitBurst     int     `toml:"submit_burst"`
	} `toml:"rate_limit"`
}

// Load reads the TOML file at path, applies environment overrides and
// defaults, and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
	}

	applyEnv(&cfg, os.Getenv)
	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnv(c *Config, getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.App.Port, "GOPORT")
	set(&c.App.BaseUrl, "BASE_URL")
	set(&c.App.LogLevel, "LOG_LEVEL")
	set(&c.Store.Driver, "STORE_DRIVER")
	set(&c.Store.SupabaseUrl, "SUPABASE_URL")
	set(&c.Store.DBApiKey, "DB_API_KEY")
	set(&c.Store.SQLitePath, "SQLITE_PATH")
	set(&c.Images.UnsplashAccessKey, "UNSPLASH_ACCESS_KEY")
	set(&c.Email.ResendApiKey, "RESEND_API_KEY")
	set(&c.Email.From, "EMAIL_FROM")
	set(&c.Analytics.PostHogApiKey, "POSTHOG_API_KEY")

	if v := getenv("TRUSTED_PROXIES"); v != "" {
		c.App.TrustedProxies = strings.Split(v, ",")
	}
}

func applyDefaults(c *Config) {
	if c.App.Port == "" {
		c.App.Port = "8000"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.StaticDir == "" {
		c.App.StaticDir = "static"
	}
	if c.Store.Driver == "" {
		if c.Store.SupabaseUrl != "" {
			c.Store.Driver = "supabase"
		} else {
			c.Store.Driver = "sqlite"
		}
	}
	c.Store.Driver = strings.ToLower(c.Store.Driver)
	if c.Store.Table == "" {
		c.Store.Table = "design_kit_submissions"
	}
	if c.Store.SQLitePath == "" {
		c.Store.SQLitePath = "designkit.db"
	}
	if c.Images.PerQuery <= 0 {
		c.Images.PerQuery = 3
	}
	if c.Email.From == "" {
		c.Email.From = "Design Kit <noreply@appin30days.com>"
	}
	if c.Jobs.TimeoutSeconds <= 0 {
		c.Jobs.TimeoutSeconds = 60
	}
	if c.RateLimit.SubmitPerSecond <= 0 {
		c.RateLimit.SubmitPerSecond = 0.2
	}
	if c.RateLimit.SubmitBurst <= 0 {
		c.RateLimit.SubmitBurst = 5
	}
}

func validate(c *Config) error {
	switch c.Store.Driver {
	case "supabase":
		if c.Store.SupabaseUrl == "" {
			return errors.New("store.supabase_url is required for the supabase driver")
		}
		if c.Store.DBApiKey == "" {
			slog.Error("DB_API_KEY environment variable not set")
		}
	case "sqlite":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	for _, entry := range c.App.TrustedProxies {
		if err := checkProxy(strings.TrimSpace(entry)); err != nil {
			return fmt.Errorf("app.trusted_proxies: %w", err)
		}
	}

	if c.Email.ResendApiKey != "" && c.App.BaseUrl == "" {
		return errors.New("app.base_url is required when email is enabled")
	}

	if c.Images.UnsplashAccessKey == "" {
		slog.Warn("UNSPLASH_ACCESS_KEY not set - mood boards will be empty")
	}
	if c.Email.ResendApiKey == "" {
		slog.Warn("RESEND_API_KEY not set - results emails will be skipped")
	}

	return nil
}

func checkProxy(entry string) error {
	if entry == "" {
		return nil
	}
	if strings.Contains(entry, "/") {
		_, err := netip.ParsePrefix(entry)
		return err
	}
	_, err := netip.ParseAddr(entry)
	return err
}

func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
