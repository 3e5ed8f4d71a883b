package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "designkit.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_File(t *testing.T) {
	t.Setenv("GOPORT", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("TRUSTED_PROXIES", "")

	path := writeConfig(t, `
[app]
port = "9000"
base_url = "https://kit.example.com"
log_level = "debug"
trusted_proxies = ["10.0.0.0/8"]

[store]
driver = "Supabase"
supabase_url = "https://abc.supabase.co"
db_api_key = "key"

[images]
per_query = 2

[rate_limit]
submit_per_second = 1.5
submit_burst = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "https://kit.example.com", cfg.App.BaseUrl)
	assert.Equal(t, "supabase", cfg.Store.Driver)
	assert.Equal(t, "design_kit_submissions", cfg.Store.Table)
	assert.Equal(t, 2, cfg.Images.PerQuery)
	assert.Equal(t, 1.5, cfg.RateLimit.SubmitPerSecond)
	assert.Equal(t, 3, cfg.RateLimit.SubmitBurst)
	assert.Equal(t, 60, cfg.Jobs.TimeoutSeconds)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.App.TrustedProxies)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "[app\nport = "))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GOPORT":              "7000",
		"BASE_URL":            "https://kit.example.com",
		"TRUSTED_PROXIES":     "10.0.0.0/8, 192.0.2.1",
		"SUPABASE_URL":        "https://env.supabase.co",
		"DB_API_KEY":          "db-key",
		"UNSPLASH_ACCESS_KEY": "unsplash",
		"RESEND_API_KEY":      "re_1",
		"POSTHOG_API_KEY":     "phc_1",
	}

	var cfg Config
	cfg.App.Port = "9000"
	cfg.Email.From = "Kit <kit@example.com>"

	applyEnv(&cfg, func(k string) string { return env[k] })
	applyDefaults(&cfg)

	assert.Equal(t, "7000", cfg.App.Port)
	assert.Equal(t, "supabase", cfg.Store.Driver)
	assert.Equal(t, "db-key", cfg.Store.DBApiKey)
	assert.Equal(t, "unsplash", cfg.Images.UnsplashAccessKey)
	assert.Equal(t, "re_1", cfg.Email.ResendApiKey)
	assert.Equal(t, "Kit <kit@example.com>", cfg.Email.From)
	assert.Equal(t, "phc_1", cfg.Analytics.PostHogApiKey)
	assert.Equal(t, []string{"10.0.0.0/8", " 192.0.2.1"}, cfg.App.TrustedProxies)
	require.NoError(t, validate(&cfg))
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "designkit.db", cfg.Store.SQLitePath)
	assert.Equal(t, 3, cfg.Images.PerQuery)
	assert.Equal(t, "Design Kit <noreply@appin30days.com>", cfg.Email.From)
	assert.Equal(t, 0.2, cfg.RateLimit.SubmitPerSecond)
	assert.Equal(t, 5, cfg.RateLimit.SubmitBurst)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestValidate(t *testing.T) {
	var cfg Config
	cfg.Store.Driver = "postgres"
	applyDefaults(&cfg)
	assert.ErrorContains(t, validate(&cfg), `unknown store driver "postgres"`)

	cfg = Config{}
	cfg.Store.Driver = "supabase"
	applyDefaults(&cfg)
	assert.ErrorContains(t, validate(&cfg), "supabase_url")
}

func TestValidate_EmailNeedsBaseUrl(t *testing.T) {
	var cfg Config
	cfg.Email.ResendApiKey = "re_1"
	applyDefaults(&cfg)
	assert.ErrorContains(t, validate(&cfg), "app.base_url is required")

	cfg.App.BaseUrl = "https://kit.example.com"
	assert.NoError(t, validate(&cfg))
}

func TestValidate_TrustedProxies(t *testing.T) {
	var cfg Config
	cfg.App.TrustedProxies = []string{"10.0.0.0/8", "::1"}
	applyDefaults(&cfg)
	assert.NoError(t, validate(&cfg))

	cfg.App.TrustedProxies = []string{"lb.internal"}
	assert.ErrorContains(t, validate(&cfg), "app.trusted_proxies")
}
