package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SESSION_STORE", "")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api", cfg.API.BaseURL)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.AutocompleteDebounce)
	assert.Equal(t, "rollback", cfg.Notifications.Reconcile)
	assert.Equal(t, "vi", cfg.UI.DefaultLanguage)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("API_BASE_URL", "https://walkingguide.onrender.com/api")
	t.Setenv("AUTOCOMPLETE_DEBOUNCE", "150ms")
	t.Setenv("SESSION_SECURE_COOKIE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://walkingguide.onrender.com/api", cfg.API.BaseURL)
	assert.Equal(t, 150*time.Millisecond, cfg.UI.AutocompleteDebounce)
	assert.True(t, cfg.Session.SecureCookie)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
api:
  base_url: ${TEST_API_HOST}/api
notifications:
  reconcile: refetch
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("TEST_API_HOST", "https://api.example.com")
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "refetch", cfg.Notifications.Reconcile)
	// untouched keys keep their environment defaults
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API:           APIConfig{BaseURL: "http://localhost:3000/api"},
			Session:       SessionConfig{Store: "memory", CookieName: "s", TTL: time.Hour},
			Notifications: NotificationsConfig{Reconcile: "rollback"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/api" }, false},
		{"unknown store", func(c *Config) { c.Session.Store = "redis" }, false},
		{"postgres without host", func(c *Config) { c.Session.Store = "postgres"; c.Database.Name = "db" }, false},
		{"postgres complete", func(c *Config) {
			c.Session.Store = "postgres"
			c.Database.Host = "localhost"
			c.Database.Name = "db"
		}, true},
		{"bad reconcile", func(c *Config) { c.Notifications.Reconcile = "ignore" }, false},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
