package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig `yaml:"server"`

	// Backend REST API configuration
	API APIConfig `yaml:"api"`

	// Session configuration
	Session SessionConfig `yaml:"session"`

	// Database configuration (only used by the postgres session store)
	Database DatabaseConfig `yaml:"database"`

	// Notification bell configuration
	Notifications NotificationsConfig `yaml:"notifications"`

	// UI configuration
	UI UIConfig `yaml:"ui"`

	// Logging configuration
	Log LogConfig `yaml:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// APIConfig holds the settings of the remote REST API
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// SessionConfig holds session store and cookie settings
type SessionConfig struct {
	Store           string        `yaml:"store"` // "memory" or "postgres"
	CookieName      string        `yaml:"cookie_name"`
	TTL             time.Duration `yaml:"ttl"`
	SecureCookie    bool          `yaml:"secure_cookie"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	MigrationsPath  string        `yaml:"migrations_path"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	User         string        `yaml:"user"`
	Password     string        `yaml:"password"`
	Name         string        `yaml:"name"`
	SSLMode      string        `yaml:"sslmode"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	MaxLifetime  time.Duration `yaml:"max_lifetime"`
}

// NotificationsConfig holds notification bell settings
type NotificationsConfig struct {
	Reconcile string `yaml:"reconcile"` // "rollback" or "refetch"
}

// UIConfig holds per-session UI settings
type UIConfig struct {
	DefaultLanguage      string        `yaml:"default_language"`
	AutocompleteDebounce time.Duration `yaml:"autocomplete_debounce"`
	StateIdleTTL         time.Duration `yaml:"state_idle_ttl"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "pretty"
}

// Load reads configuration from environment variables, a local .env file and,
// when CONFIG_FILE is set, a YAML file whose values override the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:3000/api"),
			Timeout: getDurationEnv("API_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			Store:           getEnv("SESSION_STORE", "memory"),
			CookieName:      getEnv("SESSION_COOKIE", "wg_session"),
			TTL:             getDurationEnv("SESSION_TTL", 7*24*time.Hour),
			SecureCookie:    getBoolEnv("SESSION_SECURE_COOKIE", false),
			CleanupInterval: getDurationEnv("SESSION_CLEANUP_INTERVAL", time.Hour),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "walkingguide_web"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Notifications: NotificationsConfig{
			Reconcile: getEnv("NOTIFICATIONS_RECONCILE", "rollback"),
		},
		UI: UIConfig{
			DefaultLanguage:      getEnv("DEFAULT_LANGUAGE", "vi"),
			AutocompleteDebounce: getDurationEnv("AUTOCOMPLETE_DEBOUNCE", 300*time.Millisecond),
			StateIdleTTL:         getDurationEnv("UI_STATE_IDLE_TTL", 2*time.Hour),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// overlayFile decodes a YAML file on top of the already populated config.
// ${VAR} references inside the file are expanded from the environment.
func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.API.BaseURL)
	}
	switch c.Session.Store {
	case "memory":
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres session store")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required for the postgres session store")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be one of: memory, postgres")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE is required")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Notifications.Reconcile != "rollback" && c.Notifications.Reconcile != "refetch" {
		return fmt.Errorf("NOTIFICATIONS_RECONCILE must be one of: rollback, refetch")
	}
	if c.UI.AutocompleteDebounce < 0 {
		return fmt.Errorf("AUTOCOMPLETE_DEBOUNCE must not be negative")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
