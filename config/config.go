package config

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        string         `yaml:"port"`
	MongoString string         `yaml:"-"`
	DBName      string         `yaml:"db_name"`
	CORSOrigins []string       `yaml:"cors_origins"`
	Timezone    string         `yaml:"timezone"`
	LogLevel    string         `yaml:"log_level"`
	Env         string         `yaml:"env"`
	Calendar    CalendarConfig `yaml:"calendar"`
	Seed        SeedConfig     `yaml:"seed"`

	PasetoSecret string `yaml:"-"`
	VaultSecret  string `yaml:"-"`
}

// CalendarConfig holds the credentials of the external calendar syncer.
type CalendarConfig struct {
	Email      string        `yaml:"email"`
	Password   string        `yaml:"-"`
	TimeoutRaw string        `yaml:"timeout"`
	Timeout    time.Duration `yaml:"-"`
}

type SeedConfig struct {
	Admin         bool   `yaml:"admin"`
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"-"`
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadConfig loads configuration from .env, the optional YAML file at CONFIG_PATH and the
// process environment, in that order of precedence (environment wins).
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not loaded (might not exist in production): %v", err)
	}

	cfg := &AppConfig{
		Port:        "8000",
		DBName:      "ops-backend-db",
		CORSOrigins: defaultOrigins,
		Timezone:    "UTC",
		LogLevel:    "info",
		Env:         "production",
		Calendar:    CalendarConfig{TimeoutRaw: "5s"},
		Seed:        SeedConfig{AdminUsername: "admin"},
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse yaml: %w", err)
	}
	return nil
}

func (c *AppConfig) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.MongoString = getEnv("MONGOSTRING", c.MongoString)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.Timezone = getEnv("TIMEZONE", c.Timezone)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Env = getEnv("APP_ENV", c.Env)
	c.PasetoSecret = getEnv("PASETO_SECRET", c.PasetoSecret)
	c.VaultSecret = getEnv("VAULT_SECRET", c.VaultSecret)
	c.Calendar.Email = getEnv("GOOGLE_CALENDAR_EMAIL", c.Calendar.Email)
	c.Calendar.Password = getEnv("GOOGLE_CALENDAR_PASSWORD", c.Calendar.Password)
	c.Seed.Admin = getEnv("SEED_ADMIN", fmt.Sprint(c.Seed.Admin)) == "true"
	c.Seed.AdminUsername = getEnv("ADMIN_USERNAME", c.Seed.AdminUsername)
	c.Seed.AdminPassword = getEnv("ADMIN_PASSWORD", c.Seed.AdminPassword)

	if origins, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		c.CORSOrigins = splitList(origins)
	}
}

func (c *AppConfig) validate() error {
	if c.MongoString == "" {
		return fmt.Errorf("config: MONGOSTRING must be set")
	}
	if c.Port == "" {
		return fmt.Errorf("config: port must be set")
	}
	if _, err := DecodeKey(c.PasetoSecret); err != nil {
		return fmt.Errorf("config: PASETO_SECRET: %w", err)
	}
	if _, err := DecodeKey(c.VaultSecret); err != nil {
		return fmt.Errorf("config: VAULT_SECRET: %w", err)
	}
	timeout, err := time.ParseDuration(c.Calendar.TimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: calendar.timeout: %w", err)
	}
	c.Calendar.Timeout = timeout
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: timezone: %w", err)
	}
	if c.Seed.Admin && c.Seed.AdminPassword == "" {
		return fmt.Errorf("config: ADMIN_PASSWORD must be set when SEED_ADMIN=true")
	}
	return nil
}

// IsDevelopment reports whether the app runs with APP_ENV=development.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// DecodeKey decodes a base64 secret (URL or standard alphabet, with or without padding) and
// checks it is exactly 32 bytes long.
func DecodeKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("secret is empty")
	}

	encodings := []*base64.Encoding{
		base64.URLEncoding,
		base64.RawURLEncoding,
		base64.StdEncoding,
		base64.RawStdEncoding,
	}

	var lastErr error
	for _, enc := range encodings {
		key, err := enc.DecodeString(secret)
		if err != nil {
			lastErr = err
			continue
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("must be exactly 32 bytes after base64 decoding, got %d", len(key))
		}
		return key, nil
	}
	return nil, fmt.Errorf("not valid base64: %w", lastErr)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
