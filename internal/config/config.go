package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = 8080
	defaultTokenTTL     = 15 * time.Minute
	defaultSwapiBaseURL = "https://swapi.dev/api"
)

type Config struct {
	Port int

	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBAdminUser     string
	DBAdminPassword string

	AccessTokenSecret []byte
	AccessTokenTTL    time.Duration

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string
	SwapiBaseURL       string
}

// Load reads the process environment. A .env file in the working directory is
// loaded first when present; variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:            defaultPort,
		DBAdminUser:     os.Getenv("DB_ADMIN_USER"),
		DBAdminPassword: os.Getenv("DB_ADMIN_PASSWORD"),
		AccessTokenTTL:  defaultTokenTTL,
		LogLevel:        getenvDefault("LOG_LEVEL", "info"),
		LogFormat:       getenvDefault("LOG_FORMAT", "text"),
		SwapiBaseURL:    strings.TrimRight(getenvDefault("SWAPI_BASE_URL", defaultSwapiBaseURL), "/"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("PORT must be a positive integer, got %q", v)
		}
		cfg.Port = port
	}

	required := []struct {
		name string
		dst  *string
	}{
		{"DB_HOST", &cfg.DBHost},
		{"DB_PORT", &cfg.DBPort},
		{"DB_USERNAME", &cfg.DBUser},
		{"DB_PASSWORD", &cfg.DBPassword},
		{"DB_DATABASE", &cfg.DBName},
	}
	for _, r := range required {
		v := os.Getenv(r.name)
		if v == "" {
			return nil, fmt.Errorf("%s environment variable is required", r.name)
		}
		*r.dst = v
	}

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET environment variable is required")
	}
	cfg.AccessTokenSecret = []byte(secret)

	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be a positive duration, got %q", v)
		}
		cfg.AccessTokenTTL = ttl
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	return cfg, nil
}

// DSN returns the application connection string.
func (c *Config) DSN() string {
	return postgresURL(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// AdminDSN returns a connection string to the maintenance database using the
// admin credentials, or "" when they are not configured.
func (c *Config) AdminDSN() string {
	if c.DBAdminUser == "" || c.DBAdminPassword == "" {
		return ""
	}
	return postgresURL(c.DBAdminUser, c.DBAdminPassword, c.DBHost, c.DBPort, "postgres")
}

func postgresURL(user, password, host, port, database string) string {
	userInfo := url.UserPassword(user, password)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		host,
		port,
		url.PathEscape(database),
	)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
