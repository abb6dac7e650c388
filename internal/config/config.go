package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName     = "EscuelaAPI"
	defaultAppEnv      = "development"
	defaultPort        = "5000"
	defaultLogLevel    = "info"
	defaultDBHost      = "127.0.0.1"
	defaultDBPort      = "5432"
	defaultDBUser      = "postgres"
	defaultDBPassword  = "12345678"
	defaultDBName      = "examen1"
	defaultDBConnLimit = 5
	defaultTokenTTL    = time.Hour
	defaultShutdown    = 10 * time.Second

	// Development-only fallback. Load refuses to start with it outside a
	// development environment.
	devJWTSecret = "clave_secreta_examen"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBConnLimit    int
	JWTSecret      string
	TokenTTL       time.Duration
	ShutdownPeriod time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DBHost:         getEnv("DB_HOST", defaultDBHost),
		DBPort:         getEnv("DB_PORT", defaultDBPort),
		DBUser:         getEnv("DB_USER", defaultDBUser),
		DBPassword:     getEnv("DB_PASSWORD", defaultDBPassword),
		DBName:         getEnv("DB_NAME", defaultDBName),
		DBConnLimit:    defaultDBConnLimit,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       defaultTokenTTL,
		ShutdownPeriod: defaultShutdown,
	}

	if v := os.Getenv("DB_CONN_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid DB_CONN_LIMIT: %q", v)
		}
		cfg.DBConnLimit = n
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownPeriod = d
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDev() {
			return Config{}, fmt.Errorf("JWT_SECRET must be set when APP_ENV=%s", cfg.AppEnv)
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

// IsDev reports whether the environment is a local development one.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
