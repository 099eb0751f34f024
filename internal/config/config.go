package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// DefaultSessionSecret signs sessions when SESSION_SECRET is unset.
const DefaultSessionSecret = "change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServiceName string
	LogLevel    string
	ServerPort  string

	DBDriver string
	DBDSN    string

	RedisAddr string
	RedisDB   int
	RedisPass string

	SessionSecret string
	SessionTTL    time.Duration
	SessionCookie string
	SecureCookie  bool

	BcryptCost         int
	PasswordValidation bool
	PasswordMinLength  int

	SearchCaseInsensitive bool

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "taxiservice"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),

		DBDriver: getEnv("DB_DRIVER", "mysql"),
		DBDSN:    getEnv("DB_DSN", "user:password@tcp(localhost:3306)/taxi?charset=utf8mb4&parseTime=True&loc=Local"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   cast.ToInt(getEnv("REDIS_DB", "0")),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		SessionSecret: getEnv("SESSION_SECRET", DefaultSessionSecret),
		SessionTTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionCookie: getEnv("SESSION_COOKIE", "session"),
		SecureCookie:  cast.ToBool(getEnv("SESSION_SECURE_COOKIE", "false")),

		BcryptCost:         cast.ToInt(getEnv("BCRYPT_COST", "10")),
		PasswordValidation: cast.ToBool(getEnv("PASSWORD_VALIDATION", "true")),
		PasswordMinLength:  cast.ToInt(getEnv("PASSWORD_MIN_LENGTH", "8")),

		SearchCaseInsensitive: cast.ToBool(getEnv("SEARCH_CASE_INSENSITIVE", "false")),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

// UsesDefaultSessionSecret reports whether sessions are signed with the built-in key.
func (c *Config) UsesDefaultSessionSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := cast.ToDurationE(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
