package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort    int
	MetricsPort int

	PostgresHost string
	PostgresPort int
	PostgresUser string
	PostgresPass string
	PostgresDB   string

	// RedisAddr switches carts to Redis persistence when set; otherwise
	// carts live in JSON files under CartDir.
	RedisAddr string
	CartDir   string

	MigrationsURL string
	Currency      string
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		MetricsPort: getEnvInt("METRICS_PORT", 9090),

		PostgresHost: getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvInt("POSTGRES_PORT", 5432),
		PostgresUser: getEnv("POSTGRES_USER", "mandi"),
		PostgresPass: getEnv("POSTGRES_PASSWORD", "mandipassword"),
		PostgresDB:   getEnv("POSTGRES_DB", "mandi_db"),

		RedisAddr: getEnv("REDIS_ADDR", ""),
		CartDir:   getEnv("CART_DIR", "./data/carts"),

		MigrationsURL: getEnv("MIGRATIONS_URL", "file://migrations"),
		Currency:      getEnv("CURRENCY", "INR"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
