package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort               string
	DatabaseDSN            string
	CORSOrigins            string
	RateLimitMax           int    // requests per window, per path
	RateLimitWindowSeconds int
}

const defaultDSN = "host=localhost user=postgres password=postgres dbname=recipecost port=5432 sslmode=disable"

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:            getEnv("DATABASE_DSN", defaultDSN),
		CORSOrigins:            getEnv("CORS_ALLOWED_ORIGINS", "*"),
		RateLimitMax:           getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
	}

	if cfg.DatabaseDSN == defaultDSN {
		log.Println("[WARN] DATABASE_DSN is using the default value, set your own Postgres connection string for production.")
	}
	if cfg.CORSOrigins == "*" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS allows every origin, restrict it for production.")
	}

	return cfg
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
	if err != nil || n <= 0 {
		log.Printf("[WARN] %s=%q is not a positive integer, using default %d", key, v, def)
		return def
	}
	return n
}
