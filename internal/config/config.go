package config

import (
	"fmt"
	"os"
	"strconv"
)

// DevJWTSecret is the placeholder secret used when running with APP_ENV=dev
// and no JWT_SECRET set. It is rejected in any other posture.
const DevJWTSecret = "dev-only-insecure-secret"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env         string
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SwaggerHost string
}

// Load builds Config from environment. The signing secret has no usable
// default outside the dev posture: an empty or placeholder JWT_SECRET is a
// startup error, not a runtime fallback.
func Load() (*Config, error) {
	cfg := &Config{
		Env:         getEnv("APP_ENV", "dev"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}

	if cfg.Env == "dev" {
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = DevJWTSecret
		}
		return cfg, nil
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV=%s", cfg.Env)
	}
	if cfg.JWTSecret == DevJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET is the dev placeholder; refusing to start with APP_ENV=%s", cfg.Env)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
