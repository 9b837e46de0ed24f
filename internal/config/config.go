package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	AppPort string
	AppEnv  string

	JWTSecret string
	TokenTTL  time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		AppPort:       os.Getenv("APP_PORT"),
		AppEnv:        os.Getenv("APP_ENV"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      ttlFromEnv(),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       intFromEnv("REDIS_DB", 0),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}

	return cfg
}

// ttlFromEnv reads the token lifetime in hours, defaulting to 24.
func ttlFromEnv() time.Duration {
	hours := intFromEnv("TOKEN_TTL_HOURS", 24)
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func intFromEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
