package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds everything the app reads from the environment.
type Settings struct {
	Env           string
	Port          string
	DBDriver      string
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	AdminToken    string
	CacheTTL      time.Duration
}

// Init loads .env (if any) and reads Settings from the environment.
func Init() (Settings, error) {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv reads Settings without touching .env files.
func FromEnv() (Settings, error) {
	s := Settings{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", "8080"),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBDSN:         getEnv("DB_DSN", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminToken:    getEnv("ADMIN_TOKEN", ""),
		CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_SECONDS", 20)) * time.Second,
	}

	if s.DBDSN == "" {
		return s, errors.New("DB_DSN is not set")
	}
	if s.JWTSecret == "" {
		return s, errors.New("JWT_SECRET is not set")
	}
	switch s.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return s, errors.New("DB_DRIVER must be one of mysql, postgres, sqlite")
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
