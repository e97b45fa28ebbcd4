package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	Env       string
	DBPath    string
	UploadDir string
	JWTSecret string
	TokenTTL  time.Duration
}

func Load() Config {
	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		DBPath:    getEnv("DB_PATH", "carstock.db"),
		UploadDir: getEnv("UPLOAD_DIR", "uploaded_images"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
	}

	// No baked-in fallback: a missing secret would make every deployment share one.
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
