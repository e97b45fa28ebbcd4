package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "carstock.db", cfg.DBPath)
	require.Equal(t, "uploaded_images", cfg.UploadDir)
	require.Equal(t, "unit-test-secret", cfg.JWTSecret)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "9999")
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("TOKEN_TTL_MINUTES", "5")

	cfg := Load()

	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, "/tmp/other.db", cfg.DBPath)
	require.Equal(t, 5*time.Minute, cfg.TokenTTL)
}

func TestLoadIgnoresBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("TOKEN_TTL_MINUTES", "not-a-number")

	cfg := Load()
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
}
