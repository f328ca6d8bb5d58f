package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_ADMIN_API_URL", "")
	os.Unsetenv("STORE_ADMIN_API_URL")
	t.Setenv("STORE_ADMIN_HTTP_TIMEOUT", "")
	os.Unsetenv("STORE_ADMIN_HTTP_TIMEOUT")
	t.Setenv("STORE_ADMIN_DEBUG", "")
	os.Unsetenv("STORE_ADMIN_DEBUG")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/api", cfg.APIURL)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.False(t, cfg.Debug)
}

func TestLoad_FromEnvFile(t *testing.T) {
	t.Setenv("STORE_ADMIN_API_URL", "")
	os.Unsetenv("STORE_ADMIN_API_URL")

	envFile := filepath.Join(t.TempDir(), "console.env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("STORE_ADMIN_API_URL=https://tienda.example.com/api\nSTORE_ADMIN_HTTP_TIMEOUT=5s\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	require.Equal(t, "https://tienda.example.com/api", cfg.APIURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
}
