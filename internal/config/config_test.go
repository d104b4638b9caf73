package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/gaas-console/internal/config"
)

// chdir keeps tests away from any .env in the repository.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, uint(1), cfg.API.Retries)
	assert.Equal(t, uint32(0), cfg.API.Breaker)
	assert.Equal(t, 8081, cfg.Gateway.Port)
	assert.Equal(t, 30*time.Second, cfg.Gateway.NamespaceTTL)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("GAAS_API_URL", "https://gaas.example.com")
	t.Setenv("GAAS_API_TIMEOUT", "5s")
	t.Setenv("GAAS_API_RETRIES", "3")
	t.Setenv("GAAS_LOG_LEVEL", "debug")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://gaas.example.com", cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, uint(3), cfg.API.Retries)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9000, cfg.Gateway.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.Database.URL)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GAAS_API_TOKEN=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("GAAS_API_TOKEN") })

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.API.Token)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "gaas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  url: https://file.example.com\n  breaker: 5\n"), 0o600))

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.API.URL)
	assert.Equal(t, uint32(5), cfg.API.Breaker)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	chdir(t)

	_, err := config.Load(config.New(), "/does/not/exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, env, value, wantField string
	}{
		{"bad url", "GAAS_API_URL", "not a url", "URL"},
		{"zero retries", "GAAS_API_RETRIES", "0", "Retries"},
		{"bad level", "GAAS_LOG_LEVEL", "verbose", "Level"},
		{"port out of range", "GAAS_GATEWAY_PORT", "70000", "Port"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chdir(t)
			t.Setenv(tc.env, tc.value)

			_, err := config.Load(config.New(), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantField)
		})
	}
}
