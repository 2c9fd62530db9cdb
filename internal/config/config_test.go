package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soham999a/spaceship/internal/config"
)

// TestLoad_defaults verifies that every value falls back to its default when
// no env vars are set.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("CATALOG_REFRESH", "")
	t.Setenv("CATALOG_URL", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.True(t, cfg.CatalogRefresh)
	require.Equal(t, "https://exoplanetarchive.ipac.caltech.edu/TAP/sync", cfg.CatalogURL)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("CATALOG_REFRESH", "false")
	t.Setenv("CATALOG_URL", "http://localhost:9999/tap")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.False(t, cfg.CatalogRefresh)
	require.Equal(t, "http://localhost:9999/tap", cfg.CatalogURL)
}

// TestLoad_invalidCatalogRefresh verifies that a non-boolean CATALOG_REFRESH
// is rejected with an error naming the variable.
func TestLoad_invalidCatalogRefresh(t *testing.T) {
	t.Setenv("CATALOG_REFRESH", "maybe")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "CATALOG_REFRESH")
}
