package nandoku_test

import (
	"testing"

	"nandoku"

	"github.com/stretchr/testify/require"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, k := range []string{
		"NANDOKU_API_ENDPOINT", "NANDOKU_CACHE_DB", "NANDOKU_CACHE_TABLE",
		"NANDOKU_MODEL", "OPENAI_API_KEY", "OPENAI_BASE_URL",
		"NANDOKU_VERBOSE", "PORT", "CORS_ORIGINS",
	} {
		t.Setenv(k, "")
	}

	cfg := nandoku.ConfigFromEnv()
	require.Empty(t, cfg.APIEndpoint)
	require.Equal(t, "./nandoku.db", cfg.CacheDBPath)
	require.Equal(t, "distractor_cache", cfg.CacheTable)
	require.Equal(t, "gpt-4o-mini", cfg.Model)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.False(t, cfg.Verbose)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("NANDOKU_API_ENDPOINT", "https://places.example.com/")
	t.Setenv("NANDOKU_CACHE_TABLE", "yomi_cache")
	t.Setenv("NANDOKU_MODEL", "gpt-4o")
	t.Setenv("NANDOKU_VERBOSE", "1")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := nandoku.ConfigFromEnv()
	// Trailing slash is trimmed so path joining stays predictable.
	require.Equal(t, "https://places.example.com", cfg.APIEndpoint)
	require.Equal(t, "yomi_cache", cfg.CacheTable)
	require.Equal(t, "gpt-4o", cfg.Model)
	require.True(t, cfg.Verbose)
	require.Equal(t, ":9000", cfg.HTTPAddr)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}
