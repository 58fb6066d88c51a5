package nandoku

import (
	"os"
	"strings"
)

// Config holds everything the quiz pipeline reads from the environment.
// APIEndpoint may be empty: the front end then answers 500 on every quiz
// route instead of refusing to start.
type Config struct {
	APIEndpoint string // place-data API base URL (NANDOKU_API_ENDPOINT)

	CacheDBPath string // SQLite file backing the distractor cache
	CacheTable  string // table name inside the cache database

	Model         string // generative backend model identifier
	OpenAIAPIKey  string
	OpenAIBaseURL string // optional override, e.g. a regional or proxy endpoint

	HTTPAddr    string
	CORSOrigins []string
	Verbose     bool
}

// ConfigFromEnv loads the configuration from environment variables,
// applying defaults for everything except the data-source endpoint and
// the API key.
func ConfigFromEnv() Config {
	return Config{
		APIEndpoint:   strings.TrimSuffix(os.Getenv("NANDOKU_API_ENDPOINT"), "/"),
		CacheDBPath:   envOr("NANDOKU_CACHE_DB", "./nandoku.db"),
		CacheTable:    envOr("NANDOKU_CACHE_TABLE", "distractor_cache"),
		Model:         envOr("NANDOKU_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		HTTPAddr:      ":" + envOr("PORT", "8080"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000"),
		Verbose:       envBool("NANDOKU_VERBOSE", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
