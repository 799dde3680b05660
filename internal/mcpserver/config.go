package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/casetools/caseconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// BatchLimit is the maximum number of texts per convert call.
	BatchLimit int

	// MaxInputSize is the maximum inline content size in bytes for
	// rewrite_keys.
	MaxInputSize int64

	// DefaultStyle is applied when a tool call omits the style field.
	// Empty means the tool requires an explicit style.
	DefaultStyle string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASETOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		BatchLimit:   envInt("CASETOOLS_BATCH_LIMIT", 100),
		MaxInputSize: envInt64("CASETOOLS_MAX_INPUT_SIZE", 1024*1024),
		DefaultStyle: envStyle("CASETOOLS_DEFAULT_STYLE"),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envStyle(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if !caseconv.IsValidStyle(v) {
		slog.Warn("invalid style env var, ignoring", "key", key, "value", v)
		return ""
	}
	return v
}
