// Package config loads runtime settings for the SkinSync app. Sources are
// layered, later ones winning: built-in defaults, environment variables
// (with .env support), an optional JSON file, then command-line flags.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: sqlite file backing the durable store.
//   - LogBackend: "slog" (text) or "zap" (JSON).
type Config struct {
	DatabasePath string
	LogBackend   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "skinsync.db"
	c.LogBackend = "slog"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including .env), JSON (if present), and
// command-line flags (if present). Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
