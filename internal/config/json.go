package config

import (
	"encoding/json"
	"os"

	"github.com/skinsync/skinsync/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	LogBackend   string `json:"log_backend"`
}

// parseJson overlays Config with values from a JSON file whose path is given
// via -c or -config. Absent flag means no JSON is loaded. Read or unmarshal
// errors panic; config is resolved before anything else starts.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
}
