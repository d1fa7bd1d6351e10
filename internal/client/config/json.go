package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/medicart/internal/flagx"
	"github.com/dmitrijs2005/medicart/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "10s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	CatalogBaseURL  string         `json:"catalog_base_url"`
	CatalogLimit    int            `json:"catalog_limit"`
	CatalogTimeout  timex.Duration `json:"catalog_timeout"`
	DatabaseDSN     string         `json:"database_dsn"`
	SessionSecret   string         `json:"session_secret"`
	SessionValidity timex.Duration `json:"session_validity"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; zero values keep the
//     defaults.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
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

	if jc.CatalogBaseURL != "" {
		cfg.CatalogBaseURL = jc.CatalogBaseURL
	}
	if jc.CatalogLimit > 0 {
		cfg.CatalogLimit = jc.CatalogLimit
	}
	if jc.CatalogTimeout.Duration > 0 {
		cfg.CatalogTimeout = jc.CatalogTimeout.Duration
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.SessionValidity.Duration > 0 {
		cfg.SessionValidity = jc.SessionValidity.Duration
	}
}
