package config

import "time"

// Config holds runtime settings for the MediCart CLI.
//
// Fields:
//   - CatalogBaseURL: base URL of the product listing API.
//   - CatalogLimit: the limit parameter sent on every catalog load.
//   - CatalogTimeout: per-request timeout for catalog fetches.
//   - DatabaseDSN: SQLite file path, or a postgres:// DSN for a hosted store.
//   - SessionSecret: HMAC secret signing the persisted session token.
//   - SessionValidity: how long a persisted session survives restarts.
type Config struct {
	CatalogBaseURL  string
	CatalogLimit    int
	CatalogTimeout  time.Duration
	DatabaseDSN     string
	SessionSecret   string
	SessionValidity time.Duration
}

// LoadDefaults populates c with sensible defaults.
// NOTE: SessionSecret protects on-device state only; override it when the
// store is hosted on a shared database.
func (c *Config) LoadDefaults() {
	c.CatalogBaseURL = "https://dummyjson.com"
	c.CatalogLimit = 50
	c.CatalogTimeout = 10 * time.Second
	c.DatabaseDSN = "medicart.db"
	c.SessionSecret = "medicart-local-secret"
	c.SessionValidity = 30 * 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
