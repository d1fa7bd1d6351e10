// Package config loads runtime configuration for the MediCart CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the catalog API
//	-l int      catalog load limit
//	-d string   database DSN (SQLite path or postgres:// URL)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "catalog_base_url": "https://dummyjson.com",
//	  "catalog_limit": 50,
//	  "catalog_timeout": "10s",
//	  "database_dsn": "medicart.db",
//	  "session_validity": "720h"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the client
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
