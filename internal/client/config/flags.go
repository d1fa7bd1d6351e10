package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/medicart/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the catalog API (default from Config)
//	-l int      catalog load limit (default from Config)
//	-d string   database DSN: SQLite path or postgres:// URL
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.CatalogBaseURL, "a", cfg.CatalogBaseURL, "base URL of the catalog API")
	fs.IntVar(&cfg.CatalogLimit, "l", cfg.CatalogLimit, "catalog load limit")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (SQLite path or postgres:// URL)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
