// Package config provides configuration loading and defaults for repolens.
package config

import "github.com/blackwell-systems/repolens/internal/filter"

// DefaultConfigDir is the default location for repolens configuration.
const DefaultConfigDir = "~/.config/repolens"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "repolens.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultEnvFile is loaded from the working directory before the
// environment is consulted.
const DefaultEnvFile = ".env"

// EnvPrefix prefixes every environment override, e.g. REPOLENS_SCAN_WORKERS.
const EnvPrefix = "REPOLENS"

// UnboundedDepth disables the traversal depth limit.
const UnboundedDepth = -1

// DefaultScan holds the default traversal settings.
var DefaultScan = Scan{
	MaxDepth:       UnboundedDepth,
	IgnorePatterns: filter.DefaultIgnorePatterns,
	Parallel:       true,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
