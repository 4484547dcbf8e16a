package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/blackwell-systems/repolens/internal/filter"
	"github.com/blackwell-systems/repolens/internal/scanner"
)

// Config is the top-level repolens configuration.
type Config struct {
	Scan   Scan   `mapstructure:"scan"`
	Filter Filter `mapstructure:"filter"`
	Output Output `mapstructure:"output"`
	DBPath string `mapstructure:"db_path"`
}

// Scan holds traversal settings.
type Scan struct {
	// MaxDepth bounds the traversal; UnboundedDepth (or any negative value)
	// disables the limit.
	MaxDepth         int      `mapstructure:"max_depth"`
	IgnorePatterns   []string `mapstructure:"ignore_patterns"`
	Parallel         bool     `mapstructure:"parallel"`
	FollowLinks      bool     `mapstructure:"follow_links"`
	Workers          int      `mapstructure:"workers"`
	RespectGitignore bool     `mapstructure:"respect_gitignore"`
}

// Filter holds optional size and extension rules for files. Zero sizes and
// an empty extension list mean no rule.
type Filter struct {
	MinSize    uint64   `mapstructure:"min_size"`
	MaxSize    uint64   `mapstructure:"max_size"`
	Extensions []string `mapstructure:"extensions"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. Values from a .env file
// in the working directory and REPOLENS_* environment variables override
// the file.
func Load(cfgFile string) (*Config, error) {
	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetDefault("scan.max_depth", DefaultScan.MaxDepth)
	v.SetDefault("scan.ignore_patterns", DefaultScan.IgnorePatterns)
	v.SetDefault("scan.parallel", DefaultScan.Parallel)
	v.SetDefault("scan.follow_links", DefaultScan.FollowLinks)
	v.SetDefault("scan.workers", DefaultScan.Workers)
	v.SetDefault("scan.respect_gitignore", DefaultScan.RespectGitignore)
	v.SetDefault("filter.min_size", 0)
	v.SetDefault("filter.max_size", 0)
	v.SetDefault("filter.extensions", []string{})
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("db_path", DBPath())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.DBPath = expandPath(cfg.DBPath)

	return &cfg, nil
}

// loadEnvFile exports the variables of path into the process environment.
// Variables already set win, and a missing file is not an error.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ScanConfig builds the scanner configuration for root from the loaded
// settings.
func (c *Config) ScanConfig(root string) scanner.ScanConfig {
	sc := scanner.ScanConfig{
		Path:             root,
		IgnorePatterns:   append([]string(nil), c.Scan.IgnorePatterns...),
		Parallel:         c.Scan.Parallel,
		FollowLinks:      c.Scan.FollowLinks,
		Workers:          c.Scan.Workers,
		RespectGitignore: c.Scan.RespectGitignore,
	}
	if c.Scan.MaxDepth >= 0 {
		sc.MaxDepth = scanner.Depth(c.Scan.MaxDepth)
	}
	if f, ok := c.Filter.Build(); ok {
		sc.Filter = &f
	}
	return sc
}

// Build returns the file filter described by the settings, and false when
// no rule is configured. Ignore patterns are handled by the scanner, so
// the filter carries none.
func (f Filter) Build() (filter.Filter, bool) {
	if f.MinSize == 0 && f.MaxSize == 0 && len(f.Extensions) == 0 {
		return filter.Filter{}, false
	}
	b := filter.NewEmptyBuilder()
	if f.MinSize > 0 {
		b.MinSize(f.MinSize)
	}
	if f.MaxSize > 0 {
		b.MaxSize(f.MaxSize)
	}
	if len(f.Extensions) > 0 {
		b.Extensions(f.Extensions)
	}
	return b.Build(), true
}

// DBPath returns the full path to the default SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
