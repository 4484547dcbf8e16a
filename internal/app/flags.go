package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repolens/internal/config"
	"github.com/blackwell-systems/repolens/internal/scanner"
)

// scanFlags are the traversal flags shared by scan, analyze and track.
// Flags override configuration only when given explicitly.
type scanFlags struct {
	maxDepth    int
	ignore      []string
	sequential  bool
	followLinks bool
	workers     int
	gitignore   bool
	minSize     uint64
	maxSize     uint64
	extensions  []string
}

func (f *scanFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.maxDepth, "max-depth", 0, "Maximum traversal depth (root is 0)")
	fs.StringArrayVar(&f.ignore, "ignore", nil, "Ignore pattern, repeatable; replaces the default list")
	fs.BoolVar(&f.sequential, "sequential", false, "Scan on a single goroutine in deterministic order")
	fs.BoolVar(&f.followLinks, "follow-links", false, "Follow symbolic links")
	fs.IntVar(&f.workers, "workers", 0, "Parallel worker limit (0 = GOMAXPROCS)")
	fs.BoolVar(&f.gitignore, "gitignore", false, "Also honor the root .gitignore")
	fs.Uint64Var(&f.minSize, "min-size", 0, "Exclude files smaller than this many bytes")
	fs.Uint64Var(&f.maxSize, "max-size", 0, "Exclude files larger than this many bytes")
	fs.StringSliceVar(&f.extensions, "ext", nil, "Only include files with these extensions")
}

// scanConfig merges the configuration for root with explicitly set flags.
func (f *scanFlags) scanConfig(cmd *cobra.Command, cfg *config.Config, root string) (scanner.ScanConfig, error) {
	fs := cmd.Flags()

	if fs.Changed("min-size") {
		cfg.Filter.MinSize = f.minSize
	}
	if fs.Changed("max-size") {
		cfg.Filter.MaxSize = f.maxSize
	}
	if fs.Changed("ext") {
		cfg.Filter.Extensions = f.extensions
	}
	if cfg.Filter.MinSize > 0 && cfg.Filter.MaxSize > 0 && cfg.Filter.MinSize > cfg.Filter.MaxSize {
		return scanner.ScanConfig{}, fmt.Errorf("min size %d exceeds max size %d", cfg.Filter.MinSize, cfg.Filter.MaxSize)
	}

	sc := cfg.ScanConfig(root)

	if fs.Changed("max-depth") {
		if f.maxDepth < 0 {
			return scanner.ScanConfig{}, fmt.Errorf("--max-depth must be non-negative, got %d", f.maxDepth)
		}
		sc.MaxDepth = scanner.Depth(f.maxDepth)
	}
	if fs.Changed("ignore") {
		sc.IgnorePatterns = f.ignore
	}
	if fs.Changed("sequential") {
		sc.Parallel = !f.sequential
	}
	if fs.Changed("follow-links") {
		sc.FollowLinks = f.followLinks
	}
	if fs.Changed("workers") {
		sc.Workers = f.workers
	}
	if fs.Changed("gitignore") {
		sc.RespectGitignore = f.gitignore
	}
	return sc, nil
}

// rootArg returns the scan root named by args, defaulting to the current
// directory.
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// absRoot is rootArg made absolute, for use as a stable history key.
func absRoot(args []string) (string, error) {
	root, err := filepath.Abs(rootArg(args))
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return root, nil
}
