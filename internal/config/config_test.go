package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/repolens/internal/filter"
)

// isolate points HOME and the working directory at fresh temp dirs so no
// user config or .env leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	{
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, UnboundedDepth, cfg.Scan.MaxDepth)
	assert.Equal(t, filter.DefaultIgnorePatterns, cfg.Scan.IgnorePatterns)
	assert.True(t, cfg.Scan.Parallel)
	assert.False(t, cfg.Scan.FollowLinks)
	assert.Zero(t, cfg.Scan.Workers)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 80, cfg.Output.Width)
	assert.Equal(t, DBPath(), cfg.DBPath)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
scan:
  max_depth: 3
  ignore_patterns: ["vendor", "*.log"]
  parallel: false
  follow_links: true
  workers: 2
  respect_gitignore: true
filter:
  min_size: 10
  extensions: ["go", "rs"]
output:
  color: false
db_path: ~/data/lens.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Scan.MaxDepth)
	assert.Equal(t, []string{"vendor", "*.log"}, cfg.Scan.IgnorePatterns)
	assert.False(t, cfg.Scan.Parallel)
	assert.True(t, cfg.Scan.FollowLinks)
	assert.Equal(t, 2, cfg.Scan.Workers)
	assert.True(t, cfg.Scan.RespectGitignore)
	assert.Equal(t, uint64(10), cfg.Filter.MinSize)
	assert.Equal(t, []string{"go", "rs"}, cfg.Filter.Extensions)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, 80, cfg.Output.Width, "unset keys keep defaults")

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, "data", "lens.db"), cfg.DBPath)
}

func TestLoad_MissingExplicitFileIsNotAnError(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Scan.Parallel)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "scan: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("REPOLENS_SCAN_WORKERS", "4")
	t.Setenv("REPOLENS_SCAN_PARALLEL", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.False(t, cfg.Scan.Parallel)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, DefaultEnvFile), "REPOLENS_SCAN_MAX_DEPTH=2\n")
	t.Cleanup(func() { _ = os.Unsetenv("REPOLENS_SCAN_MAX_DEPTH") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Scan.MaxDepth)
}

func TestLoad_EnvironmentBeatsDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, DefaultEnvFile), "REPOLENS_SCAN_WORKERS=9\n")
	t.Setenv("REPOLENS_SCAN_WORKERS", "3")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scan.Workers)
}

// ---------------------------------------------------------------------------
// ScanConfig
// ---------------------------------------------------------------------------

func TestScanConfig_Unbounded(t *testing.T) {
	cfg := &Config{Scan: DefaultScan}

	sc := cfg.ScanConfig("/repo")
	assert.Equal(t, "/repo", sc.Path)
	assert.Nil(t, sc.MaxDepth)
	assert.Nil(t, sc.Filter)
	assert.True(t, sc.Parallel)
	assert.Equal(t, filter.DefaultIgnorePatterns, sc.IgnorePatterns)

	sc.IgnorePatterns[0] = "changed"
	assert.Equal(t, "node_modules", filter.DefaultIgnorePatterns[0], "patterns are copied")
}

func TestScanConfig_DepthAndFilter(t *testing.T) {
	cfg := &Config{
		Scan:   Scan{MaxDepth: 0, Workers: 3},
		Filter: Filter{MaxSize: 100, Extensions: []string{".go"}},
	}

	sc := cfg.ScanConfig(".")
	require.NotNil(t, sc.MaxDepth)
	assert.Equal(t, 0, *sc.MaxDepth)
	assert.Equal(t, 3, sc.Workers)

	require.NotNil(t, sc.Filter)
	assert.False(t, sc.Filter.ShouldExclude("main.go", 50))
	assert.True(t, sc.Filter.ShouldExclude("main.go", 500))
	assert.True(t, sc.Filter.ShouldExclude("main.rs", 50))
	assert.Zero(t, sc.Filter.Matcher().Len(), "ignore patterns stay with the scanner")
}
