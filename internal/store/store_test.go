package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/repolens/internal/analyzer"
	"github.com/blackwell-systems/repolens/internal/scanner"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleSnapshot(root string, files int, size uint64) *Snapshot {
	res := &scanner.ScanResult{FileCount: files, DirCount: 2, TotalSize: size, DurationMs: 7}
	a := analyzer.ProjectAnalysis{
		ProjectType: "Go",
		LanguageStats: []analyzer.LanguageStat{
			{Language: "Go", FileCount: files, TotalSize: size, Percentage: 100},
		},
		DependencyFiles: []string{root + "/go.mod", root + "/go.sum"},
		ConfigFiles:     []string{root + "/.gitignore"},
		EstimatedLines:  size / analyzer.BytesPerLine,
	}
	return NewSnapshot(root, "test", res, a)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Migrate())

	var version int
	require.NoError(t, db.Conn().QueryRow("SELECT version FROM schema_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "repolens.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	assert.FileExists(t, path)
}

func TestSaveSnapshot_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	s := sampleSnapshot("/repo", 3, 4000)

	require.NoError(t, db.SaveSnapshot(s))
	assert.NotZero(t, s.ID)
	assert.Len(t, s.ScanID, 36)
	assert.False(t, s.TakenAt.IsZero())

	got, err := db.GetSnapshot(s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, s.ScanID, got.ScanID)
	assert.Equal(t, "/repo", got.Root)
	assert.Equal(t, "Go", got.ProjectType)
	assert.Equal(t, 3, got.FileCount)
	assert.Equal(t, 2, got.DirCount)
	assert.Equal(t, uint64(4000), got.TotalSize)
	assert.Equal(t, uint64(100), got.EstimatedLines)
	assert.Equal(t, uint64(7), got.DurationMs)
	assert.True(t, s.TakenAt.Equal(got.TakenAt))
	assert.Equal(t, s.Languages, got.Languages)
	assert.Equal(t, []string{"/repo/go.mod", "/repo/go.sum"}, got.DependencyFiles)
	assert.Equal(t, []string{"/repo/.gitignore"}, got.ConfigFiles)
}

func TestSaveSnapshot_UniqueScanIDs(t *testing.T) {
	db := openTestDB(t)
	a, b := sampleSnapshot("/repo", 1, 1), sampleSnapshot("/repo", 1, 1)
	require.NoError(t, db.SaveSnapshot(a))
	require.NoError(t, db.SaveSnapshot(b))
	assert.NotEqual(t, a.ScanID, b.ScanID)
}

func TestGetSnapshot_Missing(t *testing.T) {
	db := openTestDB(t)
	s, err := db.GetSnapshot(42)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestGetSnapshotN_PerRoot(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveSnapshot(sampleSnapshot("/a", 1, 100)))
	require.NoError(t, db.SaveSnapshot(sampleSnapshot("/b", 9, 900)))
	require.NoError(t, db.SaveSnapshot(sampleSnapshot("/a", 2, 200)))

	latest, err := db.GetLatestSnapshot("/a")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 2, latest.FileCount)

	prev, err := db.GetSnapshotN("/a", 2)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, 1, prev.FileCount)

	none, err := db.GetSnapshotN("/a", 3)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestListSnapshots(t *testing.T) {
	db := openTestDB(t)
	for i := 1; i <= 4; i++ {
		require.NoError(t, db.SaveSnapshot(sampleSnapshot("/repo", i, uint64(i*100))))
	}

	list, err := db.ListSnapshots("/repo", 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 4, list[0].FileCount, "newest first")
	assert.Equal(t, 2, list[2].FileCount)
	assert.Empty(t, list[0].Languages, "details are not loaded")

	empty, err := db.ListSnapshots("/elsewhere", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteSnapshot_Cascades(t *testing.T) {
	db := openTestDB(t)
	s := sampleSnapshot("/repo", 1, 1)
	require.NoError(t, db.SaveSnapshot(s))
	require.NoError(t, db.DeleteSnapshot(s.ID))

	var n int
	require.NoError(t, db.Conn().QueryRow("SELECT COUNT(*) FROM manifests").Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.Conn().QueryRow("SELECT COUNT(*) FROM language_stats").Scan(&n))
	assert.Zero(t, n)
}

// ---------------------------------------------------------------------------
// Compare
// ---------------------------------------------------------------------------

func TestCompare(t *testing.T) {
	prev := &Snapshot{ID: 1, ProjectType: "Go", FileCount: 10, DirCount: 3, TotalSize: 1000, EstimatedLines: 25}
	cur := &Snapshot{ID: 2, ProjectType: "Rust", FileCount: 12, DirCount: 3, TotalSize: 800, EstimatedLines: 20}

	d := Compare(prev, cur)
	assert.Equal(t, int64(1), d.PreviousID)
	assert.Equal(t, int64(2), d.CurrentID)
	assert.True(t, d.ProjectTypeChanged)
	assert.Equal(t, []Delta{
		{Metric: "files", Previous: 10, Current: 12, Change: 2},
		{Metric: "directories", Previous: 3, Current: 3, Change: 0},
		{Metric: "total_size", Previous: 1000, Current: 800, Change: -200},
		{Metric: "estimated_lines", Previous: 25, Current: 20, Change: -5},
	}, d.Deltas)
}

func TestCompare_NoPrevious(t *testing.T) {
	cur := &Snapshot{ID: 5, ProjectType: "Go", FileCount: 4}
	d := Compare(nil, cur)
	assert.False(t, d.ProjectTypeChanged)
	assert.Equal(t, int64(4), d.Deltas[0].Change)
}
