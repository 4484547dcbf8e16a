package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blackwell-systems/repolens/internal/analyzer"
	"github.com/blackwell-systems/repolens/internal/scanner"
)

const snapshotColumns = `id, scan_id, root, taken_at, version, project_type,
	file_count, dir_count, total_size, estimated_lines, duration_ms`

// NewSnapshot assembles an unsaved snapshot from a scan of root and its
// analysis.
func NewSnapshot(root, version string, res *scanner.ScanResult, a analyzer.ProjectAnalysis) *Snapshot {
	s := &Snapshot{
		Root:            root,
		Version:         version,
		ProjectType:     a.ProjectType,
		FileCount:       res.FileCount,
		DirCount:        res.DirCount,
		TotalSize:       res.TotalSize,
		EstimatedLines:  a.EstimatedLines,
		DurationMs:      res.DurationMs,
		DependencyFiles: a.DependencyFiles,
		ConfigFiles:     a.ConfigFiles,
	}
	for _, ls := range a.LanguageStats {
		s.Languages = append(s.Languages, LanguageRow{
			Language:   ls.Language,
			FileCount:  ls.FileCount,
			TotalSize:  ls.TotalSize,
			Percentage: ls.Percentage,
		})
	}
	return s
}

// SaveSnapshot inserts s with its language rows and manifests in one
// transaction. It assigns ID, ScanID and TakenAt.
func (db *DB) SaveSnapshot(s *Snapshot) error {
	s.ScanID = uuid.NewString()
	s.TakenAt = time.Now().UTC().Truncate(time.Second)

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO snapshots
		(scan_id, root, taken_at, version, project_type,
		 file_count, dir_count, total_size, estimated_lines, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ScanID, s.Root, s.TakenAt.Format(time.RFC3339), s.Version, s.ProjectType,
		s.FileCount, s.DirCount, int64(s.TotalSize), int64(s.EstimatedLines), int64(s.DurationMs),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for _, l := range s.Languages {
		if _, err := tx.Exec(
			`INSERT INTO language_stats (snapshot_id, language, file_count, total_size, percentage)
			VALUES (?, ?, ?, ?, ?)`,
			id, l.Language, l.FileCount, int64(l.TotalSize), l.Percentage,
		); err != nil {
			return fmt.Errorf("inserting language %q: %w", l.Language, err)
		}
	}

	manifests := []struct {
		kind  string
		paths []string
	}{
		{ManifestDependency, s.DependencyFiles},
		{ManifestConfig, s.ConfigFiles},
	}
	for _, m := range manifests {
		for _, p := range m.paths {
			if _, err := tx.Exec(
				"INSERT INTO manifests (snapshot_id, kind, path) VALUES (?, ?, ?)",
				id, m.kind, p,
			); err != nil {
				return fmt.Errorf("inserting manifest %q: %w", p, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	s.ID = id
	return nil
}

// GetSnapshot returns a snapshot by ID with its language rows and
// manifests, or nil if it does not exist.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow("SELECT "+snapshotColumns+" FROM snapshots WHERE id = ?", id)
	s, err := scanSnapshot(row)
	if err != nil || s == nil {
		return s, err
	}
	if err := db.loadDetails(s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetSnapshotN returns the Nth most recent snapshot of root (1 = latest,
// 2 = previous, etc.) with its details, or nil if there are fewer than n.
func (db *DB) GetSnapshotN(root string, n int) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT "+snapshotColumns+" FROM snapshots WHERE root = ? ORDER BY id DESC LIMIT 1 OFFSET ?",
		root, n-1,
	)
	s, err := scanSnapshot(row)
	if err != nil || s == nil {
		return s, err
	}
	if err := db.loadDetails(s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetLatestSnapshot returns the most recent snapshot of root, or nil.
func (db *DB) GetLatestSnapshot(root string) (*Snapshot, error) {
	return db.GetSnapshotN(root, 1)
}

// ListSnapshots returns up to limit snapshots of root, newest first,
// without their details.
func (db *DB) ListSnapshots(root string, limit int) ([]Snapshot, error) {
	rows, err := db.conn.Query(
		"SELECT "+snapshotColumns+" FROM snapshots WHERE root = ? ORDER BY id DESC LIMIT ?",
		root, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snapshots []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *s)
	}
	return snapshots, rows.Err()
}

// DeleteSnapshot removes a snapshot and, by cascade, its details.
func (db *DB) DeleteSnapshot(id int64) error {
	_, err := db.conn.Exec("DELETE FROM snapshots WHERE id = ?", id)
	return err
}

func (db *DB) loadDetails(s *Snapshot) error {
	rows, err := db.conn.Query(
		`SELECT language, file_count, total_size, percentage
		 FROM language_stats WHERE snapshot_id = ? ORDER BY id`,
		s.ID,
	)
	if err != nil {
		return err
	}
	for rows.Next() {
		var l LanguageRow
		var size int64
		if err := rows.Scan(&l.Language, &l.FileCount, &size, &l.Percentage); err != nil {
			_ = rows.Close()
			return err
		}
		l.TotalSize = uint64(size)
		s.Languages = append(s.Languages, l)
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = db.conn.Query(
		"SELECT kind, path FROM manifests WHERE snapshot_id = ? ORDER BY id",
		s.ID,
	)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var kind, path string
		if err := rows.Scan(&kind, &path); err != nil {
			return err
		}
		switch kind {
		case ManifestDependency:
			s.DependencyFiles = append(s.DependencyFiles, path)
		case ManifestConfig:
			s.ConfigFiles = append(s.ConfigFiles, path)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	var size, lines, duration int64
	err := row.Scan(
		&s.ID, &s.ScanID, &s.Root, &takenAt, &s.Version, &s.ProjectType,
		&s.FileCount, &s.DirCount, &size, &lines, &duration,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	s.TotalSize = uint64(size)
	s.EstimatedLines = uint64(lines)
	s.DurationMs = uint64(duration)
	return &s, nil
}
