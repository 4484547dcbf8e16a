package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id         TEXT NOT NULL UNIQUE,
			root            TEXT NOT NULL,
			taken_at        TEXT NOT NULL,
			version         TEXT NOT NULL,
			project_type    TEXT NOT NULL,
			file_count      INTEGER NOT NULL,
			dir_count       INTEGER NOT NULL,
			total_size      INTEGER NOT NULL,
			estimated_lines INTEGER NOT NULL,
			duration_ms     INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS language_stats (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			language    TEXT NOT NULL,
			file_count  INTEGER NOT NULL,
			total_size  INTEGER NOT NULL,
			percentage  REAL NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS manifests (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			kind        TEXT NOT NULL,
			path        TEXT NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_snapshots_root ON snapshots(root)`,
		`CREATE INDEX IF NOT EXISTS idx_language_stats_snapshot ON language_stats(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_manifests_snapshot ON manifests(snapshot_id)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
