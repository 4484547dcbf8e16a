// Package store provides SQLite persistence for repolens scan snapshots.
package store

import "time"

// Snapshot is one recorded scan and analysis of a root directory.
type Snapshot struct {
	ID      int64     `json:"id"`
	ScanID  string    `json:"scan_id"`
	Root    string    `json:"root"`
	TakenAt time.Time `json:"taken_at"`
	Version string    `json:"version"`

	ProjectType    string `json:"project_type"`
	FileCount      int    `json:"file_count"`
	DirCount       int    `json:"dir_count"`
	TotalSize      uint64 `json:"total_size"`
	EstimatedLines uint64 `json:"estimated_lines"`
	DurationMs     uint64 `json:"duration_ms"`

	Languages       []LanguageRow `json:"languages,omitempty"`
	DependencyFiles []string      `json:"dependency_files,omitempty"`
	ConfigFiles     []string      `json:"config_files,omitempty"`
}

// LanguageRow is a persisted language stat.
type LanguageRow struct {
	Language   string  `json:"language"`
	FileCount  int     `json:"file_count"`
	TotalSize  uint64  `json:"total_size"`
	Percentage float64 `json:"percentage"`
}

// Manifest kinds stored in the manifests table.
const (
	ManifestDependency = "dependency"
	ManifestConfig     = "config"
)
