// Package analyzer derives a project characterization from a scan's entry
// list: ecosystem, language breakdown, manifests, and a line estimate.
package analyzer

// UnknownProjectType is reported when no marker file or tracked extension
// identifies the project.
const UnknownProjectType = "Unknown"

// BytesPerLine is the average line length used by EstimateLines.
const BytesPerLine = 40

// ProjectAnalysis is the aggregate characterization of one scan.
type ProjectAnalysis struct {
	// ProjectType is the detected ecosystem label, or UnknownProjectType.
	ProjectType string `json:"project_type" yaml:"project_type"`

	// LanguageStats is sorted by TotalSize descending, then Language.
	LanguageStats []LanguageStat `json:"language_stats" yaml:"language_stats"`

	// DependencyFiles lists dependency manifest paths in input order.
	DependencyFiles []string `json:"dependency_files" yaml:"dependency_files"`

	// ConfigFiles lists configuration file paths in input order.
	ConfigFiles []string `json:"config_files" yaml:"config_files"`

	// EstimatedLines approximates source lines from source file sizes.
	EstimatedLines uint64 `json:"estimated_lines" yaml:"estimated_lines"`
}

// LanguageStat is the file count and byte total of one language.
type LanguageStat struct {
	Language  string `json:"language" yaml:"language"`
	FileCount int    `json:"file_count" yaml:"file_count"`
	TotalSize uint64 `json:"total_size" yaml:"total_size"`

	// Percentage is this language's share of all tracked-language bytes.
	Percentage float64 `json:"percentage" yaml:"percentage"`
}
