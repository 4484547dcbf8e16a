package analyzer

import (
	"github.com/blackwell-systems/repolens/internal/classify"
	"github.com/blackwell-systems/repolens/internal/scanner"
)

// Analyze runs every analysis over files. It never re-reads the filesystem
// and accepts any slice, including nil.
func Analyze(files []scanner.FileInfo) ProjectAnalysis {
	return ProjectAnalysis{
		ProjectType:     DetectProjectType(files),
		LanguageStats:   AnalyzeLanguages(files),
		DependencyFiles: FindDependencyFiles(files),
		ConfigFiles:     FindConfigFiles(files),
		EstimatedLines:  EstimateLines(files),
	}
}

// DetectProjectType returns the project type of the first marker file in
// input order. Without one, the most common tracked extension decides, with
// ties going to the extension listed first in the fallback table.
func DetectProjectType(files []scanner.FileInfo) string {
	for _, f := range files {
		if f.IsDir {
			continue
		}
		if pt, ok := classify.ProjectTypeForMarker(f.Name); ok {
			return pt
		}
	}

	counts := make(map[string]int)
	for _, f := range files {
		if f.IsDir {
			continue
		}
		if _, ok := classify.ProjectTypeForExtension(f.Extension); ok {
			counts[f.Extension]++
		}
	}

	best, bestCount := "", 0
	for _, ext := range classify.ProjectExtensions() {
		if counts[ext] > bestCount {
			best, bestCount = ext, counts[ext]
		}
	}
	if bestCount == 0 {
		return UnknownProjectType
	}

	pt, _ := classify.ProjectTypeForExtension(best)
	return pt
}

// FindDependencyFiles returns the paths of dependency manifests and lock
// files.
func FindDependencyFiles(files []scanner.FileInfo) []string {
	out := []string{}
	for _, f := range files {
		if !f.IsDir && classify.IsDependencyFilename(f.Name) {
			out = append(out, f.Path)
		}
	}
	return out
}

// FindConfigFiles returns the paths of configuration files, dotfiles
// included.
func FindConfigFiles(files []scanner.FileInfo) []string {
	out := []string{}
	for _, f := range files {
		if !f.IsDir && classify.IsProjectConfigFilename(f.Name) {
			out = append(out, f.Path)
		}
	}
	return out
}

// EstimateLines sums size/BytesPerLine over source files.
func EstimateLines(files []scanner.FileInfo) uint64 {
	var lines uint64
	for _, f := range files {
		if !f.IsDir && classify.IsSourceCode(f.Extension) {
			lines += f.Size / BytesPerLine
		}
	}
	return lines
}
