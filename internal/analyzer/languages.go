package analyzer

import (
	"sort"

	"github.com/blackwell-systems/repolens/internal/classify"
	"github.com/blackwell-systems/repolens/internal/scanner"
)

// AnalyzeLanguages groups non-directory entries by language. Extensions
// without a language label are ignored, and percentages are relative to
// the bytes of labelled files only.
func AnalyzeLanguages(files []scanner.FileInfo) []LanguageStat {
	byLang := make(map[string]*LanguageStat)
	var total uint64

	for _, f := range files {
		if f.IsDir {
			continue
		}
		lang, ok := classify.LanguageOf(f.Extension)
		if !ok {
			continue
		}
		stat, ok := byLang[lang]
		if !ok {
			stat = &LanguageStat{Language: lang}
			byLang[lang] = stat
		}
		stat.FileCount++
		stat.TotalSize += f.Size
		total += f.Size
	}

	stats := make([]LanguageStat, 0, len(byLang))
	for _, s := range byLang {
		if total > 0 {
			s.Percentage = float64(s.TotalSize) / float64(total) * 100
		}
		stats = append(stats, *s)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalSize != stats[j].TotalSize {
			return stats[i].TotalSize > stats[j].TotalSize
		}
		return stats[i].Language < stats[j].Language
	})
	return stats
}
