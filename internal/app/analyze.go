package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/repolens/internal/analyzer"
	"github.com/blackwell-systems/repolens/internal/output"
	"github.com/blackwell-systems/repolens/internal/scanner"
)

var (
	analyzeOpts     scanFlags
	analyzeFlagYAML bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [PATH]",
	Short: "Characterize a project: type, languages, manifests, size",
	Long: `Analyze scans PATH and derives the project type (from marker files
such as go.mod or Cargo.toml, else the most common source extension), a
per-language size breakdown, the dependency and config files present, and
an estimated line count of about one line per 40 bytes of source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeOpts.bind(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeFlagYAML, "yaml", false, "Output as YAML")
	rootCmd.AddCommand(analyzeCmd)
}

// analyzeReport is the machine-readable output of analyze.
type analyzeReport struct {
	Path       string                   `json:"path" yaml:"path"`
	FileCount  int                      `json:"file_count" yaml:"file_count"`
	DirCount   int                      `json:"dir_count" yaml:"dir_count"`
	TotalSize  uint64                   `json:"total_size" yaml:"total_size"`
	DurationMs uint64                   `json:"duration_ms" yaml:"duration_ms"`
	Analysis   analyzer.ProjectAnalysis `json:"analysis" yaml:"analysis"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	sc, err := analyzeOpts.scanConfig(cmd, cfg, rootArg(args))
	if err != nil {
		return err
	}
	sc.Logger = log

	res, err := scanner.Scan(cmd.Context(), sc)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}
	a := analyzer.Analyze(res.Files)

	report := analyzeReport{
		Path:       sc.Path,
		FileCount:  res.FileCount,
		DirCount:   res.DirCount,
		TotalSize:  res.TotalSize,
		DurationMs: res.DurationMs,
		Analysis:   a,
	}

	w := cmd.OutOrStdout()
	switch {
	case flagJSON:
		return writeJSON(w, report)
	case analyzeFlagYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	}

	renderScanSummary(w, sc.Path, res)
	renderAnalysis(w, a, cfg.Output.Width)
	return nil
}

func renderAnalysis(w io.Writer, a analyzer.ProjectAnalysis, width int) {
	fmt.Fprintln(w, output.Section("Project"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.KeyValue("Type", output.StyleBold.Render(a.ProjectType)))
	fmt.Fprintln(w, output.KeyValue("Estimated lines", "~"+output.Count(a.EstimatedLines)))

	fmt.Fprintln(w, output.Section("Languages"))
	fmt.Fprintln(w)
	if len(a.LanguageStats) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render(" No recognized languages."))
	} else {
		tbl := output.NewTable("Language", "Files", "Size", "Share")
		for _, ls := range a.LanguageStats {
			tbl.AddRow(ls.Language, output.Count(ls.FileCount), output.Bytes(ls.TotalSize), output.PercentBar(ls.Percentage, barWidth(width)))
		}
		tbl.Print(w)
	}

	renderPaths(w, "Dependency files", a.DependencyFiles)
	renderPaths(w, "Config files", a.ConfigFiles)
}

func renderPaths(w io.Writer, title string, paths []string) {
	fmt.Fprintln(w, output.Section(title))
	fmt.Fprintln(w)
	if len(paths) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render(" None found."))
		return
	}
	for _, p := range paths {
		fmt.Fprintln(w, " "+p)
	}
}

// barWidth sizes percentage bars to the configured terminal width.
func barWidth(width int) int {
	return max(10, min(30, width/4))
}
