package app

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repolens/internal/output"
	"github.com/blackwell-systems/repolens/internal/scanner"
)

var (
	scanOpts     scanFlags
	scanFlagList bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [PATH]",
	Short: "Walk a directory tree and report counts and sizes",
	Long: `Scan walks PATH (default: the current directory) and reports how many
files and directories survive the ignore rules, their total size, and how
long the walk took. Dependency, build, VCS and IDE directories are skipped
by default; --ignore replaces that list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanOpts.bind(scanCmd)
	scanCmd.Flags().BoolVar(&scanFlagList, "list", false, "List every entry")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	sc, err := scanOpts.scanConfig(cmd, cfg, rootArg(args))
	if err != nil {
		return err
	}
	sc.Logger = log

	res, err := scanner.Scan(cmd.Context(), sc)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, res)
	}

	renderScanSummary(w, sc.Path, res)
	if scanFlagList {
		renderScanList(w, sc.Path, res)
	}
	return nil
}

func renderScanSummary(w io.Writer, root string, res *scanner.ScanResult) {
	fmt.Fprintln(w, output.Section("Scan"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.KeyValue("Root", root))
	fmt.Fprintln(w, output.KeyValue("Files", output.Count(res.FileCount)))
	fmt.Fprintln(w, output.KeyValue("Directories", output.Count(res.DirCount)))
	fmt.Fprintln(w, output.KeyValue("Total size", output.Bytes(res.TotalSize)))
	fmt.Fprintln(w, output.KeyValue("Duration", output.Millis(res.DurationMs)))
}

func renderScanList(w io.Writer, root string, res *scanner.ScanResult) {
	fmt.Fprintln(w, output.Section("Entries"))
	fmt.Fprintln(w)

	tbl := output.NewTable("Type", "Size", "Path")
	for _, f := range res.Files {
		kind, size := "file", output.Bytes(f.Size)
		if f.IsDir {
			kind, size = output.StyleMuted.Render("dir"), ""
		}
		rel, err := filepath.Rel(root, f.Path)
		if err != nil {
			rel = f.Path
		}
		tbl.AddRow(kind, size, rel)
	}
	tbl.Print(w)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
