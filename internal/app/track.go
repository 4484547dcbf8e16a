package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repolens/internal/analyzer"
	"github.com/blackwell-systems/repolens/internal/output"
	"github.com/blackwell-systems/repolens/internal/scanner"
	"github.com/blackwell-systems/repolens/internal/store"
)

var (
	trackOpts    scanFlags
	trackCompare int
	trackHistory int
)

var trackCmd = &cobra.Command{
	Use:   "track [PATH]",
	Short: "Snapshot a project and compare with earlier snapshots",
	Long: `Track scans and analyzes PATH, stores the result as a snapshot in the
local database, and compares it against an earlier snapshot of the same
path to show file, directory, size and line-count deltas with trend
arrows. With --history N it lists the N most recent snapshots instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrack,
}

func init() {
	trackOpts.bind(trackCmd)
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().IntVar(&trackHistory, "history", 0, "List the N most recent snapshots without scanning")
	rootCmd.AddCommand(trackCmd)
}

// trackReport is the machine-readable output of track.
type trackReport struct {
	Snapshot *store.Snapshot `json:"snapshot"`
	Previous *store.Snapshot `json:"previous,omitempty"`
	Diff     *store.Diff     `json:"diff,omitempty"`
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	if trackCompare < 1 {
		return fmt.Errorf("--compare must be at least 1, got %d", trackCompare)
	}

	root, err := absRoot(args)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	w := cmd.OutOrStdout()

	if trackHistory > 0 {
		snapshots, err := db.ListSnapshots(root, trackHistory)
		if err != nil {
			return fmt.Errorf("listing snapshots: %w", err)
		}
		if flagJSON {
			if snapshots == nil {
				snapshots = []store.Snapshot{}
			}
			return writeJSON(w, snapshots)
		}
		renderHistory(w, root, snapshots)
		return nil
	}

	sc, err := trackOpts.scanConfig(cmd, cfg, root)
	if err != nil {
		return err
	}
	sc.Logger = log

	res, err := scanner.Scan(cmd.Context(), sc)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	snap := store.NewSnapshot(root, appVersion, res, analyzer.Analyze(res.Files))
	if err := db.SaveSnapshot(snap); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	log.Debug("snapshot saved", "id", snap.ID, "scan_id", snap.ScanID)

	prev, err := db.GetSnapshotN(root, trackCompare+1)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	report := trackReport{Snapshot: snap, Previous: prev}
	if prev != nil {
		d := store.Compare(prev, snap)
		report.Diff = &d
	}

	if flagJSON {
		return writeJSON(w, report)
	}
	renderTrack(w, report)
	return nil
}

func renderTrack(w io.Writer, r trackReport) {
	s := r.Snapshot
	fmt.Fprintln(w, output.Section("Snapshot"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.KeyValue("Root", s.Root))
	fmt.Fprintln(w, output.KeyValue("Scan ID", output.StyleMuted.Render(s.ScanID)))
	fmt.Fprintln(w, output.KeyValue("Project type", s.ProjectType))

	if r.Diff == nil {
		fmt.Fprintln(w, output.KeyValue("Files", output.Count(s.FileCount)))
		fmt.Fprintln(w, output.KeyValue("Directories", output.Count(s.DirCount)))
		fmt.Fprintln(w, output.KeyValue("Total size", output.Bytes(s.TotalSize)))
		fmt.Fprintln(w, output.KeyValue("Estimated lines", output.Count(s.EstimatedLines)))
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.StyleMuted.Render(" First snapshot of this path; run track again to see changes."))
		return
	}

	fmt.Fprintln(w, output.Section(fmt.Sprintf("Changes since %s", r.Previous.TakenAt.Local().Format("2006-01-02 15:04"))))
	fmt.Fprintln(w)
	if r.Diff.ProjectTypeChanged {
		fmt.Fprintln(w, output.KeyValue("Project type", output.StyleWarning.Render(r.Previous.ProjectType+" → "+s.ProjectType)))
	}

	tbl := output.NewTable("Metric", "Previous", "Current", "Change")
	for _, d := range r.Diff.Deltas {
		format := output.Count[uint64]
		if d.Metric == "total_size" {
			format = output.Bytes
		}
		tbl.AddRow(
			metricLabel(d.Metric),
			format(uint64(d.Previous)),
			format(uint64(d.Current)),
			output.TrendArrow(d.Change, true, format),
		)
	}
	tbl.Print(w)
}

func renderHistory(w io.Writer, root string, snapshots []store.Snapshot) {
	fmt.Fprintln(w, output.Section("History: "+root))
	fmt.Fprintln(w)
	if len(snapshots) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render(" No snapshots recorded."))
		return
	}

	tbl := output.NewTable("Taken", "Type", "Files", "Dirs", "Size", "Lines")
	for _, s := range snapshots {
		tbl.AddRow(
			s.TakenAt.Local().Format("2006-01-02 15:04"),
			s.ProjectType,
			output.Count(s.FileCount),
			output.Count(s.DirCount),
			output.Bytes(s.TotalSize),
			output.Count(s.EstimatedLines),
		)
	}
	tbl.Print(w)
}

func metricLabel(metric string) string {
	switch metric {
	case "files":
		return "Files"
	case "directories":
		return "Directories"
	case "total_size":
		return "Total size"
	case "estimated_lines":
		return "Estimated lines"
	default:
		return metric
	}
}
