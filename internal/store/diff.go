package store

// Delta is the change of one metric between two snapshots.
type Delta struct {
	Metric   string `json:"metric"`
	Previous int64  `json:"previous"`
	Current  int64  `json:"current"`
	Change   int64  `json:"change"`
}

// Diff compares two snapshots of the same root.
type Diff struct {
	PreviousID         int64   `json:"previous_id"`
	CurrentID          int64   `json:"current_id"`
	ProjectTypeChanged bool    `json:"project_type_changed"`
	Deltas             []Delta `json:"deltas"`
}

// Compare reports how cur differs from prev. A nil prev yields a diff whose
// previous values are all zero.
func Compare(prev, cur *Snapshot) Diff {
	if prev == nil {
		prev = &Snapshot{ProjectType: cur.ProjectType}
	}

	d := Diff{
		PreviousID:         prev.ID,
		CurrentID:          cur.ID,
		ProjectTypeChanged: prev.ProjectType != cur.ProjectType,
	}

	metrics := []struct {
		name      string
		prev, cur int64
	}{
		{"files", int64(prev.FileCount), int64(cur.FileCount)},
		{"directories", int64(prev.DirCount), int64(cur.DirCount)},
		{"total_size", int64(prev.TotalSize), int64(cur.TotalSize)},
		{"estimated_lines", int64(prev.EstimatedLines), int64(cur.EstimatedLines)},
	}
	for _, m := range metrics {
		d.Deltas = append(d.Deltas, Delta{
			Metric:   m.name,
			Previous: m.prev,
			Current:  m.cur,
			Change:   m.cur - m.prev,
		})
	}
	return d
}
