package output

import (
	"strings"
	"testing"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{999, "999 B"},
		{4200, "4.2 kB"},
		{3_000_000, "3.0 MB"},
	}
	for _, tc := range tests {
		if got := Bytes(tc.in); got != tc.want {
			t.Errorf("Bytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count(1234567); got != "1,234,567" {
		t.Errorf("Count = %q", got)
	}
	if got := Count(uint64(12)); got != "12" {
		t.Errorf("Count = %q", got)
	}
}

func TestMillis(t *testing.T) {
	if got := Millis(250); got != "250ms" {
		t.Errorf("Millis(250) = %q", got)
	}
	if got := Millis(1500); got != "1.50s" {
		t.Errorf("Millis(1500) = %q", got)
	}
}

func TestPercentBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		pct    float64
		filled int
		label  string
	}{
		{0, 0, "0.0%"},
		{60, 6, "60.0%"},
		{100, 10, "100.0%"},
		{150, 10, "150.0%"},
		{-5, 0, "-5.0%"},
	}
	for _, tc := range tests {
		bar := PercentBar(tc.pct, 10)
		if got := strings.Count(bar, "█"); got != tc.filled {
			t.Errorf("PercentBar(%v) filled = %d, want %d", tc.pct, got, tc.filled)
		}
		if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != 10 {
			t.Errorf("PercentBar(%v) width = %d, want 10", tc.pct, got)
		}
		if !strings.HasSuffix(bar, tc.label) {
			t.Errorf("PercentBar(%v) = %q, want suffix %q", tc.pct, bar, tc.label)
		}
	}
}

func TestPercentBar_DefaultWidth(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	bar := PercentBar(50, 0)
	if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != 20 {
		t.Errorf("expected default width 20, got %d", got)
	}
}

func TestTrendArrow(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if got := TrendArrow(0, true, nil); got != "─" {
		t.Errorf("zero delta = %q", got)
	}
	if got := TrendArrow(1500, true, nil); got != "▲ +1,500" {
		t.Errorf("positive delta = %q", got)
	}
	if got := TrendArrow(-2000, true, Bytes); got != "▼ -2.0 kB" {
		t.Errorf("negative bytes delta = %q", got)
	}
}

func TestSection(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	s := Section("Languages")
	if !strings.Contains(s, "Languages") || !strings.Contains(s, "─") {
		t.Errorf("unexpected section %q", s)
	}
}

func TestSetNoColor_Restores(t *testing.T) {
	SetNoColor(true)
	if !IsNoColor() {
		t.Error("expected IsNoColor after SetNoColor(true)")
	}
	SetNoColor(false)
	if IsNoColor() {
		t.Error("expected color enabled after SetNoColor(false)")
	}
	if StyleHeader.GetForeground() != ColorPrimary {
		t.Error("expected header color restored")
	}
}
