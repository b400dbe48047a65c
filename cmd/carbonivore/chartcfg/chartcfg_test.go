package chartcfg

import (
	"math"
	"testing"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{100, 800},
		{799, 800},
		{800, 800},
		{1600, 1600},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.in)
		if w != c.wantW {
			t.Fatalf("width for %d = %d want %d", c.in, w, c.wantW)
		}
		if h < 280 || h > 520 {
			t.Fatalf("height %d out of clamp for input %d", h, c.in)
		}
	}
}

func TestComputeHeatmapCellSize(t *testing.T) {
	if c := ComputeHeatmapCellSize(1000, 6); c < 48 || c > 110 {
		t.Fatalf("cell size out of bounds: %d", c)
	}
	if c := ComputeHeatmapCellSize(100, 6); c != 48 {
		t.Fatalf("narrow chart should clamp to minimum, got %d", c)
	}
	if c := ComputeHeatmapCellSize(5000, 2); c != 110 {
		t.Fatalf("wide chart should clamp to maximum, got %d", c)
	}
}

func TestNiceAxisBoundsWidens(t *testing.T) {
	a, b := NiceAxisBounds(10, 10)
	if a >= b {
		t.Fatalf("degenerate input must widen: [%v,%v]", a, b)
	}
	a, b = NiceAxisBounds(5, 123)
	if a > 5 || b < 123 {
		t.Fatalf("bounds must cover input: [%v,%v]", a, b)
	}
}

func TestNiceTicks(t *testing.T) {
	ticks := NiceTicks(0, 100, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected ticks, got %d", len(ticks))
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Fatalf("ticks not increasing at %d: %v", i, ticks)
		}
	}
	if NiceTicks(0, 1, 1) != nil {
		t.Fatalf("n<2 must yield nil")
	}
}

func TestFormatCompact(t *testing.T) {
	cases := map[float64]string{
		2_500_000_000: "2.5B",
		1_200_000:     "1.2M",
		9_400:         "9.4K",
		42:            "42",
		3.14159:       "3.14",
	}
	for in, want := range cases {
		if got := FormatCompact(in); got != want {
			t.Fatalf("FormatCompact(%v) = %q want %q", in, got, want)
		}
	}
}

func TestSizeBucket(t *testing.T) {
	if b := SizeBucket(0, 0, 100, 3); b != 0 {
		t.Fatalf("min value bucket = %d", b)
	}
	if b := SizeBucket(100, 0, 100, 3); b != 2 {
		t.Fatalf("max value bucket = %d", b)
	}
	if b := SizeBucket(50, 0, 100, 3); b != 1 {
		t.Fatalf("mid value bucket = %d", b)
	}
	if b := SizeBucket(math.NaN(), 0, 100, 3); b != 0 {
		t.Fatalf("NaN bucket = %d", b)
	}
	if b := SizeBucket(5, 5, 5, 3); b != 0 {
		t.Fatalf("degenerate range bucket = %d", b)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := TruncateLabel("United Republic of Tanzania", 12); len([]rune(got)) > 12 {
		t.Fatalf("label not truncated: %q", got)
	}
	if got := TruncateLabel("Chad", 12); got != "Chad" {
		t.Fatalf("short label changed: %q", got)
	}
}
