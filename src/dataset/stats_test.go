package dataset

import (
	"math"
	"testing"
)

func TestNullCounts(t *testing.T) {
	tab := NewTable([]string{"x", "y"})
	tab.AppendRow("A", 2000, map[string]float64{"x": 1, "y": math.NaN()})
	tab.AppendRow("B", 2001, map[string]float64{"x": math.NaN(), "y": math.NaN()})
	counts := map[string]int{}
	for _, nc := range tab.NullCounts() {
		counts[nc.Column] = nc.Nulls
	}
	if counts[ColArea] != 0 || counts[ColYear] != 0 {
		t.Fatalf("area/year should have no nulls: %v", counts)
	}
	if counts["x"] != 1 || counts["y"] != 2 {
		t.Fatalf("unexpected null counts: %v", counts)
	}
}

func TestDescribe(t *testing.T) {
	tab := NewTable([]string{"x"})
	for _, v := range []float64{1, 2, 3, 4, math.NaN()} {
		tab.AppendRow("A", 2000, map[string]float64{"x": v})
	}
	d := tab.Describe()
	if len(d) != 1 {
		t.Fatalf("expected one column, got %d", len(d))
	}
	cs := d[0]
	if cs.Count != 4 {
		t.Fatalf("NaN must be excluded from count: %d", cs.Count)
	}
	if cs.Mean != 2.5 {
		t.Fatalf("mean = %v", cs.Mean)
	}
	// sample std of 1..4
	want := math.Sqrt((2.25 + 0.25 + 0.25 + 2.25) / 3)
	if math.Abs(cs.Std-want) > 1e-12 {
		t.Fatalf("std = %v want %v", cs.Std, want)
	}
	if cs.Min != 1 || cs.Max != 4 {
		t.Fatalf("min/max = %v/%v", cs.Min, cs.Max)
	}
	if cs.P50 != 2.5 {
		t.Fatalf("median = %v", cs.P50)
	}
	if cs.P25 != 1.75 || cs.P75 != 3.25 {
		t.Fatalf("quartiles = %v/%v", cs.P25, cs.P75)
	}
}

func TestDescribeEmptyColumn(t *testing.T) {
	tab := NewTable([]string{"x"})
	tab.AppendRow("A", 2000, map[string]float64{"x": math.NaN()})
	cs := tab.Describe()[0]
	if cs.Count != 0 || !math.IsNaN(cs.Mean) {
		t.Fatalf("all-NaN column should describe as empty: %+v", cs)
	}
}

func TestInfo(t *testing.T) {
	tab := NewTable([]string{"x"})
	tab.AppendRow("A", 2000, map[string]float64{"x": 1})
	tab.AppendRow("B", 2001, map[string]float64{"x": math.NaN()})
	info := tab.Info()
	if info[0].Name != ColArea || info[0].DType != "string" || info[0].NonNull != 2 {
		t.Fatalf("area info wrong: %+v", info[0])
	}
	last := info[len(info)-1]
	if last.Name != "x" || last.DType != "float64" || last.NonNull != 1 {
		t.Fatalf("x info wrong: %+v", last)
	}
}

func TestDuplicateRows(t *testing.T) {
	tab := NewTable([]string{"x"})
	tab.AppendRow("A", 2000, map[string]float64{"x": 1})
	tab.AppendRow("A", 2000, map[string]float64{"x": 1})
	tab.AppendRow("A", 2000, map[string]float64{"x": 2})
	tab.AppendRow("A", 2000, map[string]float64{"x": math.NaN()})
	tab.AppendRow("A", 2000, map[string]float64{"x": math.NaN()})
	if got := tab.DuplicateRows(); got != 2 {
		t.Fatalf("expected 2 duplicates (one numeric, one NaN), got %d", got)
	}
}
