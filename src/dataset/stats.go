package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// NullCount pairs a column with its missing-value count.
type NullCount struct {
	Column string
	Nulls  int
}

// NullCounts reports NaN counts per numeric column in declared order. Area
// and Year are included first; both are always fully populated after Load.
func (t *Table) NullCounts() []NullCount {
	out := []NullCount{{Column: ColArea}, {Column: ColYear}}
	for _, c := range t.columns {
		n := 0
		for _, v := range t.numeric[c] {
			if math.IsNaN(v) {
				n++
			}
		}
		out = append(out, NullCount{Column: c, Nulls: n})
	}
	return out
}

// ColumnStats is one row of a describe() summary for a numeric column.
// Quartiles use linear interpolation between order statistics; NaN cells are
// excluded throughout. Std is the sample standard deviation.
type ColumnStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	P50    float64
	P75    float64
	Max    float64
}

// Describe computes summary statistics per numeric column.
func (t *Table) Describe() []ColumnStats {
	out := make([]ColumnStats, 0, len(t.columns))
	for _, c := range t.columns {
		vals := make([]float64, 0, t.Len())
		for _, v := range t.numeric[c] {
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
		cs := ColumnStats{Column: c, Count: len(vals)}
		if len(vals) == 0 {
			cs.Mean, cs.Std = math.NaN(), math.NaN()
			cs.Min, cs.P25, cs.P50, cs.P75, cs.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
			out = append(out, cs)
			continue
		}
		var sum float64
		for _, v := range vals {
			sum += v
		}
		cs.Mean = sum / float64(len(vals))
		if len(vals) > 1 {
			var ss float64
			for _, v := range vals {
				d := v - cs.Mean
				ss += d * d
			}
			cs.Std = math.Sqrt(ss / float64(len(vals)-1))
		} else {
			cs.Std = math.NaN()
		}
		sort.Float64s(vals)
		cs.Min = vals[0]
		cs.Max = vals[len(vals)-1]
		cs.P25 = quantile(vals, 0.25)
		cs.P50 = quantile(vals, 0.50)
		cs.P75 = quantile(vals, 0.75)
		out = append(out, cs)
	}
	return out
}

// quantile interpolates linearly over sorted values.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ColumnInfo mirrors one line of a dtypes/non-null overview.
type ColumnInfo struct {
	Name    string
	DType   string
	NonNull int
}

// Info returns the column type summary shown on the pre-processing page.
func (t *Table) Info() []ColumnInfo {
	out := []ColumnInfo{
		{Name: ColArea, DType: "string", NonNull: t.Len()},
		{Name: ColYear, DType: "int", NonNull: t.Len()},
	}
	for _, c := range t.columns {
		n := 0
		for _, v := range t.numeric[c] {
			if !math.IsNaN(v) {
				n++
			}
		}
		out = append(out, ColumnInfo{Name: c, DType: "float64", NonNull: n})
	}
	return out
}

// DuplicateRows counts rows identical to an earlier row across every column.
func (t *Table) DuplicateRows() int {
	seen := make(map[string]struct{}, t.Len())
	dups := 0
	var b strings.Builder
	for i := 0; i < t.Len(); i++ {
		b.Reset()
		fmt.Fprintf(&b, "%s\x1f%d", t.areas[i], t.years[i])
		for _, c := range t.columns {
			// NaN != NaN, so format the bits textually for a stable key
			fmt.Fprintf(&b, "\x1f%x", math.Float64bits(t.numeric[c][i]))
		}
		k := b.String()
		if _, ok := seen[k]; ok {
			dups++
			continue
		}
		seen[k] = struct{}{}
	}
	return dups
}
