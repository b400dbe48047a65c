// Package aggregate derives the summary tables behind each chart: group
// means and sums by area, top-N subsets, long-form melts, composite column
// derivation and Pearson correlation. Every operation is a pure function of
// its input table; nothing here mutates a loaded dataset.
package aggregate

import (
	"math"
	"sort"

	"github.com/sukhman0345/theCarbonivore/src/dataset"
)

// Grouped is an aggregate keyed by area. Keys keep first-appearance order
// from the source table so ties in later sorts stay deterministic.
type Grouped struct {
	Keys    []string
	Columns []string
	values  map[string][]float64
}

// Value returns the aggregated value for (col, group i).
func (g *Grouped) Value(col string, i int) (float64, error) {
	vs, ok := g.values[col]
	if !ok {
		return 0, &dataset.ColumnError{Column: col}
	}
	return vs[i], nil
}

// Column returns the aggregated values for one column across all groups.
func (g *Grouped) Column(col string) ([]float64, error) {
	vs, ok := g.values[col]
	if !ok {
		return nil, &dataset.ColumnError{Column: col}
	}
	return vs, nil
}

// Len returns the number of groups.
func (g *Grouped) Len() int { return len(g.Keys) }

type groupMode int

const (
	modeMean groupMode = iota
	modeSum
)

func groupBy(t *dataset.Table, mode groupMode, valueCols []string) (*Grouped, error) {
	type acc struct {
		sum   []float64
		count []int
	}
	cols := make([][]float64, len(valueCols))
	for i, c := range valueCols {
		vs, err := t.Column(c)
		if err != nil {
			return nil, err
		}
		cols[i] = vs
	}
	index := make(map[string]*acc)
	var keys []string
	for row := 0; row < t.Len(); row++ {
		k := t.Area(row)
		a, ok := index[k]
		if !ok {
			a = &acc{sum: make([]float64, len(valueCols)), count: make([]int, len(valueCols))}
			index[k] = a
			keys = append(keys, k)
		}
		for ci, vs := range cols {
			v := vs[row]
			if math.IsNaN(v) {
				// mean: excluded from the denominator; sum: counts as zero
				continue
			}
			a.sum[ci] += v
			a.count[ci]++
		}
	}
	g := &Grouped{Keys: keys, Columns: append([]string(nil), valueCols...), values: make(map[string][]float64, len(valueCols))}
	for ci, c := range valueCols {
		out := make([]float64, len(keys))
		for ki, k := range keys {
			a := index[k]
			switch mode {
			case modeMean:
				if a.count[ci] == 0 {
					out[ki] = math.NaN()
				} else {
					out[ki] = a.sum[ci] / float64(a.count[ci])
				}
			case modeSum:
				out[ki] = a.sum[ci]
			}
		}
		g.values[c] = out
	}
	return g, nil
}

// GroupMean averages each value column per area. NaN cells are excluded from
// the denominator per column; a group with no values for a column is NaN.
func GroupMean(t *dataset.Table, valueCols ...string) (*Grouped, error) {
	return groupBy(t, modeMean, valueCols)
}

// GroupSum sums each value column per area, treating NaN cells as zero.
func GroupSum(t *dataset.Table, valueCols ...string) (*Grouped, error) {
	return groupBy(t, modeSum, valueCols)
}

// DeriveGroupTotal appends the row-wise sum of srcCols as a new column on a
// copy of g; used for composite sort keys like total fire emissions.
func DeriveGroupTotal(g *Grouped, name string, srcCols ...string) (*Grouped, error) {
	srcs := make([][]float64, len(srcCols))
	for i, c := range srcCols {
		vs, err := g.Column(c)
		if err != nil {
			return nil, err
		}
		srcs[i] = vs
	}
	out := &Grouped{
		Keys:    append([]string(nil), g.Keys...),
		Columns: append(append([]string(nil), g.Columns...), name),
		values:  make(map[string][]float64, len(g.Columns)+1),
	}
	for _, c := range g.Columns {
		out.values[c] = append([]float64(nil), g.values[c]...)
	}
	total := make([]float64, g.Len())
	for i := range total {
		for _, vs := range srcs {
			total[i] += vs[i]
		}
	}
	out.values[name] = total
	return out, nil
}

// TopN stable-sorts groups by sortCol and keeps the first n. Equal keys stay
// in their original relative order. n larger than the group count keeps all.
func TopN(g *Grouped, sortCol string, n int, ascending bool) (*Grouped, error) {
	sortVals, err := g.Column(sortCol)
	if err != nil {
		return nil, err
	}
	order := make([]int, g.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := sortVals[order[a]], sortVals[order[b]]
		// NaN sorts last in either direction
		if math.IsNaN(va) {
			return false
		}
		if math.IsNaN(vb) {
			return true
		}
		if ascending {
			return va < vb
		}
		return va > vb
	})
	if n > len(order) {
		n = len(order)
	}
	order = order[:n]
	out := &Grouped{Columns: append([]string(nil), g.Columns...), values: make(map[string][]float64, len(g.Columns))}
	out.Keys = make([]string, n)
	for i, idx := range order {
		out.Keys[i] = g.Keys[idx]
	}
	for _, c := range g.Columns {
		vs := make([]float64, n)
		for i, idx := range order {
			vs[i] = g.values[c][idx]
		}
		out.values[c] = vs
	}
	return out, nil
}

// MeltRow is one (id, variable, value) triple of a long-form reshape.
type MeltRow struct {
	Key      string
	Variable string
	Value    float64
}

// Melt reshapes a Grouped into long form: per group in order, one row per
// value column in the order given.
func Melt(g *Grouped, valueCols ...string) ([]MeltRow, error) {
	cols := make([][]float64, len(valueCols))
	for i, c := range valueCols {
		vs, err := g.Column(c)
		if err != nil {
			return nil, err
		}
		cols[i] = vs
	}
	out := make([]MeltRow, 0, g.Len()*len(valueCols))
	for ki, k := range g.Keys {
		for ci, c := range valueCols {
			out = append(out, MeltRow{Key: k, Variable: c, Value: cols[ci][ki]})
		}
	}
	return out, nil
}

// MeltTable reshapes raw table rows into long form with Area as the id
// column. Output length is rows × len(valueCols).
func MeltTable(t *dataset.Table, valueCols ...string) ([]MeltRow, error) {
	cols := make([][]float64, len(valueCols))
	for i, c := range valueCols {
		vs, err := t.Column(c)
		if err != nil {
			return nil, err
		}
		cols[i] = vs
	}
	out := make([]MeltRow, 0, t.Len()*len(valueCols))
	for row := 0; row < t.Len(); row++ {
		for ci, c := range valueCols {
			out = append(out, MeltRow{Key: t.Area(row), Variable: c, Value: cols[ci][row]})
		}
	}
	return out, nil
}

// DeriveColumn returns a copy of t with the row-wise sum of srcCols appended
// under name. NaN propagates: a row missing any source value derives NaN.
func DeriveColumn(t *dataset.Table, name string, srcCols ...string) (*dataset.Table, error) {
	srcs := make([][]float64, len(srcCols))
	for i, c := range srcCols {
		vs, err := t.Column(c)
		if err != nil {
			return nil, err
		}
		srcs[i] = vs
	}
	vals := make([]float64, t.Len())
	for row := range vals {
		for _, vs := range srcs {
			vals[row] += vs[row]
		}
	}
	return t.WithColumn(name, vals)
}

// TopRows stable-sorts individual rows by col and keeps the first n; the
// row-level counterpart of TopN for charts ranking records, not groups.
func TopRows(t *dataset.Table, col string, n int, ascending bool) (*dataset.Table, error) {
	vs, err := t.Column(col)
	if err != nil {
		return nil, err
	}
	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := vs[order[a]], vs[order[b]]
		if math.IsNaN(va) {
			return false
		}
		if math.IsNaN(vb) {
			return true
		}
		if ascending {
			return va < vb
		}
		return va > vb
	})
	if n > len(order) {
		n = len(order)
	}
	out := dataset.NewTable(t.Columns())
	for _, idx := range order[:n] {
		vals := make(map[string]float64, len(t.Columns()))
		for _, c := range t.Columns() {
			v, _ := t.Value(c, idx)
			vals[c] = v
		}
		out.AppendRow(t.Area(idx), t.Year(idx), vals)
	}
	return out, nil
}

// ColumnTotal pairs a column with its NaN-skipping total.
type ColumnTotal struct {
	Column string
	Total  float64
}

// SumColumns totals each named column over all rows, skipping NaN cells.
func SumColumns(t *dataset.Table, cols ...string) ([]ColumnTotal, error) {
	out := make([]ColumnTotal, 0, len(cols))
	for _, c := range cols {
		vs, err := t.Column(c)
		if err != nil {
			return nil, err
		}
		var sum float64
		for _, v := range vs {
			if !math.IsNaN(v) {
				sum += v
			}
		}
		out = append(out, ColumnTotal{Column: c, Total: sum})
	}
	return out, nil
}

// MaxYear returns the latest year present; ok is false for an empty table.
func MaxYear(t *dataset.Table) (int, bool) {
	if t.Len() == 0 {
		return 0, false
	}
	max := t.Year(0)
	for i := 1; i < t.Len(); i++ {
		if y := t.Year(i); y > max {
			max = y
		}
	}
	return max, true
}
