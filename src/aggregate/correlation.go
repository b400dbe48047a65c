package aggregate

import (
	"math"

	"github.com/sukhman0345/theCarbonivore/src/dataset"
)

// Matrix is a symmetric correlation matrix over named columns.
type Matrix struct {
	Columns []string
	M       [][]float64
}

// CorrelationMatrix computes pairwise Pearson correlation over the named
// numeric columns. Pairs are formed from rows where both cells are present;
// a pair with insufficient variance (or fewer than two complete rows) yields
// NaN rather than an error. The diagonal is 1 where the column has nonzero
// variance.
func CorrelationMatrix(t *dataset.Table, cols ...string) (*Matrix, error) {
	data := make([][]float64, len(cols))
	for i, c := range cols {
		vs, err := t.Column(c)
		if err != nil {
			return nil, err
		}
		data[i] = vs
	}
	m := &Matrix{Columns: append([]string(nil), cols...), M: make([][]float64, len(cols))}
	for i := range m.M {
		m.M[i] = make([]float64, len(cols))
	}
	for i := 0; i < len(cols); i++ {
		for j := i; j < len(cols); j++ {
			r := pearson(data[i], data[j])
			m.M[i][j] = r
			m.M[j][i] = r
		}
	}
	return m, nil
}

func pearson(xs, ys []float64) float64 {
	var n float64
	var sx, sy, sxx, syy, sxy float64
	for k := range xs {
		x, y := xs[k], ys[k]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		n++
		sx += x
		sy += y
		sxx += x * x
		syy += y * y
		sxy += x * y
	}
	if n < 2 {
		return math.NaN()
	}
	den := math.Sqrt(n*sxx-sx*sx) * math.Sqrt(n*syy-sy*sy)
	if den == 0 {
		return math.NaN()
	}
	return (n*sxy - sx*sy) / den
}

// YearSeries is one area's mean value per year, years ascending. Feeds the
// per-area line chart.
type YearSeries struct {
	Area   string
	Years  []int
	Values []float64
}

// AreaYearMean averages col per (area, year). Areas come back in
// first-appearance order; NaN cells are excluded from the mean.
func AreaYearMean(t *dataset.Table, col string) ([]YearSeries, error) {
	vs, err := t.Column(col)
	if err != nil {
		return nil, err
	}
	type acc struct {
		sum   map[int]float64
		count map[int]int
	}
	index := make(map[string]*acc)
	var areas []string
	for row := 0; row < t.Len(); row++ {
		a, ok := index[t.Area(row)]
		if !ok {
			a = &acc{sum: map[int]float64{}, count: map[int]int{}}
			index[t.Area(row)] = a
			areas = append(areas, t.Area(row))
		}
		v := vs[row]
		if math.IsNaN(v) {
			continue
		}
		y := t.Year(row)
		a.sum[y] += v
		a.count[y]++
	}
	out := make([]YearSeries, 0, len(areas))
	years := t.DistinctYears()
	for _, area := range areas {
		a := index[area]
		s := YearSeries{Area: area}
		for _, y := range years {
			if a.count[y] == 0 {
				continue
			}
			s.Years = append(s.Years, y)
			s.Values = append(s.Values, a.sum[y]/float64(a.count[y]))
		}
		out = append(out, s)
	}
	return out, nil
}
