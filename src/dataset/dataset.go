package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sukhman0345/theCarbonivore/src/applog"
)

// Sentinel errors for the load/access taxonomy. ColumnNotFound is kept
// distinct from Parse: it signals a code/data schema mismatch, not bad input.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrParse            = errors.New("parse error")
	ErrColumnNotFound   = errors.New("column not found")
)

// ColumnError reports a missing column by name and unwraps to ErrColumnNotFound.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string { return fmt.Sprintf("column %q not found", e.Column) }
func (e *ColumnError) Unwrap() error { return ErrColumnNotFound }

// Table is a column-oriented, immutable snapshot of the emissions dataset.
// Missing numeric cells are stored as NaN. Duplicate Area×Year rows are kept
// as loaded; downstream aggregation tolerates them.
type Table struct {
	areas   []string
	years   []int
	numeric map[string][]float64
	// numeric column order as declared (plus any derived columns appended)
	columns []string
}

// NewTable builds an empty table with the given numeric columns. Intended for
// tests and for derived tables; Load is the normal constructor.
func NewTable(columns []string) *Table {
	t := &Table{numeric: make(map[string][]float64, len(columns))}
	for _, c := range columns {
		t.columns = append(t.columns, c)
		t.numeric[c] = nil
	}
	return t
}

// AppendRow adds one row. Values missing from vals load as NaN.
func (t *Table) AppendRow(area string, year int, vals map[string]float64) {
	t.areas = append(t.areas, area)
	t.years = append(t.years, year)
	for _, c := range t.columns {
		v, ok := vals[c]
		if !ok {
			v = math.NaN()
		}
		t.numeric[c] = append(t.numeric[c], v)
	}
}

// Load reads the CSV at path into a Table. The whole file must parse: a
// missing file yields ErrResourceNotFound, malformed CSV or an unparseable
// cell yields ErrParse, and a header missing a schema column yields a
// ColumnError immediately rather than failing later at access time.
func Load(path string) (*Table, error) {
	defer applog.TimeTrack(time.Now(), "dataset load")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return read(f, path)
}

func read(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	// field count is locked to the header; ragged rows fail the Read below

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading header: %v", ErrParse, name, err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range append([]string{ColArea, ColYear}, NumericColumns...) {
		if _, ok := idx[col]; !ok {
			return nil, &ColumnError{Column: col}
		}
	}

	t := NewTable(NumericColumns)
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrParse, name, line, err)
		}
		year, err := strconv.Atoi(strings.TrimSpace(rec[idx[ColYear]]))
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad %s %q", ErrParse, name, line, ColYear, rec[idx[ColYear]])
		}
		vals := make(map[string]float64, len(NumericColumns))
		for _, col := range NumericColumns {
			cell := strings.TrimSpace(rec[idx[col]])
			if cell == "" || strings.EqualFold(cell, "na") || strings.EqualFold(cell, "nan") {
				vals[col] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s line %d: bad %s %q", ErrParse, name, line, col, cell)
			}
			vals[col] = v
		}
		t.AppendRow(rec[idx[ColArea]], year, vals)
	}
	applog.Debugf("loaded %s: %d rows, %d numeric columns", name, t.Len(), len(t.columns))
	return t, nil
}

// Len returns the row count.
func (t *Table) Len() int { return len(t.areas) }

// Columns returns the numeric column names in declared order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether a numeric column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.numeric[name]
	return ok
}

// Column returns the values for a numeric column.
func (t *Table) Column(name string) ([]float64, error) {
	vs, ok := t.numeric[name]
	if !ok {
		return nil, &ColumnError{Column: name}
	}
	return vs, nil
}

// Area returns the area of row i.
func (t *Table) Area(i int) string { return t.areas[i] }

// Year returns the year of row i.
func (t *Table) Year(i int) int { return t.years[i] }

// Value returns the numeric cell (col, i). NaN marks a missing value.
func (t *Table) Value(col string, i int) (float64, error) {
	vs, ok := t.numeric[col]
	if !ok {
		return 0, &ColumnError{Column: col}
	}
	return vs[i], nil
}

// DistinctAreas returns area values in first-appearance order.
func (t *Table) DistinctAreas() []string {
	seen := make(map[string]struct{}, 64)
	var out []string
	for _, a := range t.areas {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// DistinctYears returns the years present, sorted ascending.
func (t *Table) DistinctYears() []int {
	seen := make(map[int]struct{}, 32)
	var out []int
	for _, y := range t.years {
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// subset builds a new Table from the given row indices, preserving order.
func (t *Table) subset(rows []int) *Table {
	out := NewTable(t.columns)
	out.areas = make([]string, 0, len(rows))
	out.years = make([]int, 0, len(rows))
	for _, c := range t.columns {
		out.numeric[c] = make([]float64, 0, len(rows))
	}
	for _, i := range rows {
		out.areas = append(out.areas, t.areas[i])
		out.years = append(out.years, t.years[i])
		for _, c := range t.columns {
			out.numeric[c] = append(out.numeric[c], t.numeric[c][i])
		}
	}
	return out
}

// Head returns the first n rows (fewer when the table is shorter).
func (t *Table) Head(n int) *Table {
	if n > t.Len() {
		n = t.Len()
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return t.subset(rows)
}

// Tail returns the last n rows.
func (t *Table) Tail(n int) *Table {
	if n > t.Len() {
		n = t.Len()
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = t.Len() - n + i
	}
	return t.subset(rows)
}

// WithColumn returns a copy of the table with an extra numeric column
// appended. The receiver is not modified. Value count must match Len.
func (t *Table) WithColumn(name string, values []float64) (*Table, error) {
	if len(values) != t.Len() {
		return nil, fmt.Errorf("column %q: %d values for %d rows", name, len(values), t.Len())
	}
	all := make([]int, t.Len())
	for i := range all {
		all[i] = i
	}
	out := t.subset(all)
	if !out.HasColumn(name) {
		out.columns = append(out.columns, name)
	}
	out.numeric[name] = append([]float64(nil), values...)
	return out, nil
}
