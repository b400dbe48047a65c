package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeCSV writes a schema-complete CSV where each row map overrides the
// default cell value of "1" for any named column.
func writeCSV(t *testing.T, rows []map[string]string) string {
	t.Helper()
	header := append([]string{ColArea, ColYear}, NumericColumns...)
	var b strings.Builder
	b.WriteString(strings.Join(quoteAll(header), ","))
	b.WriteString("\n")
	for _, row := range rows {
		cells := make([]string, len(header))
		for i, col := range header {
			v, ok := row[col]
			if !ok {
				switch col {
				case ColArea:
					v = "Testland"
				case ColYear:
					v = "2000"
				default:
					v = "1"
				}
			}
			cells[i] = v
		}
		b.WriteString(strings.Join(quoteAll(cells), ","))
		b.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func quoteAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = `"` + c + `"`
	}
	return out
}

func TestLoadBasic(t *testing.T) {
	path := writeCSV(t, []map[string]string{
		{ColArea: "A", ColYear: "2000", ColRiceCultivation: "5"},
		{ColArea: "B", ColYear: "2001", ColRiceCultivation: "3.5"},
	})
	tab, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tab.Len() != 2 {
		t.Fatalf("expected 2 rows got %d", tab.Len())
	}
	if tab.Area(0) != "A" || tab.Year(1) != 2001 {
		t.Fatalf("unexpected row data: %s %d", tab.Area(0), tab.Year(1))
	}
	v, err := tab.Value(ColRiceCultivation, 1)
	if err != nil || v != 3.5 {
		t.Fatalf("rice[1] = %v, %v", v, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	// header without total_emission
	var cols []string
	for _, c := range NumericColumns {
		if c != ColTotalEmission {
			cols = append(cols, c)
		}
	}
	header := append([]string{ColArea, ColYear}, cols...)
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(strings.Join(header, ",")+"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
	var ce *ColumnError
	if !errors.As(err, &ce) || ce.Column != ColTotalEmission {
		t.Fatalf("expected ColumnError for %q, got %v", ColTotalEmission, err)
	}
}

func TestLoadBadNumber(t *testing.T) {
	path := writeCSV(t, []map[string]string{
		{ColRiceCultivation: "not-a-number"},
	})
	_, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadShortRow(t *testing.T) {
	header := append([]string{ColArea, ColYear}, NumericColumns...)
	content := strings.Join(quoteAll(header), ",") + "\n" + `"OnlyOneField"` + "\n"
	path := filepath.Join(t.TempDir(), "short.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for a short row, got %v", err)
	}
}

func TestLoadBadYear(t *testing.T) {
	path := writeCSV(t, []map[string]string{
		{ColYear: "twenty"},
	})
	_, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadEmptyCellsBecomeNaN(t *testing.T) {
	path := writeCSV(t, []map[string]string{
		{ColForestFires: ""},
	})
	tab, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v, err := tab.Value(ColForestFires, 0)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if !math.IsNaN(v) {
		t.Fatalf("expected NaN for empty cell, got %v", v)
	}
}

func TestColumnNotFoundAtAccess(t *testing.T) {
	tab := NewTable([]string{"x"})
	tab.AppendRow("A", 2000, map[string]float64{"x": 1})
	if _, err := tab.Column("missing"); !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestDistinctValues(t *testing.T) {
	tab := NewTable([]string{"x"})
	tab.AppendRow("B", 2001, map[string]float64{"x": 1})
	tab.AppendRow("A", 2000, map[string]float64{"x": 1})
	tab.AppendRow("B", 2000, map[string]float64{"x": 1})
	areas := tab.DistinctAreas()
	if len(areas) != 2 || areas[0] != "B" || areas[1] != "A" {
		t.Fatalf("expected first-appearance order [B A], got %v", areas)
	}
	years := tab.DistinctYears()
	if len(years) != 2 || years[0] != 2000 || years[1] != 2001 {
		t.Fatalf("expected sorted years [2000 2001], got %v", years)
	}
}

func TestHeadTail(t *testing.T) {
	tab := NewTable([]string{"x"})
	for i := 0; i < 7; i++ {
		tab.AppendRow("A", 1990+i, map[string]float64{"x": float64(i)})
	}
	h := tab.Head(5)
	if h.Len() != 5 || h.Year(0) != 1990 || h.Year(4) != 1994 {
		t.Fatalf("head wrong: len=%d", h.Len())
	}
	tl := tab.Tail(5)
	if tl.Len() != 5 || tl.Year(0) != 1992 || tl.Year(4) != 1996 {
		t.Fatalf("tail wrong: len=%d", tl.Len())
	}
	if tab.Head(100).Len() != 7 {
		t.Fatalf("head should clamp to table length")
	}
}

func TestWithColumnDoesNotMutate(t *testing.T) {
	tab := NewTable([]string{"x"})
	tab.AppendRow("A", 2000, map[string]float64{"x": 1})
	out, err := tab.WithColumn("y", []float64{9})
	if err != nil {
		t.Fatalf("with column: %v", err)
	}
	if !out.HasColumn("y") {
		t.Fatalf("derived table missing new column")
	}
	if tab.HasColumn("y") {
		t.Fatalf("source table must not gain the column")
	}
}
