package dataset

import "testing"

func filterFixture() *Table {
	t := NewTable([]string{ColRiceCultivation})
	t.AppendRow("A", 2000, map[string]float64{ColRiceCultivation: 5})
	t.AppendRow("B", 2000, map[string]float64{ColRiceCultivation: 3})
	t.AppendRow("A", 2001, map[string]float64{ColRiceCultivation: 7})
	return t
}

func TestFilterMembership(t *testing.T) {
	tab := filterFixture()
	got := tab.Filter(Selection{Areas: []string{"A"}, Years: []int{2000, 2001}})
	if got.Len() != 2 {
		t.Fatalf("expected 2 rows got %d", got.Len())
	}
	if got.Area(0) != "A" || got.Year(0) != 2000 {
		t.Fatalf("row 0 = %s/%d", got.Area(0), got.Year(0))
	}
	if got.Area(1) != "A" || got.Year(1) != 2001 {
		t.Fatalf("row 1 = %s/%d", got.Area(1), got.Year(1))
	}
}

func TestFilterIdempotent(t *testing.T) {
	tab := filterFixture()
	sel := Selection{Areas: []string{"A"}, Years: []int{2000, 2001}}
	once := tab.Filter(sel)
	twice := once.Filter(sel)
	if once.Len() != twice.Len() {
		t.Fatalf("idempotence broken: %d vs %d", once.Len(), twice.Len())
	}
	for i := 0; i < once.Len(); i++ {
		if once.Area(i) != twice.Area(i) || once.Year(i) != twice.Year(i) {
			t.Fatalf("row %d differs after second filter", i)
		}
	}
}

func TestFilterOutOfDomainMatchesNothing(t *testing.T) {
	tab := filterFixture()
	got := tab.Filter(Selection{Areas: []string{"Atlantis"}, Years: []int{2000}})
	if got.Len() != 0 {
		t.Fatalf("expected empty view, got %d rows", got.Len())
	}
}

func TestAllSelectionMatchesEverything(t *testing.T) {
	tab := filterFixture()
	got := tab.Filter(AllSelection(tab))
	if got.Len() != tab.Len() {
		t.Fatalf("default selection dropped rows: %d vs %d", got.Len(), tab.Len())
	}
}

func TestFilterBothDimensionsRequired(t *testing.T) {
	tab := filterFixture()
	got := tab.Filter(Selection{Areas: []string{"A", "B"}, Years: []int{2001}})
	if got.Len() != 1 || got.Area(0) != "A" || got.Year(0) != 2001 {
		t.Fatalf("expected only A/2001, got %d rows", got.Len())
	}
}
