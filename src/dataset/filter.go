package dataset

// Selection holds the user-selected filter dimensions. Values outside the
// dataset's domain are permitted and simply match nothing.
type Selection struct {
	Areas []string
	Years []int
}

// AllSelection selects every distinct area and year present in t, matching
// the UI default of everything checked.
func AllSelection(t *Table) Selection {
	return Selection{Areas: t.DistinctAreas(), Years: t.DistinctYears()}
}

// Filter returns the rows whose Area and Year are both members of the
// selection, preserving source row order. Filtering is pure and idempotent.
func (t *Table) Filter(sel Selection) *Table {
	areas := make(map[string]struct{}, len(sel.Areas))
	for _, a := range sel.Areas {
		areas[a] = struct{}{}
	}
	years := make(map[int]struct{}, len(sel.Years))
	for _, y := range sel.Years {
		years[y] = struct{}{}
	}
	var rows []int
	for i := 0; i < t.Len(); i++ {
		if _, ok := areas[t.areas[i]]; !ok {
			continue
		}
		if _, ok := years[t.years[i]]; !ok {
			continue
		}
		rows = append(rows, i)
	}
	return t.subset(rows)
}
