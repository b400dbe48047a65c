package main

import (
	"image"
	"math"
	"testing"

	"github.com/sukhman0345/theCarbonivore/src/aggregate"
	"github.com/sukhman0345/theCarbonivore/src/config"
	"github.com/sukhman0345/theCarbonivore/src/dataset"
)

// fixtureTable builds a small schema-complete dataset: three areas, three
// years, deterministic values.
func fixtureTable(t *testing.T) *dataset.Table {
	t.Helper()
	tab := dataset.NewTable(dataset.NumericColumns)
	areas := []string{"China", "Brazil", "Norway"}
	for ai, area := range areas {
		for y := 2018; y <= 2020; y++ {
			vals := make(map[string]float64, len(dataset.NumericColumns))
			for ci, col := range dataset.NumericColumns {
				vals[col] = float64((ai+1)*100 + (y-2018)*10 + ci)
			}
			tab.AppendRow(area, y, vals)
		}
	}
	return tab
}

func checkImage(t *testing.T, img image.Image, name string) {
	t.Helper()
	if img == nil {
		t.Fatalf("%s: got nil image", name)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		t.Fatalf("%s: degenerate bounds %v", name, b)
	}
}

func TestChartRenderersProduceImages(t *testing.T) {
	tab := fixtureTable(t)
	cfg := config.DefaultConfig()

	checkImage(t, renderTotalEmissionsBar(tab), "total emissions bar")
	checkImage(t, renderRiceLine(tab), "rice line")
	checkImage(t, renderFireStackedBar(tab, cfg), "fire stacked bar")
	checkImage(t, renderIndustrialPie(tab), "industrial pie")
	checkImage(t, renderCorrelationHeatmap(tab), "correlation heatmap")
	checkImage(t, renderPopulationDonut(tab, cfg), "population donut")
	checkImage(t, renderRuralUrbanStacked(tab, cfg), "rural/urban stacked")
	checkImage(t, renderAgriScatter(tab, cfg), "agri scatter")
}

func TestChartRenderersHandleEmptyTable(t *testing.T) {
	empty := dataset.NewTable(dataset.NumericColumns)
	cfg := config.DefaultConfig()

	checkImage(t, renderTotalEmissionsBar(empty), "total emissions bar")
	checkImage(t, renderRiceLine(empty), "rice line")
	checkImage(t, renderFireStackedBar(empty, cfg), "fire stacked bar")
	checkImage(t, renderIndustrialPie(empty), "industrial pie")
	checkImage(t, renderCorrelationHeatmap(empty), "correlation heatmap")
	checkImage(t, renderPopulationDonut(empty, cfg), "population donut")
	checkImage(t, renderRuralUrbanStacked(empty, cfg), "rural/urban stacked")
	checkImage(t, renderAgriScatter(empty, cfg), "agri scatter")
}

func TestHeatColorRamp(t *testing.T) {
	gray := heatColor(math.NaN())
	if gray.R != gray.G || gray.G != gray.B {
		t.Fatalf("NaN cell should be gray, got %v", gray)
	}
	hot := heatColor(1)
	if hot.R <= hot.B {
		t.Fatalf("positive correlation should lean red, got %v", hot)
	}
	cold := heatColor(-1)
	if cold.B <= cold.R {
		t.Fatalf("negative correlation should lean blue, got %v", cold)
	}
	mid := heatColor(0)
	if mid.R < 200 || mid.G < 200 || mid.B < 200 {
		t.Fatalf("zero correlation should be near white, got %v", mid)
	}
	// out-of-range inputs clamp rather than wrap
	if heatColor(5) != heatColor(1) {
		t.Fatalf("values above 1 should clamp")
	}
}

func TestStackedBarsSkipsNaNAndNegative(t *testing.T) {
	melted := []aggregate.MeltRow{
		{Key: "A", Variable: "x", Value: 10},
		{Key: "A", Variable: "y", Value: math.NaN()},
		{Key: "B", Variable: "x", Value: -5},
	}
	sbc := stackedBars("t", 800, 400, []string{"A", "B"}, []string{"x", "y"}, melted)
	if len(sbc.Bars) != 1 {
		t.Fatalf("expected only the bar with a usable segment, got %d", len(sbc.Bars))
	}
	if len(sbc.Bars[0].Values) != 1 {
		t.Fatalf("NaN segment should be dropped, got %d segments", len(sbc.Bars[0].Values))
	}
}
