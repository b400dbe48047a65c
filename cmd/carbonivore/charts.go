package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sukhman0345/theCarbonivore/cmd/carbonivore/chartcfg"
	"github.com/sukhman0345/theCarbonivore/src/aggregate"
	"github.com/sukhman0345/theCarbonivore/src/applog"
	"github.com/sukhman0345/theCarbonivore/src/config"
	"github.com/sukhman0345/theCarbonivore/src/dataset"
)

// rankedBarLimit caps the area-ranked overview bar so labels stay readable.
const rankedBarLimit = 30

type pngRenderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// renderPNG renders ch to PNG and decodes it back into an image for a
// canvas. Failures degrade to a captioned placeholder; the dashboard never
// hard-fails on a single chart.
func renderPNG(ch pngRenderable, w, h int, name string) image.Image {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		applog.Warnf("chart %s: render failed: %v", name, err)
		return captioned(w, h, name+" unavailable")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		applog.Warnf("chart %s: decode failed: %v", name, err)
		return captioned(w, h, name+" unavailable")
	}
	return img
}

func drawingColor(i int) drawing.Color {
	c := colorFor(i)
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// renderTotalEmissionsBar ranks areas by their summed total emission. This
// stands in for the original map view: same measure, same per-area ranking,
// minus the geography.
func renderTotalEmissionsBar(t *dataset.Table) image.Image {
	w, h := chartcfg.ComputeChartDimensions(1100)
	g, err := aggregate.GroupSum(t, dataset.ColTotalEmission)
	if err == nil {
		g, err = aggregate.TopN(g, dataset.ColTotalEmission, rankedBarLimit, false)
	}
	if err != nil || g.Len() == 0 {
		if err != nil {
			applog.Warnf("total emissions bar: %v", err)
		}
		return captioned(w, h, "no data selected")
	}

	bars := make([]chart.Value, 0, g.Len())
	for i, area := range g.Keys {
		v, _ := g.Value(dataset.ColTotalEmission, i)
		if math.IsNaN(v) {
			continue
		}
		bars = append(bars, chart.Value{
			Label: chartcfg.TruncateLabel(area, 12),
			Value: v,
			Style: chart.Style{FillColor: drawingColor(0), StrokeColor: drawingColor(0)},
		})
	}
	if len(bars) == 0 {
		return captioned(w, h, "no data selected")
	}
	bc := chart.BarChart{
		Title:    "Area-wise Total Emissions",
		Width:    w,
		Height:   h,
		BarWidth: maxInt(10, (w-100)/len(bars)-6),
		Bars:     bars,
	}
	return renderPNG(bc, w, h, "total emissions")
}

// renderRiceLine plots the per-area yearly mean of rice cultivation
// emissions as one line per area.
func renderRiceLine(t *dataset.Table) image.Image {
	w, h := chartcfg.ComputeChartDimensions(1100)
	series, err := aggregate.AreaYearMean(t, dataset.ColRiceCultivation)
	if err != nil || len(series) == 0 {
		if err != nil {
			applog.Warnf("rice line: %v", err)
		}
		return captioned(w, h, "no data selected")
	}

	var plotted []chart.Series
	for i, ys := range series {
		xs := make([]float64, 0, len(ys.Years))
		vs := make([]float64, 0, len(ys.Values))
		for j, v := range ys.Values {
			if math.IsNaN(v) {
				continue
			}
			xs = append(xs, float64(ys.Years[j]))
			vs = append(vs, v)
		}
		if len(xs) < 2 {
			continue
		}
		plotted = append(plotted, chart.ContinuousSeries{
			Name:    chartcfg.TruncateLabel(ys.Area, 18),
			XValues: xs,
			YValues: vs,
			Style:   chart.Style{StrokeColor: drawingColor(i), StrokeWidth: 1.5},
		})
	}
	if len(plotted) == 0 {
		return captioned(w, h, "no data selected")
	}
	lc := chart.Chart{
		Title:  "Rice Cultivation Emissions over Time",
		Width:  w,
		Height: h,
		XAxis: chart.XAxis{ValueFormatter: func(v interface{}) string {
			return chart.FloatValueFormatterWithFormat(v, "%.0f")
		}},
		Series: plotted,
	}
	// a legend with hundreds of areas would swallow the plot
	if len(plotted) <= len(seriesPalette) {
		lc.Elements = []chart.Renderable{chart.Legend(&lc)}
	}
	return renderPNG(lc, w, h, "rice cultivation")
}

var fireColumns = []string{dataset.ColForestFires, dataset.ColSavannaFires, dataset.ColFiresHumidTropical}

// renderFireStackedBar shows the top areas by mean fire-based emissions,
// one stacked segment per fire type.
func renderFireStackedBar(t *dataset.Table, cfg *config.Config) image.Image {
	w, h := chartcfg.ComputeChartDimensions(1100)
	g, err := aggregate.GroupMean(t, fireColumns...)
	if err == nil {
		g, err = aggregate.DeriveGroupTotal(g, "Total Emissions", fireColumns...)
	}
	if err == nil {
		g, err = aggregate.TopN(g, "Total Emissions", cfg.Charts.TopFireAreas, false)
	}
	if err != nil || g.Len() == 0 {
		if err != nil {
			applog.Warnf("fire stacked bar: %v", err)
		}
		return captioned(w, h, "no data selected")
	}

	melted, err := aggregate.Melt(g, fireColumns...)
	if err != nil {
		applog.Warnf("fire stacked bar: %v", err)
		return captioned(w, h, "no data selected")
	}
	return renderPNG(stackedBars("Top Areas by Fire-Based Emissions", w, h, g.Keys, fireColumns, melted), w, h, "fire emissions")
}

// stackedBars assembles a StackedBarChart from melted key/variable/value
// rows; segment colors follow the variable order.
func stackedBars(title string, w, h int, keys, variables []string, melted []aggregate.MeltRow) chart.StackedBarChart {
	varIndex := make(map[string]int, len(variables))
	for i, v := range variables {
		varIndex[v] = i
	}
	byKey := make(map[string][]chart.Value, len(keys))
	for _, m := range melted {
		if math.IsNaN(m.Value) || m.Value < 0 {
			continue
		}
		byKey[m.Key] = append(byKey[m.Key], chart.Value{
			Label: m.Variable,
			Value: m.Value,
			Style: chart.Style{FillColor: drawingColor(varIndex[m.Variable]), StrokeColor: drawingColor(varIndex[m.Variable])},
		})
	}
	bars := make([]chart.StackedBar, 0, len(keys))
	width := maxInt(6, (w-120)/maxInt(1, len(keys))-4)
	for _, k := range keys {
		vals := byKey[k]
		if len(vals) == 0 {
			continue
		}
		bars = append(bars, chart.StackedBar{Name: chartcfg.TruncateLabel(k, 10), Width: width, Values: vals})
	}
	return chart.StackedBarChart{
		Title:        title,
		Width:        w,
		Height:       h,
		XAxis:        chart.Shown(),
		YAxis:        chart.Shown(),
		Bars:         bars,
		BarSpacing:   4,
		IsHorizontal: false,
	}
}

var industrialColumns = []string{dataset.ColIPPU, dataset.ColOnFarmElectricityUse, dataset.ColFoodProcessing}

// renderIndustrialPie shows the industrial emission composition for the
// latest year present in the filtered data.
func renderIndustrialPie(t *dataset.Table) image.Image {
	w, h := chartcfg.ComputeChartDimensions(900)
	year, ok := aggregate.MaxYear(t)
	if !ok {
		return captioned(w, h, "no data selected")
	}
	sel := dataset.AllSelection(t)
	sel.Years = []int{year}
	totals, err := aggregate.SumColumns(t.Filter(sel), industrialColumns...)
	if err != nil {
		applog.Warnf("industrial pie: %v", err)
		return captioned(w, h, "no data selected")
	}

	values := make([]chart.Value, 0, len(totals))
	for i, ct := range totals {
		if ct.Total <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: ct.Column,
			Value: ct.Total,
			Style: chart.Style{FillColor: drawingColor(i)},
		})
	}
	if len(values) == 0 {
		return captioned(w, h, "no data selected")
	}
	pc := chart.PieChart{
		Title:  fmt.Sprintf("Industrial Emission Proportion in %d", year),
		Width:  w,
		Height: h,
		Values: values,
	}
	return renderPNG(pc, w, h, "industrial emissions")
}

var heatmapColumns = []string{
	dataset.ColTotalEmission,
	dataset.ColRuralPopulation,
	dataset.ColUrbanPopulation,
	dataset.ColPopulationMale,
	dataset.ColPopulationFemale,
	dataset.ColOnFarmEnergyUse,
}

// renderCorrelationHeatmap draws the Pearson correlation grid for the
// population and energy columns against total emission. Hand-drawn: the
// chart library has no matrix plot.
func renderCorrelationHeatmap(t *dataset.Table) image.Image {
	chartW, _ := chartcfg.ComputeChartDimensions(900)
	m, err := aggregate.CorrelationMatrix(t, heatmapColumns...)
	if err != nil {
		applog.Warnf("correlation heatmap: %v", err)
		return captioned(chartW, 320, "no data selected")
	}

	n := len(m.Columns)
	cell := chartcfg.ComputeHeatmapCellSize(chartW, n)
	margin := 180
	size := margin + n*cell + 20
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	bg := color.RGBA{R: 24, G: 26, B: 30, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, bg)
		}
	}

	label := color.RGBA{R: 220, G: 220, B: 220, A: 255}
	for i, colName := range m.Columns {
		short := chartcfg.TruncateLabel(colName, 24)
		// row label, right-aligned against the grid
		x := margin - 8 - len(short)*7
		if x < 2 {
			x = 2
		}
		drawText(img, x, margin+i*cell+cell/2+4, short, label)
		// column header, stacked to stay inside the margin
		drawText(img, margin+i*cell+2, margin-10-((n-1-i)%3)*14, chartcfg.TruncateLabel(colName, 14), label)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.M[i][j]
			x0, y0 := margin+j*cell, margin+i*cell
			fill := heatColor(v)
			for y := y0; y < y0+cell-1; y++ {
				for x := x0; x < x0+cell-1; x++ {
					img.Set(x, y, fill)
				}
			}
			text := "n/a"
			if !math.IsNaN(v) {
				text = fmt.Sprintf("%.2f", v)
			}
			drawText(img, x0+(cell-len(text)*7)/2, y0+cell/2+4, text, color.RGBA{A: 255})
		}
	}
	return img
}

// heatColor maps [-1, 1] onto a blue-white-red ramp; NaN cells are gray.
func heatColor(v float64) color.RGBA {
	if math.IsNaN(v) {
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	lerp := func(a, b uint8, f float64) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*f) }
	white := color.RGBA{R: 245, G: 245, B: 245, A: 255}
	if v < 0 {
		blue := color.RGBA{R: 0x2b, G: 0x5c, B: 0xaa, A: 255}
		f := -v
		return color.RGBA{R: lerp(white.R, blue.R, f), G: lerp(white.G, blue.G, f), B: lerp(white.B, blue.B, f), A: 255}
	}
	red := color.RGBA{R: 0xc0, G: 0x3a, B: 0x2b, A: 255}
	return color.RGBA{R: lerp(white.R, red.R, v), G: lerp(white.G, red.G, v), B: lerp(white.B, red.B, v), A: 255}
}

const colTotalPopulation = "Total Population"

// renderPopulationDonut shows the gender split of the most populous record
// rows, the flat stand-in for the original two-level hierarchy.
func renderPopulationDonut(t *dataset.Table, cfg *config.Config) image.Image {
	w, h := chartcfg.ComputeChartDimensions(900)
	top, err := aggregate.DeriveColumn(t, colTotalPopulation, dataset.ColPopulationMale, dataset.ColPopulationFemale)
	if err == nil {
		top, err = aggregate.TopRows(top, colTotalPopulation, cfg.Charts.TopPopulationRows, false)
	}
	if err != nil || top.Len() == 0 {
		if err != nil {
			applog.Warnf("population donut: %v", err)
		}
		return captioned(w, h, "no data selected")
	}

	totals, err := aggregate.SumColumns(top, dataset.ColPopulationMale, dataset.ColPopulationFemale)
	if err != nil {
		applog.Warnf("population donut: %v", err)
		return captioned(w, h, "no data selected")
	}
	values := make([]chart.Value, 0, len(totals))
	for i, ct := range totals {
		if ct.Total <= 0 {
			continue
		}
		values = append(values, chart.Value{Label: ct.Column, Value: ct.Total, Style: chart.Style{FillColor: drawingColor(i)}})
	}
	if len(values) == 0 {
		return captioned(w, h, "no data selected")
	}
	dc := chart.DonutChart{
		Title:  fmt.Sprintf("Gender Split of Top %d Population Records", top.Len()),
		Width:  w,
		Height: h,
		Values: values,
	}
	return renderPNG(dc, w, h, "population split")
}

var populationColumns = []string{dataset.ColRuralPopulation, dataset.ColUrbanPopulation}

// renderRuralUrbanStacked ranks areas by combined rural+urban population.
// It intentionally uses the full dataset rather than the filter selection,
// keeping the ranking stable while the user explores.
func renderRuralUrbanStacked(full *dataset.Table, cfg *config.Config) image.Image {
	w, h := chartcfg.ComputeChartDimensions(1100)
	g, err := aggregate.GroupSum(full, populationColumns...)
	if err == nil {
		g, err = aggregate.DeriveGroupTotal(g, "total", populationColumns...)
	}
	if err == nil {
		g, err = aggregate.TopN(g, "total", cfg.Charts.TopPopulationAreas, false)
	}
	if err != nil || g.Len() == 0 {
		if err != nil {
			applog.Warnf("rural/urban bar: %v", err)
		}
		return captioned(w, h, "no data available")
	}
	melted, err := aggregate.Melt(g, populationColumns...)
	if err != nil {
		applog.Warnf("rural/urban bar: %v", err)
		return captioned(w, h, "no data available")
	}
	return renderPNG(stackedBars("Top Areas by Rural vs Urban Population", w, h, g.Keys, populationColumns, melted), w, h, "rural vs urban")
}

const colAgriTotal = "Agri_total_Emission"

// scatterDotWidths maps the three transport-volume buckets onto dot sizes.
var scatterDotWidths = []float64{2, 4, 7}

// renderAgriScatter plots pesticides vs fertilizers manufacturing
// emissions; dot size encodes food-transport emissions in three buckets.
func renderAgriScatter(t *dataset.Table, cfg *config.Config) image.Image {
	w, h := chartcfg.ComputeChartDimensions(1000)
	derived, err := aggregate.DeriveColumn(t, colAgriTotal,
		dataset.ColPesticidesManuf, dataset.ColFertilizersManuf, dataset.ColFoodTransport)
	if err == nil {
		derived, err = aggregate.TopRows(derived, colAgriTotal, cfg.Charts.ScatterRows, true)
	}
	if err != nil || derived.Len() == 0 {
		if err != nil {
			applog.Warnf("agri scatter: %v", err)
		}
		return captioned(w, h, "no data selected")
	}

	transport, _ := derived.Column(dataset.ColFoodTransport)
	tMin, tMax := math.Inf(1), math.Inf(-1)
	for _, v := range transport {
		if math.IsNaN(v) {
			continue
		}
		tMin = math.Min(tMin, v)
		tMax = math.Max(tMax, v)
	}

	buckets := make([]struct{ xs, ys []float64 }, len(scatterDotWidths))
	for i := 0; i < derived.Len(); i++ {
		x, _ := derived.Value(dataset.ColPesticidesManuf, i)
		y, _ := derived.Value(dataset.ColFertilizersManuf, i)
		s := transport[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(s) {
			continue
		}
		b := chartcfg.SizeBucket(s, tMin, tMax, len(scatterDotWidths))
		buckets[b].xs = append(buckets[b].xs, x)
		buckets[b].ys = append(buckets[b].ys, y)
	}

	var series []chart.Series
	for i, b := range buckets {
		if len(b.xs) == 0 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("transport tier %d", i+1),
			XValues: b.xs,
			YValues: b.ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    scatterDotWidths[i],
				DotColor:    drawingColor(i),
			},
		})
	}
	if len(series) == 0 {
		return captioned(w, h, "no data selected")
	}
	sc := chart.Chart{
		Title:  "Agricultural Manufacturing Emissions",
		Width:  w,
		Height: h,
		XAxis:  chart.XAxis{Name: "Pesticides CO₂ (kt)"},
		YAxis:  chart.YAxis{Name: "Fertilizers CO₂ (kt)"},
		Series: series,
	}
	sc.Elements = []chart.Renderable{chart.Legend(&sc)}
	return renderPNG(sc, w, h, "agri scatter")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
