package main

import (
	"fmt"
	"image"
	"strconv"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sukhman0345/theCarbonivore/src/applog"
	"github.com/sukhman0345/theCarbonivore/src/dataset"
)

// buildVisualizationView is the dashboard proper: sidebar filters on Area
// and Year, summary statistics of the filtered slice, and the chart stack.
// The cleaned dataset is reloaded every time the view is built so edits to
// the CSV show up without restarting.
func buildVisualizationView(state *uiState) fyne.CanvasObject {
	full, err := dataset.Load(state.cfg.Data.CleanedPath)
	if err != nil {
		applog.Errorf("visualization view: %v", err)
		msg := widget.NewLabel(fmt.Sprintf("⚠️ Could not load dataset %q: %v", state.cfg.Data.CleanedPath, err))
		msg.Wrapping = fyne.TextWrapWord
		return container.NewPadded(msg)
	}
	areas := full.DistinctAreas()
	areaGroup := widget.NewCheckGroup(areas, nil)
	areaGroup.SetSelected(append([]string(nil), areas...))

	years := full.DistinctYears()
	yearOpts := make([]string, 0, len(years))
	for _, y := range years {
		yearOpts = append(yearOpts, strconv.Itoa(y))
	}
	yearGroup := widget.NewCheckGroup(yearOpts, nil)
	yearGroup.SetSelected(append([]string(nil), yearOpts...))

	content := container.NewVBox()
	refresh := func() {
		sel := dataset.Selection{
			Areas: append([]string(nil), areaGroup.Selected...),
			Years: parseYears(yearGroup.Selected),
		}
		content.Objects = buildVizSections(state, full, full.Filter(sel))
		content.Refresh()
	}

	sidebar := container.NewVBox(
		widget.NewLabelWithStyle("🔍 Filter Options", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewButton("Apply Filters", refresh),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Area(s)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(
			widget.NewButton("All", func() { areaGroup.SetSelected(append([]string(nil), areas...)) }),
			widget.NewButton("None", func() { areaGroup.SetSelected(nil) }),
		),
		areaGroup,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Year(s)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(
			widget.NewButton("All", func() { yearGroup.SetSelected(append([]string(nil), yearOpts...)) }),
			widget.NewButton("None", func() { yearGroup.SetSelected(nil) }),
		),
		yearGroup,
	)

	refresh()
	return container.NewBorder(nil, nil, container.NewVScroll(sidebar), nil, container.NewVScroll(container.NewPadded(content)))
}

func parseYears(selected []string) []int {
	out := make([]int, 0, len(selected))
	for _, s := range selected {
		y, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		out = append(out, y)
	}
	return out
}

// chartImage wraps a rendered chart for layout inside the scroll column.
func chartImage(img image.Image) fyne.CanvasObject {
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillOriginal
	return ci
}

// buildVizSections produces the ordered content column: overview stats on
// the filtered slice, then the eight charts.
func buildVizSections(state *uiState, full, filtered *dataset.Table) []fyne.CanvasObject {
	heading := func(text string) fyne.CanvasObject {
		return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}

	nullRows := make([][]string, 0, len(filtered.Columns()))
	for _, nc := range filtered.NullCounts() {
		nullRows = append(nullRows, []string{nc.Column, fmt.Sprintf("%d", nc.Nulls)})
	}

	descRows := make([][]string, 0, len(filtered.Columns()))
	for _, cs := range filtered.Describe() {
		descRows = append(descRows, []string{
			cs.Column, fmt.Sprintf("%d", cs.Count),
			formatCell(cs.Mean), formatCell(cs.Std),
			formatCell(cs.Min), formatCell(cs.P25), formatCell(cs.P50), formatCell(cs.P75), formatCell(cs.Max),
		})
	}

	cfg := state.cfg
	return []fyne.CanvasObject{
		widget.NewLabelWithStyle("📊 Visualization of Data", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(fmt.Sprintf("Shape: %d rows × %d columns", filtered.Len(), len(filtered.Columns()))),
		widget.NewSeparator(),

		heading("Null Values"),
		newStringTable([]string{"Column", "Nulls"}, nullRows),
		widget.NewSeparator(),

		heading("Summary Statistics"),
		container.NewHScroll(newStringTable(
			[]string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}, descRows)),
		widget.NewSeparator(),

		heading("🔼 Head"),
		container.NewHScroll(newStringTable(previewHeaders(filtered), tableRows(filtered.Head(5)))),
		heading("🔽 Tail"),
		container.NewHScroll(newStringTable(previewHeaders(filtered), tableRows(filtered.Tail(5)))),
		widget.NewSeparator(),

		heading("🌍 Total Emissions by Area"),
		chartImage(renderTotalEmissionsBar(filtered)),
		widget.NewSeparator(),

		heading("📈 Rice Cultivation Emissions Over Time"),
		chartImage(renderRiceLine(filtered)),
		widget.NewSeparator(),

		heading("🔥 Top Areas by Fire-Based Emissions"),
		chartImage(renderFireStackedBar(filtered, cfg)),
		widget.NewSeparator(),

		heading("🏭 Industrial Emission Composition"),
		chartImage(renderIndustrialPie(filtered)),
		widget.NewSeparator(),

		heading("🌡️ Correlation with Total Emission"),
		chartImage(renderCorrelationHeatmap(filtered)),
		widget.NewSeparator(),

		heading("🧑‍🤝‍🧑 Gender-wise Population Distribution"),
		chartImage(renderPopulationDonut(filtered, cfg)),
		widget.NewSeparator(),

		heading("🏘️ Top Areas by Rural vs Urban Population"),
		chartImage(renderRuralUrbanStacked(full, cfg)),
		widget.NewSeparator(),

		heading("🚜 Agricultural Manufacturing Emissions"),
		chartImage(renderAgriScatter(filtered, cfg)),
	}
}
