package main

import (
	"fmt"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sukhman0345/theCarbonivore/src/applog"
	"github.com/sukhman0345/theCarbonivore/src/dataset"
)

// buildPreprocessingView walks through the raw (pre-cleaning) dataset:
// previews, duplicate count, null counts and column dtypes. It always
// reads the raw CSV, never the cleaned one, so the cleaning story stays
// honest even when the filter panel elsewhere narrows the data.
func buildPreprocessingView(state *uiState) fyne.CanvasObject {
	raw, err := dataset.Load(state.cfg.Data.RawPath)
	if err != nil {
		applog.Errorf("preprocessing view: %v", err)
		msg := widget.NewLabel(fmt.Sprintf("⚠️ Could not load raw dataset %q: %v", state.cfg.Data.RawPath, err))
		msg.Wrapping = fyne.TextWrapWord
		return container.NewPadded(msg)
	}

	shape := widget.NewLabel(fmt.Sprintf("Shape: %d rows × %d columns", raw.Len(), len(raw.Columns())))

	nullRows := make([][]string, 0, len(raw.Columns()))
	for _, nc := range raw.NullCounts() {
		nullRows = append(nullRows, []string{nc.Column, fmt.Sprintf("%d", nc.Nulls)})
	}

	infoRows := make([][]string, 0, len(raw.Columns()))
	for _, ci := range raw.Info() {
		infoRows = append(infoRows, []string{ci.Name, ci.DType, fmt.Sprintf("%d", ci.NonNull)})
	}

	content := container.NewVBox(
		widget.NewLabelWithStyle("🧹 Pre-Processing", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		shape,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("First 5 rows", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHScroll(newStringTable(previewHeaders(raw), tableRows(raw.Head(5)))),
		widget.NewLabelWithStyle("Last 5 rows", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHScroll(newStringTable(previewHeaders(raw), tableRows(raw.Tail(5)))),
		widget.NewSeparator(),
		widget.NewLabel(fmt.Sprintf("Duplicate rows: %d", raw.DuplicateRows())),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Null counts per column", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		newStringTable([]string{"Column", "Nulls"}, nullRows),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Column info", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		newStringTable([]string{"Column", "DType", "Non-Null"}, infoRows),
	)
	return container.NewVScroll(container.NewPadded(content))
}
