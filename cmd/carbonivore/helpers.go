package main

import (
	"fmt"
	"image"
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sukhman0345/theCarbonivore/src/dataset"
)

// blank returns a plain placeholder image used when a chart cannot be
// produced (empty selection, render failure).
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 24, G: 26, B: 30, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, bg)
		}
	}
	return img
}

// drawText paints msg onto img with the fixed 7x13 face, baseline at (x, y).
func drawText(img *image.RGBA, x, y int, msg string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(msg)
}

// drawCaption paints a short message roughly centered on img.
func drawCaption(img *image.RGBA, msg string) {
	b := img.Bounds()
	tw := len(msg) * 7
	x := b.Min.X + (b.Dx()-tw)/2
	if x < b.Min.X+4 {
		x = b.Min.X + 4
	}
	drawText(img, x, b.Min.Y+b.Dy()/2, msg, color.RGBA{R: 200, G: 200, B: 200, A: 255})
}

// captioned builds a placeholder image carrying msg.
func captioned(w, h int, msg string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 24, G: 26, B: 30, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, bg)
		}
	}
	drawCaption(img, msg)
	return img
}

// seriesPalette is the cycle of colors used for multi-series charts.
var seriesPalette = []color.RGBA{
	{R: 0x4e, G: 0x79, B: 0xa7, A: 255},
	{R: 0xf2, G: 0x8e, B: 0x2b, A: 255},
	{R: 0xe1, G: 0x57, B: 0x59, A: 255},
	{R: 0x76, G: 0xb7, B: 0xb2, A: 255},
	{R: 0x59, G: 0xa1, B: 0x4f, A: 255},
	{R: 0xed, G: 0xc9, B: 0x48, A: 255},
	{R: 0xb0, G: 0x7a, B: 0xa1, A: 255},
	{R: 0xff, G: 0x9d, B: 0xa7, A: 255},
	{R: 0x9c, G: 0x75, B: 0x5f, A: 255},
	{R: 0xba, G: 0xb0, B: 0xac, A: 255},
}

func colorFor(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	return seriesPalette[i%len(seriesPalette)]
}

// newStringTable lays out a small header+rows table as a label grid. Used
// for previews and stats; large result sets are trimmed by the callers.
func newStringTable(headers []string, rows [][]string) fyne.CanvasObject {
	cols := len(headers)
	if cols == 0 {
		return widget.NewLabel("")
	}
	cells := make([]fyne.CanvasObject, 0, (len(rows)+1)*cols)
	for _, h := range headers {
		cells = append(cells, widget.NewLabelWithStyle(h, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}
	for _, row := range rows {
		for c := 0; c < cols; c++ {
			text := ""
			if c < len(row) {
				text = row[c]
			}
			cells = append(cells, widget.NewLabel(text))
		}
	}
	return container.NewGridWithColumns(cols, cells...)
}

// formatCell renders a dataset value for preview tables.
func formatCell(v float64) string {
	if v != v { // NaN
		return "NaN"
	}
	return fmt.Sprintf("%.4g", v)
}

// tableRows converts the first (or last) n rows of t into preview strings,
// Area and Year first, numeric columns in schema order.
func tableRows(t *dataset.Table) [][]string {
	rows := make([][]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := make([]string, 0, 2+len(dataset.NumericColumns))
		row = append(row, t.Area(i), fmt.Sprintf("%d", t.Year(i)))
		for _, col := range dataset.NumericColumns {
			if !t.HasColumn(col) {
				continue
			}
			v, _ := t.Value(col, i)
			row = append(row, formatCell(v))
		}
		rows = append(rows, row)
	}
	return rows
}

// previewHeaders matches tableRows ordering.
func previewHeaders(t *dataset.Table) []string {
	headers := []string{dataset.ColArea, dataset.ColYear}
	for _, col := range dataset.NumericColumns {
		if t.HasColumn(col) {
			headers = append(headers, col)
		}
	}
	return headers
}
