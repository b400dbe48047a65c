package main

import (
	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// buildSplashView shows the loading screen. The transition away from it is
// driven by the single timer in main, never by the view itself.
func buildSplashView() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("🌿 The Carbonivore", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	sub := widget.NewLabelWithStyle("Loading The Carbonivore...", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	spinner := widget.NewProgressBarInfinite()
	return container.NewCenter(container.NewVBox(title, sub, spinner))
}
