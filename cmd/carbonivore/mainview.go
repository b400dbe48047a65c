package main

import (
	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sukhman0345/theCarbonivore/src/applog"
	"github.com/sukhman0345/theCarbonivore/src/session"
)

// buildMainView is the authenticated surface: a top bar with the signed-in
// identity and the four content tabs. Rendering is gated again here so a
// stale render call can never show content to a signed-out session.
func buildMainView(state *uiState) fyne.CanvasObject {
	if !state.sess.Authenticated() {
		return buildAuthView(state)
	}

	title := widget.NewLabelWithStyle("🌿 The Carbonivore", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	who := widget.NewLabel("👤 " + state.sess.Email())
	logout := widget.NewButton("🚪 Logout", func() {
		state.sess.SignOut()
		renderView(state)
	})
	topBar := container.NewBorder(nil, nil, title, container.NewHBox(who, logout))

	items := make([]*container.TabItem, 0, len(session.Tabs))
	for _, tab := range session.Tabs {
		items = append(items, container.NewTabItem(tab.String(), buildTabContent(state, tab)))
	}
	tabs := container.NewAppTabs(items...)
	tabs.OnSelected = func(item *container.TabItem) {
		idx := tabs.SelectedIndex()
		if idx >= 0 && idx < len(session.Tabs) {
			if err := state.sess.SelectTab(session.Tabs[idx]); err != nil {
				applog.Warnf("tab selection rejected: %v", err)
				return
			}
			savePrefs(state, idx)
		}
	}
	tabs.SelectIndex(lastTabIndex(state))

	return container.NewBorder(topBar, nil, nil, nil, tabs)
}

func buildTabContent(state *uiState, tab session.Tab) fyne.CanvasObject {
	switch tab {
	case session.TabAbout:
		return buildAboutView()
	case session.TabPreprocessing:
		return buildPreprocessingView(state)
	case session.TabVisualization:
		return buildVisualizationView(state)
	case session.TabContact:
		return buildContactView(state)
	}
	return widget.NewLabel("")
}
