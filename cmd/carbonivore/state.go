package main

import (
	fyne "fyne.io/fyne/v2"

	"github.com/sukhman0345/theCarbonivore/src/config"
	"github.com/sukhman0345/theCarbonivore/src/contact"
	"github.com/sukhman0345/theCarbonivore/src/session"
)

// uiState carries everything the views need: configuration, the session
// gate and the contact sink. It is created once in main and passed down;
// there is no package-global session.
type uiState struct {
	app    fyne.App
	window fyne.Window
	cfg    *config.Config
	sess   *session.Session

	// store is nil when the contacts database failed to open; submission
	// then reports the failure instead of silently dropping it.
	store *contact.Store
}

// savePrefs persists the navigation bits worth keeping across runs.
func savePrefs(state *uiState, tabIndex int) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetInt("selectedTabIndex", tabIndex)
}

// lastTabIndex returns the persisted tab index, clamped to the tab count.
func lastTabIndex(state *uiState) int {
	if state == nil || state.app == nil {
		return 0
	}
	idx := state.app.Preferences().IntWithFallback("selectedTabIndex", 0)
	if idx < 0 || idx >= len(session.Tabs) {
		return 0
	}
	return idx
}
