package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"github.com/sukhman0345/theCarbonivore/src/applog"
	"github.com/sukhman0345/theCarbonivore/src/auth"
	"github.com/sukhman0345/theCarbonivore/src/config"
	"github.com/sukhman0345/theCarbonivore/src/contact"
	"github.com/sukhman0345/theCarbonivore/src/session"
)

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var cfgPath, dataPath, dbPath string
	flag.StringVar(&cfgPath, "config", "carbonivore.yaml", "Path to config file")
	flag.StringVar(&dataPath, "data", "", "Override cleaned dataset CSV path")
	flag.StringVar(&dbPath, "contacts-db", "", "Override contacts database path")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if dataPath != "" {
		cfg.Data.CleanedPath = dataPath
	}
	if dbPath != "" {
		cfg.Contact.DBPath = dbPath
	}
	applog.SetLevel(cfg.Logging.Level)

	a := app.NewWithID("com.sukhman0345.thecarbonivore")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("The Carbonivore")
	w.Resize(fyne.NewSize(1200, 840))

	if cfg.Firebase.APIKey == "" {
		applog.Warnf("no Firebase API key configured (%s); sign-in will be rejected", config.APIKeyEnv)
	}
	store, err := contact.Open(cfg.Contact.DBPath)
	if err != nil {
		// contact submissions will report the failure; the rest of the app works
		applog.Errorf("contact store unavailable: %v", err)
		store = nil
	}

	state := &uiState{
		app:    a,
		window: w,
		cfg:    cfg,
		sess:   session.New(auth.NewFirebaseClient(cfg.Firebase.APIKey)),
		store:  store,
	}

	renderView(state)

	// Splash policy: one fixed-duration timer, one transition.
	splash := time.Duration(cfg.Splash.DurationMillis) * time.Millisecond
	time.AfterFunc(splash, func() {
		fyne.Do(func() {
			state.sess.FinishSplash()
			renderView(state)
		})
	})

	w.SetOnClosed(func() {
		if state.store != nil {
			state.store.Close()
		}
	})
	w.ShowAndRun()
}

// renderView swaps the window content to match the session state. The
// session object is the single gate: content tabs render only from
// StateAuthenticated.
func renderView(state *uiState) {
	switch state.sess.State() {
	case session.StateSplash:
		state.window.SetContent(buildSplashView())
	case session.StateUnauthenticated:
		state.window.SetContent(buildAuthView(state))
	case session.StateAuthenticated:
		state.window.SetContent(buildMainView(state))
	}
}
