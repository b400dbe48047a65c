// Package session tracks one user session: splash gating, authentication
// status and the current content tab. It is an explicit object handed to the
// UI layer, not process-global state, and no content tab is reachable unless
// the session is authenticated.
package session

import (
	"context"
	"errors"

	"github.com/sukhman0345/theCarbonivore/src/applog"
	"github.com/sukhman0345/theCarbonivore/src/auth"
)

// State is the navigation gate: Splash → Unauthenticated → Authenticated.
type State int

const (
	StateSplash State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Tab identifies one of the four content views.
type Tab int

const (
	TabAbout Tab = iota
	TabPreprocessing
	TabVisualization
	TabContact
)

// Tabs lists the content tabs in display order.
var Tabs = []Tab{TabAbout, TabPreprocessing, TabVisualization, TabContact}

func (t Tab) String() string {
	switch t {
	case TabAbout:
		return "About"
	case TabPreprocessing:
		return "Pre-Processing"
	case TabVisualization:
		return "Visualization"
	case TabContact:
		return "Get In Touch"
	}
	return "unknown"
}

// ErrNotAuthenticated is returned when a content tab is requested without a
// signed-in identity.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is the per-user navigation and auth state. Lifecycle spans one run
// of the application; nothing is persisted across restarts.
type Session struct {
	authenticator auth.Authenticator

	state    State
	identity *auth.Identity
	tab      Tab

	loginAttempted  bool
	loginSuccessful bool
}

// New starts a session at the splash screen.
func New(a auth.Authenticator) *Session {
	return &Session{authenticator: a, state: StateSplash, tab: TabAbout}
}

// State returns the current navigation state.
func (s *Session) State() State { return s.state }

// FinishSplash moves past the splash screen. It fires at most once; the
// splash never reappears within a session.
func (s *Session) FinishSplash() {
	if s.state != StateSplash {
		return
	}
	s.state = StateUnauthenticated
	applog.Debugf("session: splash finished")
}

// SignIn verifies credentials through the identity collaborator. On success
// the session becomes Authenticated with the About tab selected; on failure
// the state is unchanged and the attempt flags record the outcome.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	id, err := s.authenticator.SignIn(ctx, email, password)
	s.loginAttempted = true
	if err != nil {
		s.loginSuccessful = false
		applog.Infof("session: sign-in rejected for %s", email)
		return err
	}
	s.loginSuccessful = true
	s.identity = id
	s.state = StateAuthenticated
	s.tab = TabAbout
	applog.Infof("session: signed in as %s", id.Email)
	return nil
}

// SignUp creates an account. The user still signs in explicitly afterwards,
// matching the sign-up flow's "account created, please sign in" behavior.
func (s *Session) SignUp(ctx context.Context, email, password string) error {
	_, err := s.authenticator.SignUp(ctx, email, password)
	return err
}

// SendPasswordReset asks the collaborator to email a reset link.
func (s *Session) SendPasswordReset(ctx context.Context, email string) error {
	return s.authenticator.SendPasswordReset(ctx, email)
}

// SignOut clears the identity and attempt flags and returns to the sign-in
// screen. Safe to call in any state.
func (s *Session) SignOut() {
	if s.state == StateSplash {
		return
	}
	s.identity = nil
	s.loginAttempted = false
	s.loginSuccessful = false
	s.state = StateUnauthenticated
	applog.Infof("session: signed out")
}

// SelectTab switches the current content tab. Refused outside the
// authenticated state so direct invocation cannot bypass the gate.
func (s *Session) SelectTab(t Tab) error {
	if s.state != StateAuthenticated {
		return ErrNotAuthenticated
	}
	s.tab = t
	return nil
}

// CurrentTab returns the selected tab; the error mirrors SelectTab's gate.
func (s *Session) CurrentTab() (Tab, error) {
	if s.state != StateAuthenticated {
		return 0, ErrNotAuthenticated
	}
	return s.tab, nil
}

// Authenticated reports whether an identity is present.
func (s *Session) Authenticated() bool {
	return s.state == StateAuthenticated && s.identity != nil
}

// Email returns the signed-in email, or "" when unauthenticated.
func (s *Session) Email() string {
	if s.identity == nil {
		return ""
	}
	return s.identity.Email
}

// LoginAttempted reports whether a sign-in was tried this session.
func (s *Session) LoginAttempted() bool { return s.loginAttempted }

// LoginSuccessful reports whether the last attempt succeeded.
func (s *Session) LoginSuccessful() bool { return s.loginSuccessful }
