// Package auth wraps the external identity provider. Callers treat the
// returned Identity as an opaque token: only presence or absence gates
// navigation.
package auth

import (
	"context"
	"fmt"
)

// Identity is the opaque result of a successful sign-in or sign-up.
type Identity struct {
	Email  string
	UserID string
	Token  string
}

// Reason classifies an authentication failure for inline display.
type Reason string

const (
	ReasonInvalidCredentials Reason = "invalid_credentials"
	ReasonEmailExists        Reason = "email_exists"
	ReasonWeakPassword       Reason = "weak_password"
	ReasonUserDisabled       Reason = "user_disabled"
	ReasonTooManyAttempts    Reason = "too_many_attempts"
	ReasonNetwork            Reason = "network"
	ReasonUnknown            Reason = "unknown"
)

// Error is a typed rejection from the identity provider. The session state
// machine stays in Unauthenticated when it sees one.
type Error struct {
	Reason  Reason
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth: %s", e.Reason)
	}
	return fmt.Sprintf("auth: %s: %s", e.Reason, e.Message)
}

// UserMessage renders the failure for display next to the form.
func (e *Error) UserMessage() string {
	switch e.Reason {
	case ReasonInvalidCredentials:
		return "Invalid email or password."
	case ReasonEmailExists:
		return "An account with this email already exists."
	case ReasonWeakPassword:
		return "Password is too weak (minimum 6 characters)."
	case ReasonUserDisabled:
		return "This account has been disabled."
	case ReasonTooManyAttempts:
		return "Too many attempts. Try again later."
	case ReasonNetwork:
		return "Could not reach the sign-in service."
	}
	if e.Message != "" {
		return e.Message
	}
	return "Sign-in failed."
}

// Authenticator is the narrow interface the session layer depends on. The
// GUI injects the Firebase client; tests inject fakes.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	SendPasswordReset(ctx context.Context, email string) error
}
