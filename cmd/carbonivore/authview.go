package main

import (
	"context"
	"errors"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sukhman0345/theCarbonivore/src/applog"
	"github.com/sukhman0345/theCarbonivore/src/auth"
)

// authTimeout bounds every identity-provider call made from the UI.
const authTimeout = 20 * time.Second

// authErrorText renders an identity failure for the inline status label.
func authErrorText(err error) string {
	var ae *auth.Error
	if errors.As(err, &ae) {
		return ae.UserMessage()
	}
	return "Sign-in failed: " + err.Error()
}

// buildAuthView shows the Sign In / Sign Up screens. Successful sign-in
// re-renders into the main tabs; every failure stays here with the reason
// shown next to the form.
func buildAuthView(state *uiState) fyne.CanvasObject {
	tabs := container.NewAppTabs(
		container.NewTabItem("Sign In", buildSignInForm(state)),
		container.NewTabItem("Sign Up", buildSignUpForm(state)),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	title := widget.NewLabelWithStyle("🌿 The Carbonivore", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	return container.NewBorder(title, nil, nil, nil, tabs)
}

func buildSignInForm(state *uiState) fyne.CanvasObject {
	email := widget.NewEntry()
	email.SetPlaceHolder("📧 Email")
	password := widget.NewPasswordEntry()
	password.SetPlaceHolder("🔒 Password")

	status := widget.NewLabel("")
	status.Wrapping = fyne.TextWrapWord
	tip := widget.NewLabel("")
	tip.Wrapping = fyne.TextWrapWord

	login := widget.NewButton("🔓 Login", func() {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		err := state.sess.SignIn(ctx, strings.TrimSpace(email.Text), strings.TrimSpace(password.Text))
		if err != nil {
			status.SetText("❌ Login failed: " + authErrorText(err))
			if state.sess.LoginAttempted() && !state.sess.LoginSuccessful() {
				tip.SetText("💡 Tip: Check your email or password again, or sign up if you haven't.")
			}
			return
		}
		renderView(state)
	})

	forgot := widget.NewButton("❔ Forgot Password?", func() {
		addr := strings.TrimSpace(email.Text)
		if addr == "" {
			status.SetText("⚠️ Please enter your email to reset password.")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		if err := state.sess.SendPasswordReset(ctx, addr); err != nil {
			status.SetText("❌ Error sending reset email: " + authErrorText(err))
			return
		}
		status.SetText("📧 Password reset email sent.")
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("🔐 Sign In", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		email,
		password,
		container.NewHBox(login, forgot),
		status,
		tip,
	)
	return container.NewPadded(form)
}

func buildSignUpForm(state *uiState) fyne.CanvasObject {
	email := widget.NewEntry()
	email.SetPlaceHolder("📧 Email")
	password := widget.NewPasswordEntry()
	password.SetPlaceHolder("🔒 Password")
	confirm := widget.NewPasswordEntry()
	confirm.SetPlaceHolder("🔁 Confirm Password")

	status := widget.NewLabel("")
	status.Wrapping = fyne.TextWrapWord

	create := widget.NewButton("🧷 Create Account", func() {
		if password.Text != confirm.Text {
			status.SetText("❌ Passwords do not match.")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		if err := state.sess.SignUp(ctx, strings.TrimSpace(email.Text), password.Text); err != nil {
			status.SetText("❌ Error: " + authErrorText(err))
			return
		}
		applog.Infof("account created for %s", strings.TrimSpace(email.Text))
		status.SetText("🎉 Account created successfully. Please sign in.")
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("📝 Sign Up", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		email,
		password,
		confirm,
		create,
		status,
	)
	return container.NewPadded(form)
}
