package main

import (
	"context"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sukhman0345/theCarbonivore/src/applog"
	"github.com/sukhman0345/theCarbonivore/src/contact"
)

const submitTimeout = 10 * time.Second

// buildContactView is the Get In Touch form. Submissions land in the
// contacts database; a missing store turns every submit into a visible
// error rather than a silent drop.
func buildContactView(state *uiState) fyne.CanvasObject {
	name := widget.NewEntry()
	name.SetPlaceHolder("Your Name")
	email := widget.NewEntry()
	email.SetPlaceHolder("Your Email")
	message := widget.NewMultiLineEntry()
	message.SetPlaceHolder("Your Message")
	message.SetMinRowsVisible(4)

	feedbackType := contact.FeedbackTypes[0]
	kind := widget.NewSelect(contact.FeedbackTypes, func(s string) { feedbackType = s })
	kind.SetSelected(feedbackType)

	status := widget.NewLabel("")
	status.Wrapping = fyne.TextWrapWord

	submit := widget.NewButton("📨 Submit", func() {
		if state.store == nil {
			status.SetText("❌ Feedback storage is unavailable right now.")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		err := state.store.Submit(ctx, contact.Submission{
			Name:         strings.TrimSpace(name.Text),
			Email:        strings.TrimSpace(email.Text),
			Message:      strings.TrimSpace(message.Text),
			FeedbackType: feedbackType,
		})
		if err != nil {
			applog.Errorf("contact submit: %v", err)
			status.SetText("❌ Could not record your feedback: " + err.Error())
			return
		}
		status.SetText("✅ Thanks for your feedback! It's been recorded.")
		name.SetText("")
		email.SetText("")
		message.SetText("")
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("💬 Get in Touch", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		name,
		email,
		message,
		widget.NewLabel("Type of Feedback"),
		kind,
		submit,
		status,
		widget.NewLabelWithStyle("Made with ❤️ by sukhman.singh.codes", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	)
	return container.NewVScroll(container.NewPadded(form))
}
