package ask

import (
	"github.com/muurk/tuiprompt/internal/engine"
)

// ConfirmOptions configures Confirm. The zero value asks "Yes"/"No" with
// a "(Y/N)" hint, No highlighted, and enter accepting the highlight.
type ConfirmOptions struct {
	Session *Session
	// YesText and NoText default to "Yes" and "No".
	YesText string
	NoText  string
	// MatchCase makes typed prefixes case sensitive.
	MatchCase bool
	// RequireAnswer ignores enter until a choice is typed or picked with
	// the arrows.
	RequireAnswer bool
	DefaultIsYes  bool
	// NoCharPrompt drops the " (Y/N)" hint.
	NoCharPrompt bool
	HideHelp     bool
	// Theme replaces the session theme for this call.
	Theme *Theme
}

// Confirm asks a yes/no question. ok is false when the user escaped or
// interrupted without the matching raise flag.
func Confirm(question string, opts ConfirmOptions) (yes bool, ok bool, err error) {
	sess := sessionOrDefault(opts.Session)
	settings := sess.Settings()

	c := engine.NewConfirm(engine.ConfirmConfig{
		Question:           question,
		YesText:            opts.YesText,
		NoText:             opts.NoText,
		MatchCase:          opts.MatchCase,
		EnterEmptyConfirms: !opts.RequireAnswer,
		DefaultIsYes:       opts.DefaultIsYes,
		CharPrompt:         !opts.NoCharPrompt,
		Keys:               settings.Keys,
		Theme:              settings.theme(opts.Theme),
		HideHelp:           opts.HideHelp,
	})
	return run(sess, "confirm", c, false, func() bool {
		yes, _ := c.Answer()
		return yes
	})
}
