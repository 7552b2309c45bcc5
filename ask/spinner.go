package ask

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muurk/tuiprompt/internal/ui"
)

// Spinner is a decorative animation shown while work is in progress.
type Spinner = ui.Spinner

// SpinnerOptions configures NewSpinner.
type SpinnerOptions struct {
	Session *Session
	// Preset names a built-in animation. See SpinnerPresets.
	Preset string
	// Frames overrides Preset with custom frames.
	Frames []string
}

// SpinnerPresets lists the built-in animation names.
func SpinnerPresets() []string {
	return ui.SpinnerPresetNames()
}

// NewSpinner creates a spinner that draws on the session output. Call
// Start and Stop around the work. Empty frames are an error.
func NewSpinner(text string, opts SpinnerOptions) (*Spinner, error) {
	sess := sessionOrDefault(opts.Session)

	anim := spinner.Dot
	switch {
	case opts.Frames != nil:
		anim = spinner.Spinner{Frames: opts.Frames}
	case opts.Preset != "":
		preset, err := ui.SpinnerPreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		anim = preset
	}

	return ui.NewSpinner(anim, text, sess.Settings().Transient, tea.WithOutput(sess.output))
}
