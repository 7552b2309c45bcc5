package config

import (
	"fmt"
	"strings"

	"github.com/muurk/tuiprompt/internal/keys"
	"github.com/muurk/tuiprompt/internal/ui"
)

// CurrentVersion is the only schema version understood by this build.
const CurrentVersion = 1

// File represents the entire user configuration file.
type File struct {
	Version  int                 `yaml:"version"`
	Behavior *Behavior           `yaml:"behavior,omitempty"`
	Keys     map[string][]string `yaml:"keys,omitempty"`  // Action name -> keys, e.g. down: [down, j]
	Theme    *ui.ThemeSpec       `yaml:"theme,omitempty"` // Glyph and colour overrides
	Defaults *Defaults           `yaml:"defaults,omitempty"`
}

// Behavior controls how prompts end.
type Behavior struct {
	RaiseOnInterrupt bool  `yaml:"raise_on_interrupt"`  // ctrl+c is an error instead of an empty answer
	RaiseOnEscape    bool  `yaml:"raise_on_escape"`     // esc is an error instead of an empty answer
	Transient        *bool `yaml:"transient,omitempty"` // Clear prompts when done (default true)
}

// Defaults holds CLI defaults that can be overridden per invocation.
type Defaults struct {
	PageSize int    `yaml:"page_size,omitempty"` // Rows per page when paginating
	Spinner  string `yaml:"spinner,omitempty"`   // Spinner preset name
}

// Resolved is a validated File turned into runtime values.
type Resolved struct {
	RaiseOnInterrupt bool
	RaiseOnEscape    bool
	Transient        bool
	Keys             keys.KeyMap
	Theme            ui.Theme
	PageSize         int
	Spinner          string
}

// Default returns the configuration used when no file exists.
func Default() *File {
	transient := true
	return &File{
		Version: CurrentVersion,
		Behavior: &Behavior{
			Transient: &transient,
		},
		Defaults: &Defaults{
			PageSize: 5,
			Spinner:  "dots",
		},
	}
}

// Validate checks the version, key actions, spinner preset and page size.
func (f *File) Validate() error {
	if f.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", f.Version, CurrentVersion)
	}
	if _, err := keys.DefaultKeyMap().Override(f.Keys); err != nil {
		return fmt.Errorf("invalid keys: %w", err)
	}
	if f.Defaults != nil {
		if f.Defaults.PageSize < 0 {
			return fmt.Errorf("invalid page_size: %d", f.Defaults.PageSize)
		}
		if f.Defaults.Spinner != "" {
			if _, err := ui.SpinnerPreset(f.Defaults.Spinner); err != nil {
				return err
			}
		}
	}
	return nil
}

// Resolve validates the file and builds runtime values. Missing sections
// keep their defaults.
func (f *File) Resolve() (Resolved, error) {
	if err := f.Validate(); err != nil {
		return Resolved{}, err
	}

	km, err := keys.DefaultKeyMap().Override(f.Keys)
	if err != nil {
		return Resolved{}, err
	}

	r := Resolved{
		Transient: true,
		Keys:      km,
		Theme:     ui.DefaultTheme(),
		PageSize:  5,
		Spinner:   "dots",
	}
	if b := f.Behavior; b != nil {
		r.RaiseOnInterrupt = b.RaiseOnInterrupt
		r.RaiseOnEscape = b.RaiseOnEscape
		if b.Transient != nil {
			r.Transient = *b.Transient
		}
	}
	if f.Theme != nil {
		r.Theme = r.Theme.Apply(*f.Theme)
	}
	if d := f.Defaults; d != nil {
		if d.PageSize > 0 {
			r.PageSize = d.PageSize
		}
		if d.Spinner != "" {
			r.Spinner = d.Spinner
		}
	}
	return r, nil
}

func actionList() string {
	return strings.Join(keys.Actions(), ", ")
}
