// Package config provides user configuration management for tuiprompt.
//
// This package manages a YAML-based configuration file holding prompt
// behaviour, key binding overrides, theme glyphs and colours, and CLI
// defaults. The configuration follows OS-specific conventions for
// storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/tuiprompt/config.yaml or $HOME/.config/tuiprompt/config.yaml
//   - macOS: $HOME/.config/tuiprompt/config.yaml
//   - Windows: %LOCALAPPDATA%\tuiprompt\config.yaml
//
// # Format
//
//	version: 1
//	behavior:
//	    raise_on_interrupt: true
//	    raise_on_escape: false
//	    transient: true
//	keys:
//	    down: [down, j]
//	    up: [up, k]
//	theme:
//	    cursor: "➜"
//	    tick: x
//	    accent_color: "#00AFFF"
//	defaults:
//	    page_size: 8
//	    spinner: dots
//
// # Usage Example
//
//	f, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resolved, err := f.Resolve()
//
// # Thread Safety
//
// File operations are protected by a mutex and writes are atomic.
package config
