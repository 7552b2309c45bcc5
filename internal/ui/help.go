package ui

import (
	"github.com/charmbracelet/bubbles/help"
)

// HelpLine renders the one-line key hint shown under a prompt, fitted to
// width. A width of zero renders every binding.
func HelpLine(km help.KeyMap, width int) string {
	h := help.New()
	h.Width = ClampWidth(width)
	return h.View(km)
}
