package engine

// layout is embedded by every engine. It holds the width the help footer
// is fitted to.
type layout struct {
	width int
}

// SetWidth sets the terminal width used by View. Zero means unknown and
// renders the footer untruncated.
func (l *layout) SetWidth(width int) {
	l.width = width
}

// Width returns the width set by SetWidth.
func (l *layout) Width() int {
	return l.width
}
