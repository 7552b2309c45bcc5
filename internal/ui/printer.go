package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer writes prompt results and errors for the command line tool.
// Results go to out (stdout) so they can be captured by shell scripts;
// decorated messages go to errOut (stderr).
type Printer struct {
	out    io.Writer
	errOut io.Writer
	theme  Theme
}

// NewPrinter creates a new Printer. Nil writers default to
// os.Stdout and os.Stderr.
func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{
		out:    out,
		errOut: errOut,
		theme:  DefaultTheme(),
	}
}

// Result writes one value per line to the result stream.
func (p *Printer) Result(values ...string) {
	for _, v := range values {
		_, _ = fmt.Fprintln(p.out, v)
	}
}

// Answer echoes a question and the chosen answer to the message stream.
func (p *Printer) Answer(question, answer string) {
	if question == "" {
		_, _ = fmt.Fprintln(p.errOut, p.theme.AnswerStyle.Render(answer))
		return
	}
	_, _ = fmt.Fprintln(p.errOut, p.theme.QuestionStyle.Render(question)+" "+p.theme.AnswerStyle.Render(answer))
}

// Error writes an error line to the message stream.
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintln(p.errOut, p.theme.ErrorStyle.Render("Error: "+err.Error()))
}

// Muted writes secondary information to the message stream.
func (p *Printer) Muted(lines ...string) {
	_, _ = fmt.Fprintln(p.errOut, p.theme.MutedStyle.Render(strings.Join(lines, "\n")))
}
