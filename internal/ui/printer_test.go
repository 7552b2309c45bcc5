package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_ResultGoesToStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Result("a", "b")

	if out.String() != "a\nb\n" {
		t.Errorf("Expected one value per line, got %q", out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("Expected nothing on the message stream, got %q", errOut.String())
	}
}

func TestPrinter_ErrorGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Error(errors.New("boom"))
	p.Error(nil)

	if out.Len() != 0 {
		t.Errorf("Expected nothing on the result stream, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: boom") {
		t.Errorf("Expected error line, got %q", errOut.String())
	}
	if strings.Count(errOut.String(), "\n") != 1 {
		t.Errorf("Expected a single line, got %q", errOut.String())
	}
}

func TestPrinter_Answer(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Answer("Continue?", "Yes")

	if !strings.Contains(errOut.String(), "Continue?") || !strings.Contains(errOut.String(), "Yes") {
		t.Errorf("Expected question and answer, got %q", errOut.String())
	}
}
