package engine

import (
	"errors"
	"fmt"

	"github.com/muurk/tuiprompt/internal/keys"
)

var (
	// ErrAborted matches every AbortError via errors.Is.
	ErrAborted = errors.New("aborted by user")
	// ErrInterrupted is returned on ctrl+c when raising is enabled.
	ErrInterrupted = errors.New("interrupted")
	// ErrEmptyOptions is returned by strict selects without options.
	ErrEmptyOptions = errors.New("options cannot be empty")
)

const secureInput = "<secure_input>"

func quoteInput(input string, secure bool) string {
	if secure {
		return secureInput
	}
	return "`" + input + "`"
}

// ConversionError is returned when typed text cannot be parsed into the
// target type.
type ConversionError struct {
	Input  string // Typed text
	Target string // Target type name
	Secure bool   // Input is withheld from the message
	Err    error  // Parser error
}

// Error implements the error interface
func (e *ConversionError) Error() string {
	return fmt.Sprintf("Input %s cannot be converted to type `%s`", quoteInput(e.Input, e.Secure), e.Target)
}

// Unwrap returns the parser error
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when the converted value fails the validator.
type ValidationError struct {
	Input  string
	Secure bool
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("Input %s is invalid", quoteInput(e.Input, e.Secure))
}

// AbortError is returned on escape when raising is enabled. It carries the
// key that triggered it.
type AbortError struct {
	Key keys.Key
}

// Error implements the error interface
func (e *AbortError) Error() string {
	return fmt.Sprintf("aborted by user with key %s", e.Key.String())
}

// Is makes errors.Is(err, ErrAborted) true for every AbortError
func (e *AbortError) Is(target error) bool {
	return target == ErrAborted
}
