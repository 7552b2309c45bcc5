package ask

import (
	"github.com/muurk/tuiprompt/internal/convert"
	"github.com/muurk/tuiprompt/internal/engine"
)

// Converter parsers for Prompt.
var (
	String = convert.String
	Int    = convert.Int
	Float  = convert.Float
	Bool   = convert.Bool
)

// Custom wraps a parser as a converter. name appears in conversion errors.
func Custom[T any](name string, parse func(string) (T, error)) convert.Converter[T] {
	return convert.Custom(name, parse)
}

// PromptOptions configures Prompt. The zero value is a plain prompt that
// returns conversion and validation errors to the caller.
type PromptOptions[T any] struct {
	Session *Session
	// Validate is applied to the converted value.
	Validate func(T) bool
	// Secure masks the input on screen and in error messages.
	Secure       bool
	InitialValue string
	// Completion returns Tab-completion candidates for the current input.
	Completion func(string) []string
	// InlineConversionErrors shows conversion failures under the input
	// and keeps asking.
	InlineConversionErrors bool
	// InlineValidationErrors shows validation failures under the input
	// and keeps asking.
	InlineValidationErrors bool
	HideHelp               bool
}

// Prompt asks for a line of text and converts it with conv. ok is false
// when the user escaped or interrupted without the matching raise flag.
func Prompt[T any](label string, conv convert.Converter[T], opts PromptOptions[T]) (value T, ok bool, err error) {
	sess := sessionOrDefault(opts.Session)
	settings := sess.Settings()

	e := engine.NewText(engine.TextConfig[T]{
		Label:                  label,
		Convert:                conv,
		Validate:               opts.Validate,
		Secure:                 opts.Secure,
		InitialValue:           opts.InitialValue,
		Completion:             opts.Completion,
		InlineConversionErrors: opts.InlineConversionErrors,
		InlineValidationErrors: opts.InlineValidationErrors,
		Keys:                   settings.Keys,
		Theme:                  settings.Theme,
		HideHelp:               opts.HideHelp,
	})
	return run(sess, "prompt", e, opts.Secure, e.Value)
}

// PromptString asks for a line of text.
func PromptString(label string, opts PromptOptions[string]) (string, bool, error) {
	return Prompt(label, convert.String(), opts)
}
