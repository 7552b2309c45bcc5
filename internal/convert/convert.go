// Package convert turns the text typed into a prompt into a typed value.
//
// The set of strategies is closed: String, Int, Float, Bool and Custom.
// Bool accepts only the literals "true" and "false" (any letter case);
// "1", "yes" or "t" are conversion failures, not truthy values.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind tags a converter strategy.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindCustom
)

// String returns the target type name shown in conversion errors
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrNotBool is returned by the Bool strategy for anything but true/false.
var ErrNotBool = errors.New("not a boolean literal")

// Converter parses prompt text into a T.
type Converter[T any] struct {
	kind  Kind
	name  string
	parse func(string) (T, error)
}

// Kind returns the strategy tag.
func (c Converter[T]) Kind() Kind {
	return c.kind
}

// Name returns the target type name used in error messages.
func (c Converter[T]) Name() string {
	if c.name != "" {
		return c.name
	}
	return c.kind.String()
}

// Valid reports whether the converter was built by one of the constructors.
func (c Converter[T]) Valid() bool {
	return c.parse != nil
}

// Convert parses s.
func (c Converter[T]) Convert(s string) (T, error) {
	if c.parse == nil {
		var zero T
		return zero, errors.New("converter is not initialized")
	}
	return c.parse(s)
}

// String keeps the input as typed.
func String() Converter[string] {
	return Converter[string]{
		kind:  KindString,
		parse: func(s string) (string, error) { return s, nil },
	}
}

// Int parses a base-10 integer.
func Int() Converter[int] {
	return Converter[int]{
		kind: KindInt,
		parse: func(s string) (int, error) {
			return strconv.Atoi(strings.TrimSpace(s))
		},
	}
}

// Float parses a 64-bit floating point number.
func Float() Converter[float64] {
	return Converter[float64]{
		kind: KindFloat,
		parse: func(s string) (float64, error) {
			return strconv.ParseFloat(strings.TrimSpace(s), 64)
		},
	}
}

// Bool parses the literals true and false.
func Bool() Converter[bool] {
	return Converter[bool]{
		kind: KindBool,
		parse: func(s string) (bool, error) {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
			return false, ErrNotBool
		},
	}
}

// Custom wraps a caller supplied parser. name appears in error messages.
func Custom[T any](name string, parse func(string) (T, error)) Converter[T] {
	return Converter[T]{
		kind:  KindCustom,
		name:  name,
		parse: parse,
	}
}
