// Package completion builds Tab-completion callbacks for text prompts.
package completion

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sahilm/fuzzy"
)

// Func returns the candidates for the current input, best first.
type Func func(input string) []string

// DefaultCacheSize is the number of inputs Cached remembers.
const DefaultCacheSize = 128

// Fuzzy matches candidates against the input with sahilm/fuzzy, best
// score first. Empty input yields every candidate in order.
func Fuzzy(candidates []string) Func {
	all := append([]string(nil), candidates...)
	return func(input string) []string {
		if input == "" {
			return append([]string(nil), all...)
		}
		matches := fuzzy.Find(input, all)
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = m.Str
		}
		return out
	}
}

// Prefix keeps the candidates that start with the input.
func Prefix(candidates []string, ignoreCase bool) Func {
	all := append([]string(nil), candidates...)
	return func(input string) []string {
		var out []string
		for _, c := range all {
			if ignoreCase {
				if strings.HasPrefix(strings.ToLower(c), strings.ToLower(input)) {
					out = append(out, c)
				}
			} else if strings.HasPrefix(c, input) {
				out = append(out, c)
			}
		}
		return out
	}
}

// Cached memoizes fn per input in an LRU cache. Prompts call the
// completion function on every redraw. A non-positive size uses
// DefaultCacheSize.
func Cached(fn Func, size int) Func {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return fn
	}
	return func(input string) []string {
		if v, ok := cache.Get(input); ok {
			return v
		}
		v := fn(input)
		cache.Add(input, v)
		return v
	}
}
