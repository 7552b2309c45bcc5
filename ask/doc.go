// Package ask provides interactive terminal prompts: free-text input with
// typed conversion, single and multiple selection from a list, yes/no
// confirmation, and a spinner.
//
// Every operation blocks until the user confirms, escapes or interrupts.
// A confirmed prompt returns its value with ok set. Escape and ctrl+c
// return the neutral value (zero value, empty slice) with ok unset,
// unless the session's Settings ask for errors instead:
//
//	age, ok, err := ask.Prompt("How old are you?", ask.Int(), ask.PromptOptions[int]{
//	    Validate: func(v int) bool { return v > 0 },
//	    InlineValidationErrors: true,
//	})
//
//	fruit, ok, err := ask.Select([]string{"apple", "pear"}, ask.SelectOptions[string]{})
//
//	picked, err := ask.SelectMultiple(toppings, ask.MultiSelectOptions[string]{MaxCount: 3})
//
//	yes, ok, err := ask.Confirm("Deploy?", ask.ConfirmOptions{DefaultIsYes: true})
//
// # Sessions
//
// Settings live in a Session. Options structs take an optional Session;
// nil means the process-wide Default(). A Session built WithTerminal
// runs prompts against any Terminal, such as a ScriptedTerminal:
//
//	sess := ask.NewSession(ask.DefaultSettings(), ask.WithTerminal(ask.NewScriptedTerminal("down,enter")))
//	v, _, _ := ask.Select([]string{"a", "b"}, ask.SelectOptions[string]{Session: sess}) // "b"
//
// Without an injected Terminal, prompts run as Bubble Tea programs on
// the process tty and return ErrNotTerminal when standard input is not
// one.
package ask
