package main

import (
	"fmt"
	"net/netip"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/tuiprompt/ask"
	"github.com/muurk/tuiprompt/internal/completion"
	"github.com/muurk/tuiprompt/internal/convert"
	"github.com/muurk/tuiprompt/internal/ui"
)

// Prompt command flags
var (
	promptType     string
	promptSecure   bool
	promptValue    string
	promptComplete string
	completeMode   string
	promptPattern  string
	promptInline   bool
)

// Select command flags
var (
	selectIndex    bool
	selectCursor   int
	selectPaginate bool
	selectPageSize int
	selectStrict   bool
)

// Multiselect command flags
var (
	multiIndices bool
	multiTicked  string
	multiMin     int
	multiMax     int
)

// Confirm command flags
var (
	yesText       string
	noText        string
	defaultYes    bool
	requireAnswer bool
	matchCase     bool
)

func init() {
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(multiselectCmd)
	rootCmd.AddCommand(confirmCmd)

	promptCmd.Flags().StringVar(&promptType, "type", "string", "Answer type (string, int, float, bool, ip)")
	promptCmd.Flags().BoolVar(&promptSecure, "secure", false, "Mask the input")
	promptCmd.Flags().StringVar(&promptValue, "value", "", "Initial value")
	promptCmd.Flags().StringVar(&promptComplete, "complete", "", "Comma separated Tab-completion candidates")
	promptCmd.Flags().StringVar(&completeMode, "complete-mode", "fuzzy", "Completion matching (fuzzy, prefix)")
	promptCmd.Flags().StringVar(&promptPattern, "pattern", "", "Regular expression the typed text must match")
	promptCmd.Flags().BoolVar(&promptInline, "inline-errors", false, "Show invalid input under the prompt and keep asking")

	for _, cmd := range []*cobra.Command{selectCmd, multiselectCmd} {
		cmd.Flags().IntVar(&selectCursor, "cursor", 0, "Row highlighted first")
		cmd.Flags().BoolVar(&selectPaginate, "paginate", false, "Show options page by page")
		cmd.Flags().IntVar(&selectPageSize, "page-size", 0, "Rows per page (default from config)")
		cmd.Flags().BoolVar(&selectStrict, "strict", false, "Fail when no options are given")
	}
	selectCmd.Flags().BoolVar(&selectIndex, "index", false, "Print the index instead of the option")

	multiselectCmd.Flags().BoolVar(&multiIndices, "indices", false, "Print indices instead of options")
	multiselectCmd.Flags().StringVar(&multiTicked, "ticked", "", "Comma separated indices ticked at start")
	multiselectCmd.Flags().IntVar(&multiMin, "min", 0, "Fewest options that must be ticked")
	multiselectCmd.Flags().IntVar(&multiMax, "max", 0, "Most options that may be ticked (0 for no limit)")

	confirmCmd.Flags().StringVar(&yesText, "yes-text", "Yes", "Label of the positive answer")
	confirmCmd.Flags().StringVar(&noText, "no-text", "No", "Label of the negative answer")
	confirmCmd.Flags().BoolVar(&defaultYes, "default-yes", false, "Highlight the positive answer first")
	confirmCmd.Flags().BoolVar(&requireAnswer, "require-answer", false, "Ignore enter until an answer is chosen")
	confirmCmd.Flags().BoolVar(&matchCase, "match-case", false, "Match typed answers case sensitively")
}

// promptCmd asks for free text
var promptCmd = &cobra.Command{
	Use:   "prompt <label>",
	Short: "Ask for a line of text",
	Long: `Ask for a line of text and print it.

With --type the answer is converted before it is printed; text that does
not convert is an error, or is shown under the prompt with --inline-errors.
Booleans accept only "true" and "false".`,
	Example: `  # Plain text
  tuiprompt prompt "What is your name?"

  # Integer with a default
  tuiprompt prompt "Port" --type int --value 8080

  # Password
  tuiprompt prompt "Password" --secure

  # Tab completion
  tuiprompt prompt "Branch" --complete main,develop,release`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

func runPrompt(cmd *cobra.Command, args []string) error {
	complete, err := completionFunc(promptComplete, completeMode)
	if err != nil {
		return err
	}
	var pattern *regexp.Regexp
	if promptPattern != "" {
		pattern, err = regexp.Compile(promptPattern)
		if err != nil {
			return fmt.Errorf("invalid --pattern: %w", err)
		}
	}

	label := args[0]
	out := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	switch promptType {
	case "string":
		return askAndPrint(out, label, convert.String(), pattern, complete, func(v string) string { return v })
	case "int":
		return askAndPrint(out, label, convert.Int(), pattern, complete, strconv.Itoa)
	case "float":
		return askAndPrint(out, label, convert.Float(), pattern, complete, func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		})
	case "bool":
		return askAndPrint(out, label, convert.Bool(), pattern, complete, strconv.FormatBool)
	case "ip":
		return askAndPrint(out, label, ask.Custom("ip address", netip.ParseAddr), pattern, complete, netip.Addr.String)
	default:
		return fmt.Errorf("unknown --type %q (expected string, int, float, bool or ip)", promptType)
	}
}

// askAndPrint runs one typed prompt. pattern is matched against the
// printed form of the converted value.
func askAndPrint[T any](out *ui.Printer, label string, conv convert.Converter[T], pattern *regexp.Regexp, complete completion.Func, format func(T) string) error {
	opts := ask.PromptOptions[T]{
		Session:                session,
		Secure:                 promptSecure,
		InitialValue:           promptValue,
		Completion:             complete,
		InlineConversionErrors: promptInline,
		InlineValidationErrors: promptInline,
	}
	if pattern != nil {
		opts.Validate = func(v T) bool { return pattern.MatchString(format(v)) }
	}

	v, ok, err := ask.Prompt(label, conv, opts)
	if err != nil {
		return err
	}
	if !ok {
		return errNoAnswer
	}
	out.Result(format(v))
	return nil
}

// completionFunc builds the Tab-completion callback from --complete.
func completionFunc(candidates, mode string) (completion.Func, error) {
	if candidates == "" {
		return nil, nil
	}
	list := splitList(candidates)
	switch mode {
	case "fuzzy":
		return completion.Cached(completion.Fuzzy(list), 0), nil
	case "prefix":
		return completion.Cached(completion.Prefix(list, true), 0), nil
	default:
		return nil, fmt.Errorf("unknown --complete-mode %q (expected fuzzy or prefix)", mode)
	}
}

// selectCmd picks one option
var selectCmd = &cobra.Command{
	Use:   "select <option>...",
	Short: "Pick one option from a list",
	Long: `Pick one option from a list and print it.

Navigate with the arrow keys, or page by page with --paginate. Without
options the command prints nothing, or fails with --strict.`,
	Example: `  tuiprompt select red green blue

  # Print the index of the chosen option
  tuiprompt select --index red green blue

  # Long lists
  tuiprompt select --paginate --page-size 10 $(ls)`,
	RunE: runSelect,
}

func pageSize() int {
	if selectPageSize > 0 {
		return selectPageSize
	}
	return resolved.PageSize
}

func runSelect(cmd *cobra.Command, args []string) error {
	out := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	opts := ask.SelectOptions[string]{
		Session:     session,
		CursorIndex: selectCursor,
		Paginated:   selectPaginate,
		PageSize:    pageSize(),
		Strict:      selectStrict,
	}

	if selectIndex {
		i, ok, err := ask.SelectIndex(args, opts)
		if err != nil {
			return err
		}
		if !ok {
			return errNoAnswer
		}
		out.Result(strconv.Itoa(i))
		return nil
	}

	v, ok, err := ask.Select(args, opts)
	if err != nil {
		return err
	}
	if !ok {
		return errNoAnswer
	}
	out.Result(v)
	return nil
}

// multiselectCmd ticks any number of options
var multiselectCmd = &cobra.Command{
	Use:   "multiselect <option>...",
	Short: "Tick any number of options from a list",
	Long: `Tick options with space and confirm with enter. Ticked options are
printed one per line in list order. Press "a" to tick or clear all.`,
	Example: `  tuiprompt multiselect --min 1 --max 2 cheese ham pineapple

  # Start with the first and third ticked, print indices
  tuiprompt multiselect --ticked 0,2 --indices a b c`,
	RunE: runMultiselect,
}

func runMultiselect(cmd *cobra.Command, args []string) error {
	ticked, err := parseIndices(multiTicked)
	if err != nil {
		return fmt.Errorf("invalid --ticked: %w", err)
	}
	if multiMin < 0 || multiMax < 0 {
		return fmt.Errorf("--min and --max cannot be negative")
	}

	out := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	opts := ask.MultiSelectOptions[string]{
		Session:     session,
		Ticked:      ticked,
		CursorIndex: selectCursor,
		MinCount:    multiMin,
		MaxCount:    multiMax,
		Paginated:   selectPaginate,
		PageSize:    pageSize(),
		Strict:      selectStrict,
	}

	if multiIndices {
		indices, err := ask.SelectMultipleIndices(args, opts)
		if err != nil {
			return err
		}
		lines := make([]string, len(indices))
		for i, idx := range indices {
			lines[i] = strconv.Itoa(idx)
		}
		out.Result(lines...)
		return nil
	}

	values, err := ask.SelectMultiple(args, opts)
	if err != nil {
		return err
	}
	out.Result(values...)
	return nil
}

// confirmCmd asks a yes/no question
var confirmCmd = &cobra.Command{
	Use:   "confirm <question>",
	Short: "Ask a yes/no question",
	Long: `Ask a yes/no question. Exit status is 0 for yes and 1 for no.

Answer with the arrow keys or by typing the start of an answer. Enter
accepts the highlighted answer unless --require-answer is given.`,
	Example: `  tuiprompt confirm "Deploy to production?" && ./deploy.sh

  tuiprompt confirm "Continue?" --default-yes`,
	Args: cobra.ExactArgs(1),
	RunE: runConfirm,
}

func runConfirm(cmd *cobra.Command, args []string) error {
	yes, ok, err := ask.Confirm(args[0], ask.ConfirmOptions{
		Session:       session,
		YesText:       yesText,
		NoText:        noText,
		MatchCase:     matchCase,
		RequireAnswer: requireAnswer,
		DefaultIsYes:  defaultYes,
	})
	if err != nil {
		return err
	}
	if !ok || !yes {
		return errNoAnswer
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIndices(s string) ([]int, error) {
	var out []int
	for _, part := range splitList(s) {
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}
