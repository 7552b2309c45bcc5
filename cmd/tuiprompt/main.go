// Tuiprompt asks interactive questions from shell scripts.
//
// Each subcommand shows one prompt on the terminal and writes the answer
// to standard output, so it can be captured:
//
//	name=$(tuiprompt prompt "What is your name?")
//	color=$(tuiprompt select red green blue)
//	tuiprompt confirm "Deploy?" && ./deploy.sh
//
// Prompts draw on standard error. Exit status is 0 on an answer, 1 on
// errors or when no answer was given, and 130 when escape or ctrl+c is
// configured to abort.
//
// Usage:
//
//	tuiprompt [command] [flags]
//
// See 'tuiprompt --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tuiprompt/ask"
	"github.com/muurk/tuiprompt/internal/config"
	"github.com/muurk/tuiprompt/internal/logging"
	"github.com/muurk/tuiprompt/internal/ui"
	"github.com/muurk/tuiprompt/internal/version"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitAborted = 130
)

func main() {
	os.Exit(execute())
}

func execute() int {
	err := rootCmd.Execute()
	logging.Sync()
	return exitCode(err, ui.NewPrinter(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()))
}

// exitError ends the process with a specific code. A nil err exits
// silently.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// errNoAnswer is returned when a prompt ended with the neutral value.
var errNoAnswer = &exitError{code: exitFailure}

// exitCode maps a command error to a process exit code, printing it
// when it carries a message.
func exitCode(err error, p *ui.Printer) int {
	if err == nil {
		return exitOK
	}

	if errors.Is(err, ask.ErrAborted) || errors.Is(err, ask.ErrInterrupted) {
		return exitAborted
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			p.Error(ee.err)
		}
		return ee.code
	}

	p.Error(err)
	return exitFailure
}

// Global flags
var (
	configPath       string
	keyScript        string
	raiseOnEscape    bool
	raiseOnInterrupt bool
	keepPrompt       bool
)

// Built by setupSession before every prompt command
var (
	session  *ask.Session
	resolved config.Resolved
)

var rootCmd = &cobra.Command{
	Use:   "tuiprompt",
	Short: "Interactive prompts for shell scripts",
	Long: `Interactive terminal prompts for shell scripts.

Ask for free text, pick one or many options from a list, answer yes/no
questions, or show a spinner while a command runs. Answers are written to
standard output; prompts are drawn on standard error.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupSession,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&raiseOnEscape, "raise-on-escape", false, "Exit with status 130 when escape is pressed")
	rootCmd.PersistentFlags().BoolVar(&raiseOnInterrupt, "raise-on-interrupt", false, "Exit with status 130 when ctrl+c is pressed")
	rootCmd.PersistentFlags().BoolVar(&keepPrompt, "keep", false, "Leave the answered prompt on screen")
	rootCmd.PersistentFlags().StringVar(&keyScript, "keys", "", "Replay a comma separated key script instead of reading the terminal")
	_ = rootCmd.PersistentFlags().MarkHidden("keys")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Detailed())
	},
}

func loadConfig() (*config.File, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// setupSession initializes logging and builds the prompt session from
// the config file and global flags.
func setupSession(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}

	f, err := loadConfig()
	if err != nil {
		return err
	}
	resolved, err = f.Resolve()
	if err != nil {
		return err
	}

	settings := ask.Settings{
		RaiseOnInterrupt: resolved.RaiseOnInterrupt || raiseOnInterrupt,
		RaiseOnEscape:    resolved.RaiseOnEscape || raiseOnEscape,
		Transient:        resolved.Transient && !keepPrompt,
		Keys:             resolved.Keys,
		Theme:            resolved.Theme,
	}

	var opts []ask.SessionOption
	if keyScript != "" {
		opts = append(opts, ask.WithTerminal(ask.NewScriptedTerminal(keyScript)))
	}
	session = ask.NewSession(settings, opts...)

	logging.Debug("Session ready",
		zap.String("command", cmd.Name()),
		zap.Bool("raise_on_escape", settings.RaiseOnEscape),
		zap.Bool("raise_on_interrupt", settings.RaiseOnInterrupt),
		zap.Bool("scripted", keyScript != ""),
	)
	return nil
}
