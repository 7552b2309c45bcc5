package main

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tuiprompt/ask"
	"github.com/muurk/tuiprompt/internal/logging"
	"github.com/muurk/tuiprompt/internal/ui"
)

var (
	spinTitle      string
	spinPreset     string
	spinShowOutput bool
)

func init() {
	rootCmd.AddCommand(spinCmd)

	spinCmd.Flags().StringVar(&spinTitle, "title", "Working...", "Text shown next to the spinner")
	spinCmd.Flags().StringVar(&spinPreset, "preset", "", "Spinner animation (default from config)")
	spinCmd.Flags().BoolVar(&spinShowOutput, "show-output", false, "Print the command output after it finishes")
}

var spinCmd = &cobra.Command{
	Use:   "spin -- <command> [args...]",
	Short: "Show a spinner while a command runs",
	Long: `Run a command while a spinner is shown on standard error.

The command's output is captured and discarded unless --show-output is
given. Exit status is the command's own.

Available presets: ` + strings.Join(ask.SpinnerPresets(), ", "),
	Example: `  tuiprompt spin --title "Downloading" -- curl -sO https://example.com/file.tar.gz

  tuiprompt spin --preset moon --show-output -- make test`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSpin,
}

func runSpin(cmd *cobra.Command, args []string) error {
	preset := spinPreset
	if preset == "" {
		preset = resolved.Spinner
	}
	s, err := ask.NewSpinner(spinTitle, ask.SpinnerOptions{Session: session, Preset: preset})
	if err != nil {
		return err
	}

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	s.Start()
	runErr := c.Run()
	s.Stop()

	logging.Debug("Command finished",
		zap.Strings("argv", args),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(runErr),
	)

	out := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if spinShowOutput {
		_, _ = cmd.OutOrStdout().Write(stdout.Bytes())
		_, _ = cmd.ErrOrStderr().Write(stderr.Bytes())
	}

	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
		if keepPrompt {
			out.Answer(spinTitle, "done")
		}
		return nil
	case errors.As(runErr, &exitErr):
		if code := exitErr.ExitCode(); code > 0 {
			return &exitError{code: code}
		}
		return &exitError{code: exitFailure, err: runErr}
	default:
		return fmt.Errorf("run %s: %w", args[0], runErr)
	}
}
