package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/muurk/tuiprompt/ask"
	"github.com/muurk/tuiprompt/internal/ui"
)

// resetFlags restores every flag to its default so commands can be
// executed repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command with args and returns what was
// written to stdout and stderr along with the exit code.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TUIPROMPT_LOG_LEVEL", "")

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	code := execute()
	return stdout.String(), stderr.String(), code
}

func TestPromptCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOut    string
		wantErr    string
		wantStatus int
	}{
		{
			name:    "string",
			args:    []string{"prompt", "Name", "--keys", "b,o,b,enter"},
			wantOut: "bob\n",
		},
		{
			name:    "initial value",
			args:    []string{"prompt", "Name", "--value", "al", "--keys", "f,enter"},
			wantOut: "alf\n",
		},
		{
			name:    "int",
			args:    []string{"prompt", "Age", "--type", "int", "--keys", "4,2,enter"},
			wantOut: "42\n",
		},
		{
			name:    "float",
			args:    []string{"prompt", "Ratio", "--type", "float", "--keys", "0,.,5,enter"},
			wantOut: "0.5\n",
		},
		{
			name:    "bool literal",
			args:    []string{"prompt", "Enabled", "--type", "bool", "--keys", "t,r,u,e,enter"},
			wantOut: "true\n",
		},
		{
			name:       "bool rejects yes",
			args:       []string{"prompt", "Enabled", "--type", "bool", "--keys", "y,e,s,enter"},
			wantErr:    "Input `yes` cannot be converted to type `bool`",
			wantStatus: 1,
		},
		{
			name:    "ip",
			args:    []string{"prompt", "Host", "--type", "ip", "--keys", "1,0,.,0,.,0,.,1,enter"},
			wantOut: "10.0.0.1\n",
		},
		{
			name:       "pattern rejects",
			args:       []string{"prompt", "Code", "--pattern", "^a", "--keys", "b,enter"},
			wantErr:    "Input `b` is invalid",
			wantStatus: 1,
		},
		{
			name:    "inline errors keep asking",
			args:    []string{"prompt", "Code", "--pattern", "^a", "--inline-errors", "--keys", "b,enter,backspace,a,enter"},
			wantOut: "a\n",
		},
		{
			name:       "secure input is masked in errors",
			args:       []string{"prompt", "PIN", "--type", "int", "--secure", "--keys", "x,enter"},
			wantErr:    "<secure_input>",
			wantStatus: 1,
		},
		{
			name:    "completion",
			args:    []string{"prompt", "Branch", "--complete", "main,develop", "--complete-mode", "prefix", "--keys", "d,tab,enter"},
			wantOut: "develop\n",
		},
		{
			name:       "escape",
			args:       []string{"prompt", "Name", "--keys", "a,esc"},
			wantStatus: 1,
		},
		{
			name:       "raise on escape",
			args:       []string{"prompt", "Name", "--raise-on-escape", "--keys", "esc"},
			wantStatus: 130,
		},
		{
			name:       "unknown type",
			args:       []string{"prompt", "Name", "--type", "date", "--keys", "enter"},
			wantErr:    `unknown --type "date"`,
			wantStatus: 1,
		},
		{
			name:       "bad pattern",
			args:       []string{"prompt", "Name", "--pattern", "(", "--keys", "enter"},
			wantErr:    "invalid --pattern",
			wantStatus: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, code := runCLI(t, tt.args...)
			if code != tt.wantStatus {
				t.Fatalf("exit code = %d, want %d (stderr %q)", code, tt.wantStatus, errOut)
			}
			if out != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out, tt.wantOut)
			}
			if tt.wantErr != "" && !strings.Contains(errOut, tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", errOut, tt.wantErr)
			}
		})
	}
}

func TestSelectCommand(t *testing.T) {
	out, _, code := runCLI(t, "select", "--keys", "down,enter", "red", "green", "blue")
	if code != 0 || out != "green\n" {
		t.Errorf("select = (%q, %d), want (\"green\\n\", 0)", out, code)
	}

	out, _, code = runCLI(t, "select", "--index", "--cursor", "2", "--keys", "down,enter", "red", "green", "blue")
	if code != 0 || out != "0\n" {
		t.Errorf("select --index = (%q, %d), want (\"0\\n\", 0)", out, code)
	}

	out, _, code = runCLI(t, "select", "--paginate", "--page-size", "2", "--keys", "right,enter", "a", "b", "c", "d")
	if code != 0 || out != "c\n" {
		t.Errorf("paginated select = (%q, %d), want (\"c\\n\", 0)", out, code)
	}

	out, _, code = runCLI(t, "select", "--keys", "ctrl+c", "a", "b")
	if code != 1 || out != "" {
		t.Errorf("interrupted select = (%q, %d), want (\"\", 1)", out, code)
	}

	_, _, code = runCLI(t, "select", "--raise-on-interrupt", "--keys", "ctrl+c", "a", "b")
	if code != 130 {
		t.Errorf("raised interrupt exit code = %d, want 130", code)
	}
}

func TestSelectCommand_NoOptions(t *testing.T) {
	out, errOut, code := runCLI(t, "select", "--keys", "enter")
	if code != 1 || out != "" || errOut != "" {
		t.Errorf("lenient empty select = (%q, %q, %d), want silent exit 1", out, errOut, code)
	}

	_, errOut, code = runCLI(t, "select", "--strict", "--keys", "enter")
	if code != 1 {
		t.Errorf("strict exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, ask.ErrEmptyOptions.Error()) {
		t.Errorf("stderr = %q, want %q", errOut, ask.ErrEmptyOptions.Error())
	}
}

func TestMultiselectCommand(t *testing.T) {
	out, _, code := runCLI(t, "multiselect", "--keys", "space,down,down,space,enter", "a", "b", "c")
	if code != 0 || out != "a\nc\n" {
		t.Errorf("multiselect = (%q, %d), want (\"a\\nc\\n\", 0)", out, code)
	}

	out, _, code = runCLI(t, "multiselect", "--indices", "--ticked", "2,0", "--keys", "enter", "a", "b", "c")
	if code != 0 || out != "0\n2\n" {
		t.Errorf("multiselect --indices = (%q, %d), want (\"0\\n2\\n\", 0)", out, code)
	}

	out, _, code = runCLI(t, "multiselect", "--max", "2", "--keys", "a,enter", "a", "b", "c")
	if code != 0 || out != "a\nb\n" {
		t.Errorf("capped select all = (%q, %d), want (\"a\\nb\\n\", 0)", out, code)
	}

	out, _, code = runCLI(t, "multiselect", "--min", "1", "--keys", "enter,space,enter", "a", "b")
	if code != 0 || out != "a\n" {
		t.Errorf("min count = (%q, %d), want (\"a\\n\", 0)", out, code)
	}

	out, _, code = runCLI(t, "multiselect", "--keys", "space,esc", "a", "b")
	if code != 0 || out != "" {
		t.Errorf("escaped multiselect = (%q, %d), want (\"\", 0)", out, code)
	}

	_, errOut, code := runCLI(t, "multiselect", "--ticked", "x", "--keys", "enter", "a")
	if code != 1 || !strings.Contains(errOut, "invalid --ticked") {
		t.Errorf("bad --ticked = (%q, %d)", errOut, code)
	}
}

func TestConfirmCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"typed yes", []string{"confirm", "Deploy?", "--keys", "y,enter"}, 0},
		{"typed no", []string{"confirm", "Deploy?", "--keys", "n,enter"}, 1},
		{"default yes", []string{"confirm", "Deploy?", "--default-yes", "--keys", "enter"}, 0},
		{"arrow toggles", []string{"confirm", "Deploy?", "--default-yes", "--keys", "down,enter"}, 1},
		{"custom labels", []string{"confirm", "Ship?", "--yes-text", "Sure", "--no-text", "Nope", "--keys", "s,u,enter"}, 0},
		{"escape", []string{"confirm", "Deploy?", "--keys", "esc"}, 1},
		{"raise on escape", []string{"confirm", "Deploy?", "--raise-on-escape", "--keys", "esc"}, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, code := runCLI(t, tt.args...)
			if code != tt.want {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.want, errOut)
			}
			if out != "" {
				t.Errorf("stdout = %q, want empty", out)
			}
		})
	}
}

func TestScriptExhausted(t *testing.T) {
	_, errOut, code := runCLI(t, "prompt", "Name", "--keys", "a")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, ask.ErrScriptExhausted.Error()) {
		t.Errorf("stderr = %q, want script exhausted error", errOut)
	}
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, _, code := runCLI(t, "config", "path", "--config", path)
	if code != 0 || out != path+"\n" {
		t.Errorf("config path = (%q, %d)", out, code)
	}

	_, errOut, code := runCLI(t, "config", "init", "--config", path)
	if code != 0 {
		t.Fatalf("config init exit code = %d (stderr %q)", code, errOut)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	_, errOut, code = runCLI(t, "config", "init", "--config", path)
	if code != 1 || !strings.Contains(errOut, "already exists") {
		t.Errorf("second init = (%q, %d), want already exists error", errOut, code)
	}

	out, _, code = runCLI(t, "config", "show", "--config", path)
	if code != 0 || !strings.Contains(out, "page_size: 5") {
		t.Errorf("config show = (%q, %d), want page_size: 5", out, code)
	}
}

func TestConfigFileSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("version: 1\nbehavior:\n  raise_on_escape: true\nkeys:\n  confirm: [\"ctrl+s\"]\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	_, _, code := runCLI(t, "prompt", "Name", "--config", path, "--keys", "esc")
	if code != 130 {
		t.Errorf("raise_on_escape from file: exit code = %d, want 130", code)
	}

	out, _, code := runCLI(t, "select", "--config", path, "--keys", "down,ctrl+s", "a", "b")
	if code != 0 || out != "b\n" {
		t.Errorf("rebound confirm = (%q, %d), want (\"b\\n\", 0)", out, code)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("version: 99\n"), 0600); err != nil {
		t.Fatal(err)
	}
	_, errOut, code := runCLI(t, "prompt", "Name", "--config", bad, "--keys", "enter")
	if code != 1 || !strings.Contains(errOut, "invalid config file") {
		t.Errorf("bad config = (%q, %d)", errOut, code)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, code := runCLI(t, "version")
	if code != 0 || !strings.HasPrefix(out, "tuiprompt ") {
		t.Errorf("version = (%q, %d)", out, code)
	}
}

func TestExitCode(t *testing.T) {
	var errOut bytes.Buffer
	p := ui.NewPrinter(&bytes.Buffer{}, &errOut)

	tests := []struct {
		name      string
		err       error
		want      int
		wantPrint bool
	}{
		{"nil", nil, 0, false},
		{"aborted", &ask.AbortError{Key: ask.ParseKey("esc")}, 130, false},
		{"interrupted", ask.ErrInterrupted, 130, false},
		{"no answer", errNoAnswer, 1, false},
		{"command status", &exitError{code: 3}, 3, false},
		{"wrapped message", &exitError{code: 2, err: errors.New("boom")}, 2, true},
		{"plain error", errors.New("boom"), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errOut.Reset()
			if got := exitCode(tt.err, p); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
			if printed := errOut.Len() > 0; printed != tt.wantPrint {
				t.Errorf("printed = %v, want %v (%q)", printed, tt.wantPrint, errOut.String())
			}
		})
	}
}
