package qualia

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/qualia/pkg/build"
	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/progress"
	"github.com/arthur-debert/qualia/pkg/runner"
	"github.com/arthur-debert/qualia/pkg/style"
	"github.com/arthur-debert/qualia/pkg/ui"
	"github.com/spf13/cobra"
)

// Execute runs the command line against env and returns the exit code
func Execute(ctx context.Context, env Env, args []string) int {
	rootCmd := NewRootCmdWithEnv(env)
	rootCmd.SetArgs(args)
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	if stdoutIsTerminal() {
		progress.RestoreCursor()
	}

	verbosity, _ := rootCmd.PersistentFlags().GetCount("verbose")
	PrintError(env.Stderr, err, verbosity, stderrFormat(cmd))
	return 1
}

// stderrFormat styles errors only when stdout output is styled too
func stderrFormat(cmd *cobra.Command) ui.Format {
	if cmd == nil || !stdoutIsTerminal() {
		return ui.FormatText
	}
	name, _ := cmd.Flags().GetString("format")
	if f, err := ui.ParseFormat(name); err == nil && f.Structured() {
		return ui.FormatText
	}
	return ui.FormatTerminal
}

// PrintError prints err for the user. Build failures get their hints;
// with -v the captured output of a failed command is shown too.
func PrintError(w io.Writer, err error, verbosity int, format ui.Format) {
	var b strings.Builder
	fmt.Fprintf(&b, "[error]%s[/error] %s\n", MsgErrorPrefix, errors.GetErrorMessage(err))

	if verbosity > 0 {
		if full := err.Error(); full != errors.GetErrorMessage(err) {
			fmt.Fprintf(&b, "[muted]%s[/muted]\n", full)
		}
		if out := strings.TrimSpace(runner.FailureOutput(err)); out != "" {
			fmt.Fprintf(&b, "\n[muted]%s[/muted]\n%s\n", MsgCommandOutput, out)
		}
	}
	for _, hint := range build.Hints(err) {
		fmt.Fprintf(&b, "[warning]%s[/warning]\n", hint)
	}

	text := b.String()
	if format == ui.FormatTerminal {
		text = style.Render(text)
	} else {
		text = style.Strip(text)
	}
	_, _ = io.WriteString(w, text)
}
