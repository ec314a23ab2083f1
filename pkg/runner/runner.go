// Package runner executes the external programs the installer drives:
// build tools, settings store clients, package managers and git.
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/rs/zerolog"
)

// Cmd describes one external command
type Cmd struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current one.
	Dir string
	// Stream sends the command output to the terminal while it runs
	// instead of capturing it.
	Stream bool
}

// Command is shorthand for a Cmd without options
func Command(name string, args ...string) Cmd {
	return Cmd{Name: name, Args: args}
}

// In returns a copy of c running in dir
func (c Cmd) In(dir string) Cmd {
	c.Dir = dir
	return c
}

// Streaming returns a copy of c with Stream set
func (c Cmd) Streaming(stream bool) Cmd {
	c.Stream = stream
	return c
}

// String renders the command line for messages
func (c Cmd) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner runs external commands. Implementations must be safe to call
// from one goroutine at a time.
type Runner interface {
	// Run executes c and fails with ErrCommandFailed on a nonzero exit.
	// Captured output is attached to the error as the "output" detail.
	Run(ctx context.Context, c Cmd) error
	// Output executes c and returns its stdout with surrounding quotes
	// and newlines removed, the way settings clients print values.
	Output(ctx context.Context, c Cmd) (string, error)
	// LookPath reports whether name is on PATH.
	LookPath(name string) bool
}

// Exec is the Runner backed by os/exec
type Exec struct {
	logger zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewExec creates a runner that streams to the process's stdout/stderr
func NewExec() *Exec {
	return NewExecWithOutput(os.Stdout, os.Stderr)
}

// NewExecWithOutput creates a runner streaming to the given writers
func NewExecWithOutput(stdout, stderr io.Writer) *Exec {
	return &Exec{
		logger: logging.GetLogger("runner"),
		stdout: stdout,
		stderr: stderr,
	}
}

func (e *Exec) command(ctx context.Context, c Cmd) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	cmd.Env = os.Environ()
	return cmd
}

// Run executes c
func (e *Exec) Run(ctx context.Context, c Cmd) error {
	if c.Name == "" {
		return errors.New(errors.ErrInvalidInput, "command requires a name")
	}
	logging.LogCommand(e.logger, c.Name, c.Args)

	cmd := e.command(ctx, c)

	var captured bytes.Buffer
	if c.Stream {
		cmd.Stdout = e.stdout
		cmd.Stderr = e.stderr
	} else {
		cmd.Stdout = &captured
		cmd.Stderr = &captured
	}

	err := cmd.Run()
	if captured.Len() > 0 {
		e.logger.Trace().
			Str("command", c.String()).
			Str("output", captured.String()).
			Msg("Command output")
	}
	if err != nil {
		e.logger.Error().
			Err(err).
			Str("command", c.String()).
			Str("dir", c.Dir).
			Msg("Command execution failed")
		return errors.Wrapf(err, errors.ErrCommandFailed, "command failed: %s", c.String()).
			WithDetail("command", c.String()).
			WithDetail("output", captured.String())
	}

	e.logger.Debug().Str("command", c.String()).Msg("Command executed successfully")
	return nil
}

// Output executes c and returns its trimmed stdout
func (e *Exec) Output(ctx context.Context, c Cmd) (string, error) {
	if c.Name == "" {
		return "", errors.New(errors.ErrInvalidInput, "command requires a name")
	}
	logging.LogCommand(e.logger, c.Name, c.Args)

	cmd := e.command(ctx, c)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e.logger.Debug().
			Err(err).
			Str("command", c.String()).
			Str("stderr", stderr.String()).
			Msg("Command failed")
		return "", errors.Wrapf(err, errors.ErrCommandFailed, "command failed: %s", c.String()).
			WithDetail("command", c.String()).
			WithDetail("output", stderr.String())
	}
	return TrimValue(stdout.String()), nil
}

// LookPath reports whether name is on PATH
func (e *Exec) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// TrimValue strips the quotes and newlines settings clients wrap values in
func TrimValue(s string) string {
	return strings.Trim(s, "'\n")
}

// FailureOutput returns the captured output attached to a failed command
// error, if any. Errors wrapping the command failure are searched too.
func FailureOutput(err error) string {
	for ; err != nil; err = stderrors.Unwrap(err) {
		if out, ok := errors.GetErrorDetails(err)["output"].(string); ok {
			return out
		}
	}
	return ""
}
