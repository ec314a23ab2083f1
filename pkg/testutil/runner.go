package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/runner"
)

// FakeRunner is a runner.Runner with scripted results. Commands are keyed
// by their command line as rendered by runner.Cmd.String.
type FakeRunner struct {
	mu       sync.Mutex
	binaries map[string]bool
	outputs  map[string]string
	failures map[string]string
	calls    []runner.Cmd

	// OnRun, when set, is called for every Run after the call is logged.
	// A non-nil result fails the command.
	OnRun func(c runner.Cmd) error
}

// NewFakeRunner creates a FakeRunner with no binaries on PATH
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		binaries: map[string]bool{},
		outputs:  map[string]string{},
		failures: map[string]string{},
	}
}

// AddBinary puts names on the fake PATH
func (f *FakeRunner) AddBinary(names ...string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range names {
		f.binaries[n] = true
	}
	return f
}

// RemoveBinary takes name off the fake PATH
func (f *FakeRunner) RemoveBinary(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.binaries, name)
}

// SetOutput scripts the stdout of a command line
func (f *FakeRunner) SetOutput(cmdline, output string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[cmdline] = output
	delete(f.failures, cmdline)
	return f
}

// SetFailure makes a command line fail with the given output
func (f *FakeRunner) SetFailure(cmdline, output string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[cmdline] = output
	return f
}

func (f *FakeRunner) record(c runner.Cmd) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	out, failed := f.failures[c.String()]
	return out, failed
}

func failure(c runner.Cmd, output string) error {
	return errors.Newf(errors.ErrCommandFailed, "command failed: %s", c.String()).
		WithDetail("command", c.String()).
		WithDetail("output", output)
}

// Run logs c and returns the scripted result
func (f *FakeRunner) Run(_ context.Context, c runner.Cmd) error {
	if out, failed := f.record(c); failed {
		return failure(c, out)
	}
	if f.OnRun != nil {
		return f.OnRun(c)
	}
	return nil
}

// Output logs c and returns its scripted stdout, trimmed like the real
// runner. Unscripted commands print nothing.
func (f *FakeRunner) Output(_ context.Context, c runner.Cmd) (string, error) {
	if out, failed := f.record(c); failed {
		return "", failure(c, out)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return runner.TrimValue(f.outputs[c.String()]), nil
}

// LookPath reports whether name was added with AddBinary
func (f *FakeRunner) LookPath(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.binaries[name]
}

// Calls returns every command run so far, in order
func (f *FakeRunner) Calls() []runner.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]runner.Cmd(nil), f.calls...)
}

// CommandLines returns the rendered command lines run so far
func (f *FakeRunner) CommandLines() []string {
	var out []string
	for _, c := range f.Calls() {
		out = append(out, c.String())
	}
	return out
}

// Ran reports whether cmdline was run
func (f *FakeRunner) Ran(cmdline string) bool {
	for _, line := range f.CommandLines() {
		if line == cmdline {
			return true
		}
	}
	return false
}

// Reset clears the call log
func (f *FakeRunner) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}
