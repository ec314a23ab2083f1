package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/types"
)

// FakeExtensions is an enable.Extensions with a fixed answer
type FakeExtensions struct {
	mu    sync.Mutex
	err   error
	calls int
}

// NewFakeExtensions creates a gate that lets the shell theme through
func NewFakeExtensions() *FakeExtensions {
	return &FakeExtensions{}
}

// Missing makes the gate report the user themes extension as absent
func (f *FakeExtensions) Missing() *FakeExtensions {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = errors.New(errors.ErrNotFound, "'User Themes' GNOME Shell Extension not found")
	return f
}

func (f *FakeExtensions) EnableUserTheme(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

// Calls returns how many times the gate was checked
func (f *FakeExtensions) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Reporter records user facing messages: those of an enable pass and the
// notices and lines the installer prints
type Reporter struct {
	mu       sync.Mutex
	changes  []string
	warnings []string
	notices  []string
	infos    []string
}

// Changing records "component/desktop=value"
func (r *Reporter) Changing(c types.Component, d types.Desktop, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, fmt.Sprintf("%s/%s=%s", c, d, value))
}

func (r *Reporter) Warn(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, message)
}

// Changes returns the recorded changes, in order
func (r *Reporter) Changes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.changes...)
}

// Warnings returns the recorded warnings, in order
func (r *Reporter) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.warnings...)
}

func (r *Reporter) Notice(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, message)
}

func (r *Reporter) Info(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, message)
}

// Notices returns the recorded notices, in order
func (r *Reporter) Notices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.notices...)
}

// Infos returns the recorded plain lines, in order
func (r *Reporter) Infos() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.infos...)
}
