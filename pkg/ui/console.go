package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/arthur-debert/qualia/pkg/style"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Console prints the user facing lines of a run. Markup is rendered on
// terminals and stripped otherwise.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	styled bool
}

// NewConsole creates a console writing to w
func NewConsole(w io.Writer, format Format) *Console {
	return &Console{w: w, styled: format == FormatTerminal}
}

func (c *Console) println(markup string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.styled {
		_, _ = fmt.Fprintln(c.w, style.Render(markup))
		return
	}
	_, _ = fmt.Fprintln(c.w, style.Strip(markup))
}

// Changing announces a settings write
func (c *Console) Changing(comp types.Component, d types.Desktop, value string) {
	c.println(fmt.Sprintf("Changing %s theme in %s to [theme]%s[/theme].", comp.Label(), d.Pretty(), value))
}

// Warn prints a non fatal problem
func (c *Console) Warn(message string) {
	c.println("[warning]" + message + "[/warning]")
}

// Notice prints a highlighted line
func (c *Console) Notice(message string) {
	c.println("[warning]" + message + "[/warning]")
}

// Info prints a plain line
func (c *Console) Info(message string) {
	c.println(message)
}

// Success prints a line marking a finished step
func (c *Console) Success(message string) {
	c.println("[success]" + message + "[/success]")
}

// Error prints a failure line
func (c *Console) Error(message string) {
	c.println("[error]" + message + "[/error]")
}
