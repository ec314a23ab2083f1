// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/installer"
	"github.com/arthur-debert/qualia/pkg/style"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/arthur-debert/qualia/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Renderer provides rich terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders a status with a summary box and a settings table.
// Other values are printed as they are.
func (r *Renderer) RenderResult(result interface{}) error {
	st, ok := result.(*installer.Status)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("qualia status") + "\n")
	b.WriteString(style.BoxStyle.Render(summary(st)) + "\n")

	if versions := display.Versions(st); len(versions) > 0 {
		b.WriteString("\n" + style.SubtitleStyle.Render("Versions") + "\n")
		for _, f := range versions {
			b.WriteString(style.Indent(fmt.Sprintf("%-20s %s", f.Label, style.CodeStyle.Render(f.Value)), 1) + "\n")
		}
	}

	if len(st.Facets) > 0 {
		b.WriteString("\n" + style.SubtitleStyle.Render("Settings") + "\n")
		b.WriteString(settingsTable(st.Facets) + "\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func summary(st *installer.Status) string {
	lines := make([]string, 0, 8)
	for _, f := range display.Summary(st) {
		value := f.Value
		switch f.Label {
		case "accent":
			if st.Accent != "" {
				value = style.Swatch(types.Accent(st.Accent)) + " " + value
			}
		case "record":
			value = style.PathStyle.Render(value)
		}
		lines = append(lines, style.MutedStyle.Render(fmt.Sprintf("%-9s", f.Label))+" "+value)
	}
	return strings.Join(lines, "\n")
}

func settingsTable(facets []installer.FacetStatus) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.BorderColor)).
		Headers("COMPONENT", "DESKTOP", "STATE", "SETTING").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return style.SubtitleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, f := range facets {
		t.Row(f.Component, types.Desktop(f.Desktop).Pretty(), style.Badge(display.State(f)), display.Setting(f))
	}
	return t.Render()
}

// RenderError renders an error with its hints
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, style.ErrorStyle.Render(errors.GetErrorMessage(err)))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Render(msg))
	return err
}
