// pkg/style/style_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test markup rendering and helpers

package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestMarkupKeepsContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Installing", "Installing"},
		{"single tag", "[theme]qualia-blue[/theme]", "qualia-blue"},
		{"nested", "[warning]'[bold]gsettings[/bold]' not found[/warning]", "gsettings"},
		{"unknown tag untouched", "[nope]x[/nope]", "[nope]x[/nope]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Render(tt.in), tt.want)
		})
	}
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "Changing GTK3 theme in GNOME to qualia-blue.",
		Strip("Changing GTK3 theme in GNOME to [theme]qualia-blue[/theme]."))
	assert.Equal(t, "'sassc' not found", Strip("[error]'[bold]sassc[/bold]' not found[/error]"))
	assert.Equal(t, "[nope]x[/nope]", Strip("[nope]x[/nope]"))
}

func TestAddStyle(t *testing.T) {
	p := NewMarkupParser()
	p.AddStyle("accent", lipgloss.NewStyle().Bold(true))
	assert.Equal(t, "blue", p.Strip("[accent]blue[/accent]"))
	assert.Contains(t, p.Render("[accent]blue[/accent]"), "blue")
	assert.NotContains(t, p.Render("[accent]blue[/accent]"), "[accent]")
}

func TestHelpersKeepText(t *testing.T) {
	for _, f := range []func(string) string{Bold, Italic} {
		assert.Contains(t, f("qualia"), "qualia")
	}
	assert.Equal(t, "    x", Indent("x", 2))
}

func TestSwatch(t *testing.T) {
	for _, a := range types.Accents() {
		assert.Contains(t, Swatch(a), "●", "swatch of %s", a)
	}
	assert.Equal(t, PrimaryColor, AccentColor("nope"))
}

func TestBadge(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	badge := Badge(FacetApplied)
	assert.Equal(t, " applied    ", badge)
	assert.True(t, strings.HasPrefix(Badge(FacetUnreadable), " unreadable"))
}
