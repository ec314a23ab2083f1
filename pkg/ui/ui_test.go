// pkg/ui/ui_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test renderer selection and status output in every format

package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/installer"
	"github.com/arthur-debert/qualia/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleStatus() *installer.Status {
	return &installer.Status{
		RecordPath: "/home/u/.config/qualia/config",
		Found:      true,
		Accent:     "blue",
		Variant:    "dark",
		Enabled:    []string{"gtk3", "icons"},
		Versions:   map[string]string{"dg-yaru": "0123456789abcdef0123456789abcdef01234567"},
		Desktops:   map[string]string{"gnome": "43"},
		Eligible:   []string{"gtk3", "icons"},
		Facets: []installer.FacetStatus{
			{Component: "gtk3", Desktop: "gnome", Store: "gsettings", Key: "org.gnome.desktop.interface gtk-theme",
				Live: "qualia-blue-dark", Desired: "qualia-blue-dark", Snapshot: "Adwaita"},
			{Component: "icons", Desktop: "gnome", Store: "gsettings", Key: "org.gnome.desktop.interface icon-theme",
				Live: "Adwaita", Desired: "qualia-blue-dark"},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		r, err := ui.NewRenderer(f, &bytes.Buffer{})
		require.NoError(t, err, f.String())
		assert.NotNil(t, r)
	}

	r, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, r)
}

func TestRenderStatusText(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleStatus()))

	out := buf.String()
	assert.Contains(t, out, "accent       : blue")
	assert.Contains(t, out, "desktops     : gnome 43")
	assert.Contains(t, out, "dg-yaru              : 0123456789ab")
	assert.Contains(t, out, "gtk3/gnome           : applied    : org.gnome.desktop.interface gtk-theme = qualia-blue-dark (was Adwaita)")
	assert.Contains(t, out, "icons/gnome          : pending    : org.gnome.desktop.interface icon-theme = Adwaita (wants qualia-blue-dark)")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderStatusTerminal(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleStatus()))

	out := buf.String()
	assert.Contains(t, out, "qualia status")
	assert.Contains(t, out, "COMPONENT")
	assert.Contains(t, out, "GNOME")
	assert.Contains(t, out, "0123456789ab")
}

func TestRenderStatusJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleStatus()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "blue", decoded["accent"])
	assert.Len(t, decoded["facets"], 2)
	assert.NotContains(t, decoded, "host")
}

func TestRenderStatusYAML(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatYAML, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleStatus()))

	var decoded installer.Status
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "dark", decoded.Variant)
	assert.Equal(t, "Adwaita", decoded.Facets[0].Snapshot)
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrRunAsRoot, "Don't run this as root, exiting.")

	var text bytes.Buffer
	r, _ := ui.NewRenderer(ui.FormatText, &text)
	require.NoError(t, r.RenderError(err))
	assert.Equal(t, "Error: Don't run this as root, exiting.\n", text.String())

	var js bytes.Buffer
	r, _ = ui.NewRenderer(ui.FormatJSON, &js)
	require.NoError(t, r.RenderError(err))
	assert.True(t, strings.Contains(js.String(), `"code": "RUN_AS_ROOT"`), js.String())
}

func TestRenderMessageStripsMarkup(t *testing.T) {
	var buf bytes.Buffer
	r, _ := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, r.RenderMessage("Config written to [path]/tmp/x[/path]"))
	assert.Equal(t, "Config written to /tmp/x\n", buf.String())
}
