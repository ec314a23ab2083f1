// pkg/resolver/configure_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: ScriptedPrompter, FakeRunner
// PURPOSE: Test the interactive configuration flow and Resolve decisions

package resolver_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/resolver"
	"github.com/arthur-debert/qualia/pkg/testutil"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mesonTools() *testutil.FakeRunner {
	return testutil.NewFakeRunner().AddBinary("meson", "ninja")
}

// gnomeAnswers answers a full configuration on a gnome-only host: accent,
// variant, then one answer per eligible component.
func gnomeAnswers(accent, variant string) []string {
	return []string{
		accent, variant,
		"y", // gtk3
		"n", // gtk4-libadwaita
		"y", // gtk4
		"y", // gnome-shell
		"y", // icons
		"",  // cursors (default yes)
		"n", // sounds
		"n", // gtksourceview
	}
}

func TestResolveFreshInstall(t *testing.T) {
	prompter := testutil.NewScriptedPrompter(gnomeAnswers("blue", "dark")...)
	eligible := resolver.Eligible(gnome43, types.HostInventory{})
	r := resolver.New(prompter, mesonTools(), nil, eligible)

	loaded := record.New()
	out, err := r.Resolve(context.Background(), loaded, false, types.RunConfig{})
	require.NoError(t, err)

	assert.True(t, out.ConfigureAll)
	assert.True(t, out.Configured)
	assert.Equal(t, types.AccentBlue, out.Record.Accent)
	assert.Equal(t, types.VariantDark, out.Record.Variant)
	assert.Equal(t, types.SchemePreferDark, out.Scheme)
	assert.Equal(t, []types.Component{
		types.ComponentGtk3, types.ComponentGtk4, types.ComponentGnomeShell,
		types.ComponentIcons, types.ComponentCursors,
	}, out.Record.Enabled)
	for _, c := range out.Record.Enabled {
		assert.True(t, resolver.IsEligible(eligible, c))
	}
	assert.Zero(t, prompter.Remaining())
	assert.Empty(t, loaded.Enabled, "the loaded record is not modified")
	assert.Equal(t, "qualia-blue-dark", out.Names()[types.ComponentGtk3])
}

func TestResolveValidRecordAsksNothing(t *testing.T) {
	prompter := testutil.NewScriptedPrompter()
	r := resolver.New(prompter, mesonTools(), nil, resolver.Eligible(gnome43, types.HostInventory{}))

	out, err := r.Resolve(context.Background(), validRecord(), true, types.RunConfig{})
	require.NoError(t, err)
	assert.False(t, out.Configured)
	assert.False(t, out.ConfigureAll)
	assert.Equal(t, types.SchemePreferDark, out.Scheme)
	assert.Empty(t, prompter.Asked())
}

func TestResolveCorruptRecordReconfigures(t *testing.T) {
	prompter := testutil.NewScriptedPrompter(gnomeAnswers("", "light")...)
	r := resolver.New(prompter, mesonTools(), nil, resolver.Eligible(gnome43, types.HostInventory{}))

	corrupt := validRecord()
	corrupt.Enabled = []types.Component{types.ComponentXfwm4} // not eligible on gnome

	out, err := r.Resolve(context.Background(), corrupt, true, types.RunConfig{})
	require.NoError(t, err)
	assert.Equal(t, []types.Component{types.ComponentXfwm4}, out.Dropped)
	assert.True(t, out.ConfigureAll)
	assert.Equal(t, types.AccentBlue, out.Record.Accent, "the previous accent is the default answer")
	assert.Equal(t, types.SchemeDefault, out.Scheme)
}

func TestAutoDetectFailureReprompts(t *testing.T) {
	answers := append([]string{"", "auto", "dark"}, gnomeAnswers("", "")[2:]...)
	prompter := testutil.NewScriptedPrompter(answers...)
	r := resolver.New(prompter, mesonTools(), failingDetect, resolver.Eligible(gnome43, types.HostInventory{}))

	out, err := r.Resolve(context.Background(), record.New(), false, types.RunConfig{})
	require.NoError(t, err)
	assert.Equal(t, types.VariantDark, out.Record.Variant)
	assert.Equal(t, types.SchemePreferDark, out.Scheme)
	assert.Len(t, prompter.Warnings(), 1)

	variantAsked := 0
	for _, q := range prompter.Asked() {
		if q == resolver.VariantQuestion {
			variantAsked++
		}
	}
	assert.Equal(t, 2, variantAsked)
}

func TestAutoDetectFailureWithoutAnswerWritesNothing(t *testing.T) {
	// The user keeps choosing auto until the script runs out.
	prompter := testutil.NewScriptedPrompter("", "auto", "auto")
	r := resolver.New(prompter, mesonTools(), failingDetect, resolver.Eligible(gnome43, types.HostInventory{}))

	out, err := r.Resolve(context.Background(), record.New(), false, types.RunConfig{})
	assert.Error(t, err)
	assert.Nil(t, out)
	assert.Len(t, prompter.Warnings(), 2)
}

func TestMissingMesonReasks(t *testing.T) {
	tools := testutil.NewFakeRunner().AddBinary("meson")
	answers := []string{"", "", "y", "n"}
	answers = append(answers, "n", "n", "n", "n", "n", "n", "n")
	prompter := testutil.NewScriptedPrompter(answers...)
	r := resolver.New(prompter, tools, nil, resolver.Eligible(gnome43, types.HostInventory{}))

	out, err := r.Resolve(context.Background(), record.New(), false, types.RunConfig{})
	require.NoError(t, err)
	assert.Empty(t, out.Record.Enabled)
	require.Len(t, prompter.Warnings(), 1)
	assert.Equal(t, "'ninja' not found, can't install GTK3 theme.", prompter.Warnings()[0])
}

func TestNarrowReconfiguration(t *testing.T) {
	hosts := types.HostInventory{Firefox: []string{"standard"}, VSCode: []string{"code"}}
	eligible := resolver.Eligible(gnome43, hosts)

	t.Run("accent only", func(t *testing.T) {
		prompter := testutil.NewScriptedPrompter("red")
		r := resolver.New(prompter, mesonTools(), nil, eligible)
		out, err := r.Resolve(context.Background(), validRecord(), true, types.RunConfig{AskAccent: true})
		require.NoError(t, err)
		assert.True(t, out.Configured)
		assert.False(t, out.ConfigureAll)
		assert.Equal(t, types.AccentRed, out.Record.Accent)
		assert.Equal(t, types.SchemePreferDark, out.Scheme, "scheme comes from the record")
		assert.Equal(t, []types.Component{types.ComponentGtk3}, out.Record.Enabled)
	})

	t.Run("syntax while vscode enabled", func(t *testing.T) {
		rec := validRecord()
		rec.Enable(types.ComponentVSCode)
		prompter := testutil.NewScriptedPrompter("y")
		r := resolver.New(prompter, mesonTools(), nil, eligible)
		out, err := r.Resolve(context.Background(), rec, true, types.RunConfig{AskSyntax: true})
		require.NoError(t, err)
		assert.True(t, out.Record.IsEnabled(types.ComponentDefaultSyntax))
		assert.Equal(t, []string{"Do you want to keep the default syntax highlighting in VS Code?"}, prompter.Asked())
	})

	t.Run("firefox settings turned off", func(t *testing.T) {
		rec := validRecord()
		rec.Enable(types.ComponentFirefox)
		rec.Enable(types.ComponentSettingsTheme)
		prompter := testutil.NewScriptedPrompter("n")
		r := resolver.New(prompter, mesonTools(), nil, eligible)
		out, err := r.Resolve(context.Background(), rec, true, types.RunConfig{AskFirefoxSettings: true})
		require.NoError(t, err)
		assert.False(t, out.Record.IsEnabled(types.ComponentSettingsTheme))
		assert.True(t, out.Record.IsEnabled(types.ComponentFirefox))
	})

	t.Run("option with disabled parent", func(t *testing.T) {
		rec := validRecord()
		prompter := testutil.NewScriptedPrompter("red")
		r := resolver.New(prompter, mesonTools(), nil, eligible)
		out, err := r.Resolve(context.Background(), rec, true, types.RunConfig{AskAccent: true, AskSyntax: true})
		assert.Nil(t, out)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIneligible))
		assert.Empty(t, prompter.Asked(), "nothing is asked before failing")
		assert.Equal(t, types.AccentBlue, rec.Accent)
	})
}
