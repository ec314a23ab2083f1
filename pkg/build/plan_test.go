// pkg/build/plan_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs, FakePaths
// PURPOSE: Test the commands planned for each group

package build_test

import (
	"testing"

	"github.com/arthur-debert/qualia/pkg/build"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/testutil"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(enabled ...types.Component) *record.Record {
	rec := record.New()
	rec.Accent = types.AccentBlue
	rec.Variant = types.VariantDark
	rec.Enabled = enabled
	return rec
}

func commandLines(p build.Plan) []string {
	var out []string
	for _, s := range p.Steps {
		out = append(out, s.String())
	}
	return out
}

func TestPlanAdwGtk3(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := testutil.NewFakePaths("/t")
	pl := build.NewPlanner(fs, p)
	in := build.Inputs{
		Record: newRecord(types.ComponentGtk3, types.ComponentGtk4Libadwaita),
		Scheme: types.SchemePreferDark,
	}

	plan, ok := pl.Plan(types.GroupAdwGtk3, in)
	require.True(t, ok)
	opts := "-Dprefix=/t/home/.local -Dgtk4=true -Dgtk3=true"
	assert.Equal(t, []string{
		"meson build " + opts,
		"meson configure build " + opts,
		"ninja -C build install",
	}, commandLines(plan))
	assert.True(t, plan.Meson)
	assert.Equal(t, "qualia GTK3 and Libadwaita GTK4 themes", plan.Subject)
	assert.Equal(t, "The qualia GTK3 and Libadwaita GTK4 themes are up to date.", plan.UpToDate())
	assert.Equal(t, "/t/home/.local/share/themes", plan.Destination)
	for _, s := range plan.Steps {
		assert.Equal(t, "/t/repo/src/dg-adw-gtk3", s.Dir)
		assert.False(t, s.Stream)
	}

	// An existing build directory is reconfigured instead of set up.
	require.NoError(t, fs.MkdirAll(p.BuildDir(types.GroupAdwGtk3), 0755))
	in.Record = newRecord(types.ComponentGtk3)
	plan, _ = pl.Plan(types.GroupAdwGtk3, in)
	opts = "-Dprefix=/t/home/.local -Dgtk4=false -Dgtk3=true"
	assert.Equal(t, "meson configure build "+opts, plan.Steps[0].String())
	assert.Equal(t, "The qualia GTK3 theme is up to date.", plan.UpToDate())

	in.Record = newRecord(types.ComponentGtk4Libadwaita)
	plan, _ = pl.Plan(types.GroupAdwGtk3, in)
	assert.Equal(t, "Libadwaita GTK4 theme", plan.Subject)
}

func TestPlanYaru(t *testing.T) {
	pl := build.NewPlanner(afero.NewMemMapFs(), testutil.NewFakePaths("/t"))

	in := build.Inputs{
		Record:   newRecord(types.ComponentGnomeShell, types.ComponentIcons, types.ComponentCursors),
		Scheme:   types.SchemePreferDark,
		Desktops: types.DesktopVersions{types.DesktopGnome: "43"},
		Verbose:  true,
	}
	plan, ok := pl.Plan(types.GroupYaru, in)
	require.True(t, ok)
	assert.Equal(t, []string{
		"meson build -Dgnome-shell=true -Dicons=true -Dcursors=true " +
			"-Dcinnamon-shell=false -Dmetacity=false -Dubuntu-unity=false -Dxfwm4=false " +
			"-Dsounds=false -Dgtksourceview=false -Dpanel-icons=false -Dgnome-shell-version=43",
		"ninja -C build install",
	}, commandLines(plan))
	assert.Equal(t, "qualia GNOME Shell, Icon, and Cursor themes", plan.Subject)
	assert.True(t, plan.Steps[0].Stream, "verbose runs stream meson")

	in.Record = newRecord(types.ComponentMetacity)
	in.Desktops = types.DesktopVersions{types.DesktopMate: "1"}
	plan, _ = pl.Plan(types.GroupYaru, in)
	assert.Contains(t, plan.Steps[0].Args, "-Dpanel-icons=true")
	assert.NotContains(t, plan.Steps[0].String(), "gnome-shell-version")
	assert.Equal(t, "The qualia Marco (Metacity) theme is up to date.", plan.UpToDate())
}

func TestPlanScripts(t *testing.T) {
	pl := build.NewPlanner(afero.NewMemMapFs(), testutil.NewFakePaths("/t"))

	tests := []struct {
		name    string
		group   types.Group
		enabled []types.Component
		scheme  types.ColorScheme
		want    string
	}{
		{"libadwaita dark", types.GroupLibadwaita, []types.Component{types.ComponentGtk4}, types.SchemePreferDark, "./install.sh -c blue -t dark"},
		{"libadwaita light", types.GroupLibadwaita, []types.Component{types.ComponentGtk4}, types.SchemeDefault, "./install.sh -c blue -t light"},
		{"firefox without settings", types.GroupFirefox, []types.Component{types.ComponentFirefox}, types.SchemeDefault, "./install.sh -c blue -n"},
		{"firefox with settings", types.GroupFirefox, []types.Component{types.ComponentFirefox, types.ComponentSettingsTheme}, types.SchemeDefault, "./install.sh -c blue"},
		{"vscode", types.GroupVSCode, []types.Component{types.ComponentVSCode}, types.SchemePreferDark, "./install.py -c blue -t dark"},
		{"vscode default syntax", types.GroupVSCode, []types.Component{types.ComponentVSCode, types.ComponentDefaultSyntax}, types.SchemeDefault, "./install.py -c blue -t light -d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, ok := pl.Plan(tt.group, build.Inputs{Record: newRecord(tt.enabled...), Scheme: tt.scheme})
			require.True(t, ok)
			require.Len(t, plan.Steps, 1)
			assert.Equal(t, tt.want, plan.Steps[0].String())
			assert.True(t, plan.Steps[0].Stream)
			assert.False(t, plan.Meson)
		})
	}
}

func TestPlanSkipsDisabledGroups(t *testing.T) {
	pl := build.NewPlanner(afero.NewMemMapFs(), testutil.NewFakePaths("/t"))
	in := build.Inputs{Record: newRecord(types.ComponentGtk3, types.ComponentSnap)}

	_, ok := pl.Plan(types.GroupYaru, in)
	assert.False(t, ok)
	_, ok = pl.Plan(types.GroupSnap, in)
	assert.False(t, ok, "snap is not built from the repository")
}

func TestJoinLabels(t *testing.T) {
	assert.Equal(t, "", build.JoinLabels(nil))
	assert.Equal(t, "A", build.JoinLabels([]string{"A"}))
	assert.Equal(t, "A and B", build.JoinLabels([]string{"A", "B"}))
	assert.Equal(t, "A, B, and C", build.JoinLabels([]string{"A", "B", "C"}))
}
