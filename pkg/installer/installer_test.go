// pkg/installer/installer_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: memfs, FakePaths, FakeRunner, MemoryStore, ScriptedPrompter
// PURPOSE: Test install runs end to end against fake collaborators

package installer_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/qualia/pkg/build"
	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/installer"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/settings"
	"github.com/arthur-debert/qualia/pkg/testutil"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const token = "0123456789abcdef0123456789abcdef01234567"

const (
	iface      = "org.gnome.desktop.interface"
	userTheme  = "org.gnome.shell.extensions.user-theme"
	marcoTheme = "org.mate.Marco.general"
)

type env struct {
	fs       afero.Fs
	paths    *testutil.FakePaths
	runner   *testutil.FakeRunner
	schema   *testutil.MemoryStore
	property *testutil.MemoryStore
	ext      *testutil.FakeExtensions
	prompter *testutil.ScriptedPrompter
	console  *testutil.Reporter
	deps     installer.Deps
}

func newEnv(desktops types.DesktopVersions, answers ...string) *env {
	e := &env{
		fs:       afero.NewMemMapFs(),
		paths:    testutil.NewFakePaths("/t"),
		runner:   testutil.NewFakeRunner().AddBinary("sassc", "git", "meson", "ninja"),
		schema:   testutil.NewMemoryStore("gsettings"),
		property: testutil.NewMemoryStore("xfconf-query"),
		ext:      testutil.NewFakeExtensions(),
		prompter: testutil.NewScriptedPrompter(answers...),
		console:  &testutil.Reporter{},
	}
	e.runner.SetOutput("git rev-parse HEAD", token)
	e.deps = installer.Deps{
		FS:         e.fs,
		Runner:     e.runner,
		Paths:      e.paths,
		Stores:     settings.Stores{Schema: e.schema, Property: e.property},
		Extensions: e.ext,
		Prompter:   e.prompter,
		Console:    e.console,
		Desktops:   desktops,
		EUID:       uid(1000),
	}
	return e
}

func uid(n int) *int { return &n }

func (e *env) installer() *installer.Installer {
	return installer.New(e.deps)
}

func (e *env) store() *record.Store {
	return record.NewStore(e.fs, e.paths.RecordPath(), e.paths.LegacyRecordPath())
}

func (e *env) load(t *testing.T) *record.Record {
	t.Helper()
	rec, found, err := e.store().Load()
	require.NoError(t, err)
	require.True(t, found, "record should exist")
	return rec
}

func (e *env) mkdir(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, e.fs.MkdirAll(dir, 0o755))
}

func (e *env) ranAny(prefix string) bool {
	for _, line := range e.runner.CommandLines() {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// configured returns a record as a previous gnome run would leave it
func configured() *record.Record {
	rec := record.New()
	rec.Accent = types.AccentBlue
	rec.Variant = types.VariantDark
	for _, c := range []types.Component{
		types.ComponentGtk3, types.ComponentGtk4Libadwaita, types.ComponentGtk4,
		types.ComponentGnomeShell, types.ComponentIcons, types.ComponentCursors,
		types.ComponentSounds, types.ComponentGtkSourceView,
	} {
		rec.Enable(c)
	}
	rec.Desktops = gnome43()
	for _, g := range []types.Group{types.GroupAdwGtk3, types.GroupLibadwaita, types.GroupYaru} {
		_ = rec.SetVersion(g, token)
	}
	rec.Snapshots.Set(types.ComponentGtk3, types.DesktopGnome, "Adwaita")
	return rec
}

func gnome43() types.DesktopVersions {
	return types.DesktopVersions{types.DesktopGnome: "43"}
}

// gnomeAnswers picks blue/dark and takes the default for every component
// question a gnome host is asked
func gnomeAnswers() []string {
	return []string{"blue", "dark", "", "", "", "", "", "", "", "", ""}
}

func TestInstallFresh(t *testing.T) {
	e := newEnv(gnome43(), gnomeAnswers()...)
	e.schema.Seed(iface, "gtk-theme", "Adwaita")

	report, err := e.installer().Install(context.Background(), types.RunConfig{})
	require.NoError(t, err)

	rec := e.load(t)
	assert.Equal(t, types.AccentBlue, rec.Accent)
	assert.Equal(t, types.VariantDark, rec.Variant)
	assert.True(t, rec.IsEnabled(types.ComponentGnomeShell))
	assert.False(t, rec.IsEnabled(types.ComponentFirefox))
	assert.Equal(t, "43", rec.Desktops.Version(types.DesktopGnome))
	for _, g := range []types.Group{types.GroupAdwGtk3, types.GroupLibadwaita, types.GroupYaru} {
		assert.Equal(t, token, rec.Version(g), "token of %s", g)
	}
	assert.Empty(t, rec.Version(types.GroupFirefox))

	snapshot, _ := rec.Snapshots.Get(types.ComponentGtk3, types.DesktopGnome)
	assert.Equal(t, "Adwaita", snapshot)

	assert.Equal(t, []types.Group{types.GroupAdwGtk3, types.GroupYaru, types.GroupLibadwaita}, report.Built)
	assert.True(t, report.Updated)
	assert.True(t, report.Outcome.Configured)

	assert.Equal(t, "qualia-blue-dark", e.schema.Value(iface, "gtk-theme"))
	assert.Equal(t, "qualia-blue-dark", e.schema.Value(userTheme, "name"))
	assert.Equal(t, "prefer-dark", e.schema.Value(iface, "color-scheme"))
	assert.Equal(t, 1, e.ext.Calls())

	assert.True(t, e.runner.Ran("git submodule update --init src/dg-yaru"))
	assert.True(t, e.runner.Ran("ninja -C build install"))
	assert.True(t, e.runner.Ran("./install.sh -c blue -t dark"))
	assert.NotContains(t, e.console.Notices(), installer.NoticePrevious)
	assert.Contains(t, e.console.Notices(), installer.NoticeLogout)
}

func TestInstallUpToDate(t *testing.T) {
	e := newEnv(gnome43())
	require.NoError(t, e.store().Save(configured()))
	e.schema.
		Seed(iface, "gtk-theme", "qualia-blue-dark").
		Seed(iface, "icon-theme", "qualia-blue-dark").
		Seed(iface, "cursor-theme", "qualia").
		Seed("org.gnome.desktop.sound", "theme-name", "qualia").
		Seed(userTheme, "name", "qualia-blue-dark")

	report, err := e.installer().Install(context.Background(), types.RunConfig{})
	require.NoError(t, err)

	assert.Empty(t, report.Built)
	assert.False(t, report.Updated)
	assert.Zero(t, report.Enable.Writes)
	assert.False(t, e.ranAny("ninja"))
	assert.False(t, e.ranAny("meson"))
	assert.Empty(t, e.prompter.Asked())

	assert.Equal(t, []string{installer.NoticePrevious, installer.NoticeReconfigure}, e.console.Notices())
	assert.Contains(t, e.console.Infos(), "The qualia GTK3 and Libadwaita GTK4 themes are up to date.")
	assert.Contains(t, e.console.Infos(), "The qualia GTK4 configuration is up to date.")
	assert.Equal(t, token, e.load(t).Version(types.GroupYaru))
}

func TestInstallForceRebuilds(t *testing.T) {
	e := newEnv(gnome43())
	require.NoError(t, e.store().Save(configured()))

	report, err := e.installer().Install(context.Background(), types.RunConfig{Force: true})
	require.NoError(t, err)
	assert.Len(t, report.Built, 3)
	assert.True(t, e.runner.Ran("ninja -C build install"))
}

func TestInstallNoUpdateSkipsSubmodules(t *testing.T) {
	e := newEnv(gnome43())
	require.NoError(t, e.store().Save(configured()))

	_, err := e.installer().Install(context.Background(), types.RunConfig{NoUpdate: true})
	require.NoError(t, err)
	assert.False(t, e.ranAny("git submodule"))
}

func TestInstallAutoVariantUndetectable(t *testing.T) {
	// auto can't be resolved: the menu is shown again until the script
	// runs out
	e := newEnv(gnome43(), "blue", "auto", "auto")
	e.schema.SetUnavailable(true)

	_, err := e.installer().Install(context.Background(), types.RunConfig{})
	require.Error(t, err)

	assert.Len(t, e.prompter.Warnings(), 2)
	exists, _ := afero.Exists(e.fs, e.paths.RecordPath())
	assert.False(t, exists, "no record is written when configuration fails")
}

func TestInstallPreconditions(t *testing.T) {
	t.Run("refuses root", func(t *testing.T) {
		e := newEnv(gnome43())
		e.deps.EUID = uid(0)
		_, err := e.installer().Install(context.Background(), types.RunConfig{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRunAsRoot))
		assert.Empty(t, e.runner.Calls())
	})

	t.Run("unset user id follows the process", func(t *testing.T) {
		e := newEnv(gnome43())
		e.deps.EUID = nil
		_, err := e.installer().Install(context.Background(), types.RunConfig{})
		assert.Equal(t, os.Geteuid() == 0, errors.IsErrorCode(err, errors.ErrRunAsRoot))
	})

	t.Run("missing sassc", func(t *testing.T) {
		e := newEnv(gnome43())
		e.runner.RemoveBinary("sassc")
		_, err := e.installer().Install(context.Background(), types.RunConfig{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMissingDependency))
		assert.Equal(t, "'sassc' not found, exiting.", errors.GetErrorMessage(err))
	})

	t.Run("option of a disabled component", func(t *testing.T) {
		e := newEnv(gnome43())
		require.NoError(t, e.store().Save(configured()))
		_, err := e.installer().Install(context.Background(), types.RunConfig{AskSyntax: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIneligible))
		assert.Empty(t, e.prompter.Asked())
	})
}

func TestInstallMirrorsThemesForMate(t *testing.T) {
	e := newEnv(types.DesktopVersions{types.DesktopMate: "1.26"}, gnomeAnswers()...)
	userDir := filepath.Join(e.paths.UserThemesDir(), "qualia-blue-dark")
	e.mkdir(t, filepath.Join(userDir, "gtk-3.0"))
	e.mkdir(t, filepath.Join(userDir, "gtk-4.0"))
	// already linked
	e.mkdir(t, filepath.Join(e.paths.SystemThemesDir(), "qualia-blue-dark", "gtk-4.0"))

	_, err := e.installer().Install(context.Background(), types.RunConfig{})
	require.NoError(t, err)

	target := filepath.Join(userDir, "gtk-3.0")
	dest := filepath.Join(e.paths.SystemThemesDir(), "qualia-blue-dark", "gtk-3.0")
	assert.True(t, e.runner.Ran("sudo ln -rsf "+target+" "+dest))
	assert.False(t, e.ranAny("sudo ln -rsf "+filepath.Join(userDir, "gtk-4.0")))
	assert.False(t, e.ranAny("sudo mkdir"), "parent exists")
	assert.Equal(t, "qualia-dark", e.schema.Value(marcoTheme, "theme"))
}

func TestInstallRemovesOldTheme(t *testing.T) {
	e := newEnv(gnome43())
	require.NoError(t, e.store().Save(configured()))
	e.mkdir(t, filepath.Join(e.paths.Home(), ".themes", "qualia-old"))

	_, err := e.installer().Install(context.Background(), types.RunConfig{})
	require.NoError(t, err)
	assert.True(t, e.runner.Ran("sudo ./uninstall.py --old"))
	assert.Contains(t, e.console.Infos(), "Removing old theme.")
}

func TestInstallReportsLeftovers(t *testing.T) {
	e := newEnv(gnome43())
	rec := configured()
	rec.Disable(types.ComponentGnomeShell)
	require.NoError(t, e.store().Save(rec))
	e.mkdir(t, filepath.Join(e.paths.SystemThemesDir(), "qualia-blue-dark", "gnome-shell"))

	_, err := e.installer().Install(context.Background(), types.RunConfig{})
	require.NoError(t, err)
	assert.Contains(t, e.console.Infos(),
		"The GNOME Shell theme was installed previously, use './uninstall.py gnome-shell' to remove it.")
}

func TestInstallSnapWithoutNetwork(t *testing.T) {
	e := newEnv(gnome43(), append(gnomeAnswers(), "")...)
	e.runner.AddBinary("snap")
	e.deps.Probe = func(context.Context) error {
		return errors.New(errors.ErrNetwork, "offline")
	}

	_, err := e.installer().Install(context.Background(), types.RunConfig{})
	require.NoError(t, err)
	assert.True(t, e.load(t).IsEnabled(types.ComponentSnap))
	assert.Contains(t, e.console.Warnings(), installer.NoticeNoNetwork)
	assert.False(t, e.ranAny("sudo snap"))
}

func TestInstallBuildFailure(t *testing.T) {
	e := newEnv(gnome43())
	require.NoError(t, e.store().Save(configured()))
	e.runner.SetFailure("ninja -C build install", "boom")

	_, err := e.installer().Install(context.Background(), types.RunConfig{Force: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBuildFailed))
	assert.Equal(t, []string{build.HintVerbose, build.HintClean}, build.Hints(err))
}

func TestRestore(t *testing.T) {
	e := newEnv(gnome43())
	require.NoError(t, e.store().Save(configured()))
	e.schema.Seed(iface, "gtk-theme", "qualia-blue-dark")

	res, err := e.installer().Restore(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Writes)
	assert.Equal(t, "Adwaita", e.schema.Value(iface, "gtk-theme"))

	t.Run("unknown desktop", func(t *testing.T) {
		_, err := e.installer().Restore(context.Background(), "plasma")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("no record", func(t *testing.T) {
		fresh := newEnv(gnome43())
		_, err := fresh.installer().Restore(context.Background(), "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}

func TestClean(t *testing.T) {
	e := newEnv(gnome43())
	e.mkdir(t, e.paths.BuildDir(types.GroupYaru))

	removed, err := e.installer().Clean(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{e.paths.BuildDir(types.GroupYaru)}, removed)
	assert.True(t, e.runner.Ran("sudo rm -rf "+e.paths.BuildDir(types.GroupYaru)))
}

func TestStatus(t *testing.T) {
	e := newEnv(gnome43())

	st, err := e.installer().Status(context.Background())
	require.NoError(t, err)
	assert.False(t, st.Found)
	assert.Equal(t, e.paths.RecordPath(), st.RecordPath)

	require.NoError(t, e.store().Save(configured()))
	e.schema.Seed(iface, "gtk-theme", "qualia-blue-dark")

	st, err = e.installer().Status(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Found)
	assert.Equal(t, "blue", st.Accent)
	assert.Equal(t, "43", st.Desktops["gnome"])
	assert.Equal(t, token, st.Versions[string(types.GroupYaru)])
	assert.Contains(t, st.Eligible, "gnome-shell")

	var gtk3 *installer.FacetStatus
	for i := range st.Facets {
		if st.Facets[i].Component == "gtk3" {
			gtk3 = &st.Facets[i]
		}
	}
	require.NotNil(t, gtk3)
	assert.Equal(t, "qualia-blue-dark", gtk3.Live)
	assert.Equal(t, "Adwaita", gtk3.Snapshot)
	assert.True(t, gtk3.Applied())
}
