package paths

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/spf13/afero"
)

// Installed knows where each component's files land once installed.
// Locations are glob patterns.
type Installed struct {
	patterns map[types.Component][]string
	old      []string
	userDirs []string
}

// NewInstalled builds the location table. firefoxDirs and vscodeDirs are
// the profile directories detected on this host.
func NewInstalled(p Paths, firefoxDirs, vscodeDirs []string) *Installed {
	userThemes := p.UserThemesDir()
	sysThemes := p.SystemThemesDir()
	sysIcons := p.SystemIconsDir()

	in := &Installed{
		patterns: map[types.Component][]string{
			types.ComponentGtk3:           {filepath.Join(userThemes, "qualia*", "gtk-3.0")},
			types.ComponentGtk4Libadwaita: {filepath.Join(userThemes, "qualia*", "gtk-4.0")},
			types.ComponentGtk4:           {filepath.Join(p.Home(), ".config", "gtk-4.0", "qualia*")},
			types.ComponentGnomeShell:     {filepath.Join(sysThemes, "qualia*", "gnome-shell")},
			types.ComponentCinnamonShell:  {filepath.Join(sysThemes, "qualia*", "cinnamon")},
			types.ComponentMetacity:       {filepath.Join(sysThemes, "qualia*", "metacity-1")},
			types.ComponentUbuntuUnity:    {filepath.Join(sysThemes, "qualia*", "unity")},
			types.ComponentXfwm4:          {filepath.Join(sysThemes, "qualia*", "xfwm4")},
			types.ComponentIcons:          {filepath.Join(sysIcons, "qualia*")},
			types.ComponentCursors:        {filepath.Join(sysIcons, "qualia")},
			types.ComponentSounds:         {filepath.Join(p.SystemPrefix(), "share", "sounds", "qualia")},
			types.ComponentGtkSourceView:  {filepath.Join(p.SystemPrefix(), "share", "gtksourceview-*", "styles", "qualia*.xml")},
		},
		old: []string{
			filepath.Join(p.Home(), ".themes", "qualia*"),
			filepath.Join(p.Home(), ".local", "share", "icons", "qualia*"),
		},
		userDirs: []string{filepath.Join(userThemes, "qualia*")},
	}

	for _, dir := range firefoxDirs {
		in.patterns[types.ComponentFirefox] = append(in.patterns[types.ComponentFirefox],
			filepath.Join(dir, "*", "chrome", "qualia"))
	}
	for _, dir := range vscodeDirs {
		in.patterns[types.ComponentVSCode] = append(in.patterns[types.ComponentVSCode],
			filepath.Join(dir, "extensions", "qualia*"))
	}
	return in
}

// Patterns returns the location patterns of c.
func (in *Installed) Patterns(c types.Component) []string {
	return append([]string(nil), in.patterns[c]...)
}

// Find returns the existing files of c, sorted. The icon set shares its
// directory family with the cursor set, so matches that are cursor
// locations are not counted as icons.
func (in *Installed) Find(fs afero.Fs, c types.Component) ([]string, error) {
	found, err := glob(fs, in.patterns[c])
	if err != nil {
		return nil, err
	}
	if c != types.ComponentIcons {
		return found, nil
	}

	cursors, err := glob(fs, in.patterns[types.ComponentCursors])
	if err != nil {
		return nil, err
	}
	shared := make(map[string]bool, len(cursors))
	for _, path := range cursors {
		shared[path] = true
	}
	var icons []string
	for _, path := range found {
		if !shared[path] {
			icons = append(icons, path)
		}
	}
	return icons, nil
}

// Exists reports whether any file of c is installed.
func (in *Installed) Exists(fs afero.Fs, c types.Component) (bool, error) {
	found, err := in.Find(fs, c)
	return len(found) > 0, err
}

// OldExists reports whether files from the previous generation of the
// theme are still installed.
func (in *Installed) OldExists(fs afero.Fs) (bool, error) {
	found, err := glob(fs, in.old)
	return len(found) > 0, err
}

// UserThemeDirs returns the installed theme directories under ~/.local.
func (in *Installed) UserThemeDirs(fs afero.Fs) ([]string, error) {
	return glob(fs, in.userDirs)
}

func glob(fs afero.Fs, patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		matches, err := afero.Glob(fs, pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "bad location pattern %q", pattern)
		}
		out = append(out, matches...)
	}
	sort.Strings(out)
	return out, nil
}
