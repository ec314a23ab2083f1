package resolver

import (
	"github.com/arthur-debert/qualia/pkg/types"
)

// Fixed display names
const (
	BaseName   = "qualia"
	CursorName = BaseName
	SoundName  = BaseName
)

// ThemeName is the GTK and shell theme name for accent and scheme
func ThemeName(accent types.Accent, scheme types.ColorScheme) string {
	if accent == types.AccentOrange {
		return BaseName + scheme.Suffix()
	}
	return BaseName + "-" + string(accent) + scheme.Suffix()
}

// IconName is the icon theme name. Icons always use the dark set.
func IconName(accent types.Accent) string {
	if accent == types.AccentOrange {
		return BaseName + "-dark"
	}
	return BaseName + "-" + string(accent) + "-dark"
}

// WindowManagerName is the metacity and xfwm4 theme name. It carries no
// accent.
func WindowManagerName(scheme types.ColorScheme) string {
	return BaseName + scheme.Suffix()
}

// Names maps a component to the display name it is applied under.
// Components without an entry have no desktop setting.
type Names map[types.Component]string

// DisplayNames computes the names for accent and scheme
func DisplayNames(accent types.Accent, scheme types.ColorScheme) Names {
	theme := ThemeName(accent, scheme)
	wm := WindowManagerName(scheme)
	return Names{
		types.ComponentGtk3:          theme,
		types.ComponentIcons:         IconName(accent),
		types.ComponentCursors:       CursorName,
		types.ComponentSounds:        SoundName,
		types.ComponentGnomeShell:    theme,
		types.ComponentCinnamonShell: theme,
		types.ComponentMetacity:      wm,
		types.ComponentXfwm4:         wm,
	}
}

// Lookup returns the name of c. The desktop is ignored: installed names
// are the same everywhere.
func (n Names) Lookup(c types.Component, _ types.Desktop) (string, bool) {
	name, ok := n[c]
	return name, ok && name != ""
}
