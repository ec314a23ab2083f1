package types

import (
	"fmt"
)

// Component identifies one installable theme facet.
type Component string

const (
	ComponentGtk3           Component = "gtk3"
	ComponentGtk4Libadwaita Component = "gtk4-libadwaita"
	ComponentGtk4           Component = "gtk4"
	ComponentGnomeShell     Component = "gnome-shell"
	ComponentCinnamonShell  Component = "cinnamon-shell"
	ComponentMetacity       Component = "metacity"
	ComponentUbuntuUnity    Component = "ubuntu-unity"
	ComponentXfwm4          Component = "xfwm4"
	ComponentIcons          Component = "icons"
	ComponentCursors        Component = "cursors"
	ComponentSounds         Component = "sounds"
	ComponentGtkSourceView  Component = "gtksourceview"
	ComponentFirefox        Component = "firefox"
	ComponentSettingsTheme  Component = "settings_theme"
	ComponentVSCode         Component = "vscode"
	ComponentDefaultSyntax  Component = "default_syntax"
	ComponentSnap           Component = "snap"
)

// HostDependency names something outside the desktop that must exist on
// the host before a component can be offered.
type HostDependency int

const (
	HostNone HostDependency = iota
	HostFirefox
	HostVSCode
	HostSnap
)

func (h HostDependency) String() string {
	switch h {
	case HostNone:
		return "none"
	case HostFirefox:
		return "firefox profiles"
	case HostVSCode:
		return "vscode profiles"
	case HostSnap:
		return "snap"
	}
	return fmt.Sprintf("HostDependency(%d)", int(h))
}

// ComponentInfo is the static metadata of a component.
type ComponentInfo struct {
	ID    Component
	Label string
	Group Group

	// Desktop is the environment the component themes. Empty means the
	// component does not depend on a detected desktop.
	Desktop Desktop

	// Host is the host dependency the component requires, if any.
	Host HostDependency

	// Parent is set for options that only make sense while another
	// component is enabled (firefox settings page, vscode syntax).
	Parent Component

	// DefaultYes is the preselected answer when asking about the component.
	DefaultYes bool
}

// IsOption reports whether the component is an option of another one.
func (c ComponentInfo) IsOption() bool {
	return c.Parent != ""
}

// components lists every component in menu order.
var components = []ComponentInfo{
	{ID: ComponentGtk3, Label: "GTK3", Group: GroupAdwGtk3, DefaultYes: true},
	{ID: ComponentGtk4Libadwaita, Label: "Libadwaita", Group: GroupAdwGtk3, DefaultYes: true},
	{ID: ComponentGtk4, Label: "GTK4", Group: GroupLibadwaita, DefaultYes: true},
	{ID: ComponentGnomeShell, Label: "GNOME Shell", Group: GroupYaru, Desktop: DesktopGnome, DefaultYes: true},
	{ID: ComponentCinnamonShell, Label: "Cinnamon Shell", Group: GroupYaru, Desktop: DesktopCinnamon, DefaultYes: true},
	{ID: ComponentMetacity, Label: "Marco (Metacity)", Group: GroupYaru, Desktop: DesktopMate, DefaultYes: true},
	{ID: ComponentUbuntuUnity, Label: "Unity", Group: GroupYaru, Desktop: DesktopUnity, DefaultYes: true},
	{ID: ComponentXfwm4, Label: "Xfwm4", Group: GroupYaru, Desktop: DesktopXfce, DefaultYes: true},
	{ID: ComponentIcons, Label: "Icon", Group: GroupYaru, DefaultYes: true},
	{ID: ComponentCursors, Label: "Cursor", Group: GroupYaru, DefaultYes: true},
	{ID: ComponentSounds, Label: "Sound", Group: GroupYaru, DefaultYes: true},
	{ID: ComponentGtkSourceView, Label: "GtkSourceView", Group: GroupYaru, DefaultYes: true},
	{ID: ComponentFirefox, Label: "Firefox", Group: GroupFirefox, Host: HostFirefox, DefaultYes: true},
	{ID: ComponentSettingsTheme, Label: "Firefox settings pages", Group: GroupFirefox, Parent: ComponentFirefox, DefaultYes: true},
	{ID: ComponentVSCode, Label: "VS Code", Group: GroupVSCode, Host: HostVSCode, DefaultYes: true},
	{ID: ComponentDefaultSyntax, Label: "VS Code default syntax highlighting", Group: GroupVSCode, Parent: ComponentVSCode},
	{ID: ComponentSnap, Label: "Snap", Group: GroupSnap, Host: HostSnap, DefaultYes: true},
}

// AllComponents returns the metadata of every component in menu order.
func AllComponents() []ComponentInfo {
	return append([]ComponentInfo(nil), components...)
}

// Lookup returns the metadata of c.
func Lookup(c Component) (ComponentInfo, bool) {
	for _, info := range components {
		if info.ID == c {
			return info, true
		}
	}
	return ComponentInfo{}, false
}

// Valid reports whether c is a known component.
func (c Component) Valid() bool {
	_, ok := Lookup(c)
	return ok
}

// Info returns the metadata of c, or a zero value labelled with the raw id
// for unknown components.
func (c Component) Info() ComponentInfo {
	if info, ok := Lookup(c); ok {
		return info
	}
	return ComponentInfo{ID: c, Label: string(c)}
}

// Label returns the human readable name of c.
func (c Component) Label() string {
	return c.Info().Label
}

// ComponentsOf returns the components of g in menu order.
func ComponentsOf(g Group) []Component {
	var out []Component
	for _, info := range components {
		if info.Group == g {
			out = append(out, info.ID)
		}
	}
	return out
}
