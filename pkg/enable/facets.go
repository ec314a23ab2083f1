package enable

import (
	"github.com/arthur-debert/qualia/pkg/settings"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Facet maps a component onto the settings stores
type Facet struct {
	Component types.Component

	// Key is the schema key and Schemas the schema per desktop.
	Key     string
	Schemas map[types.Desktop]string

	// Property is the xfconf channel and property. Zero when the component
	// has no XFCE setting.
	Property settings.Key
}

// HasProperty reports whether the facet has an XFCE setting
func (f Facet) HasProperty() bool {
	return f.Property.Name != ""
}

// SchemaKey returns the schema store key of the facet on d
func (f Facet) SchemaKey(d types.Desktop) (settings.Key, bool) {
	schema, ok := f.Schemas[d]
	if !ok || f.Key == "" {
		return settings.Key{}, false
	}
	return settings.Key{Namespace: schema, Name: f.Key}, true
}

const xsettings = "xsettings"

func interfaceSchemas() map[types.Desktop]string {
	return map[types.Desktop]string{
		types.DesktopGnome:    "org.gnome.desktop.interface",
		types.DesktopCinnamon: "org.cinnamon.desktop.interface",
		types.DesktopUnity:    "org.gnome.desktop.interface",
		types.DesktopMate:     "org.mate.interface",
		types.DesktopBudgie:   "org.gnome.desktop.interface",
	}
}

func cursorSchemas() map[types.Desktop]string {
	schemas := interfaceSchemas()
	schemas[types.DesktopMate] = "org.mate.peripherals-mouse"
	return schemas
}

func soundSchemas() map[types.Desktop]string {
	return map[types.Desktop]string{
		types.DesktopGnome:    "org.gnome.desktop.sound",
		types.DesktopCinnamon: "org.cinnamon.desktop.sound",
		types.DesktopUnity:    "org.gnome.desktop.sound",
		types.DesktopMate:     "org.mate.sound",
		types.DesktopBudgie:   "org.gnome.desktop.sound",
	}
}

// Facets returns the facet table in the order facets are applied
func Facets() []Facet {
	return []Facet{
		{
			Component: types.ComponentGtk3,
			Key:       "gtk-theme",
			Schemas:   interfaceSchemas(),
			Property:  settings.Key{Namespace: xsettings, Name: "/Net/ThemeName"},
		},
		{
			Component: types.ComponentIcons,
			Key:       "icon-theme",
			Schemas:   interfaceSchemas(),
			Property:  settings.Key{Namespace: xsettings, Name: "/Net/IconThemeName"},
		},
		{
			Component: types.ComponentCursors,
			Key:       "cursor-theme",
			Schemas:   cursorSchemas(),
			Property:  settings.Key{Namespace: xsettings, Name: "/Gtk/CursorThemeName"},
		},
		{
			Component: types.ComponentSounds,
			Key:       "theme-name",
			Schemas:   soundSchemas(),
			Property:  settings.Key{Namespace: xsettings, Name: "/Net/SoundThemeName"},
		},
		{
			Component: types.ComponentGnomeShell,
			Key:       "name",
			Schemas:   map[types.Desktop]string{types.DesktopGnome: "org.gnome.shell.extensions.user-theme"},
		},
		{
			Component: types.ComponentCinnamonShell,
			Key:       "name",
			Schemas:   map[types.Desktop]string{types.DesktopCinnamon: "org.cinnamon.theme"},
		},
		{
			Component: types.ComponentMetacity,
			Key:       "theme",
			Schemas:   map[types.Desktop]string{types.DesktopMate: "org.mate.Marco.general"},
		},
		{
			Component: types.ComponentXfwm4,
			Property:  settings.Key{Namespace: "xfwm4", Name: "/general/theme"},
		},
	}
}

// FacetOf returns the facet of c
func FacetOf(c types.Component) (Facet, bool) {
	for _, f := range Facets() {
		if f.Component == c {
			return f, true
		}
	}
	return Facet{}, false
}
