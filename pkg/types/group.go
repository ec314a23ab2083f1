package types

// Group is a source tree that builds one or more components together.
type Group string

const (
	GroupAdwGtk3    Group = "dg-adw-gtk3"
	GroupLibadwaita Group = "dg-libadwaita"
	GroupYaru       Group = "dg-yaru"
	GroupFirefox    Group = "dg-firefox-theme"
	GroupVSCode     Group = "dg-vscode-adwaita"
	GroupSnap       Group = "qualia-gtk-theme-snap"
)

// Trigger is a group specific reason to rebuild, on top of the version
// token, reconfigure and force checks every group shares.
type Trigger uint

const (
	// TriggerAccent fires when the accent color was asked again.
	TriggerAccent Trigger = 1 << iota
	// TriggerTheme fires when the light/dark variant was asked again.
	TriggerTheme
	// TriggerSyntax fires when the editor syntax option was asked again.
	TriggerSyntax
	// TriggerFirefoxSettings fires when the browser settings option was
	// asked again.
	TriggerFirefoxSettings
	// TriggerFirefoxProfiles fires when a browser profile family appeared
	// since the last run.
	TriggerFirefoxProfiles
	// TriggerVSCodeProfiles fires when an editor install appeared since
	// the last run.
	TriggerVSCodeProfiles
	// TriggerDesktopIdentity fires when the detected desktop identity
	// differs from the one recorded at the last build.
	TriggerDesktopIdentity
)

// Has reports whether all bits of o are set in t.
func (t Trigger) Has(o Trigger) bool {
	return t&o == o
}

// GroupInfo is the static metadata of a group.
type GroupInfo struct {
	ID Group

	// Label names the group in progress messages.
	Label string

	// Versioned groups are git submodules whose HEAD is recorded.
	Versioned bool

	// Meson groups are built with meson and ninja.
	Meson bool

	// Destination is where the built files land, for progress messages.
	Destination string

	Triggers Trigger
}

var groups = []GroupInfo{
	{ID: GroupAdwGtk3, Label: "qualia GTK3 and Libadwaita themes", Versioned: true, Meson: true, Destination: "~/.local/share/themes"},
	{ID: GroupLibadwaita, Label: "qualia GTK4 configuration", Versioned: true, Destination: "~/.config/gtk-4.0", Triggers: TriggerAccent | TriggerTheme},
	{ID: GroupYaru, Label: "qualia Yaru themes", Versioned: true, Meson: true, Destination: "/usr/share", Triggers: TriggerDesktopIdentity},
	{ID: GroupFirefox, Label: "qualia Firefox theme", Versioned: true, Destination: "Firefox profiles", Triggers: TriggerAccent | TriggerFirefoxSettings | TriggerFirefoxProfiles},
	{ID: GroupVSCode, Label: "qualia VS Code theme", Versioned: true, Destination: "VS Code settings", Triggers: TriggerAccent | TriggerTheme | TriggerSyntax | TriggerVSCodeProfiles},
	{ID: GroupSnap, Label: "qualia Snap theme", Destination: "snap"},
}

// RecordOrder returns the versioned groups in the order their version
// lines appear in the record.
func RecordOrder() []Group {
	return []Group{GroupAdwGtk3, GroupLibadwaita, GroupYaru, GroupFirefox, GroupVSCode}
}

// BuildOrder returns every group in the order they are built.
func BuildOrder() []Group {
	return []Group{GroupAdwGtk3, GroupYaru, GroupLibadwaita, GroupFirefox, GroupVSCode, GroupSnap}
}

// Info returns the metadata of g.
func (g Group) Info() GroupInfo {
	for _, info := range groups {
		if info.ID == g {
			return info
		}
	}
	return GroupInfo{ID: g, Label: string(g)}
}

// Valid reports whether g is a known group.
func (g Group) Valid() bool {
	for _, info := range groups {
		if info.ID == g {
			return true
		}
	}
	return false
}

// VersionKey is the record key holding the group's version token.
func (g Group) VersionKey() string {
	return string(g) + "_version"
}

// SourceDir is the group's directory relative to the repository root.
func (g Group) SourceDir() string {
	return "src/" + string(g)
}
