package record

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/arthur-debert/qualia/pkg/types"
)

// Header is the first line of every written record
const Header = "This file is generated and used by the install script."

// Marshal renders r in the fixed section order. The same Record always
// renders to the same bytes.
func Marshal(r *Record) []byte {
	var b bytes.Buffer

	// Identity
	b.WriteString(Header + "\n")
	fmt.Fprintf(&b, "%s: %s\n", keyColor, r.Accent)
	fmt.Fprintf(&b, "%s: %s\n", keyTheme, r.Variant)
	fmt.Fprintf(&b, "%s: %s\n", keyEnabled, joinComponents(r.Enabled))
	b.WriteString("\n")

	// Presence. The bare gnome line keeps older readers working.
	gnome := r.Desktops.Version(types.DesktopGnome)
	if gnome == "" {
		gnome = "None"
	}
	fmt.Fprintf(&b, "%s: %s\n", keyGnome, gnome)
	fmt.Fprintf(&b, "%s: %s\n", keyDesktops, r.Desktops.String())
	fmt.Fprintf(&b, "%s: %s\n", keyFirefox, strings.Join(r.Firefox, " "))
	fmt.Fprintf(&b, "%s: %s\n", keyVSCode, strings.Join(r.VSCode, " "))
	b.WriteString("\n")

	// Version tokens
	for _, g := range types.RecordOrder() {
		fmt.Fprintf(&b, "%s: %s\n", g.VersionKey(), r.Versions[g])
	}
	b.WriteString("\n")

	// Snapshots, in component then desktop order
	for _, info := range types.AllComponents() {
		byDesktop := r.Snapshots[info.ID]
		for _, d := range types.AllDesktops() {
			v, ok := byDesktop[d]
			if ok && Persistable(v) {
				fmt.Fprintf(&b, "%s%s_%s: %s\n", snapshotPrefix, info.ID, d, v)
			}
		}
	}

	return b.Bytes()
}

func joinComponents(cs []types.Component) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
