// Package display turns installer results into lines for the text and
// terminal renderers
package display

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/qualia/pkg/installer"
	"github.com/arthur-debert/qualia/pkg/style"
)

// ShortToken is how many characters of a version token are shown
const ShortToken = 12

// Field is one label/value line of the summary
type Field struct {
	Label string
	Value string
}

// State classifies a facet row
func State(f installer.FacetStatus) style.FacetState {
	switch {
	case f.Error != "":
		return style.FacetUnreadable
	case f.Desired == "":
		return style.FacetOff
	case f.Applied():
		return style.FacetApplied
	}
	return style.FacetPending
}

// Summary returns the record and detection fields of st, in display order
func Summary(st *installer.Status) []Field {
	record := st.RecordPath
	if !st.Found {
		record += " (not found)"
	}
	fields := []Field{
		{"record", record},
		{"accent", orNone(st.Accent)},
		{"variant", orNone(st.Variant)},
		{"enabled", orNone(strings.Join(st.Enabled, ", "))},
		{"desktops", orNone(Desktops(st.Desktops))},
		{"eligible", orNone(strings.Join(st.Eligible, ", "))},
	}
	if h := st.Host; h != nil {
		fields = append(fields, Field{"host", fmt.Sprintf("%s (%s %s, kernel %s)", h.Hostname, h.Platform, h.Version, h.Kernel)})
	}
	return fields
}

// Desktops renders detected desktops as "gnome 43, xfce"
func Desktops(dv map[string]string) string {
	names := make([]string, 0, len(dv))
	for d := range dv {
		names = append(names, d)
	}
	sort.Strings(names)
	for i, d := range names {
		if v := dv[d]; v != "" {
			names[i] = d + " " + v
		}
	}
	return strings.Join(names, ", ")
}

// Versions returns the recorded tokens sorted by group, shortened
func Versions(st *installer.Status) []Field {
	var out []Field
	for g, token := range st.Versions {
		out = append(out, Field{g, Short(token)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Short shortens a version token
func Short(token string) string {
	if len(token) > ShortToken {
		return token[:ShortToken]
	}
	return token
}

// Setting describes the value side of a facet row
func Setting(f installer.FacetStatus) string {
	var b strings.Builder
	b.WriteString(f.Key)
	if f.Error != "" {
		b.WriteString(": " + f.Error)
		return b.String()
	}
	b.WriteString(" = " + orNone(f.Live))
	if f.Desired != "" && !f.Applied() {
		b.WriteString(" (wants " + f.Desired + ")")
	}
	if f.Snapshot != "" {
		b.WriteString(" (was " + f.Snapshot + ")")
	}
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// TextRenderer renders status as plain aligned text
type TextRenderer struct {
	writer io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{writer: w}
}

// Render writes st
func (r *TextRenderer) Render(st *installer.Status) error {
	var b strings.Builder
	b.WriteString("qualia status\n")
	for _, f := range Summary(st) {
		fmt.Fprintf(&b, "    %-12s : %s\n", f.Label, f.Value)
	}

	if versions := Versions(st); len(versions) > 0 {
		b.WriteString("\n    versions:\n")
		for _, f := range versions {
			fmt.Fprintf(&b, "        %-20s : %s\n", f.Label, f.Value)
		}
	}

	if len(st.Facets) > 0 {
		b.WriteString("\n    settings:\n")
		for _, f := range st.Facets {
			fmt.Fprintf(&b, "        %-20s : %-10s : %s\n", f.Component+"/"+f.Desktop, State(f), Setting(f))
		}
	}

	_, err := io.WriteString(r.writer, b.String())
	return err
}
