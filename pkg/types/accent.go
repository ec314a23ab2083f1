package types

import (
	"github.com/arthur-debert/qualia/pkg/errors"
)

// Accent is one color of the fixed accent palette.
type Accent string

const (
	AccentOrange        Accent = "orange"
	AccentBark          Accent = "bark"
	AccentSage          Accent = "sage"
	AccentOlive         Accent = "olive"
	AccentViridian      Accent = "viridian"
	AccentPrussianGreen Accent = "prussiangreen"
	AccentLightBlue     Accent = "lightblue"
	AccentBlue          Accent = "blue"
	AccentPurple        Accent = "purple"
	AccentMagenta       Accent = "magenta"
	AccentPink          Accent = "pink"
	AccentRed           Accent = "red"
)

// DefaultAccent is preselected in the accent menu.
const DefaultAccent = AccentOrange

var accentLabels = []struct {
	accent Accent
	label  string
}{
	{AccentOrange, "Orange"},
	{AccentBark, "Bark"},
	{AccentSage, "Sage"},
	{AccentOlive, "Olive"},
	{AccentViridian, "Viridian"},
	{AccentPrussianGreen, "Prussian Green"},
	{AccentLightBlue, "Light Blue"},
	{AccentBlue, "Blue"},
	{AccentPurple, "Purple"},
	{AccentMagenta, "Magenta"},
	{AccentPink, "Pink"},
	{AccentRed, "Red"},
}

// Accents returns the palette in menu order.
func Accents() []Accent {
	out := make([]Accent, 0, len(accentLabels))
	for _, a := range accentLabels {
		out = append(out, a.accent)
	}
	return out
}

// Label returns the human readable name of the accent.
func (a Accent) Label() string {
	for _, l := range accentLabels {
		if l.accent == a {
			return l.label
		}
	}
	return string(a)
}

// Valid reports whether a is part of the palette.
func (a Accent) Valid() bool {
	for _, l := range accentLabels {
		if l.accent == a {
			return true
		}
	}
	return false
}

// ParseAccent converts a record or flag value into an Accent.
func ParseAccent(s string) (Accent, error) {
	a := Accent(s)
	if !a.Valid() {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown accent color %q", s).
			WithDetail("value", s)
	}
	return a, nil
}
