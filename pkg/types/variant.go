package types

import (
	"github.com/arthur-debert/qualia/pkg/errors"
)

// Variant is the user's light/dark choice. VariantAuto defers the decision
// to the desktop's color-scheme preference.
type Variant string

const (
	VariantLight Variant = "light"
	VariantDark  Variant = "dark"
	VariantAuto  Variant = "auto"
)

// DefaultVariant is preselected in the variant menu.
const DefaultVariant = VariantLight

var variantLabels = []struct {
	variant Variant
	label   string
}{
	{VariantLight, "Light"},
	{VariantDark, "Dark"},
	{VariantAuto, "Auto (only recommended for GNOME or Budgie)"},
}

// Variants returns the variants in menu order.
func Variants() []Variant {
	out := make([]Variant, 0, len(variantLabels))
	for _, v := range variantLabels {
		out = append(out, v.variant)
	}
	return out
}

// Label returns the menu label of the variant.
func (v Variant) Label() string {
	for _, l := range variantLabels {
		if l.variant == v {
			return l.label
		}
	}
	return string(v)
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	for _, l := range variantLabels {
		if l.variant == v {
			return true
		}
	}
	return false
}

// Scheme returns the color scheme a fixed variant maps to. Auto has no
// fixed scheme and returns false.
func (v Variant) Scheme() (ColorScheme, bool) {
	switch v {
	case VariantLight:
		return SchemeDefault, true
	case VariantDark:
		return SchemePreferDark, true
	}
	return "", false
}

// ParseVariant converts a record or flag value into a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown theme variant %q", s).
			WithDetail("value", s)
	}
	return v, nil
}

// ColorScheme is the resolved light/dark decision, spelled the way the
// org.gnome.desktop.interface color-scheme key spells it.
type ColorScheme string

const (
	SchemeDefault    ColorScheme = "default"
	SchemePreferDark ColorScheme = "prefer-dark"
)

// ParseColorScheme maps a live color-scheme value to a ColorScheme.
// Anything other than the two known values is rejected.
func ParseColorScheme(s string) (ColorScheme, bool) {
	switch ColorScheme(s) {
	case SchemeDefault, SchemePreferDark:
		return ColorScheme(s), true
	}
	return "", false
}

// Dark reports whether the scheme is the dark one.
func (c ColorScheme) Dark() bool {
	return c == SchemePreferDark
}

// Suffix is appended to theme names: "-dark" for the dark scheme.
func (c ColorScheme) Suffix() string {
	if c.Dark() {
		return "-dark"
	}
	return ""
}

// Token is the variant argument passed to the component installers.
func (c ColorScheme) Token() string {
	if c.Dark() {
		return "dark"
	}
	return "light"
}
