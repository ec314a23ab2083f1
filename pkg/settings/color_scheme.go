package settings

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Keys written outside the per-component tables
var (
	ColorSchemeKey = Key{Namespace: "org.gnome.desktop.interface", Name: "color-scheme"}
	BudgieDarkKey  = Key{Namespace: "com.solus-project.budgie-panel", Name: "dark-theme"}
)

// DetectColorScheme reads the desktop's light/dark preference. Anything
// but a known scheme, including an unavailable store, is ErrAutoDetect.
func DetectColorScheme(ctx context.Context, store Reader) (types.ColorScheme, error) {
	value, err := store.Get(ctx, ColorSchemeKey)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrAutoDetect, "can't detect system light/dark theme preference")
	}
	scheme, ok := types.ParseColorScheme(value)
	if !ok {
		return "", errors.Newf(errors.ErrAutoDetect, "can't detect system light/dark theme preference").
			WithDetail("value", value)
	}
	return scheme, nil
}

// ApplyColorScheme writes the resolved scheme, and the Budgie panel
// preference when Budgie is present.
func ApplyColorScheme(ctx context.Context, store Store, scheme types.ColorScheme, budgie bool) error {
	if err := store.Set(ctx, ColorSchemeKey, string(scheme)); err != nil {
		return err
	}
	if !budgie {
		return nil
	}
	dark := "false"
	if scheme.Dark() {
		dark = "true"
	}
	return store.Set(ctx, BudgieDarkKey, dark)
}
