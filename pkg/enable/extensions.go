package enable

import (
	"context"
	"strings"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/runner"
)

// UserThemeUUID is the GNOME Shell extension that loads shell themes
const UserThemeUUID = "user-theme@gnome-shell-extensions.gcampax.github.com"

// Extensions gates the GNOME Shell theme
type Extensions interface {
	// EnableUserTheme makes sure the user themes extension is installed
	// and enabled. Any error means the shell theme can't be applied.
	EnableUserTheme(ctx context.Context) error
}

// GnomeExtensions drives the gnome-extensions client
type GnomeExtensions struct {
	runner runner.Runner
}

// NewGnomeExtensions creates the gate running gnome-extensions through r
func NewGnomeExtensions(r runner.Runner) *GnomeExtensions {
	return &GnomeExtensions{runner: r}
}

func (g *GnomeExtensions) EnableUserTheme(ctx context.Context) error {
	if !g.runner.LookPath("gnome-extensions") {
		return errors.New(errors.ErrStoreUnavailable, "'gnome-extensions' not found").
			WithDetail("store", "gnome-extensions")
	}

	list, err := g.runner.Output(ctx, runner.Command("gnome-extensions", "list"))
	if err != nil || !strings.Contains(list, UserThemeUUID) {
		return errors.New(errors.ErrNotFound, "'User Themes' GNOME Shell Extension not found").
			WithDetail("extension", UserThemeUUID)
	}

	if err := g.runner.Run(ctx, runner.Command("gnome-extensions", "enable", UserThemeUUID)); err != nil {
		return errors.Wrap(err, errors.ErrCommandFailed, "failed to enable the 'User Themes' GNOME Shell Extension")
	}
	return nil
}
