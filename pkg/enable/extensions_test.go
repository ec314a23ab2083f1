// pkg/enable/extensions_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: FakeRunner
// PURPOSE: Test the user themes extension gate

package enable_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/qualia/pkg/enable"
	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGnomeExtensions(t *testing.T) {
	ctx := context.Background()
	enableLine := "gnome-extensions enable " + enable.UserThemeUUID

	t.Run("client missing", func(t *testing.T) {
		r := testutil.NewFakeRunner()
		err := enable.NewGnomeExtensions(r).EnableUserTheme(ctx)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStoreUnavailable))
		assert.Empty(t, r.Calls())
	})

	t.Run("extension not installed", func(t *testing.T) {
		r := testutil.NewFakeRunner().AddBinary("gnome-extensions").
			SetOutput("gnome-extensions list", "ding@rastersoft.com\n")
		err := enable.NewGnomeExtensions(r).EnableUserTheme(ctx)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Equal(t, "'User Themes' GNOME Shell Extension not found", errors.GetErrorMessage(err))
		assert.False(t, r.Ran(enableLine))
	})

	t.Run("installed", func(t *testing.T) {
		r := testutil.NewFakeRunner().AddBinary("gnome-extensions").
			SetOutput("gnome-extensions list", "ding@rastersoft.com\n"+enable.UserThemeUUID+"\n")
		assert.NoError(t, enable.NewGnomeExtensions(r).EnableUserTheme(ctx))
		assert.True(t, r.Ran(enableLine))
	})

	t.Run("enable fails", func(t *testing.T) {
		r := testutil.NewFakeRunner().AddBinary("gnome-extensions").
			SetOutput("gnome-extensions list", enable.UserThemeUUID).
			SetFailure(enableLine, "")
		err := enable.NewGnomeExtensions(r).EnableUserTheme(ctx)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
	})
}
