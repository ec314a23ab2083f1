// pkg/build/snap_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: FakeRunner, httptest
// PURPOSE: Test the snap installer and the connectivity probe

package build_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arthur-debert/qualia/pkg/build"
	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/testutil"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapList = `Name               Version   Rev    Tracking       Publisher   Notes
core22             20230801  864    latest/stable  canonical✓  base
gtk-common-themes  0.1-81    1535   latest/stable  canonical✓  -
firefox            118.0     3206   latest/stable  mozilla✓    -
`

const snapConnections = `Interface     Plug                          Slot                                Notes
content       firefox:gtk-3-themes          gtk-common-themes:gtk-3-themes      -
content       firefox:icon-themes           gtk-common-themes:icon-themes       -
content       firefox:sound-themes          qualia-gtk-theme:sound-themes       manual
desktop       firefox:desktop               :desktop                            -
`

func TestSnapInstall(t *testing.T) {
	r := testutil.NewFakeRunner().
		SetOutput("snap list", snapList).
		SetOutput("snap connections", snapConnections)
	var notes []string
	s := build.NewSnap(r, func(m string) { notes = append(notes, m) })

	rec := newRecord(types.ComponentGtk3, types.ComponentIcons, types.ComponentSnap)
	require.NoError(t, s.Install(context.Background(), rec))

	assert.Equal(t, []string{
		"snap list",
		"sudo snap refresh gtk-common-themes",
		"sudo snap install qualia-gtk-theme",
		"snap connections",
		"sudo snap connect firefox:gtk-3-themes qualia-gtk-theme:gtk-3-themes",
		"sudo snap connect firefox:icon-themes qualia-gtk-theme:icon-themes",
		"sudo snap disconnect firefox:sound-themes qualia-gtk-theme:sound-themes",
	}, r.CommandLines())
	assert.Equal(t, []string{
		"Checking if gtk-common-themes Snap can be updated.",
		"Installing the qualia-gtk-theme Snap.",
	}, notes)
}

func TestSnapInstalled(t *testing.T) {
	ctx := context.Background()
	r := testutil.NewFakeRunner().SetOutput("snap list", snapList)
	installed, err := build.NewSnap(r, nil).Installed(ctx)
	require.NoError(t, err)
	assert.False(t, installed)

	r.SetOutput("snap list", snapList+"qualia-gtk-theme  1.0  12  latest/stable  qualia  -\n")
	installed, err = build.NewSnap(r, nil).Installed(ctx)
	require.NoError(t, err)
	assert.True(t, installed)
}

func TestSnapInstallFailure(t *testing.T) {
	r := testutil.NewFakeRunner().
		SetOutput("snap list", "").
		SetFailure("sudo snap install gtk-common-themes", "error: cannot communicate with server")
	err := build.NewSnap(r, nil).Install(context.Background(), newRecord(types.ComponentSnap))
	assert.True(t, errors.IsErrorCode(err, errors.ErrBuildFailed))
}

func TestProbe(t *testing.T) {
	ctx := context.Background()

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ok.Close()
	assert.NoError(t, build.Probe(ctx, ok.URL, time.Second))

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()
	err := build.Probe(ctx, slow.URL, 50*time.Millisecond)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNetwork))

	err = build.Probe(ctx, "://bad", time.Second)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
