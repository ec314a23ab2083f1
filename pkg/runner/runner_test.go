// pkg/runner/runner_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: /bin/sh, echo
// PURPOSE: Test external command execution, output capture and trimming

package runner_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecOutputTrimsValue(t *testing.T) {
	r := runner.NewExec()

	out, err := r.Output(context.Background(), runner.Command("sh", "-c", `printf "'Adwaita'\n"`))
	require.NoError(t, err)
	assert.Equal(t, "Adwaita", out)
}

func TestExecRunFailureCarriesOutput(t *testing.T) {
	r := runner.NewExec()

	err := r.Run(context.Background(), runner.Command("sh", "-c", "echo broken build; exit 3"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
	assert.Contains(t, runner.FailureOutput(err), "broken build")
}

func TestExecRunStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := runner.NewExecWithOutput(&stdout, &stderr)

	cmd := runner.Command("sh", "-c", "echo out; echo err >&2").Streaming(true)
	require.NoError(t, r.Run(context.Background(), cmd))
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecRunInDir(t *testing.T) {
	dir := t.TempDir()
	r := runner.NewExec()

	out, err := r.Output(context.Background(), runner.Command("pwd").In(dir))
	require.NoError(t, err)
	assert.Equal(t, dir, out)
}

func TestExecRequiresName(t *testing.T) {
	r := runner.NewExec()
	err := r.Run(context.Background(), runner.Cmd{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLookPath(t *testing.T) {
	r := runner.NewExec()
	assert.True(t, r.LookPath("sh"))
	assert.False(t, r.LookPath("qualia-definitely-not-a-binary"))
}

func TestCmdString(t *testing.T) {
	c := runner.Command("meson", "configure", "build", "-Dgtk3=true")
	assert.Equal(t, "meson configure build -Dgtk3=true", c.String())
	assert.Equal(t, "ninja", runner.Command("ninja").String())
}
