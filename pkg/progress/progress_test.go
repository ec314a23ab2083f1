// pkg/progress/progress_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the plain rendering of build steps

package progress_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/qualia/pkg/progress"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestStepMessage(t *testing.T) {
	s := progress.Step{Subject: "qualia GTK3 theme", Destination: "/usr/share"}
	assert.Equal(t, "Installing the qualia GTK3 theme in /usr/share", s.Message())
}

func TestRunPlain(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var buf bytes.Buffer
	in := progress.New(&buf, false)
	ran := false

	err := in.Run(progress.Step{Subject: "qualia Yaru themes", Destination: "/usr/share"}, func() error {
		ran = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, "Installing the qualia Yaru themes in /usr/share\n", buf.String())
}

func TestRunReturnsStepError(t *testing.T) {
	var buf bytes.Buffer
	in := progress.New(&buf, false)
	boom := stderrors.New("ninja failed")

	err := in.Run(progress.Step{Subject: "x", Destination: "y"}, func() error { return boom })
	assert.Same(t, boom, err)
}
