package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/pterm/pterm"
)

// Step describes one build step for the indicator
type Step struct {
	// Subject is what is installed, e.g. "qualia GTK3 theme".
	Subject string
	// Destination is where it lands, e.g. "/usr/share".
	Destination string
}

// Message is the line shown while the step runs
func (s Step) Message() string {
	return fmt.Sprintf("Installing the %s in %s", s.Subject, s.Destination)
}

func (s Step) styled() string {
	return fmt.Sprintf("%s the %s in %s",
		pterm.LightGreen("Installing"), pterm.Bold.Sprint(s.Subject), pterm.Bold.Sprint(s.Destination))
}

// Indicator shows steps on w
type Indicator struct {
	w       io.Writer
	animate bool
	cursor  *cursor.Cursor
	delay   time.Duration
}

// New creates an indicator. Without animate the message is printed once
// and the step output can scroll below it, which is what verbose runs
// and non terminals get.
func New(w io.Writer, animate bool) *Indicator {
	in := &Indicator{w: w, animate: animate, delay: 100 * time.Millisecond}
	if cw, ok := w.(cursor.Writer); ok {
		in.cursor = cursor.NewCursor().WithWriter(cw)
	}
	return in
}

// Run shows s while fn runs and returns fn's error
func (in *Indicator) Run(s Step, fn func() error) error {
	log := logging.GetLogger("progress")
	if !in.animate {
		fmt.Fprintln(in.w, s.styled())
		return fn()
	}

	spinner, err := pterm.DefaultSpinner.
		WithWriter(in.w).
		WithDelay(in.delay).
		WithSequence("|", "/", "-", "\\").
		WithRemoveWhenDone(false).
		WithShowTimer(false).
		Start(s.styled())
	if err != nil {
		log.Debug().Err(err).Msg("Spinner unavailable, printing plain message")
		fmt.Fprintln(in.w, s.styled())
		return fn()
	}

	stop := in.hide(spinner)
	defer stop()

	err = fn()
	if err != nil {
		spinner.Fail(s.Message())
	} else {
		spinner.Success(s.Message())
	}
	return err
}

// hide hides the cursor and returns the function undoing it. The
// returned function is safe to call more than once.
func (in *Indicator) hide(spinner *pterm.SpinnerPrinter) func() {
	if in.cursor != nil {
		in.cursor.Hide()
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			_ = spinner.Stop()
			if in.cursor != nil {
				in.cursor.Show()
			}
		})
	}
}

// RestoreCursor shows the cursor on stdout. Callers exiting the process
// on a signal or a fatal error call it so a hidden cursor never outlives
// the run.
func RestoreCursor() {
	cursor.Show()
}
