// Package progress renders the "Installing the X in Y" indicator shown
// while a build step runs.
//
// The indicator is a pterm spinner. Its animation goroutine owns no state
// of the build: it watches the spinner's active flag and exits once Stop
// clears it. The terminal cursor is hidden while the spinner runs and is
// shown again on every way out of Run, including a panic in the step.
package progress
