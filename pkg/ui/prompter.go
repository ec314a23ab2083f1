package ui

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/resolver"
	"github.com/arthur-debert/qualia/pkg/style"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user quits a prompt
var ErrAborted = errors.New(errors.ErrInvalidInput, "aborted by user")

// NewPrompter picks the interactive form prompter on a terminal and the
// line prompter otherwise
func NewPrompter(in *os.File, out io.Writer, format Format) resolver.Prompter {
	if format == FormatTerminal && IsTerminal(in) {
		return NewFormPrompter(in, out)
	}
	return NewLinePrompter(in, out, NewConsole(out, format))
}

// FormPrompter asks questions with huh forms
type FormPrompter struct {
	in         io.Reader
	out        io.Writer
	console    *Console
	accessible bool
}

// NewFormPrompter creates a form prompter. ACCESSIBLE in the environment
// switches huh to its screen reader mode.
func NewFormPrompter(in io.Reader, out io.Writer) *FormPrompter {
	return &FormPrompter{
		in:         in,
		out:        out,
		console:    NewConsole(out, FormatTerminal),
		accessible: os.Getenv("ACCESSIBLE") != "",
	}
}

func (p *FormPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(huh.ThemeBase16()).
		WithAccessible(p.accessible).
		WithInput(p.in).
		WithOutput(p.out)
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return errors.Wrap(err, errors.ErrInternal, "prompt failed")
	}
	return nil
}

// Select shows a menu. Accent choices get a color swatch.
func (p *FormPrompter) Select(title string, choices []resolver.Choice, def string) (string, error) {
	value := def
	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		label := c.Label
		if title == resolver.AccentQuestion {
			label = style.Swatch(types.Accent(c.Value)) + " " + label
		}
		opts = append(opts, huh.NewOption(label, c.Value))
	}
	field := huh.NewSelect[string]().Title(title).Options(opts...).Value(&value)
	if err := p.run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm asks a yes/no question
func (p *FormPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	value := defaultYes
	field := huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(&value)
	if err := p.run(field); err != nil {
		return false, err
	}
	return value, nil
}

// Warn prints the diagnostic before the next question
func (p *FormPrompter) Warn(message string) {
	p.console.Error(message)
}

// LinePrompter reads numbered menu choices and y/n answers line by line
type LinePrompter struct {
	r       *bufio.Reader
	w       io.Writer
	console *Console
}

// NewLinePrompter creates a line prompter
func NewLinePrompter(in io.Reader, out io.Writer, console *Console) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(in), w: out, console: console}
}

func (p *LinePrompter) readLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", errors.New(errors.ErrInvalidInput, "no answer: input closed")
		}
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to read answer")
	}
	return strings.TrimSpace(line), nil
}

// Select prints the numbered menu two entries per row and reads a number.
// An empty answer takes def; anything else not on the menu asks again.
func (p *LinePrompter) Select(title string, choices []resolver.Choice, def string) (string, error) {
	p.console.Info("[question]" + title + "[/question]")
	defNum := 1
	var row strings.Builder
	for i, c := range choices {
		if c.Value == def {
			defNum = i + 1
		}
		fmt.Fprintf(&row, "  %-4s%-12s", strconv.Itoa(i+1)+":", c.Label)
		if i%2 == 1 || i == len(choices)-1 {
			_, _ = fmt.Fprintln(p.w, strings.TrimRight(row.String(), " "))
			row.Reset()
		}
	}

	for {
		answer, err := p.readLine(fmt.Sprintf("Enter the number corresponding to your choice [Default: %d]: ", defNum))
		if err != nil {
			return "", err
		}
		if answer == "" {
			return choices[defNum-1].Value, nil
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1].Value, nil
		}
	}
}

// Confirm reads y or n; an empty answer takes the default
func (p *LinePrompter) Confirm(title string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	for {
		answer, err := p.readLine(title + " " + hint + ": ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// Warn prints the diagnostic before the next question
func (p *LinePrompter) Warn(message string) {
	p.console.Error(message)
}
