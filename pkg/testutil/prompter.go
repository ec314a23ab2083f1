package testutil

import (
	"strings"
	"sync"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/resolver"
)

// ScriptedPrompter answers questions from a fixed script. Select answers
// are choice values, Confirm answers are "y" or "n"; an empty answer takes
// the default. Running out of answers is an error.
type ScriptedPrompter struct {
	mu       sync.Mutex
	answers  []string
	asked    []string
	warnings []string
}

// NewScriptedPrompter creates a prompter giving answers in order
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

func (s *ScriptedPrompter) next(title string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asked = append(s.asked, title)
	if len(s.answers) == 0 {
		return "", errors.Newf(errors.ErrInternal, "no scripted answer for %q", title)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// Select returns the next answer, which must be one of the choices
func (s *ScriptedPrompter) Select(title string, choices []resolver.Choice, def string) (string, error) {
	answer, err := s.next(title)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	for _, c := range choices {
		if c.Value == answer {
			return answer, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "scripted answer %q is not a choice of %q", answer, title)
}

// Confirm returns the next answer as a boolean
func (s *ScriptedPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	answer, err := s.next(title)
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
	return false, errors.Newf(errors.ErrInvalidInput, "scripted answer %q is not yes or no", answer)
}

// Warn records the diagnostic
func (s *ScriptedPrompter) Warn(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, message)
}

// Asked returns every question title, in order
func (s *ScriptedPrompter) Asked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.asked...)
}

// Warnings returns every diagnostic, in order
func (s *ScriptedPrompter) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.warnings...)
}

// Remaining returns the number of unused answers
func (s *ScriptedPrompter) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}
