package display

import (
	"strings"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/runner"
)

// ErrorReport is the machine readable form of an error
type ErrorReport struct {
	Error  string   `json:"error" yaml:"error"`
	Code   string   `json:"code" yaml:"code"`
	Hints  []string `json:"hints,omitempty" yaml:"hints,omitempty"`
	Output string   `json:"output,omitempty" yaml:"output,omitempty"`
}

// NewErrorReport collects the message, code, build hints and failed
// command output of err
func NewErrorReport(err error) ErrorReport {
	hints, _ := errors.GetErrorDetails(err)["hints"].([]string)
	return ErrorReport{
		Error:  errors.GetErrorMessage(err),
		Code:   string(errors.GetErrorCode(err)),
		Hints:  hints,
		Output: strings.TrimSpace(runner.FailureOutput(err)),
	}
}
