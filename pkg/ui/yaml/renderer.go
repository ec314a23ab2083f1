// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/style"
	"github.com/arthur-debert/qualia/pkg/ui/display"
	"gopkg.in/yaml.v3"
)

// Renderer writes one YAML document per call
type Renderer struct {
	encoder *yaml.Encoder
}

// New creates a new YAML renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	return &Renderer{encoder: encoder}, nil
}

func (r *Renderer) encode(v interface{}) error {
	if err := r.encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
	}
	return nil
}

// RenderResult renders any result type as YAML
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError renders the error with its code, hints and command output
func (r *Renderer) RenderError(err error) error {
	return r.encode(display.NewErrorReport(err))
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": style.Strip(msg)})
}
