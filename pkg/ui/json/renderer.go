// Package json renders status and errors as indented JSON
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/style"
	"github.com/arthur-debert/qualia/pkg/ui/display"
)

// Renderer writes one JSON document per call
type Renderer struct {
	encoder *json.Encoder
}

// New creates a JSON renderer writing to output
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	// Theme names and paths are printed as they are.
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}, nil
}

func (r *Renderer) encode(v interface{}) error {
	if err := r.encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON")
	}
	return nil
}

func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError writes the error with its code, hints and command output
func (r *Renderer) RenderError(err error) error {
	return r.encode(display.NewErrorReport(err))
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": style.Strip(msg)})
}
