package config

import (
	_ "embed"

	"github.com/arthur-debert/qualia/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// GetDefaultsContent returns the embedded defaults file
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// rawBytesProvider feeds the embedded defaults to koanf
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }

// Read is unused: koanf calls ReadBytes when a parser is given.
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "embedded defaults must be loaded with a parser")
}
