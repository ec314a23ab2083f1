package settings

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/errors"
)

// Key addresses one setting. For schema stores Namespace is the schema
// and Name the key; for property stores they are the channel and the
// property path.
type Key struct {
	Namespace string
	Name      string
}

func (k Key) String() string {
	return k.Namespace + " " + k.Name
}

// Reader reads settings
type Reader interface {
	// Name identifies the store in messages ("gsettings", "xfconf-query").
	Name() string
	// Available reports whether the store's client can be used.
	Available() bool
	Get(ctx context.Context, key Key) (string, error)
}

// Store reads and writes settings
type Store interface {
	Reader
	Set(ctx context.Context, key Key, value string) error
}

// Stores bundles the two kinds of backing store
type Stores struct {
	Schema   Store
	Property Store
}

func unavailable(store string) error {
	return errors.Newf(errors.ErrStoreUnavailable, "'%s' not found", store).
		WithDetail("store", store)
}
