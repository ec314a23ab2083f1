package build

import (
	"context"
	"net/http"
	"time"

	"github.com/arthur-debert/qualia/pkg/errors"
)

// DefaultProbeTimeout bounds the connectivity probe when the settings
// leave it unset
const DefaultProbeTimeout = 3 * time.Second

// Probe checks that url answers within timeout. Any HTTP response counts
// as connected.
func Probe(ctx context.Context, url string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "bad probe url %q", url)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNetwork, "no connection to %s", url)
	}
	resp.Body.Close()
	return nil
}
