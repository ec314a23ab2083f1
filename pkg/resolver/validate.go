package resolver

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/types"
)

// SchemeDetector reads the desktop's light/dark preference
type SchemeDetector func(ctx context.Context) (types.ColorScheme, error)

// ResolveScheme turns a variant into a color scheme. Auto asks detect and
// fails with ErrAutoDetect when the preference can't be read.
func ResolveScheme(ctx context.Context, v types.Variant, detect SchemeDetector) (types.ColorScheme, error) {
	if scheme, ok := v.Scheme(); ok {
		return scheme, nil
	}
	if v != types.VariantAuto {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown theme variant %q", string(v))
	}
	if detect == nil {
		return "", errors.New(errors.ErrAutoDetect, "can't detect system light/dark theme preference")
	}
	return detect(ctx)
}

// Validate checks that rec can drive a run without asking anything and
// returns its resolved scheme. Any problem is ErrCorruptRecord: the caller
// reconfigures from scratch instead of repairing the record.
func Validate(ctx context.Context, rec *record.Record, detect SchemeDetector) (types.ColorScheme, error) {
	corrupt := func(msg string) error {
		return errors.New(errors.ErrCorruptRecord, msg)
	}

	if !rec.Accent.Valid() {
		return "", corrupt("config record has no valid accent color")
	}
	if !rec.Variant.Valid() {
		return "", corrupt("config record has no valid theme variant")
	}
	if len(rec.Enabled) == 0 {
		return "", corrupt("config record enables no component")
	}

	scheme, err := ResolveScheme(ctx, rec.Variant, detect)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCorruptRecord, "config record theme variant can't be resolved").
			WithDetail("variant", string(rec.Variant))
	}
	return scheme, nil
}
