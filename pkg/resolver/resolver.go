package resolver

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Outcome is the desired state of a run
type Outcome struct {
	// Record is the loaded record updated with this run's answers and
	// detection results. The loaded record itself is left untouched.
	Record *record.Record

	// Scheme is the resolved light/dark decision.
	Scheme types.ColorScheme

	// ConfigureAll is true when every question was asked.
	ConfigureAll bool

	// Configured is true when any question was asked.
	Configured bool

	// Dropped lists enabled components that are no longer eligible.
	Dropped []types.Component
}

// Names returns the display names for the outcome's accent and scheme
func (o *Outcome) Names() Names {
	return DisplayNames(o.Record.Accent, o.Scheme)
}

// Resolver computes the desired state from the loaded record
type Resolver struct {
	configurator *Configurator
	detect       SchemeDetector
	eligible     []types.Component
}

// New creates a resolver. eligible is the result of Eligible for this
// host.
func New(p Prompter, tools ToolFinder, detect SchemeDetector, eligible []types.Component) *Resolver {
	return &Resolver{
		configurator: NewConfigurator(p, tools, detect, eligible),
		detect:       detect,
		eligible:     eligible,
	}
}

// Eligible returns the components this resolver offers
func (r *Resolver) Eligible() []types.Component {
	return append([]types.Component(nil), r.eligible...)
}

// Resolve decides the run's configuration. Everything is asked when no
// record was found, when run asks for it, or when the record fails
// validation; otherwise only the questions named by run's flags are asked.
func (r *Resolver) Resolve(ctx context.Context, loaded *record.Record, found bool, run types.RunConfig) (*Outcome, error) {
	log := logging.GetLogger("resolver")

	out := &Outcome{Record: loaded.Clone()}
	out.Dropped = NarrowEnabled(out.Record, r.eligible)
	for _, c := range out.Dropped {
		log.Info().Str("theme", string(c)).Msg("Dropping component that can no longer be installed")
	}

	out.ConfigureAll = !found || run.Reconfigure
	if !out.ConfigureAll {
		scheme, err := Validate(ctx, out.Record, r.detect)
		if err != nil {
			if !errors.IsErrorCode(err, errors.ErrCorruptRecord) {
				return nil, err
			}
			log.Warn().Err(err).Msg("Config record is unusable, reconfiguring")
			out.ConfigureAll = true
		}
		out.Scheme = scheme
	}

	scope := NarrowScope(run)
	if out.ConfigureAll {
		scope = FullScope()
	}
	if scope == (Scope{}) {
		return out, nil
	}

	scheme, err := r.configurator.Configure(ctx, out.Record, scope)
	if err != nil {
		return nil, err
	}
	if scheme != "" {
		out.Scheme = scheme
	}
	out.Configured = true
	return out, nil
}
