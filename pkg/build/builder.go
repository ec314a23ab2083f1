package build

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/paths"
	"github.com/arthur-debert/qualia/pkg/progress"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/runner"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Hint messages attached to build failures
const (
	HintVerbose = "Something went wrong, run 'qualia install -v' for more info."
	HintLog     = "Something went wrong. Check the log above."
	HintClean   = "Also, running 'qualia clean' might fix the issue."
)

// Builder runs plans against the repository checkout
type Builder struct {
	runner    runner.Runner
	paths     paths.Paths
	indicator *progress.Indicator
	run       types.RunConfig
}

// NewBuilder creates a builder. indicator may be nil, in which case
// meson plans run without one.
func NewBuilder(r runner.Runner, p paths.Paths, indicator *progress.Indicator, run types.RunConfig) *Builder {
	return &Builder{runner: r, paths: p, indicator: indicator, run: run}
}

// Update checks out the submodule of g, unless the run asked not to
func (b *Builder) Update(ctx context.Context, g types.Group) error {
	if b.run.NoUpdate {
		return nil
	}
	c := runner.Command("git", "submodule", "update", "--init", g.SourceDir()).
		In(b.paths.RepoDir()).
		Streaming(b.run.ShowOutput())
	if err := b.runner.Run(ctx, c); err != nil {
		return b.failure(err, c.Stream, false, "failed to update the %s submodule", g)
	}
	return nil
}

// Version returns the version token of g: the commit checked out in its
// source directory.
func (b *Builder) Version(ctx context.Context, g types.Group) (string, error) {
	out, err := b.runner.Output(ctx, runner.Command("git", "rev-parse", "HEAD").In(b.paths.SourceDir(g)))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrCommandFailed, "failed to read the version of %s", g).
			WithDetail("group", string(g))
	}
	if len(out) != record.VersionTokenLength {
		return "", errors.Newf(errors.ErrCommandFailed, "unexpected version token %q for %s", out, g).
			WithDetail("group", string(g))
	}
	return out, nil
}

// Execute runs every step of p, stopping at the first failure
func (b *Builder) Execute(ctx context.Context, p Plan) error {
	log := logging.GetLogger("build").With().Str("group", string(p.Group)).Logger()
	done := logging.LogOperationStart(log, "build "+string(p.Group))
	defer done()

	steps := func() error {
		for _, step := range p.Steps {
			if b.run.ShowOutput() {
				log.Info().Str("command", step.String()).Str("dir", step.Dir).Msg("Running command")
			}
			logging.LogCommand(log, step.Name, step.Args)
			if err := b.runner.Run(ctx, step); err != nil {
				return b.failure(err, step.Stream, p.Meson, "failed to build the %s", p.Subject).
					WithDetail("group", string(p.Group)).
					WithDetail("step", step.String())
			}
		}
		return nil
	}

	if p.Meson && b.indicator != nil {
		return b.indicator.Run(progress.Step{Subject: p.Subject, Destination: p.Destination}, steps)
	}
	return steps()
}

// failure wraps a failed command as a build failure carrying the hints
// to print. A streamed command already showed its output.
func (b *Builder) failure(err error, streamed, meson bool, format string, args ...interface{}) *errors.QualiaError {
	hints := []string{HintVerbose}
	if streamed {
		hints = []string{HintLog}
	}
	if meson {
		hints = append(hints, HintClean)
	}
	return errors.Wrapf(err, errors.ErrBuildFailed, format, args...).WithDetail("hints", hints)
}

// Hints returns the hints attached to a build failure
func Hints(err error) []string {
	hints, _ := errors.GetErrorDetails(err)["hints"].([]string)
	return hints
}

