package installer

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/build"
	"github.com/arthur-debert/qualia/pkg/enable"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/paths"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/resolver"
	"github.com/arthur-debert/qualia/pkg/settings"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/arthur-debert/qualia/pkg/versions"
)

// User facing notices
const (
	NoticePrevious    = "Updating themes using previous configuration."
	NoticeReconfigure = "Use 'qualia install --reconfigure' if you want to change anything."
	NoticeLogout      = "Log out and log back in for everything to be updated."
	NoticeNoNetwork   = "No internet connection, not installing the Snap theme."
)

// Report summarizes an install run
type Report struct {
	Outcome *resolver.Outcome

	// Decisions holds the staleness decision of every group checked.
	Decisions []versions.Decision

	// Built lists the groups that were rebuilt.
	Built []types.Group

	Enable enable.Result

	// Updated is true when anything was built or any setting written.
	Updated bool
}

// run carries the state of one install run between stages
type run struct {
	cfg       types.RunConfig
	hosts     resolver.Hosts
	outcome   *resolver.Outcome
	rec       *record.Record
	tracker   *versions.Tracker
	builder   *build.Builder
	planner   *build.Planner
	installed *paths.Installed
	report    *Report
}

// Install runs a full install with the given run configuration
func (in *Installer) Install(ctx context.Context, cfg types.RunConfig) (*Report, error) {
	log := logging.GetLogger("installer")
	done := logging.LogOperationStart(log, "install")
	defer done()

	if err := in.refuseRoot(); err != nil {
		return nil, err
	}
	if err := in.checkTools(); err != nil {
		return nil, err
	}

	r, err := in.resolve(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if !r.outcome.Configured {
		in.deps.Console.Notice(NoticePrevious)
		in.deps.Console.Notice(NoticeReconfigure)
	}

	for _, g := range types.BuildOrder() {
		if err := in.installGroup(ctx, r, g); err != nil {
			return r.report, err
		}
	}

	if err := in.mirrorForMate(ctx, r); err != nil {
		return r.report, err
	}

	res, err := in.engine().Enable(ctx, r.rec, in.deps.Desktops, r.outcome.Names().Lookup, enable.Options{})
	r.report.Enable = res
	// Snapshots captured before a failing write are kept.
	if saveErr := in.store.Save(r.rec); saveErr != nil && err == nil {
		err = saveErr
	}
	if err != nil {
		return r.report, err
	}
	if res.Changed {
		r.report.Updated = true
	}

	in.applyColorScheme(ctx, r.outcome.Scheme)

	if err := in.removeOldTheme(ctx, r); err != nil {
		return r.report, err
	}

	if r.report.Updated {
		in.deps.Console.Notice(NoticeLogout)
	}
	log.Info().Bool("updated", r.report.Updated).Int("built", len(r.report.Built)).Msg("Install finished")
	return r.report, nil
}

// resolve loads the record, decides the configuration and writes it
func (in *Installer) resolve(ctx context.Context, cfg types.RunConfig) (*run, error) {
	if _, err := in.store.MigrateLegacy(); err != nil {
		return nil, err
	}
	loaded, found, err := in.store.Load()
	if err != nil {
		return nil, err
	}

	hosts := resolver.DetectHosts(in.deps.FS, in.deps.Paths, in.deps.Config, in.deps.Runner)
	eligible := resolver.Eligible(in.deps.Desktops, hosts.HostInventory)

	res := resolver.New(in.deps.Prompter, in.deps.Runner, in.detectScheme, eligible)
	outcome, err := res.Resolve(ctx, loaded, found, cfg)
	if err != nil {
		return nil, err
	}

	var previous *record.Record
	if found {
		previous = loaded
	}

	rec := outcome.Record
	rec.Firefox = hosts.Firefox
	rec.VSCode = hosts.VSCode
	if err := in.store.Save(rec); err != nil {
		return nil, err
	}

	return &run{
		cfg:     cfg,
		hosts:   hosts,
		outcome: outcome,
		rec:     rec,
		tracker: versions.NewTracker(versions.State{
			Run:          cfg,
			ConfigureAll: outcome.ConfigureAll,
			Previous:     previous,
			Desktops:     in.deps.Desktops,
			Hosts:        hosts.HostInventory,
		}),
		builder:   build.NewBuilder(in.deps.Runner, in.deps.Paths, in.deps.Indicator, cfg),
		planner:   build.NewPlanner(in.deps.FS, in.deps.Paths),
		installed: paths.NewInstalled(in.deps.Paths, hosts.FirefoxDirs, hosts.VSCodeDirs),
		report:    &Report{Outcome: outcome},
	}, nil
}

// installGroup brings one group up to date and records its token
func (in *Installer) installGroup(ctx context.Context, r *run, g types.Group) error {
	log := logging.GetLogger("installer").With().Str("group", string(g)).Logger()

	if g == types.GroupSnap {
		return in.installSnap(ctx, r)
	}

	in.reportDisabled(r, g)

	plan, ok := r.planner.Plan(g, build.Inputs{
		Record:   r.rec,
		Scheme:   r.outcome.Scheme,
		Desktops: in.deps.Desktops,
		Verbose:  r.cfg.ShowOutput(),
	})
	if !ok {
		log.Debug().Msg("No component enabled")
		return nil
	}

	if err := r.builder.Update(ctx, g); err != nil {
		return err
	}
	token, err := r.builder.Version(ctx, g)
	if err != nil {
		return err
	}

	decision := r.tracker.Check(g, token)
	r.report.Decisions = append(r.report.Decisions, decision)
	log.Debug().Str("decision", decision.String()).Msg("Checked group")

	if decision.Stale {
		if err := r.builder.Execute(ctx, plan); err != nil {
			return err
		}
		r.report.Built = append(r.report.Built, g)
		r.report.Updated = true
	} else {
		in.deps.Console.Info(plan.UpToDate())
	}

	if err := r.rec.SetVersion(g, token); err != nil {
		return err
	}
	if g == types.GroupYaru {
		r.rec.Desktops = in.deps.Desktops.Clone()
	}
	return in.store.Save(r.rec)
}

// applyColorScheme sets the desktop light/dark preference. Failures are
// ignored: not every desktop has the key.
func (in *Installer) applyColorScheme(ctx context.Context, scheme types.ColorScheme) {
	store := in.deps.Stores.Schema
	if scheme == "" || store == nil || !store.Available() {
		return
	}
	budgie := in.deps.Desktops.Has(types.DesktopBudgie)
	if err := settings.ApplyColorScheme(ctx, store, scheme, budgie); err != nil {
		log := logging.GetLogger("installer")
		log.Debug().Err(err).Msg("Failed to set color scheme")
	}
}
