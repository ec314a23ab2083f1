package versions

import (
	"strings"

	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Reason explains why a group is stale
type Reason string

const (
	ReasonNeverBuilt      Reason = "never built"
	ReasonTokenChanged    Reason = "source changed"
	ReasonReconfigured    Reason = "reconfigured"
	ReasonForced          Reason = "forced"
	ReasonAccent          Reason = "accent color changed"
	ReasonTheme           Reason = "theme variant changed"
	ReasonSyntax          Reason = "syntax highlighting option changed"
	ReasonFirefoxSettings Reason = "Firefox settings option changed"
	ReasonFirefoxProfiles Reason = "new Firefox profiles found"
	ReasonVSCodeProfiles  Reason = "new VS Code installs found"
	ReasonDesktopIdentity Reason = "desktop versions changed"
)

// Decision is the outcome of a staleness check
type Decision struct {
	Group   types.Group
	Stale   bool
	Reasons []Reason
}

// String joins the reasons for log output
func (d Decision) String() string {
	parts := make([]string, len(d.Reasons))
	for i, r := range d.Reasons {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// State is what the tracker compares against
type State struct {
	Run types.RunConfig

	// ConfigureAll is true when every question was asked this run, either
	// on request or because there was no usable record.
	ConfigureAll bool

	// Previous is the record as it was read at startup. Nil means no
	// record existed.
	Previous *record.Record

	// Desktops and Hosts are the live detection results.
	Desktops types.DesktopVersions
	Hosts    types.HostInventory
}

// Tracker evaluates group staleness against one run's state
type Tracker struct {
	state State
}

// NewTracker creates a tracker for state
func NewTracker(state State) *Tracker {
	if state.Previous == nil {
		state.Previous = record.New()
	}
	return &Tracker{state: state}
}

// IsStale reports whether g must be rebuilt given its live version token
func (t *Tracker) IsStale(g types.Group, liveToken string) bool {
	return t.Check(g, liveToken).Stale
}

// Check evaluates every rebuild reason of g
func (t *Tracker) Check(g types.Group, liveToken string) Decision {
	s := t.state
	d := Decision{Group: g}
	add := func(ok bool, r Reason) {
		if ok {
			d.Reasons = append(d.Reasons, r)
		}
	}

	info := g.Info()
	if info.Versioned {
		recorded := s.Previous.Version(g)
		add(recorded == "", ReasonNeverBuilt)
		add(recorded != "" && recorded != liveToken, ReasonTokenChanged)
	}
	add(s.ConfigureAll, ReasonReconfigured)
	add(s.Run.Force, ReasonForced)

	triggers := info.Triggers
	add(triggers.Has(types.TriggerAccent) && s.Run.AskAccent, ReasonAccent)
	add(triggers.Has(types.TriggerTheme) && s.Run.AskTheme, ReasonTheme)
	add(triggers.Has(types.TriggerSyntax) && s.Run.AskSyntax, ReasonSyntax)
	add(triggers.Has(types.TriggerFirefoxSettings) && s.Run.AskFirefoxSettings, ReasonFirefoxSettings)
	add(triggers.Has(types.TriggerFirefoxProfiles) && appeared(s.Hosts.Firefox, s.Previous.Firefox), ReasonFirefoxProfiles)
	add(triggers.Has(types.TriggerVSCodeProfiles) && appeared(s.Hosts.VSCode, s.Previous.VSCode), ReasonVSCodeProfiles)
	add(triggers.Has(types.TriggerDesktopIdentity) && !BuildIdentity(s.Desktops).Equal(BuildIdentity(s.Previous.Desktops)),
		ReasonDesktopIdentity)

	d.Stale = len(d.Reasons) > 0
	return d
}

// identityDesktops are the desktops whose detection changes the Yaru build
// options: the shell version and the panel icons.
var identityDesktops = []types.Desktop{types.DesktopGnome, types.DesktopUnity, types.DesktopMate}

// BuildIdentity is the part of the detected desktops embedded in the Yaru
// build options.
func BuildIdentity(dv types.DesktopVersions) types.DesktopVersions {
	out := types.DesktopVersions{}
	for _, d := range identityDesktops {
		if v := dv.Version(d); v != "" {
			out[d] = v
		}
	}
	return out
}

// appeared reports whether live holds a name missing from previous
func appeared(live, previous []string) bool {
	seen := make(map[string]bool, len(previous))
	for _, p := range previous {
		seen[p] = true
	}
	for _, l := range live {
		if !seen[l] {
			return true
		}
	}
	return false
}
