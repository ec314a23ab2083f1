// Package desktop detects which supported desktop environments are
// installed and at which version.
package desktop

import (
	"context"
	"regexp"
	"strings"

	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/runner"
	"github.com/arthur-debert/qualia/pkg/types"
)

// probe describes how to ask a desktop for its version
type probe struct {
	command runner.Cmd
	// minor keeps major.minor instead of only the major version
	minor bool
	// presence marks desktops identified only by a binary on PATH
	presence string
}

var probes = map[types.Desktop]probe{
	types.DesktopGnome:    {command: runner.Command("gnome-shell", "--version")},
	types.DesktopCinnamon: {command: runner.Command("cinnamon", "--version")},
	types.DesktopUnity:    {command: runner.Command("unity", "--version")},
	types.DesktopMate:     {command: runner.Command("mate-session", "--version")},
	types.DesktopBudgie:   {command: runner.Command("budgie-desktop", "--version"), minor: true},
	types.DesktopXfce:     {presence: "xfce4-session"},
}

var versionPattern = regexp.MustCompile(`\d+(\.\d+)*`)

// Prober detects desktop identities through their command line tools
type Prober struct {
	runner runner.Runner
}

// NewProber creates a Prober using r to run the version commands
func NewProber(r runner.Runner) *Prober {
	return &Prober{runner: r}
}

// Detect probes every supported desktop. Desktops that are missing or run
// an unsupported version are absent from the result.
func (p *Prober) Detect(ctx context.Context) types.DesktopVersions {
	log := logging.GetLogger("desktop")
	out := types.DesktopVersions{}
	for _, d := range types.AllDesktops() {
		if v := p.DetectOne(ctx, d); v != "" {
			out[d] = v
		}
	}
	log.Debug().Str("desktops", out.String()).Msg("Detected desktops")
	return out
}

// DetectOne returns the allow-listed version of d, or "" when d is absent
// or unsupported.
func (p *Prober) DetectOne(ctx context.Context, d types.Desktop) string {
	log := logging.GetLogger("desktop")
	pr, ok := probes[d]
	if !ok {
		return ""
	}

	if pr.presence != "" {
		if !p.runner.LookPath(pr.presence) {
			return ""
		}
		return types.SupportedVersions(d)[0]
	}

	if !p.runner.LookPath(pr.command.Name) {
		return ""
	}
	output, err := p.runner.Output(ctx, pr.command)
	if err != nil {
		log.Debug().Err(err).Str("desktop", string(d)).Msg("Version probe failed")
		return ""
	}

	version := ParseVersion(output, pr.minor)
	if !types.IsSupportedVersion(d, version) {
		log.Info().
			Str("desktop", string(d)).
			Str("version", version).
			Msg("Unsupported desktop version")
		return ""
	}
	return version
}

// ParseVersion extracts the first version number of a --version output.
// Only the major component is kept unless minor is set.
func ParseVersion(output string, minor bool) string {
	found := versionPattern.FindString(output)
	if found == "" {
		return ""
	}
	parts := strings.Split(found, ".")
	if minor && len(parts) > 1 {
		return parts[0] + "." + parts[1]
	}
	return parts[0]
}
