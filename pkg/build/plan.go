package build

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/qualia/pkg/paths"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/runner"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/spf13/afero"
)

// Plan is the list of commands building one group
type Plan struct {
	Group types.Group

	// Subject names what is built in messages, e.g. "qualia GTK3 theme".
	Subject string
	Plural  bool

	// Destination is where the files land, for messages.
	Destination string

	// Dir is where the steps run.
	Dir   string
	Steps []runner.Cmd

	// Meson plans run under the progress indicator and get the clean hint
	// when they fail. Script plans stream their own output.
	Meson bool
}

// UpToDate is the message printed when the group needs no rebuild
func (p Plan) UpToDate() string {
	verb := "is"
	if p.Plural {
		verb = "are"
	}
	return fmt.Sprintf("The %s %s up to date.", p.Subject, verb)
}

// Inputs are the facts a plan depends on
type Inputs struct {
	Record   *record.Record
	Scheme   types.ColorScheme
	Desktops types.DesktopVersions
	// Verbose streams meson and ninja output instead of capturing it.
	Verbose bool
}

// Planner builds plans for the groups built from the repository
type Planner struct {
	fs    afero.Fs
	paths paths.Paths
}

// NewPlanner creates a planner. fs is used to check for existing meson
// build directories.
func NewPlanner(fs afero.Fs, p paths.Paths) *Planner {
	return &Planner{fs: fs, paths: p}
}

// Plan returns the plan of g. False means no component of g is enabled,
// or g is not built from the repository (snap).
func (pl *Planner) Plan(g types.Group, in Inputs) (Plan, bool) {
	if g == types.GroupSnap || !in.Record.AnyEnabled(g) {
		return Plan{}, false
	}

	p := Plan{
		Group:       g,
		Destination: pl.paths.Expand(g.Info().Destination),
		Dir:         pl.paths.SourceDir(g),
		Meson:       g.Info().Meson,
	}

	rec := in.Record
	accent := string(rec.Accent)
	token := in.Scheme.Token()

	switch g {
	case types.GroupAdwGtk3:
		p.Subject, p.Plural = adwGtk3Subject(rec)
		p.Steps = pl.meson(g, adwGtk3Options(rec, pl.paths.Home()), true, in.Verbose)
	case types.GroupYaru:
		parts := enabledParts(rec, g)
		p.Subject, p.Plural = yaruSubject(parts)
		p.Steps = pl.meson(g, yaruOptions(rec, in.Desktops), false, in.Verbose)
	case types.GroupLibadwaita:
		p.Subject = "qualia GTK4 configuration"
		p.Steps = []runner.Cmd{script("./install.sh", "-c", accent, "-t", token)}
	case types.GroupFirefox:
		p.Subject = "qualia Firefox theme"
		args := []string{"-c", accent}
		if !rec.IsEnabled(types.ComponentSettingsTheme) {
			args = append(args, "-n")
		}
		p.Steps = []runner.Cmd{script("./install.sh", args...)}
	case types.GroupVSCode:
		p.Subject = "qualia VS Code theme"
		args := []string{"-c", accent, "-t", token}
		if rec.IsEnabled(types.ComponentDefaultSyntax) {
			args = append(args, "-d")
		}
		p.Steps = []runner.Cmd{script("./install.py", args...)}
	default:
		return Plan{}, false
	}

	for i := range p.Steps {
		p.Steps[i] = p.Steps[i].In(p.Dir)
	}
	return p, true
}

func script(name string, args ...string) runner.Cmd {
	return runner.Command(name, args...).Streaming(true)
}

// meson returns the configure, build and install sequence. reconfigure
// adds the second configure pass the adw-gtk3 tree needs for option
// changes to stick.
func (pl *Planner) meson(g types.Group, opts []string, reconfigure, verbose bool) []runner.Cmd {
	var steps []runner.Cmd
	exists, _ := afero.DirExists(pl.fs, pl.paths.BuildDir(g))
	if exists {
		steps = append(steps, runner.Command("meson", append([]string{"configure", paths.BuildDirName}, opts...)...))
	} else {
		steps = append(steps, runner.Command("meson", append([]string{paths.BuildDirName}, opts...)...))
	}
	if reconfigure {
		steps = append(steps, runner.Command("meson", append([]string{"configure", paths.BuildDirName}, opts...)...))
	}
	steps = append(steps, runner.Command("ninja", "-C", paths.BuildDirName, "install"))
	for i := range steps {
		steps[i] = steps[i].Streaming(verbose)
	}
	return steps
}

func adwGtk3Subject(rec *record.Record) (string, bool) {
	gtk3 := rec.IsEnabled(types.ComponentGtk3)
	adw := rec.IsEnabled(types.ComponentGtk4Libadwaita)
	switch {
	case gtk3 && adw:
		return "qualia GTK3 and Libadwaita GTK4 themes", true
	case gtk3:
		return "qualia GTK3 theme", false
	default:
		return "Libadwaita GTK4 theme", false
	}
}

func adwGtk3Options(rec *record.Record, home string) []string {
	return []string{
		"-Dprefix=" + home + "/.local",
		fmt.Sprintf("-Dgtk4=%t", rec.IsEnabled(types.ComponentGtk4Libadwaita)),
		fmt.Sprintf("-Dgtk3=%t", rec.IsEnabled(types.ComponentGtk3)),
	}
}

func enabledParts(rec *record.Record, g types.Group) []types.Component {
	var parts []types.Component
	for _, c := range types.ComponentsOf(g) {
		if rec.IsEnabled(c) {
			parts = append(parts, c)
		}
	}
	return parts
}

func yaruSubject(parts []types.Component) (string, bool) {
	labels := make([]string, len(parts))
	for i, c := range parts {
		labels[i] = c.Label()
	}
	if len(parts) == 1 {
		return "qualia " + labels[0] + " theme", false
	}
	return "qualia " + JoinLabels(labels) + " themes", true
}

// yaruOptions enables the chosen parts, disables the others, and passes
// the desktop facts the build depends on.
func yaruOptions(rec *record.Record, desktops types.DesktopVersions) []string {
	var on, off []string
	for _, c := range types.ComponentsOf(types.GroupYaru) {
		if rec.IsEnabled(c) {
			on = append(on, "-D"+string(c)+"=true")
		} else {
			off = append(off, "-D"+string(c)+"=false")
		}
	}
	opts := append(on, off...)

	panel := desktops.Has(types.DesktopUnity) || desktops.Has(types.DesktopMate)
	opts = append(opts, fmt.Sprintf("-Dpanel-icons=%t", panel))

	if v := desktops.Version(types.DesktopGnome); v != "" {
		opts = append(opts, "-Dgnome-shell-version="+v)
	}
	return opts
}

// JoinLabels joins labels as an English list: "A", "A and B",
// "A, B, and C".
func JoinLabels(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " and " + labels[1]
	}
	return strings.Join(labels[:len(labels)-1], ", ") + ", and " + labels[len(labels)-1]
}
