package resolver

import (
	"context"
	"fmt"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Question titles
const (
	AccentQuestion   = "Which accent color do you want?"
	VariantQuestion  = "Which theme variant do you want?"
	componentFormat  = "Do you want to install the %s theme?"
	gtk4Question     = "Do you want to install the custom GTK4 configuration?"
	libadwaitaAsk    = "Do you want to install Libadwaita as a GTK4 theme?"
	settingsQuestion = "Do you want to theme the settings pages in Firefox?"
	syntaxQuestion   = "Do you want to keep the default syntax highlighting in VS Code?"
)

// mesonTools must be on PATH to build the meson groups
var mesonTools = []string{"meson", "ninja"}

// Scope selects the questions of one configuration pass
type Scope struct {
	All             bool
	Accent          bool
	Theme           bool
	Syntax          bool
	FirefoxSettings bool
}

// FullScope asks everything
func FullScope() Scope {
	return Scope{All: true}
}

// NarrowScope asks only what the run's flags request
func NarrowScope(run types.RunConfig) Scope {
	return Scope{
		Accent:          run.AskAccent,
		Theme:           run.AskTheme,
		Syntax:          run.AskSyntax,
		FirefoxSettings: run.AskFirefoxSettings,
	}
}

func (s Scope) asksOption(c types.Component) bool {
	switch c {
	case types.ComponentSettingsTheme:
		return s.FirefoxSettings
	case types.ComponentDefaultSyntax:
		return s.Syntax
	}
	return false
}

// Question returns the yes/no question asked for c
func Question(c types.Component) string {
	switch c {
	case types.ComponentGtk4:
		return gtk4Question
	case types.ComponentGtk4Libadwaita:
		return libadwaitaAsk
	case types.ComponentSettingsTheme:
		return settingsQuestion
	case types.ComponentDefaultSyntax:
		return syntaxQuestion
	}
	return fmt.Sprintf(componentFormat, c.Label())
}

// Configurator runs the interactive configuration
type Configurator struct {
	prompter Prompter
	tools    ToolFinder
	detect   SchemeDetector
	eligible []types.Component
}

// NewConfigurator creates a configurator offering the eligible components
func NewConfigurator(p Prompter, tools ToolFinder, detect SchemeDetector, eligible []types.Component) *Configurator {
	return &Configurator{prompter: p, tools: tools, detect: detect, eligible: eligible}
}

// Configure asks the questions of scope and updates rec. It returns the
// resolved scheme when the variant was asked, "" otherwise.
//
// Asking again about an option whose parent component is disabled is an
// ErrIneligible failure raised before any question.
func (c *Configurator) Configure(ctx context.Context, rec *record.Record, scope Scope) (types.ColorScheme, error) {
	log := logging.GetLogger("resolver")

	if !scope.All {
		for _, info := range types.AllComponents() {
			if scope.asksOption(info.ID) && !rec.IsEnabled(info.Parent) {
				return "", errors.Newf(errors.ErrIneligible, "%s theme is not enabled", info.Parent.Label()).
					WithDetail("component", string(info.ID))
			}
		}
	}

	if scope.All || scope.Accent {
		accent, err := c.askAccent(rec.Accent)
		if err != nil {
			return "", err
		}
		rec.Accent = accent
	}

	var scheme types.ColorScheme
	if scope.All || scope.Theme {
		variant, resolved, err := c.askVariant(ctx, rec.Variant)
		if err != nil {
			return "", err
		}
		rec.Variant = variant
		scheme = resolved
	}

	if scope.All {
		rec.Enabled = nil
	}

	for _, comp := range c.eligible {
		info := comp.Info()
		if info.IsOption() {
			if !scope.All && !scope.asksOption(comp) {
				continue
			}
			if !rec.IsEnabled(info.Parent) {
				rec.Disable(comp)
				continue
			}
		} else if !scope.All {
			continue
		}

		yes, err := c.askComponent(info)
		if err != nil {
			return "", err
		}
		if yes {
			rec.Enable(comp)
		} else {
			rec.Disable(comp)
		}
	}

	log.Debug().
		Str("accent", string(rec.Accent)).
		Str("variant", string(rec.Variant)).
		Int("enabled", len(rec.Enabled)).
		Msg("Configuration updated")
	return scheme, nil
}

func (c *Configurator) askAccent(current types.Accent) (types.Accent, error) {
	choices := make([]Choice, 0, len(types.Accents()))
	for _, a := range types.Accents() {
		choices = append(choices, Choice{Value: string(a), Label: a.Label()})
	}
	def := types.DefaultAccent
	if current.Valid() {
		def = current
	}
	value, err := c.prompter.Select(AccentQuestion, choices, string(def))
	if err != nil {
		return "", err
	}
	return types.ParseAccent(value)
}

// askVariant repeats the question until the answer resolves. A failing
// auto detection is reported and the menu shown again.
func (c *Configurator) askVariant(ctx context.Context, current types.Variant) (types.Variant, types.ColorScheme, error) {
	choices := make([]Choice, 0, len(types.Variants()))
	for _, v := range types.Variants() {
		choices = append(choices, Choice{Value: string(v), Label: v.Label()})
	}
	def := types.DefaultVariant
	if current.Valid() {
		def = current
	}

	for {
		value, err := c.prompter.Select(VariantQuestion, choices, string(def))
		if err != nil {
			return "", "", err
		}
		variant, err := types.ParseVariant(value)
		if err != nil {
			return "", "", err
		}
		scheme, err := ResolveScheme(ctx, variant, c.detect)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrAutoDetect) {
				c.prompter.Warn("Can't detect system light/dark theme preference.")
				continue
			}
			return "", "", err
		}
		return variant, scheme, nil
	}
}

// askComponent asks about one component. A yes for a meson built
// component while meson or ninja is missing is reported and asked again.
func (c *Configurator) askComponent(info types.ComponentInfo) (bool, error) {
	for {
		yes, err := c.prompter.Confirm(Question(info.ID), info.DefaultYes)
		if err != nil {
			return false, err
		}
		if yes && info.Group.Info().Meson {
			if missing := c.missingTool(); missing != "" {
				c.prompter.Warn(fmt.Sprintf("'%s' not found, can't install %s theme.", missing, info.Label))
				continue
			}
		}
		return yes, nil
	}
}

func (c *Configurator) missingTool() string {
	if c.tools == nil {
		return ""
	}
	for _, tool := range mesonTools {
		if !c.tools.LookPath(tool) {
			return tool
		}
	}
	return ""
}
