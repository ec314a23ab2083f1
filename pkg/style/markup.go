package style

import (
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// markupTag is one [name]...[/name] pair and the style it applies
type markupTag struct {
	name    string
	style   lipgloss.Style
	pattern *regexp.Regexp
}

func newMarkupTag(name string, style lipgloss.Style) markupTag {
	q := regexp.QuoteMeta(name)
	return markupTag{
		name:    name,
		style:   style,
		pattern: regexp.MustCompile(`(?s)\[` + q + `\](.*?)\[/` + q + `\]`),
	}
}

// MarkupParser renders the bracket tags used in user facing messages,
// such as "Changing GTK3 theme in GNOME to [theme]qualia-blue-dark[/theme]."
type MarkupParser struct {
	tags  []markupTag
	strip *regexp.Regexp
}

// NewMarkupParser creates a parser knowing the default tags
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{}
	for name, style := range map[string]lipgloss.Style{
		"title":    TitleStyle,
		"subtitle": SubtitleStyle,
		"success":  SuccessStyle,
		"error":    ErrorStyle,
		"warning":  WarningStyle,
		"question": QuestionStyle,
		"code":     CodeStyle,
		"path":     PathStyle,
		"muted":    MutedStyle,
		"theme":    ThemeStyle,
		"bold":     lipgloss.NewStyle().Bold(true),
		"italic":   lipgloss.NewStyle().Italic(true),
	} {
		p.tags = append(p.tags, newMarkupTag(name, style))
	}
	p.index()
	return p
}

// index sorts the tags and rebuilds the strip pattern
func (p *MarkupParser) index() {
	sort.Slice(p.tags, func(i, j int) bool { return p.tags[i].name < p.tags[j].name })
	names := make([]string, len(p.tags))
	for i, t := range p.tags {
		names[i] = regexp.QuoteMeta(t.name)
	}
	p.strip = regexp.MustCompile(`\[/?(` + strings.Join(names, "|") + `)\]`)
}

// AddStyle registers a tag, replacing any tag of the same name
func (p *MarkupParser) AddStyle(name string, style lipgloss.Style) {
	for i, t := range p.tags {
		if t.name == name {
			p.tags[i] = newMarkupTag(name, style)
			return
		}
	}
	p.tags = append(p.tags, newMarkupTag(name, style))
	p.index()
}

// Render styles every known tag. Nested tags are rendered inside out,
// unknown tags are left in the text.
func (p *MarkupParser) Render(text string) string {
	for {
		before := text
		for _, t := range p.tags {
			text = t.pattern.ReplaceAllStringFunc(text, func(match string) string {
				return t.style.Render(t.pattern.FindStringSubmatch(match)[1])
			})
		}
		if text == before {
			return text
		}
	}
}

// Strip removes the known tags, leaving the text unstyled
func (p *MarkupParser) Strip(text string) string {
	return p.strip.ReplaceAllString(text, "")
}

var defaultParser = NewMarkupParser()

// Render styles text with the default tags
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip removes the default tags from text
func Strip(text string) string {
	return defaultParser.Strip(text)
}
