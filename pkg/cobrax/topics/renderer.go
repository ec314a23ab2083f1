package topics

import (
	"sync"

	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Renderer formats a topic for display. ext is the topic file extension,
// dot included.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics as they are
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, _ string) string {
	return content
}

// MarkdownRenderer renders .md topics with glamour. Other extensions and
// rendering failures fall back to the raw text.
type MarkdownRenderer struct {
	// Style is a glamour standard style. Empty honors GLAMOUR_STYLE and
	// otherwise picks light or dark from the terminal.
	Style string
	// Width wraps paragraphs. Zero keeps glamour's default.
	Width int

	once sync.Once
	term *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer. Without styled the output has
// no escape sequences, for pipes and dumb terminals.
func NewMarkdownRenderer(styled bool) *MarkdownRenderer {
	r := &MarkdownRenderer{Width: 80}
	if !styled {
		r.Style = styles.NoTTYStyle
	}
	return r
}

func (r *MarkdownRenderer) init() {
	options := []glamour.TermRendererOption{glamour.WithEnvironmentConfig()}
	if r.Style != "" {
		options = []glamour.TermRendererOption{glamour.WithStandardStyle(r.Style)}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	term, err := glamour.NewTermRenderer(options...)
	if err != nil {
		log := logging.GetLogger("topics")
		log.Debug().Err(err).Str("style", r.Style).Msg("Markdown renderer unavailable")
		return
	}
	r.term = term
}

func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}
	r.once.Do(r.init)
	if r.term == nil {
		return content
	}
	out, err := r.term.Render(content)
	if err != nil {
		return content
	}
	return out
}
