// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: fstest.MapFS, cobra
// PURPOSE: Test topic loading and the help command

package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"reconfigure.txt":      {Data: []byte("Reconfigure asks every question again.")},
		"accents.md":           {Data: []byte("# Accents\n\nTwelve accent colors.")},
		"nested/restore.md":    {Data: []byte("# Restore")},
		"option-no-update.txt": {Data: []byte("Skip submodule updates.")},
		"notes.txxt":           {Data: []byte("custom extension")},
		"ignored.json":         {Data: []byte("{}")},
	}
}

func TestScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(topicFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name    string
			exists  bool
			content string
		}{
			{"reconfigure", true, "Reconfigure asks every question again."},
			{"accents", true, "# Accents\n\nTwelve accent colors."},
			{"restore", true, "# Restore"},
			{"notes", false, ""},
			{"ignored", false, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, ok := tm.GetTopic(tt.name)
				assert.Equal(t, tt.exists, ok)
				if ok {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(topicFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil file system", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"no-update", "--no-update", "-no-update"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-no-update", topic.Name)
	}
}

type upper struct{}

func (upper) Render(content, format string) string {
	if format == ".md" {
		return strings.ToUpper(content)
	}
	return content
}

func newRoot(t *testing.T, opts Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "qualia", Short: "theme installer"}
	root.AddCommand(&cobra.Command{Use: "install", Short: "Install themes", Run: func(*cobra.Command, []string) {}})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	require.NoError(t, InitializeWithOptions(root, topicFS(), opts))
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	t.Run("topic list", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "General topics:\n  accents\n  reconfigure\n  restore")
		assert.Contains(t, out.String(), "Option topics:\n  --no-update")
		assert.Contains(t, out.String(), "Use 'qualia help <topic>'")
	})

	t.Run("topic with renderer", func(t *testing.T) {
		root, out := newRoot(t, Options{Renderer: upper{}})
		root.SetArgs([]string{"help", "accents"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# ACCENTS\n\nTWELVE ACCENT COLORS.", out.String())
	})

	t.Run("command help", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help", "install"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Install themes")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# x", r.Render("# x", ".md"))
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer(false)
	assert.Equal(t, "# raw", r.Render("# raw", ".txt"))

	out := r.Render("# Accents\n\nTwelve accent colors.", ".md")
	assert.Contains(t, out, "Accents")
	assert.Contains(t, out, "Twelve accent colors.")
}
