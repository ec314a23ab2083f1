package record

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Record keys
const (
	keyColor    = "color"
	keyTheme    = "theme"
	keyEnabled  = "enabled"
	keyGnome    = "gnome"
	keyDesktops = "desktops"
	keyFirefox  = "firefox"
	keyVSCode   = "vscode"

	versionSuffix  = "_version"
	snapshotPrefix = "old_"
)

// line is one "key: value" line of the record
type line struct {
	number int
	key    string
	value  string
}

// fields splits the value on single spaces, the way lists are written
func (l line) fields() []string {
	return strings.Fields(l.value)
}

// splitLine applies the line grammar. Lines without ": " or with an empty
// value carry nothing and are rejected.
func splitLine(raw string) (key, value string, ok bool) {
	key, value, found := strings.Cut(raw, ": ")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}

// Parse reads a record. Malformed and unknown lines are skipped; the only
// error is a failure of r itself.
func Parse(r io.Reader) (*Record, error) {
	log := logging.GetLogger("record")
	rec := New()
	p := &parser{rec: rec}

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		key, value, ok := splitLine(scanner.Text())
		if !ok {
			continue
		}
		l := line{number: n, key: key, value: value}
		if !p.apply(l) {
			log.Trace().Int("line", n).Str("key", key).Msg("Skipping unknown record line")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRecordRead, "failed to read config record")
	}

	p.finish()
	return rec, nil
}

// ParseString is Parse over a string
func ParseString(s string) (*Record, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	rec *Record

	sawDesktops bool
	legacyGnome string
	sawGnome    bool
}

// apply interprets one line, reporting whether the key was recognized
func (p *parser) apply(l line) bool {
	switch l.key {
	case keyColor:
		if a := types.Accent(l.value); a.Valid() {
			p.rec.Accent = a
		}
		return true
	case keyTheme:
		if v := types.Variant(l.value); v.Valid() {
			p.rec.Variant = v
		}
		return true
	case keyEnabled:
		for _, name := range l.fields() {
			c := normalizeEnabled(name)
			if c.Valid() {
				p.rec.Enable(c)
			}
		}
		return true
	case keyDesktops:
		p.sawDesktops = true
		for _, pair := range l.fields() {
			d, v, ok := strings.Cut(pair, "=")
			if ok && types.Desktop(d).Valid() && v != "" {
				p.rec.Desktops[types.Desktop(d)] = v
			}
		}
		return true
	case keyGnome:
		p.sawGnome = true
		p.legacyGnome = legacyGnomeVersion(l.value)
		return true
	case keyFirefox:
		if legacyFirefoxFlag(l.value) {
			p.rec.Enable(types.ComponentFirefox)
			return true
		}
		p.rec.Firefox = dedupe(l.fields())
		return true
	case keyVSCode:
		p.rec.VSCode = dedupe(l.fields())
		return true
	}

	if strings.HasSuffix(l.key, versionSuffix) {
		g := types.Group(strings.TrimSuffix(l.key, versionSuffix))
		if g.Valid() && g.Info().Versioned && len(l.value) == VersionTokenLength {
			p.rec.Versions[g] = l.value
		}
		return true
	}

	if strings.HasPrefix(l.key, snapshotPrefix) {
		c, d, ok := splitSnapshotKey(l.key)
		if ok {
			p.rec.Snapshots.Set(c, d, l.value)
		}
		return true
	}

	return false
}

// finish applies the rules that depend on more than one line
func (p *parser) finish() {
	if !p.sawDesktops && p.sawGnome && p.legacyGnome != "" {
		p.rec.Desktops[types.DesktopGnome] = p.legacyGnome
	}
}

func dedupe(in []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
