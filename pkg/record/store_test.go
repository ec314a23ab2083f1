// pkg/record/store_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test loading, replacing and migrating the record file

package record_test

import (
	"testing"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	recordPath = "/home/u/.config/qualia/config"
	legacyPath = "/repo/.config"
)

func TestLoadMissingFile(t *testing.T) {
	s := record.NewStore(afero.NewMemMapFs(), recordPath, legacyPath)

	rec, found, err := s.Load()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, rec.Enabled)

	exists, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSaveAndLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := record.NewStore(fs, recordPath, legacyPath)
	rec := sampleRecord()

	require.NoError(t, s.Save(rec))
	first, err := afero.ReadFile(fs, recordPath)
	require.NoError(t, err)

	loaded, found, err := s.Load()
	require.NoError(t, err)
	assert.True(t, found)
	require.NoError(t, s.Save(loaded))

	second, err := afero.ReadFile(fs, recordPath)
	require.NoError(t, err)
	assert.Equal(t, first, second, "rewriting a loaded record is byte identical")

	exists, err := afero.Exists(fs, recordPath+".new")
	require.NoError(t, err)
	assert.False(t, exists, "no temporary file is left behind")
}

func TestSaveReplacesExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := record.NewStore(fs, recordPath, "")
	require.NoError(t, afero.WriteFile(fs, recordPath, []byte("color: red\nstale: line\n"), 0644))

	rec := record.New()
	rec.Accent = types.AccentPink
	require.NoError(t, s.Save(rec))

	data, err := afero.ReadFile(fs, recordPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "color: pink")
	assert.NotContains(t, string(data), "stale")
}

func TestSaveFailsOnDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(recordPath, 0755))
	s := record.NewStore(fs, recordPath, "")

	err := s.Save(record.New())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRecordIsDir))

	isDir, err := afero.IsDir(fs, recordPath)
	require.NoError(t, err)
	assert.True(t, isDir, "the directory is left alone")

	_, _, err = s.Load()
	assert.True(t, errors.IsErrorCode(err, errors.ErrRecordIsDir))
}

func TestMigrateLegacy(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, legacyPath, []byte("color: olive\n"), 0644))
	s := record.NewStore(fs, recordPath, legacyPath)

	moved, err := s.MigrateLegacy()
	require.NoError(t, err)
	assert.True(t, moved)

	rec, found, err := s.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, types.AccentOlive, rec.Accent)

	legacyExists, _ := afero.Exists(fs, legacyPath)
	assert.False(t, legacyExists)
}

func TestMigrateLegacyKeepsCurrent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, legacyPath, []byte("color: olive\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, recordPath, []byte("color: red\n"), 0644))
	s := record.NewStore(fs, recordPath, legacyPath)

	moved, err := s.MigrateLegacy()
	require.NoError(t, err)
	assert.False(t, moved)

	rec, _, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, types.AccentRed, rec.Accent)
}

func TestRemove(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := record.NewStore(fs, recordPath, "")
	require.NoError(t, s.Remove(), "removing a missing record is fine")
	require.NoError(t, s.Save(record.New()))
	require.NoError(t, s.Remove())
	exists, _ := afero.Exists(fs, recordPath)
	assert.False(t, exists)
}
