package record

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/spf13/afero"
)

// Store persists a Record at a fixed path
type Store struct {
	fs         afero.Fs
	path       string
	legacyPath string
}

// NewStore creates a store for the record at path. legacyPath is where
// older installers kept it; it may be empty.
func NewStore(fs afero.Fs, path, legacyPath string) *Store {
	return &Store{fs: fs, path: path, legacyPath: legacyPath}
}

// Path returns the record location
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a record file is present
func (s *Store) Exists() (bool, error) {
	info, err := s.fs.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrRecordRead, "failed to stat %s", s.path)
	}
	if info.IsDir() {
		return false, errors.Newf(errors.ErrRecordIsDir, "config record %s is a directory", s.path).
			WithDetail("path", s.path)
	}
	return true, nil
}

// Load reads the record. A missing file yields an empty record and
// found=false.
func (s *Store) Load() (rec *Record, found bool, err error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrRecordRead, "failed to open %s", s.path)
	}
	defer func() { _ = f.Close() }()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, false, errors.Newf(errors.ErrRecordIsDir, "config record %s is a directory", s.path).
			WithDetail("path", s.path)
	}

	rec, err = Parse(f)
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// Save replaces the record on disk. The new content is written next to the
// record first; the old file is then removed and the new one moved into
// place. A directory at the record path is an error, never removed.
func (s *Store) Save(rec *Record) error {
	log := logging.GetLogger("record")

	if info, err := s.fs.Stat(s.path); err == nil && info.IsDir() {
		return errors.Newf(errors.ErrRecordIsDir, "config record %s is a directory", s.path).
			WithDetail("path", s.path)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrRecordWrite, "failed to create %s", filepath.Dir(s.path))
	}

	tmp := s.path + ".new"
	if err := afero.WriteFile(s.fs, tmp, Marshal(rec), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrRecordWrite, "failed to write %s", tmp)
	}

	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrRecordWrite, "failed to remove %s", s.path)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return errors.Wrapf(err, errors.ErrRecordWrite, "failed to move record into %s", s.path)
	}

	log.Debug().Str("path", s.path).Msg("Config record saved")
	return nil
}

// Remove deletes the record file if present
func (s *Store) Remove() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrRecordWrite, "failed to remove %s", s.path)
	}
	return nil
}

// MigrateLegacy moves a record from the legacy location to the current
// one when only the legacy file exists. It reports whether a move
// happened.
func (s *Store) MigrateLegacy() (bool, error) {
	if s.legacyPath == "" || s.legacyPath == s.path {
		return false, nil
	}
	legacy, err := s.fs.Stat(s.legacyPath)
	if err != nil || legacy.IsDir() {
		return false, nil
	}
	if _, err := s.fs.Stat(s.path); err == nil {
		return false, nil
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrRecordWrite, "failed to create %s", filepath.Dir(s.path))
	}
	if err := s.fs.Rename(s.legacyPath, s.path); err != nil {
		// Rename fails across file systems; fall back to copy and remove.
		data, readErr := afero.ReadFile(s.fs, s.legacyPath)
		if readErr != nil {
			return false, errors.Wrapf(readErr, errors.ErrRecordRead, "failed to read %s", s.legacyPath)
		}
		if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
			return false, errors.Wrapf(err, errors.ErrRecordWrite, "failed to write %s", s.path)
		}
		_ = s.fs.Remove(s.legacyPath)
	}

	log := logging.GetLogger("record")
	log.Info().
		Str("from", s.legacyPath).
		Str("to", s.path).
		Msg("Moved config record to new location")
	return true, nil
}
