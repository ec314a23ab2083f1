package settings

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/beevik/etree"
	"github.com/spf13/afero"
)

// XfconfFile reads properties straight from the per-channel XML files
// xfconfd persists, for hosts where the xfconf-query client is missing.
// It is read only.
type XfconfFile struct {
	fs  afero.Fs
	dir string
}

// NewXfconfFile reads channels from dir, usually
// ~/.config/xfce4/xfconf/xfce-perchannel-xml
func NewXfconfFile(fs afero.Fs, dir string) *XfconfFile {
	return &XfconfFile{fs: fs, dir: dir}
}

// DefaultXfconfDir returns the per-channel XML directory under home
func DefaultXfconfDir(home string) string {
	return filepath.Join(home, ".config", "xfce4", "xfconf", "xfce-perchannel-xml")
}

func (x *XfconfFile) Name() string { return "xfconf channel files" }

func (x *XfconfFile) Available() bool {
	info, err := x.fs.Stat(x.dir)
	return err == nil && info.IsDir()
}

func (x *XfconfFile) channelPath(channel string) string {
	return filepath.Join(x.dir, channel+".xml")
}

// Get returns the value of a property path such as /Net/ThemeName.
// A missing channel file or property yields ErrNotFound.
func (x *XfconfFile) Get(_ context.Context, key Key) (string, error) {
	path := x.channelPath(key.Namespace)
	f, err := x.fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrNotFound, "channel %s not found", key.Namespace).
				WithDetail("path", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to open channel %s", key.Namespace)
	}
	defer func() { _ = f.Close() }()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(f); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to parse channel %s", key.Namespace).
			WithDetail("path", path)
	}

	el := doc.SelectElement("channel")
	if el == nil {
		return "", errors.Newf(errors.ErrFileAccess, "channel file %s has no channel element", path)
	}
	for _, segment := range strings.Split(strings.Trim(key.Name, "/"), "/") {
		el = childProperty(el, segment)
		if el == nil {
			return "", errors.Newf(errors.ErrNotFound, "property %s not set", key.Name).
				WithDetail("channel", key.Namespace)
		}
	}
	return el.SelectAttrValue("value", ""), nil
}

// Set always fails. Writes need xfconfd, which only the client talks to.
func (x *XfconfFile) Set(_ context.Context, key Key, _ string) error {
	return errors.Newf(errors.ErrStoreUnavailable, "can't write %s with %s", key, x.Name()).
		WithDetail("store", x.Name())
}

func childProperty(parent *etree.Element, name string) *etree.Element {
	for _, child := range parent.SelectElements("property") {
		if child.SelectAttrValue("name", "") == name {
			return child
		}
	}
	return nil
}
