// Package sources loads scholarmark content files from a filesystem.
// It is the input boundary: every loader returns records already pushed
// through the canonical shapes in pkg/content, so loose wire forms never
// propagate past this package.
package sources

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/scholarmark/scholarmark/pkg/errors"
)

// Content file names within a content directory.
const (
	// CuratedFile is the hand-authored publication list. Required.
	CuratedFile = "publications.yaml"

	// GeneratedFile is the externally produced publication feed. Optional.
	GeneratedFile = "publications.generated.yaml"

	// ProfileFile holds the profile record and social links. Required.
	ProfileFile = "profile.yaml"

	// CVFile holds the education/experience/skills/teaching tables. Optional.
	CVFile = "cv.yaml"

	// ActivitiesFile holds the locale-tagged activity table. Optional.
	ActivitiesFile = "activities.yaml"
)

// readYAML reads and decodes one YAML content file.
func readYAML(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.WrapIO("read", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.WrapParse("yaml", name, err)
	}
	return nil
}

// notExist reports whether err stems from a missing file.
func notExist(err error) bool {
	var ioErr *errors.IOError
	if errors.As(err, &ioErr) {
		return errors.Is(ioErr.Err, fs.ErrNotExist)
	}
	return errors.Is(err, fs.ErrNotExist)
}
