package sources

import (
	"io/fs"

	"github.com/agentstation/utc"

	"github.com/scholarmark/scholarmark/pkg/content"
	"github.com/scholarmark/scholarmark/pkg/errors"
	"github.com/scholarmark/scholarmark/pkg/logging"
)

// curatedDocument is the on-disk shape of the curated publication list.
type curatedDocument struct {
	Publications []content.Publication `yaml:"publications"`
}

// GeneratedFeed is the externally produced publication feed. The
// generation timestamp is provenance for debugging only; no logic
// consumes it.
type GeneratedFeed struct {
	GeneratedAt  utc.Time              `json:"generated_at" yaml:"generated_at"`
	Publications []content.Publication `json:"publications" yaml:"publications"`
}

// LoadCurated loads the hand-authored publication list. The file is
// required; a missing file is an error.
func LoadCurated(fsys fs.FS) ([]content.Publication, error) {
	var doc curatedDocument
	if err := readYAML(fsys, CuratedFile, &doc); err != nil {
		if notExist(err) {
			return nil, errors.NewNotFoundError("content file", CuratedFile)
		}
		return nil, errors.WrapResource("load", "publications", CuratedFile, err)
	}

	if doc.Publications == nil {
		doc.Publications = []content.Publication{}
	}

	logging.Debug().
		Int("count", len(doc.Publications)).
		Str("file", CuratedFile).
		Msg("Loaded curated publications")
	return doc.Publications, nil
}

// LoadGenerated loads the generated publication feed. The file is
// optional: a missing feed degrades to an empty one, since the external
// ingestion job may not have run yet.
func LoadGenerated(fsys fs.FS) (*GeneratedFeed, error) {
	var feed GeneratedFeed
	if err := readYAML(fsys, GeneratedFile, &feed); err != nil {
		if notExist(err) {
			logging.Debug().
				Str("file", GeneratedFile).
				Msg("No generated feed, continuing with curated publications only")
			return &GeneratedFeed{Publications: []content.Publication{}}, nil
		}
		return nil, errors.WrapResource("load", "publications", GeneratedFile, err)
	}

	if feed.Publications == nil {
		feed.Publications = []content.Publication{}
	}

	logging.Debug().
		Int("count", len(feed.Publications)).
		Str("generated_at", feed.GeneratedAt.String()).
		Msg("Loaded generated publication feed")
	return &feed, nil
}
