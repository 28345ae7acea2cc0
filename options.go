package scholarmark

import (
	"io/fs"
	"os"

	"github.com/scholarmark/scholarmark/internal/embedded"
	"github.com/scholarmark/scholarmark/pkg/aggregate"
	"github.com/scholarmark/scholarmark/pkg/errors"
)

// Option is a function that configures a Scholarmark instance.
type Option func(*config) error

// config holds construction-time configuration.
type config struct {
	fsys       fs.FS
	aggregator *aggregate.Aggregator
}

// defaultConfig uses the embedded content directory and the default
// aggregation authorities.
func defaultConfig() *config {
	return &config{
		fsys:       embedded.FS(),
		aggregator: aggregate.New(),
	}
}

// options applies the given options to the instance config.
func (sm *scholarmark) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(sm.config); err != nil {
			return err
		}
	}
	return nil
}

// WithPath configures a content directory on disk instead of the embedded
// content.
func WithPath(path string) Option {
	return func(c *config) error {
		if _, err := os.Stat(path); err != nil {
			return errors.WrapIO("stat", path, err)
		}
		c.fsys = os.DirFS(path)
		return nil
	}
}

// WithFS configures an arbitrary filesystem as the content source.
func WithFS(fsys fs.FS) Option {
	return func(c *config) error {
		if fsys == nil {
			return errors.NewValidationError("fsys", nil, "filesystem must not be nil")
		}
		c.fsys = fsys
		return nil
	}
}

// WithEmbedded configures the embedded starter content explicitly.
func WithEmbedded() Option {
	return func(c *config) error {
		c.fsys = embedded.FS()
		return nil
	}
}

// WithAggregator overrides the publication aggregator, e.g. to change
// field authorities.
func WithAggregator(agg *aggregate.Aggregator) Option {
	return func(c *config) error {
		if agg == nil {
			return errors.NewValidationError("aggregator", nil, "aggregator must not be nil")
		}
		c.aggregator = agg
		return nil
	}
}
