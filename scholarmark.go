// Package scholarmark is the content pipeline for a personal academic
// homepage. It loads hand-curated content (publications, profile, CV
// tables, social links) and an externally generated publication feed,
// merges the two publication sources into one validated, deduplicated,
// ordered list, and emits a normalized feed artifact for a presentation
// layer that lives outside this module.
//
// Example usage:
//
//	sm, err := scholarmark.New(scholarmark.WithPath("./content"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, pub := range sm.Publications() {
//	    fmt.Printf("%s (%s)\n", pub.Title, pub.Year)
//	}
package scholarmark

import (
	"io"

	"github.com/agentstation/utc"

	"github.com/scholarmark/scholarmark/internal/render"
	"github.com/scholarmark/scholarmark/internal/sources"
	"github.com/scholarmark/scholarmark/pkg/aggregate"
	"github.com/scholarmark/scholarmark/pkg/content"
	"github.com/scholarmark/scholarmark/pkg/errors"
)

// Scholarmark exposes the loaded, aggregated site content.
type Scholarmark interface {
	// Profile returns the site owner's profile record.
	Profile() content.Profile

	// Social returns the configured social links.
	Social() content.SocialLinks

	// Publications returns the aggregated publication list: curated and
	// generated sources merged, deduplicated, and ordered.
	Publications() []content.Publication

	// Curated returns the curated source list as loaded.
	Curated() []content.Publication

	// Generated returns the generated feed as loaded.
	Generated() *sources.GeneratedFeed

	// Education, Experience, Skills, and Teaching return the CV tables.
	Education() []content.EducationEntry
	Experience() []content.ExperienceEntry
	Skills() []content.SkillEntry
	Teaching() []content.TeachingEntry

	// Activities returns the education-activity rows for a locale, or all
	// rows when locale is empty.
	Activities(locale content.Locale) []content.ActivityEntry

	// Highlight pairs a publication's authors with owner flags.
	Highlight(pub content.Publication) []aggregate.AuthorSpan

	// WriteFeedJSON writes the render feed artifact as JSON.
	WriteFeedJSON(w io.Writer) error

	// WriteFeedYAML writes the render feed artifact as YAML.
	WriteFeedYAML(w io.Writer) error
}

// scholarmark is the internal implementation of the Scholarmark interface.
type scholarmark struct {
	config *config

	profile    content.Profile
	social     content.SocialLinks
	curated    []content.Publication
	generated  *sources.GeneratedFeed
	aggregated []content.Publication
	cv         *sources.CV
	activities []content.ActivityEntry
}

// New loads content from the configured filesystem (embedded by default)
// and aggregates the publication sources. The returned value is immutable;
// content files are read once.
func New(opts ...Option) (Scholarmark, error) {
	sm := &scholarmark{config: defaultConfig()}
	if err := sm.options(opts...); err != nil {
		return nil, errors.WrapResource("configure", "scholarmark", "", err)
	}

	if err := sm.load(); err != nil {
		return nil, err
	}

	sm.aggregated = sm.config.aggregator.Aggregate(sm.curated, sm.generated.Publications)
	return sm, nil
}

// load reads all content files from the configured filesystem.
func (sm *scholarmark) load() error {
	fsys := sm.config.fsys

	profile, social, err := sources.LoadProfile(fsys)
	if err != nil {
		return err
	}
	sm.profile = profile
	sm.social = social

	if sm.curated, err = sources.LoadCurated(fsys); err != nil {
		return err
	}
	if sm.generated, err = sources.LoadGenerated(fsys); err != nil {
		return err
	}
	if sm.cv, err = sources.LoadCV(fsys); err != nil {
		return err
	}
	if sm.activities, err = sources.LoadActivities(fsys); err != nil {
		return err
	}
	return nil
}

func (sm *scholarmark) Profile() content.Profile    { return sm.profile }
func (sm *scholarmark) Social() content.SocialLinks { return sm.social }

func (sm *scholarmark) Publications() []content.Publication {
	out := make([]content.Publication, len(sm.aggregated))
	copy(out, sm.aggregated)
	return out
}

func (sm *scholarmark) Curated() []content.Publication {
	out := make([]content.Publication, len(sm.curated))
	copy(out, sm.curated)
	return out
}

func (sm *scholarmark) Generated() *sources.GeneratedFeed {
	feed := &sources.GeneratedFeed{
		GeneratedAt:  sm.generated.GeneratedAt,
		Publications: make([]content.Publication, len(sm.generated.Publications)),
	}
	copy(feed.Publications, sm.generated.Publications)
	return feed
}

func (sm *scholarmark) Education() []content.EducationEntry   { return sm.cv.Education }
func (sm *scholarmark) Experience() []content.ExperienceEntry { return sm.cv.Experience }
func (sm *scholarmark) Skills() []content.SkillEntry          { return sm.cv.Skills }
func (sm *scholarmark) Teaching() []content.TeachingEntry     { return sm.cv.Teaching }

func (sm *scholarmark) Activities(locale content.Locale) []content.ActivityEntry {
	if locale == "" {
		out := make([]content.ActivityEntry, len(sm.activities))
		copy(out, sm.activities)
		return out
	}

	out := make([]content.ActivityEntry, 0, len(sm.activities))
	for _, entry := range sm.activities {
		if entry.Locale == locale {
			out = append(out, entry)
		}
	}
	return out
}

func (sm *scholarmark) Highlight(pub content.Publication) []aggregate.AuthorSpan {
	return aggregate.HighlightFor(pub, sm.profile)
}

// feed builds the render artifact from the loaded content.
func (sm *scholarmark) feed() *render.Feed {
	var generatedAt utc.Time
	if sm.generated != nil {
		generatedAt = sm.generated.GeneratedAt
	}

	return render.Build(render.Input{
		Profile:           sm.profile,
		Social:            sm.social,
		Publications:      sm.aggregated,
		CV:                sm.cv,
		Activities:        sm.activities,
		SourceGeneratedAt: generatedAt,
	})
}

func (sm *scholarmark) WriteFeedJSON(w io.Writer) error {
	return sm.feed().WriteJSON(w)
}

func (sm *scholarmark) WriteFeedYAML(w io.Writer) error {
	return sm.feed().WriteYAML(w)
}
