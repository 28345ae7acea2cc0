// Package render builds the feed artifact handed to the presentation
// layer: one fully-normalized document carrying everything the page
// renders. The renderer itself (routing, theming, CSS) is out of scope;
// this artifact is the entire contract with it.
package render

import (
	"encoding/json"
	"io"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"

	"github.com/scholarmark/scholarmark/internal/sources"
	"github.com/scholarmark/scholarmark/pkg/aggregate"
	"github.com/scholarmark/scholarmark/pkg/content"
	"github.com/scholarmark/scholarmark/pkg/errors"
)

// Publication is one aggregated publication plus its precomputed author
// spans, so the renderer styles the owner without re-matching names.
type Publication struct {
	content.Publication `yaml:",inline"`

	AuthorSpans []aggregate.AuthorSpan `json:"author_spans" yaml:"author_spans"`
}

// Feed is the single render artifact. Every field holds a concrete value;
// hidden configuration (empty social links) is already filtered out.
type Feed struct {
	// BuiltAt is when this artifact was produced.
	BuiltAt utc.Time `json:"built_at" yaml:"built_at"`

	// SourceGeneratedAt is the generated feed's provenance stamp, zero
	// when no generated feed was present.
	SourceGeneratedAt utc.Time `json:"source_generated_at" yaml:"source_generated_at"`

	Profile      content.Profile           `json:"profile" yaml:"profile"`
	Social       []content.SocialLink      `json:"social" yaml:"social"`
	Publications []Publication             `json:"publications" yaml:"publications"`
	Education    []content.EducationEntry  `json:"education" yaml:"education"`
	Experience   []content.ExperienceEntry `json:"experience" yaml:"experience"`
	Skills       []content.SkillEntry      `json:"skills" yaml:"skills"`
	Teaching     []content.TeachingEntry   `json:"teaching" yaml:"teaching"`
	Activities   []content.ActivityEntry   `json:"activities" yaml:"activities"`
}

// Input carries the loaded and aggregated content a Feed is built from.
type Input struct {
	Profile           content.Profile
	Social            content.SocialLinks
	Publications      []content.Publication // already aggregated
	CV                *sources.CV
	Activities        []content.ActivityEntry
	SourceGeneratedAt utc.Time
}

// Build assembles the feed artifact from aggregated content.
func Build(in Input) *Feed {
	feed := &Feed{
		BuiltAt:           utc.Now(),
		SourceGeneratedAt: in.SourceGeneratedAt,
		Profile:           in.Profile,
		Social:            in.Social.Visible(),
		Publications:      make([]Publication, 0, len(in.Publications)),
		Activities:        in.Activities,
	}

	self := in.Profile.HighlightName()
	for _, pub := range in.Publications {
		feed.Publications = append(feed.Publications, Publication{
			Publication: pub,
			AuthorSpans: aggregate.Highlight(pub.Authors, self),
		})
	}

	if in.CV != nil {
		feed.Education = in.CV.Education
		feed.Experience = in.CV.Experience
		feed.Skills = in.CV.Skills
		feed.Teaching = in.CV.Teaching
	}

	if feed.Activities == nil {
		feed.Activities = []content.ActivityEntry{}
	}
	if feed.Education == nil {
		feed.Education = []content.EducationEntry{}
	}
	if feed.Experience == nil {
		feed.Experience = []content.ExperienceEntry{}
	}
	if feed.Skills == nil {
		feed.Skills = []content.SkillEntry{}
	}
	if feed.Teaching == nil {
		feed.Teaching = []content.TeachingEntry{}
	}

	return feed
}

// WriteJSON writes the feed as indented JSON, the renderer contract.
func (f *Feed) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(f); err != nil {
		return errors.WrapResource("render", "feed", "json", err)
	}
	return nil
}

// WriteYAML writes the feed as YAML, for inspection and diffing.
func (f *Feed) WriteYAML(w io.Writer) error {
	data, err := yaml.MarshalWithOptions(f,
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return errors.WrapResource("render", "feed", "yaml", err)
	}
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", "feed", err)
	}
	return nil
}
