// Package aggregate merges the two publication sources - the hand-curated
// list and the externally generated feed - into one validated, deduplicated,
// ordered list for the rendering layer.
//
// The merge is a pure function of its inputs. Malformed records are skipped,
// never fatal: one bad record must not abort rendering of the whole page.
// Conflicts resolve deterministically through field authorities, with the
// curated source outranking the generated one on every field and non-empty
// values always beating empty ones.
package aggregate

import (
	"sort"

	"github.com/scholarmark/scholarmark/pkg/content"
	"github.com/scholarmark/scholarmark/pkg/logging"
)

// Aggregator merges publication sources under a set of field authorities.
// The zero value is not usable; call New.
type Aggregator struct {
	authorities []Field
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithAuthorities overrides the default field authorities.
func WithAuthorities(authorities []Field) Option {
	return func(a *Aggregator) {
		a.authorities = authorities
	}
}

// New creates an Aggregator with the default authorities unless overridden.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{authorities: DefaultAuthorities()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate merges the curated and generated publication lists using the
// default authorities. See Aggregator.Aggregate.
func Aggregate(curated, generated []content.Publication) []content.Publication {
	return New().Aggregate(curated, generated)
}

// Aggregate produces a single ordered publication list:
//
//   - Placeholder records (empty title) are excluded, logged at debug level.
//   - Records sharing an identity key merge field-by-field under the
//     authorities, preferring non-empty values and curated over generated.
//   - Output is stable-sorted by year descending; ties keep input order,
//     curated before generated. Records with unknown years sort last.
//
// Every output record carries concrete values for every field; the result
// contains no duplicate identity keys and no empty titles.
func (a *Aggregator) Aggregate(curated, generated []content.Publication) []content.Publication {
	type entry struct {
		sources map[Source]content.Publication
	}

	var order []Key
	byKey := make(map[Key]*entry)

	collect := func(source Source, pubs []content.Publication) {
		for _, pub := range pubs {
			pub = pub.Normalize()
			if pub.IsPlaceholder() {
				logging.Debug().
					Str("source", string(source)).
					Str("venue", pub.Venue).
					Msg("Skipping publication with empty title")
				continue
			}

			key := KeyOf(pub)
			e, ok := byKey[key]
			if !ok {
				e = &entry{sources: make(map[Source]content.Publication, 2)}
				byKey[key] = e
				order = append(order, key)
			}

			if existing, dup := e.sources[source]; dup {
				// Same key twice in one source: earlier entry wins on
				// conflict, later one fills empties.
				e.sources[source] = a.mergePair(existing, pub)
				continue
			}
			e.sources[source] = pub
		}
	}

	collect(SourceCurated, curated)
	collect(SourceGenerated, generated)

	merged := make([]content.Publication, 0, len(order))
	for _, key := range order {
		merged = append(merged, a.merge(byKey[key].sources))
	}

	// Stable sort keeps input order within a year, curated first.
	// Year zero (unknown) is the smallest value and lands at the end.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Year > merged[j].Year
	})

	return merged
}

// merge resolves one publication from its per-source values using the
// field authorities.
func (a *Aggregator) merge(sources map[Source]content.Publication) content.Publication {
	var out content.Publication

	out.Title = a.resolve("Title", stringValues(sources, func(p content.Publication) string { return p.Title }))
	out.Venue = a.resolve("Venue", stringValues(sources, func(p content.Publication) string { return p.Venue }))
	out.Abstract = a.resolve("Abstract", stringValues(sources, func(p content.Publication) string { return p.Abstract }))

	out.Links.Paper = a.resolve("Links.Paper", stringValues(sources, func(p content.Publication) string { return p.Links.Paper }))
	out.Links.GitHub = a.resolve("Links.GitHub", stringValues(sources, func(p content.Publication) string { return p.Links.GitHub }))
	out.Links.Webpage = a.resolve("Links.Webpage", stringValues(sources, func(p content.Publication) string { return p.Links.Webpage }))
	out.Links.HuggingFace = a.resolve("Links.HuggingFace", stringValues(sources, func(p content.Publication) string { return p.Links.HuggingFace }))
	out.Links.BibTeX = a.resolve("Links.BibTeX", stringValues(sources, func(p content.Publication) string { return p.Links.BibTeX }))
	out.Links.Slides = a.resolve("Links.Slides", stringValues(sources, func(p content.Publication) string { return p.Links.Slides }))

	// Year is part of the identity key, so all sources here agree on it.
	for _, p := range sources {
		out.Year = p.Year
		break
	}
	out.Authors = a.resolveAuthors(sources)

	return out
}

// mergePair merges two same-source records into one, first record
// authoritative.
func (a *Aggregator) mergePair(first, second content.Publication) content.Publication {
	return a.merge(map[Source]content.Publication{
		SourceCurated:   first,
		SourceGenerated: second,
	})
}

// resolve picks the value for a field from per-source candidates: the
// highest-priority authority whose source holds a non-empty value wins.
func (a *Aggregator) resolve(fieldPath string, values map[Source]string) string {
	for _, authority := range ByField(fieldPath, a.authorities) {
		if value, ok := values[authority.Source]; ok && value != "" {
			return value
		}
	}
	return ""
}

// resolveAuthors picks the author list from the highest-priority source
// that has one. Always returns a non-nil slice.
func (a *Aggregator) resolveAuthors(sources map[Source]content.Publication) []string {
	for _, authority := range ByField("Authors", a.authorities) {
		if p, ok := sources[authority.Source]; ok && len(p.Authors) > 0 {
			return p.Authors
		}
	}
	return []string{}
}

// stringValues projects one string field out of the per-source records.
func stringValues(sources map[Source]content.Publication, get func(content.Publication) string) map[Source]string {
	values := make(map[Source]string, len(sources))
	for source, p := range sources {
		values[source] = get(p)
	}
	return values
}
