// Package content defines the record types for scholarmark content: the
// publication entity at the center of the system plus the passive
// configuration records (profile, social links, education, CV tables).
//
// All types follow one contract: after ingest every field holds a concrete
// value. Slices are never nil, strings are never "missing", and a zero
// Year means "unknown". Consumers never branch on field presence.
package content

import (
	"strconv"
	"strings"
)

// Publication represents one academic paper's metadata as rendered on the
// page. The same shape is used for both the hand-curated list and the
// externally generated feed.
type Publication struct {
	// Title is the paper title. A publication with an empty title is a
	// placeholder and is filtered out before rendering.
	Title string `json:"title" yaml:"title"`

	// Authors lists author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Venue is the conference or journal name.
	Venue string `json:"venue" yaml:"venue"`

	// Year is the publication year, 0 when unknown.
	Year Year `json:"year" yaml:"year"`

	// Links holds the fixed set of link kinds. Any subset may be empty.
	Links Links `json:"links" yaml:"links"`

	// Abstract is optional long-form text. Empty when the source omits it.
	Abstract string `json:"abstract" yaml:"abstract"`
}

// Year is a publication year. Sources mix numeric and string forms;
// both normalize to this canonical integer representation at ingest.
// The zero value means the year is unknown.
type Year int

// String returns the year in display form, empty when unknown.
func (y Year) String() string {
	if y == 0 {
		return ""
	}
	return strconv.Itoa(int(y))
}

// IsZero reports whether the year is unknown.
func (y Year) IsZero() bool {
	return y == 0
}

// Links holds the fixed set of link kinds a publication may carry.
// Absent kinds are empty strings, never missing keys.
type Links struct {
	Paper       string `json:"paper" yaml:"paper"`
	GitHub      string `json:"github" yaml:"github"`
	Webpage     string `json:"webpage" yaml:"webpage"`
	HuggingFace string `json:"huggingface" yaml:"huggingface"`
	BibTeX      string `json:"bibtex" yaml:"bibtex"`
	Slides      string `json:"slides" yaml:"slides"`
}

// IsZero reports whether no link kind is set.
func (l Links) IsZero() bool {
	return l == Links{}
}

// IsPlaceholder reports whether the publication is template scaffolding
// rather than a real record: the title is empty or whitespace-only.
func (p *Publication) IsPlaceholder() bool {
	return strings.TrimSpace(p.Title) == ""
}

// Normalize trims field whitespace, drops empty author entries, and
// guarantees a non-nil Authors slice. It returns the receiver's value
// form so it can be used in expression position.
func (p Publication) Normalize() Publication {
	p.Title = strings.TrimSpace(p.Title)
	p.Venue = strings.TrimSpace(p.Venue)
	p.Abstract = strings.TrimSpace(p.Abstract)

	authors := make([]string, 0, len(p.Authors))
	for _, a := range p.Authors {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	p.Authors = authors

	p.Links.Paper = strings.TrimSpace(p.Links.Paper)
	p.Links.GitHub = strings.TrimSpace(p.Links.GitHub)
	p.Links.Webpage = strings.TrimSpace(p.Links.Webpage)
	p.Links.HuggingFace = strings.TrimSpace(p.Links.HuggingFace)
	p.Links.BibTeX = strings.TrimSpace(p.Links.BibTeX)
	p.Links.Slides = strings.TrimSpace(p.Links.Slides)

	return p
}
