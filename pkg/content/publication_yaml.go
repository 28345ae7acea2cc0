package content

import (
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// The two publication sources do not share a shape. The curated file uses
// venue/year and a nested links mapping; the generated feed uses the legacy
// journal/time keys and flat link fields (link, github, slides). Both forms
// decode into the one canonical Publication shape here, at the boundary.

// publicationYAML is the permissive wire shape accepted from either source.
type publicationYAML struct {
	Title    string     `yaml:"title"`
	Authors  authorList `yaml:"authors"`
	Venue    string     `yaml:"venue"`
	Journal  string     `yaml:"journal"` // legacy alias for venue
	Year     Year       `yaml:"year"`
	Time     Year       `yaml:"time"` // legacy alias for year
	Links    Links      `yaml:"links"`
	Abstract string     `yaml:"abstract"`

	// Flat legacy link keys used by the generated feed.
	Link        string `yaml:"link"` // legacy alias for links.paper
	Paper       string `yaml:"paper"`
	GitHub      string `yaml:"github"`
	Webpage     string `yaml:"webpage"`
	HuggingFace string `yaml:"huggingface"`
	BibTeX      string `yaml:"bibtex"`
	Slides      string `yaml:"slides"`
}

// UnmarshalYAML decodes a publication from either source shape.
func (p *Publication) UnmarshalYAML(b []byte) error {
	var raw publicationYAML
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return err
	}

	p.Title = raw.Title
	p.Authors = raw.Authors
	p.Venue = firstNonEmpty(raw.Venue, raw.Journal)
	p.Year = raw.Year
	if p.Year == 0 {
		p.Year = raw.Time
	}
	p.Abstract = raw.Abstract

	p.Links = raw.Links
	if p.Links.Paper == "" {
		p.Links.Paper = firstNonEmpty(raw.Paper, raw.Link)
	}
	if p.Links.GitHub == "" {
		p.Links.GitHub = raw.GitHub
	}
	if p.Links.Webpage == "" {
		p.Links.Webpage = raw.Webpage
	}
	if p.Links.HuggingFace == "" {
		p.Links.HuggingFace = raw.HuggingFace
	}
	if p.Links.BibTeX == "" {
		p.Links.BibTeX = raw.BibTeX
	}
	if p.Links.Slides == "" {
		p.Links.Slides = raw.Slides
	}

	*p = p.Normalize()
	return nil
}

// authorList accepts either a YAML sequence of names or a single
// comma-joined string (the generated feed's shape).
type authorList []string

// UnmarshalYAML decodes the author list from either form.
func (a *authorList) UnmarshalYAML(b []byte) error {
	var seq []string
	if err := yaml.Unmarshal(b, &seq); err == nil {
		*a = seq
		return nil
	}

	var joined string
	if err := yaml.Unmarshal(b, &joined); err != nil {
		return err
	}

	var names []string
	for _, name := range strings.Split(joined, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	*a = names
	return nil
}

// UnmarshalYAML decodes a year from a numeric or string scalar. Values
// that carry no recognizable year degrade to 0 rather than failing.
func (y *Year) UnmarshalYAML(b []byte) error {
	var n int
	if err := yaml.Unmarshal(b, &n); err == nil {
		*y = Year(n)
		return nil
	}

	var s string
	if err := yaml.Unmarshal(b, &s); err != nil {
		*y = 0
		return nil
	}
	*y = ParseYear(s)
	return nil
}

// ParseYear extracts a year from free-form text: the whole string when it
// is numeric, otherwise the first four-digit run (handles values like
// "In press 2024"). Returns 0 when no year is found.
func ParseYear(s string) Year {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 9999 {
		return Year(n)
	}

	digits := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] >= '0' && s[i] <= '9' {
			digits++
			continue
		}
		if digits == 4 {
			n, _ := strconv.Atoi(s[i-4 : i])
			return Year(n)
		}
		digits = 0
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
