package content_test

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarmark/scholarmark/pkg/content"
)

func TestPublicationUnmarshalCuratedShape(t *testing.T) {
	src := `
title: Sparse Retrieval Augmentation for Long-Document QA
authors:
  - Daniel Oyelaran
  - Elena M. Vargas
venue: NAACL
year: "2024"
links:
  paper: https://example.org/paper
  github: https://example.org/code
abstract: Some text.
`
	var p content.Publication
	require.NoError(t, yaml.Unmarshal([]byte(src), &p))

	assert.Equal(t, "Sparse Retrieval Augmentation for Long-Document QA", p.Title)
	assert.Equal(t, []string{"Daniel Oyelaran", "Elena M. Vargas"}, p.Authors)
	assert.Equal(t, "NAACL", p.Venue)
	assert.Equal(t, content.Year(2024), p.Year)
	assert.Equal(t, "https://example.org/paper", p.Links.Paper)
	assert.Equal(t, "https://example.org/code", p.Links.GitHub)
	assert.Equal(t, "Some text.", p.Abstract)
}

func TestPublicationUnmarshalGeneratedShape(t *testing.T) {
	// The generated feed uses legacy keys: journal/time/link and
	// comma-joined authors.
	src := `
title: A Survey of Evaluation Practices
authors: Priya Natarajan, Elena M. Vargas
journal: Computational Linguistics
time: 2023
link: https://doi.org/10.1162/coli_a_00497
github: https://example.org/survey-code
`
	var p content.Publication
	require.NoError(t, yaml.Unmarshal([]byte(src), &p))

	assert.Equal(t, []string{"Priya Natarajan", "Elena M. Vargas"}, p.Authors)
	assert.Equal(t, "Computational Linguistics", p.Venue)
	assert.Equal(t, content.Year(2023), p.Year)
	assert.Equal(t, "https://doi.org/10.1162/coli_a_00497", p.Links.Paper)
	assert.Equal(t, "https://example.org/survey-code", p.Links.GitHub)
	assert.Empty(t, p.Abstract)
}

func TestPublicationUnmarshalCanonicalKeysWinOverLegacy(t *testing.T) {
	src := `
title: T
venue: ACL
journal: should lose
year: 2025
time: 1999
links:
  paper: canonical
link: legacy
`
	var p content.Publication
	require.NoError(t, yaml.Unmarshal([]byte(src), &p))

	assert.Equal(t, "ACL", p.Venue)
	assert.Equal(t, content.Year(2025), p.Year)
	assert.Equal(t, "canonical", p.Links.Paper)
}

func TestPublicationUnmarshalMissingFieldsDefault(t *testing.T) {
	var p content.Publication
	require.NoError(t, yaml.Unmarshal([]byte(`title: Only a Title`), &p))

	assert.NotNil(t, p.Authors)
	assert.Empty(t, p.Authors)
	assert.True(t, p.Year.IsZero())
	assert.True(t, p.Links.IsZero())
	assert.Empty(t, p.Abstract)
}

func TestYearUnmarshalForms(t *testing.T) {
	tests := []struct {
		src  string
		want content.Year
	}{
		{`year: 2024`, 2024},
		{`year: "2024"`, 2024},
		{`year: In press 2024`, 2024},
		{`year: ""`, 0},
		{`year: forthcoming`, 0},
	}

	for _, tt := range tests {
		var doc struct {
			Year content.Year `yaml:"year"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(tt.src), &doc), tt.src)
		assert.Equal(t, tt.want, doc.Year, tt.src)
	}
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, content.Year(2024), content.ParseYear(" 2024 "))
	assert.Equal(t, content.Year(2023), content.ParseYear("proceedings of 2023 edition"))
	assert.Equal(t, content.Year(0), content.ParseYear("12345"))
	assert.Equal(t, content.Year(0), content.ParseYear(""))
	assert.Equal(t, content.Year(0), content.ParseYear("no digits"))
}

func TestYearString(t *testing.T) {
	assert.Equal(t, "2024", content.Year(2024).String())
	assert.Equal(t, "", content.Year(0).String())
}

func TestNormalizeTrimsAndDropsEmptyAuthors(t *testing.T) {
	p := content.Publication{
		Title:   "  Padded Title ",
		Authors: []string{" A. Author ", "", "  "},
		Venue:   " ACL ",
		Links:   content.Links{Paper: " url "},
	}

	n := p.Normalize()

	assert.Equal(t, "Padded Title", n.Title)
	assert.Equal(t, []string{"A. Author"}, n.Authors)
	assert.Equal(t, "ACL", n.Venue)
	assert.Equal(t, "url", n.Links.Paper)

	// Normalize is value-form; the original is untouched.
	assert.Equal(t, "  Padded Title ", p.Title)
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, (&content.Publication{}).IsPlaceholder())
	assert.True(t, (&content.Publication{Title: "   "}).IsPlaceholder())
	assert.False(t, (&content.Publication{Title: "Real"}).IsPlaceholder())
}
