package sources_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarmark/scholarmark/internal/sources"
	"github.com/scholarmark/scholarmark/pkg/content"
	"github.com/scholarmark/scholarmark/pkg/errors"
)

func contentFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

func TestLoadCurated(t *testing.T) {
	fsys := contentFS(map[string]string{
		"publications.yaml": `
publications:
  - title: First Paper
    venue: ACL
    year: 2025
  - title: Second Paper
    venue: EMNLP
    year: "2024"
`,
	})

	pubs, err := sources.LoadCurated(fsys)
	require.NoError(t, err)
	require.Len(t, pubs, 2)
	assert.Equal(t, "First Paper", pubs[0].Title)
	assert.Equal(t, content.Year(2024), pubs[1].Year)
}

func TestLoadCuratedMissingIsError(t *testing.T) {
	_, err := sources.LoadCurated(contentFS(nil))

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadCuratedMalformedIsParseError(t *testing.T) {
	fsys := contentFS(map[string]string{
		"publications.yaml": "publications: [unterminated",
	})

	_, err := sources.LoadCurated(fsys)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestLoadCuratedEmptyFileGivesEmptySlice(t *testing.T) {
	fsys := contentFS(map[string]string{
		"publications.yaml": "publications: []",
	})

	pubs, err := sources.LoadCurated(fsys)
	require.NoError(t, err)
	assert.NotNil(t, pubs)
	assert.Empty(t, pubs)
}

func TestLoadGenerated(t *testing.T) {
	fsys := contentFS(map[string]string{
		"publications.generated.yaml": `
generated_at: 2025-06-14T03:12:09Z
publications:
  - title: Feed Paper
    authors: A. Author, B. Author
    journal: LREC
    time: "2022"
    link: https://example.org/paper
`,
	})

	feed, err := sources.LoadGenerated(fsys)
	require.NoError(t, err)
	require.Len(t, feed.Publications, 1)
	assert.False(t, feed.GeneratedAt.IsZero())
	assert.Equal(t, "LREC", feed.Publications[0].Venue)
	assert.Equal(t, content.Year(2022), feed.Publications[0].Year)
	assert.Equal(t, "https://example.org/paper", feed.Publications[0].Links.Paper)
	assert.Equal(t, []string{"A. Author", "B. Author"}, feed.Publications[0].Authors)
}

func TestLoadGeneratedMissingDegradesToEmpty(t *testing.T) {
	feed, err := sources.LoadGenerated(contentFS(nil))

	require.NoError(t, err)
	assert.NotNil(t, feed.Publications)
	assert.Empty(t, feed.Publications)
	assert.True(t, feed.GeneratedAt.IsZero())
}

func TestLoadProfile(t *testing.T) {
	fsys := contentFS(map[string]string{
		"profile.yaml": `
name: Elena Vargas
author_name: Elena M. Vargas
title: Assistant Professor
institute: Universidad de los Andes
research_areas:
  - NLP
social:
  github: https://github.com/evargas-nlp
  twitter: ""
`,
	})

	profile, social, err := sources.LoadProfile(fsys)
	require.NoError(t, err)
	assert.Equal(t, "Elena Vargas", profile.Name)
	assert.Equal(t, "Elena M. Vargas", profile.HighlightName())
	assert.Equal(t, []string{"NLP"}, profile.ResearchAreas)
	assert.Equal(t, "https://github.com/evargas-nlp", social.GitHub)
	assert.Empty(t, social.Twitter)
}

func TestLoadProfileMissingIsError(t *testing.T) {
	_, _, err := sources.LoadProfile(contentFS(nil))

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadCVMissingDegradesToEmptyTables(t *testing.T) {
	cv, err := sources.LoadCV(contentFS(nil))

	require.NoError(t, err)
	assert.NotNil(t, cv.Education)
	assert.NotNil(t, cv.Experience)
	assert.NotNil(t, cv.Skills)
	assert.NotNil(t, cv.Teaching)
}

func TestLoadCV(t *testing.T) {
	fsys := contentFS(map[string]string{
		"cv.yaml": `
education:
  - degree: Ph.D. in Computer Science
    institution: University of Minnesota
    years: 2017 - 2022
skills:
  - category: Languages
    items: [Spanish, English]
`,
	})

	cv, err := sources.LoadCV(fsys)
	require.NoError(t, err)
	require.Len(t, cv.Education, 1)
	assert.Equal(t, "Ph.D. in Computer Science", cv.Education[0].Degree)
	require.Len(t, cv.Skills, 1)
	assert.Equal(t, []string{"Spanish", "English"}, cv.Skills[0].Items)
	assert.Empty(t, cv.Teaching)
}

func TestLoadActivitiesMapsLocales(t *testing.T) {
	fsys := contentFS(map[string]string{
		"activities.yaml": `
activities:
  - institution: University of Minnesota
    description: Invited lectures
  - institutionES: Universidad Nacional
    descriptionES: Taller de PLN
`,
	})

	activities, err := sources.LoadActivities(fsys)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, content.LocaleEN, activities[0].Locale)
	assert.Equal(t, content.LocaleES, activities[1].Locale)
}
