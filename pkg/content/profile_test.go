package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scholarmark/scholarmark/pkg/content"
)

func TestProfileHighlightName(t *testing.T) {
	p := content.Profile{Name: "Elena Vargas", AuthorName: "Elena M. Vargas"}
	assert.Equal(t, "Elena M. Vargas", p.HighlightName())

	p.AuthorName = "  "
	assert.Equal(t, "Elena Vargas", p.HighlightName())
}

func TestProfileNormalize(t *testing.T) {
	p := content.Profile{
		Name:          " Elena Vargas ",
		ResearchAreas: []string{" NLP ", "", "Scholarly documents"},
	}

	n := p.Normalize()

	assert.Equal(t, "Elena Vargas", n.Name)
	assert.Equal(t, []string{"NLP", "Scholarly documents"}, n.ResearchAreas)
	assert.NotNil(t, content.Profile{}.Normalize().ResearchAreas)
}

func TestSocialLinksVisibleSkipsEmpty(t *testing.T) {
	s := content.SocialLinks{
		GitHub:  "https://github.com/evargas-nlp",
		Scholar: "  ",
		Twitter: "",
		Website: " https://vargas.example.org ",
	}

	visible := s.Visible()

	assert.Equal(t, []content.SocialLink{
		{Platform: "github", URL: "https://github.com/evargas-nlp"},
		{Platform: "website", URL: "https://vargas.example.org"},
	}, visible)
}

func TestSocialLinksVisibleEmptyConfig(t *testing.T) {
	visible := content.SocialLinks{}.Visible()
	assert.NotNil(t, visible)
	assert.Empty(t, visible)
}
