package aggregate

import (
	"strings"

	"github.com/scholarmark/scholarmark/pkg/content"
)

// AuthorSpan is one author name paired with whether it is the profile
// owner, for the renderer to style distinctly.
type AuthorSpan struct {
	Name string `json:"name" yaml:"name"`
	Self bool   `json:"self" yaml:"self"`
}

// Highlight pairs each author name with an owner flag. Matching is exact
// after trimming and case-sensitive: the ingestion job guarantees the
// feed's spelling matches the profile's configured author name.
func Highlight(authors []string, self string) []AuthorSpan {
	self = strings.TrimSpace(self)

	spans := make([]AuthorSpan, 0, len(authors))
	for _, author := range authors {
		name := strings.TrimSpace(author)
		if name == "" {
			continue
		}
		spans = append(spans, AuthorSpan{
			Name: name,
			Self: self != "" && name == self,
		})
	}
	return spans
}

// HighlightFor is a convenience over Highlight using the profile's
// configured highlight name.
func HighlightFor(p content.Publication, profile content.Profile) []AuthorSpan {
	return Highlight(p.Authors, profile.HighlightName())
}
