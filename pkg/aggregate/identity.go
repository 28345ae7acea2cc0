package aggregate

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/scholarmark/scholarmark/pkg/content"
)

// Key is a publication's identity for deduplication across sources: the
// normalized title plus the canonical year. Identical keys collapse to one
// record.
type Key string

// folder performs Unicode case folding, the locale-independent form of
// case-insensitive matching. Titles come from multiple scrapers with
// inconsistent casing.
var folder = cases.Fold()

// KeyOf builds the identity key for a publication.
func KeyOf(p content.Publication) Key {
	return NewKey(p.Title, p.Year)
}

// NewKey builds an identity key from a raw title and year. The title is
// trimmed, inner whitespace is collapsed, and case is folded.
func NewKey(title string, year content.Year) Key {
	normalized := strings.Join(strings.Fields(title), " ")
	return Key(folder.String(normalized) + "|" + year.String())
}
