package aggregate

import (
	"path/filepath"
	"sort"
)

// Source identifies which publication list a value came from.
type Source string

// The two publication sources.
const (
	// SourceCurated is the hand-authored list. Curation is authoritative.
	SourceCurated Source = "curated"

	// SourceGenerated is the externally produced, timestamped feed.
	SourceGenerated Source = "generated"
)

// Field defines source priority for a specific publication field.
type Field struct {
	Path     string `json:"path" yaml:"path"`         // e.g. "Abstract", "Links.GitHub"
	Source   Source `json:"source" yaml:"source"`     // Which source is authoritative
	Priority int    `json:"priority" yaml:"priority"` // Priority (higher = more authoritative)
}

// DefaultAuthorities returns the standard field authorities for
// publications: the curated list outranks the generated feed on every
// field, and the generated feed fills in whatever curation left empty.
func DefaultAuthorities() []Field {
	return []Field{
		// Core identity and display text - curation is authoritative
		{Path: "Title", Source: SourceCurated, Priority: 100},
		{Path: "Title", Source: SourceGenerated, Priority: 50},
		{Path: "Authors", Source: SourceCurated, Priority: 100},
		{Path: "Authors", Source: SourceGenerated, Priority: 50},
		{Path: "Venue", Source: SourceCurated, Priority: 100},
		{Path: "Venue", Source: SourceGenerated, Priority: 50},

		// Abstracts - the generated feed rarely has them, but when it does
		// and curation does not, it wins by the non-empty rule
		{Path: "Abstract", Source: SourceCurated, Priority: 100},
		{Path: "Abstract", Source: SourceGenerated, Priority: 50},

		// Links - merged kind-by-kind
		{Path: "Links.*", Source: SourceCurated, Priority: 100},
		{Path: "Links.*", Source: SourceGenerated, Priority: 50},
	}
}

// ByField returns the authorities matching a field path, highest priority
// first. Ties prefer the more specific (longer) pattern.
func ByField(fieldPath string, authorities []Field) []Field {
	var matching []Field
	for _, auth := range authorities {
		if MatchesPattern(fieldPath, auth.Path) {
			matching = append(matching, auth)
		}
	}

	sort.SliceStable(matching, func(i, j int) bool {
		if matching[i].Priority != matching[j].Priority {
			return matching[i].Priority > matching[j].Priority
		}
		return len(matching[i].Path) > len(matching[j].Path)
	})
	return matching
}

// MatchesPattern checks if a field path matches a pattern (supports *
// wildcards).
func MatchesPattern(fieldPath, pattern string) bool {
	if fieldPath == pattern {
		return true
	}

	// Simple wildcard at the end
	if len(pattern) > 0 && pattern[len(pattern)-1] == '*' {
		prefix := pattern[:len(pattern)-1]
		return len(fieldPath) >= len(prefix) && fieldPath[:len(prefix)] == prefix
	}

	matched, err := filepath.Match(pattern, fieldPath)
	if err != nil {
		return false
	}
	return matched
}
