package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scholarmark/scholarmark/pkg/aggregate"
)

func TestByFieldOrdersByPriority(t *testing.T) {
	fields := aggregate.ByField("Abstract", aggregate.DefaultAuthorities())

	assert.Len(t, fields, 2)
	assert.Equal(t, aggregate.SourceCurated, fields[0].Source)
	assert.Equal(t, aggregate.SourceGenerated, fields[1].Source)
	assert.Greater(t, fields[0].Priority, fields[1].Priority)
}

func TestByFieldMatchesLinkWildcard(t *testing.T) {
	fields := aggregate.ByField("Links.HuggingFace", aggregate.DefaultAuthorities())

	assert.Len(t, fields, 2)
	assert.Equal(t, "Links.*", fields[0].Path)
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		fieldPath string
		pattern   string
		want      bool
	}{
		{"Title", "Title", true},
		{"Title", "title", false},
		{"Links.GitHub", "Links.*", true},
		{"Links", "Links.*", false},
		{"Anything", "*", true},
		{"Links.GitHub", "Venue", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, aggregate.MatchesPattern(tt.fieldPath, tt.pattern),
			"MatchesPattern(%q, %q)", tt.fieldPath, tt.pattern)
	}
}

func TestKeyNormalization(t *testing.T) {
	a := aggregate.NewKey("  Cross-Lingual   Transfer  ", 2025)
	b := aggregate.NewKey("cross-lingual transfer", 2025)
	c := aggregate.NewKey("cross-lingual transfer", 2024)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
