package persona_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/persona"
)

func TestMatchOccupationCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "exact match", input: "Nurse/Nursing", expected: "Nurse/Nursing"},
		{name: "fuzzy match when model adds prose", input: "I would say Retail/Sales fits best", expected: "Retail/Sales"},
		{name: "fuzzy match on partial category", input: "Software", expected: "Software/Engineering"},
		{name: "case insensitive fuzzy match", input: "software/engineering", expected: "Software/Engineering"},
		{name: "unknown category becomes Other", input: "Professional Dog Whisperer Category", expected: "Other"},
		{name: "empty input becomes Other", input: "", expected: "Other"},
		{name: "whitespace only becomes Other", input: "   ", expected: "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, persona.MatchOccupationCategory(tt.input))
		})
	}
}
