package survey_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/survey"
)

func TestParseChoiceJustification(t *testing.T) {
	tests := []struct {
		name                  string
		input                 string
		expectedChoice        string
		expectedJustification string
	}{
		{
			name:                  "well formed reply",
			input:                 "CHOICE: Yes\nJUSTIFICATION: I walk past it every day.",
			expectedChoice:        "Yes",
			expectedJustification: "I walk past it every day.",
		},
		{
			name:                  "lowercase labels",
			input:                 "choice: No\njustification: Too expensive for my family.",
			expectedChoice:        "No",
			expectedJustification: "Too expensive for my family.",
		},
		{
			name:                  "mixed case labels",
			input:                 "Choice: Maybe\nJustification: Depends on the season.",
			expectedChoice:        "Maybe",
			expectedJustification: "Depends on the season.",
		},
		{
			name:                  "leading whitespace on lines",
			input:                 "  CHOICE: Yes\n\tJUSTIFICATION: Handy for the school run.",
			expectedChoice:        "Yes",
			expectedJustification: "Handy for the school run.",
		},
		{
			name:                  "reversed line order",
			input:                 "JUSTIFICATION: It suits my shifts.\nCHOICE: Night bus",
			expectedChoice:        "Night bus",
			expectedJustification: "It suits my shifts.",
		},
		{
			name:                  "chatter around the labels",
			input:                 "Sure, here is my answer.\nCHOICE: Park\nJUSTIFICATION: My dog needs it.\nHope that helps!",
			expectedChoice:        "Park",
			expectedJustification: "My dog needs it.",
		},
		{
			name:                  "repeated labels last wins",
			input:                 "CHOICE: Yes\nCHOICE: No\nJUSTIFICATION: First thought.\nJUSTIFICATION: On reflection, no.",
			expectedChoice:        "No",
			expectedJustification: "On reflection, no.",
		},
		{
			name:                  "no labels falls back to whole text",
			input:                 "  I would definitely pick the park.  ",
			expectedChoice:        "I would definitely pick the park.",
			expectedJustification: "",
		},
		{
			name:                  "justification only still falls back for choice",
			input:                 "JUSTIFICATION: Because it is close by.",
			expectedChoice:        "JUSTIFICATION: Because it is close by.",
			expectedJustification: "Because it is close by.",
		},
		{
			name:                  "empty input",
			input:                 "",
			expectedChoice:        "",
			expectedJustification: "",
		},
		{
			name:                  "label with empty value",
			input:                 "CHOICE:\nJUSTIFICATION: No opinion either way.",
			expectedChoice:        "",
			expectedJustification: "No opinion either way.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice, justification := survey.ParseChoiceJustification(tt.input)
			require.Equal(t, tt.expectedChoice, choice)
			require.Equal(t, tt.expectedJustification, justification)
		})
	}
}
