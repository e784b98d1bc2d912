package jsonx_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/jsonx"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "bare JSON object",
			input:    `{"name": "Ada", "age": 36}`,
			expected: `{"name": "Ada", "age": 36}`,
			ok:       true,
		},
		{
			name:     "bare object with surrounding whitespace",
			input:    "\n  {\"name\": \"Ada\"}  \n",
			expected: `{"name": "Ada"}`,
			ok:       true,
		},
		{
			name:     "fenced block with language tag",
			input:    "Here you go:\n```json\n{\"name\": \"Ada\"}\n```",
			expected: `{"name": "Ada"}`,
			ok:       true,
		},
		{
			name:     "fenced block without language tag",
			input:    "```\n{\"name\": \"Ada\"}\n```",
			expected: `{"name": "Ada"}`,
			ok:       true,
		},
		{
			name:     "object buried in prose",
			input:    `Sure! The persona is {"name": "Ada", "age": 36} as requested.`,
			expected: `{"name": "Ada", "age": 36}`,
			ok:       true,
		},
		{
			name:     "nested object in prose",
			input:    `Result: {"outer": {"inner": 1}} done.`,
			expected: `{"outer": {"inner": 1}}`,
			ok:       true,
		},
		{
			name:     "braces inside strings do not confuse the scan",
			input:    `Note {"text": "use {curly} braces", "n": 1} end`,
			expected: `{"text": "use {curly} braces", "n": 1}`,
			ok:       true,
		},
		{
			name:     "escaped quotes inside strings",
			input:    `{"text": "she said \"hi\" to me"}`,
			expected: `{"text": "she said \"hi\" to me"}`,
			ok:       true,
		},
		{
			name:  "no JSON at all",
			input: "I cannot produce that output, sorry.",
			ok:    false,
		},
		{
			name:  "unbalanced braces",
			input: `{"name": "Ada"`,
			ok:    false,
		},
		{
			name:  "array is not an object",
			input: `[1, 2, 3]`,
			ok:    false,
		},
		{
			name:  "empty input",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, ok := jsonx.ExtractObject(tt.input)

			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}

			require.JSONEq(t, tt.expected, string(raw))
			require.True(t, json.Valid(raw))
		})
	}
}

func TestStrategies_Order(t *testing.T) {
	strategies := jsonx.Strategies()
	require.Len(t, strategies, 3)

	// The direct tier must win for bare objects so fenced output inside a
	// string field is never re-extracted.
	input := "{\"reply\": \"use a ```json fence\"}"
	raw, ok := strategies[0](input)
	require.True(t, ok)
	require.JSONEq(t, input, string(raw))
}
