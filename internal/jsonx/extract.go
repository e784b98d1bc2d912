// Package jsonx recovers JSON objects from LLM output. Models wrap JSON in
// markdown fences or surround it with prose; extraction runs an explicit
// ordered list of strategies so graceful degradation stays testable tier by
// tier instead of hiding in swallowed errors.
package jsonx

import (
	"encoding/json"
	"strings"
)

// Strategy attempts to extract a JSON object from text. It returns the raw
// object and true on success.
type Strategy func(text string) (json.RawMessage, bool)

// Strategies returns the extraction tiers in the order they are tried.
func Strategies() []Strategy {
	return []Strategy{
		directParse,
		fencedBlock,
		braceScan,
	}
}

// ExtractObject runs the strategies in order and returns the first valid
// JSON object found, or false when every tier fails.
func ExtractObject(text string) (json.RawMessage, bool) {
	for _, strategy := range Strategies() {
		if raw, ok := strategy(text); ok {
			return raw, true
		}
	}
	return nil, false
}

// directParse accepts input that is already a bare JSON object.
func directParse(text string) (json.RawMessage, bool) {
	return validateObject(strings.TrimSpace(text))
}

// fencedBlock extracts the contents of the first ``` fence, dropping an
// optional "json" language tag.
func fencedBlock(text string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.Contains(trimmed, "```") {
		return nil, false
	}

	parts := strings.Split(trimmed, "```")
	if len(parts) < 2 {
		return nil, false
	}

	inner := parts[1]
	inner = strings.TrimPrefix(inner, "json")
	return validateObject(strings.TrimSpace(inner))
}

// braceScan finds the first balanced top-level {...} span, ignoring braces
// inside JSON strings.
func braceScan(text string) (json.RawMessage, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return validateObject(text[start : i+1])
			}
		}
	}

	return nil, false
}

func validateObject(candidate string) (json.RawMessage, bool) {
	if !strings.HasPrefix(candidate, "{") {
		return nil, false
	}
	if !json.Valid([]byte(candidate)) {
		return nil, false
	}
	return json.RawMessage(candidate), true
}
