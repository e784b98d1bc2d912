package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ProviderID identifies an LLM provider family.
type ProviderID string

const (
	ProviderOpenAI    ProviderID = "openai"
	ProviderAnthropic ProviderID = "anthropic"
	ProviderGoogle    ProviderID = "google"
	ProviderEcho      ProviderID = "echo"
)

// Sentinel errors shared across the domain layer.
var (
	// ErrUnknownProvider indicates a model identifier that maps to no
	// supported provider family.
	ErrUnknownProvider = errors.New("unknown provider for model")

	// ErrMissingOptions indicates a single_select question without options.
	ErrMissingOptions = errors.New("single_select question requires options")

	// ErrCacheMiss indicates no cached entry was found.
	ErrCacheMiss = errors.New("cache miss")
)

// ProviderForModel maps a model identifier to its provider family. Unknown
// identifiers are a typed error, never a silent fall-through to ambient
// credentials.
func ProviderForModel(model string) (ProviderID, error) {
	switch {
	case strings.HasPrefix(model, "gpt-"),
		strings.HasPrefix(model, "chatgpt-"),
		strings.HasPrefix(model, "o1"),
		strings.HasPrefix(model, "o3"):
		return ProviderOpenAI, nil
	case strings.HasPrefix(model, "claude-"):
		return ProviderAnthropic, nil
	case strings.HasPrefix(model, "gemini/"),
		strings.HasPrefix(model, "gemini-"):
		return ProviderGoogle, nil
	case strings.HasPrefix(model, "echo-"):
		return ProviderEcho, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, model)
	}
}
