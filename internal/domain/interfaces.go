package domain

import (
	"context"
	"time"
)

// Provider represents any LLM provider.
type Provider interface {
	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider identifier.
	Name() ProviderID

	// IsModelSupported checks if the provider supports the given model.
	IsModelSupported(ctx context.Context, model string) bool
}

// ProviderRegistry manages available providers.
type ProviderRegistry interface {
	// Register adds a provider to the registry.
	Register(ctx context.Context, provider Provider) error

	// Get retrieves a provider by identifier.
	Get(ctx context.Context, id ProviderID) (Provider, error)

	// List returns all available provider identifiers.
	List(ctx context.Context) ([]ProviderID, error)
}

// CostCalculator calculates cost based on token usage.
type CostCalculator interface {
	// Calculate returns the total cost for a given model and usage.
	Calculate(ctx context.Context, model string, usage Usage) (float64, error)
}

// PricingRegistry maintains pricing information for models.
type PricingRegistry interface {
	// GetPricing returns pricing config for a model.
	GetPricing(ctx context.Context, model string) (PricingConfig, error)

	// RegisterPricing adds pricing for a model.
	RegisterPricing(ctx context.Context, model string, config PricingConfig) error
}

// TokenCounter counts tokens without calling a provider. Implementations
// must be deterministic for a given (model, input) pair.
type TokenCounter interface {
	// CountText counts tokens for a plain text string.
	CountText(model, text string) int

	// CountMessages counts prompt tokens for a message sequence, including
	// per-message formatting overhead.
	CountMessages(model string, messages []Message) int
}

// CompletionCache stores completed responses keyed by the exact request.
type CompletionCache interface {
	// Get returns the cached response for req, or ErrCacheMiss.
	Get(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Set stores a response for req with the given TTL.
	Set(ctx context.Context, req *CompletionRequest, resp *CompletionResponse, ttl time.Duration) error
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
