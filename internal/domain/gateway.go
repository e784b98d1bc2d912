package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/observability"
)

const fallbackDefaultModel = "gpt-4o-mini"

const cacheTTL = 1 * time.Hour

// GatewayConfig carries gateway settings injected from configuration.
type GatewayConfig struct {
	// DefaultModel is used when a request does not name a model.
	DefaultModel string
}

// GatewayService orchestrates requests to providers. It is the only
// component that talks to the network; everything else in the core is
// synchronous and offline.
type GatewayService struct {
	cfg            GatewayConfig
	registry       ProviderRegistry
	costCalculator CostCalculator
	cache          CompletionCache
}

// NewGatewayService creates a new gateway service (DI constructor).
func NewGatewayService(
	cfg GatewayConfig,
	registry ProviderRegistry,
	costCalculator CostCalculator,
	cache CompletionCache,
) *GatewayService {
	return &GatewayService{
		cfg:            cfg,
		registry:       registry,
		costCalculator: costCalculator,
		cache:          cache,
	}
}

// ResolveModel applies the default-model fallback chain to a requested model.
func (g *GatewayService) ResolveModel(model string) string {
	if model != "" {
		return model
	}
	if g.cfg.DefaultModel != "" {
		return g.cfg.DefaultModel
	}
	return fallbackDefaultModel
}

// Complete handles a completion request: resolves the model to a provider
// family, executes the call, and attaches exact usage and computed cost.
//
// Credential overrides in the request are used for this call only and are
// never written to process-global state. Provider failures surface as
// errors; no retry happens at this layer.
func (g *GatewayService) Complete(
	ctx context.Context,
	req *CompletionRequest,
) (*CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if len(req.Messages) == 0 {
		return nil, errors.New("request must contain at least one message")
	}

	model := g.ResolveModel(req.Model)
	logger := observability.FromContext(ctx)

	providerID, err := ProviderForModel(model)
	if err != nil {
		return nil, fmt.Errorf("provider routing failed: %w", err)
	}

	provider, err := g.registry.Get(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}

	// Copy so the resolved model never leaks back into the caller's request.
	resolved := *req
	resolved.Model = model

	if g.cache != nil {
		cached, cacheErr := g.cache.Get(ctx, &resolved)
		if cacheErr != nil && !errors.Is(cacheErr, ErrCacheMiss) {
			logger.Warn("cache get failed, continuing without cache",
				observability.Error(cacheErr))
		}
		if cached != nil {
			logger.Debug("cache hit",
				observability.String("model", model))
			return cached, nil
		}
	}

	response, err := provider.Complete(ctx, &resolved)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	// Cost is attached in the domain layer so every provider shares one
	// pricing table. Unpriced models degrade to zero cost: the response
	// itself is still valid.
	cost, costErr := g.costCalculator.Calculate(ctx, response.Model, response.Usage)
	if costErr != nil {
		logger.Warn("cost calculation failed, recording zero cost",
			observability.String("model", response.Model),
			observability.Error(costErr))
		cost = 0
	}
	response.Usage.Cost = cost

	if g.cache != nil {
		if setErr := g.cache.Set(ctx, &resolved, response, cacheTTL); setErr != nil {
			logger.Warn("failed to store in cache",
				observability.Error(setErr))
		}
	}

	return response, nil
}
