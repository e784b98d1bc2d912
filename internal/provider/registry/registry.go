package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
)

// Registry implements the ProviderRegistry interface.
type Registry struct {
	mu        sync.RWMutex
	providers map[domain.ProviderID]domain.Provider
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:        sync.RWMutex{},
		providers: make(map[domain.ProviderID]domain.Provider),
	}
}

// Register adds a provider to the registry.
func (r *Registry) Register(_ context.Context, provider domain.Provider) error {
	if provider == nil {
		return errors.New("provider cannot be nil")
	}

	id := provider.Name()
	if id == "" {
		return errors.New("provider name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[id]; exists {
		return fmt.Errorf("provider %s already registered", id)
	}

	r.providers[id] = provider
	return nil
}

// Get retrieves a provider by identifier.
func (r *Registry) Get(_ context.Context, id domain.ProviderID) (domain.Provider, error) {
	if id == "" {
		return nil, errors.New("provider id cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[id]
	if !exists {
		return nil, fmt.Errorf("provider %s not found", id)
	}

	return provider, nil
}

// List returns all available provider identifiers.
func (r *Registry) List(_ context.Context) ([]domain.ProviderID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]domain.ProviderID, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}

	return ids, nil
}
