// Package redis implements the domain completion cache on Redis. Entries
// are keyed by a hash of the exact request (model plus messages), so only
// byte-identical prompts hit; credential overrides never participate in the
// key because they do not influence the response content.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
)

const keyPrefix = "completion:"

// Config contains Redis cache settings.
type Config struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// Enabled reports whether the cache is configured at all.
func (c Config) Enabled() bool {
	return c.Addr != ""
}

// Cache implements domain.CompletionCache on a Redis client.
type Cache struct {
	client *redis.Client
}

// New creates a new Redis-backed completion cache.
func New(cfg Config) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// Get returns the cached response for req, or domain.ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	key, err := requestKey(req)
	if err != nil {
		return nil, err
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	var resp domain.CompletionResponse
	if unmarshalErr := json.Unmarshal(data, &resp); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal cached response: %w", unmarshalErr)
	}

	return &resp, nil
}

// Set stores a response for req with the given TTL.
func (c *Cache) Set(
	ctx context.Context,
	req *domain.CompletionRequest,
	resp *domain.CompletionResponse,
	ttl time.Duration,
) error {
	if req == nil {
		return errors.New("request cannot be nil")
	}
	if resp == nil {
		return errors.New("response cannot be nil")
	}

	key, err := requestKey(req)
	if err != nil {
		return err
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if setErr := c.client.Set(ctx, key, data, ttl).Err(); setErr != nil {
		return fmt.Errorf("cache set failed: %w", setErr)
	}

	return nil
}

// requestKey hashes the cache-relevant parts of a request. Credentials are
// deliberately excluded.
func requestKey(req *domain.CompletionRequest) (string, error) {
	payload, err := json.Marshal(struct {
		Model    string           `json:"model"`
		Messages []domain.Message `json:"messages"`
	}{
		Model:    req.Model,
		Messages: req.Messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build cache key: %w", err)
	}

	sum := sha256.Sum256(payload)
	return keyPrefix + hex.EncodeToString(sum[:]), nil
}
