// Package anthropic provides an adapter for the Anthropic Messages API over
// plain HTTP. It implements the domain.Provider interface; per-call
// credential overrides replace the configured key for that request only.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/observability"
)

const apiVersion = "2023-06-01"

// Config contains Anthropic provider configuration.
type Config struct {
	APIKey    string `env:"ANTHROPIC_API_KEY"`
	BaseURL   string `env:"ANTHROPIC_BASE_URL"   envDefault:"https://api.anthropic.com/v1"`
	Timeout   int    `env:"ANTHROPIC_TIMEOUT"    envDefault:"60"`
	MaxTokens int    `env:"ANTHROPIC_MAX_TOKENS" envDefault:"1024"`
}

// Provider implements the domain.Provider interface for Anthropic.
type Provider struct {
	config     Config
	httpClient *http.Client
	name       domain.ProviderID
}

// NewProvider creates a new Anthropic provider.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}

	return &Provider{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
		name: domain.ProviderAnthropic,
	}, nil
}

// Anthropic Messages API request/response structures.
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Complete sends a completion request and returns the full response.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Anthropic API")

	apiReq := p.toAPIRequest(req)

	reqBody, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.config.BaseURL+"/messages",
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	apiKey := p.config.APIKey
	if key := req.Credentials[domain.ProviderAnthropic]; key != "" {
		apiKey = key
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Anthropic API call failed", observability.Error(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp anthropicResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&apiResp); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	logger.Debug("Anthropic API call succeeded",
		observability.Int("prompt_tokens", apiResp.Usage.InputTokens),
		observability.Int("completion_tokens", apiResp.Usage.OutputTokens),
	)

	return p.toDomainResponse(&apiResp), nil
}

// Name returns the provider identifier.
func (p *Provider) Name() domain.ProviderID {
	return p.name
}

// IsModelSupported checks if the provider supports the given model.
func (p *Provider) IsModelSupported(_ context.Context, model string) bool {
	return strings.HasPrefix(model, "claude-")
}

// toAPIRequest converts a domain request to the Messages API shape. The
// Messages API takes the system prompt as a top-level field, not a message.
func (p *Provider) toAPIRequest(req *domain.CompletionRequest) anthropicRequest {
	apiReq := anthropicRequest{
		Model:     req.Model,
		MaxTokens: p.config.MaxTokens,
		Messages:  make([]anthropicMessage, 0, len(req.Messages)),
	}

	for _, msg := range req.Messages {
		if msg.Role == "system" {
			apiReq.System = msg.Content
			continue
		}
		apiReq.Messages = append(apiReq.Messages, anthropicMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	return apiReq
}

func (p *Provider) toDomainResponse(resp *anthropicResponse) *domain.CompletionResponse {
	content := ""
	for _, block := range resp.Content {
		if block.Type == "text" {
			content = block.Text
			break
		}
	}

	return &domain.CompletionResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Provider: string(p.name),
		Content:  content,
		Usage: domain.Usage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
			Cost:             0.0, // attached by the gateway
		},
		FinishTime: time.Now(),
	}
}
