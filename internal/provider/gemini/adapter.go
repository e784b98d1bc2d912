// Package gemini provides an adapter for the Google Generative Language API
// over plain HTTP. Model identifiers use the "gemini/<model>" catalog form;
// the prefix is stripped before the API call.
package gemini

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

	"github.com/google/uuid"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/observability"
)

const catalogPrefix = "gemini/"

// Config contains Gemini provider configuration.
type Config struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	BaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout int    `env:"GEMINI_TIMEOUT"  envDefault:"60"`
}

// Provider implements the domain.Provider interface for Gemini.
type Provider struct {
	config     Config
	httpClient *http.Client
	name       domain.ProviderID
}

// NewProvider creates a new Gemini provider.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	return &Provider{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
		name: domain.ProviderGoogle,
	}, nil
}

// Generative Language API request/response structures.
type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// Complete sends a completion request and returns the full response.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Gemini API")

	apiReq := toAPIRequest(req)

	reqBody, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	apiKey := p.config.APIKey
	if key := req.Credentials[domain.ProviderGoogle]; key != "" {
		apiKey = key
	}

	apiModel := strings.TrimPrefix(req.Model, catalogPrefix)
	url := fmt.Sprintf("%s/models/%s:generateContent", p.config.BaseURL, apiModel)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Gemini API call failed", observability.Error(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp geminiResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&apiResp); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	logger.Debug("Gemini API call succeeded",
		observability.Int("prompt_tokens", apiResp.UsageMetadata.PromptTokenCount),
		observability.Int("completion_tokens", apiResp.UsageMetadata.CandidatesTokenCount),
	)

	return p.toDomainResponse(req.Model, &apiResp), nil
}

// Name returns the provider identifier.
func (p *Provider) Name() domain.ProviderID {
	return p.name
}

// IsModelSupported checks if the provider supports the given model.
func (p *Provider) IsModelSupported(_ context.Context, model string) bool {
	return strings.HasPrefix(model, catalogPrefix) || strings.HasPrefix(model, "gemini-")
}

func toAPIRequest(req *domain.CompletionRequest) geminiRequest {
	apiReq := geminiRequest{
		SystemInstruction: nil,
		Contents:          make([]geminiContent, 0, len(req.Messages)),
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			apiReq.SystemInstruction = &geminiContent{
				Parts: []geminiPart{{Text: msg.Content}},
			}
		case "assistant":
			apiReq.Contents = append(apiReq.Contents, geminiContent{
				Role:  "model",
				Parts: []geminiPart{{Text: msg.Content}},
			})
		default:
			apiReq.Contents = append(apiReq.Contents, geminiContent{
				Role:  "user",
				Parts: []geminiPart{{Text: msg.Content}},
			})
		}
	}

	return apiReq
}

func (p *Provider) toDomainResponse(model string, resp *geminiResponse) *domain.CompletionResponse {
	content := ""
	if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 {
		content = resp.Candidates[0].Content.Parts[0].Text
	}

	return &domain.CompletionResponse{
		ID:       "gemini-" + uuid.New().String(),
		Model:    model,
		Provider: string(p.name),
		Content:  content,
		Usage: domain.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
			Cost:             0.0, // attached by the gateway
		},
		FinishTime: time.Now(),
	}
}
