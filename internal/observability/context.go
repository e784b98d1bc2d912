package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDKey holds the unique request identifier.
	RequestIDKey contextKey = "request_id"

	// ProviderKey holds the provider name for this request.
	ProviderKey contextKey = "provider"

	// ModelKey holds the model name for this request.
	ModelKey contextKey = "model"

	// PersonaIDKey holds the persona being surveyed.
	PersonaIDKey contextKey = "persona_id"

	// SurveyIDKey holds the survey being executed.
	SurveyIDKey contextKey = "survey_id"
)

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithProvider injects provider name into context.
func WithProvider(ctx context.Context, provider string) context.Context {
	return context.WithValue(ctx, ProviderKey, provider)
}

// WithModel injects model name into context.
func WithModel(ctx context.Context, model string) context.Context {
	return context.WithValue(ctx, ModelKey, model)
}

// WithPersonaID injects persona ID into context.
func WithPersonaID(ctx context.Context, personaID string) context.Context {
	return context.WithValue(ctx, PersonaIDKey, personaID)
}

// WithSurveyID injects survey ID into context.
func WithSurveyID(ctx context.Context, surveyID string) context.Context {
	return context.WithValue(ctx, SurveyIDKey, surveyID)
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetProvider extracts provider name from context.
func GetProvider(ctx context.Context) string {
	if provider, ok := ctx.Value(ProviderKey).(string); ok {
		return provider
	}
	return ""
}

// GetModel extracts model name from context.
func GetModel(ctx context.Context) string {
	if model, ok := ctx.Value(ModelKey).(string); ok {
		return model
	}
	return ""
}

// GetPersonaID extracts persona ID from context.
func GetPersonaID(ctx context.Context) string {
	if personaID, ok := ctx.Value(PersonaIDKey).(string); ok {
		return personaID
	}
	return ""
}

// GetSurveyID extracts survey ID from context.
func GetSurveyID(ctx context.Context) string {
	if surveyID, ok := ctx.Value(SurveyIDKey).(string); ok {
		return surveyID
	}
	return ""
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}
