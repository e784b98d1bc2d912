// Package catalog holds the static provider/model registry and answers
// which models are currently usable given credential presence. It is a data
// table plus lookups; it never talks to any provider.
package catalog

import (
	"os"

	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
)

// Model is one selectable model.
type Model struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Entry groups a provider family's models with the credential that unlocks
// them. CredentialID is set only for families that accept per-call key
// overrides; the rest are env-only.
type Entry struct {
	Provider     string
	EnvKey       string
	CredentialID domain.ProviderID
	Models       []Model
}

// AvailableModel is a model the current credentials can reach.
type AvailableModel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// Entries returns the full provider/model table.
//
//nolint:funlen // static data table
func Entries() []Entry {
	return []Entry{
		{
			Provider:     "OpenAI",
			EnvKey:       "OPENAI_API_KEY",
			CredentialID: domain.ProviderOpenAI,
			Models: []Model{
				{ID: "gpt-4o", Name: "GPT-4o"},
				{ID: "gpt-4o-mini", Name: "GPT-4o Mini"},
				{ID: "gpt-4-turbo", Name: "GPT-4 Turbo"},
				{ID: "gpt-4", Name: "GPT-4"},
				{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo"},
				{ID: "o1", Name: "o1"},
			},
		},
		{
			Provider:     "Anthropic",
			EnvKey:       "ANTHROPIC_API_KEY",
			CredentialID: domain.ProviderAnthropic,
			Models: []Model{
				{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4"},
				{ID: "claude-opus-4-20250514", Name: "Claude Opus 4"},
				{ID: "claude-3-7-sonnet-20250219", Name: "Claude 3.7 Sonnet"},
				{ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku"},
				{ID: "claude-3-haiku-20240307", Name: "Claude 3 Haiku"},
			},
		},
		{
			Provider:     "Google",
			EnvKey:       "GEMINI_API_KEY",
			CredentialID: domain.ProviderGoogle,
			Models: []Model{
				{ID: "gemini/gemini-2.0-flash", Name: "Gemini 2.0 Flash"},
				{ID: "gemini/gemini-2.0-flash-lite", Name: "Gemini 2.0 Flash Lite"},
				{ID: "gemini/gemini-1.5-pro", Name: "Gemini 1.5 Pro"},
				{ID: "gemini/gemini-1.5-flash", Name: "Gemini 1.5 Flash"},
			},
		},
		{
			Provider: "Mistral",
			EnvKey:   "MISTRAL_API_KEY",
			Models: []Model{
				{ID: "mistral/mistral-large-latest", Name: "Mistral Large"},
				{ID: "mistral/mistral-medium-latest", Name: "Mistral Medium"},
				{ID: "mistral/mistral-small-latest", Name: "Mistral Small"},
			},
		},
		{
			Provider: "Groq",
			EnvKey:   "GROQ_API_KEY",
			Models: []Model{
				{ID: "groq/llama-3.3-70b-versatile", Name: "Llama 3.3 70B"},
				{ID: "groq/llama-3.1-8b-instant", Name: "Llama 3.1 8B"},
			},
		},
		{
			Provider: "DeepSeek",
			EnvKey:   "DEEPSEEK_API_KEY",
			Models: []Model{
				{ID: "deepseek/deepseek-chat", Name: "DeepSeek Chat"},
				{ID: "deepseek/deepseek-reasoner", Name: "DeepSeek Reasoner"},
			},
		},
	}
}

// Available returns the models reachable with the supplied per-call
// credentials, falling back to environment variables. Credentials are only
// read, never stored.
func Available(credentials domain.Credentials) []AvailableModel {
	available := make([]AvailableModel, 0)

	for _, entry := range Entries() {
		hasKey := false
		if entry.CredentialID != "" && credentials[entry.CredentialID] != "" {
			hasKey = true
		}
		if !hasKey {
			hasKey = os.Getenv(entry.EnvKey) != ""
		}
		if !hasKey {
			continue
		}

		for _, model := range entry.Models {
			available = append(available, AvailableModel{
				ID:       model.ID,
				Name:     model.Name,
				Provider: entry.Provider,
			})
		}
	}

	return available
}
