package openai

// Config contains OpenAI provider configuration. Each field maps onto an SDK
// client option at construction time; the API key can additionally be
// overridden per call through request credentials.
type Config struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL"`
	Timeout    int    `env:"OPENAI_TIMEOUT"     envDefault:"60"`
	MaxRetries int    `env:"OPENAI_MAX_RETRIES" envDefault:"3"`
}
