package configs

import "time"

// LLM configures the external language model used for ad-text moderation
// and generation. The endpoint must speak the OpenAI-compatible
// chat-completions protocol.
type LLM struct {
	// APIKey authenticates against the provider.
	APIKey string `env:"API_KEY" envDefault:""`
	// BaseURL is the provider endpoint.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.together.xyz"`
	// Model is the chat model identifier.
	Model string `env:"MODEL" envDefault:"meta-llama/Meta-Llama-3.1-8B-Instruct-Turbo-128K"`
	// Timeout bounds one moderation or generation call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
