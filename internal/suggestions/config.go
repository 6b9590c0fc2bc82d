// Package suggestions provides the gateway that forwards a CV document
// snapshot to an external text-generation provider and relays its advice.
package suggestions

// Provider defaults. The endpoint is OpenAI-compatible; any base URL that
// speaks the chat-completions protocol works.
const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
)

// Config holds the provider settings for the suggestion gateway. It is an
// explicit object handed to the constructor, not ambient environment
// lookups, so the gateway stays mockable in isolation.
type Config struct {
	APIKey       string
	Organization string
	BaseURL      string
	Model        string
	Temperature  float64
	MaxTokens    int
}

// DefaultConfig returns the default provider configuration. The API key
// and organization must still be supplied by the caller.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// withDefaults fills unset fields from the defaults.
func (c *Config) withDefaults() *Config {
	out := *c
	if out.BaseURL == "" {
		out.BaseURL = DefaultBaseURL
	}
	if out.Model == "" {
		out.Model = DefaultModel
	}
	if out.Temperature == 0 {
		out.Temperature = DefaultTemperature
	}
	if out.MaxTokens == 0 {
		out.MaxTokens = DefaultMaxTokens
	}
	return &out
}
