package config

import (
	"fmt"
	"os"

	"github.com/jonathan/tailorcv/internal/llm"
)

// API key environment variables per provider
const (
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
)

// APIKeyEnvVar returns the environment variable holding the API key for a
// provider
func APIKeyEnvVar(provider llm.Provider) string {
	switch provider {
	case llm.ProviderAnthropic:
		return EnvAnthropicAPIKey
	default:
		return EnvGeminiAPIKey
	}
}

// ResolveAPIKey returns the API key for a provider. An explicitly supplied
// key wins; otherwise the provider's environment variable is consulted.
func ResolveAPIKey(provider llm.Provider, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	envVar := APIKeyEnvVar(provider)
	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("no API key for provider %s: pass --api-key or set %s", provider, envVar)
}
