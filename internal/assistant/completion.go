// Package assistant implements the AI-assisted conversational layer: intent
// extraction, response generation and the external text-completion providers
// both depend on.
package assistant

import (
	"context"
	"errors"

	"github.com/vetfinder-hk/vetfinder/internal/observability"
)

// Provider identifies an external text-completion provider.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// ErrNotConfigured indicates that no credential is present for the requested
// provider.
var ErrNotConfigured = errors.New("completion provider not configured")

// Completer is the external text-completion capability. Implementations are
// fallible and swappable; callers must treat every error as non-fatal.
type Completer interface {
	// Complete sends prompt with a system instruction and returns the raw
	// completion text.
	Complete(ctx context.Context, prompt, systemInstruction string) (string, error)
	// Provider identifies the backing provider.
	Provider() Provider
}

// ProviderCredentials holds the credentials and settings for the supported
// providers. Empty API keys mean the provider is not configured.
type ProviderCredentials struct {
	OpenAI OpenAIConfig
	Gemini GeminiConfig
}

// SelectCompleter applies the first-available-credential policy: OpenAI when
// its key is present, otherwise Gemini, otherwise nil. A nil Completer puts
// the whole conversational layer into its deterministic fallback mode.
func SelectCompleter(creds ProviderCredentials, logger *observability.Logger) Completer {
	if creds.OpenAI.APIKey != "" {
		c, err := NewOpenAIClient(creds.OpenAI)
		if err != nil {
			logger.Warn().Err(err).Msg("OpenAI client rejected configuration")
			return nil
		}
		logger.Info().Str("provider", string(ProviderOpenAI)).Msg("Completion provider selected")
		return c
	}
	if creds.Gemini.APIKey != "" {
		c, err := NewGeminiClient(creds.Gemini)
		if err != nil {
			logger.Warn().Err(err).Msg("Gemini client rejected configuration")
			return nil
		}
		logger.Info().Str("provider", string(ProviderGemini)).Msg("Completion provider selected")
		return c
	}
	logger.Info().Msg("No completion provider configured, assistant runs in fallback mode")
	return nil
}
