package llm

import (
	"context"
	"fmt"

	"github.com/lshigami/edulink/config"
	"github.com/rs/zerolog/log"
)

// NewProvider builds the configured provider. It returns a nil Provider and
// no error when the active key is missing or a placeholder; callers then
// serve deterministic mock content.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	if !config.HasCredential(cfg.ActiveLLMKey()) {
		log.Warn().Str("provider", cfg.LLM.Provider).Msg("No valid LLM API key configured, content generation runs in mock mode")
		return nil, nil
	}

	var (
		p   Provider
		err error
	)
	switch cfg.LLM.Provider {
	case "groq", "":
		p, err = NewGroqProvider(cfg.LLM.GroqApiKey, cfg.LLM.GroqModel)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.LLM.GeminiApiKey, cfg.LLM.GeminiModel)
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.LLM.AnthropicApiKey, cfg.LLM.AnthropicModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Str("provider", cfg.LLM.Provider).Str("model", p.ModelID()).Msg("LLM provider initialized")
	return WithLogging(p), nil
}
