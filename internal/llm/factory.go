package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/railz/internal/store"
)

// ErrNotConfigured means no provider could be resolved from the environment.
var ErrNotConfigured = errors.New("no LLM provider configured: set RAILZ_LLM_PROVIDER or export an API key")

// NewProviderFromEnv resolves provider configuration from the environment:
// RAILZ_LLM_PROVIDER when set, otherwise the first standard API key found
// (ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY, OPENROUTER_API_KEY).
// Pass a nil eventRepo to skip request logging.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	var cfg Config
	if os.Getenv("RAILZ_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
		// RAILZ_-prefixed keys win; the standard vars still count.
		if cfg.Anthropic.APIKey == "" {
			cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if cfg.OpenAI.APIKey == "" {
			cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.Gemini.APIKey == "" {
			cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		if cfg.OpenRouter.APIKey == "" {
			cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
		}
	} else {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, ErrNotConfigured
		}
		cfg = discovered
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}
