// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"context"
	"fmt"
	"io"
	"time"

	rediscache "github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/cache/redis"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/llm/anthropic"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/llm/cached"
	ollamallm "github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/llm/ollama"
	openaillm "github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/llm/openai"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/llm/ratelimited"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/storage/memory"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/services"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/logger"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// fixHint tells the user how to repair a broken model configuration.
const fixHint = "Run 'foodiespot settings set llm.api_key <key>' or set TOGETHER_API_KEY to fix"

// InitResult contains the result of AI service initialisation.
type InitResult struct {
	LLMService driven.LLMService      // Nil when no provider is configured.
	Cache      driven.CompletionCache // Completion cache in front of the model.
	Warnings   []string               // Non-fatal issues that caused fallback.
	closers    []io.Closer
}

// Close releases all resources held by InitResult.
func (r *InitResult) Close() {
	if r.LLMService != nil {
		r.LLMService.Close()
	}
	for _, c := range r.closers {
		c.Close()
	}
}

// Initialise builds the model stack from settings: the provider adapter,
// paced by a token bucket and fronted by a completion cache. A Redis cache
// that cannot be reached falls back to an in-process one with a warning.
// No network call is made to the model itself.
func Initialise(ctx context.Context, settings *domain.AppSettings) (*InitResult, error) {
	result := &InitResult{}

	result.Cache = createCache(ctx, settings.Cache, result)

	base, err := CreateLLMService(&settings.LLM)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. %s", domain.ErrLLMUnavailable, err, fixHint)
	}
	if base == nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s is not configured; the assistant is disabled. %s",
				settings.LLM.Provider.Description(), fixHint))
		return result, nil
	}

	paced := ratelimited.New(base, settings.LLM.RequestsPerSecond, ratelimited.DefaultBurst)
	result.LLMService = cached.New(paced, result.Cache, cached.Config{
		TTL:       time.Duration(settings.Cache.TTLSeconds) * time.Second,
		Cacheable: isModelJSON,
	})
	logger.Debug("LLM: %s model %s (%.1f req/s)", settings.LLM.Provider, base.ModelName(),
		settings.LLM.RequestsPerSecond)
	return result, nil
}

// isModelJSON keeps replies the assistant cannot parse out of the cache,
// so a retry of the same request reaches the model again.
func isModelJSON(completion string) bool {
	_, err := services.ParseModelJSON(completion)
	return err == nil
}

// createCache connects to Redis when configured, else returns an in-process cache.
func createCache(ctx context.Context, cfg domain.CacheSettings, result *InitResult) driven.CompletionCache {
	if cfg.RedisAddr == "" {
		return memory.NewCompletionCache()
	}
	cache, err := rediscache.NewCompletionCache(ctx, rediscache.Config{Addr: cfg.RedisAddr})
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("completion cache unavailable (%v); using in-process cache", err))
		return memory.NewCompletionCache()
	}
	result.closers = append(result.closers, cache)
	logger.Debug("Cache: redis at %s", cfg.RedisAddr)
	return cache
}

// CreateAndValidateLLMService creates an LLM service and validates connectivity.
// Returns the service if successful, or an error with guidance.
func CreateAndValidateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	svc, err := CreateLLMService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. %s", domain.ErrLLMUnavailable, err, fixHint)
	}

	if svc == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). %s", domain.ErrLLMUnavailable, err, fixHint)
	}

	return svc, nil
}

// ValidateLLMConfig validates an LLM configuration by creating a service and pinging it.
func ValidateLLMConfig(settings *domain.LLMSettings) error {
	if settings == nil || !settings.IsConfigured() {
		return nil
	}

	svc, err := CreateLLMService(settings)
	if err != nil {
		return err
	}
	if svc == nil {
		return nil
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}

// CreateLLMService creates the appropriate LLM service based on settings.
// Returns nil if the provider is not configured.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderTogether, domain.AIProviderOpenAI:
		return createOpenAICompatibleLLM(settings)

	case domain.AIProviderOllama:
		return createOllamaLLM(settings), nil

	case domain.AIProviderAnthropic:
		return createAnthropicLLM(settings)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
}

// createOpenAICompatibleLLM serves Together AI and OpenAI through the same client.
func createOpenAICompatibleLLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = domain.DefaultBaseURLs()[settings.Provider]
	}
	return openaillm.NewLLMService(openaillm.LLMConfig{
		APIKey:  settings.APIKey,
		BaseURL: baseURL,
		Model:   settings.Model,
	})
}

// createOllamaLLM creates an Ollama LLM service.
func createOllamaLLM(settings *domain.LLMSettings) driven.LLMService {
	return ollamallm.NewLLMService(ollamallm.LLMConfig{
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}

// createAnthropicLLM creates an Anthropic LLM service.
func createAnthropicLLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	return anthropic.NewLLMService(anthropic.Config{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}
