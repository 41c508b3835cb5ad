// Package ratelimited paces calls to an LLM service with a token bucket.
package ratelimited

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// DefaultBurst is the bucket size used when the caller passes none.
const DefaultBurst = 2

// LLMService waits for a token before every model request.
// Ping and Close pass straight through.
type LLMService struct {
	inner   driven.LLMService
	limiter *rate.Limiter
}

// New wraps inner. A non-positive requestsPerSecond disables pacing.
func New(inner driven.LLMService, requestsPerSecond float64, burst int) *LLMService {
	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &LLMService{
		inner:   inner,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Generate waits for a token, then delegates.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	return s.inner.Generate(ctx, prompt, opts)
}

// Stream waits for a token, then delegates.
func (s *LLMService) Stream(ctx context.Context, prompt string, opts driven.GenerateOptions) (driven.CompletionStream, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.Stream(ctx, prompt, opts)
}

// Chat waits for a token, then delegates.
func (s *LLMService) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	return s.inner.Chat(ctx, messages, opts)
}

// ModelName returns the wrapped model name.
func (s *LLMService) ModelName() string { return s.inner.ModelName() }

// Ping is not rate limited.
func (s *LLMService) Ping(ctx context.Context) error { return s.inner.Ping(ctx) }

// Close closes the wrapped service.
func (s *LLMService) Close() error { return s.inner.Close() }

func (s *LLMService) wait(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for model rate limit: %w", err)
	}
	return nil
}
