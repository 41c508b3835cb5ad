// Package cached memoises low-temperature model calls in a completion cache.
//
// Intent classification and parameter extraction run at temperature 0.2, so a
// repeated question yields the same JSON and can skip the round trip. Higher
// temperatures and streams always reach the model.
package cached

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/logger"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultTTL            = 5 * time.Minute
	DefaultMaxTemperature = 0.3
)

// Config controls what is cached.
type Config struct {
	// TTL is how long a completion stays cached (default: 5m).
	TTL time.Duration

	// MaxTemperature is the highest temperature that is cached (default: 0.3).
	MaxTemperature float64

	// Cacheable reports whether a completion may be stored. Nil stores all.
	Cacheable func(completion string) bool
}

// LLMService serves repeated deterministic calls from cache.
type LLMService struct {
	inner driven.LLMService
	cache driven.CompletionCache
	cfg   Config
}

// New wraps inner with cache.
func New(inner driven.LLMService, cache driven.CompletionCache, cfg Config) *LLMService {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxTemperature <= 0 {
		cfg.MaxTemperature = DefaultMaxTemperature
	}
	return &LLMService{inner: inner, cache: cache, cfg: cfg}
}

// Generate returns a cached completion when one exists for the same request.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if opts.Temperature > s.cfg.MaxTemperature {
		return s.inner.Generate(ctx, prompt, opts)
	}
	key := s.key("generate", opts.MaxTokens, opts.Temperature, prompt)
	return s.cached(ctx, key, func() (string, error) {
		return s.inner.Generate(ctx, prompt, opts)
	})
}

// Stream is never cached.
func (s *LLMService) Stream(ctx context.Context, prompt string, opts driven.GenerateOptions) (driven.CompletionStream, error) {
	return s.inner.Stream(ctx, prompt, opts)
}

// Chat returns a cached completion when one exists for the same conversation.
func (s *LLMService) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	if opts.Temperature > s.cfg.MaxTemperature {
		return s.inner.Chat(ctx, messages, opts)
	}
	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		parts = append(parts, msg.Role+"\x00"+msg.Content)
	}
	key := s.key("chat", opts.MaxTokens, opts.Temperature, strings.Join(parts, "\x1e"))
	return s.cached(ctx, key, func() (string, error) {
		return s.inner.Chat(ctx, messages, opts)
	})
}

// ModelName returns the wrapped model name.
func (s *LLMService) ModelName() string { return s.inner.ModelName() }

// Ping checks the wrapped service.
func (s *LLMService) Ping(ctx context.Context) error { return s.inner.Ping(ctx) }

// Close closes the wrapped service.
func (s *LLMService) Close() error { return s.inner.Close() }

// cached consults the cache around call. Cache failures are logged and
// never fail the request.
func (s *LLMService) cached(ctx context.Context, key string, call func() (string, error)) (string, error) {
	if value, ok, err := s.cache.Get(ctx, key); err != nil {
		logger.Warn("completion cache read failed: %v", err)
	} else if ok {
		logger.Debug("completion cache hit %s", key[:12])
		return value, nil
	}

	value, err := call()
	if err != nil {
		return "", err
	}
	if s.cfg.Cacheable != nil && !s.cfg.Cacheable(value) {
		logger.Debug("completion not cached %s", key[:12])
		return value, nil
	}

	if err := s.cache.Set(ctx, key, value, s.cfg.TTL); err != nil {
		logger.Warn("completion cache write failed: %v", err)
	}
	return value, nil
}

// key fingerprints a request together with the model that serves it.
func (s *LLMService) key(kind string, maxTokens int, temperature float64, body string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%d\x00%s\x00", kind, s.inner.ModelName(), maxTokens,
		strconv.FormatFloat(temperature, 'f', -1, 64))
	h.Write([]byte(body))
	return hex.EncodeToString(h.Sum(nil))
}
