// Package openai provides an LLM service adapter for OpenAI-compatible chat APIs.
// Together AI, the default provider, speaks the same protocol with a different base URL.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/packages/ssestream"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultLLMModel   = "gpt-4o-mini"
	DefaultLLMTimeout = 120 * time.Second
)

// LLMConfig holds configuration for the OpenAI-compatible LLM service.
type LLMConfig struct {
	// APIKey is the provider API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Set to https://api.together.xyz/v1 for Together AI.
	BaseURL string

	// Model is the LLM model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// MaxRetries is how often the client retries transient failures (default: 0).
	MaxRetries int
}

// LLMService provides LLM operations using an OpenAI-compatible API.
type LLMService struct {
	client  openai.Client
	baseURL string
	model   string
}

// NewLLMService creates a new OpenAI-compatible LLM service.
func NewLLMService(cfg LLMConfig) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultLLMTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		option.WithMaxRetries(cfg.MaxRetries),
	}

	return &LLMService{
		client:  openai.NewClient(opts...),
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}, nil
}

// Generate produces text completion from a prompt.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	messages := []driven.ChatMessage{
		{Role: "user", Content: prompt},
	}
	return s.Chat(ctx, messages, driven.ChatOptions{
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
}

// Chat conducts a multi-turn conversation.
func (s *LLMService) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	completion, err := s.client.Chat.Completions.New(ctx, s.params(messages, opts))
	if err != nil {
		return "", wrapError(err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai: no response choices returned")
	}

	return completion.Choices[0].Message.Content, nil
}

// Stream produces a completion incrementally over server-sent events.
func (s *LLMService) Stream(ctx context.Context, prompt string, opts driven.GenerateOptions) (driven.CompletionStream, error) {
	messages := []driven.ChatMessage{
		{Role: "user", Content: prompt},
	}
	params := s.params(messages, driven.ChatOptions{
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})

	stream := s.client.Chat.Completions.NewStreaming(ctx, params)
	// Connection errors surface before the first chunk
	if err := stream.Err(); err != nil {
		stream.Close()
		return nil, wrapError(err)
	}
	return &completionStream{stream: stream}, nil
}

// params builds the chat completion request.
func (s *LLMService) params(messages []driven.ChatMessage, opts driven.ChatOptions) openai.ChatCompletionNewParams {
	chatMessages := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case "system":
			chatMessages = append(chatMessages, openai.SystemMessage(msg.Content))
		case "assistant":
			chatMessages = append(chatMessages, openai.AssistantMessage(msg.Content))
		default:
			chatMessages = append(chatMessages, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(s.model),
		Messages: chatMessages,
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}
	return params
}

// ModelName returns the name of the LLM model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by listing models.
// This is a lightweight check that validates the API key without running inference.
func (s *LLMService) Ping(ctx context.Context) error {
	if _, err := s.client.Models.List(ctx); err != nil {
		return fmt.Errorf("openai: ping %s failed: %w", s.baseURL, wrapError(err))
	}
	return nil
}

// Close releases resources.
func (s *LLMService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

// completionStream adapts the SDK's chunk stream to driven.CompletionStream.
type completionStream struct {
	stream  *ssestream.Stream[openai.ChatCompletionChunk]
	current string
}

// Next skips chunks without content, such as the role preamble and usage trailer.
func (c *completionStream) Next() bool {
	for c.stream.Next() {
		chunk := c.stream.Current()
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}
		c.current = chunk.Choices[0].Delta.Content
		return true
	}
	return false
}

func (c *completionStream) Current() string { return c.current }

func (c *completionStream) Err() error {
	if err := c.stream.Err(); err != nil {
		return wrapError(err)
	}
	return nil
}

func (c *completionStream) Close() error { return c.stream.Close() }

// wrapError maps HTTP 429 onto domain.ErrRateLimited.
func wrapError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	}
	return fmt.Errorf("openai: %w", err)
}
