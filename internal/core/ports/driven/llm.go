// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "context"

// LLMService provides chat completions for the reservation assistant.
// This is an optional service - when nil, the assistant is unavailable
// while direct catalog and reservation commands keep working.
//
// Implementations may include:
//   - Together AI and OpenAI (OpenAI-compatible chat API)
//   - Anthropic (Claude)
//   - Ollama (local models)
type LLMService interface {
	// Generate produces a single-shot completion for a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// Stream produces a completion incrementally.
	// The caller must Close the returned stream.
	Stream(ctx context.Context, prompt string, opts GenerateOptions) (CompletionStream, error)

	// Chat conducts a multi-turn conversation.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompletionStream yields the fragments of a streamed completion in order.
//
//	for stream.Next() {
//		fmt.Print(stream.Current())
//	}
//	if err := stream.Err(); err != nil { ... }
type CompletionStream interface {
	// Next advances to the next fragment. It returns false at end of stream or on error.
	Next() bool

	// Current returns the fragment Next advanced to.
	Current() string

	// Err returns the error that stopped the stream, if any.
	Err() error

	// Close releases the underlying connection.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
