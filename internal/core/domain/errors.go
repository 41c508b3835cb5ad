package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownField indicates a reservation update named a field that cannot be changed.
	ErrUnknownField = errors.New("unknown reservation field")

	// ErrIDSpaceExhausted indicates every reservation id in the RES-10000..RES-99999 range is taken.
	ErrIDSpaceExhausted = errors.New("reservation id space exhausted")

	// Tool Errors.

	// ErrUnknownTool indicates a tool name that was never registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrMissingParameters indicates a tool call lacked required parameters.
	ErrMissingParameters = errors.New("missing required parameters")

	// ErrToolAlreadyRegistered indicates a second registration under the same name.
	ErrToolAlreadyRegistered = errors.New("tool already registered")

	// Model Errors.

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// The conversational assistant is disabled without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrUnparsableResponse indicates no JSON object could be recovered from model output.
	ErrUnparsableResponse = errors.New("could not parse response")

	// ErrRateLimited indicates the model API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
