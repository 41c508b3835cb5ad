// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ReservationStore: Reservation snapshot persistence (JSON file, SQLite, memory)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Chat completions. Without it, the conversational assistant is disabled.
//   - PromptStore: Customisable prompt templates. Without it, embedded defaults are used.
//   - CompletionCache: Reuse of low-temperature completions.
//   - EventPublisher: Reservation lifecycle events. Without it, nothing is published.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
