package domain

const unknownDescription = "Unknown"

// AIProvider identifies a chat completion provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderTogether is Together AI's OpenAI-compatible API.
	AIProviderTogether AIProvider = "together"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderTogether, AIProviderOpenAI, AIProviderOllama, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p != AIProviderOllama
}

// IsOpenAICompatible returns true if the provider speaks the OpenAI chat API.
func (p AIProvider) IsOpenAICompatible() bool {
	return p == AIProviderTogether || p == AIProviderOpenAI
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderTogether:
		return "Together AI (cloud)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL overrides the provider endpoint.
	BaseURL string

	// APIKey is the API key (for cloud providers).
	APIKey string

	// RequestsPerSecond paces model calls. Zero disables pacing.
	RequestsPerSecond float64
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// StorageBackend selects where reservations are persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageJSON mirrors reservations to a JSON file.
	StorageJSON StorageBackend = "json"

	// StorageSQLite keeps reservations in a SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps reservations in process memory only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageJSON, StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend is the persistence backend.
	Backend StorageBackend

	// DataDir holds the reservation file or database.
	// Empty means the application's home directory.
	DataDir string
}

// CacheSettings configures the completion cache.
type CacheSettings struct {
	// RedisAddr is host:port of a Redis server. Empty uses an in-process cache.
	RedisAddr string

	// TTLSeconds bounds how long a cached completion is reused.
	TTLSeconds int
}

// EventSettings configures reservation event publishing.
type EventSettings struct {
	// AMQPURL is the RabbitMQ connection URL. Empty disables publishing.
	AMQPURL string
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	// Addr is the listen address.
	Addr string
}

// AppSettings holds all application settings.
type AppSettings struct {
	LLM     LLMSettings
	Storage StorageSettings
	Cache   CacheSettings
	Events  EventSettings
	Server  ServerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The API key is left empty and must come from the environment or settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Provider:          AIProviderTogether,
			Model:             DefaultLLMModels()[AIProviderTogether],
			RequestsPerSecond: 2,
		},
		Storage: StorageSettings{
			Backend: StorageJSON,
		},
		Cache: CacheSettings{
			TTLSeconds: 300,
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
	}
}

// AllLLMProviders returns providers that support chat completions.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderTogether,
		AIProviderOpenAI,
		AIProviderOllama,
		AIProviderAnthropic,
	}
}

// DefaultLLMModels returns default models for each LLM provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderTogether:  "meta-llama/Meta-Llama-3.1-8B-Instruct-Turbo",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderOllama:    "llama3.2",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}

// DefaultBaseURLs returns the API endpoint of each provider.
func DefaultBaseURLs() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderTogether:  "https://api.together.xyz/v1",
		AIProviderOpenAI:    "https://api.openai.com/v1",
		AIProviderOllama:    "http://localhost:11434",
		AIProviderAnthropic: "https://api.anthropic.com",
	}
}
