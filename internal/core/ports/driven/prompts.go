package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return the embedded
	// default or an error when no default exists.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used by the assistant.
// Templates use text/template syntax; the fields each one receives are listed.
const (
	// PromptIntent classifies a user message.
	// Fields: .Restaurants, .History, .Tools
	PromptIntent = "intent"

	// PromptParameterExtraction extracts tool arguments.
	// Fields: .Restaurants, .UserInput, .Intent, .Parameters
	PromptParameterExtraction = "parameter_extraction"

	// PromptResponseGeneration narrates a tool result.
	// Fields: .UserInput, .Intent, .ToolResponse, .History
	PromptResponseGeneration = "response_generation"

	// PromptErrorExplanation explains a rejected request.
	// Fields: .ErrorMessage
	PromptErrorExplanation = "error_explanation"

	// PromptRecommendation presents search results as recommendations.
	// Fields: .Restaurants
	PromptRecommendation = "recommendation"
)

// PromptStoreAware is an optional interface for services that can use custom prompts.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the service should use the embedded default prompts.
	SetPromptStore(store PromptStore)
}
