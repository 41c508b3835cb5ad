package domain

// Role identifies who authored a chat turn.
type Role string

// Chat roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one message of a conversation.
type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Intent is the classification of a user message as returned by the model.
type Intent struct {
	// Label is the classified purpose, e.g. "make_reservation".
	Label string

	// Tool is the tool to invoke, empty when none applies.
	Tool string

	// NeedsParameters asks for a second extraction pass.
	NeedsParameters bool

	// Parameters holds arguments the model already recognised.
	Parameters map[string]any
}

// IntentFromMap reads an intent from a decoded model response.
// Missing or mistyped keys are left at their zero value.
func IntentFromMap(m map[string]any) Intent {
	in := Intent{Parameters: map[string]any{}}
	if s, ok := m["intent"].(string); ok {
		in.Label = s
	}
	if s, ok := m["tool_to_use"].(string); ok {
		in.Tool = s
	}
	if b, ok := m["needs_parameters"].(bool); ok {
		in.NeedsParameters = b
	}
	if p, ok := m["parameters"].(map[string]any); ok {
		for k, v := range p {
			in.Parameters[k] = v
		}
	}
	return in
}

// HasTool returns true when the intent names a tool.
func (i Intent) HasTool() bool {
	return i.Tool != ""
}

// ToolParameter describes one argument of a tool.
type ToolParameter struct {
	Name        string
	Type        string
	Description string
	Required    bool
}
