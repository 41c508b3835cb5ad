package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

// ToolHandler executes a tool with raw model-supplied arguments.
// Business-rule failures come back as a failure Outcome; a returned error
// means the call itself could not be carried out.
type ToolHandler func(ctx context.Context, args map[string]any) (domain.Outcome, error)

// MissingParametersError names the required parameters absent from a call.
type MissingParametersError struct {
	Tool  string
	Names []string
}

func (e *MissingParametersError) Error() string {
	return fmt.Sprintf("Missing required parameters: %s", strings.Join(e.Names, ", "))
}

// Unwrap allows errors.Is(err, domain.ErrMissingParameters).
func (e *MissingParametersError) Unwrap() error {
	return domain.ErrMissingParameters
}

type registeredTool struct {
	name        string
	description string
	params      []domain.ToolParameter
	handler     ToolHandler
}

// ToolRegistry maps tool names to descriptions, parameter schemas and
// handlers. Tools are described in registration order.
type ToolRegistry struct {
	mu    sync.RWMutex
	order []string
	tools map[string]*registeredTool
}

// NewToolRegistry creates an empty registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]*registeredTool),
	}
}

// Register adds a tool. Registering the same name twice is an error.
func (r *ToolRegistry) Register(name, description string, params []domain.ToolParameter, handler ToolHandler) error {
	if name == "" || handler == nil {
		return fmt.Errorf("%w: tool name and handler are required", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %s", domain.ErrToolAlreadyRegistered, name)
	}
	r.tools[name] = &registeredTool{
		name:        name,
		description: description,
		params:      params,
		handler:     handler,
	}
	r.order = append(r.order, name)
	return nil
}

// Names returns the registered tool names in registration order.
func (r *ToolRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Has reports whether name is registered.
func (r *ToolRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// Describe renders every tool for a model prompt:
//
//	name: description
//	Parameters: {
//	  "param": {
//	    "type": "string",
//	    "description": "..."
//	  }
//	}
//
// Tools are separated by a blank line.
func (r *ToolRegistry) Describe() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	parts := make([]string, 0, len(r.order))
	for _, name := range r.order {
		tool := r.tools[name]
		parts = append(parts, fmt.Sprintf("%s: %s\nParameters: %s", name, tool.description, schemaJSON(tool.params)))
	}
	return strings.Join(parts, "\n\n")
}

// Schema returns the JSON parameter object of one tool.
func (r *ToolRegistry) Schema(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownTool, name)
	}
	return schemaJSON(tool.params), nil
}

// Parameters returns the declared parameters of one tool.
func (r *ToolRegistry) Parameters(name string) ([]domain.ToolParameter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTool, name)
	}
	return append([]domain.ToolParameter(nil), tool.params...), nil
}

// Description returns the description of one tool.
func (r *ToolRegistry) Description(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if tool, ok := r.tools[name]; ok {
		return tool.description
	}
	return ""
}

// Invoke runs a tool after checking that every required parameter is present.
func (r *ToolRegistry) Invoke(ctx context.Context, name string, args map[string]any) (domain.Outcome, error) {
	r.mu.RLock()
	tool, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return domain.Outcome{}, fmt.Errorf("%w: Tool %s not found", domain.ErrUnknownTool, name)
	}

	var missing []string
	for _, p := range tool.params {
		if _, present := args[p.Name]; p.Required && !present {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return domain.Outcome{}, &MissingParametersError{Tool: name, Names: missing}
	}

	if args == nil {
		args = map[string]any{}
	}
	return tool.handler(ctx, args)
}

type paramSchema struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// schemaJSON renders params as an object keyed by name, in declaration
// order, indented two spaces.
func schemaJSON(params []domain.ToolParameter) string {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, p := range params {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, _ := json.Marshal(p.Name)
		value, _ := json.Marshal(paramSchema{Type: p.Type, Description: p.Description})
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return compact.String()
	}
	return out.String()
}
