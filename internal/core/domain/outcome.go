package domain

import (
	"bytes"
	"encoding/json"
)

// Outcome is the result of a tool call: either a success payload
// or a failure carrying the rejection.
type Outcome struct {
	Payload any
	Failure *Rejection
}

// Success wraps a payload. Payloads should marshal to JSON objects.
func Success(payload any) Outcome {
	return Outcome{Payload: payload}
}

// Failure wraps a rejection.
func Failure(r *Rejection) Outcome {
	return Outcome{Failure: r}
}

// OK returns true for a success outcome.
func (o Outcome) OK() bool {
	return o.Failure == nil
}

// ErrorMessage returns the failure message, or "" on success.
func (o Outcome) ErrorMessage() string {
	if o.Failure == nil {
		return ""
	}
	return o.Failure.Message
}

type failureEnvelope struct {
	Success     bool     `json:"success"`
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// MarshalJSON renders {"success":true,...payload} or
// {"success":false,"error":...,"suggestions":[...]}.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Failure != nil {
		return json.Marshal(failureEnvelope{
			Error:       o.Failure.Message,
			Suggestions: o.Failure.Suggestions,
		})
	}
	if o.Payload == nil {
		return []byte(`{"success":true}`), nil
	}

	body, err := json.Marshal(o.Payload)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) < 2 || body[0] != '{' {
		return json.Marshal(map[string]json.RawMessage{
			"success": json.RawMessage("true"),
			"result":  body,
		})
	}
	if bytes.Equal(body, []byte("{}")) {
		return []byte(`{"success":true}`), nil
	}

	var buf bytes.Buffer
	buf.WriteString(`{"success":true,`)
	buf.Write(body[1:])
	return buf.Bytes(), nil
}

// String returns the JSON form, used when the outcome is shown to a model.
func (o Outcome) String() string {
	b, err := json.Marshal(o)
	if err != nil {
		return `{"success":false,"error":"unrenderable result"}`
	}
	return string(b)
}
