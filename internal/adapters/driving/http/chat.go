package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionHeader selects the conversation for /api/chat.
const SessionHeader = "X-Session-ID"

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// Chat runs one assistant turn and streams the reply as server-sent events:
// "message" events carry fragments, then "done" or "error" ends the stream.
func (h *Handler) Chat(c *gin.Context) {
	if h.Sessions == nil {
		writeError(c, http.StatusServiceUnavailable, "LLM_UNAVAILABLE", "The assistant is not configured", nil)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	id, assistant, err := h.Sessions.Acquire(c.GetHeader(SessionHeader))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header(SessionHeader, id)
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	for fragment, err := range assistant.Respond(c.Request.Context(), req.Message) {
		if err != nil {
			h.Logger.Warn().Err(err).Str("session_id", id).Msg("chat turn failed")
			c.SSEvent("error", err.Error())
			c.Writer.Flush()
			return
		}
		c.SSEvent("message", fragment)
		c.Writer.Flush()
	}
	c.SSEvent("done", id)
	c.Writer.Flush()
}

// ChatEnd forgets the conversation named by the session header.
func (h *Handler) ChatEnd(c *gin.Context) {
	if h.Sessions != nil {
		if id := c.GetHeader(SessionHeader); id != "" {
			h.Sessions.Drop(id)
		}
	}
	c.Status(http.StatusNoContent)
}
