// Package handler provides the HTTP handler for the chatbot feature.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"disaster_backend/internal/api"
)

// Responder answers a chat message with canned text.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (responder).
type Responder interface {
	Reply(message string) string
}

// ChatHandler handles HTTP requests for the chatbot.
type ChatHandler struct {
	responder Responder
}

// NewChatHandler creates a new ChatHandler with the injected responder.
func NewChatHandler(responder Responder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

// chatReq represents the request body for /chat. A missing message field is
// treated as an empty message, which yields the fallback response.
type chatReq struct {
	Message string `json:"message"`
}

// Chat handles the /chat endpoint. Unmatched or malformed input yields the
// fallback response; this endpoint never returns an error status.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	// Bind errors are ignored on purpose: an empty message falls through to
	// the responder's fallback text.
	_ = c.ShouldBindJSON(&req)
	c.JSON(http.StatusOK, api.ChatResponse{Response: h.responder.Reply(req.Message)})
}
