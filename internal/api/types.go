// Package api defines the shared JSON request/response types for the public HTTP API.
// Field names are part of the wire contract consumed by the front-end and must not change.
package api

// UserPayload is the public view of a user. The password digest is never exposed here.
type UserPayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UserResponse is the success envelope for /api/signup and /api/login.
// Signup includes a message; login does not.
type UserResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    UserPayload `json:"user"`
}

// SOSResponse is the success envelope for /api/sos.
type SOSResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SOSID   uint   `json:"sos_id"`
}

// ErrorResponse is the failure envelope for all JSON endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ChatResponse is the reply envelope for /chat.
type ChatResponse struct {
	Response string `json:"response"`
}
