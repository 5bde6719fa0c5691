package dto

import "ouma-web/internal/models"

// ===========================================================================
// Response DTOs
// Error envelope for JSON failures plus the chat endpoint payloads
// ===========================================================================

// Response error envelope used by middleware JSON failures
type Response struct {
	// Success always false for failures
	Success bool `json:"success"`

	// Error details on failure
	Error *APIError `json:"error,omitempty"`
}

// APIError error code and message
type APIError struct {
	// Code e.g. "NOT_FOUND", "CSRF_INVALID"
	Code string `json:"code"`

	// Message human readable detail
	Message string `json:"message"`
}

// Error creates an error response
func Error(code, message string) Response {
	return Response{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	}
}

// ===========================================================================
// Chat payloads
// ===========================================================================

// OKResponse {"ok": bool}
type OKResponse struct {
	OK bool `json:"ok"`
}

// ChatStartResponse {"ok": true, "sessionId": n}
type ChatStartResponse struct {
	OK        bool `json:"ok"`
	SessionID uint `json:"sessionId,omitempty"`
}

// ChatMessagesResponse {"ok": true, "messages": [...]}
type ChatMessagesResponse struct {
	OK       bool                 `json:"ok"`
	Messages []models.ChatMessage `json:"messages"`
}

// HealthResponse liveness probe payload
type HealthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}
