package utils

// ErrorResponse is the error envelope returned by all handlers.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is the plain acknowledgement envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
