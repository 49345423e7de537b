package httpdto

// MessageResponse is the generic confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body for the auth endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ChatErrorResponse is the error body for the chat proxy, which the
// frontend reads from an "error" field.
type ChatErrorResponse struct {
	Error string `json:"error"`
}
