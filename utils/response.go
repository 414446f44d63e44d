package utils

// ErrorResponse is the JSON shape for auth failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
