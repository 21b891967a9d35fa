package dto

// ErrorResponse cuerpo de error HTTP: {"error": "mensaje"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acuse genérico de una mutación.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
