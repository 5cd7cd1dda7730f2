package models

// GenerateTextRequest is the JSON body for POST /generate-text
type GenerateTextRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateResponse is the success envelope for all generation endpoints
type GenerateResponse struct {
	Output string `json:"output"`
}

// ErrorResponse is the failure envelope for all generation endpoints
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
