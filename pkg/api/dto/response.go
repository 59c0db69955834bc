package dto

// CommandDetail describes the command recovered from a response.
type CommandDetail struct {
	Action string `json:"action"`
	Type   string `json:"type"`
}

// ChatResponse is the response for one chat or execute turn.
type ChatResponse struct {
	RequestID string         `json:"request_id"`
	Reply     string         `json:"reply"`
	Response  string         `json:"response,omitempty"`
	Status    string         `json:"status,omitempty"`
	Command   *CommandDetail `json:"command,omitempty"`
}

// HealthResponse is the response for health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
