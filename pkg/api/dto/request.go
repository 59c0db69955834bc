package dto

// AskRequest is the request body for a chat turn.
type AskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// ExecuteRequest carries a raw LLM response body to parse and execute
// without calling the model.
type ExecuteRequest struct {
	Response string `json:"response" binding:"required"`
}
