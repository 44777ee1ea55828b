package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message   string        `json:"message"`
	SessionID string        `json:"session_id,omitempty"`
	Context   []ChatMessage `json:"context,omitempty"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Topic     string `json:"topic,omitempty"`
	Generated bool   `json:"generated"`
}
