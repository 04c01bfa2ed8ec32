package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse mirrors the three outcome shapes of the assistant:
// "message", "navigation" and "info_and_navigate".
type ChatResponse struct {
	Type      string `json:"type"`
	ProductId string `json:"productId,omitempty"`
	Message   string `json:"message"`
	Info      string `json:"info,omitempty"`
}
