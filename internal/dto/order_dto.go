package dto

type OrderRequest struct {
	ProductId string `json:"productId" validate:"required"`
}

type OrderResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Category int    `json:"category"`
	// Delivered is informational only: dispatch is best-effort and the order
	// succeeds regardless of how many devices actually received the command.
	Delivered int `json:"delivered"`
}
