package dto

type TTSRequest struct {
	Text string `json:"text" validate:"required"`
}

type TTSResponse struct {
	Audio string `json:"audio"` // base64-encoded audio payload
}
