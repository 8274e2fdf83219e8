package models

type GenerateMemeRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// MemeResponse carries the generated image as standard base64.
type MemeResponse struct {
	Image string `json:"image"`
}
