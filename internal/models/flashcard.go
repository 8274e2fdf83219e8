package models

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GenerateFlashcardsRequest struct {
	Notes string `json:"notes" validate:"required"`
}
