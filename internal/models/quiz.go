package models

// QuizQuestion is a multiple choice question. Answer holds the text of the
// correct option, not its index.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

type GenerateQuizRequest struct {
	Topic string `json:"topic" validate:"required"`
}

type QuizResponse struct {
	Data []QuizQuestion `json:"data"`
}
