package services

import (
	"fmt"
	"strings"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

// ChatSystemPrompt seeds every conversation session.
const ChatSystemPrompt = "You are a helpful assistant. Answer clearly and concisely, and use the earlier messages of this conversation as context for follow-up questions."

func BuildFlashcardPrompt(notes string) string {
	var b strings.Builder

	b.WriteString("Turn these notes into 5 Q&A flashcards.\n")
	b.WriteString(`Format as JSON array: [{"question": "...", "answer": "..."}].` + "\n")
	b.WriteString("Notes: ")
	b.WriteString(notes)
	b.WriteString("\n")

	return b.String()
}

func BuildQuizPrompt(topic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate 5 multiple choice questions about %s\n", topic))
	b.WriteString("Each question should have 4 options and one correct answer.\n")
	b.WriteString("The answer must be the exact text of one of the 4 options.\n")
	b.WriteString("I want the response in the JSON format.\n")
	b.WriteString(`[
  {"question": "...", "options": ["A", "B", "C", "D"], "answer": "A"}
]
`)

	return b.String()
}

// BuildTrainerPrompt renders the personal trainer instruction. The model is
// asked for a bare JSON object with exactly three keys.
func BuildTrainerPrompt(req models.TrainerRequest) string {
	var b strings.Builder

	b.WriteString("You are a personal trainer.\n")
	b.WriteString(fmt.Sprintf("The user is %d years old, with a goal to %s.\n", req.Age, req.Goal))
	b.WriteString(fmt.Sprintf("Current health: %s, weight: %g lbs, height: %g inches.\n",
		req.CurrentHealth, req.CurrentWeight, req.Height))
	b.WriteString(fmt.Sprintf("Activity level: %s, exercise level: %s, sleep level: %s\n",
		req.ActivityLevel, req.ExerciseLevel, req.SleepLevel))
	b.WriteString("dietPlan will be vegetarian, vegan, or omnivore.\n")
	b.WriteString(fmt.Sprintf("The user has the following diet plan: %s\n\n", req.DietPlan))

	b.WriteString(`Respond ONLY with a JSON object with these keys:
1. workoutPlan: a list of workouts (array of objects with keys: name, sets, reps, rest)
2. dietPlan: a list of foods with proper nutrition
3. supplementPlan: a list of supplements

Do NOT include any text outside the JSON object.
`)

	return b.String()
}

func BuildMemePrompt(prompt string) string {
	return fmt.Sprintf("Generate a funny meme image based on this idea: %s\nPut a short, readable caption on the image.", prompt)
}
