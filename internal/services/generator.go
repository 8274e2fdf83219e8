package services

import (
	"context"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

// Gateway is the external generation capability. *GeminiService is the
// production implementation.
type Gateway interface {
	Generate(ctx context.Context, model string, msgs []models.Message, opts GenerateOptions) (*Result, error)
}

// Generator runs one capability end to end: build the prompt, call the
// gateway once and turn the answer into a typed payload.
type Generator struct {
	gateway    Gateway
	textModel  string
	imageModel string
}

func NewGenerator(gateway Gateway, textModel, imageModel string) *Generator {
	return &Generator{
		gateway:    gateway,
		textModel:  textModel,
		imageModel: imageModel,
	}
}

func (g *Generator) GenerateFlashcards(ctx context.Context, notes string) ([]models.Flashcard, error) {
	return generateJSON[[]models.Flashcard](ctx, g, BuildFlashcardPrompt(notes))
}

func (g *Generator) GenerateQuiz(ctx context.Context, topic string) ([]models.QuizQuestion, error) {
	return generateJSON[[]models.QuizQuestion](ctx, g, BuildQuizPrompt(topic))
}

func (g *Generator) GenerateTrainingPlan(ctx context.Context, req models.TrainerRequest) (*models.TrainingPlan, error) {
	plan, err := generateJSON[models.TrainingPlan](ctx, g, BuildTrainerPrompt(req))
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Chat sends the whole conversation and returns the reply text.
func (g *Generator) Chat(ctx context.Context, history []models.Message) (string, error) {
	result, err := g.gateway.Generate(ctx, g.textModel, history, GenerateOptions{})
	if err != nil {
		return "", err
	}
	if result.Kind == ResultEmpty {
		return "", ErrEmptyCompletion
	}
	return result.Text, nil
}

// GenerateMeme returns the image bytes and their MIME type. A reply without
// inline data yields ErrNoImage.
func (g *Generator) GenerateMeme(ctx context.Context, prompt string) ([]byte, string, error) {
	msgs := []models.Message{{Role: models.RoleUser, Content: BuildMemePrompt(prompt)}}

	result, err := g.gateway.Generate(ctx, g.imageModel, msgs, GenerateOptions{WantImage: true})
	if err != nil {
		return nil, "", err
	}
	if result.Kind != ResultImage {
		return nil, "", ErrNoImage
	}
	return result.Image, result.MIMEType, nil
}

func generateJSON[T any](ctx context.Context, g *Generator, prompt string) (T, error) {
	var zero T

	msgs := []models.Message{{Role: models.RoleUser, Content: prompt}}
	result, err := g.gateway.Generate(ctx, g.textModel, msgs, GenerateOptions{})
	if err != nil {
		return zero, err
	}
	if result.Kind == ResultEmpty {
		return zero, ErrEmptyCompletion
	}

	return ExtractJSON[T](result.Text)
}
