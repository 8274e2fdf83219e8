package handlers

import (
	"context"
	"net/http"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

type trainingPlanGenerator interface {
	GenerateTrainingPlan(ctx context.Context, req models.TrainerRequest) (*models.TrainingPlan, error)
}

type AssistantHandler struct {
	generator trainingPlanGenerator
}

func NewAssistantHandler(generator trainingPlanGenerator) *AssistantHandler {
	return &AssistantHandler{generator: generator}
}

func (h *AssistantHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req models.TrainerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleServiceError(w, r, "personalAssistant", "ASSISTANT_ERROR", "Failed to generate training plan", err)
		return
	}

	plan, err := h.generator.GenerateTrainingPlan(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, "personalAssistant", "ASSISTANT_ERROR", "Failed to generate training plan", err)
		return
	}

	writeJSON(w, http.StatusOK, models.TrainingPlanResponse{Data: *plan})
}
