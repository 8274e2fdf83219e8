package models

import "encoding/json"

// TrainerRequest carries the personal assistant inputs. Weight is in lbs and
// height in inches, matching the wording of the generated prompt.
type TrainerRequest struct {
	Age           int     `json:"age" validate:"required,gt=0,lte=120"`
	Goal          string  `json:"goal" validate:"required"`
	CurrentHealth string  `json:"currentHealth" validate:"required"`
	CurrentWeight float64 `json:"currentWeight" validate:"required,gt=0"`
	Height        float64 `json:"height" validate:"required,gt=0"`
	ActivityLevel string  `json:"activityLevel" validate:"required"`
	ExerciseLevel string  `json:"exerciseLevel" validate:"required"`
	SleepLevel    string  `json:"sleepLevel" validate:"required"`
	DietPlan      string  `json:"dietPlan" validate:"required,oneof=vegetarian vegan omnivore"`
}

// TrainingPlan passes each entry through as the model wrote it. Workouts are
// usually {name, sets, reps, rest} objects, but values and extra keys vary.
type TrainingPlan struct {
	WorkoutPlan    []json.RawMessage `json:"workoutPlan"`
	DietPlan       []json.RawMessage `json:"dietPlan"`
	SupplementPlan []json.RawMessage `json:"supplementPlan"`
}

type TrainingPlanResponse struct {
	Data TrainingPlan `json:"data"`
}
