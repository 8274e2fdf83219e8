package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
	"github.com/SahilKumar9009/Generative-Ai/internal/repository"
	"github.com/SahilKumar9009/Generative-Ai/internal/services"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so clients can map errors to inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// decodeAndValidate reads the JSON body into v and runs its validate tags.
// Both kinds of failure come back as *services.ValidationError.
func decodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &services.ValidationError{Fields: map[string]string{"body": "Invalid request body"}}
	}

	if err := validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		return &services.ValidationError{Fields: fields}
	}

	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	default:
		return "Invalid value"
	}
}

// handleServiceError writes the response for err. Generation failures of any
// kind collapse into the route's static 500 message; the cause is only logged.
func handleServiceError(w http.ResponseWriter, r *http.Request, route, code, message string, err error) {
	var validationErr *services.ValidationError
	var malformedErr *services.MalformedOutputError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", validationErr.Fields, r))
	case errors.Is(err, repository.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Session not found", r))
	case errors.Is(err, services.ErrNoImage):
		log.Printf("%s: no image in model response (request %s)", route, r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusBadRequest, errorResp("NO_IMAGE", "No image was generated for this prompt", r))
	case errors.As(err, &malformedErr):
		log.Printf("%s: model returned malformed JSON (request %s): %v\n%s", route, r.Header.Get("X-Request-ID"), err, malformedErr.Sanitized)
		writeJSON(w, http.StatusInternalServerError, errorResp(code, message, r))
	default:
		log.Printf("%s: %v (request %s)", route, err, r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusInternalServerError, errorResp(code, message, r))
	}
}
