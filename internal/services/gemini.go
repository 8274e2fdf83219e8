package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/SahilKumar9009/Generative-Ai/internal/models"
)

type ResultKind int

const (
	ResultEmpty ResultKind = iota
	ResultText
	ResultImage
)

func (k ResultKind) String() string {
	switch k {
	case ResultText:
		return "text"
	case ResultImage:
		return "image"
	default:
		return "empty"
	}
}

// Result is the model answer reduced to what the routes consume. It is built
// once from the first candidate so callers never walk the raw response.
// An image result may also carry caption text.
type Result struct {
	Kind         ResultKind
	Text         string
	Image        []byte
	MIMEType     string
	FinishReason string
}

type GenerateOptions struct {
	// WantImage asks the model for TEXT and IMAGE response modalities.
	WantImage bool
}

// contentGenerator is the part of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiService struct {
	models   contentGenerator
	rateChan chan struct{} // Token bucket
}

func NewGeminiService(ctx context.Context, apiKey string, concurrentReqs int) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newGeminiService(client.Models, concurrentReqs), nil
}

func newGeminiService(models contentGenerator, concurrentReqs int) *GeminiService {
	if concurrentReqs <= 0 {
		concurrentReqs = 1
	}

	// Token bucket bounding in-flight Gemini calls
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		models:   models,
		rateChan: rateChan,
	}
}

// acquireRate blocks until a rate slot is available
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Generate sends the ordered messages to model and returns the first
// candidate as a Result. Transport and provider failures come back as
// *UpstreamError; a response without usable parts is a ResultEmpty, not an error.
func (s *GeminiService) Generate(ctx context.Context, model string, msgs []models.Message, opts GenerateOptions) (*Result, error) {
	if err := s.acquireRate(ctx); err != nil {
		return nil, &UpstreamError{Model: model, Err: err}
	}
	defer s.releaseRate()

	system, contents := buildContents(msgs)

	config := &genai.GenerateContentConfig{SystemInstruction: system}
	if opts.WantImage {
		config.ResponseModalities = append(config.ResponseModalities, "TEXT", "IMAGE")
	}

	resp, err := s.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, &UpstreamError{Model: model, Err: err}
	}

	result := resultFromResponse(resp)
	if result.FinishReason != "" && result.FinishReason != string(genai.FinishReasonStop) {
		log.Printf("WARNING: Gemini (%s) stopped due to %s", model, result.FinishReason)
	}

	return result, nil
}

// buildContents splits system messages into a system instruction and maps the
// remaining roles onto Gemini's user/model roles.
func buildContents(msgs []models.Message) (*genai.Content, []*genai.Content) {
	var system *genai.Content
	contents := make([]*genai.Content, 0, len(msgs))

	for _, m := range msgs {
		switch m.Role {
		case models.RoleSystem:
			if system == nil {
				system = &genai.Content{}
			}
			system.Parts = append(system.Parts, &genai.Part{Text: m.Content})
		case models.RoleAssistant:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{Text: m.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleUser,
				Parts: []*genai.Part{{Text: m.Content}},
			})
		}
	}

	return system, contents
}

func resultFromResponse(resp *genai.GenerateContentResponse) *Result {
	result := &Result{Kind: ResultEmpty}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return result
	}

	cand := resp.Candidates[0]
	result.FinishReason = string(cand.FinishReason)
	if cand.Content == nil {
		return result
	}

	var text strings.Builder
	for _, part := range cand.Content.Parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 && result.Image == nil {
			result.Image = part.InlineData.Data
			result.MIMEType = part.InlineData.MIMEType
		}
		text.WriteString(part.Text)
	}
	result.Text = text.String()

	switch {
	case result.Image != nil:
		result.Kind = ResultImage
	case strings.TrimSpace(result.Text) != "":
		result.Kind = ResultText
	}

	return result
}
