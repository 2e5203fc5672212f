package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/pyqdeck/pyqdeck-api/internal/config"
)

const (
	extractionModel = "gemini-2.0-flash"
	maxOutputTokens = 16000
)

type Provider interface {
	ExtractQuestions(ctx context.Context, system, user string) ([]ExtractedQuestion, error)
}

type geminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider builds the hosted-model client. The API credential is
// read from the environment by the genai SDK.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) ExtractQuestions(ctx context.Context, system, user string) ([]ExtractedQuestion, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		extractionModel,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			MaxOutputTokens:   maxOutputTokens,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	questions := ParseModelResponse(ctx, result.Text())
	log.Infof("model returned %d questions", len(questions))
	return questions, nil
}

// ParseModelResponse recovers the question array from free-form model
// output. The model is asked for pure JSON but may wrap the payload in
// prose, so the first '[' through the last ']' is taken as the array. A
// response with no array, or one that does not decode, yields an empty
// list rather than an error; only transport failures abort a file.
func ParseModelResponse(ctx context.Context, raw string) []ExtractedQuestion {
	log := config.WithContext(ctx)

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		log.Warn("no JSON array found in model response")
		return []ExtractedQuestion{}
	}

	var questions []ExtractedQuestion
	if err := json.Unmarshal([]byte(raw[start:end+1]), &questions); err != nil {
		log.WithError(err).Warn("model response did not decode, treating as empty")
		return []ExtractedQuestion{}
	}
	if questions == nil {
		return []ExtractedQuestion{}
	}
	return questions
}
