package extraction

import (
	"context"
)

// Extractor turns raw exam-paper text plus filename metadata into structured
// questions via a single model call.
type Extractor interface {
	Extract(ctx context.Context, text string, meta ExamMetadata) ([]ExtractedQuestion, error)
}

type extractor struct {
	provider Provider
}

func NewExtractor(provider Provider) Extractor {
	return &extractor{provider: provider}
}

func (e *extractor) Extract(ctx context.Context, text string, meta ExamMetadata) ([]ExtractedQuestion, error) {
	return e.provider.ExtractQuestions(ctx, systemPrompt, BuildUserPrompt(meta, text))
}
