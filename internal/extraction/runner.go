package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pyqdeck/pyqdeck-api/internal/config"
)

// interFileDelay throttles successive model calls to stay inside the
// provider's rate limits.
const interFileDelay = 2 * time.Second

type RunSummary struct {
	Processed int
	Succeeded int
	Failed    int
}

// Runner drives the offline pipeline: one file at a time, metadata from the
// filename, text from the PDF, questions from the model, one JSON result per
// input. A failing file is logged and skipped; the run always continues.
type Runner struct {
	extractor Extractor
	inputDir  string
	outputDir string
	delay     time.Duration

	// extractText is swapped out in tests; production uses ExtractPDFText.
	extractText func(path string) (string, error)
}

func NewRunner(extractor Extractor, inputDir, outputDir string) *Runner {
	return &Runner{
		extractor:   extractor,
		inputDir:    inputDir,
		outputDir:   outputDir,
		delay:       interFileDelay,
		extractText: ExtractPDFText,
	}
}

func (r *Runner) Run(ctx context.Context, filenames []string) RunSummary {
	log := config.WithContext(ctx)

	var summary RunSummary
	for i, filename := range filenames {
		summary.Processed++
		if err := r.processFile(ctx, filename); err != nil {
			log.WithError(err).Errorf("failed to process %s", filename)
			summary.Failed++
		} else {
			summary.Succeeded++
		}

		if i < len(filenames)-1 {
			log.Info("waiting before next file to respect rate limits")
			time.Sleep(r.delay)
		}
	}

	log.Infof("extraction finished: %d processed, %d succeeded, %d failed",
		summary.Processed, summary.Succeeded, summary.Failed)
	return summary
}

func (r *Runner) processFile(ctx context.Context, filename string) error {
	log := config.WithContext(ctx).WithField("file", filename)

	meta := ParseFilename(filename)
	log.Infof("year=%d session=%q type=%s", meta.Year, meta.Session, meta.ExamType)

	text, err := r.extractText(filepath.Join(r.inputDir, filename))
	if err != nil {
		return err
	}
	log.Infof("extracted %d characters of text", len(text))

	questions, err := r.extractor.Extract(ctx, text, meta)
	if err != nil {
		return err
	}

	subjectCounts := make(map[string]int)
	for _, q := range questions {
		subjectCounts[q.Subject]++
	}
	log.Infof("extracted %d questions, subject distribution: %v", len(questions), subjectCounts)

	result := Result{
		Filename:    filename,
		ExamYear:    meta.Year,
		ExamSession: meta.Session,
		ExamType:    meta.ExamType,
		Questions:   questions,
		ExtractedAt: time.Now().UTC(),
	}

	return r.writeResult(result)
}

func (r *Runner) writeResult(result Result) error {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	name := strings.TrimSuffix(result.Filename, filepath.Ext(result.Filename)) + ".json"
	outputPath := filepath.Join(r.outputDir, name)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result for %s: %w", result.Filename, err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}
