package question_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pyqdeck/pyqdeck-api/internal/question"
)

type fakeRepo struct {
	questions  []question.Question
	facets     *question.FacetCounts
	facetCalls int
	err        error
}

func (r *fakeRepo) List(ctx context.Context, f question.Filter, offset, limit int) ([]question.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	if offset >= len(r.questions) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.questions) {
		end = len(r.questions)
	}
	return r.questions[offset:end], nil
}

func (r *fakeRepo) Count(ctx context.Context, f question.Filter) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.questions)), nil
}

func (r *fakeRepo) FacetCounts(ctx context.Context, subject, examType string) (*question.FacetCounts, error) {
	r.facetCalls++
	if r.err != nil {
		return nil, r.err
	}
	return r.facets, nil
}

func makeQuestions(n int) []question.Question {
	questions := make([]question.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, question.Question{
			ID:            uuid.New(),
			ExamType:      question.ExamTypeMain,
			ExamYear:      2020 + i%5,
			Subject:       question.SubjectPhysics,
			QuestionType:  question.QuestionTypeMCQSingle,
			QuestionText:  fmt.Sprintf("question %d", i+1),
			CorrectAnswer: "A",
			Solution:      "because",
			IsActive:      true,
		})
	}
	return questions
}

func TestListQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("RedactsAnswersByDefault", func(t *testing.T) {
		svc := question.NewService(&fakeRepo{questions: makeQuestions(3)})

		responses, _, err := svc.ListQuestions(ctx, question.Filter{}, question.ListParams{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		payload, err := json.Marshal(responses)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if strings.Contains(string(payload), "correctAnswer") {
			t.Error("correctAnswer key must be absent when showAnswers is not set")
		}
		if strings.Contains(string(payload), "solution") {
			t.Error("solution key must be absent when showAnswers is not set")
		}
	})

	t.Run("IncludesAnswersOnRequest", func(t *testing.T) {
		svc := question.NewService(&fakeRepo{questions: makeQuestions(1)})

		responses, _, err := svc.ListQuestions(ctx, question.Filter{}, question.ListParams{ShowAnswers: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if responses[0].CorrectAnswer == nil || *responses[0].CorrectAnswer != "A" {
			t.Errorf("correctAnswer = %v, want \"A\"", responses[0].CorrectAnswer)
		}
		if responses[0].Solution == nil || *responses[0].Solution != "because" {
			t.Errorf("solution = %v, want \"because\"", responses[0].Solution)
		}
	})

	t.Run("TotalPages", func(t *testing.T) {
		svc := question.NewService(&fakeRepo{questions: makeQuestions(95)})

		_, pagination, err := svc.ListQuestions(ctx, question.Filter{}, question.ListParams{Page: 1, Limit: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pagination.Total != 95 {
			t.Errorf("total = %d, want 95", pagination.Total)
		}
		if pagination.TotalPages != 5 {
			t.Errorf("totalPages = %d, want 5", pagination.TotalPages)
		}
	})

	t.Run("PageBeyondRangeIsEmptyNotError", func(t *testing.T) {
		svc := question.NewService(&fakeRepo{questions: makeQuestions(95)})

		responses, pagination, err := svc.ListQuestions(ctx, question.Filter{}, question.ListParams{Page: 6, Limit: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(responses) != 0 {
			t.Errorf("got %d questions, want 0", len(responses))
		}
		if pagination.Total != 95 {
			t.Errorf("total = %d, want 95", pagination.Total)
		}
	})

	t.Run("ClampsPagination", func(t *testing.T) {
		svc := question.NewService(&fakeRepo{questions: makeQuestions(10)})

		_, pagination, err := svc.ListQuestions(ctx, question.Filter{}, question.ListParams{Page: -3, Limit: 500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pagination.Page != 1 {
			t.Errorf("page = %d, want 1", pagination.Page)
		}
		if pagination.Limit != 50 {
			t.Errorf("limit = %d, want 50", pagination.Limit)
		}

		_, pagination, err = svc.ListQuestions(ctx, question.Filter{}, question.ListParams{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pagination.Limit != 20 {
			t.Errorf("default limit = %d, want 20", pagination.Limit)
		}
	})
}
