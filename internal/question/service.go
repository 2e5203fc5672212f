package question

import (
	"context"

	"github.com/pyqdeck/pyqdeck-api/internal/config"
)

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

type ListParams struct {
	Page        int
	Limit       int
	ShowAnswers bool
}

type Service interface {
	ListQuestions(ctx context.Context, f Filter, params ListParams) ([]QuestionResponse, Pagination, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListQuestions returns one page of matching questions ordered by exam year
// (newest first), subject, then chapter. Answer fields are only populated
// when explicitly requested; otherwise they never leave the server.
func (s *service) ListQuestions(ctx context.Context, f Filter, params ListParams) ([]QuestionResponse, Pagination, error) {
	log := config.WithContext(ctx)

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		log.WithError(err).Error("failed to count questions")
		return nil, Pagination{}, err
	}

	questions, err := s.repo.List(ctx, f, (page-1)*limit, limit)
	if err != nil {
		log.WithError(err).Error("failed to list questions")
		return nil, Pagination{}, err
	}

	responses := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, toResponse(q, params.ShowAnswers))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return responses, Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
