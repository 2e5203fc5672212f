package question

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type QuestionContainer struct {
	Handler *Handler
	Repo    Repository
}

func NewQuestionContainer(db *gorm.DB, cache *redis.Client) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	facets := NewFacetService(repo, cache)
	handler := NewHandler(service, facets)

	return &QuestionContainer{
		Handler: handler,
		Repo:    repo,
	}
}
