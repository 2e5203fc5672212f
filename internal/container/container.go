package container

import (
	"context"
	"log"
	"os"

	"github.com/pyqdeck/pyqdeck-api/internal/config"
	"github.com/pyqdeck/pyqdeck-api/internal/question"
)

type Container struct {
	QuestionContainer *question.QuestionContainer
}

func New() *Container {
	config.Init()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	config.InitCache(ctx)

	questionContainer := question.NewQuestionContainer(config.DB, config.Cache)

	return &Container{
		QuestionContainer: questionContainer,
	}
}
