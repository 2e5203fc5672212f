package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"

	"github.com/pyqdeck/pyqdeck-api/internal/config"
	"github.com/pyqdeck/pyqdeck-api/internal/extraction"
	"github.com/pyqdeck/pyqdeck-api/internal/question"
)

// ingest loads extraction result files into Postgres. It is a one-shot seed
// job: re-running it inserts duplicates, deduplication is not attempted.
func main() {
	_ = godotenv.Load()
	config.Init()
	log := config.Logger()

	dir := flag.String("dir", filepath.Join("scripts", "extracted"), "directory containing extraction result JSON files")
	flag.Parse()

	ctx := context.Background()
	if err := config.Connect(ctx, os.Getenv("DATABASE_DSN")); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&question.Question{}); err != nil {
		log.Fatalf("failed to migrate questions table: %v", err)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("failed to read directory %s: %v", *dir, err)
	}

	var files, inserted, failed int
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files++

		rows, err := loadResult(filepath.Join(*dir, entry.Name()))
		if err != nil {
			log.WithError(err).Errorf("skipping %s", entry.Name())
			failed++
			continue
		}
		if len(rows) == 0 {
			log.Warnf("%s contains no questions", entry.Name())
			continue
		}

		if err := config.DB.WithContext(ctx).Create(&rows).Error; err != nil {
			log.WithError(err).Errorf("failed to insert questions from %s", entry.Name())
			failed++
			continue
		}

		log.Infof("inserted %d questions from %s", len(rows), entry.Name())
		inserted += len(rows)
	}

	log.Infof("ingest finished: %d files, %d questions inserted, %d files failed", files, inserted, failed)
}

func loadResult(path string) ([]question.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var result extraction.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	rows := make([]question.Question, 0, len(result.Questions))
	for _, q := range result.Questions {
		row := question.Question{
			ID:            uuid.New(),
			ExamType:      question.ExamType(result.ExamType),
			ExamYear:      result.ExamYear,
			ExamSession:   result.ExamSession,
			Subject:       question.Subject(q.Subject),
			Chapter:       q.Chapter,
			Topic:         q.Topic,
			Concept:       q.Concept,
			QuestionType:  question.QuestionType(q.QuestionType),
			Difficulty:    question.Difficulty(q.Difficulty),
			QuestionText:  q.QuestionText,
			CorrectAnswer: q.CorrectAnswer,
			IsActive:      true,
		}
		if len(q.Options) > 0 {
			options, err := json.Marshal(q.Options)
			if err != nil {
				return nil, err
			}
			row.Options = datatypes.JSON(options)
		}
		if len(q.Skills) > 0 {
			skills, err := json.Marshal(q.Skills)
			if err != nil {
				return nil, err
			}
			row.Skills = datatypes.JSON(skills)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
