package question_test

import (
	"net/url"
	"testing"

	"github.com/pyqdeck/pyqdeck-api/internal/question"
)

func TestParseFilter(t *testing.T) {
	t.Run("ValidValues", func(t *testing.T) {
		f := question.ParseFilter(url.Values{
			"subject":      {"PHYSICS"},
			"examType":     {"MAIN"},
			"year":         {"2023"},
			"difficulty":   {"HARD"},
			"chapter":      {"Mechanics"},
			"topic":        {"Projectile"},
			"questionType": {"MCQ_SINGLE"},
			"search":       {"velocity"},
		})

		if f.Subject != question.SubjectPhysics {
			t.Errorf("subject = %q", f.Subject)
		}
		if f.ExamType != question.ExamTypeMain {
			t.Errorf("examType = %q", f.ExamType)
		}
		if f.Year != 2023 {
			t.Errorf("year = %d", f.Year)
		}
		if f.Difficulty != question.DifficultyHard {
			t.Errorf("difficulty = %q", f.Difficulty)
		}
		if f.Chapter != "Mechanics" || f.Topic != "Projectile" {
			t.Errorf("chapter/topic = %q/%q", f.Chapter, f.Topic)
		}
		if f.QuestionType != question.QuestionTypeMCQSingle {
			t.Errorf("questionType = %q", f.QuestionType)
		}
		if f.Search != "velocity" {
			t.Errorf("search = %q", f.Search)
		}
	})

	t.Run("InvalidEnumsAreDropped", func(t *testing.T) {
		f := question.ParseFilter(url.Values{
			"subject":      {"BIOLOGY"},
			"examType":     {"OLYMPIAD"},
			"difficulty":   {"IMPOSSIBLE"},
			"questionType": {"ESSAY"},
		})

		if f.Subject != "" || f.ExamType != "" || f.Difficulty != "" || f.QuestionType != "" {
			t.Errorf("invalid enum values should be dropped, got %+v", f)
		}
	})

	t.Run("YearOutOfRangeIsDropped", func(t *testing.T) {
		for _, year := range []string{"1999", "2014", "2031", "notayear", ""} {
			f := question.ParseFilter(url.Values{"year": {year}})
			if f.Year != 0 {
				t.Errorf("year %q should be dropped, got %d", year, f.Year)
			}
		}
	})

	t.Run("YearBoundsAreInclusive", func(t *testing.T) {
		for _, year := range []string{"2015", "2030"} {
			f := question.ParseFilter(url.Values{"year": {year}})
			if f.Year == 0 {
				t.Errorf("year %q should be accepted", year)
			}
		}
	})

	t.Run("ShortSearchIsDropped", func(t *testing.T) {
		f := question.ParseFilter(url.Values{"search": {"a"}})
		if f.Search != "" {
			t.Errorf("single-character search should be dropped, got %q", f.Search)
		}

		f = question.ParseFilter(url.Values{"search": {"ab"}})
		if f.Search != "ab" {
			t.Errorf("two-character search should be kept, got %q", f.Search)
		}
	})

	t.Run("EmptyParams", func(t *testing.T) {
		f := question.ParseFilter(url.Values{})
		if f != (question.Filter{}) {
			t.Errorf("empty params should yield the zero filter, got %+v", f)
		}
	})
}
