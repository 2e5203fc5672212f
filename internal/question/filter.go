package question

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	minFilterYear   = 2015
	maxFilterYear   = 2030
	minSearchLength = 2
)

// Filter is the validated predicate over active questions. Zero values mean
// "no constraint on that field". Invalid request values are dropped during
// parsing rather than rejected: a bad filter degrades to an unfiltered
// dimension, never an error response.
type Filter struct {
	Subject      Subject
	ExamType     ExamType
	Year         int
	Difficulty   Difficulty
	Chapter      string
	Topic        string
	QuestionType QuestionType
	Search       string
}

// ParseFilter builds a Filter from raw query parameters, keeping only values
// that pass the per-field allow-lists.
func ParseFilter(params url.Values) Filter {
	var f Filter

	if s := Subject(params.Get("subject")); s.IsValid() {
		f.Subject = s
	}
	if e := ExamType(params.Get("examType")); e.IsValid() {
		f.ExamType = e
	}
	if y, err := strconv.Atoi(params.Get("year")); err == nil {
		if y >= minFilterYear && y <= maxFilterYear {
			f.Year = y
		}
	}
	if d := Difficulty(params.Get("difficulty")); d.IsValid() {
		f.Difficulty = d
	}
	f.Chapter = params.Get("chapter")
	f.Topic = params.Get("topic")
	if q := QuestionType(params.Get("questionType")); q.IsValid() {
		f.QuestionType = q
	}
	if search := strings.TrimSpace(params.Get("search")); len(search) >= minSearchLength {
		f.Search = search
	}

	return f
}

// Apply translates the filter into gorm conditions. The is_active gate is
// unconditional and not client-controlled.
func (f Filter) Apply(db *gorm.DB) *gorm.DB {
	db = db.Where("is_active = ?", true)

	if f.Subject != "" {
		db = db.Where("subject = ?", f.Subject)
	}
	if f.ExamType != "" {
		db = db.Where("exam_type = ?", f.ExamType)
	}
	if f.Year != 0 {
		db = db.Where("exam_year = ?", f.Year)
	}
	if f.Difficulty != "" {
		db = db.Where("difficulty = ?", f.Difficulty)
	}
	if f.Chapter != "" {
		db = db.Where("chapter ILIKE ?", "%"+f.Chapter+"%")
	}
	if f.Topic != "" {
		db = db.Where("topic ILIKE ?", "%"+f.Topic+"%")
	}
	if f.QuestionType != "" {
		db = db.Where("question_type = ?", f.QuestionType)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		db = db.Where("question_text ILIKE ? OR topic ILIKE ? OR concept ILIKE ?",
			pattern, pattern, pattern)
	}

	return db
}
