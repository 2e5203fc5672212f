package question

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuestionResponse is the public view of a Question. CorrectAnswer and
// Solution are pointers so that, unless answers were explicitly requested,
// the keys are absent from the JSON entirely rather than null.
type QuestionResponse struct {
	ID            uuid.UUID      `json:"id"`
	ExamType      ExamType       `json:"examType"`
	ExamYear      int            `json:"examYear"`
	ExamSession   string         `json:"examSession"`
	Subject       Subject        `json:"subject"`
	Chapter       string         `json:"chapter"`
	Topic         string         `json:"topic"`
	Concept       string         `json:"concept"`
	QuestionType  QuestionType   `json:"questionType"`
	Difficulty    Difficulty     `json:"difficulty"`
	QuestionText  string         `json:"questionText"`
	Options       datatypes.JSON `json:"options"`
	CorrectAnswer *string        `json:"correctAnswer,omitempty"`
	Solution      *string        `json:"solution,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type ListResponse struct {
	Questions  []QuestionResponse `json:"questions"`
	Pagination Pagination         `json:"pagination"`
	Filters    EchoedFilters      `json:"filters"`
}

// EchoedFilters echoes the raw request parameters back to the client so the
// UI can render its active-filter chips, including values the query builder
// dropped as invalid.
type EchoedFilters struct {
	Subject      string `json:"subject"`
	ExamType     string `json:"examType"`
	Year         string `json:"year"`
	Difficulty   string `json:"difficulty"`
	Chapter      string `json:"chapter"`
	Topic        string `json:"topic"`
	QuestionType string `json:"questionType"`
	Search       string `json:"search"`
}

func toResponse(q Question, showAnswers bool) QuestionResponse {
	resp := QuestionResponse{
		ID:           q.ID,
		ExamType:     q.ExamType,
		ExamYear:     q.ExamYear,
		ExamSession:  q.ExamSession,
		Subject:      q.Subject,
		Chapter:      q.Chapter,
		Topic:        q.Topic,
		Concept:      q.Concept,
		QuestionType: q.QuestionType,
		Difficulty:   q.Difficulty,
		QuestionText: q.QuestionText,
		Options:      q.Options,
	}
	if showAnswers {
		answer := q.CorrectAnswer
		solution := q.Solution
		resp.CorrectAnswer = &answer
		resp.Solution = &solution
	}
	return resp
}
