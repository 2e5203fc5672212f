package extraction

import "time"

const (
	ExamTypeMain     = "MAIN"
	ExamTypeAdvanced = "ADVANCED"
)

// ExamMetadata is derived once from an input filename and never mutated.
// Session is "" when the filename carries no session information.
type ExamMetadata struct {
	Year     int
	Session  string
	ExamType string
}

type OptionItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ExtractedQuestion is one question as returned by the model. Beyond JSON
// shape no validation is applied: partially populated records are accepted
// as-is and cleaned up downstream if at all.
type ExtractedQuestion struct {
	QuestionNumber int          `json:"questionNumber"`
	Subject        string       `json:"subject"`
	QuestionText   string       `json:"questionText"`
	Options        []OptionItem `json:"options,omitempty"`
	CorrectAnswer  string       `json:"correctAnswer"`
	QuestionType   string       `json:"questionType"`
	Chapter        string       `json:"chapter,omitempty"`
	Topic          string       `json:"topic,omitempty"`
	Concept        string       `json:"concept,omitempty"`
	Difficulty     string       `json:"difficulty,omitempty"`
	Skills         []string     `json:"skills,omitempty"`
}

// Result is the per-file hand-off artifact written next to the run. Its JSON
// shape is the contract consumed by the ingest job.
type Result struct {
	Filename    string              `json:"filename"`
	ExamYear    int                 `json:"examYear"`
	ExamSession string              `json:"examSession"`
	ExamType    string              `json:"examType"`
	Questions   []ExtractedQuestion `json:"questions"`
	ExtractedAt time.Time           `json:"extractedAt"`
}
