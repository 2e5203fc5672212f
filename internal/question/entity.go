package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Question is one past exam question as stored in Postgres. Only rows with
// IsActive set are ever exposed through the public API.
type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ExamType      ExamType       `gorm:"type:text;not null;index" json:"examType"`
	ExamYear      int            `gorm:"not null;index" json:"examYear"`
	ExamSession   string         `gorm:"type:text" json:"examSession"`
	Subject       Subject        `gorm:"type:text;not null;index" json:"subject"`
	Chapter       string         `gorm:"type:text" json:"chapter"`
	Topic         string         `gorm:"type:text" json:"topic"`
	Concept       string         `gorm:"type:text" json:"concept"`
	QuestionType  QuestionType   `gorm:"type:text;not null" json:"questionType"`
	Difficulty    Difficulty     `gorm:"type:text" json:"difficulty"`
	QuestionText  string         `gorm:"type:text;not null" json:"questionText"`
	Options       datatypes.JSON `gorm:"type:jsonb" json:"options"`
	CorrectAnswer string         `gorm:"type:text" json:"-"`
	Solution      string         `gorm:"type:text" json:"-"`
	Skills        datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	IsActive      bool           `gorm:"not null;default:true;index" json:"-"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"-"`
}
