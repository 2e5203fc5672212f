package question

type Subject string

const (
	SubjectPhysics     Subject = "PHYSICS"
	SubjectChemistry   Subject = "CHEMISTRY"
	SubjectMathematics Subject = "MATHEMATICS"
)

func (s Subject) IsValid() bool {
	switch s {
	case SubjectPhysics, SubjectChemistry, SubjectMathematics:
		return true
	}
	return false
}

type ExamType string

const (
	ExamTypeMain     ExamType = "MAIN"
	ExamTypeAdvanced ExamType = "ADVANCED"
)

func (e ExamType) IsValid() bool {
	return e == ExamTypeMain || e == ExamTypeAdvanced
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type QuestionType string

const (
	QuestionTypeMCQSingle      QuestionType = "MCQ_SINGLE"
	QuestionTypeMCQMultiple    QuestionType = "MCQ_MULTIPLE"
	QuestionTypeNumerical      QuestionType = "NUMERICAL"
	QuestionTypeInteger        QuestionType = "INTEGER"
	QuestionTypeAssertion      QuestionType = "ASSERTION_REASON"
	QuestionTypeMatchTheColumn QuestionType = "MATCH_THE_COLUMN"
)

func (q QuestionType) IsValid() bool {
	switch q {
	case QuestionTypeMCQSingle, QuestionTypeMCQMultiple, QuestionTypeNumerical,
		QuestionTypeInteger, QuestionTypeAssertion, QuestionTypeMatchTheColumn:
		return true
	}
	return false
}
