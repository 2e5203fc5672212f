package extraction

import "fmt"

// The model only ever sees the first maxDocumentChars characters of a paper;
// anything beyond that is almost always answer-key appendices or OCR noise.
const maxDocumentChars = 100000

const systemPrompt = `You are an expert at parsing JEE exam papers. Your task is to extract individual questions from the provided exam paper text and structure them as JSON.

For JEE Main papers:
- Questions 1-20 are typically Physics (may include 5 numerical type)
- Questions 21-25 are typically Physics numerical
- Questions 26-45 are typically Chemistry (may include 5 numerical type)
- Questions 46-50 are typically Chemistry numerical
- Questions 51-70 are typically Mathematics (may include 5 numerical type)
- Questions 71-75 are typically Mathematics numerical

However, some papers have different distributions. Use context clues (formulas, terminology) to determine the subject:
- Physics: mechanics, waves, optics, thermodynamics, electromagnetism, modern physics
- Chemistry: organic, inorganic, physical chemistry, periodic table, reactions
- Mathematics: calculus, algebra, trigonometry, coordinate geometry, vectors, probability

Question types:
- MCQ_SINGLE: Multiple choice with single correct answer (options A, B, C, D)
- MCQ_MULTIPLE: Multiple correct answers possible
- NUMERICAL: Answer is a decimal/integer value (no options)
- INTEGER: Answer is a single integer

When extracting:
1. Preserve mathematical notation as much as possible (use LaTeX-like notation)
2. Include ALL options for MCQ questions
3. Extract the correct answer from the answer key section if present
4. Mark difficulty based on complexity: EASY (direct formula), MEDIUM (multi-step), HARD (complex reasoning)
5. Identify the chapter/topic when possible`

// BuildUserPrompt embeds the exam metadata and the (truncated) paper text
// into the extraction instruction.
func BuildUserPrompt(meta ExamMetadata, text string) string {
	session := ""
	if meta.Session != "" {
		session = fmt.Sprintf(" (%s)", meta.Session)
	}

	if len(text) > maxDocumentChars {
		text = text[:maxDocumentChars]
	}

	return fmt.Sprintf(`Parse the following JEE %s %d%s exam paper text and extract all questions as structured JSON.

Return ONLY a valid JSON array of question objects. Each question should have:
- questionNumber: number
- subject: "PHYSICS" | "CHEMISTRY" | "MATHEMATICS"
- questionText: string (the full question text, preserve math notation)
- options: array of {id: "A"|"B"|"C"|"D", text: string} (only for MCQ)
- correctAnswer: string (the answer - could be "A", "B,C", "3.14", etc.)
- questionType: "MCQ_SINGLE" | "MCQ_MULTIPLE" | "NUMERICAL" | "INTEGER"
- chapter: string (if determinable, e.g., "Mechanics", "Organic Chemistry", "Calculus")
- topic: string (if determinable, e.g., "Projectile Motion", "Aldehydes", "Integration")
- concept: string (specific concept, e.g., "Range of projectile", "Aldol condensation")
- difficulty: "EASY" | "MEDIUM" | "HARD"
- skills: array of applicable skills from ["CONCEPTUAL", "NUMERICAL", "APPLICATION", "ANALYTICAL", "DERIVATION", "GRAPHICAL"]

If you cannot determine an answer key, set correctAnswer to "UNKNOWN".
If the text is too garbled or unreadable, return an empty array [].

EXAM PAPER TEXT:
%s`, meta.ExamType, meta.Year, session, text)
}
