package extraction_test

import (
	"testing"

	"github.com/pyqdeck/pyqdeck-api/internal/extraction"
)

func TestParseFilename(t *testing.T) {
	t.Run("SessionWithShift", func(t *testing.T) {
		cases := []struct {
			filename string
			session  string
		}{
			{"JEE_Main_2025_April_2_Shift1.pdf", "April 2 Shift 1"},
			{"JEE_Main_2024_April_4_Shift2.pdf", "April 4 Shift 2"},
			{"JEE_Main_2025_Jan_22_Shift2.pdf", "Jan 22 Shift 2"},
		}
		for _, tc := range cases {
			meta := extraction.ParseFilename(tc.filename)
			if meta.Session != tc.session {
				t.Errorf("%s: session = %q, want %q", tc.filename, meta.Session, tc.session)
			}
			if meta.ExamType != extraction.ExamTypeMain {
				t.Errorf("%s: type = %q, want MAIN", tc.filename, meta.ExamType)
			}
		}
	})

	t.Run("SessionWithoutShift", func(t *testing.T) {
		meta := extraction.ParseFilename("JEE_Main_2025_April_8.pdf")
		if meta.Year != 2025 {
			t.Errorf("year = %d, want 2025", meta.Year)
		}
		if meta.Session != "April 8" {
			t.Errorf("session = %q, want \"April 8\"", meta.Session)
		}
	})

	t.Run("YearOnly", func(t *testing.T) {
		meta := extraction.ParseFilename("JEE_Main_2007.pdf")
		if meta.Year != 2007 {
			t.Errorf("year = %d, want 2007", meta.Year)
		}
		if meta.Session != "" {
			t.Errorf("session = %q, want empty", meta.Session)
		}
		if meta.ExamType != extraction.ExamTypeMain {
			t.Errorf("type = %q, want MAIN", meta.ExamType)
		}
	})

	t.Run("Advanced", func(t *testing.T) {
		meta := extraction.ParseFilename("JEE_Advanced_2023_Paper1.pdf")
		if meta.Year != 2023 {
			t.Errorf("year = %d, want 2023", meta.Year)
		}
		if meta.ExamType != extraction.ExamTypeAdvanced {
			t.Errorf("type = %q, want ADVANCED", meta.ExamType)
		}
	})

	t.Run("AdvancedIsCaseSensitive", func(t *testing.T) {
		meta := extraction.ParseFilename("jee_advanced_2023.pdf")
		if meta.ExamType != extraction.ExamTypeMain {
			t.Errorf("type = %q, want MAIN for lowercase 'advanced'", meta.ExamType)
		}
	})

	t.Run("NoYear", func(t *testing.T) {
		meta := extraction.ParseFilename("random_paper.pdf")
		if meta.Year != 0 {
			t.Errorf("year = %d, want 0", meta.Year)
		}
		if meta.Session != "" {
			t.Errorf("session = %q, want empty", meta.Session)
		}
	})
}
