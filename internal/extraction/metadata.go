package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearPattern = regexp.MustCompile(`\d{4}`)
	// JEE_Main_2025_April_2_Shift1 -> "April 2 Shift 1"
	sessionPattern = regexp.MustCompile(`\d{4}_([A-Za-z]+)_(\d+)(?:_Shift(\d+))?`)
	// JEE_Main_2025_April_8 -> "April 8"
	simpleSessionPattern = regexp.MustCompile(`\d{4}_([A-Za-z]+_\d+)`)
)

// ParseFilename derives exam metadata from a PDF filename. It never fails:
// an unrecognized name yields year 0 and an empty session. Only the known
// JEE filename conventions are handled.
//
//	JEE_Main_2025_April_2_Shift1.pdf -> {2025, "April 2 Shift 1", MAIN}
//	JEE_Advanced_2023_Paper1.pdf     -> {2023, "", ADVANCED}
//	JEE_Main_2007.pdf                -> {2007, "", MAIN}
func ParseFilename(filename string) ExamMetadata {
	name := strings.TrimSuffix(filename, ".pdf")

	examType := ExamTypeMain
	if strings.Contains(name, "Advanced") {
		examType = ExamTypeAdvanced
	}

	year := 0
	if m := yearPattern.FindString(name); m != "" {
		year, _ = strconv.Atoi(m)
	}

	session := ""
	if m := sessionPattern.FindStringSubmatch(name); m != nil {
		month, day, shift := m[1], m[2], m[3]
		if shift != "" {
			session = month + " " + day + " Shift " + shift
		} else {
			session = month + " " + day
		}
	} else if m := simpleSessionPattern.FindStringSubmatch(name); m != nil {
		session = strings.Replace(m[1], "_", " ", 1)
	}

	return ExamMetadata{
		Year:     year,
		Session:  session,
		ExamType: examType,
	}
}
