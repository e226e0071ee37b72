package models

import "strings"

// Grade holds one student's scores for one course. Nil scores are not yet
// entered; FinalGrade and LetterGrade stay nil until every input is final.
type Grade struct {
	ID          string   `db:"id" json:"id"`
	StudentID   string   `db:"student_id" json:"student_id"`
	CourseID    string   `db:"course_id" json:"course_id"`
	Midterm     *float64 `db:"midterm" json:"midterm"`
	Final       *float64 `db:"final" json:"final"`
	Assignments *float64 `db:"assignments" json:"assignments"`
	Attendance  *float64 `db:"attendance" json:"attendance"`
	FinalGrade  *float64 `db:"final_grade" json:"final_grade"`
	LetterGrade *string  `db:"letter_grade" json:"letter_grade"`
}

// IsFinalized reports whether a final grade has been published.
func (g Grade) IsFinalized() bool {
	return g.FinalGrade != nil && g.LetterGrade != nil
}

// GradeEntry is one row of a teacher's grade sheet. A nil score leaves the
// field blank.
type GradeEntry struct {
	StudentID   string   `json:"student_id" validate:"required"`
	Midterm     *float64 `json:"midterm" validate:"omitempty,min=0,max=100"`
	Final       *float64 `json:"final" validate:"omitempty,min=0,max=100"`
	Assignments *float64 `json:"assignments" validate:"omitempty,min=0,max=100"`
	Attendance  *float64 `json:"attendance" validate:"omitempty,min=0,max=100"`
}

// GradeSheet is a batch of grade entries for one course.
type GradeSheet struct {
	Entries []GradeEntry `json:"entries" validate:"required,min=1,dive"`
}

// LetterBands are the grade-distribution buckets, best first.
var LetterBands = []string{"A", "B", "C", "D", "F"}

// LetterBand maps a letter grade such as "A-" or "B+" onto its band. It
// returns "" for labels outside the A–F scale.
func LetterBand(letter string) string {
	letter = strings.TrimSpace(letter)
	for _, band := range LetterBands {
		if strings.HasPrefix(letter, band) {
			return band
		}
	}
	return ""
}
