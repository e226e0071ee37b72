package models

// AcademicRecord is a precomputed per-student transcript snapshot. GPA and
// TotalCredits are not derived from Grade rows.
type AcademicRecord struct {
	StudentID    string         `db:"student_id" json:"student_id"`
	TotalCredits int            `db:"total_credits" json:"total_credits"`
	GPA          float64        `db:"gpa" json:"gpa"`
	Courses      []RecordCourse `json:"courses"`
}

// RecordCourse is one completed course on a transcript.
type RecordCourse struct {
	CourseID    string  `db:"course_id" json:"course_id"`
	Semester    string  `db:"semester" json:"semester"`
	FinalGrade  float64 `db:"final_grade" json:"final_grade"`
	LetterGrade string  `db:"letter_grade" json:"letter_grade"`
}
