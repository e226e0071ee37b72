package models

// Course is a catalog entry taught by one teacher in one semester.
type Course struct {
	ID               string `db:"id" json:"id"`
	Code             string `db:"code" json:"code"`
	Name             string `db:"name" json:"name"`
	Description      string `db:"description" json:"description"`
	Credits          int    `db:"credits" json:"credits"`
	TeacherID        string `db:"teacher_id" json:"teacher_id"`
	Semester         string `db:"semester" json:"semester"`
	MaxStudents      int    `db:"max_students" json:"max_students"`
	EnrolledStudents int    `db:"enrolled_students" json:"enrolled_students"`
}

// IsFull reports whether no seat is left. Enrollment must be refused once full.
func (c Course) IsFull() bool {
	return c.EnrolledStudents >= c.MaxStudents
}

// SeatsLeft returns the number of open seats, never negative.
func (c Course) SeatsLeft() int {
	if left := c.MaxStudents - c.EnrolledStudents; left > 0 {
		return left
	}
	return 0
}

// CourseDraft is the editable part of a course submitted by its teacher.
type CourseDraft struct {
	Code        string `json:"code" validate:"required,max=16"`
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=1000"`
	Credits     int    `json:"credits" validate:"min=0,max=12"`
	Semester    string `json:"semester" validate:"required"`
	MaxStudents int    `json:"max_students" validate:"min=1"`
}
