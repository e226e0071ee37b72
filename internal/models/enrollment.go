package models

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

// Possible enrollment statuses. Dropped and completed are terminal.
const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
)

// IsTerminal reports whether no further transition is possible.
func (s EnrollmentStatus) IsTerminal() bool {
	return s == EnrollmentStatusDropped || s == EnrollmentStatusCompleted
}

// CanTransition reports whether moving from s to next is allowed.
func (s EnrollmentStatus) CanTransition(next EnrollmentStatus) bool {
	return s == EnrollmentStatusActive && next.IsTerminal()
}

// Enrollment links one student to one course.
type Enrollment struct {
	ID             string           `db:"id" json:"id"`
	StudentID      string           `db:"student_id" json:"student_id"`
	CourseID       string           `db:"course_id" json:"course_id"`
	EnrollmentDate string           `db:"enrollment_date" json:"enrollment_date"`
	Status         EnrollmentStatus `db:"status" json:"status"`
}

// IsActive reports whether the enrollment counts toward rosters and schedules.
func (e Enrollment) IsActive() bool {
	return e.Status == EnrollmentStatusActive
}
