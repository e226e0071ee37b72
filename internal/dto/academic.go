package dto

import "github.com/noah-isme/campus-portal-api/internal/models"

// CourseSummary is a catalog entry with its seat status.
type CourseSummary struct {
	models.Course
	TeacherName string `json:"teacher_name,omitempty"`
	IsFull      bool   `json:"is_full"`
	SeatsLeft   int    `json:"seats_left"`
}

// CourseDetail expands a course with its weekly meetings.
type CourseDetail struct {
	CourseSummary
	Schedule []models.Schedule `json:"schedule"`
	Enrolled bool              `json:"enrolled"`
}

// EnrolledCourse is one of the student's active courses with its meetings.
type EnrolledCourse struct {
	models.Course
	Schedule []models.Schedule `json:"schedule"`
}

// CourseGrade pairs an enrolled course with the student's grade row, which is
// nil until grading starts.
type CourseGrade struct {
	Course models.Course `json:"course"`
	Grade  *models.Grade `json:"grade"`
}

// StudentGrades is the student's grade overview.
type StudentGrades struct {
	Semester  string        `json:"semester,omitempty"`
	Semesters []string      `json:"semesters"`
	Courses   []CourseGrade `json:"courses"`
}

// RecordCourse is a transcript line joined with catalog data.
type RecordCourse struct {
	CourseID    string  `json:"course_id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Credits     int     `json:"credits"`
	Semester    string  `json:"semester"`
	FinalGrade  float64 `json:"final_grade"`
	LetterGrade string  `json:"letter_grade"`
}

// SemesterRecord groups transcript lines by semester.
type SemesterRecord struct {
	Semester string         `json:"semester"`
	Courses  []RecordCourse `json:"courses"`
}

// GradeBandCount counts transcript lines falling in one letter band.
type GradeBandCount struct {
	Band  string `json:"band"`
	Count int    `json:"count"`
}

// RecordSummary is the student's academic record view. Available is false
// when no record exists yet; the remaining fields are then zero.
type RecordSummary struct {
	Available        bool             `json:"available"`
	StudentID        string           `json:"student_id,omitempty"`
	GPA              float64          `json:"gpa"`
	TotalCredits     int              `json:"total_credits"`
	CoursesCompleted int              `json:"courses_completed"`
	Semesters        []SemesterRecord `json:"semesters"`
	Distribution     []GradeBandCount `json:"distribution"`
}

// TeacherCourseDetail is a course as seen by its teacher.
type TeacherCourseDetail struct {
	CourseSummary
	Schedule    []models.Schedule `json:"schedule"`
	RosterCount int               `json:"roster_count"`
}

// RosterEntry is one student on a course roster with their grade row.
type RosterEntry struct {
	Student models.UserInfo `json:"student"`
	Grade   *models.Grade   `json:"grade"`
}

// Roster lists the students actively enrolled in a course.
type Roster struct {
	Course   models.Course `json:"course"`
	Students []RosterEntry `json:"students"`
}

// TeachingSession is one meeting on the weekly teaching view.
type TeachingSession struct {
	models.Schedule
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
}

// TeachingDay holds a weekday's sessions ordered by start time.
type TeachingDay struct {
	Day      string            `json:"day"`
	Sessions []TeachingSession `json:"sessions"`
}

// TeachingWeek is the teacher's weekly timetable, Monday to Friday.
type TeachingWeek struct {
	TeacherID string        `json:"teacher_id"`
	Days      []TeachingDay `json:"days"`
}
