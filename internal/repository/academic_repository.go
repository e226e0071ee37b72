package repository

import (
	"strings"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

// Dataset is the complete academic snapshot the portal serves.
type Dataset struct {
	Users           []models.User
	Courses         []models.Course
	Schedules       []models.Schedule
	Enrollments     []models.Enrollment
	Grades          []models.Grade
	AcademicRecords []models.AcademicRecord
}

// AcademicRepository is the read-only academic data store. All queries are
// pure: they scan the snapshot in store order, never mutate it and never fail.
// A miss is reported through the boolean result or an empty slice.
type AcademicRepository struct {
	data Dataset
}

// NewAcademicRepository takes a private copy of the dataset so later changes
// to the caller's slices cannot leak into the store.
func NewAcademicRepository(data Dataset) *AcademicRepository {
	records := make([]models.AcademicRecord, len(data.AcademicRecords))
	for i, rec := range data.AcademicRecords {
		rec.Courses = append([]models.RecordCourse(nil), rec.Courses...)
		records[i] = rec
	}
	return &AcademicRepository{data: Dataset{
		Users:           append([]models.User(nil), data.Users...),
		Courses:         append([]models.Course(nil), data.Courses...),
		Schedules:       append([]models.Schedule(nil), data.Schedules...),
		Enrollments:     append([]models.Enrollment(nil), data.Enrollments...),
		Grades:          append([]models.Grade(nil), data.Grades...),
		AcademicRecords: records,
	}}
}

// Courses returns the whole catalog in store order.
func (r *AcademicRepository) Courses() []models.Course {
	return append([]models.Course(nil), r.data.Courses...)
}

// Enrollments returns every enrollment in store order.
func (r *AcademicRepository) Enrollments() []models.Enrollment {
	return append([]models.Enrollment(nil), r.data.Enrollments...)
}

// CourseByID returns the first course with the given id.
func (r *AcademicRepository) CourseByID(id string) (models.Course, bool) {
	for _, c := range r.data.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// UserByID returns the first user with the given id.
func (r *AcademicRepository) UserByID(id string) (models.User, bool) {
	for _, u := range r.data.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByEmailAndRole finds the account a login refers to. Emails compare
// case-insensitively; the role must match exactly.
func (r *AcademicRepository) UserByEmailAndRole(email string, role models.UserRole) (models.User, bool) {
	for _, u := range r.data.Users {
		if u.Role == role && strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// GradesForStudent returns every grade row of the student.
func (r *AcademicRepository) GradesForStudent(studentID string) []models.Grade {
	out := make([]models.Grade, 0)
	for _, g := range r.data.Grades {
		if g.StudentID == studentID {
			out = append(out, g)
		}
	}
	return out
}

// CoursesForTeacher returns the courses taught by the teacher.
func (r *AcademicRepository) CoursesForTeacher(teacherID string) []models.Course {
	out := make([]models.Course, 0)
	for _, c := range r.data.Courses {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out
}

// EnrollmentsForStudent returns the student's enrollments of any status.
func (r *AcademicRepository) EnrollmentsForStudent(studentID string) []models.Enrollment {
	out := make([]models.Enrollment, 0)
	for _, e := range r.data.Enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}

// EnrolledCoursesForStudent resolves the student's active enrollments to
// courses. Enrollments pointing at unknown courses are skipped. Duplicate
// active enrollments yield the course more than once.
func (r *AcademicRepository) EnrolledCoursesForStudent(studentID string) []models.Course {
	out := make([]models.Course, 0)
	for _, e := range r.EnrollmentsForStudent(studentID) {
		if !e.IsActive() {
			continue
		}
		if c, ok := r.CourseByID(e.CourseID); ok {
			out = append(out, c)
		}
	}
	return out
}

// ScheduleForCourse returns the weekly meetings of the course.
func (r *AcademicRepository) ScheduleForCourse(courseID string) []models.Schedule {
	out := make([]models.Schedule, 0)
	for _, s := range r.data.Schedules {
		if s.CourseID == courseID {
			out = append(out, s)
		}
	}
	return out
}

// AcademicRecordForStudent returns the student's transcript snapshot. New or
// ungraded students have none.
func (r *AcademicRepository) AcademicRecordForStudent(studentID string) (models.AcademicRecord, bool) {
	for _, rec := range r.data.AcademicRecords {
		if rec.StudentID == studentID {
			rec.Courses = append([]models.RecordCourse(nil), rec.Courses...)
			return rec, true
		}
	}
	return models.AcademicRecord{}, false
}

// StudentsInCourse resolves the course's active enrollments to users,
// skipping references to unknown users.
func (r *AcademicRepository) StudentsInCourse(courseID string) []models.User {
	out := make([]models.User, 0)
	for _, e := range r.data.Enrollments {
		if e.CourseID != courseID || !e.IsActive() {
			continue
		}
		if u, ok := r.UserByID(e.StudentID); ok {
			out = append(out, u)
		}
	}
	return out
}

// StudentGradeForCourse returns the grade row for the (student, course) pair.
func (r *AcademicRepository) StudentGradeForCourse(studentID, courseID string) (models.Grade, bool) {
	for _, g := range r.data.Grades {
		if g.StudentID == studentID && g.CourseID == courseID {
			return g, true
		}
	}
	return models.Grade{}, false
}

// HasActiveEnrollment reports whether the student currently attends the course.
func (r *AcademicRepository) HasActiveEnrollment(studentID, courseID string) bool {
	for _, e := range r.data.Enrollments {
		if e.StudentID == studentID && e.CourseID == courseID && e.IsActive() {
			return true
		}
	}
	return false
}
