package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

func TestCheckIntegritySeedIsClean(t *testing.T) {
	assert.Empty(t, CheckIntegrity(SeedDataset()))
}

func TestCheckIntegrityReportsProblems(t *testing.T) {
	data := Dataset{
		Users: []models.User{
			{ID: "t1", Role: models.RoleTeacher},
			{ID: "s1", Role: models.RoleStudent},
		},
		Courses: []models.Course{
			{ID: "c1", TeacherID: "t1", MaxStudents: 10, EnrolledStudents: 11},
			{ID: "c2", TeacherID: "s1", MaxStudents: 10},
			{ID: "c3", TeacherID: "t9", MaxStudents: 10},
		},
		Schedules: []models.Schedule{{ID: "sch1", CourseID: "c9"}},
		Enrollments: []models.Enrollment{
			{ID: "e1", StudentID: "s1", CourseID: "c1", Status: models.EnrollmentStatusActive},
			{ID: "e2", StudentID: "s1", CourseID: "c1", Status: models.EnrollmentStatusActive},
			{ID: "e3", StudentID: "s9", CourseID: "c1", Status: models.EnrollmentStatusDropped},
		},
		Grades:          []models.Grade{{ID: "g1", StudentID: "s1", CourseID: "c9"}},
		AcademicRecords: []models.AcademicRecord{{StudentID: "s9"}},
	}

	var got []string
	for _, issue := range CheckIntegrity(data) {
		got = append(got, issue.String())
	}

	assert.ElementsMatch(t, []string{
		"course c1: enrolled 11 exceeds capacity 10",
		"course c2: teacher s1 has role student",
		"course c3: teacher t9 not found",
		"schedule sch1: course c9 not found",
		"enrollment e2: duplicates active enrollment e1",
		"enrollment e3: student s9 not found",
		"grade g1: course c9 not found",
		"academic_record s9: student not found",
	}, got)
}
