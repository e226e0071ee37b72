package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

func courseIDs(courses []models.Course) []string {
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}

func userIDs(users []models.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func TestLookupsByID(t *testing.T) {
	repo := NewAcademicRepository(SeedDataset())

	course, ok := repo.CourseByID("c2")
	require.True(t, ok)
	assert.Equal(t, "MATH201", course.Code)

	_, ok = repo.CourseByID("c99")
	assert.False(t, ok)

	user, ok := repo.UserByID("t1")
	require.True(t, ok)
	assert.Equal(t, models.RoleTeacher, user.Role)

	_, ok = repo.UserByID("")
	assert.False(t, ok)
}

func TestLookupReturnsFirstMatchInStoreOrder(t *testing.T) {
	repo := NewAcademicRepository(Dataset{Courses: []models.Course{
		{ID: "c1", Code: "FIRST"},
		{ID: "c1", Code: "SECOND"},
	}})

	course, ok := repo.CourseByID("c1")
	require.True(t, ok)
	assert.Equal(t, "FIRST", course.Code)
}

func TestUserByEmailAndRole(t *testing.T) {
	repo := NewAcademicRepository(SeedDataset())

	user, ok := repo.UserByEmailAndRole("EWilson@college.edu", models.RoleStudent)
	require.True(t, ok)
	assert.Equal(t, "s1", user.ID)

	_, ok = repo.UserByEmailAndRole("ewilson@college.edu", models.RoleTeacher)
	assert.False(t, ok)
}

func TestEnrolledCoursesForStudentScenario(t *testing.T) {
	repo := NewAcademicRepository(SeedDataset())

	assert.Equal(t, []string{"c1", "c2"}, courseIDs(repo.EnrolledCoursesForStudent("s1")))

	grade, ok := repo.StudentGradeForCourse("s1", "c1")
	require.True(t, ok)
	require.NotNil(t, grade.FinalGrade)
	require.NotNil(t, grade.LetterGrade)
	assert.Equal(t, 89.5, *grade.FinalGrade)
	assert.Equal(t, "A-", *grade.LetterGrade)

	_, ok = repo.StudentGradeForCourse("s1", "c3")
	assert.False(t, ok)
}

func TestEnrolledCoursesSkipsInactiveAndDanglingEnrollments(t *testing.T) {
	repo := NewAcademicRepository(Dataset{
		Courses: []models.Course{{ID: "c1"}, {ID: "c2"}},
		Enrollments: []models.Enrollment{
			{ID: "e1", StudentID: "s1", CourseID: "c2", Status: models.EnrollmentStatusActive},
			{ID: "e2", StudentID: "s1", CourseID: "c1", Status: models.EnrollmentStatusDropped},
			{ID: "e3", StudentID: "s1", CourseID: "ghost", Status: models.EnrollmentStatusActive},
			{ID: "e4", StudentID: "s1", CourseID: "c1", Status: models.EnrollmentStatusCompleted},
			{ID: "e5", StudentID: "s2", CourseID: "c1", Status: models.EnrollmentStatusActive},
		},
	})

	assert.Equal(t, []string{"c2"}, courseIDs(repo.EnrolledCoursesForStudent("s1")))
	assert.Len(t, repo.EnrollmentsForStudent("s1"), 4)
}

func TestEnrolledCoursesKeepsDuplicateActiveEnrollments(t *testing.T) {
	repo := NewAcademicRepository(Dataset{
		Courses: []models.Course{{ID: "c1"}},
		Enrollments: []models.Enrollment{
			{ID: "e1", StudentID: "s1", CourseID: "c1", Status: models.EnrollmentStatusActive},
			{ID: "e2", StudentID: "s1", CourseID: "c1", Status: models.EnrollmentStatusActive},
		},
	})

	assert.Equal(t, []string{"c1", "c1"}, courseIDs(repo.EnrolledCoursesForStudent("s1")))
}

func TestScheduleForCourseOnlyReturnsMatchingRows(t *testing.T) {
	repo := NewAcademicRepository(SeedDataset())

	for _, course := range repo.Courses() {
		for _, row := range repo.ScheduleForCourse(course.ID) {
			assert.Equal(t, course.ID, row.CourseID)
		}
	}
	rows := repo.ScheduleForCourse("c1")
	require.Len(t, rows, 2)
	assert.Equal(t, "sch1", rows[0].ID)
	assert.Equal(t, "sch2", rows[1].ID)
	assert.Empty(t, repo.ScheduleForCourse("c99"))
}

func TestStudentsInCourse(t *testing.T) {
	repo := NewAcademicRepository(SeedDataset())

	assert.Equal(t, []string{"s1", "s3"}, userIDs(repo.StudentsInCourse("c2")))
	// s3 dropped c3
	assert.Equal(t, []string{"s2"}, userIDs(repo.StudentsInCourse("c3")))
	assert.Empty(t, repo.StudentsInCourse("c5"))
}

func TestStudentsInCourseSkipsUnknownUsers(t *testing.T) {
	repo := NewAcademicRepository(Dataset{
		Users: []models.User{{ID: "s1", Role: models.RoleStudent}},
		Enrollments: []models.Enrollment{
			{ID: "e1", StudentID: "ghost", CourseID: "c1", Status: models.EnrollmentStatusActive},
			{ID: "e2", StudentID: "s1", CourseID: "c1", Status: models.EnrollmentStatusActive},
		},
	})

	assert.Equal(t, []string{"s1"}, userIDs(repo.StudentsInCourse("c1")))
}

func TestFiltersReturnEmptyNotNil(t *testing.T) {
	repo := NewAcademicRepository(Dataset{})

	assert.NotNil(t, repo.GradesForStudent("s1"))
	assert.NotNil(t, repo.CoursesForTeacher("t1"))
	assert.NotNil(t, repo.EnrollmentsForStudent("s1"))
	assert.NotNil(t, repo.EnrolledCoursesForStudent("s1"))
	assert.NotNil(t, repo.ScheduleForCourse("c1"))
	assert.NotNil(t, repo.StudentsInCourse("c1"))
}

func TestCoursesForTeacherAndGradesForStudent(t *testing.T) {
	repo := NewAcademicRepository(SeedDataset())

	assert.Equal(t, []string{"c1", "c3", "c5"}, courseIDs(repo.CoursesForTeacher("t1")))
	grades := repo.GradesForStudent("s2")
	require.Len(t, grades, 2)
	assert.Equal(t, "g3", grades[0].ID)
	assert.Equal(t, "g5", grades[1].ID)
	assert.False(t, grades[1].IsFinalized())
}

func TestAcademicRecordForStudent(t *testing.T) {
	repo := NewAcademicRepository(SeedDataset())

	record, ok := repo.AcademicRecordForStudent("s2")
	require.True(t, ok)
	assert.Equal(t, 3.85, record.GPA)
	assert.Len(t, record.Courses, 2)

	_, ok = repo.AcademicRecordForStudent("s-new")
	assert.False(t, ok)
}

func TestRepositoryIsIsolatedFromCallerMutation(t *testing.T) {
	data := SeedDataset()
	repo := NewAcademicRepository(data)

	data.Courses[0].Code = "MUTATED"
	data.AcademicRecords[0].Courses[0].LetterGrade = "F"

	course, _ := repo.CourseByID("c1")
	assert.Equal(t, "CS101", course.Code)
	record, _ := repo.AcademicRecordForStudent("s1")
	assert.Equal(t, "A-", record.Courses[0].LetterGrade)

	record.Courses[0].LetterGrade = "F"
	again, _ := repo.AcademicRecordForStudent("s1")
	assert.Equal(t, "A-", again.Courses[0].LetterGrade)
}

func TestHasActiveEnrollment(t *testing.T) {
	repo := NewAcademicRepository(SeedDataset())

	assert.True(t, repo.HasActiveEnrollment("s2", "c3"))
	assert.False(t, repo.HasActiveEnrollment("s3", "c3"))
	assert.False(t, repo.HasActiveEnrollment("s1", "c5"))
}
