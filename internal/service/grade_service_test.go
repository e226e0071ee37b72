package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
)

func score(v float64) *float64 { return &v }

func TestStudentGrades(t *testing.T) {
	svc := NewGradeService(seedStore(), &fakeAcks{}, nil, nil)

	grades := svc.StudentGrades(studentAccount(t, "s1"), "")
	assert.Equal(t, []string{"Fall 2023"}, grades.Semesters)
	require.Len(t, grades.Courses, 2)
	require.NotNil(t, grades.Courses[0].Grade)
	assert.Equal(t, 89.5, *grades.Courses[0].Grade.FinalGrade)
	assert.Equal(t, "A-", *grades.Courses[0].Grade.LetterGrade)

	filtered := svc.StudentGrades(studentAccount(t, "s1"), "Spring 2024")
	assert.Empty(t, filtered.Courses)
	assert.Equal(t, []string{"Fall 2023"}, filtered.Semesters)
}

func TestStudentGradesPendingGrade(t *testing.T) {
	svc := NewGradeService(seedStore(), &fakeAcks{}, nil, nil)

	grades := svc.StudentGrades(studentAccount(t, "s2"), "")
	require.Len(t, grades.Courses, 2)
	pending := grades.Courses[1]
	assert.Equal(t, "c3", pending.Course.ID)
	require.NotNil(t, pending.Grade)
	assert.Nil(t, pending.Grade.FinalGrade)
	assert.False(t, pending.Grade.IsFinalized())
}

func TestRoster(t *testing.T) {
	svc := NewGradeService(seedStore(), &fakeAcks{}, nil, nil)
	teacher := teacherAccount(t, "t1")

	roster, err := svc.Roster(teacher, "c1", "")
	require.NoError(t, err)
	require.Len(t, roster.Students, 2)
	assert.Equal(t, "s1", roster.Students[0].Student.ID)
	assert.Equal(t, "s2", roster.Students[1].Student.ID)

	filtered, err := svc.Roster(teacher, "c1", "TAYLOR")
	require.NoError(t, err)
	require.Len(t, filtered.Students, 1)
	assert.Equal(t, "s2", filtered.Students[0].Student.ID)

	// course c5 has no students and no grades
	empty, err := svc.Roster(teacher, "c5", "")
	require.NoError(t, err)
	assert.Empty(t, empty.Students)
}

func TestRosterOwnership(t *testing.T) {
	svc := NewGradeService(seedStore(), &fakeAcks{}, nil, nil)

	_, err := svc.Roster(teacherAccount(t, "t2"), "c1", "")
	requireAppError(t, err, appErrors.ErrForbidden)

	_, err = svc.Roster(teacherAccount(t, "t2"), "c404", "")
	requireAppError(t, err, appErrors.ErrNotFound)
}

func TestSubmitGrades(t *testing.T) {
	acks := &fakeAcks{}
	svc := NewGradeService(seedStore(), acks, nil, nil)
	teacher := teacherAccount(t, "t1")

	ack, err := svc.SubmitGrades(context.Background(), teacher, "c1", models.GradeSheet{Entries: []models.GradeEntry{
		{StudentID: "s1", Midterm: score(90), Final: nil},
		{StudentID: "s2", Attendance: score(100)},
	}})
	require.NoError(t, err)
	assert.Equal(t, models.AckSaveGrades, ack.Kind)
	assert.Equal(t, "c1", ack.SubjectID)
	assert.Equal(t, "Grades saved", ack.Title)
	require.Len(t, acks.requests, 1)
}

func TestSubmitGradesRejectsInvalidSheets(t *testing.T) {
	acks := &fakeAcks{}
	svc := NewGradeService(seedStore(), acks, nil, nil)
	teacher := teacherAccount(t, "t1")
	ctx := context.Background()

	_, err := svc.SubmitGrades(ctx, teacher, "c1", models.GradeSheet{})
	requireAppError(t, err, appErrors.ErrNoChanges)

	_, err = svc.SubmitGrades(ctx, teacher, "c1", models.GradeSheet{Entries: []models.GradeEntry{{StudentID: "s1", Final: score(120)}}})
	requireAppError(t, err, appErrors.ErrValidation)

	_, err = svc.SubmitGrades(ctx, teacher, "c1", models.GradeSheet{Entries: []models.GradeEntry{{StudentID: "s1", Midterm: score(-1)}}})
	requireAppError(t, err, appErrors.ErrValidation)

	_, err = svc.SubmitGrades(ctx, teacher, "c1", models.GradeSheet{Entries: []models.GradeEntry{{StudentID: "s3", Midterm: score(70)}}})
	requireAppError(t, err, appErrors.ErrValidation)

	_, err = svc.SubmitGrades(ctx, teacherAccount(t, "t2"), "c1", models.GradeSheet{Entries: []models.GradeEntry{{StudentID: "s1"}}})
	requireAppError(t, err, appErrors.ErrForbidden)

	assert.Empty(t, acks.requests)
}
