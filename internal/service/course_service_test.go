package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
)

func validDraft() models.CourseDraft {
	return models.CourseDraft{
		Code:        "cs301",
		Name:        "Algorithms",
		Description: "Design and analysis of algorithms.",
		Credits:     3,
		Semester:    "Spring 2024",
		MaxStudents: 25,
	}
}

func TestCourseServiceCoursesAndDetail(t *testing.T) {
	svc := NewCourseService(seedStore(), &fakeAcks{}, nil, nil)
	teacher := teacherAccount(t, "t1")

	assert.Equal(t, []string{"c1", "c3", "c5"}, summaryIDs(svc.Courses(teacher, "")))
	assert.Equal(t, []string{"c3"}, summaryIDs(svc.Courses(teacher, "compo")))

	detail, err := svc.Course(teacher, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, detail.RosterCount)
	assert.Len(t, detail.Schedule, 2)
	assert.Equal(t, "Dr. Sarah Johnson", detail.TeacherName)

	_, err = svc.Course(teacher, "c2")
	requireAppError(t, err, appErrors.ErrForbidden)
	_, err = svc.Course(teacher, "c404")
	requireAppError(t, err, appErrors.ErrNotFound)
}

func TestCourseServiceCreate(t *testing.T) {
	acks := &fakeAcks{}
	svc := NewCourseService(seedStore(), acks, nil, nil)
	teacher := teacherAccount(t, "t1")

	ack, err := svc.Create(context.Background(), teacher, validDraft())
	require.NoError(t, err)
	assert.Equal(t, models.AckCreateCourse, ack.Kind)
	assert.Equal(t, "CS301", ack.SubjectID)

	dup := validDraft()
	dup.Code = "cs201"
	_, err = svc.Create(context.Background(), teacher, dup)
	requireAppError(t, err, appErrors.ErrConflict)

	// same code in another semester is fine
	dup.Semester = "Fall 2024"
	_, err = svc.Create(context.Background(), teacher, dup)
	require.NoError(t, err)

	bad := validDraft()
	bad.Name = ""
	bad.MaxStudents = 0
	_, err = svc.Create(context.Background(), teacher, bad)
	requireAppError(t, err, appErrors.ErrValidation)
}

func TestCourseServiceUpdate(t *testing.T) {
	svc := NewCourseService(seedStore(), &fakeAcks{}, nil, nil)
	teacher := teacherAccount(t, "t1")
	ctx := context.Background()
	course, _ := seedStore().CourseByID("c1")

	unchanged := draftOf(course)
	_, err := svc.Update(ctx, teacher, "c1", unchanged)
	requireAppError(t, err, appErrors.ErrNoChanges)

	changed := draftOf(course)
	changed.MaxStudents = 35
	ack, err := svc.Update(ctx, teacher, "c1", changed)
	require.NoError(t, err)
	assert.Equal(t, models.AckUpdateCourse, ack.Kind)

	shrunk := draftOf(course)
	shrunk.MaxStudents = 10
	_, err = svc.Update(ctx, teacher, "c1", shrunk)
	requireAppError(t, err, appErrors.ErrValidation)

	clash := draftOf(course)
	clash.Code = "ENG105"
	_, err = svc.Update(ctx, teacher, "c1", clash)
	requireAppError(t, err, appErrors.ErrConflict)

	_, err = svc.Update(ctx, teacher, "c2", changed)
	requireAppError(t, err, appErrors.ErrForbidden)
}

func TestCourseServiceDelete(t *testing.T) {
	acks := &fakeAcks{}
	svc := NewCourseService(seedStore(), acks, nil, nil)

	ack, err := svc.Delete(context.Background(), teacherAccount(t, "t2"), "c4")
	require.NoError(t, err)
	assert.Equal(t, models.AckDeleteCourse, ack.Kind)
	assert.Equal(t, "Course deleted", ack.Title)

	_, err = svc.Delete(context.Background(), teacherAccount(t, "t2"), "c1")
	requireAppError(t, err, appErrors.ErrForbidden)
	assert.Len(t, acks.requests, 1)
}
