package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
)

type catalogStore interface {
	Courses() []models.Course
	CourseByID(id string) (models.Course, bool)
	UserByID(id string) (models.User, bool)
	EnrolledCoursesForStudent(studentID string) []models.Course
	ScheduleForCourse(courseID string) []models.Schedule
	HasActiveEnrollment(studentID, courseID string) bool
}

type ackSubmitter interface {
	Submit(ctx context.Context, req models.AckRequest) (*models.Ack, error)
}

// CatalogService serves the student's course catalog and enrollment actions.
type CatalogService struct {
	store  catalogStore
	acks   ackSubmitter
	logger *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(store catalogStore, acks ackSubmitter, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{store: store, acks: acks, logger: logger}
}

// AvailableCourses lists catalog courses the student is not actively enrolled
// in, filtered by name or code. Full courses are listed and flagged.
func (s *CatalogService) AvailableCourses(student models.StudentAccount, search string) []dto.CourseSummary {
	out := make([]dto.CourseSummary, 0)
	for _, c := range s.store.Courses() {
		if s.store.HasActiveEnrollment(student.Student.ID, c.ID) {
			continue
		}
		if !matchesSearch(search, c.Name, c.Code) {
			continue
		}
		out = append(out, s.summary(c))
	}
	return out
}

// CourseDetail returns a catalog course with its schedule.
func (s *CatalogService) CourseDetail(student models.StudentAccount, courseID string) (*dto.CourseDetail, error) {
	course, ok := s.store.CourseByID(courseID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return &dto.CourseDetail{
		CourseSummary: s.summary(course),
		Schedule:      s.store.ScheduleForCourse(course.ID),
		Enrolled:      s.store.HasActiveEnrollment(student.Student.ID, course.ID),
	}, nil
}

// Enroll accepts an enrollment request for acknowledgement. Full courses and
// courses the student already attends are refused.
func (s *CatalogService) Enroll(ctx context.Context, student models.StudentAccount, courseID string) (*models.Ack, error) {
	course, ok := s.store.CourseByID(courseID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if s.store.HasActiveEnrollment(student.Student.ID, course.ID) {
		return nil, appErrors.ErrAlreadyEnrolled
	}
	if course.IsFull() {
		return nil, appErrors.ErrCourseFull
	}

	return s.acks.Submit(ctx, models.AckRequest{
		Kind:      models.AckEnroll,
		ActorID:   student.Student.ID,
		SubjectID: course.ID,
		Title:     "Successfully enrolled",
		Message:   fmt.Sprintf("You've been enrolled in %s - %s.", course.Code, course.Name),
	})
}

// EnrolledCourses lists the student's active courses with their schedules.
func (s *CatalogService) EnrolledCourses(student models.StudentAccount) []dto.EnrolledCourse {
	courses := s.store.EnrolledCoursesForStudent(student.Student.ID)
	out := make([]dto.EnrolledCourse, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.EnrolledCourse{Course: c, Schedule: s.store.ScheduleForCourse(c.ID)})
	}
	return out
}

// Drop accepts a drop request for a course the student actively attends.
func (s *CatalogService) Drop(ctx context.Context, student models.StudentAccount, courseID string) (*models.Ack, error) {
	course, ok := s.store.CourseByID(courseID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if !s.store.HasActiveEnrollment(student.Student.ID, course.ID) {
		return nil, appErrors.ErrNotEnrolled
	}

	return s.acks.Submit(ctx, models.AckRequest{
		Kind:      models.AckDrop,
		ActorID:   student.Student.ID,
		SubjectID: course.ID,
		Title:     "Course dropped",
		Message:   fmt.Sprintf("You have dropped %s.", course.Name),
	})
}

func (s *CatalogService) summary(c models.Course) dto.CourseSummary {
	out := dto.CourseSummary{Course: c, IsFull: c.IsFull(), SeatsLeft: c.SeatsLeft()}
	if teacher, ok := s.store.UserByID(c.TeacherID); ok {
		out.TeacherName = teacher.Name
	}
	return out
}
