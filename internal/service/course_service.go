package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
)

type courseLookup interface {
	CourseByID(id string) (models.Course, bool)
}

type courseStore interface {
	courseLookup
	Courses() []models.Course
	CoursesForTeacher(teacherID string) []models.Course
	ScheduleForCourse(courseID string) []models.Schedule
	StudentsInCourse(courseID string) []models.User
}

// ownedCourse resolves a course the teacher teaches. Unknown ids are not
// found; courses of other teachers are forbidden.
func ownedCourse(store courseLookup, teacher models.TeacherAccount, courseID string) (models.Course, error) {
	course, ok := store.CourseByID(courseID)
	if !ok {
		return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if course.TeacherID != teacher.Teacher.ID {
		return models.Course{}, appErrors.Clone(appErrors.ErrForbidden, "course is taught by another teacher")
	}
	return course, nil
}

// CourseService manages the teacher's own courses. Changes are simulated and
// acknowledged, never stored.
type CourseService struct {
	store     courseStore
	acks      ackSubmitter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(store courseStore, acks ackSubmitter, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{store: store, acks: acks, validator: validate, logger: logger}
}

// Courses lists the teacher's courses filtered by name or code.
func (s *CourseService) Courses(teacher models.TeacherAccount, search string) []dto.CourseSummary {
	out := make([]dto.CourseSummary, 0)
	for _, c := range s.store.CoursesForTeacher(teacher.Teacher.ID) {
		if !matchesSearch(search, c.Name, c.Code) {
			continue
		}
		out = append(out, dto.CourseSummary{Course: c, TeacherName: teacher.Teacher.Name, IsFull: c.IsFull(), SeatsLeft: c.SeatsLeft()})
	}
	return out
}

// Course returns one of the teacher's courses with schedule and roster size.
func (s *CourseService) Course(teacher models.TeacherAccount, courseID string) (*dto.TeacherCourseDetail, error) {
	course, err := ownedCourse(s.store, teacher, courseID)
	if err != nil {
		return nil, err
	}
	return &dto.TeacherCourseDetail{
		CourseSummary: dto.CourseSummary{Course: course, TeacherName: teacher.Teacher.Name, IsFull: course.IsFull(), SeatsLeft: course.SeatsLeft()},
		Schedule:      s.store.ScheduleForCourse(course.ID),
		RosterCount:   len(s.store.StudentsInCourse(course.ID)),
	}, nil
}

// Create accepts a new course for acknowledgement.
func (s *CourseService) Create(ctx context.Context, teacher models.TeacherAccount, draft models.CourseDraft) (*models.Ack, error) {
	draft = normalizeDraft(draft)
	if err := s.validator.Struct(draft); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if s.codeTaken(draft, "") {
		return nil, appErrors.Clone(appErrors.ErrConflict, "course code already used this semester")
	}

	s.logger.Info("course create submitted", zap.String("teacher_id", teacher.Teacher.ID), zap.String("code", draft.Code))
	return s.acks.Submit(ctx, models.AckRequest{
		Kind:      models.AckCreateCourse,
		ActorID:   teacher.Teacher.ID,
		SubjectID: draft.Code,
		Title:     "Course added",
		Message:   "The new course has been successfully added.",
	})
}

// Update accepts changes to one of the teacher's courses for acknowledgement.
func (s *CourseService) Update(ctx context.Context, teacher models.TeacherAccount, courseID string, draft models.CourseDraft) (*models.Ack, error) {
	course, err := ownedCourse(s.store, teacher, courseID)
	if err != nil {
		return nil, err
	}
	draft = normalizeDraft(draft)
	if err := s.validator.Struct(draft); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if draft == draftOf(course) {
		return nil, appErrors.ErrNoChanges
	}
	if draft.MaxStudents < course.EnrolledStudents {
		return nil, appErrors.Clone(appErrors.ErrValidation, "max students is below current enrollment")
	}
	if s.codeTaken(draft, course.ID) {
		return nil, appErrors.Clone(appErrors.ErrConflict, "course code already used this semester")
	}

	s.logger.Info("course update submitted", zap.String("teacher_id", teacher.Teacher.ID), zap.String("course_id", course.ID))
	return s.acks.Submit(ctx, models.AckRequest{
		Kind:      models.AckUpdateCourse,
		ActorID:   teacher.Teacher.ID,
		SubjectID: course.ID,
		Title:     "Course updated",
		Message:   "The course has been successfully updated.",
	})
}

// Delete accepts removal of one of the teacher's courses for acknowledgement.
func (s *CourseService) Delete(ctx context.Context, teacher models.TeacherAccount, courseID string) (*models.Ack, error) {
	course, err := ownedCourse(s.store, teacher, courseID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("course delete submitted", zap.String("teacher_id", teacher.Teacher.ID), zap.String("course_id", course.ID))
	return s.acks.Submit(ctx, models.AckRequest{
		Kind:      models.AckDeleteCourse,
		ActorID:   teacher.Teacher.ID,
		SubjectID: course.ID,
		Title:     "Course deleted",
		Message:   "The course has been successfully deleted.",
	})
}

// codeTaken reports whether another course already uses the draft's code in
// the same semester. exceptID is the course being edited.
func (s *CourseService) codeTaken(draft models.CourseDraft, exceptID string) bool {
	for _, c := range s.store.Courses() {
		if c.ID == exceptID {
			continue
		}
		if strings.EqualFold(c.Code, draft.Code) && c.Semester == draft.Semester {
			return true
		}
	}
	return false
}

func normalizeDraft(d models.CourseDraft) models.CourseDraft {
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Semester = strings.TrimSpace(d.Semester)
	return d
}

func draftOf(c models.Course) models.CourseDraft {
	return models.CourseDraft{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Credits:     c.Credits,
		Semester:    c.Semester,
		MaxStudents: c.MaxStudents,
	}
}
