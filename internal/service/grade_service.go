package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
)

type gradeStore interface {
	CourseByID(id string) (models.Course, bool)
	EnrolledCoursesForStudent(studentID string) []models.Course
	StudentsInCourse(courseID string) []models.User
	StudentGradeForCourse(studentID, courseID string) (models.Grade, bool)
}

// GradeService serves grade views for both roles and accepts grade sheets.
type GradeService struct {
	store     gradeStore
	acks      ackSubmitter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs a GradeService.
func NewGradeService(store gradeStore, acks ackSubmitter, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &GradeService{store: store, acks: acks, validator: validate, logger: logger}
}

// StudentGrades lists the student's enrolled courses with their grade rows,
// optionally narrowed to one semester. Semesters holds every semester of the
// enrolled courses in first-appearance order.
func (s *GradeService) StudentGrades(student models.StudentAccount, semester string) dto.StudentGrades {
	courses := s.store.EnrolledCoursesForStudent(student.Student.ID)
	out := dto.StudentGrades{
		Semester:  semester,
		Semesters: make([]string, 0),
		Courses:   make([]dto.CourseGrade, 0, len(courses)),
	}
	seen := make(map[string]struct{})
	for _, c := range courses {
		if _, ok := seen[c.Semester]; !ok {
			seen[c.Semester] = struct{}{}
			out.Semesters = append(out.Semesters, c.Semester)
		}
		if semester != "" && c.Semester != semester {
			continue
		}
		row := dto.CourseGrade{Course: c}
		if g, ok := s.store.StudentGradeForCourse(student.Student.ID, c.ID); ok {
			row.Grade = &g
		}
		out.Courses = append(out.Courses, row)
	}
	return out
}

// Roster lists the students of one of the teacher's courses, filtered by name
// or email, each with their grade row.
func (s *GradeService) Roster(teacher models.TeacherAccount, courseID, search string) (*dto.Roster, error) {
	course, err := ownedCourse(s.store, teacher, courseID)
	if err != nil {
		return nil, err
	}
	out := &dto.Roster{Course: course, Students: make([]dto.RosterEntry, 0)}
	for _, u := range s.store.StudentsInCourse(course.ID) {
		if !matchesSearch(search, u.Name, u.Email) {
			continue
		}
		entry := dto.RosterEntry{Student: u.Info()}
		if g, ok := s.store.StudentGradeForCourse(u.ID, course.ID); ok {
			entry.Grade = &g
		}
		out.Students = append(out.Students, entry)
	}
	return out, nil
}

// SubmitGrades accepts a grade sheet for acknowledgement. Every entry must
// name a student on the course roster; scores are optional but bounded 0-100.
func (s *GradeService) SubmitGrades(ctx context.Context, teacher models.TeacherAccount, courseID string, sheet models.GradeSheet) (*models.Ack, error) {
	course, err := ownedCourse(s.store, teacher, courseID)
	if err != nil {
		return nil, err
	}
	if len(sheet.Entries) == 0 {
		return nil, appErrors.ErrNoChanges
	}
	if err := s.validator.Struct(sheet); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade sheet")
	}

	roster := make(map[string]struct{})
	for _, u := range s.store.StudentsInCourse(course.ID) {
		roster[u.ID] = struct{}{}
	}
	for _, e := range sheet.Entries {
		if _, ok := roster[e.StudentID]; !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("student %s is not enrolled in %s", e.StudentID, course.Code))
		}
	}

	s.logger.Info("grade sheet submitted",
		zap.String("teacher_id", teacher.Teacher.ID),
		zap.String("course_id", course.ID),
		zap.Int("entries", len(sheet.Entries)))

	return s.acks.Submit(ctx, models.AckRequest{
		Kind:      models.AckSaveGrades,
		ActorID:   teacher.Teacher.ID,
		SubjectID: course.ID,
		Title:     "Grades saved",
		Message:   "Student grades have been successfully updated.",
	})
}
