package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/middleware"
	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
	"github.com/noah-isme/campus-portal-api/pkg/response"
)

type teacherCourseService interface {
	Courses(teacher models.TeacherAccount, search string) []dto.CourseSummary
	Course(teacher models.TeacherAccount, courseID string) (*dto.TeacherCourseDetail, error)
	Create(ctx context.Context, teacher models.TeacherAccount, draft models.CourseDraft) (*models.Ack, error)
	Update(ctx context.Context, teacher models.TeacherAccount, courseID string, draft models.CourseDraft) (*models.Ack, error)
	Delete(ctx context.Context, teacher models.TeacherAccount, courseID string) (*models.Ack, error)
}

type rosterService interface {
	Roster(teacher models.TeacherAccount, courseID, search string) (*dto.Roster, error)
	SubmitGrades(ctx context.Context, teacher models.TeacherAccount, courseID string, sheet models.GradeSheet) (*models.Ack, error)
}

type weekService interface {
	Week(ctx context.Context, teacher models.TeacherAccount) (*dto.TeachingWeek, bool, error)
}

// TeacherHandler serves the teacher pages: courses, schedule and grading.
type TeacherHandler struct {
	courses  teacherCourseService
	grades   rosterService
	schedule weekService
}

// NewTeacherHandler constructs a TeacherHandler.
func NewTeacherHandler(courses teacherCourseService, grades rosterService, schedule weekService) *TeacherHandler {
	return &TeacherHandler{courses: courses, grades: grades, schedule: schedule}
}

// Courses godoc
// @Summary My courses
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or code fragment"
// @Success 200 {object} response.Envelope
// @Router /teacher/courses [get]
func (h *TeacherHandler) Courses(c *gin.Context) {
	teacher, ok := teacherOrAbort(c)
	if !ok {
		return
	}
	courses := h.courses.Courses(teacher, c.Query("search"))
	response.JSON(c, http.StatusOK, courses, gin.H{"total": len(courses)})
}

// Course godoc
// @Summary Course detail
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teacher/courses/{id} [get]
func (h *TeacherHandler) Course(c *gin.Context) {
	teacher, ok := teacherOrAbort(c)
	if !ok {
		return
	}
	detail, err := h.courses.Course(teacher, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// CreateCourse godoc
// @Summary Add a course
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CourseDraft true "Course"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /teacher/courses [post]
func (h *TeacherHandler) CreateCourse(c *gin.Context) {
	teacher, ok := teacherOrAbort(c)
	if !ok {
		return
	}
	var draft models.CourseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	ack, err := h.courses.Create(c.Request.Context(), teacher, draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, ack)
}

// UpdateCourse godoc
// @Summary Edit a course
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param payload body models.CourseDraft true "Course"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/courses/{id} [put]
func (h *TeacherHandler) UpdateCourse(c *gin.Context) {
	teacher, ok := teacherOrAbort(c)
	if !ok {
		return
	}
	var draft models.CourseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	ack, err := h.courses.Update(c.Request.Context(), teacher, c.Param("id"), draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, ack)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 202 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/courses/{id} [delete]
func (h *TeacherHandler) DeleteCourse(c *gin.Context) {
	teacher, ok := teacherOrAbort(c)
	if !ok {
		return
	}
	ack, err := h.courses.Delete(c.Request.Context(), teacher, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, ack)
}

// Schedule godoc
// @Summary Weekly schedule
// @Description Monday to Friday, each day ordered by start time
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /teacher/schedule [get]
func (h *TeacherHandler) Schedule(c *gin.Context) {
	teacher, ok := teacherOrAbort(c)
	if !ok {
		return
	}
	week, cacheHit, err := h.schedule.Week(c.Request.Context(), teacher)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, week, middleware.ExtractMeta(c))
}

// Roster godoc
// @Summary Course roster
// @Description Students actively enrolled, filtered by name or email, each with their grade row
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param search query string false "Name or email fragment"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/courses/{id}/roster [get]
func (h *TeacherHandler) Roster(c *gin.Context) {
	teacher, ok := teacherOrAbort(c)
	if !ok {
		return
	}
	roster, err := h.grades.Roster(teacher, c.Param("id"), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster, gin.H{"total": len(roster.Students)})
}

// SubmitGrades godoc
// @Summary Save grades
// @Description Scores are optional and bounded 0-100; every student must be on the roster
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param payload body models.GradeSheet true "Grade sheet"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/courses/{id}/grades [put]
func (h *TeacherHandler) SubmitGrades(c *gin.Context) {
	teacher, ok := teacherOrAbort(c)
	if !ok {
		return
	}
	var sheet models.GradeSheet
	if err := c.ShouldBindJSON(&sheet); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid grade sheet"))
		return
	}
	ack, err := h.grades.SubmitGrades(c.Request.Context(), teacher, c.Param("id"), sheet)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, ack)
}
