package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/middleware"
	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/internal/service"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
	"github.com/noah-isme/campus-portal-api/pkg/response"
)

type catalogService interface {
	AvailableCourses(student models.StudentAccount, search string) []dto.CourseSummary
	CourseDetail(student models.StudentAccount, courseID string) (*dto.CourseDetail, error)
	Enroll(ctx context.Context, student models.StudentAccount, courseID string) (*models.Ack, error)
	EnrolledCourses(student models.StudentAccount) []dto.EnrolledCourse
	Drop(ctx context.Context, student models.StudentAccount, courseID string) (*models.Ack, error)
}

type studentGradeService interface {
	StudentGrades(student models.StudentAccount, semester string) dto.StudentGrades
}

type recordService interface {
	Summary(ctx context.Context, student models.StudentAccount) (*dto.RecordSummary, bool, error)
}

type transcriptService interface {
	Transcript(ctx context.Context, student models.StudentAccount, format string) (*service.ExportFile, error)
}

// StudentHandler serves the student pages: catalog, enrollments, grades and
// academic record.
type StudentHandler struct {
	catalog catalogService
	grades  studentGradeService
	records recordService
	exports transcriptService
}

// NewStudentHandler constructs a StudentHandler. exports may be nil when
// transcript downloads are disabled.
func NewStudentHandler(catalog catalogService, grades studentGradeService, records recordService, exports transcriptService) *StudentHandler {
	return &StudentHandler{catalog: catalog, grades: grades, records: records, exports: exports}
}

// AvailableCourses godoc
// @Summary Available courses
// @Description Catalog courses the student is not enrolled in, filtered by name or code
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or code fragment"
// @Success 200 {object} response.Envelope
// @Router /student/courses/available [get]
func (h *StudentHandler) AvailableCourses(c *gin.Context) {
	student, ok := studentOrAbort(c)
	if !ok {
		return
	}
	courses := h.catalog.AvailableCourses(student, c.Query("search"))
	response.JSON(c, http.StatusOK, courses, gin.H{"total": len(courses)})
}

// Course godoc
// @Summary Course detail
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /student/courses/{id} [get]
func (h *StudentHandler) Course(c *gin.Context) {
	student, ok := studentOrAbort(c)
	if !ok {
		return
	}
	detail, err := h.catalog.CourseDetail(student, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Accepted for acknowledgement; refused when the course is full or already attended
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 202 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /student/courses/{id}/enroll [post]
func (h *StudentHandler) Enroll(c *gin.Context) {
	student, ok := studentOrAbort(c)
	if !ok {
		return
	}
	ack, err := h.catalog.Enroll(c.Request.Context(), student, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, ack)
}

// Enrolled godoc
// @Summary Enrolled courses
// @Description The student's active courses with their weekly schedule
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /student/enrolled [get]
func (h *StudentHandler) Enrolled(c *gin.Context) {
	student, ok := studentOrAbort(c)
	if !ok {
		return
	}
	courses := h.catalog.EnrolledCourses(student)
	response.JSON(c, http.StatusOK, courses, gin.H{"total": len(courses)})
}

// Drop godoc
// @Summary Drop a course
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 202 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /student/enrolled/{id}/drop [post]
func (h *StudentHandler) Drop(c *gin.Context) {
	student, ok := studentOrAbort(c)
	if !ok {
		return
	}
	ack, err := h.catalog.Drop(c.Request.Context(), student, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, ack)
}

// Grades godoc
// @Summary Grades
// @Description Enrolled courses with grade rows, optionally for one semester
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param semester query string false "Semester"
// @Success 200 {object} response.Envelope
// @Router /student/grades [get]
func (h *StudentHandler) Grades(c *gin.Context) {
	student, ok := studentOrAbort(c)
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, h.grades.StudentGrades(student, c.Query("semester")))
}

// Record godoc
// @Summary Academic record
// @Description GPA, credits, semester history and grade distribution. available=false when no record exists yet.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /student/record [get]
func (h *StudentHandler) Record(c *gin.Context) {
	student, ok := studentOrAbort(c)
	if !ok {
		return
	}
	summary, cacheHit, err := h.records.Summary(c.Request.Context(), student)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, summary, middleware.ExtractMeta(c))
}

// ExportRecord godoc
// @Summary Download transcript
// @Tags Student
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /student/record/export [get]
func (h *StudentHandler) ExportRecord(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.ErrFeatureDisabled)
		return
	}
	student, ok := studentOrAbort(c)
	if !ok {
		return
	}
	file, err := h.exports.Transcript(c.Request.Context(), student, c.DefaultQuery("format", service.FormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}
