package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-portal-api/internal/middleware"
	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
	"github.com/noah-isme/campus-portal-api/pkg/response"
)

// sessionOrAbort returns the request's session, writing 401 when absent.
func sessionOrAbort(c *gin.Context) (*models.Session, bool) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return nil, false
	}
	return session, true
}

// studentOrAbort returns the signed-in student, writing 401 or 403 otherwise.
func studentOrAbort(c *gin.Context) (models.StudentAccount, bool) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return models.StudentAccount{}, false
	}
	student, ok := session.Account.(models.StudentAccount)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "access denied"))
		return models.StudentAccount{}, false
	}
	return student, true
}

// teacherOrAbort returns the signed-in teacher, writing 401 or 403 otherwise.
func teacherOrAbort(c *gin.Context) (models.TeacherAccount, bool) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return models.TeacherAccount{}, false
	}
	teacher, ok := session.Account.(models.TeacherAccount)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "access denied"))
		return models.TeacherAccount{}, false
	}
	return teacher, true
}
