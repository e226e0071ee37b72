package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-portal-api/internal/middleware"
	"github.com/noah-isme/campus-portal-api/internal/models"
)

// Routes groups the handlers mounted by Register.
type Routes struct {
	Auth    *AuthHandler
	Acks    *AckHandler
	Student *StudentHandler
	Teacher *TeacherHandler
	Metrics *MetricsHandler
}

// RouterConfig controls where and which routes are mounted.
type RouterConfig struct {
	APIPrefix      string
	MetricsEnabled bool
	ExportsEnabled bool
}

// Register mounts probe, metrics and API routes on r. auth guards every
// route except probes and login.
func Register(r *gin.Engine, cfg RouterConfig, auth middleware.SessionAuthenticator, routes Routes) {
	r.GET("/health", routes.Metrics.Health)
	r.GET("/ready", routes.Metrics.Ready)
	if cfg.MetricsEnabled {
		r.GET("/metrics", routes.Metrics.Prometheus)
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())
	api.POST("/auth/login", routes.Auth.Login)

	secured := api.Group("")
	secured.Use(middleware.Session(auth))
	secured.POST("/auth/logout", routes.Auth.Logout)
	secured.GET("/auth/me", routes.Auth.Me)
	secured.GET("/acks/:id", routes.Acks.Get)

	student := secured.Group("/student")
	student.Use(middleware.RequireRoles(models.RoleStudent))
	student.GET("/courses/available", routes.Student.AvailableCourses)
	student.GET("/courses/:id", routes.Student.Course)
	student.POST("/courses/:id/enroll", routes.Student.Enroll)
	student.GET("/enrolled", routes.Student.Enrolled)
	student.POST("/enrolled/:id/drop", routes.Student.Drop)
	student.GET("/grades", routes.Student.Grades)
	student.GET("/record", routes.Student.Record)
	if cfg.ExportsEnabled {
		student.GET("/record/export", routes.Student.ExportRecord)
	}

	teacher := secured.Group("/teacher")
	teacher.Use(middleware.RequireRoles(models.RoleTeacher))
	teacher.GET("/courses", routes.Teacher.Courses)
	teacher.POST("/courses", routes.Teacher.CreateCourse)
	teacher.GET("/courses/:id", routes.Teacher.Course)
	teacher.PUT("/courses/:id", routes.Teacher.UpdateCourse)
	teacher.DELETE("/courses/:id", routes.Teacher.DeleteCourse)
	teacher.GET("/courses/:id/roster", routes.Teacher.Roster)
	teacher.PUT("/courses/:id/grades", routes.Teacher.SubmitGrades)
	teacher.GET("/schedule", routes.Teacher.Schedule)
}
