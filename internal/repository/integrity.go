package repository

import (
	"fmt"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

// IntegrityIssue describes a reference in the snapshot that queries will
// silently skip, or a record that breaks a data-model expectation.
type IntegrityIssue struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
	Detail string `json:"detail"`
}

func (i IntegrityIssue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Entity, i.ID, i.Detail)
}

// CheckIntegrity audits the dataset once, typically at startup. Queries keep
// skipping unresolved references regardless; this only makes them visible.
func CheckIntegrity(data Dataset) []IntegrityIssue {
	var issues []IntegrityIssue
	add := func(entity, id, format string, args ...interface{}) {
		issues = append(issues, IntegrityIssue{Entity: entity, ID: id, Detail: fmt.Sprintf(format, args...)})
	}

	users := make(map[string]models.User, len(data.Users))
	for _, u := range data.Users {
		if _, dup := users[u.ID]; dup {
			add("user", u.ID, "duplicate id")
			continue
		}
		if !u.Role.Valid() {
			add("user", u.ID, "unknown role %q", u.Role)
		}
		users[u.ID] = u
	}

	courses := make(map[string]struct{}, len(data.Courses))
	for _, c := range data.Courses {
		if _, dup := courses[c.ID]; dup {
			add("course", c.ID, "duplicate id")
		}
		courses[c.ID] = struct{}{}
		teacher, ok := users[c.TeacherID]
		switch {
		case !ok:
			add("course", c.ID, "teacher %s not found", c.TeacherID)
		case teacher.Role != models.RoleTeacher:
			add("course", c.ID, "teacher %s has role %s", c.TeacherID, teacher.Role)
		}
		if c.EnrolledStudents > c.MaxStudents {
			add("course", c.ID, "enrolled %d exceeds capacity %d", c.EnrolledStudents, c.MaxStudents)
		}
	}

	for _, s := range data.Schedules {
		if _, ok := courses[s.CourseID]; !ok {
			add("schedule", s.ID, "course %s not found", s.CourseID)
		}
	}

	active := make(map[string]string)
	for _, e := range data.Enrollments {
		if _, ok := users[e.StudentID]; !ok {
			add("enrollment", e.ID, "student %s not found", e.StudentID)
		}
		if _, ok := courses[e.CourseID]; !ok {
			add("enrollment", e.ID, "course %s not found", e.CourseID)
		}
		if !e.IsActive() {
			continue
		}
		key := e.StudentID + "|" + e.CourseID
		if first, dup := active[key]; dup {
			add("enrollment", e.ID, "duplicates active enrollment %s", first)
			continue
		}
		active[key] = e.ID
	}

	for _, g := range data.Grades {
		if _, ok := users[g.StudentID]; !ok {
			add("grade", g.ID, "student %s not found", g.StudentID)
		}
		if _, ok := courses[g.CourseID]; !ok {
			add("grade", g.ID, "course %s not found", g.CourseID)
		}
	}

	for _, rec := range data.AcademicRecords {
		if _, ok := users[rec.StudentID]; !ok {
			add("academic_record", rec.StudentID, "student not found")
		}
		for _, rc := range rec.Courses {
			if _, ok := courses[rc.CourseID]; !ok {
				add("academic_record", rec.StudentID, "course %s not found", rc.CourseID)
			}
		}
	}

	return issues
}
