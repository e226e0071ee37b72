package models

import "time"

// Account is the signed-in principal. It is a closed set: TeacherAccount and
// StudentAccount are the only implementations.
type Account interface {
	Profile() User
	Role() UserRole
	sealed()
}

// TeacherAccount is an account acting as a teacher.
type TeacherAccount struct {
	Teacher User
}

func (a TeacherAccount) Profile() User  { return a.Teacher }
func (a TeacherAccount) Role() UserRole { return RoleTeacher }
func (TeacherAccount) sealed()          {}

// StudentAccount is an account acting as a student.
type StudentAccount struct {
	Student User
}

func (a StudentAccount) Profile() User  { return a.Student }
func (a StudentAccount) Role() UserRole { return RoleStudent }
func (StudentAccount) sealed()          {}

// AccountFor wraps a user in the variant matching its role.
func AccountFor(u User) (Account, bool) {
	switch u.Role {
	case RoleTeacher:
		return TeacherAccount{Teacher: u}, true
	case RoleStudent:
		return StudentAccount{Student: u}, true
	default:
		return nil, false
	}
}

// Session is the per-request view of a login. It is built from a verified
// token and passed explicitly to every call that needs the current user.
type Session struct {
	TokenID   string
	Account   Account
	ExpiresAt time.Time
}

// UserID returns the signed-in user's id.
func (s *Session) UserID() string {
	if s == nil || s.Account == nil {
		return ""
	}
	return s.Account.Profile().ID
}
