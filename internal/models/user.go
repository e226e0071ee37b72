package models

// UserRole represents the two portal roles.
type UserRole string

const (
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// Valid reports whether the role is one the portal knows about.
func (r UserRole) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// User is a portal account. Role is fixed at creation.
type User struct {
	ID           string   `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	Email        string   `db:"email" json:"email"`
	Role         UserRole `db:"role" json:"role"`
	ProfileImage *string  `db:"profile_image" json:"profile_image,omitempty"`
}

// UserInfo describes a user in responses.
type UserInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	ProfileImage *string  `json:"profile_image,omitempty"`
}

// Info projects the user onto its response shape.
func (u User) Info() UserInfo {
	return UserInfo{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, ProfileImage: u.ProfileImage}
}
