package models

import (
	"time"
)

// Role is the account role assigned by the backend
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents the signed-in account as returned by the auth endpoints
type User struct {
	ID        int64     `json:"id" form:"-"`
	FullName  string    `json:"full_name" form:"full_name"`
	Email     string    `json:"email" form:"email"`
	Role      Role      `json:"role" form:"role"`
	ImageURL  string    `json:"image_url,omitempty" form:"image_url"`
	Verified  bool      `json:"is_verified,omitempty" form:"-"`
	CreatedAt time.Time `json:"created_at,omitempty" form:"-"`
}

// IsAdmin reports whether the user may open admin pages
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ValidRoles defines allowed user roles
var ValidRoles = map[Role]bool{
	RoleUser:  true,
	RoleAdmin: true,
}

// UserInput is the admin create/update payload for users
type UserInput struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Role     Role   `json:"role" form:"role"`
	Password string `json:"password,omitempty" form:"password"`
	ImageURL string `json:"image_url,omitempty" form:"image_url"`
}
