package models

import "strings"

type UserRole string

const (
	RoleClient  UserRole = "client"
	RoleCleaner UserRole = "cleaner"
	RoleAdmin   UserRole = "admin"
)

// User is an account. Users are never updated after registration.
type User struct {
	ID           uint     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username     string   `json:"username" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string   `json:"passwordHash" gorm:"size:255;not null"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;check:role IN ('client','cleaner','admin')"`
}

// PublicUser is the view of a user that is safe to return to callers
type PublicUser struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// Public strips the password hash
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Role: u.Role}
}

// ParseRole normalises a role string and reports whether it is known
func ParseRole(s string) (UserRole, bool) {
	role := UserRole(strings.TrimSpace(s))
	switch role {
	case RoleClient, RoleCleaner, RoleAdmin:
		return role, true
	default:
		return "", false
	}
}

// IsClient checks if the user is a client
func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// IsCleaner checks if the user is a cleaner
func (u *User) IsCleaner() bool {
	return u.Role == RoleCleaner
}

// IsAdmin checks if the user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
