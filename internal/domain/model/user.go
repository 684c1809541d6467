package model

import "time"

// Role defines the authorization level of a user account.
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleUser  Role = "user"
)

// Theme is a UI preference stored per user.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// User represents a registered customer or staff member.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Banned       bool
	Theme        Theme
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserStats aggregates account counters for the admin dashboard.
type UserStats struct {
	Total  int64
	Banned int64
	Active int64
}

// CanManage reports whether the role grants admin-console write access.
func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleAdmin
}

// IsStaff reports whether the role grants order fulfillment access.
func (r Role) IsStaff() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleStaff
}
