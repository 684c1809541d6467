package dto

// RegisterRequest describes the signup payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account; the password hash never
// leaves the API.
type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Banned bool   `json:"banned"`
	Theme  string `json:"theme"`
}

// UpdateEmailRequest describes the email change payload.
type UpdateEmailRequest struct {
	Email string `json:"email"`
}

// UpdatePasswordRequest describes the password change payload.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateThemeRequest describes the theme preference payload.
type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

// StatsResponse summarizes accounts for the admin dashboard.
type StatsResponse struct {
	TotalUsers  int64 `json:"totalUsers"`
	BannedUsers int64 `json:"bannedUsers"`
	ActiveUsers int64 `json:"activeUsers"`
}
