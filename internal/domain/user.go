package domain

import "time"

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	Organization string
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may reach the operator surface.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
