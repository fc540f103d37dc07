package domain

// Role of an account
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User is the authenticated actor
type User struct {
	Username string
	Email    string
	Role     Role
}

// CanBook returns true if the user may select slots and submit requests
func (u *User) CanBook() bool {
	return u != nil && u.Role == RoleStudent
}

// IsAdmin returns true for administrators
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
