package login

import "github.com/m04kA/SMC-FacilityBookingService/internal/domain"

// LoginRequest HTTP модель запроса входа; login принимает email или имя пользователя
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UserResponse HTTP модель аутентифицированного пользователя
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
