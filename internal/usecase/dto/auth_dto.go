package dto

import "github.com/transport-admin/internal/domain"

// SignInRequest - запрос на вход в панель управления
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignInResponse - ответ успешного входа
type SignInResponse struct {
	Token string            `json:"token"`
	User  *domain.StaffUser `json:"user"`
}
