package dto

import authdomain "dietdiary-backend/internal/auth/domain"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest carries no format rules: a malformed email must fail the same
// way an unknown one does.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterResponse struct {
	Success bool               `json:"success"`
	Token   string             `json:"token"`
	Data    authdomain.Summary `json:"data"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type MeResponse struct {
	Success bool             `json:"success"`
	Data    *authdomain.User `json:"data"`
}

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthResult is what the usecase hands back after register or login.
type AuthResult struct {
	Token string
	User  *authdomain.User
}
