package dto

import "miniblog/app/models"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}
