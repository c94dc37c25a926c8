package dto

import "bountyboard_backend/internal/models"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	UserID      int64           `json:"userId"`
	Role        models.UserRole `json:"role"`
}
