package dto

import "github.com/google/uuid"

type UserSignup struct {
	Email    string `json:"email" validate:"required,email" example:"asha@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"correct-horse"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,email" example:"asha@example.com"`
	Password string `json:"password" validate:"required" example:"correct-horse"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// AuthResponse is the verified session carried in ctx.Locals("user").
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Iat    float64   `json:"iat"`
	Expiry float64   `json:"expiry"`
}

type CurrentUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type SessionResponse struct {
	Token    string      `json:"token"`
	User     CurrentUser `json:"user"`
	Redirect string      `json:"redirect,omitempty"`
}
