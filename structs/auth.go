package structs

import (
	"time"

	"github.com/google/uuid"
)

type AuthClaims struct {
	Sub   int64     `json:"sub"`
	Email string    `json:"email"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
	Jti   uuid.UUID `json:"jti"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=2,max=100"`
	LastName        string `json:"last_name" validate:"required,min=2,max=100"`
	MiddleName      string `json:"middle_name" validate:"omitempty,max=100"`
	DateOfBirth     string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Phone           string `json:"phone" validate:"required,min=10,max=20"`
	Email           string `json:"email" validate:"required,email"`
	GDPRConsent     bool   `json:"gdpr_consent" validate:"required"`
	Password        string `json:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// RefreshRequest carries the expired access token alongside the opaque
// refresh token; the access token is how the flow recovers the user id.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       int64  `json:"user_id"`
	UserName     string `json:"user_name"`
}

type ProfileResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	MiddleName  string    `json:"middle_name,omitempty"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	GDPRConsent bool      `json:"gdpr_consent"`
}
