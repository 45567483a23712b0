package dto

import (
	"time"

	"masteria.app/panel/internal/service"
)

type RegisterRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	CompanyName string `json:"company_name" binding:"required,min=1,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// SessionResponse also carries the token so non-browser clients can send it
// as a bearer token.
type SessionResponse struct {
	User      *UserResponse    `json:"user"`
	Company   *CompanyResponse `json:"company"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
}

func ToSessionResponse(s *service.Session) *SessionResponse {
	return &SessionResponse{
		User:      ToUserResponse(s.User),
		Company:   ToCompanyResponse(s.Company),
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}

type MeResponse struct {
	User    *UserResponse    `json:"user"`
	Company *CompanyResponse `json:"company"`
}
