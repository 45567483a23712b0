package dto

import (
	"time"

	"masteria.app/panel/internal/model"
)

type CreateUserRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=255"`
	Email    string     `json:"email" binding:"required,email,max=255"`
	Password string     `json:"password" binding:"required,min=8,max=72"`
	Role     model.Role `json:"role" binding:"omitempty,oneof=admin agent"`
}

type UpdateUserRequest struct {
	Name *string     `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Role *model.Role `json:"role,omitempty" binding:"omitempty,oneof=admin agent"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type UserResponse struct {
	ID        int64      `json:"id,string"`
	CompanyID int64      `json:"company_id,string"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserResponses(users []model.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}
