package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"masteria.app/panel/common/id"
	"masteria.app/panel/internal/auth"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/store"
)

var ErrSelfModification = errors.New("admins cannot deactivate, demote or delete themselves")

type CreateUserParams struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// UpdateUserParams is a patch; nil fields are left unchanged.
type UpdateUserParams struct {
	Name *string
	Role *model.Role
}

// UserService manages the members of the caller's company. actor is the
// authenticated admin performing the change.
type UserService interface {
	List(ctx context.Context, companyID int64) ([]model.User, error)
	Create(ctx context.Context, actor *model.User, params CreateUserParams) (*model.User, error)
	Update(ctx context.Context, actor *model.User, id int64, params UpdateUserParams) (*model.User, error)
	SetActive(ctx context.Context, actor *model.User, id int64, active bool) (*model.User, error)
	Delete(ctx context.Context, actor *model.User, id int64) error
}

type userService struct {
	users  store.UserStore
	hasher *auth.Hasher
}

func NewUserService(users store.UserStore, hasher *auth.Hasher) UserService {
	return &userService{users: users, hasher: hasher}
}

func (s *userService) List(ctx context.Context, companyID int64) ([]model.User, error) {
	users, err := s.users.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (s *userService) Create(ctx context.Context, actor *model.User, params CreateUserParams) (*model.User, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email, err := normalizeEmail(params.Email)
	if err != nil {
		return nil, err
	}
	role := params.Role
	if role == "" {
		role = model.RoleAgent
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	if err := auth.ValidatePassword(params.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           id.New(),
		CompanyID:    actor.CompanyID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrEmailTaken
		}
		slog.ErrorContext(ctx, "failed to create user",
			"error", err,
			"email", email,
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	slog.InfoContext(ctx, "user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *userService) Update(ctx context.Context, actor *model.User, userID int64, params UpdateUserParams) (*model.User, error) {
	user, err := s.get(ctx, actor.CompanyID, userID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		user.Name = name
	}
	if params.Role != nil {
		if !params.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *params.Role)
		}
		if user.ID == actor.ID && *params.Role != model.RoleAdmin {
			return nil, ErrSelfModification
		}
		user.Role = *params.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}

func (s *userService) SetActive(ctx context.Context, actor *model.User, userID int64, active bool) (*model.User, error) {
	if userID == actor.ID && !active {
		return nil, ErrSelfModification
	}

	user, err := s.users.SetActive(ctx, actor.CompanyID, userID, active)
	if err != nil {
		return nil, fmt.Errorf("setting user active: %w", err)
	}

	slog.InfoContext(ctx, "user active state changed", "user_id", userID, "active", active)
	return user, nil
}

func (s *userService) Delete(ctx context.Context, actor *model.User, userID int64) error {
	if userID == actor.ID {
		return ErrSelfModification
	}
	if err := s.users.Delete(ctx, actor.CompanyID, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	slog.InfoContext(ctx, "user deleted", "user_id", userID)
	return nil
}

// get hides users of other companies behind ErrNotFound.
func (s *userService) get(ctx context.Context, companyID, userID int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if user.CompanyID != companyID {
		return nil, fmt.Errorf("getting user: %w", ErrNotFound)
	}
	return user, nil
}
