package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"masteria.app/panel/common"
	"masteria.app/panel/common/id"
	"masteria.app/panel/internal/auth"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user is inactive")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidSession     = errors.New("invalid session")
)

type RegisterParams struct {
	Name        string
	Email       string
	Password    string
	CompanyName string
}

// Session is a signed token and the identity it was issued for.
type Session struct {
	User      *model.User
	Company   *model.Company
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	// Authenticate resolves a session token to an active user.
	Authenticate(ctx context.Context, token string) (*model.User, error)
	Me(ctx context.Context, userID int64) (*model.User, *model.Company, error)
}

type authService struct {
	users     store.UserStore
	companies store.CompanyStore
	txRunner  TxRunner
	tokens    *auth.TokenManager
	hasher    *auth.Hasher
}

func NewAuthService(
	users store.UserStore,
	companies store.CompanyStore,
	txRunner TxRunner,
	tokens *auth.TokenManager,
	hasher *auth.Hasher,
) AuthService {
	return &authService{
		users:     users,
		companies: companies,
		txRunner:  txRunner,
		tokens:    tokens,
		hasher:    hasher,
	}
}

func (s *authService) Register(ctx context.Context, params RegisterParams) (*Session, error) {
	name := strings.TrimSpace(params.Name)
	companyName := strings.TrimSpace(params.CompanyName)
	if name == "" || companyName == "" {
		return nil, fmt.Errorf("%w: name and company_name are required", ErrInvalidInput)
	}
	email, err := normalizeEmail(params.Email)
	if err != nil {
		return nil, err
	}
	if err := auth.ValidatePassword(params.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	secret, err := randomToken(webhookSecretBytes)
	if err != nil {
		return nil, err
	}

	var (
		company *model.Company
		user    *model.User
	)
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		slug, err := availableSlug(ctx, sp.Companies(), companyName)
		if err != nil {
			return err
		}

		company = &model.Company{
			ID:            id.New(),
			Name:          companyName,
			Slug:          slug,
			WebhookSecret: secret,
		}
		if err := sp.Companies().Create(ctx, company); err != nil {
			return fmt.Errorf("creating company: %w", err)
		}

		user = &model.User{
			ID:           id.New(),
			CompanyID:    company.ID,
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
			IsActive:     true,
		}
		if err := sp.Users().Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrEmailTaken
			}
			return fmt.Errorf("creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			slog.ErrorContext(ctx, "failed to register company", "error", err, "email", email)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "company registered",
		"company_id", company.ID,
		"user_id", user.ID,
		"slug", company.Slug)

	return s.issue(user, company)
}

func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	company, err := s.companies.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "company_id", user.CompanyID)
	return s.issue(user, company)
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if user.CompanyID != claims.CompanyID {
		return nil, ErrInvalidSession
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

func (s *authService) Me(ctx context.Context, userID int64) (*model.User, *model.Company, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("getting user: %w", err)
	}
	company, err := s.companies.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, nil, fmt.Errorf("getting company: %w", err)
	}
	return user, company, nil
}

func (s *authService) issue(user *model.User, company *model.Company) (*Session, error) {
	token, err := s.tokens.Sign(*user)
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}
	return &Session{
		User:      user,
		Company:   company,
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokens.TTL()),
	}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return email, nil
}

// availableSlug slugs name and, when taken, appends a short random suffix.
func availableSlug(ctx context.Context, companies store.CompanyStore, name string) (string, error) {
	base, err := common.Slugify(name, "company")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	candidate := base
	for i := 0; i < 5; i++ {
		_, err := companies.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
		candidate = common.SlugWithSuffix(base, id.NewString())
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}
