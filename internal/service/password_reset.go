package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"masteria.app/panel/common/id"
	"masteria.app/panel/internal/auth"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/queue"
	"masteria.app/panel/internal/store"
)

var (
	ErrResetTokenNotFound = errors.New("reset token not found")
	ErrResetTokenUsed     = errors.New("reset token already used")
	ErrResetTokenExpired  = errors.New("reset token expired")
)

// Used and expired tokens are kept this long past expiry so a stale link
// still answers "used" or "expired" rather than "not found".
const resetTokenRetention = 7 * 24 * time.Hour

type PasswordResetService interface {
	// RequestReset never reports whether the email exists.
	RequestReset(ctx context.Context, email string) error
	ValidateToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type passwordResetService struct {
	users        store.UserStore
	tokens       store.PasswordResetTokenStore
	txRunner     TxRunner
	producer     queue.Producer
	hasher       *auth.Hasher
	ttl          time.Duration
	dashboardURL string
	now          func() time.Time
}

func NewPasswordResetService(
	users store.UserStore,
	tokens store.PasswordResetTokenStore,
	txRunner TxRunner,
	producer queue.Producer,
	hasher *auth.Hasher,
	ttl time.Duration,
	dashboardURL string,
) PasswordResetService {
	return &passwordResetService{
		users:        users,
		tokens:       tokens,
		txRunner:     txRunner,
		producer:     producer,
		hasher:       hasher,
		ttl:          ttl,
		dashboardURL: strings.TrimRight(dashboardURL, "/"),
		now:          time.Now,
	}
}

func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if n, err := s.tokens.DeleteExpired(ctx, s.now().Add(-resetTokenRetention)); err != nil {
		slog.WarnContext(ctx, "failed to purge expired reset tokens", "error", err)
	} else if n > 0 {
		slog.DebugContext(ctx, "purged expired reset tokens", "count", n)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.InfoContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("getting user: %w", err)
	}
	if !user.IsActive {
		slog.InfoContext(ctx, "password reset requested for inactive user", "user_id", user.ID)
		return nil
	}

	raw, err := randomToken(resetTokenBytes)
	if err != nil {
		return err
	}

	token := &model.PasswordResetToken{
		ID:        id.New(),
		UserID:    user.ID,
		TokenHash: hashToken(raw),
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return fmt.Errorf("creating reset token: %w", err)
	}

	task := queue.Task{
		TaskType:  queue.TaskTypePasswordResetEmail,
		CompanyID: &user.CompanyID,
		UserID:    &user.ID,
		Email:     user.Email,
		Name:      user.Name,
		ResetURL:  s.dashboardURL + "/reset-password?token=" + url.QueryEscape(raw),
		TraceID:   traceID(ctx),
	}
	if err := s.producer.Enqueue(ctx, task); err != nil {
		// Surfacing this would tell the caller the email exists.
		slog.ErrorContext(ctx, "failed to enqueue password reset email", "error", err, "user_id", user.ID)
		return nil
	}

	slog.InfoContext(ctx, "password reset requested", "user_id", user.ID)
	return nil
}

func (s *passwordResetService) ValidateToken(ctx context.Context, token string) error {
	_, err := s.lookup(ctx, s.tokens, token)
	return err
}

func (s *passwordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	var userID int64
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		t, err := s.lookup(ctx, sp.PasswordResetTokens(), token)
		if err != nil {
			return err
		}
		userID = t.UserID

		if err := sp.Users().UpdatePassword(ctx, t.UserID, hash); err != nil {
			return fmt.Errorf("updating password: %w", err)
		}
		if err := sp.PasswordResetTokens().MarkUsed(ctx, t.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// lost a race with another reset using the same token
				return ErrResetTokenUsed
			}
			return fmt.Errorf("marking reset token used: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "password reset completed", "user_id", userID)
	return nil
}

func (s *passwordResetService) lookup(ctx context.Context, tokens store.PasswordResetTokenStore, raw string) (*model.PasswordResetToken, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrResetTokenNotFound
	}

	t, err := tokens.GetByHash(ctx, hashToken(raw))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrResetTokenNotFound
		}
		return nil, fmt.Errorf("getting reset token: %w", err)
	}
	if t.IsUsed() {
		return nil, ErrResetTokenUsed
	}
	if t.IsExpired(s.now()) {
		return nil, ErrResetTokenExpired
	}
	return t, nil
}

func traceID(ctx context.Context) *string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return nil
	}
	tid := sc.TraceID().String()
	return &tid
}
