package store

import (
	"context"
	"time"

	"masteria.app/panel/core/db/sqlc"
	"masteria.app/panel/internal/model"
)

type passwordResetTokenStore struct {
	queries *sqlc.Queries
}

func newPasswordResetTokenStore(queries *sqlc.Queries) PasswordResetTokenStore {
	return &passwordResetTokenStore{queries: queries}
}

func (s *passwordResetTokenStore) Create(ctx context.Context, token *model.PasswordResetToken) error {
	row, err := s.queries.CreatePasswordResetToken(ctx, sqlc.CreatePasswordResetTokenParams{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: timestamptz(&token.ExpiresAt),
	})
	if err != nil {
		return mapErr(err)
	}
	*token = *toPasswordResetTokenModel(row)
	return nil
}

func (s *passwordResetTokenStore) GetByHash(ctx context.Context, tokenHash string) (*model.PasswordResetToken, error) {
	row, err := s.queries.GetPasswordResetTokenByHash(ctx, tokenHash)
	if err != nil {
		return nil, mapErr(err)
	}
	return toPasswordResetTokenModel(row), nil
}

func (s *passwordResetTokenStore) MarkUsed(ctx context.Context, id int64) error {
	_, err := s.queries.MarkPasswordResetTokenUsed(ctx, id)
	return mapErr(err)
}

func (s *passwordResetTokenStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	return s.queries.DeleteExpiredPasswordResetTokens(ctx, timestamptz(&before))
}

func toPasswordResetTokenModel(row sqlc.PasswordResetToken) *model.PasswordResetToken {
	return &model.PasswordResetToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt.Time,
		UsedAt:    timePtr(row.UsedAt),
		CreatedAt: row.CreatedAt.Time,
	}
}
