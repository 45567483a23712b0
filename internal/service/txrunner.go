package service

import (
	"context"

	"masteria.app/panel/core/db"
	"masteria.app/panel/core/db/sqlc"
	"masteria.app/panel/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Companies() store.CompanyStore
	Users() store.UserStore
	PasswordResetTokens() store.PasswordResetTokenStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the primary DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		stores := store.NewStores(q)
		return fn(stores)
	})
}

// KnowledgeTxRunner is TxRunner for the vector database.
type KnowledgeTxRunner interface {
	WithTx(ctx context.Context, fn func(knowledge store.KnowledgeStore) error) error
}

type vectorTxRunner struct {
	db *db.DB
}

func NewKnowledgeTxRunner(vectorDB *db.DB) KnowledgeTxRunner {
	return &vectorTxRunner{db: vectorDB}
}

func (r *vectorTxRunner) WithTx(ctx context.Context, fn func(knowledge store.KnowledgeStore) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q).Knowledge())
	})
}
