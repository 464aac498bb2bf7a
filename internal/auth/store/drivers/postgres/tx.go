package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/aussiebroadwan/notedesk/internal/auth/store"
)

// txStore binds repos to a pgx.Tx. The context that opened the transaction
// is reused for Commit and Rollback because store.Tx has no ctx parameters.
type txStore struct {
	ctx context.Context
	tx  pgx.Tx
	qb  sq.StatementBuilderType
}

func (t *txStore) Commit() error   { return t.tx.Commit(t.ctx) }
func (t *txStore) Rollback() error { return t.tx.Rollback(t.ctx) }

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
func (t *txStore) ApplyMigrations() error         { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, pgx.ErrTxClosed }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return pgx.ErrTxClosed
}

func (t *txStore) Users() store.Users { return &usersRepo{db: t.tx, qb: t.qb} }
