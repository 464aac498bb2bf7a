package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so repos work in and out of
// transactions.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	db dbtx
	qb sq.StatementBuilderType
}

func newQueries(db dbtx) *queries {
	return &queries{db: db, qb: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

type userRow struct {
	ID           string
	Username     string
	PasswordHash string
	Roles        string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var userColumns = []string{"id", "username", "password_hash", "roles", "active", "created_at", "updated_at"}

func (q *queries) GetUserByID(ctx context.Context, id string) (userRow, error) {
	return q.getUser(ctx, sq.Eq{"id": id})
}

func (q *queries) GetUserByUsername(ctx context.Context, username string) (userRow, error) {
	return q.getUser(ctx, sq.Eq{"username": username})
}

func (q *queries) getUser(ctx context.Context, where sq.Eq) (userRow, error) {
	query, args, err := q.qb.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return userRow{}, err
	}
	return scanUser(q.db.QueryRowContext(ctx, query, args...))
}

func (q *queries) CreateUser(ctx context.Context, u userRow) error {
	query, args, err := q.qb.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Username, u.PasswordHash, u.Roles, u.Active, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = q.db.ExecContext(ctx, query, args...)
	return err
}

func (q *queries) CountUsers(ctx context.Context) (int64, error) {
	query, args, err := q.qb.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	err = q.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

func scanUser(row *sql.Row) (userRow, error) {
	var u userRow
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Roles, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
