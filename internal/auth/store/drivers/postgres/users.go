package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/aussiebroadwan/notedesk/internal/auth/domain"
)

var userColumns = []string{"id", "username", "password_hash", "roles", "active", "created_at", "updated_at"}

type usersRepo struct {
	db dbtx
	qb sq.StatementBuilderType
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getOne(ctx, sq.Eq{"username": username})
}

func (r *usersRepo) getOne(ctx context.Context, where sq.Eq) (domain.User, error) {
	query, args, err := r.qb.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return domain.User{}, err
	}

	var u domain.User
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Roles, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}

	query, args, err := r.qb.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Username, u.PasswordHash, roles, u.Active, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query, args...)
	return mapUniqueViolation(err)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	query, args, err := r.qb.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return false, err
	}

	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
