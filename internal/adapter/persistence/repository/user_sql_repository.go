package repository

import (
	"context"

	"carmasters/internal/domain/entities"
	"carmasters/internal/infrastructure/database"
	"carmasters/internal/usecase/interfaces"
)

// UserSQLRepository persists admin accounts through the storage adapter.
type UserSQLRepository struct {
	store database.Store
}

var _ interfaces.IUserRepository = (*UserSQLRepository)(nil)

func NewUserSQLRepository(store database.Store) *UserSQLRepository {
	return &UserSQLRepository{store: store}
}

func (r *UserSQLRepository) Create(ctx context.Context, username, passwordHash, name string) (entities.User, error) {
	res, err := r.store.Execute(ctx,
		"INSERT INTO users (username, password_hash, nombre) VALUES (?,?,?)",
		username, passwordHash, nullIfEmpty(name))
	if err != nil {
		return entities.User{}, err
	}
	return r.GetByID(ctx, res.LastInsertID)
}

func (r *UserSQLRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	row, err := r.store.QueryOne(ctx, "SELECT * FROM users WHERE username = ?", username)
	if err != nil {
		return entities.User{}, err
	}
	if row == nil {
		return entities.User{}, nil
	}
	return mapUser(row), nil
}

func (r *UserSQLRepository) GetByID(ctx context.Context, id int64) (entities.User, error) {
	row, err := r.store.QueryOne(ctx, "SELECT * FROM users WHERE id = ?", id)
	if err != nil {
		return entities.User{}, err
	}
	if row == nil {
		return entities.User{}, nil
	}
	return mapUser(row), nil
}

func mapUser(row database.Row) entities.User {
	return entities.User{
		ID:           rowInt(row, "id"),
		Username:     rowString(row, "username"),
		PasswordHash: rowString(row, "password_hash"),
		Name:         rowString(row, "nombre"),
		Role:         rowString(row, "role"),
		CreatedAt:    rowString(row, "created_at"),
	}
}
