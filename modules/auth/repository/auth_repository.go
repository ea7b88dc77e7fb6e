package repository

import (
	"context"
	"database/sql"
	"time"

	"romantic-api/core/database"
	"romantic-api/core/logger"
	"romantic-api/modules/auth/entity"

	"github.com/google/uuid"
)

type AuthRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type authRepository struct {
	db database.IDatabase
}

func NewAuthRepository(db database.IDatabase) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = ?`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail:Error", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if user.CreatedAt == "" {
		user.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`
	err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		logger.Error("AuthRepository:CreateUser:Error", "error", err)
	}
	return err
}

func (r *authRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	query := `UPDATE users SET password_hash = ? WHERE id = ?`
	err := r.db.ExecContext(ctx, query, hash, id)
	if err != nil {
		logger.Error("AuthRepository:UpdatePasswordHash:Error", "error", err)
	}
	return err
}
