package service

import (
	"context"

	"romantic-api/core/errors"
	"romantic-api/core/logger"
	"romantic-api/core/utils"
	"romantic-api/modules/auth/dto"
	"romantic-api/modules/auth/entity"
	"romantic-api/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	EnsureSeedUser(ctx context.Context, email, password string) error
}

type authService struct {
	repo repository.AuthRepository
}

func NewAuthService(repo repository.AuthRepository) AuthService {
	return &authService{repo: repo}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetUserByEmail:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}

	return &dto.LoginResponse{
		Token: token,
		Email: user.Email,
	}, nil
}

// EnsureSeedUser creates the single configured account on first boot and
// refreshes the stored hash when the configured password changes.
func (s *authService) EnsureSeedUser(ctx context.Context, email, password string) error {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if existing != nil {
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) != nil {
			logger.Info("AuthService:EnsureSeedUser:RefreshingPassword", "email", email)
			return s.repo.UpdatePasswordHash(ctx, existing.ID, string(hash))
		}
		return nil
	}

	logger.Info("AuthService:EnsureSeedUser:Creating", "email", email)
	return s.repo.CreateUser(ctx, &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	})
}
