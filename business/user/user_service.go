package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"dealScout/domain"
	redisRepo "dealScout/internal/repository/redis"
	"dealScout/pkg/logger"
	"dealScout/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// TokenRepository contract interface
type TokenRepository interface {
	StoreToken(ctx context.Context, userID, token string, data redisRepo.TokenData, ttl time.Duration) error
}

const (
	RoleAdmin = "admin"

	sessionTTL = 24 * time.Hour
)

type userService struct {
	userRepo  UserRepository
	validate  *validator.Validate
	tokenRepo TokenRepository
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, tokenRepo TokenRepository) *userService {
	return &userService{
		userRepo:  userRepo,
		validate:  validate,
		tokenRepo: tokenRepo,
	}
}

// Login verifies credentials and issues a session JWT. The token is also
// written to the session store so it can be revoked server-side.
func (s *userService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, "", errors.New("invalid email format")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, "", errors.New("invalid credentials")
	}

	if !utils.CheckPassword(password, user.Password) {
		return domain.User{}, "", errors.New("invalid credentials")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate JWT", err)
		return domain.User{}, "", fmt.Errorf("failed to generate token: %w", err)
	}

	if s.tokenRepo != nil {
		now := time.Now()
		data := redisRepo.TokenData{
			UserID:    userIDStr,
			Role:      user.Role,
			Token:     token,
			IssuedAt:  now,
			ExpiresAt: now.Add(sessionTTL),
		}
		if err := s.tokenRepo.StoreToken(ctx, userIDStr, token, data, sessionTTL); err != nil {
			logger.Error("Failed to store session token", err)
			return domain.User{}, "", fmt.Errorf("failed to store session: %w", err)
		}
	}

	user.Password = ""
	return user, token, nil
}

// EnsureAdmin creates the operator account on first boot when it does
// not exist yet. Idempotent.
func (s *userService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		FullName: "Administrator",
		Email:    email,
		Password: hash,
		Role:     RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("admin account created", "email", email)
	return nil
}
