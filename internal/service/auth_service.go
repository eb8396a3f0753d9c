package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/studenthub/internal/auth"
	"github.com/campushub/studenthub/internal/config"
	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/repository"
	apperrors "github.com/campushub/studenthub/pkg/util"
)

// AuthService coordinates sign-up and sign-in flows and seeds the initial
// profile record.
type AuthService struct {
	accounts   repository.AccountRepository
	profiles   *ProfileService
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, accounts repository.AccountRepository, profiles *ProfileService) *AuthService {
	return &AuthService{
		accounts:   accounts,
		profiles:   profiles,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// TokenManager exposes the shared token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// SignUp creates an account and its initial profile.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*domain.Account, error) {
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("email already registered", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Status:       domain.AccountStatusActive,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	identity := domain.Identity{ID: account.ID, Email: account.Email, Name: account.Name}
	if _, err := s.profiles.EnsureCreated(ctx, identity, name); err != nil {
		return nil, err
	}
	return account, nil
}

// SignIn authenticates an account and issues an access token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewValidationError("Invalid login credentials", nil)
		}
		return nil, "", time.Time{}, err
	}
	if account.Status != domain.AccountStatusActive {
		return nil, "", time.Time{}, apperrors.NewValidationError("Invalid login credentials", nil)
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewValidationError("Invalid login credentials", nil)
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(account.ID, account.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, expiresAt, nil
}
