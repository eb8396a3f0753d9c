package auth

import (
	"context"
	"errors"

	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/repository"
)

// ErrVerificationFailed covers every identity failure. Callers must not be
// able to distinguish a missing token from an expired one or an unknown
// account.
var ErrVerificationFailed = errors.New("identity verification failed")

// IdentityVerifier resolves a bearer credential to a stable identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, bearer string) (*domain.Identity, error)
}

// TokenVerifier validates JWTs and loads the backing account.
type TokenVerifier struct {
	tokens   *TokenManager
	accounts repository.AccountRepository
}

// NewTokenVerifier constructs a verifier.
func NewTokenVerifier(tokens *TokenManager, accounts repository.AccountRepository) *TokenVerifier {
	return &TokenVerifier{tokens: tokens, accounts: accounts}
}

// Verify parses the token and resolves the account behind it.
func (v *TokenVerifier) Verify(ctx context.Context, bearer string) (*domain.Identity, error) {
	if bearer == "" {
		return nil, ErrVerificationFailed
	}
	claims, err := v.tokens.ParseToken(bearer)
	if err != nil {
		return nil, ErrVerificationFailed
	}
	account, err := v.accounts.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, ErrVerificationFailed
	}
	if account.Status != domain.AccountStatusActive {
		return nil, ErrVerificationFailed
	}
	return &domain.Identity{ID: account.ID, Email: account.Email, Name: account.Name}, nil
}
