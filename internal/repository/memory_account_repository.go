package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/studenthub/internal/domain"
)

// MemoryAccountRepository is a map-backed AccountRepository for tests and
// local development without Postgres. Missing rows surface as pgx.ErrNoRows
// to match the Postgres implementation.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	byID     map[string]domain.Account
	byEmail  map[string]string
	sequence int
}

// NewMemoryAccountRepository returns an empty repository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		byID:    make(map[string]domain.Account),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryAccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sequence++
	account.ID = "acct-" + strconv.Itoa(r.sequence)
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.byID[account.ID] = *account
	r.byEmail[account.Email] = account.ID
	return nil
}

func (r *MemoryAccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &account, nil
}

func (r *MemoryAccountRepository) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	account := r.byID[id]
	return &account, nil
}
