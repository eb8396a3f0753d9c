package domain

import "time"

// AccountStatus represents lifecycle states for a student account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// Account is the credential-bearing record behind the identity verifier.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Status       AccountStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the resolved caller identity attached to authenticated
// requests. Services receive it already verified; they never see tokens.
type Identity struct {
	ID    string
	Email string
	Name  string
}
