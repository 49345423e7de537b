package repository

import (
	"context"

	"careconnect-api/internal/domain/account"
)

// AccountRepository is the persistence boundary for accounts. Email
// uniqueness is enforced by the store itself; Create returns
// ErrAlreadyExists when the email is taken.
type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
