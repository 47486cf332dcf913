package customer

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("customer not found")

// CustomerRepository is the storage collaborator of the customer directory.
// Save inserts when ID is zero and updates otherwise, assigning ID and
// timestamps on the passed customer. A CPF already taken is reported as a
// storage conflict by the implementation, never pre-checked by callers.
type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	Delete(ctx context.Context, customerID int64) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}
