package credit

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("credit not found")

// CreditRepository is the storage collaborator of the credit ledger.
// FindByCreditCode returns the credit with its owner fully populated;
// FindAllByCustomerID returns credits in insertion order.
type CreditRepository interface {
	Save(ctx context.Context, credit *Credit) error

	FindByCreditCode(ctx context.Context, code uuid.UUID) (*Credit, error)

	FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error)

	CountByStatus(ctx context.Context) (map[Status]int, error)
}
