package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RoutingKeyCustomerRegistered = "customer.registered"
	RoutingKeyCreditSubmitted    = "credit.submitted"
)

// EventPublisher delivers domain events. Callers treat delivery as best
// effort: a failed publish is logged and never undoes the stored change.
type EventPublisher interface {
	PublishCustomerRegistered(ctx context.Context, event CustomerRegisteredEvent) error
	PublishCreditSubmitted(ctx context.Context, event CreditSubmittedEvent) error
}

type CustomerRegisteredEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	CustomerID int64     `json:"customerId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
}

type CreditSubmittedEvent struct {
	Timestamp            time.Time       `json:"timestamp"`
	CreditCode           uuid.UUID       `json:"creditCode"`
	CustomerID           int64           `json:"customerId"`
	CreditValue          decimal.Decimal `json:"creditValue"`
	NumberOfInstallments int             `json:"numberOfInstallments"`
	DayFirstInstallment  string          `json:"dayFirstInstallment"`
	Status               string          `json:"status"`
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishCustomerRegistered(context.Context, CustomerRegisteredEvent) error {
	return nil
}

func (NoopPublisher) PublishCreditSubmitted(context.Context, CreditSubmittedEvent) error {
	return nil
}

var _ EventPublisher = NoopPublisher{}
