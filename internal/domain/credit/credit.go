package credit

import (
	"time"

	"credit-application/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

// StatusInProgress is the only status a credit is created with. Other
// statuses are reserved for a future approval workflow.
const StatusInProgress Status = "IN_PROGRESS"

type Credit struct {
	ID                   int64
	CreditCode           uuid.UUID
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	Status               Status
	Customer             *customer.Customer
	CreatedAt            time.Time
}

// New builds an unsaved credit whose owner carries only its id. The credit
// code is generated here and never changes afterwards.
func New(value decimal.Decimal, dayFirstInstallment time.Time, installments int, customerID int64) *Credit {
	return &Credit{
		CreditCode:           uuid.New(),
		CreditValue:          value,
		DayFirstInstallment:  CivilDate(dayFirstInstallment),
		NumberOfInstallments: installments,
		Status:               StatusInProgress,
		Customer:             &customer.Customer{ID: customerID},
		CreatedAt:            time.Now(),
	}
}

func (c *Credit) OwnerID() int64 {
	if c.Customer == nil {
		return 0
	}
	return c.Customer.ID
}

func (c *Credit) OwnedBy(customerID int64) bool {
	return c.OwnerID() == customerID
}

// CivilDate drops the clock part, keeping the UTC calendar date as UTC
// midnight. Instants in other zones are converted first, so "today" is the
// same date for every caller regardless of the server's zone.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds n calendar months to a civil date, clamping the day to the
// last day of the target month (Jan 31 + 1 month is Feb 28 or 29).
func AddMonths(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
