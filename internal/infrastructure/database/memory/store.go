// Package memory is an in-process storage driver enforcing the same
// constraints as the relational schema. It backs local runs and tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"credit-application/internal/domain/credit"
	"credit-application/internal/domain/customer"
	"credit-application/internal/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	constraintCustomerCPF  = "customers_cpf_key"
	constraintCreditCode   = "credits_credit_code_key"
	constraintCreditsOwner = "credits_customer_id_fkey"
	constraintCreditValue  = "credits_credit_value_check"
	constraintIncome       = "customers_income_check"

	// moneyScale mirrors the NUMERIC(19, 2) columns, which round on write.
	moneyScale = 2
)

type Store struct {
	mu             sync.RWMutex
	customers      map[int64]customer.Customer
	credits        map[int64]credit.Credit
	nextCustomerID int64
	nextCreditID   int64
	now            func() time.Time
}

func NewStore() *Store {
	return &Store{
		customers: make(map[int64]customer.Customer),
		credits:   make(map[int64]credit.Credit),
		now:       time.Now,
	}
}

func (s *Store) Customers() *CustomerRepository {
	return &CustomerRepository{store: s}
}

func (s *Store) Credits() *CreditRepository {
	return &CreditRepository{store: s}
}

func conflict(constraint string) error {
	return apperrors.NewStorageConflict(errors.New(constraint))
}

type CustomerRepository struct {
	store *Store
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func (r *CustomerRepository) Save(_ context.Context, cust *customer.Customer) error {
	if cust == nil {
		return errors.New("customer cannot be nil")
	}
	income := cust.Income.Round(moneyScale)
	if income.IsNegative() {
		return conflict(constraintIncome)
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.customers {
		if id != cust.ID && existing.CPF == cust.CPF {
			return conflict(constraintCustomerCPF)
		}
	}

	now := s.now()
	if cust.IsPersisted() {
		existing, ok := s.customers[cust.ID]
		if !ok {
			return customer.ErrNotFound
		}
		cust.CreatedAt = existing.CreatedAt
	} else {
		s.nextCustomerID++
		cust.ID = s.nextCustomerID
		cust.CreatedAt = now
	}
	cust.UpdatedAt = now
	cust.Income = income
	s.customers[cust.ID] = *cust
	return nil
}

func (r *CustomerRepository) FindByID(_ context.Context, customerID int64) (*customer.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	cust, ok := s.customers[customerID]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return &cust, nil
}

func (r *CustomerRepository) Delete(_ context.Context, customerID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customerID]; !ok {
		return customer.ErrNotFound
	}
	for _, c := range s.credits {
		if c.OwnerID() == customerID {
			return conflict(constraintCreditsOwner)
		}
	}
	delete(s.customers, customerID)
	return nil
}

type CreditRepository struct {
	store *Store
}

var _ credit.CreditRepository = (*CreditRepository)(nil)

func (r *CreditRepository) Save(_ context.Context, c *credit.Credit) error {
	if c == nil {
		return errors.New("credit cannot be nil")
	}
	value := c.CreditValue.Round(moneyScale)
	if !value.IsPositive() {
		return conflict(constraintCreditValue)
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[c.OwnerID()]; !ok {
		return conflict(constraintCreditsOwner)
	}
	for _, existing := range s.credits {
		if existing.CreditCode == c.CreditCode {
			return conflict(constraintCreditCode)
		}
	}

	s.nextCreditID++
	c.ID = s.nextCreditID
	c.CreatedAt = s.now()
	c.CreditValue = value

	stored := *c
	stored.Customer = &customer.Customer{ID: c.OwnerID()}
	s.credits[c.ID] = stored
	return nil
}

func (r *CreditRepository) FindByCreditCode(_ context.Context, code uuid.UUID) (*credit.Credit, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.credits {
		if c.CreditCode != code {
			continue
		}
		owner := s.customers[c.OwnerID()]
		owner.PasswordHash = ""
		c.Customer = &owner
		return &c, nil
	}
	return nil, credit.ErrNotFound
}

func (r *CreditRepository) FindAllByCustomerID(_ context.Context, customerID int64) ([]*credit.Credit, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	credits := make([]*credit.Credit, 0)
	for _, c := range s.credits {
		c := c
		if c.OwnerID() == customerID {
			c.Customer = &customer.Customer{ID: customerID}
			credits = append(credits, &c)
		}
	}
	sort.Slice(credits, func(i, j int) bool { return credits[i].ID < credits[j].ID })
	return credits, nil
}

func (r *CreditRepository) CountByStatus(_ context.Context) (map[credit.Status]int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[credit.Status]int)
	for _, c := range s.credits {
		counts[c.Status]++
	}
	return counts, nil
}
