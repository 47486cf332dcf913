package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address is owned by exactly one Customer and has no identity of its own.
type Address struct {
	ZipCode string
	Street  string
}

type Customer struct {
	ID           int64
	FirstName    string
	LastName     string
	CPF          string
	Income       decimal.Decimal
	Email        string
	PasswordHash string
	Address      Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewCustomer(firstName, lastName, cpf string, income decimal.Decimal, email string, address Address) *Customer {
	now := time.Now()
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		CPF:       cpf,
		Income:    income,
		Email:     email,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Customer) IsPersisted() bool {
	return c.ID != 0
}

// Patch holds the fields a customer may change after registration.
// CPF, email and password are not part of it.
type Patch struct {
	FirstName string
	LastName  string
	Income    decimal.Decimal
	ZipCode   string
	Street    string
}

func (p Patch) Apply(c *Customer) {
	c.FirstName = p.FirstName
	c.LastName = p.LastName
	c.Income = p.Income
	c.Address.ZipCode = p.ZipCode
	c.Address.Street = p.Street
	c.UpdatedAt = time.Now()
}
