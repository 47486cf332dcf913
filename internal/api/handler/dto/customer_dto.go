package dto

import (
	"strconv"

	"credit-application/internal/domain/customer"

	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	FirstName string           `json:"firstName" validate:"required"`
	LastName  string           `json:"lastName" validate:"required"`
	CPF       string           `json:"cpf" validate:"required,cpf"`
	Income    *decimal.Decimal `json:"income" validate:"required,gte=0,money" swaggertype:"number"`
	Email     string           `json:"email" validate:"required,email"`
	Password  string           `json:"password" validate:"required,max=72"`
	ZipCode   string           `json:"zipCode" validate:"required"`
	Street    string           `json:"street" validate:"required"`
}

var CreateCustomerMessages = map[string]string{
	"firstName.required": "First name is required.",
	"lastName.required":  "Last name is required.",
	"cpf.required":       "CPF is required.",
	"cpf.cpf":            "Invalid CPF.",
	"income.required":    "Income cannot be null",
	"income.gte":         "Income cannot be negative",
	"income.money":       "Income must have at most 2 decimal places",
	"email.required":     "Email is required.",
	"email.email":        "Invalid email.",
	"password.required":  "Password is required.",
	"password.max":       "Password must have at most 72 characters.",
	"zipCode.required":   "Zipcode is required.",
	"street.required":    "Street is required.",
}

func (r *CreateCustomerRequest) ToEntity() *customer.Customer {
	return customer.NewCustomer(r.FirstName, r.LastName, NormalizeCPF(r.CPF), *r.Income, r.Email,
		customer.Address{ZipCode: r.ZipCode, Street: r.Street})
}

type UpdateCustomerRequest struct {
	FirstName string           `json:"firstName" validate:"required"`
	LastName  string           `json:"lastName" validate:"required"`
	Income    *decimal.Decimal `json:"income" validate:"required,gte=0,money" swaggertype:"number"`
	ZipCode   string           `json:"zipCode" validate:"required"`
	Street    string           `json:"street" validate:"required"`
}

var UpdateCustomerMessages = map[string]string{
	"firstName.required": "First name cannot be empty",
	"lastName.required":  "Last name cannot be empty",
	"income.required":    "Income cannot be null",
	"income.gte":         "Income cannot be negative",
	"income.money":       "Income must have at most 2 decimal places",
	"zipCode.required":   "Zipcode cannot be empty",
	"street.required":    "Street cannot be empty",
}

func (r *UpdateCustomerRequest) ToPatch() customer.Patch {
	return customer.Patch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Income:    *r.Income,
		ZipCode:   r.ZipCode,
		Street:    r.Street,
	}
}

// CustomerResponse never carries the password hash.
type CustomerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CPF       string `json:"cpf"`
	Income    string `json:"income"`
	Email     string `json:"email"`
	ZipCode   string `json:"zipCode"`
	Street    string `json:"street"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		ID:        strconv.FormatInt(cust.ID, 10),
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		CPF:       cust.CPF,
		Income:    cust.Income.StringFixed(2),
		Email:     cust.Email,
		ZipCode:   cust.Address.ZipCode,
		Street:    cust.Address.Street,
	}
}
