package dto

import (
	"time"

	"credit-application/internal/domain/credit"

	"github.com/shopspring/decimal"
)

type CreateCreditRequest struct {
	CreditValue           *decimal.Decimal `json:"creditValue" validate:"required,gt=0,money" swaggertype:"number"`
	DayFirstOfInstallment string           `json:"dayFirstOfInstallment" validate:"required,datetime=2006-01-02,futuredate" example:"2026-12-01"`
	NumberOfInstallments  int              `json:"numberOfInstallments" validate:"min=1,installments"`
	CustomerID            int64            `json:"customerId" validate:"required,min=1"`
}

var CreateCreditMessages = map[string]string{
	"creditValue.required":             "Credit value cannot be null",
	"creditValue.gt":                   "Credit value must be greater than zero",
	"creditValue.money":                "Credit value must have at most 2 decimal places",
	"dayFirstOfInstallment.required":   "Day first of installment cannot be null",
	"dayFirstOfInstallment.datetime":   "Day first of installment must be a date in YYYY-MM-DD format",
	"dayFirstOfInstallment.futuredate": "Day first of installment cannot be a past or present date",
	"numberOfInstallments.min":         "Number of installments must be equal or greater than 1",
	"customerId.required":              "Customer ID cannot be null",
	"customerId.min":                   "Customer ID must be a positive number",
}

// ToEntity assumes the request already passed validation.
func (r *CreateCreditRequest) ToEntity() *credit.Credit {
	day, _ := time.Parse(DateLayout, r.DayFirstOfInstallment)
	return credit.New(*r.CreditValue, day, r.NumberOfInstallments, r.CustomerID)
}

type CreditResponse struct {
	CreditCode           string `json:"creditCode"`
	CreditValue          string `json:"creditValue"`
	NumberOfInstallments int    `json:"numberOfInstallments"`
	Status               string `json:"status"`
	EmailCustomer        string `json:"emailCustomer,omitempty"`
	IncomeCustomer       string `json:"incomeCustomer,omitempty"`
}

func NewCreditResponse(c *credit.Credit) CreditResponse {
	if c == nil {
		return CreditResponse{}
	}
	resp := CreditResponse{
		CreditCode:           c.CreditCode.String(),
		CreditValue:          c.CreditValue.StringFixed(2),
		NumberOfInstallments: c.NumberOfInstallments,
		Status:               string(c.Status),
	}
	if c.Customer != nil {
		resp.EmailCustomer = c.Customer.Email
		resp.IncomeCustomer = c.Customer.Income.StringFixed(2)
	}
	return resp
}

type CreditSummaryResponse struct {
	CreditCode           string `json:"creditCode"`
	CreditValue          string `json:"creditValue"`
	NumberOfInstallments int    `json:"numberOfInstallments"`
}

func NewCreditSummaryResponses(credits []*credit.Credit) []CreditSummaryResponse {
	resp := make([]CreditSummaryResponse, 0, len(credits))
	for _, c := range credits {
		resp = append(resp, CreditSummaryResponse{
			CreditCode:           c.CreditCode.String(),
			CreditValue:          c.CreditValue.StringFixed(2),
			NumberOfInstallments: c.NumberOfInstallments,
		})
	}
	return resp
}
