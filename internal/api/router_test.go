package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"credit-application/internal/api/handler/dto"
	"credit-application/internal/config"
	"credit-application/internal/domain/credit"
	"credit-application/internal/domain/customer"
	"credit-application/internal/event"
	"credit-application/internal/infrastructure/database/memory"
	"credit-application/internal/infrastructure/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	server *httptest.Server
}

func newTestServer(t *testing.T, maxInstallments, invalidArgumentStatus int) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Server:  config.ServerConfig{RateLimit: config.RateLimitConfig{Enabled: false}},
		Metrics: config.MetricsConfig{Path: "/metrics"},
		Credit:  config.CreditConfig{MaxInstallments: maxInstallments, FirstInstallmentWindowMonths: 3},
		Errors:  config.ErrorsConfig{InvalidArgumentStatus: invalidArgumentStatus},
	}

	store := memory.NewStore()
	customers := customer.NewCustomerService(store.Customers(), security.NewBcryptHasher(4), event.NoopPublisher{}, logger)
	credits := credit.NewCreditService(store.Credits(), customers, event.NoopPublisher{}, credit.Policy{FirstInstallmentWindowMonths: 3}, logger)

	srv := httptest.NewServer(SetupRouter(customers, credits, cfg, logger))
	t.Cleanup(srv.Close)
	return &testServer{t: t, server: srv}
}

func (s *testServer) do(method, path, body string) (int, []byte) {
	s.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.server.Client().Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp.StatusCode, raw
}

func (s *testServer) registerCustomer(cpf, email string) dto.CustomerResponse {
	s.t.Helper()
	status, raw := s.do(http.MethodPost, "/api/customers", customerBody(cpf, email))
	require.Equal(s.t, http.StatusCreated, status, string(raw))
	var resp dto.CustomerResponse
	require.NoError(s.t, json.Unmarshal(raw, &resp))
	return resp
}

func customerBody(cpf, email string) string {
	return fmt.Sprintf(`{"firstName":"Cami","lastName":"Cavalcante","cpf":%q,"income":1000.0,"email":%q,"password":"1234","zipCode":"000000","street":"Rua da Cami, 123"}`, cpf, email)
}

func creditBody(customerID string, monthsAhead, installments int) string {
	day := time.Now().UTC().AddDate(0, monthsAhead, 0).Format(dto.DateLayout)
	return fmt.Sprintf(`{"creditValue":500.0,"dayFirstOfInstallment":%q,"numberOfInstallments":%d,"customerId":%s}`, day, installments, customerID)
}

func problemOf(t *testing.T, raw []byte) dto.ProblemResponse {
	t.Helper()
	var p dto.ProblemResponse
	require.NoError(t, json.Unmarshal(raw, &p), string(raw))
	return p
}

func TestCustomerLifecycle(t *testing.T) {
	s := newTestServer(t, 12, http.StatusBadRequest)

	created := s.registerCustomer("146.487.820-03", "camila@email.com")
	assert.Equal(t, "1000.00", created.Income)

	t.Run("duplicate cpf is a data access error", func(t *testing.T) {
		status, raw := s.do(http.MethodPost, "/api/customers", customerBody("146.487.820-03", "other@email.com"))
		assert.Equal(t, http.StatusConflict, status)
		p := problemOf(t, raw)
		assert.Equal(t, "Data Access Error", p.Title)
		assert.Equal(t, http.StatusConflict, p.Status)
		assert.Equal(t, "StorageConflict", p.ErrorKind)
		assert.NotEmpty(t, p.Details)
	})

	t.Run("same cpf spelled without punctuation is a duplicate", func(t *testing.T) {
		status, raw := s.do(http.MethodPost, "/api/customers", customerBody("14648782003", "bare@email.com"))
		assert.Equal(t, http.StatusConflict, status, string(raw))
		assert.Equal(t, "Data Access Error", problemOf(t, raw).Title)
	})

	t.Run("read back never exposes the password", func(t *testing.T) {
		status, raw := s.do(http.MethodGet, "/api/customers/"+created.ID, "")
		assert.Equal(t, http.StatusOK, status)
		assert.NotContains(t, string(raw), "password")
		assert.NotContains(t, string(raw), "1234\"")
	})

	t.Run("patch keeps cpf and email", func(t *testing.T) {
		status, raw := s.do(http.MethodPatch, "/api/customers?customerId="+created.ID,
			`{"firstName":"Camila","lastName":"Cavalcante","income":2500.5,"zipCode":"45656","street":"Rua Updated"}`)
		require.Equal(t, http.StatusOK, status, string(raw))
		var resp dto.CustomerResponse
		require.NoError(t, json.Unmarshal(raw, &resp))
		assert.Equal(t, "Camila", resp.FirstName)
		assert.Equal(t, "2500.50", resp.Income)
		assert.Equal(t, "14648782003", resp.CPF)
		assert.Equal(t, "camila@email.com", resp.Email)
		assert.Equal(t, "Rua Updated", resp.Street)
	})

	t.Run("unknown id is a business error", func(t *testing.T) {
		status, raw := s.do(http.MethodGet, "/api/customers/999", "")
		assert.Equal(t, http.StatusBadRequest, status)
		p := problemOf(t, raw)
		assert.Equal(t, "Business Error", p.Title)
		assert.Contains(t, p.Details, "resource not found")
		assert.Equal(t, "Id 999 not found", p.Details["resource not found"])
	})

	t.Run("delete then read", func(t *testing.T) {
		status, _ := s.do(http.MethodDelete, "/api/customers/"+created.ID, "")
		assert.Equal(t, http.StatusNoContent, status)

		status, raw := s.do(http.MethodGet, "/api/customers/"+created.ID, "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Id "+created.ID+" not found", problemOf(t, raw).Details["resource not found"])
	})
}

func TestCreditFlow(t *testing.T) {
	s := newTestServer(t, 12, http.StatusBadRequest)
	owner := s.registerCustomer("146.487.820-03", "camila@email.com")
	other := s.registerCustomer("529.982.247-25", "other@email.com")

	status, raw := s.do(http.MethodPost, "/api/credits", creditBody(owner.ID, 1, 5))
	require.Equal(t, http.StatusCreated, status, string(raw))
	var created dto.CreditResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "IN_PROGRESS", created.Status)
	assert.Equal(t, "camila@email.com", created.EmailCustomer)
	assert.Equal(t, "1000.00", created.IncomeCustomer)

	t.Run("first installment beyond the window", func(t *testing.T) {
		status, raw := s.do(http.MethodPost, "/api/credits", creditBody(owner.ID, 4, 5))
		assert.Equal(t, http.StatusBadRequest, status)
		p := problemOf(t, raw)
		assert.Equal(t, "Business Error", p.Title)
		assert.Equal(t, "BusinessRule", p.ErrorKind)
		assert.Equal(t, "The day of the first installment must be within the next 3 months.", p.Details["business rule violated"])
	})

	t.Run("unknown owner", func(t *testing.T) {
		status, raw := s.do(http.MethodPost, "/api/credits", creditBody("999", 1, 5))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Id 999 not found", problemOf(t, raw).Details["resource not found"])
	})

	t.Run("thirteen installments exceed the default bound", func(t *testing.T) {
		status, raw := s.do(http.MethodPost, "/api/credits", creditBody(owner.ID, 1, 13))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Validation Error", problemOf(t, raw).Title)
	})

	t.Run("sub-cent credit value is a validation error", func(t *testing.T) {
		body := strings.Replace(creditBody(owner.ID, 1, 5), `"creditValue":500.0`, `"creditValue":0.001`, 1)
		status, raw := s.do(http.MethodPost, "/api/credits", body)
		assert.Equal(t, http.StatusBadRequest, status, string(raw))
		p := problemOf(t, raw)
		assert.Equal(t, "Validation Error", p.Title)
		assert.Equal(t, "Credit value must have at most 2 decimal places", p.Details["creditValue"])
	})

	t.Run("list by customer", func(t *testing.T) {
		status, raw := s.do(http.MethodGet, "/api/credits?customerId="+owner.ID, "")
		require.Equal(t, http.StatusOK, status)
		var list []dto.CreditSummaryResponse
		require.NoError(t, json.Unmarshal(raw, &list))
		require.Len(t, list, 1)
		assert.Equal(t, created.CreditCode, list[0].CreditCode)

		status, raw = s.do(http.MethodGet, "/api/credits?customerId="+other.ID, "")
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, string(raw))
	})

	t.Run("owner reads by code", func(t *testing.T) {
		status, raw := s.do(http.MethodGet, "/api/credits/"+created.CreditCode+"?customerId="+owner.ID, "")
		require.Equal(t, http.StatusOK, status)
		var view dto.CreditResponse
		require.NoError(t, json.Unmarshal(raw, &view))
		assert.Equal(t, created, view)
	})

	t.Run("foreign customer is told to contact the admin", func(t *testing.T) {
		status, raw := s.do(http.MethodGet, "/api/credits/"+created.CreditCode+"?customerId="+other.ID, "")
		assert.Equal(t, http.StatusBadRequest, status)
		p := problemOf(t, raw)
		assert.Equal(t, "Invalid Argument Error", p.Title)
		assert.Equal(t, "Contact the admin", p.Details["invalid argument"])
	})

	t.Run("unknown credit code", func(t *testing.T) {
		code := "00000000-0000-4000-8000-000000000000"
		status, raw := s.do(http.MethodGet, "/api/credits/"+code+"?customerId="+owner.ID, "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Credit code "+code+" not found", problemOf(t, raw).Details["business rule violated"])
	})

	t.Run("customer owning credits cannot be deleted", func(t *testing.T) {
		status, raw := s.do(http.MethodDelete, "/api/customers/"+owner.ID, "")
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "Data Access Error", problemOf(t, raw).Title)
	})
}

func TestConfigurableVariants(t *testing.T) {
	t.Run("relaxed installment bound accepts 48", func(t *testing.T) {
		s := newTestServer(t, 48, http.StatusBadRequest)
		owner := s.registerCustomer("146.487.820-03", "camila@email.com")

		status, raw := s.do(http.MethodPost, "/api/credits", creditBody(owner.ID, 1, 48))
		assert.Equal(t, http.StatusCreated, status, string(raw))

		status, _ = s.do(http.MethodPost, "/api/credits", creditBody(owner.ID, 1, 49))
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("ownership mismatch as conflict", func(t *testing.T) {
		s := newTestServer(t, 12, http.StatusConflict)
		owner := s.registerCustomer("146.487.820-03", "camila@email.com")
		other := s.registerCustomer("529.982.247-25", "other@email.com")

		_, raw := s.do(http.MethodPost, "/api/credits", creditBody(owner.ID, 1, 5))
		var created dto.CreditResponse
		require.NoError(t, json.Unmarshal(raw, &created))

		status, raw := s.do(http.MethodGet, "/api/credits/"+created.CreditCode+"?customerId="+other.ID, "")
		assert.Equal(t, http.StatusConflict, status)
		p := problemOf(t, raw)
		assert.Equal(t, "Invalid Argument Error", p.Title)
		assert.Equal(t, http.StatusConflict, p.Status)
	})
}

func TestOperationalEndpoints(t *testing.T) {
	s := newTestServer(t, 12, http.StatusBadRequest)

	status, raw := s.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))

	s.do(http.MethodGet, "/api/customers/abc", "")
	status, raw = s.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, strings.Contains(string(raw), "credit_application_http_requests_total"))
	assert.True(t, strings.Contains(string(raw), `credit_application_problems_total{kind="StructuralValidation"}`))
}
