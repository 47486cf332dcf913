package handler_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"credit-application/internal/api/handler"
	"credit-application/internal/api/handler/dto"
	"credit-application/internal/domain/credit"
	"credit-application/internal/domain/customer"
	"credit-application/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct {
	mock.Mock
}

func (_m *MockCustomerService) Save(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	ret := _m.Called(ctx, c)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) Register(ctx context.Context, c *customer.Customer, password string) (*customer.Customer, error) {
	ret := _m.Called(ctx, c, password)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, *customer.Customer, string) *customer.Customer); ok {
		r0 = rf(ctx, c, password)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) Update(ctx context.Context, customerID int64, patch customer.Patch) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID, patch)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) Delete(ctx context.Context, customerID int64) error {
	return _m.Called(ctx, customerID).Error(0)
}

type MockCreditService struct {
	mock.Mock
}

func (_m *MockCreditService) Save(ctx context.Context, c *credit.Credit) (*credit.Credit, error) {
	ret := _m.Called(ctx, c)

	var r0 *credit.Credit
	if rf, ok := ret.Get(0).(func(context.Context, *credit.Credit) *credit.Credit); ok {
		r0 = rf(ctx, c)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*credit.Credit)
	}
	return r0, ret.Error(1)
}

func (_m *MockCreditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*credit.Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*credit.Credit)
	}
	return r0, ret.Error(1)
}

func (_m *MockCreditService) FindByCreditCode(ctx context.Context, customerID int64, code uuid.UUID) (*credit.Credit, error) {
	ret := _m.Called(ctx, customerID, code)

	var r0 *credit.Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*credit.Credit)
	}
	return r0, ret.Error(1)
}

var (
	testLogger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	testToday  = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
)

func newResponder(invalidArgumentStatus int) *handler.ErrorResponder {
	classifier := apperrors.NewClassifier(invalidArgumentStatus)
	classifier.Now = func() time.Time { return testToday }
	return handler.NewErrorResponder(classifier, testLogger)
}

func newValidator(maxInstallments int) *dto.Validator {
	return dto.NewValidator(maxInstallments, func() time.Time { return testToday })
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
