package credit

import (
	"context"

	"credit-application/internal/domain/customer"
	"credit-application/internal/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCreditRepository struct {
	mock.Mock
}

func (_m *MockCreditRepository) Save(ctx context.Context, credit *Credit) error {
	return _m.Called(ctx, credit).Error(0)
}

func (_m *MockCreditRepository) FindByCreditCode(ctx context.Context, code uuid.UUID) (*Credit, error) {
	ret := _m.Called(ctx, code)

	var r0 *Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Credit)
	}
	return r0, ret.Error(1)
}

func (_m *MockCreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Credit)
	}
	return r0, ret.Error(1)
}

func (_m *MockCreditRepository) CountByStatus(ctx context.Context) (map[Status]int, error) {
	ret := _m.Called(ctx)

	var r0 map[Status]int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[Status]int)
	}
	return r0, ret.Error(1)
}

var _ CreditRepository = (*MockCreditRepository)(nil)

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
	if ret.Get(0) != nil {
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

var _ customer.CustomerService = (*MockCustomerService)(nil)

type MockEventPublisher struct {
	mock.Mock
}

func (_m *MockEventPublisher) PublishCustomerRegistered(ctx context.Context, evt event.CustomerRegisteredEvent) error {
	return _m.Called(ctx, evt).Error(0)
}

func (_m *MockEventPublisher) PublishCreditSubmitted(ctx context.Context, evt event.CreditSubmittedEvent) error {
	return _m.Called(ctx, evt).Error(0)
}

var _ event.EventPublisher = (*MockEventPublisher)(nil)
