package gcpay_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// MockClient satisfies gcpay.Client for batch tests. Only the services a
// test configures are populated.
type MockClient struct {
	customers *MockCustomersService
	payments  *MockPaymentsService
	refunds   *MockRefundsService
	mandates  *MockMandatesService
}

func (c *MockClient) Customers() gcpay.CustomersService         { return c.customers }
func (c *MockClient) Payments() gcpay.PaymentsService           { return c.payments }
func (c *MockClient) Refunds() gcpay.RefundsService             { return c.refunds }
func (c *MockClient) Mandates() gcpay.MandatesService           { return c.mandates }
func (c *MockClient) CustomerBankAccounts() gcpay.CustomerBankAccountsService {
	return nil
}
func (c *MockClient) Subscriptions() gcpay.SubscriptionsService { return nil }
func (c *MockClient) Payouts() gcpay.PayoutsService             { return nil }
func (c *MockClient) Creditors() gcpay.CreditorsService         { return nil }
func (c *MockClient) Events() gcpay.EventsService               { return nil }

// MockCustomersService mocks gcpay.CustomersService.
type MockCustomersService struct {
	mock.Mock
}

func (m *MockCustomersService) Create(ctx context.Context, request *gcpay.CustomerCreateRequest, opts ...gcpay.RequestOption) (*gcpay.Customer, error) {
	args := m.Called(ctx, request)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Customer), args.Error(1)
}

func (m *MockCustomersService) Get(ctx context.Context, identity string) (*gcpay.Customer, error) {
	args := m.Called(ctx, identity)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Customer), args.Error(1)
}

func (m *MockCustomersService) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Customer], error) {
	args := m.Called(ctx, params)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.ListResponse[gcpay.Customer]), args.Error(1)
}

func (m *MockCustomersService) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Customer] {
	return nil
}

func (m *MockCustomersService) Update(ctx context.Context, identity string, request *gcpay.CustomerUpdateRequest) (*gcpay.Customer, error) {
	args := m.Called(ctx, identity, request)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Customer), args.Error(1)
}

func (m *MockCustomersService) Remove(ctx context.Context, identity string) error {
	args := m.Called(ctx, identity)

	return args.Error(0)
}

// MockPaymentsService mocks gcpay.PaymentsService.
type MockPaymentsService struct {
	mock.Mock
}

func (m *MockPaymentsService) Create(ctx context.Context, request *gcpay.PaymentCreateRequest, opts ...gcpay.RequestOption) (*gcpay.Payment, error) {
	args := m.Called(ctx, request)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Payment), args.Error(1)
}

func (m *MockPaymentsService) Get(ctx context.Context, identity string) (*gcpay.Payment, error) {
	args := m.Called(ctx, identity)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Payment), args.Error(1)
}

func (m *MockPaymentsService) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Payment], error) {
	args := m.Called(ctx, params)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.ListResponse[gcpay.Payment]), args.Error(1)
}

func (m *MockPaymentsService) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Payment] {
	return nil
}

func (m *MockPaymentsService) Update(ctx context.Context, identity string, request *gcpay.PaymentUpdateRequest) (*gcpay.Payment, error) {
	args := m.Called(ctx, identity, request)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Payment), args.Error(1)
}

func (m *MockPaymentsService) Cancel(ctx context.Context, identity string) (*gcpay.Payment, error) {
	args := m.Called(ctx, identity)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Payment), args.Error(1)
}

func (m *MockPaymentsService) Retry(ctx context.Context, identity string, opts ...gcpay.RequestOption) (*gcpay.Payment, error) {
	args := m.Called(ctx, identity)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Payment), args.Error(1)
}

// MockRefundsService mocks gcpay.RefundsService.
type MockRefundsService struct {
	mock.Mock
}

func (m *MockRefundsService) Create(ctx context.Context, request *gcpay.RefundCreateRequest, opts ...gcpay.RequestOption) (*gcpay.Refund, error) {
	args := m.Called(ctx, request)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Refund), args.Error(1)
}

func (m *MockRefundsService) Get(ctx context.Context, identity string) (*gcpay.Refund, error) {
	args := m.Called(ctx, identity)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Refund), args.Error(1)
}

func (m *MockRefundsService) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Refund], error) {
	args := m.Called(ctx, params)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.ListResponse[gcpay.Refund]), args.Error(1)
}

func (m *MockRefundsService) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Refund] {
	return nil
}

func (m *MockRefundsService) Update(ctx context.Context, identity string, request *gcpay.RefundUpdateRequest) (*gcpay.Refund, error) {
	args := m.Called(ctx, identity, request)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Refund), args.Error(1)
}

// MockMandatesService mocks gcpay.MandatesService.
type MockMandatesService struct {
	mock.Mock
}

func (m *MockMandatesService) Create(ctx context.Context, request *gcpay.MandateCreateRequest, opts ...gcpay.RequestOption) (*gcpay.Mandate, error) {
	args := m.Called(ctx, request)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Mandate), args.Error(1)
}

func (m *MockMandatesService) Get(ctx context.Context, identity string) (*gcpay.Mandate, error) {
	args := m.Called(ctx, identity)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Mandate), args.Error(1)
}

func (m *MockMandatesService) List(ctx context.Context, params *gcpay.ListParams) (*gcpay.ListResponse[gcpay.Mandate], error) {
	args := m.Called(ctx, params)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.ListResponse[gcpay.Mandate]), args.Error(1)
}

func (m *MockMandatesService) All(ctx context.Context, params *gcpay.ListParams) *gcpay.PageIterator[gcpay.Mandate] {
	return nil
}

func (m *MockMandatesService) Update(ctx context.Context, identity string, request *gcpay.MandateUpdateRequest) (*gcpay.Mandate, error) {
	args := m.Called(ctx, identity, request)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Mandate), args.Error(1)
}

func (m *MockMandatesService) Cancel(ctx context.Context, identity string) (*gcpay.Mandate, error) {
	args := m.Called(ctx, identity)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Mandate), args.Error(1)
}

func (m *MockMandatesService) Reinstate(ctx context.Context, identity string) (*gcpay.Mandate, error) {
	args := m.Called(ctx, identity)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gcpay.Mandate), args.Error(1)
}

func TestBatchExecutor_CustomerOperations(t *testing.T) {
	t.Parallel()

	customers := &MockCustomersService{}
	client := &MockClient{customers: customers}
	executor := gcpay.NewBatchExecutor(client, 2)

	createReq := &gcpay.CustomerCreateRequest{Email: "new@example.com"}
	updateReq := &gcpay.CustomerUpdateRequest{}

	customers.On("Create", mock.Anything, createReq).
		Return(&gcpay.Customer{ID: "CU1", Email: "new@example.com"}, nil)
	customers.On("Get", mock.Anything, "CU2").
		Return(&gcpay.Customer{ID: "CU2"}, nil)
	customers.On("Update", mock.Anything, "CU3", updateReq).
		Return(&gcpay.Customer{ID: "CU3"}, nil)

	results := executor.Execute(context.Background(), []gcpay.BatchOperation{
		{ID: "op-1", Type: gcpay.BatchOpCreate, Resource: "customer", Data: createReq},
		{ID: "op-2", Type: gcpay.BatchOpGet, Resource: "customer", Data: "CU2"},
		{ID: "op-3", Type: gcpay.BatchOpUpdate, Resource: "customer", Data: &gcpay.UpdateData[gcpay.CustomerUpdateRequest]{
			Identity: "CU3",
			Request:  updateReq,
		}},
	})

	require.Len(t, results, 3)

	for index, result := range results {
		assert.True(t, result.Success, "operation %d", index)
		assert.NoError(t, result.Error)
		assert.Positive(t, result.Duration)
	}

	// Results come back in input order
	assert.Equal(t, "op-1", results[0].ID)
	assert.Equal(t, "CU1", results[0].Data.(*gcpay.Customer).ID)
	assert.Equal(t, "CU2", results[1].Data.(*gcpay.Customer).ID)

	customers.AssertExpectations(t)
}

func TestBatchExecutor_PaymentOperations(t *testing.T) {
	t.Parallel()

	payments := &MockPaymentsService{}
	client := &MockClient{payments: payments}
	executor := gcpay.NewBatchExecutor(client, 2)

	payments.On("Cancel", mock.Anything, "PM1").
		Return(&gcpay.Payment{ID: "PM1", Status: "cancelled"}, nil)
	payments.On("Get", mock.Anything, "PM2").
		Return(nil, &gcpay.APIError{Type: gcpay.ErrorTypeInvalidAPIUsage, Code: 404, Message: "Not found"})

	results := executor.Execute(context.Background(), []gcpay.BatchOperation{
		{ID: "cancel", Type: gcpay.BatchOpCancel, Resource: "payment", Data: "PM1"},
		{ID: "get", Type: gcpay.BatchOpGet, Resource: "payment", Data: "PM2"},
	})

	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.Equal(t, "cancelled", results[0].Data.(*gcpay.Payment).Status)

	assert.False(t, results[1].Success)
	assert.True(t, gcpay.IsNotFound(results[1].Error))

	payments.AssertExpectations(t)
}

func TestBatchExecutor_MandateAndRefundOperations(t *testing.T) {
	t.Parallel()

	mandates := &MockMandatesService{}
	refunds := &MockRefundsService{}
	client := &MockClient{mandates: mandates, refunds: refunds}
	executor := gcpay.NewBatchExecutor(client, 4)

	refundReq := &gcpay.RefundCreateRequest{Amount: 500}

	mandates.On("Cancel", mock.Anything, "MD1").
		Return(&gcpay.Mandate{ID: "MD1", Status: "cancelled"}, nil)
	refunds.On("Create", mock.Anything, refundReq).
		Return(&gcpay.Refund{ID: "RF1", Amount: 500}, nil)

	results := executor.Execute(context.Background(), []gcpay.BatchOperation{
		{ID: "m", Type: gcpay.BatchOpCancel, Resource: "mandate", Data: "MD1"},
		{ID: "r", Type: gcpay.BatchOpCreate, Resource: "refund", Data: refundReq},
	})

	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.True(t, results[1].Success)

	mandates.AssertExpectations(t)
	refunds.AssertExpectations(t)
}

func TestBatchExecutor_InvalidDataType(t *testing.T) {
	t.Parallel()

	executor := gcpay.NewBatchExecutor(&MockClient{payments: &MockPaymentsService{}}, 1)

	results := executor.Execute(context.Background(), []gcpay.BatchOperation{
		{ID: "bad", Type: gcpay.BatchOpCreate, Resource: "payment", Data: 42},
	})

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Error, gcpay.ErrInvalidDataTypePayment)
}

func TestBatchExecutor_UnsupportedResourceAndOperation(t *testing.T) {
	t.Parallel()

	executor := gcpay.NewBatchExecutor(&MockClient{refunds: &MockRefundsService{}}, 1)

	results := executor.Execute(context.Background(), []gcpay.BatchOperation{
		{ID: "bad-resource", Type: gcpay.BatchOpGet, Resource: "payout", Data: "PO1"},
		{ID: "bad-op", Type: gcpay.BatchOpCancel, Resource: "refund", Data: "RF1"},
	})

	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Error, gcpay.ErrUnsupportedResourceType)
	assert.ErrorIs(t, results[1].Error, gcpay.ErrUnsupportedOperationType)
}

func TestBatchExecutor_Callback(t *testing.T) {
	t.Parallel()

	customers := &MockCustomersService{}
	customers.On("Get", mock.Anything, "CU1").Return(&gcpay.Customer{ID: "CU1"}, nil)

	executor := gcpay.NewBatchExecutor(&MockClient{customers: customers}, 1)

	var callbackID string

	results := executor.Execute(context.Background(), []gcpay.BatchOperation{
		{
			ID:       "cb",
			Type:     gcpay.BatchOpGet,
			Resource: "customer",
			Data:     "CU1",
			Callback: func(result *gcpay.BatchResult) {
				callbackID = result.ID
			},
		},
	})

	require.Len(t, results, 1)
	assert.Equal(t, "cb", callbackID)
}

func TestBatchExecutor_Concurrency(t *testing.T) {
	t.Parallel()

	customers := &MockCustomersService{}

	var completed int64

	customers.On("Get", mock.Anything, mock.AnythingOfType("string")).
		Return(&gcpay.Customer{ID: "CU"}, nil).
		Run(func(args mock.Arguments) {
			atomic.AddInt64(&completed, 1)
		})

	executor := gcpay.NewBatchExecutor(&MockClient{customers: customers}, 3)

	operations := make([]gcpay.BatchOperation, 10)
	for index := range operations {
		operations[index] = gcpay.BatchOperation{
			ID:       string(rune('a' + index)),
			Type:     gcpay.BatchOpGet,
			Resource: "customer",
			Data:     "CU1",
		}
	}

	results := executor.Execute(context.Background(), operations)

	require.Len(t, results, 10)
	assert.Equal(t, int64(10), atomic.LoadInt64(&completed))

	for index, result := range results {
		assert.True(t, result.Success, "operation %d", index)
		assert.Equal(t, operations[index].ID, result.ID)
	}
}

func TestBatchExecutor_ErrorIsReported(t *testing.T) {
	t.Parallel()

	mandates := &MockMandatesService{}
	errBoom := errors.New("boom")
	mandates.On("Get", mock.Anything, "MD1").Return(nil, errBoom)

	executor := gcpay.NewBatchExecutor(&MockClient{mandates: mandates}, 1)

	results := executor.Execute(context.Background(), []gcpay.BatchOperation{
		{ID: "m", Type: gcpay.BatchOpGet, Resource: "mandate", Data: "MD1"},
	})

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Error, errBoom)
}
