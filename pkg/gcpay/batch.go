package gcpay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Static errors for batch execution.
var (
	ErrUnsupportedResourceType  = errors.New("unsupported resource type")
	ErrUnsupportedOperationType = errors.New("unsupported operation type")
	ErrInvalidDataTypeCustomer  = errors.New("invalid data type for customer operation")
	ErrInvalidDataTypePayment   = errors.New("invalid data type for payment operation")
	ErrInvalidDataTypeRefund    = errors.New("invalid data type for refund operation")
	ErrInvalidDataTypeMandate   = errors.New("invalid data type for mandate operation")
)

// Batch operation types.
const (
	BatchOpCreate = "create"
	BatchOpGet    = "get"
	BatchOpUpdate = "update"
	BatchOpCancel = "cancel"
)

// UpdateData wraps update payloads with the resource identity.
type UpdateData[T any] struct {
	Identity string
	Request  *T
}

// BatchOperation represents a single operation in a batch. Operations
// are independent; the executor makes no ordering guarantee between
// them, matching the API's own lack of cross-call ordering.
type BatchOperation struct {
	ID       string
	Type     string // "create", "get", "update", "cancel"
	Resource string // "customer", "payment", "refund", "mandate"
	Data     interface{}
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor executes independent API calls with bounded concurrency.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

const defaultBatchConcurrency = 5

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     30 * time.Second,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations and returns results in input order.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) []BatchResult {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results
}

// executeOperation dispatches one operation to the matching service.
func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	switch operation.Resource {
	case "customer":
		return b.executeCustomerOperation(ctx, operation)
	case "payment":
		return b.executePaymentOperation(ctx, operation)
	case "refund":
		return b.executeRefundOperation(ctx, operation)
	case "mandate":
		return b.executeMandateOperation(ctx, operation)
	default:
		result.Error = fmt.Errorf("%w: %s", ErrUnsupportedResourceType, operation.Resource)

		return result
	}
}

// finish folds an operation outcome into a BatchResult.
func finish(id string, data interface{}, err error) *BatchResult {
	return &BatchResult{
		ID:      id,
		Success: err == nil,
		Data:    data,
		Error:   err,
	}
}

func (b *BatchExecutor) executeCustomerOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	switch operation.Type {
	case BatchOpCreate:
		if req, ok := operation.Data.(*CustomerCreateRequest); ok {
			data, err := b.client.Customers().Create(ctx, req)

			return finish(operation.ID, data, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w create", ErrInvalidDataTypeCustomer))
	case BatchOpGet:
		if identity, ok := operation.Data.(string); ok {
			data, err := b.client.Customers().Get(ctx, identity)

			return finish(operation.ID, data, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w get", ErrInvalidDataTypeCustomer))
	case BatchOpUpdate:
		if data, ok := operation.Data.(*UpdateData[CustomerUpdateRequest]); ok {
			updated, err := b.client.Customers().Update(ctx, data.Identity, data.Request)

			return finish(operation.ID, updated, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w update", ErrInvalidDataTypeCustomer))
	default:
		return finish(operation.ID, nil, fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type))
	}
}

func (b *BatchExecutor) executePaymentOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	switch operation.Type {
	case BatchOpCreate:
		if req, ok := operation.Data.(*PaymentCreateRequest); ok {
			data, err := b.client.Payments().Create(ctx, req)

			return finish(operation.ID, data, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w create", ErrInvalidDataTypePayment))
	case BatchOpGet:
		if identity, ok := operation.Data.(string); ok {
			data, err := b.client.Payments().Get(ctx, identity)

			return finish(operation.ID, data, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w get", ErrInvalidDataTypePayment))
	case BatchOpUpdate:
		if data, ok := operation.Data.(*UpdateData[PaymentUpdateRequest]); ok {
			updated, err := b.client.Payments().Update(ctx, data.Identity, data.Request)

			return finish(operation.ID, updated, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w update", ErrInvalidDataTypePayment))
	case BatchOpCancel:
		if identity, ok := operation.Data.(string); ok {
			data, err := b.client.Payments().Cancel(ctx, identity)

			return finish(operation.ID, data, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w cancel", ErrInvalidDataTypePayment))
	default:
		return finish(operation.ID, nil, fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type))
	}
}

func (b *BatchExecutor) executeRefundOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	switch operation.Type {
	case BatchOpCreate:
		if req, ok := operation.Data.(*RefundCreateRequest); ok {
			data, err := b.client.Refunds().Create(ctx, req)

			return finish(operation.ID, data, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w create", ErrInvalidDataTypeRefund))
	case BatchOpGet:
		if identity, ok := operation.Data.(string); ok {
			data, err := b.client.Refunds().Get(ctx, identity)

			return finish(operation.ID, data, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w get", ErrInvalidDataTypeRefund))
	default:
		return finish(operation.ID, nil, fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type))
	}
}

func (b *BatchExecutor) executeMandateOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	switch operation.Type {
	case BatchOpCreate:
		if req, ok := operation.Data.(*MandateCreateRequest); ok {
			data, err := b.client.Mandates().Create(ctx, req)

			return finish(operation.ID, data, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w create", ErrInvalidDataTypeMandate))
	case BatchOpGet:
		if identity, ok := operation.Data.(string); ok {
			data, err := b.client.Mandates().Get(ctx, identity)

			return finish(operation.ID, data, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w get", ErrInvalidDataTypeMandate))
	case BatchOpCancel:
		if identity, ok := operation.Data.(string); ok {
			data, err := b.client.Mandates().Cancel(ctx, identity)

			return finish(operation.ID, data, err)
		}

		return finish(operation.ID, nil, fmt.Errorf("%w cancel", ErrInvalidDataTypeMandate))
	default:
		return finish(operation.ID, nil, fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type))
	}
}
