package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedOperationType = errors.New("unsupported operation type")
	ErrBatchFailed              = errors.New("batch failed")
)

// BatchOperationType names what a batch operation does to its resource.
type BatchOperationType string

// Batch operation types.
const (
	BatchDelete          BatchOperationType = "delete"
	BatchPermanentDelete BatchOperationType = "purge"
	BatchRestore         BatchOperationType = "restore"
)

// BatchOperation represents a single operation in a batch.
type BatchOperation struct {
	ID         string
	Type       BatchOperationType
	ResourceID int
	Target     interface{}
	Callback   func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID         string
	ResourceID int
	Success    bool
	Error      error
	Duration   time.Duration
}

// BatchExecutor runs independent id-scoped operations with bounded concurrency.
type BatchExecutor struct {
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	return &BatchExecutor{
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the timeout for each operation.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations. Results are returned in the order of
// operations. The returned error wraps ErrBatchFailed when any operation
// failed; the per-operation errors are in the results.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
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

	var failed []string

	for _, result := range results {
		if !result.Success {
			failed = append(failed, result.ID)
		}
	}

	if len(failed) > 0 {
		return results, fmt.Errorf("%w, %d operations failed: %v", ErrBatchFailed, len(failed), failed)
	}

	return results, nil
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{
		ID:         operation.ID,
		ResourceID: operation.ResourceID,
	}

	var err error

	switch operation.Type {
	case BatchDelete:
		deleter, ok := operation.Target.(Deleter)
		if !ok {
			err = fmt.Errorf("%w: %s", ErrUnsupportedOperation, operation.Type)

			break
		}

		err = deleter.Delete(ctx, operation.ResourceID)
	case BatchPermanentDelete:
		deleter, ok := operation.Target.(PermanentDeleter)
		if !ok {
			err = fmt.Errorf("%w: %s", ErrUnsupportedOperation, operation.Type)

			break
		}

		err = deleter.PermanentDelete(ctx, operation.ResourceID)
	case BatchRestore:
		restorer, ok := operation.Target.(Restorer)
		if !ok {
			err = fmt.Errorf("%w: %s", ErrUnsupportedOperation, operation.Type)

			break
		}

		err = restorer.Restore(ctx, operation.ResourceID)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type)
	}

	result.Success = err == nil
	result.Error = err

	return result
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddDelete adds a delete of id through client.
func (b *BatchBuilder) AddDelete(client Deleter, id int) *BatchBuilder {
	return b.add(BatchDelete, client, id)
}

// AddPermanentDelete adds a permanent delete of id through client.
func (b *BatchBuilder) AddPermanentDelete(client PermanentDeleter, id int) *BatchBuilder {
	return b.add(BatchPermanentDelete, client, id)
}

// AddRestore adds a restore of id through client.
func (b *BatchBuilder) AddRestore(client Restorer, id int) *BatchBuilder {
	return b.add(BatchRestore, client, id)
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}

func (b *BatchBuilder) add(operationType BatchOperationType, target interface{}, id int) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:         fmt.Sprintf("%s-%d", operationType, id),
		Type:       operationType,
		ResourceID: id,
		Target:     target,
	})

	return b
}
