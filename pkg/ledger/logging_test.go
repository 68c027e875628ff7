package ledger

import (
	"context"
	"errors"
	"testing"
)

type recorderLogger struct {
	entries []OperationLog
}

func (logger *recorderLogger) LogOperation(_ context.Context, entry OperationLog) {
	logger.entries = append(logger.entries, entry)
}

func TestServiceLogsSubmitOperation(test *testing.T) {
	test.Parallel()
	logger := &recorderLogger{}
	service := mustNewService(test, newStubStore(test), newStubDirectory(knownIDValue), WithOperationLogger(logger))

	mustSubmit(test, service, "abc 123")
	if len(logger.entries) != 1 {
		test.Fatalf("expected one log entry, got %d", len(logger.entries))
	}
	entry := logger.entries[0]
	if entry.Operation != OperationSubmit || entry.MatchID != knownIDValue || entry.PendingCount != 1 {
		test.Fatalf("unexpected log entry: %+v", entry)
	}
	if entry.Error != nil || entry.Status != OperationStatusOK {
		test.Fatalf("expected successful log entry, got %+v", entry)
	}
}

func TestServiceLogsErrorStatus(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	store.transactError = errors.New("boom")
	logger := &recorderLogger{}
	service := mustNewService(test, store, newStubDirectory(knownIDValue), WithOperationLogger(logger))

	if _, err := service.ApprovePayment(context.Background(), knownIDValue); err == nil {
		test.Fatalf("expected error")
	}
	if len(logger.entries) != 1 {
		test.Fatalf("expected one log entry, got %d", len(logger.entries))
	}
	entry := logger.entries[0]
	if entry.Operation != OperationApprove || entry.Status != OperationStatusError || entry.Error == nil {
		test.Fatalf("expected error log entry, got %+v", entry)
	}
}

func TestServiceFansOutToEveryLogger(test *testing.T) {
	test.Parallel()
	first := &recorderLogger{}
	second := &recorderLogger{}
	store := newStubStore(test)
	store.put(PaymentRecord{ID: knownIDValue, Credits: 1})
	service := mustNewService(test, store, newStubDirectory(knownIDValue), WithOperationLogger(first), WithOperationLogger(nil), WithOperationLogger(second))

	if _, err := service.LookupAndConsume(context.Background(), knownIDValue); err != nil {
		test.Fatalf("lookup: %v", err)
	}
	for _, logger := range []*recorderLogger{first, second} {
		if len(logger.entries) != 1 || logger.entries[0].Operation != OperationLookup || logger.entries[0].UsedCount != 1 {
			test.Fatalf("unexpected entries: %+v", logger.entries)
		}
	}
}
