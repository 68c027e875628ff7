package ledger

import (
	"context"
	"fmt"
	"time"
)

// Service contains the domain logic over a Store.
type Service struct {
	store     Store
	directory Directory
	nowFn     func() time.Time
	loggers   []OperationLogger
	blocked   map[string]struct{}
}

// SubmitPaymentInput carries the raw fields of a payment submission.
type SubmitPaymentInput struct {
	ID        string
	PayerName string
	Reference string
	Metadata  string
}

// LookupResult is the outcome of a successful lookup.
type LookupResult struct {
	Entry  MatchEntry
	Record PaymentRecord
}

// NewService wires a Service.
func NewService(store Store, directory Directory, now func() time.Time, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if directory == nil {
		return nil, fmt.Errorf("%w: directory dependency is nil", ErrInvalidServiceConfig)
	}
	if now == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{
		store:     store,
		directory: directory,
		nowFn:     now,
		blocked:   make(map[string]struct{}),
	}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	return service, nil
}

// SubmitPayment registers one more pending payment for the identifier,
// creating the record on first submission.
func (service *Service) SubmitPayment(ctx context.Context, input SubmitPaymentInput) (PaymentRecord, error) {
	record, operationError := service.submitPayment(ctx, input)
	service.logOperation(ctx, OperationSubmit, NormalizeID(input.ID), record, operationError)
	return record, operationError
}

func (service *Service) submitPayment(ctx context.Context, input SubmitPaymentInput) (PaymentRecord, error) {
	matchID, err := NewMatchID(input.ID)
	if err != nil {
		return PaymentRecord{}, err
	}
	if service.isBlocked(matchID) {
		return PaymentRecord{}, ErrIDBlocked
	}
	payerName, err := NewPayerName(input.PayerName)
	if err != nil {
		return PaymentRecord{}, err
	}
	reference, err := NewReference(input.Reference)
	if err != nil {
		return PaymentRecord{}, err
	}
	metadata, err := NewMetadataJSON(input.Metadata)
	if err != nil {
		return PaymentRecord{}, err
	}
	if !service.directory.Exists(matchID) {
		return PaymentRecord{}, ErrIDNotFound
	}
	// Timestamps are read under the store lock so later commits never carry older times.
	return service.store.Transact(ctx, matchID, func(current PaymentRecord, _ bool) (PaymentRecord, error) {
		return applySubmission(current, payerName, reference, metadata, service.now()), nil
	})
}

// ApprovePayment moves one pending payment into a spendable credit.
func (service *Service) ApprovePayment(ctx context.Context, rawID string) (PaymentRecord, error) {
	record, operationError := service.approvePayment(ctx, rawID)
	service.logOperation(ctx, OperationApprove, NormalizeID(rawID), record, operationError)
	return record, operationError
}

func (service *Service) approvePayment(ctx context.Context, rawID string) (PaymentRecord, error) {
	matchID, err := NewMatchID(rawID)
	if err != nil {
		return PaymentRecord{}, err
	}
	return service.store.Transact(ctx, matchID, func(current PaymentRecord, exists bool) (PaymentRecord, error) {
		if !exists {
			return PaymentRecord{}, ErrRecordNotFound
		}
		return applyApproval(current, service.now())
	})
}

// LookupAndConsume spends one credit and returns the matched directory entry.
func (service *Service) LookupAndConsume(ctx context.Context, rawID string) (LookupResult, error) {
	result, operationError := service.lookupAndConsume(ctx, rawID)
	service.logOperation(ctx, OperationLookup, NormalizeID(rawID), result.Record, operationError)
	return result, operationError
}

func (service *Service) lookupAndConsume(ctx context.Context, rawID string) (LookupResult, error) {
	matchID, err := NewMatchID(rawID)
	if err != nil {
		return LookupResult{}, err
	}
	if service.isBlocked(matchID) {
		return LookupResult{}, ErrIDBlocked
	}
	record, err := service.store.Transact(ctx, matchID, func(current PaymentRecord, exists bool) (PaymentRecord, error) {
		if !exists {
			return PaymentRecord{}, ErrPaymentNotSubmitted
		}
		if err := checkConsumable(current); err != nil {
			return PaymentRecord{}, err
		}
		if !service.directory.Exists(matchID) {
			return PaymentRecord{}, ErrMatchNotFound
		}
		return applyConsumption(current, service.now())
	})
	if err != nil {
		return LookupResult{}, err
	}
	entry, found := service.directory.Get(matchID)
	if !found {
		// The credit is already spent; report the fault with the committed counters.
		return LookupResult{Record: record}, fmt.Errorf("%w: %s after credit consumed", ErrMatchNotFound, matchID.String())
	}
	return LookupResult{Entry: entry, Record: record}, nil
}

func (service *Service) logOperation(ctx context.Context, operation string, matchID string, record PaymentRecord, operationError error) {
	if len(service.loggers) == 0 {
		return
	}
	entry := OperationLog{
		Operation:    operation,
		MatchID:      matchID,
		PendingCount: record.PendingCount,
		Credits:      record.Credits,
		UsedCount:    record.UsedCount,
		Status:       OperationStatusOK,
		Error:        operationError,
	}
	if operationError != nil {
		entry.Status = OperationStatusError
	}
	// Lookup results carry a record only once the credit is committed.
	if operation == OperationLookup && record.ID != "" {
		entry.CreditConsumed = true
	}
	for _, logger := range service.loggers {
		logger.LogOperation(ctx, entry)
	}
}

func (service *Service) isBlocked(matchID MatchID) bool {
	_, blocked := service.blocked[matchID.String()]
	return blocked
}

func (service *Service) now() time.Time {
	return service.nowFn().UTC()
}

func applySubmission(current PaymentRecord, payerName PayerName, reference Reference, metadata MetadataJSON, submittedAt time.Time) PaymentRecord {
	next := current
	next.PendingCount++
	next.PayerName = payerName.String()
	if reference.String() != "" {
		next.Reference = reference.String()
	}
	if metadata.String() != "" {
		next.Metadata = metadata.RawMessage()
	}
	next.LastSubmittedAt = &submittedAt
	return next
}

func applyApproval(current PaymentRecord, approvedAt time.Time) (PaymentRecord, error) {
	if current.PendingCount <= 0 {
		return PaymentRecord{}, ErrNoPendingPayment
	}
	next := current
	next.PendingCount--
	next.Credits++
	next.LastApprovedAt = &approvedAt
	return next, nil
}

func checkConsumable(current PaymentRecord) error {
	if current.Credits > 0 {
		return nil
	}
	if current.PendingCount > 0 {
		return ErrPaymentPending
	}
	return ErrNoCredit
}

func applyConsumption(current PaymentRecord, usedAt time.Time) (PaymentRecord, error) {
	if err := checkConsumable(current); err != nil {
		return PaymentRecord{}, err
	}
	next := current
	next.Credits--
	next.UsedCount++
	next.LastUsedAt = &usedAt
	return next, nil
}
