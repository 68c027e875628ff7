package snapshotstore

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"github.com/MarkoPoloResearchLab/matchledger/internal/atomicfile"
	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"go.uber.org/zap"
)

const (
	snapshotFilePermissions = 0o644
	errorOperationStore     = "store"
	errorSubjectRecord      = "record"
	errorSubjectSnapshot    = "snapshot"
	errorCodeEncode         = "encode"
	errorCodeInvalid        = "invalid"
	errorCodeWrite          = "write"
)

// Store implements ledger.Store over a single JSON snapshot file.
// Every transaction rewrites the whole file; memory is swapped only after the
// new file is in place.
type Store struct {
	path    string
	logger  *zap.Logger
	mutex   sync.RWMutex
	records map[string]ledger.PaymentRecord
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(store *Store) {
		if logger != nil {
			store.logger = logger
		}
	}
}

// Open loads the snapshot at path. A missing or unreadable file yields an
// empty store; the condition is logged, not returned.
func Open(path string, options ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("snapshotstore: empty path")
	}
	store := &Store{
		path:    path,
		logger:  zap.NewNop(),
		records: make(map[string]ledger.PaymentRecord),
	}
	for _, option := range options {
		if option != nil {
			option(store)
		}
	}
	store.records = loadRecords(path, store.logger)
	return store, nil
}

// Path returns the snapshot location.
func (store *Store) Path() string {
	return store.path
}

func (store *Store) Get(ctx context.Context, id ledger.MatchID) (ledger.PaymentRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return ledger.PaymentRecord{}, false, err
	}
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	record, exists := store.records[id.String()]
	return cloneRecord(record), exists, nil
}

func (store *Store) List(ctx context.Context) ([]ledger.PaymentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	records := make([]ledger.PaymentRecord, 0, len(store.records))
	for _, record := range store.records {
		records = append(records, cloneRecord(record))
	}
	sort.Slice(records, func(left, right int) bool {
		return records[left].ID < records[right].ID
	})
	return records, nil
}

func (store *Store) Transact(ctx context.Context, id ledger.MatchID, mutation ledger.Mutation) (ledger.PaymentRecord, error) {
	if err := ctx.Err(); err != nil {
		return ledger.PaymentRecord{}, err
	}
	store.mutex.Lock()
	defer store.mutex.Unlock()

	current, exists := store.records[id.String()]
	if !exists {
		current = ledger.PaymentRecord{ID: id.String()}
	}
	next, err := mutation(cloneRecord(current), exists)
	if err != nil {
		return ledger.PaymentRecord{}, err
	}
	if err := ledger.ValidateTransition(current, next); err != nil {
		return ledger.PaymentRecord{}, wrapStoreError(errorSubjectRecord, errorCodeInvalid, err)
	}

	staged := make(map[string]ledger.PaymentRecord, len(store.records)+1)
	for key, record := range store.records {
		staged[key] = record
	}
	staged[id.String()] = cloneRecord(next)

	payload, err := encodeSnapshot(staged)
	if err != nil {
		return ledger.PaymentRecord{}, wrapStoreError(errorSubjectSnapshot, errorCodeEncode, err)
	}
	if err := atomicfile.Write(store.path, payload, snapshotFilePermissions); err != nil {
		return ledger.PaymentRecord{}, wrapStoreError(errorSubjectSnapshot, errorCodeWrite, err)
	}
	store.records = staged
	return cloneRecord(next), nil
}

type snapshotDocument struct {
	Records map[string]ledger.PaymentRecord `json:"records"`
}

func encodeSnapshot(records map[string]ledger.PaymentRecord) ([]byte, error) {
	payload, err := json.MarshalIndent(snapshotDocument{Records: records}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(payload, '\n'), nil
}

func cloneRecord(record ledger.PaymentRecord) ledger.PaymentRecord {
	clone := record
	if record.Metadata != nil {
		clone.Metadata = append(json.RawMessage(nil), record.Metadata...)
	}
	clone.LastSubmittedAt = cloneTime(record.LastSubmittedAt)
	clone.LastApprovedAt = cloneTime(record.LastApprovedAt)
	clone.LastUsedAt = cloneTime(record.LastUsedAt)
	return clone
}

func wrapStoreError(subject string, code string, err error) error {
	return ledger.WrapError(errorOperationStore, subject, code, err)
}
