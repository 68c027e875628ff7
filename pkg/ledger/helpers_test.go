package ledger

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"
)

const (
	knownIDValue         = "ABC123"
	otherIDValue         = "XYZ789"
	payerNameValue       = "Alice"
	errorMismatchMessage = "expected %v, got %v"
)

var fixedNow = time.Date(2025, time.February, 14, 9, 30, 0, 0, time.UTC)

type stubStore struct {
	mutex         sync.Mutex
	records       map[string]PaymentRecord
	getError      error
	listError     error
	transactError error
	transactCalls int
}

func newStubStore(test *testing.T) *stubStore {
	test.Helper()
	return &stubStore{records: make(map[string]PaymentRecord)}
}

func (store *stubStore) Get(_ context.Context, id MatchID) (PaymentRecord, bool, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	if store.getError != nil {
		return PaymentRecord{}, false, store.getError
	}
	record, exists := store.records[id.String()]
	return record, exists, nil
}

func (store *stubStore) Transact(_ context.Context, id MatchID, mutation Mutation) (PaymentRecord, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.transactCalls++
	if store.transactError != nil {
		return PaymentRecord{}, store.transactError
	}
	current, exists := store.records[id.String()]
	if !exists {
		current = PaymentRecord{ID: id.String()}
	}
	next, err := mutation(current, exists)
	if err != nil {
		return PaymentRecord{}, err
	}
	if err := ValidateTransition(current, next); err != nil {
		return PaymentRecord{}, err
	}
	store.records[id.String()] = next
	return next, nil
}

func (store *stubStore) List(_ context.Context) ([]PaymentRecord, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	if store.listError != nil {
		return nil, store.listError
	}
	records := make([]PaymentRecord, 0, len(store.records))
	for _, record := range store.records {
		records = append(records, record)
	}
	sort.Slice(records, func(left, right int) bool {
		return records[left].ID < records[right].ID
	})
	return records, nil
}

func (store *stubStore) mustRecord(test *testing.T, rawID string) PaymentRecord {
	test.Helper()
	store.mutex.Lock()
	defer store.mutex.Unlock()
	record, exists := store.records[NormalizeID(rawID)]
	if !exists {
		test.Fatalf("expected record for %q", rawID)
	}
	return record
}

func (store *stubStore) put(record PaymentRecord) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.records[record.ID] = record
}

type stubDirectory struct {
	entries map[string]MatchEntry
}

func newStubDirectory(ids ...string) *stubDirectory {
	directory := &stubDirectory{entries: make(map[string]MatchEntry, len(ids))}
	for _, id := range ids {
		directory.entries[id] = MatchEntry{ID: id, Name: "Name " + id, MatchID: "M-" + id, MatchName: "Match " + id}
	}
	return directory
}

func (directory *stubDirectory) Exists(id MatchID) bool {
	_, exists := directory.entries[id.String()]
	return exists
}

func (directory *stubDirectory) Get(id MatchID) (MatchEntry, bool) {
	entry, exists := directory.entries[id.String()]
	return entry, exists
}

// forgetfulDirectory claims every id exists but never returns an entry.
type forgetfulDirectory struct{}

func (forgetfulDirectory) Exists(MatchID) bool { return true }

func (forgetfulDirectory) Get(MatchID) (MatchEntry, bool) { return MatchEntry{}, false }

func mustNewService(test *testing.T, store Store, directory Directory, options ...ServiceOption) *Service {
	test.Helper()
	service, err := NewService(store, directory, func() time.Time { return fixedNow }, options...)
	if err != nil {
		test.Fatalf("new service: %v", err)
	}
	return service
}

func mustSubmit(test *testing.T, service *Service, rawID string) PaymentRecord {
	test.Helper()
	record, err := service.SubmitPayment(context.Background(), SubmitPaymentInput{ID: rawID, PayerName: payerNameValue})
	if err != nil {
		test.Fatalf("submit %q: %v", rawID, err)
	}
	return record
}

func mustApprove(test *testing.T, service *Service, rawID string) PaymentRecord {
	test.Helper()
	record, err := service.ApprovePayment(context.Background(), rawID)
	if err != nil {
		test.Fatalf("approve %q: %v", rawID, err)
	}
	return record
}

func mustMatchID(test *testing.T, raw string) MatchID {
	test.Helper()
	id, err := NewMatchID(raw)
	if err != nil {
		test.Fatalf("match id %q: %v", raw, err)
	}
	return id
}

// gatedStore holds the first Transact call, before it reaches the store lock,
// until release is closed.
type gatedStore struct {
	*stubStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedStore(inner *stubStore) *gatedStore {
	return &gatedStore{stubStore: inner, entered: make(chan struct{}), release: make(chan struct{})}
}

func (store *gatedStore) Transact(ctx context.Context, id MatchID, mutation Mutation) (PaymentRecord, error) {
	first := false
	store.once.Do(func() { first = true })
	if first {
		close(store.entered)
		<-store.release
	}
	return store.stubStore.Transact(ctx, id, mutation)
}

// tickingClock advances one second per reading.
type tickingClock struct {
	mutex   sync.Mutex
	current time.Time
}

func (clock *tickingClock) now() time.Time {
	clock.mutex.Lock()
	defer clock.mutex.Unlock()
	clock.current = clock.current.Add(time.Second)
	return clock.current
}
