package snapshotstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"go.uber.org/zap"
)

const (
	snapshotFileName = "payments.json"
	knownIDValue     = "ABC123"
)

var fixedNow = time.Date(2025, time.February, 14, 9, 30, 0, 0, time.UTC)

func mustOpen(test *testing.T, path string) *Store {
	test.Helper()
	store, err := Open(path, WithLogger(zap.NewNop()))
	if err != nil {
		test.Fatalf("open: %v", err)
	}
	return store
}

func mustMatchID(test *testing.T, raw string) ledger.MatchID {
	test.Helper()
	id, err := ledger.NewMatchID(raw)
	if err != nil {
		test.Fatalf("match id: %v", err)
	}
	return id
}

func incrementPending(current ledger.PaymentRecord, _ bool) (ledger.PaymentRecord, error) {
	current.PendingCount++
	return current, nil
}

func writeSnapshot(test *testing.T, path string, payload string) {
	test.Helper()
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		test.Fatalf("write snapshot: %v", err)
	}
}

func TestOpenMissingFileStartsEmpty(test *testing.T) {
	test.Parallel()
	store := mustOpen(test, filepath.Join(test.TempDir(), snapshotFileName))
	records, err := store.List(context.Background())
	if err != nil {
		test.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		test.Fatalf("expected empty store, got %d records", len(records))
	}
}

func TestOpenCorruptFileStartsEmpty(test *testing.T) {
	test.Parallel()
	path := filepath.Join(test.TempDir(), snapshotFileName)
	writeSnapshot(test, path, "{not json")
	store := mustOpen(test, path)
	if _, exists, _ := store.Get(context.Background(), mustMatchID(test, knownIDValue)); exists {
		test.Fatalf("expected no records from corrupt file")
	}
}

func TestOpenRejectsEmptyPath(test *testing.T) {
	test.Parallel()
	if _, err := Open(""); err == nil {
		test.Fatalf("expected error for empty path")
	}
}

func TestTransactPersistsAndReloads(test *testing.T) {
	test.Parallel()
	path := filepath.Join(test.TempDir(), snapshotFileName)
	store := mustOpen(test, path)
	ctx := context.Background()
	id := mustMatchID(test, knownIDValue)

	_, err := store.Transact(ctx, id, func(current ledger.PaymentRecord, exists bool) (ledger.PaymentRecord, error) {
		if exists {
			test.Fatalf("expected new record")
		}
		current.PayerName = "Alice"
		current.Reference = "UTR-1"
		current.Metadata = json.RawMessage(`{"channel":"upi","amount":50}`)
		current.PendingCount = 2
		current.Credits = 1
		current.UsedCount = 3
		submittedAt := fixedNow
		approvedAt := fixedNow.Add(90*time.Minute + 500*time.Millisecond)
		usedAt := fixedNow.Add(2 * time.Hour)
		current.LastSubmittedAt = &submittedAt
		current.LastApprovedAt = &approvedAt
		current.LastUsedAt = &usedAt
		return current, nil
	})
	if err != nil {
		test.Fatalf("transact: %v", err)
	}
	pendingOnlyID := mustMatchID(test, "XYZ789")
	if _, err := store.Transact(ctx, pendingOnlyID, incrementPending); err != nil {
		test.Fatalf("transact pending-only record: %v", err)
	}

	reloaded := mustOpen(test, path)
	record, exists, err := reloaded.Get(ctx, id)
	if err != nil || !exists {
		test.Fatalf("expected reloaded record, exists=%v err=%v", exists, err)
	}
	if record.ID != knownIDValue || record.PayerName != "Alice" || record.Reference != "UTR-1" {
		test.Fatalf("unexpected identity fields: %+v", record)
	}
	if record.PendingCount != 2 || record.Credits != 1 || record.UsedCount != 3 {
		test.Fatalf("unexpected counters: %+v", record)
	}
	if string(record.Metadata) != `{"channel":"upi","amount":50}` {
		test.Fatalf("unexpected metadata: %s", record.Metadata)
	}
	if record.LastSubmittedAt == nil || !record.LastSubmittedAt.Equal(fixedNow) {
		test.Fatalf("unexpected lastSubmittedAt: %v", record.LastSubmittedAt)
	}
	if record.LastApprovedAt == nil || !record.LastApprovedAt.Equal(fixedNow.Add(90*time.Minute+500*time.Millisecond)) {
		test.Fatalf("unexpected lastApprovedAt: %v", record.LastApprovedAt)
	}
	if record.LastUsedAt == nil || !record.LastUsedAt.Equal(fixedNow.Add(2*time.Hour)) {
		test.Fatalf("unexpected lastUsedAt: %v", record.LastUsedAt)
	}

	pendingOnly, exists, err := reloaded.Get(ctx, pendingOnlyID)
	if err != nil || !exists {
		test.Fatalf("expected reloaded pending-only record, exists=%v err=%v", exists, err)
	}
	if pendingOnly.LastSubmittedAt != nil || pendingOnly.LastApprovedAt != nil || pendingOnly.LastUsedAt != nil {
		test.Fatalf("expected unset timestamps to stay unset: %+v", pendingOnly)
	}
}

func TestSnapshotFileLayout(test *testing.T) {
	test.Parallel()
	path := filepath.Join(test.TempDir(), snapshotFileName)
	store := mustOpen(test, path)
	if _, err := store.Transact(context.Background(), mustMatchID(test, knownIDValue), incrementPending); err != nil {
		test.Fatalf("transact: %v", err)
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		test.Fatalf("read snapshot: %v", err)
	}
	var document struct {
		Records map[string]map[string]any `json:"records"`
	}
	if err := json.Unmarshal(payload, &document); err != nil {
		test.Fatalf("decode snapshot: %v", err)
	}
	record, exists := document.Records[knownIDValue]
	if !exists {
		test.Fatalf("expected record keyed by id, got %v", document.Records)
	}
	if record["pending_count"] != float64(1) || record["credits"] != float64(0) || record["used_count"] != float64(0) {
		test.Fatalf("unexpected counters on disk: %v", record)
	}
	if _, hasStatus := record["status"]; hasStatus {
		test.Fatalf("status must not be persisted: %v", record)
	}
	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	if err != nil {
		test.Fatalf("glob: %v", err)
	}
	if len(leftovers) != 0 {
		test.Fatalf("expected no temp files, got %v", leftovers)
	}
}

func TestMutationErrorPersistsNothing(test *testing.T) {
	test.Parallel()
	path := filepath.Join(test.TempDir(), snapshotFileName)
	store := mustOpen(test, path)
	errRejected := errors.New("rejected")

	_, err := store.Transact(context.Background(), mustMatchID(test, knownIDValue), func(ledger.PaymentRecord, bool) (ledger.PaymentRecord, error) {
		return ledger.PaymentRecord{}, errRejected
	})
	if !errors.Is(err, errRejected) {
		test.Fatalf("expected %v, got %v", errRejected, err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		test.Fatalf("expected no snapshot file, got %v", statErr)
	}
}

func TestTransactRejectsInvariantViolations(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name     string
		mutation ledger.Mutation
	}{
		{
			name: "negative credits",
			mutation: func(current ledger.PaymentRecord, _ bool) (ledger.PaymentRecord, error) {
				current.Credits = -1
				return current, nil
			},
		},
		{
			name: "used count decreases",
			mutation: func(current ledger.PaymentRecord, _ bool) (ledger.PaymentRecord, error) {
				current.UsedCount--
				return current, nil
			},
		},
		{
			name: "id changes",
			mutation: func(current ledger.PaymentRecord, _ bool) (ledger.PaymentRecord, error) {
				current.ID = "OTHER"
				return current, nil
			},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			store := mustOpen(test, filepath.Join(test.TempDir(), snapshotFileName))
			id := mustMatchID(test, knownIDValue)
			if _, err := store.Transact(context.Background(), id, func(current ledger.PaymentRecord, _ bool) (ledger.PaymentRecord, error) {
				current.UsedCount = 2
				return current, nil
			}); err != nil {
				test.Fatalf("seed: %v", err)
			}
			_, err := store.Transact(context.Background(), id, testCase.mutation)
			if !errors.Is(err, ledger.ErrInvalidRecord) {
				test.Fatalf("expected %v, got %v", ledger.ErrInvalidRecord, err)
			}
			record, _, _ := store.Get(context.Background(), id)
			if record.UsedCount != 2 || record.Credits != 0 {
				test.Fatalf("record changed: %+v", record)
			}
		})
	}
}

func TestFailedWriteKeepsPreviousState(test *testing.T) {
	test.Parallel()
	directory := filepath.Join(test.TempDir(), "data")
	if err := os.Mkdir(directory, 0o755); err != nil {
		test.Fatalf("mkdir: %v", err)
	}
	store := mustOpen(test, filepath.Join(directory, snapshotFileName))
	id := mustMatchID(test, knownIDValue)
	if _, err := store.Transact(context.Background(), id, incrementPending); err != nil {
		test.Fatalf("seed: %v", err)
	}
	if err := os.RemoveAll(directory); err != nil {
		test.Fatalf("remove: %v", err)
	}

	if _, err := store.Transact(context.Background(), id, incrementPending); err == nil {
		test.Fatalf("expected write failure")
	}
	record, exists, err := store.Get(context.Background(), id)
	if err != nil || !exists {
		test.Fatalf("expected record, exists=%v err=%v", exists, err)
	}
	if record.PendingCount != 1 {
		test.Fatalf("expected in-memory state at previous commit, got %+v", record)
	}
}

func TestConcurrentTransactionsAreSerialized(test *testing.T) {
	test.Parallel()
	const writers = 25
	path := filepath.Join(test.TempDir(), snapshotFileName)
	store := mustOpen(test, path)
	id := mustMatchID(test, knownIDValue)

	var waitGroup sync.WaitGroup
	for index := 0; index < writers; index++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			if _, err := store.Transact(context.Background(), id, incrementPending); err != nil {
				test.Errorf("transact: %v", err)
			}
		}()
	}
	waitGroup.Wait()

	record, _, _ := store.Get(context.Background(), id)
	if record.PendingCount != writers {
		test.Fatalf("expected pending %d, got %d", writers, record.PendingCount)
	}
	reloaded, _, _ := mustOpen(test, path).Get(context.Background(), id)
	if reloaded.PendingCount != writers {
		test.Fatalf("expected persisted pending %d, got %d", writers, reloaded.PendingCount)
	}
}

func TestListOrderedByID(test *testing.T) {
	test.Parallel()
	store := mustOpen(test, filepath.Join(test.TempDir(), snapshotFileName))
	for _, raw := range []string{"c3", "a1", "b2"} {
		if _, err := store.Transact(context.Background(), mustMatchID(test, raw), incrementPending); err != nil {
			test.Fatalf("transact %s: %v", raw, err)
		}
	}
	records, err := store.List(context.Background())
	if err != nil {
		test.Fatalf("list: %v", err)
	}
	if len(records) != 3 || records[0].ID != "A1" || records[1].ID != "B2" || records[2].ID != "C3" {
		test.Fatalf("unexpected order: %+v", records)
	}
}

func TestReturnedRecordsAreCopies(test *testing.T) {
	test.Parallel()
	store := mustOpen(test, filepath.Join(test.TempDir(), snapshotFileName))
	id := mustMatchID(test, knownIDValue)
	if _, err := store.Transact(context.Background(), id, func(current ledger.PaymentRecord, _ bool) (ledger.PaymentRecord, error) {
		current.Metadata = json.RawMessage(`{"a":1}`)
		return current, nil
	}); err != nil {
		test.Fatalf("transact: %v", err)
	}
	record, _, _ := store.Get(context.Background(), id)
	record.Metadata[2] = 'b'
	again, _, _ := store.Get(context.Background(), id)
	if string(again.Metadata) != `{"a":1}` {
		test.Fatalf("stored metadata was mutated through a returned copy: %s", again.Metadata)
	}
}

func TestCancelledContext(test *testing.T) {
	test.Parallel()
	store := mustOpen(test, filepath.Join(test.TempDir(), snapshotFileName))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Transact(ctx, mustMatchID(test, knownIDValue), incrementPending); !errors.Is(err, context.Canceled) {
		test.Fatalf("expected context cancellation, got %v", err)
	}
}
