package pgstore

import (
	"context"
	"errors"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// transactionLockKey is the advisory lock serializing every Transact call
	// across all processes sharing the database.
	transactionLockKey = int64(0x6d6c6467)

	constraintPaymentRecordsPrimary = "payment_records_pkey"
	pgUniqueViolationCode           = "23505"
	errorOperationStore             = "store"
	errorSubjectRecord              = "record"
	errorSubjectSchema              = "schema"
	errorSubjectTransaction         = "transaction"
	errorCodeBegin                  = "begin"
	errorCodeCommit                 = "commit"
	errorCodeCreate                 = "create"
	errorCodeDuplicate              = "duplicate"
	errorCodeGet                    = "get"
	errorCodeInvalid                = "invalid"
	errorCodeList                   = "list"
	errorCodeLock                   = "lock"
	errorCodeUpsert                 = "upsert"

	sqlCreateSchema = `
		create table if not exists payment_records (
			id text primary key,
			name text not null default '',
			utr text not null default '',
			metadata jsonb,
			pending_count bigint not null default 0 check (pending_count >= 0),
			credits bigint not null default 0 check (credits >= 0),
			used_count bigint not null default 0 check (used_count >= 0),
			last_submitted_at timestamptz,
			last_approved_at timestamptz,
			last_used_at timestamptz,
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		)
	`

	sqlAdvisoryLock = `select pg_advisory_xact_lock($1)`

	sqlSelectRecordColumns = `
		select id, name, utr, coalesce(metadata::text, ''), pending_count, credits, used_count,
			last_submitted_at, last_approved_at, last_used_at
		from payment_records
	`

	sqlSelectRecord = sqlSelectRecordColumns + ` where id = $1`

	sqlSelectRecordForUpdate = sqlSelectRecord + ` for update`

	sqlListRecords = sqlSelectRecordColumns + ` order by id asc`

	sqlUpsertRecord = `
		insert into payment_records(
			id, name, utr, metadata, pending_count, credits, used_count,
			last_submitted_at, last_approved_at, last_used_at
		)
		values ($1, $2, $3, nullif($4, '')::jsonb, $5, $6, $7, $8, $9, $10)
		on conflict (id) do update set
			name = excluded.name,
			utr = excluded.utr,
			metadata = excluded.metadata,
			pending_count = excluded.pending_count,
			credits = excluded.credits,
			used_count = excluded.used_count,
			last_submitted_at = excluded.last_submitted_at,
			last_approved_at = excluded.last_approved_at,
			last_used_at = excluded.last_used_at,
			updated_at = now()
	`
)

// Store implements ledger.Store using a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New returns a Store backed by a pgx pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the payment_records table when missing.
func (store *Store) EnsureSchema(ctx context.Context) error {
	if _, err := store.pool.Exec(ctx, sqlCreateSchema); err != nil {
		return wrapStoreError(errorSubjectSchema, errorCodeCreate, err)
	}
	return nil
}

func (store *Store) Get(ctx context.Context, id ledger.MatchID) (ledger.PaymentRecord, bool, error) {
	record, err := scanRecord(store.pool.QueryRow(ctx, sqlSelectRecord, id.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.PaymentRecord{}, false, nil
	}
	if err != nil {
		return ledger.PaymentRecord{}, false, wrapStoreError(errorSubjectRecord, errorCodeGet, err)
	}
	return record, true, nil
}

func (store *Store) List(ctx context.Context) ([]ledger.PaymentRecord, error) {
	rows, err := store.pool.Query(ctx, sqlListRecords)
	if err != nil {
		return nil, wrapStoreError(errorSubjectRecord, errorCodeList, err)
	}
	defer rows.Close()

	records := make([]ledger.PaymentRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, wrapStoreError(errorSubjectRecord, errorCodeInvalid, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectRecord, errorCodeList, err)
	}
	return records, nil
}

// Transact runs mutation under a transaction-scoped advisory lock.
func (store *Store) Transact(ctx context.Context, id ledger.MatchID, mutation ledger.Mutation) (ledger.PaymentRecord, error) {
	tx, err := store.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return ledger.PaymentRecord{}, wrapStoreError(errorSubjectTransaction, errorCodeBegin, err)
	}
	next, err := transact(ctx, tx, id, mutation)
	if err != nil {
		_ = tx.Rollback(ctx)
		return ledger.PaymentRecord{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return ledger.PaymentRecord{}, wrapStoreError(errorSubjectTransaction, errorCodeCommit, err)
	}
	return next, nil
}

func transact(ctx context.Context, tx pgx.Tx, id ledger.MatchID, mutation ledger.Mutation) (ledger.PaymentRecord, error) {
	if _, err := tx.Exec(ctx, sqlAdvisoryLock, transactionLockKey); err != nil {
		return ledger.PaymentRecord{}, wrapStoreError(errorSubjectTransaction, errorCodeLock, err)
	}
	current, err := scanRecord(tx.QueryRow(ctx, sqlSelectRecordForUpdate, id.String()))
	exists := true
	if errors.Is(err, pgx.ErrNoRows) {
		exists = false
		current = ledger.PaymentRecord{ID: id.String()}
	} else if err != nil {
		return ledger.PaymentRecord{}, wrapStoreError(errorSubjectRecord, errorCodeGet, err)
	}

	next, err := mutation(current, exists)
	if err != nil {
		return ledger.PaymentRecord{}, err
	}
	if err := ledger.ValidateTransition(current, next); err != nil {
		return ledger.PaymentRecord{}, wrapStoreError(errorSubjectRecord, errorCodeInvalid, err)
	}

	_, err = tx.Exec(ctx, sqlUpsertRecord,
		next.ID,
		next.PayerName,
		next.Reference,
		string(next.Metadata),
		next.PendingCount,
		next.Credits,
		next.UsedCount,
		next.LastSubmittedAt,
		next.LastApprovedAt,
		next.LastUsedAt,
	)
	if isRecordConflict(err) {
		return ledger.PaymentRecord{}, wrapStoreError(errorSubjectRecord, errorCodeDuplicate, err)
	}
	if err != nil {
		return ledger.PaymentRecord{}, wrapStoreError(errorSubjectRecord, errorCodeUpsert, err)
	}
	return next, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (ledger.PaymentRecord, error) {
	var (
		record          ledger.PaymentRecord
		metadataText    string
		lastSubmittedAt *time.Time
		lastApprovedAt  *time.Time
		lastUsedAt      *time.Time
	)
	err := row.Scan(
		&record.ID,
		&record.PayerName,
		&record.Reference,
		&metadataText,
		&record.PendingCount,
		&record.Credits,
		&record.UsedCount,
		&lastSubmittedAt,
		&lastApprovedAt,
		&lastUsedAt,
	)
	if err != nil {
		return ledger.PaymentRecord{}, err
	}
	metadata, err := ledger.NewMetadataJSON(metadataText)
	if err != nil {
		return ledger.PaymentRecord{}, err
	}
	record.Metadata = metadata.RawMessage()
	record.LastSubmittedAt = utcOrNil(lastSubmittedAt)
	record.LastApprovedAt = utcOrNil(lastApprovedAt)
	record.LastUsedAt = utcOrNil(lastUsedAt)
	if err := record.Validate(); err != nil {
		return ledger.PaymentRecord{}, err
	}
	return record, nil
}

func utcOrNil(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	converted := value.UTC()
	return &converted
}

func wrapStoreError(subject string, code string, err error) error {
	return ledger.WrapError(errorOperationStore, subject, code, err)
}

func isRecordConflict(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode && pgErr.ConstraintName == constraintPaymentRecordsPrimary
	}
	return false
}
