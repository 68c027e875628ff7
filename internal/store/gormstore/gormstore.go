package gormstore

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// transactionLockKey matches pgstore so both engines serialize on one database.
	transactionLockKey = int64(0x6d6c6467)
	sqlAdvisoryLock    = "select pg_advisory_xact_lock(?)"
	dialectPostgres    = "postgres"
)

const (
	constraintPaymentRecordsPrimary = "payment_records_pkey"
	jsonNullLiteral                 = "null"
	pgUniqueViolationCode           = "23505"
	sqliteConstraintCode            = 19
	errorOperationStore             = "store"
	errorSubjectRecord              = "record"
	errorSubjectSchema              = "schema"
	errorCodeCreate                 = "create"
	errorCodeDuplicate              = "duplicate"
	errorCodeGet                    = "get"
	errorCodeInvalid                = "invalid"
	errorCodeList                   = "list"
	errorCodeLock                   = "lock"
	errorCodeMigrate                = "migrate"
	errorCodeUpdate                 = "update"
)

// Store implements ledger.Store using GORM.
type Store struct {
	db    *gorm.DB
	mutex sync.Mutex
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the payment_records table.
func (store *Store) AutoMigrate(ctx context.Context) error {
	if err := store.db.WithContext(ctx).AutoMigrate(&PaymentRecord{}); err != nil {
		return wrapStoreError(errorSubjectSchema, errorCodeMigrate, err)
	}
	return nil
}

func (store *Store) Get(ctx context.Context, id ledger.MatchID) (ledger.PaymentRecord, bool, error) {
	var model PaymentRecord
	err := store.db.WithContext(ctx).Where("id = ?", id.String()).Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.PaymentRecord{}, false, nil
	}
	if err != nil {
		return ledger.PaymentRecord{}, false, wrapStoreError(errorSubjectRecord, errorCodeGet, err)
	}
	record, err := mapPaymentRecord(model)
	if err != nil {
		return ledger.PaymentRecord{}, false, wrapStoreError(errorSubjectRecord, errorCodeInvalid, err)
	}
	return record, true, nil
}

func (store *Store) List(ctx context.Context) ([]ledger.PaymentRecord, error) {
	var rows []PaymentRecord
	if err := store.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, wrapStoreError(errorSubjectRecord, errorCodeList, err)
	}
	records := make([]ledger.PaymentRecord, 0, len(rows))
	for _, row := range rows {
		record, err := mapPaymentRecord(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectRecord, errorCodeInvalid, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Transact applies mutation inside a database transaction. Calls are
// serialized in-process; on PostgreSQL a transaction-scoped advisory lock
// also serializes other processes, including the first insert of an id.
func (store *Store) Transact(ctx context.Context, id ledger.MatchID, mutation ledger.Mutation) (ledger.PaymentRecord, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	var committed ledger.PaymentRecord
	err := store.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		if err := lockTransaction(transaction); err != nil {
			return wrapStoreError(errorSubjectRecord, errorCodeLock, err)
		}
		var model PaymentRecord
		lookupErr := transaction.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id.String()).
			Take(&model).Error
		exists := true
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			exists = false
		} else if lookupErr != nil {
			return wrapStoreError(errorSubjectRecord, errorCodeGet, lookupErr)
		}

		current := ledger.PaymentRecord{ID: id.String()}
		if exists {
			mapped, err := mapPaymentRecord(model)
			if err != nil {
				return wrapStoreError(errorSubjectRecord, errorCodeInvalid, err)
			}
			current = mapped
		}
		next, err := mutation(current, exists)
		if err != nil {
			return err
		}
		if err := ledger.ValidateTransition(current, next); err != nil {
			return wrapStoreError(errorSubjectRecord, errorCodeInvalid, err)
		}

		row := toModel(next)
		if exists {
			row.CreatedAt = model.CreatedAt
			if err := transaction.Save(&row).Error; err != nil {
				return wrapStoreError(errorSubjectRecord, errorCodeUpdate, err)
			}
		} else {
			createErr := transaction.Create(&row).Error
			if isRecordConflict(createErr) {
				return wrapStoreError(errorSubjectRecord, errorCodeDuplicate, createErr)
			}
			if createErr != nil {
				return wrapStoreError(errorSubjectRecord, errorCodeCreate, createErr)
			}
		}
		committed = next
		return nil
	})
	if err != nil {
		return ledger.PaymentRecord{}, err
	}
	return committed, nil
}

// lockTransaction takes the advisory lock on PostgreSQL. SQLite serializes
// writers itself.
func lockTransaction(transaction *gorm.DB) error {
	if transaction.Dialector.Name() != dialectPostgres {
		return nil
	}
	return transaction.Exec(sqlAdvisoryLock, transactionLockKey).Error
}

func wrapStoreError(subject string, code string, err error) error {
	return ledger.WrapError(errorOperationStore, subject, code, err)
}

func toModel(record ledger.PaymentRecord) PaymentRecord {
	return PaymentRecord{
		ID:              record.ID,
		PayerName:       record.PayerName,
		Reference:       record.Reference,
		Metadata:        datatypesJSON(record.Metadata),
		PendingCount:    record.PendingCount,
		Credits:         record.Credits,
		UsedCount:       record.UsedCount,
		LastSubmittedAt: utcOrNil(record.LastSubmittedAt),
		LastApprovedAt:  utcOrNil(record.LastApprovedAt),
		LastUsedAt:      utcOrNil(record.LastUsedAt),
	}
}

func mapPaymentRecord(row PaymentRecord) (ledger.PaymentRecord, error) {
	record := ledger.PaymentRecord{
		ID:              row.ID,
		PayerName:       row.PayerName,
		Reference:       row.Reference,
		PendingCount:    row.PendingCount,
		Credits:         row.Credits,
		UsedCount:       row.UsedCount,
		LastSubmittedAt: utcOrNil(row.LastSubmittedAt),
		LastApprovedAt:  utcOrNil(row.LastApprovedAt),
		LastUsedAt:      utcOrNil(row.LastUsedAt),
	}
	metadata := bytes.TrimSpace(row.Metadata)
	if len(metadata) > 0 && string(metadata) != jsonNullLiteral {
		parsed, err := ledger.NewMetadataJSON(string(metadata))
		if err != nil {
			return ledger.PaymentRecord{}, err
		}
		record.Metadata = parsed.RawMessage()
	}
	if err := record.Validate(); err != nil {
		return ledger.PaymentRecord{}, err
	}
	return record, nil
}

func datatypesJSON(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(append([]byte(nil), raw...))
}

func utcOrNil(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	converted := value.UTC()
	return &converted
}

func isRecordConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode && pgErr.ConstraintName == constraintPaymentRecordsPrimary
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xFF == sqliteConstraintCode
	}
	return false
}
