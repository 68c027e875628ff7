package gormstore

import (
	"context"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// captureRawStatements records the SQL and vars of every raw statement.
func captureRawStatements(test *testing.T, db *gorm.DB) *[]capturedStatement {
	test.Helper()
	captured := &[]capturedStatement{}
	err := db.Callback().Raw().Before("gorm:raw").Register("test:capture_raw", func(statementDB *gorm.DB) {
		*captured = append(*captured, capturedStatement{
			sql:  statementDB.Statement.SQL.String(),
			vars: append([]interface{}(nil), statementDB.Statement.Vars...),
		})
	})
	if err != nil {
		test.Fatalf("register callback: %v", err)
	}
	return captured
}

type capturedStatement struct {
	sql  string
	vars []interface{}
}

func TestLockTransactionOnPostgres(test *testing.T) {
	test.Parallel()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "postgres://ledger@127.0.0.1:1/ledger"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		test.Fatalf("open postgres dialector: %v", err)
	}
	captured := captureRawStatements(test, db)

	if err := lockTransaction(db); err != nil {
		test.Fatalf("lock: %v", err)
	}
	if len(*captured) != 1 {
		test.Fatalf("expected one lock statement, got %d", len(*captured))
	}
	statement := (*captured)[0]
	if statement.sql != "select pg_advisory_xact_lock($1)" {
		test.Fatalf("unexpected lock sql %q", statement.sql)
	}
	if len(statement.vars) != 1 || statement.vars[0] != transactionLockKey {
		test.Fatalf("expected lock key %d, got %v", transactionLockKey, statement.vars)
	}
}

func TestLockTransactionSkippedOnSQLite(test *testing.T) {
	test.Parallel()
	store := newSQLiteStore(test)
	captured := captureRawStatements(test, store.db)

	if err := lockTransaction(store.db); err != nil {
		test.Fatalf("lock: %v", err)
	}
	if len(*captured) != 0 {
		test.Fatalf("expected no lock statement on sqlite, got %v", *captured)
	}
	if _, err := store.Transact(context.Background(), mustMatchID(test, knownIDValue), incrementPending); err != nil {
		test.Fatalf("transact: %v", err)
	}
}
