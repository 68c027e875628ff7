package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/matchledger/internal/store/pgstore"
	"github.com/MarkoPoloResearchLab/matchledger/internal/store/snapshotstore"
	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	driverPostgres     = "postgres"
	driverSQLite       = "sqlite"
	defaultSQLitePath  = "matchledger.db"
	sqliteBusyPragma   = "_pragma=busy_timeout(5000)"
	slowQueryThreshold = 200 * time.Millisecond
	sqliteMaxOpenConns = 1
)

// openStore builds the ledger.Store selected by cfg.StoreEngine. The returned
// cleanup releases database handles and is never nil on success.
func openStore(ctx context.Context, cfg Config, logger *zap.Logger) (ledger.Store, func(), error) {
	switch cfg.StoreEngine {
	case StoreEngineSnapshot:
		store, err := snapshotstore.Open(cfg.StoreURL, snapshotstore.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		logger.Info("snapshot store ready", zap.String("path", store.Path()))
		return store, func() {}, nil
	case StoreEngineGorm:
		db, cleanup, driver, err := openDatabase(cfg.StoreURL, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("database open: %w", err)
		}
		store := gormstore.New(db)
		if err := store.AutoMigrate(ctx); err != nil {
			cleanup()
			return nil, nil, err
		}
		logger.Info("gorm store ready", zap.String("driver", driver))
		return store, cleanup, nil
	case StoreEnginePgx:
		pool, err := pgxpool.New(ctx, cfg.StoreURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgx pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pgx ping: %w", err)
		}
		store := pgstore.New(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("pgx store ready")
		return store, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store engine %q", cfg.StoreEngine)
	}
}

func openDatabase(dsn string, logger *zap.Logger) (*gorm.DB, func(), string, error) {
	driver, sqlitePath, err := resolveDriver(dsn)
	if err != nil {
		return nil, nil, "", err
	}

	gormConfig := &gorm.Config{
		Logger: gormlogger.New(zap.NewStdLog(logger.Named("gorm")), gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
	var db *gorm.DB
	switch driver {
	case driverPostgres:
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	case driverSQLite:
		db, err = gorm.Open(sqlite.Open(sqliteDSN(sqlitePath)), gormConfig)
	default:
		return nil, nil, "", fmt.Errorf("unsupported database scheme %q", driver)
	}
	if err != nil {
		return nil, nil, "", err
	}
	sqlDB, err := sqlHandle(db)
	if err != nil {
		return nil, nil, "", err
	}
	if driver == driverSQLite {
		sqlDB.SetMaxOpenConns(sqliteMaxOpenConns)
	}
	cleanup := func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Warn("database close failed", zap.Error(closeErr))
		}
	}
	return db, cleanup, driver, nil
}

// sqlHandle returns the pool behind db, closing whatever gorm opened when no
// *sql.DB can be recovered.
func sqlHandle(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err == nil {
		return sqlDB, nil
	}
	if closer, ok := db.ConnPool.(io.Closer); ok {
		_ = closer.Close()
	}
	return nil, fmt.Errorf("database handle: %w", err)
}

func resolveDriver(dsn string) (string, string, error) {
	if isPostgresURL(dsn) {
		return driverPostgres, "", nil
	}
	if strings.HasPrefix(dsn, "sqlite://") {
		parsed, err := url.Parse(dsn)
		if err != nil {
			return "", "", fmt.Errorf("parse sqlite url: %w", err)
		}
		sqlitePath := parsed.Path
		if sqlitePath == "" {
			sqlitePath = parsed.Host
		}
		if sqlitePath == "" || sqlitePath == "/" {
			sqlitePath = defaultSQLitePath
		}
		normalized, err := normalizeSQLitePath(sqlitePath)
		return driverSQLite, normalized, err
	}
	// Anything else is a direct sqlite path.
	normalized, err := normalizeSQLitePath(dsn)
	return driverSQLite, normalized, err
}

func normalizeSQLitePath(sqlitePath string) (string, error) {
	if sqlitePath == ":memory:" {
		return sqlitePath, nil
	}
	if !filepath.IsAbs(sqlitePath) {
		sqlitePath = filepath.Join(".", sqlitePath)
	}
	if err := os.MkdirAll(filepath.Dir(sqlitePath), 0o755); err != nil {
		return "", err
	}
	return sqlitePath, nil
}

func sqliteDSN(sqlitePath string) string {
	if strings.Contains(sqlitePath, "?") {
		return sqlitePath + "&" + sqliteBusyPragma
	}
	return sqlitePath + "?" + sqliteBusyPragma
}
