package server

import (
	"fmt"
	"strings"
	"time"
)

const (
	StoreEngineSnapshot = "snapshot"
	StoreEngineGorm     = "gorm"
	StoreEnginePgx      = "pgx"

	defaultListenAddr     = ":8000"
	defaultStoreEngine    = StoreEngineSnapshot
	defaultSnapshotPath   = "payments.json"
	defaultMatchesPath    = "matches.json"
	defaultRequestTimeout = 5 * time.Second
	shutdownTimeout       = 5 * time.Second
)

// Config aggregates runtime settings for the matchledger daemon.
type Config struct {
	ListenAddr     string
	GRPCListenAddr string
	StoreEngine    string
	StoreURL       string
	MatchesPath    string
	StaticDir      string
	AllowedOrigins []string
	BlockedIDs     []string
	RequestTimeout time.Duration
}

// Validate fills defaults and rejects unusable combinations.
func (cfg *Config) Validate() error {
	cfg.ListenAddr = defaultIfEmpty(cfg.ListenAddr, defaultListenAddr)
	cfg.GRPCListenAddr = strings.TrimSpace(cfg.GRPCListenAddr)
	cfg.StoreEngine = strings.ToLower(defaultIfEmpty(cfg.StoreEngine, defaultStoreEngine))
	cfg.MatchesPath = defaultIfEmpty(cfg.MatchesPath, defaultMatchesPath)
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	switch cfg.StoreEngine {
	case StoreEngineSnapshot:
		cfg.StoreURL = defaultIfEmpty(cfg.StoreURL, defaultSnapshotPath)
	case StoreEngineGorm:
		if strings.TrimSpace(cfg.StoreURL) == "" {
			return fmt.Errorf("store url is required for the %s engine", StoreEngineGorm)
		}
	case StoreEnginePgx:
		if !isPostgresURL(cfg.StoreURL) {
			return fmt.Errorf("store url must be a postgres:// url for the %s engine", StoreEnginePgx)
		}
	default:
		return fmt.Errorf("unsupported store engine %q", cfg.StoreEngine)
	}
	if cfg.GRPCListenAddr != "" && cfg.GRPCListenAddr == strings.TrimSpace(cfg.ListenAddr) {
		return fmt.Errorf("grpc listen addr must differ from listen addr %q", cfg.ListenAddr)
	}
	return nil
}

func defaultIfEmpty(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

// ParseList splits comma-delimited values into a slice, dropping blanks.
func ParseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}

func isPostgresURL(dsn string) bool {
	trimmed := strings.TrimSpace(dsn)
	return strings.HasPrefix(trimmed, "postgres://") || strings.HasPrefix(trimmed, "postgresql://")
}
