package snapshotstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"go.uber.org/zap"
)

const (
	legacyStatusPending  = "pending"
	legacyStatusApproved = "approved"
	legacyStatusUsed     = "used"
)

// diskRecord accepts both the current counter layout and the older
// status-only layout.
type diskRecord struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Reference       string          `json:"utr"`
	Metadata        json.RawMessage `json:"metadata"`
	PendingCount    *int64          `json:"pending_count"`
	Credits         *int64          `json:"credits"`
	UsedCount       *int64          `json:"used_count"`
	Status          string          `json:"status"`
	LastSubmittedAt string          `json:"lastSubmittedAt"`
	LastApprovedAt  string          `json:"lastApprovedAt"`
	ApprovedAt      string          `json:"approvedAt"`
	LastUsedAt      string          `json:"lastUsedAt"`
}

type diskDocument struct {
	Records map[string]json.RawMessage `json:"records"`
}

func loadRecords(path string, logger *zap.Logger) map[string]ledger.PaymentRecord {
	records := make(map[string]ledger.PaymentRecord)
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("payments snapshot not found, starting empty", zap.String("path", path))
		} else {
			logger.Warn("payments snapshot unreadable, starting empty", zap.String("path", path), zap.Error(err))
		}
		return records
	}
	var document diskDocument
	if err := json.Unmarshal(payload, &document); err != nil {
		logger.Warn("payments snapshot malformed, starting empty", zap.String("path", path), zap.Error(err))
		return records
	}
	for key, rawRecord := range document.Records {
		var stored diskRecord
		if err := json.Unmarshal(rawRecord, &stored); err != nil {
			logger.Warn("skipping malformed payment record", zap.String("key", key), zap.Error(err))
			continue
		}
		record, ok := normalizeRecord(key, stored, logger)
		if !ok {
			continue
		}
		records[record.ID] = record
	}
	logger.Info("payments snapshot loaded", zap.String("path", path), zap.Int("records", len(records)))
	return records
}

func normalizeRecord(key string, stored diskRecord, logger *zap.Logger) (ledger.PaymentRecord, bool) {
	id := ledger.NormalizeID(stored.ID)
	if id == "" {
		id = ledger.NormalizeID(key)
	}
	if id == "" {
		logger.Warn("skipping payment record without id", zap.String("key", key))
		return ledger.PaymentRecord{}, false
	}
	record := ledger.PaymentRecord{
		ID:        id,
		PayerName: strings.TrimSpace(stored.Name),
		Reference: strings.TrimSpace(stored.Reference),
		Metadata:  compactMetadata(id, stored.Metadata, logger),
	}

	if stored.PendingCount == nil && stored.Credits == nil && stored.UsedCount == nil {
		switch stored.Status {
		case legacyStatusPending:
			record.PendingCount = 1
		case legacyStatusApproved:
			record.Credits = 1
		case legacyStatusUsed:
			record.UsedCount = 1
		}
		if stored.Status != "" {
			logger.Info("migrated legacy payment record", zap.String("id", id), zap.String("status", stored.Status))
		}
	} else {
		record.PendingCount = clampCounter(id, "pending_count", stored.PendingCount, logger)
		record.Credits = clampCounter(id, "credits", stored.Credits, logger)
		record.UsedCount = clampCounter(id, "used_count", stored.UsedCount, logger)
	}

	approvedAt := stored.LastApprovedAt
	if approvedAt == "" {
		approvedAt = stored.ApprovedAt
	}
	record.LastSubmittedAt = parseTimestamp(id, "lastSubmittedAt", stored.LastSubmittedAt, logger)
	record.LastApprovedAt = parseTimestamp(id, "lastApprovedAt", approvedAt, logger)
	record.LastUsedAt = parseTimestamp(id, "lastUsedAt", stored.LastUsedAt, logger)
	return record, true
}

func clampCounter(id string, field string, value *int64, logger *zap.Logger) int64 {
	if value == nil {
		return 0
	}
	if *value < 0 {
		logger.Warn("clamping negative counter", zap.String("id", id), zap.String("field", field), zap.Int64("value", *value))
		return 0
	}
	return *value
}

func parseTimestamp(id string, field string, raw string, logger *zap.Logger) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, trimmed)
	if err != nil {
		logger.Warn("dropping unparseable timestamp", zap.String("id", id), zap.String("field", field), zap.String("value", trimmed))
		return nil
	}
	parsed = parsed.UTC()
	return &parsed
}

func compactMetadata(id string, raw json.RawMessage, logger *zap.Logger) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	metadata, err := ledger.NewMetadataJSON(string(trimmed))
	if err != nil {
		logger.Warn("dropping invalid metadata", zap.String("id", id), zap.Error(err))
		return nil
	}
	return metadata.RawMessage()
}

func cloneTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
