package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MatchID is a canonical match directory identifier.
type MatchID struct {
	value string
}

// PayerName is the trimmed name supplied with a payment submission.
type PayerName struct {
	value string
}

// Reference is an optional payment reference token (for example a bank UTR).
type Reference struct {
	value string
}

// MetadataJSON stores arbitrary submission metadata as a JSON object.
type MetadataJSON struct {
	value string
}

// NormalizeID strips every whitespace rune and upper-cases the remainder.
func NormalizeID(raw string) string {
	var builder strings.Builder
	builder.Grow(len(raw))
	for _, character := range raw {
		if unicode.IsSpace(character) {
			continue
		}
		builder.WriteRune(character)
	}
	return strings.ToUpper(builder.String())
}

// NewMatchID normalizes a raw identifier and rejects empty results.
func NewMatchID(raw string) (MatchID, error) {
	normalized := NormalizeID(raw)
	if normalized == "" {
		return MatchID{}, fmt.Errorf("%w: empty value", ErrIDRequired)
	}
	return MatchID{value: normalized}, nil
}

// String returns the canonical identifier.
func (id MatchID) String() string {
	return id.value
}

// IsZero reports whether the identifier was never set.
func (id MatchID) IsZero() bool {
	return id.value == ""
}

// NewPayerName validates and normalizes a payer name.
func NewPayerName(raw string) (PayerName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PayerName{}, fmt.Errorf("%w: empty value", ErrNameRequired)
	}
	return PayerName{value: trimmed}, nil
}

// String returns the normalized name.
func (name PayerName) String() string {
	return name.value
}

// NewReference trims an optional reference; empty input yields an empty Reference.
func NewReference(raw string) (Reference, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) > maxReferenceLength {
		return Reference{}, fmt.Errorf("%w: longer than %d characters", ErrInvalidReference, maxReferenceLength)
	}
	return Reference{value: trimmed}, nil
}

// String returns the normalized reference.
func (reference Reference) String() string {
	return reference.value
}

// NewMetadataJSON validates an optional metadata document. Empty input yields empty metadata.
func NewMetadataJSON(raw string) (MetadataJSON, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return MetadataJSON{}, nil
	}
	var object map[string]json.RawMessage
	if err := json.Unmarshal([]byte(normalized), &object); err != nil || object == nil {
		return MetadataJSON{}, fmt.Errorf("%w: must be a json object", ErrInvalidMetadataJSON)
	}
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, []byte(normalized)); err != nil {
		return MetadataJSON{}, fmt.Errorf("%w: %v", ErrInvalidMetadataJSON, err)
	}
	return MetadataJSON{value: compacted.String()}, nil
}

// String returns the JSON document or an empty string.
func (metadata MetadataJSON) String() string {
	return metadata.value
}

// RawMessage returns the document as json.RawMessage, nil when empty.
func (metadata MetadataJSON) RawMessage() json.RawMessage {
	if metadata.value == "" {
		return nil
	}
	return json.RawMessage(metadata.value)
}

// Status is the payment state derived from a record's counters.
type Status string

const (
	StatusNone     Status = "none"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// String returns the status literal.
func (status Status) String() string {
	return string(status)
}

// PaymentRecord is the per-identifier payment and credit state.
type PaymentRecord struct {
	ID              string          `json:"id"`
	PayerName       string          `json:"name,omitempty"`
	Reference       string          `json:"utr,omitempty"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
	PendingCount    int64           `json:"pending_count"`
	Credits         int64           `json:"credits"`
	UsedCount       int64           `json:"used_count"`
	LastSubmittedAt *time.Time      `json:"lastSubmittedAt,omitempty"`
	LastApprovedAt  *time.Time      `json:"lastApprovedAt,omitempty"`
	LastUsedAt      *time.Time      `json:"lastUsedAt,omitempty"`
}

// Status derives the record state: approved when credits remain, pending when
// submissions await approval, none otherwise.
func (record PaymentRecord) Status() Status {
	if record.Credits > 0 {
		return StatusApproved
	}
	if record.PendingCount > 0 {
		return StatusPending
	}
	return StatusNone
}

// Validate checks the counter invariants of a single record.
func (record PaymentRecord) Validate() error {
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}
	if record.PendingCount < 0 {
		return fmt.Errorf("%w: negative pending count %d", ErrInvalidRecord, record.PendingCount)
	}
	if record.Credits < 0 {
		return fmt.Errorf("%w: negative credits %d", ErrInvalidRecord, record.Credits)
	}
	if record.UsedCount < 0 {
		return fmt.Errorf("%w: negative used count %d", ErrInvalidRecord, record.UsedCount)
	}
	return nil
}

// ValidateTransition checks that next is a legal successor of previous.
func ValidateTransition(previous PaymentRecord, next PaymentRecord) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next.ID != previous.ID {
		return fmt.Errorf("%w: id changed from %q to %q", ErrInvalidRecord, previous.ID, next.ID)
	}
	if next.UsedCount < previous.UsedCount {
		return fmt.Errorf("%w: used count decreased from %d to %d", ErrInvalidRecord, previous.UsedCount, next.UsedCount)
	}
	return nil
}

// MatchEntry is a read-only match directory row.
type MatchEntry struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	MatchID   string `json:"match_id,omitempty" yaml:"match_id,omitempty"`
	MatchName string `json:"match_name,omitempty" yaml:"match_name,omitempty"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Directory is the read-only match lookup consulted by Service.
type Directory interface {
	Exists(id MatchID) bool
	Get(id MatchID) (MatchEntry, bool)
}

// Mutation computes the next record from the current one. exists is false when
// no record is stored yet, in which case current is zero-valued apart from ID.
// Returning an error aborts the transaction without persisting anything.
type Mutation func(current PaymentRecord, exists bool) (PaymentRecord, error)

// Store is the persistence contract used by Service.
// Transact calls are mutually exclusive per store instance.
type Store interface {
	Get(ctx context.Context, id MatchID) (PaymentRecord, bool, error)
	Transact(ctx context.Context, id MatchID, mutation Mutation) (PaymentRecord, error)
	List(ctx context.Context) ([]PaymentRecord, error)
}
