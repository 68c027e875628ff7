package ledger

import "context"

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// OperationLogger records domain-level events emitted by Service operations.
type OperationLogger interface {
	LogOperation(ctx context.Context, entry OperationLog)
}

// OperationLog describes a state-changing ledger operation.
type OperationLog struct {
	Operation    string
	MatchID      string
	PendingCount int64
	Credits      int64
	UsedCount    int64
	Status       string
	Error        error

	// CreditConsumed is set when a lookup committed a credit, even if the
	// directory entry went missing afterwards.
	CreditConsumed bool
}

// WithOperationLogger wires a logger that receives callbacks for every operation.
// It may be supplied more than once; every logger receives every entry.
func WithOperationLogger(logger OperationLogger) ServiceOption {
	return func(service *Service) {
		if logger != nil {
			service.loggers = append(service.loggers, logger)
		}
	}
}

// WithBlockedIDs rejects submissions and lookups for the given identifiers.
func WithBlockedIDs(rawIDs ...string) ServiceOption {
	return func(service *Service) {
		for _, rawID := range rawIDs {
			normalized := NormalizeID(rawID)
			if normalized != "" {
				service.blocked[normalized] = struct{}{}
			}
		}
	}
}
