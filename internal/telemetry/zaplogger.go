package telemetry

import (
	"context"

	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"go.uber.org/zap"
)

const operationLogMessage = "ledger operation"

// ZapOperationLogger writes one structured line per ledger operation.
// Client and state rejections log at warn, consistency and internal faults at error.
type ZapOperationLogger struct {
	logger *zap.Logger
}

// NewZapOperationLogger wraps logger; nil yields a no-op logger.
func NewZapOperationLogger(logger *zap.Logger) *ZapOperationLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapOperationLogger{logger: logger}
}

func (operationLogger *ZapOperationLogger) LogOperation(_ context.Context, entry ledger.OperationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("match_id", entry.MatchID),
		zap.String("status", entry.Status),
		zap.Int64("pending_count", entry.PendingCount),
		zap.Int64("credits", entry.Credits),
		zap.Int64("used_count", entry.UsedCount),
	}
	if entry.Error == nil {
		operationLogger.logger.Info(operationLogMessage, fields...)
		return
	}
	class := ledger.Classify(entry.Error)
	fields = append(fields, zap.String("error_code", class.Code), zap.Error(entry.Error))
	switch class.Kind {
	case ledger.ErrorKindConsistency, ledger.ErrorKindInternal:
		operationLogger.logger.Error(operationLogMessage, fields...)
	default:
		operationLogger.logger.Warn(operationLogMessage, fields...)
	}
}
