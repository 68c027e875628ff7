package grpcserver

import (
	"context"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/internal/telemetry"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor logs each call and, when metrics is non-nil, counts it.
// timeout bounds every call; zero leaves the caller's deadline untouched.
func UnaryServerInterceptor(logger *zap.Logger, metrics *telemetry.Metrics, timeout time.Duration) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, request any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		startedAt := time.Now()
		response, err := handler(ctx, request)
		code := status.Code(err)
		if metrics != nil {
			metrics.ObserveGRPCRequest(info.FullMethod, code.String())
		}
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("latency", time.Since(startedAt)),
		}
		switch code {
		case codes.OK:
			logger.Info("grpc request", fields...)
		case codes.Internal, codes.DataLoss, codes.Unknown:
			logger.Error("grpc request", append(fields, zap.Error(err))...)
		default:
			logger.Warn("grpc request", append(fields, zap.Error(err))...)
		}
		return response, err
	}
}
