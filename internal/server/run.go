package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	matchledgerv1 "github.com/MarkoPoloResearchLab/matchledger/api/matchledger/v1"
	"github.com/MarkoPoloResearchLab/matchledger/internal/directory"
	"github.com/MarkoPoloResearchLab/matchledger/internal/grpcserver"
	"github.com/MarkoPoloResearchLab/matchledger/internal/httpapi"
	"github.com/MarkoPoloResearchLab/matchledger/internal/telemetry"
	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const readHeaderTimeout = 10 * time.Second

// application holds the wired transports of one daemon instance.
type application struct {
	router     *gin.Engine
	grpcServer *grpc.Server
	service    *ledger.Service
	cleanup    func()
}

// Run boots the HTTP API and, when configured, the gRPC API, and blocks until
// ctx is cancelled or a listener fails.
func Run(ctx context.Context, cfg Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("zap init: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	return serve(ctx, cfg, logger)
}

func serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	app, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.cleanup()

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           app.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	errCh := make(chan error, 2)
	go func() {
		logger.Info("matchledger http listening", zap.String("addr", cfg.ListenAddr))
		errCh <- httpServer.ListenAndServe()
	}()
	if app.grpcServer != nil {
		listener, err := net.Listen("tcp", cfg.GRPCListenAddr)
		if err != nil {
			shutdownHTTP(httpServer, logger)
			return fmt.Errorf("grpc listen: %w", err)
		}
		go func() {
			logger.Info("matchledger grpc listening", zap.String("addr", cfg.GRPCListenAddr))
			errCh <- app.grpcServer.Serve(listener)
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
		shutdownHTTP(httpServer, logger)
		if app.grpcServer != nil {
			app.grpcServer.GracefulStop()
		}
		return nil
	case serveErr := <-errCh:
		shutdownHTTP(httpServer, logger)
		if app.grpcServer != nil {
			app.grpcServer.Stop()
		}
		if errors.Is(serveErr, http.ErrServerClosed) || errors.Is(serveErr, grpc.ErrServerStopped) {
			return nil
		}
		return serveErr
	}
}

func shutdownHTTP(httpServer *http.Server, logger *zap.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server shutdown error", zap.Error(err))
	}
}

func buildApplication(ctx context.Context, cfg Config, logger *zap.Logger) (*application, error) {
	matches, err := directory.Load(cfg.MatchesPath, logger)
	if err != nil {
		return nil, fmt.Errorf("match directory: %w", err)
	}
	logger.Info("match directory loaded", zap.String("path", cfg.MatchesPath), zap.Int("entries", matches.Len()))

	store, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewMetrics(registry)

	clock := func() time.Time { return time.Now().UTC() }
	service, err := ledger.NewService(store, matches, clock,
		ledger.WithOperationLogger(telemetry.NewZapOperationLogger(logger)),
		ledger.WithOperationLogger(metrics),
		ledger.WithBlockedIDs(cfg.BlockedIDs...),
	)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("ledger service init: %w", err)
	}

	router := httpapi.NewRouter(httpapi.Config{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
		RequestTimeout: cfg.RequestTimeout,
	}, httpapi.Dependencies{
		Service:  service,
		Logger:   logger,
		Metrics:  metrics,
		Gatherer: registry,
	})

	var grpcServer *grpc.Server
	if cfg.GRPCListenAddr != "" {
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(grpcserver.UnaryServerInterceptor(logger, metrics, cfg.RequestTimeout)))
		matchledgerv1.RegisterPaymentLedgerServer(grpcServer, grpcserver.NewPaymentLedgerServer(service))
	}

	return &application{
		router:     router,
		grpcServer: grpcServer,
		service:    service,
		cleanup:    cleanup,
	}, nil
}
