package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/internal/telemetry"
	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	defaultRequestTimeout = 5 * time.Second
	wildcardOrigin        = "*"
	codeInvalidPayload    = "invalid_payload"
	codeNotFound          = "not_found"
	messageInvalidPayload = "Invalid JSON."
	messageNotFound       = "Not found."
	statusApprovedLiteral = "approved"
)

// Config carries the HTTP surface settings.
type Config struct {
	AllowedOrigins []string
	StaticDir      string
	RequestTimeout time.Duration
}

// Dependencies are the collaborators the router serves.
type Dependencies struct {
	Service  *ledger.Service
	Logger   *zap.Logger
	Metrics  *telemetry.Metrics
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine exposing the ledger API, health and
// metrics endpoints, and static assets.
func NewRouter(cfg Config, deps Dependencies) *gin.Engine {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := &httpHandler{
		service: deps.Service,
		logger:  logger,
		timeout: cfg.RequestTimeout,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(accessLogMiddleware(logger, deps.Metrics))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api")
	api.GET("/status", handler.handleStatus)
	api.POST("/submit-payment", handler.handleSubmitPayment)
	api.POST("/lookup", handler.handleLookup)
	api.GET("/admin/pending", handler.handlePending)
	api.POST("/admin/approve", handler.handleApprove)

	assets := newStaticAssets(cfg.StaticDir)
	router.GET("/", assets.serveNamed(indexFileName))
	router.GET("/rose", assets.serveNamed(adminFileName))
	router.NoRoute(assets.serveRequestPath)
	return router
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Origin", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	origins := make([]string, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == wildcardOrigin {
			config.AllowAllOrigins = true
			return config
		}
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}

type httpHandler struct {
	service *ledger.Service
	logger  *zap.Logger
	timeout time.Duration
}

func (handler *httpHandler) handleStatus(ctx *gin.Context) {
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()

	view, err := handler.service.GetStatus(requestCtx, ctx.Query("id"))
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	response := gin.H{"status": view.Status.String()}
	if view.Record != nil {
		response["record"] = view.Record
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *httpHandler) handleSubmitPayment(ctx *gin.Context) {
	var request submitPaymentRequest
	if !bindJSON(ctx, &request) {
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()

	record, err := handler.service.SubmitPayment(requestCtx, ledger.SubmitPaymentInput{
		ID:        request.ID,
		PayerName: request.Name,
		Reference: request.Reference,
		Metadata:  metadataString(request.Metadata),
	})
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":        record.Status().String(),
		"pending_count": record.PendingCount,
		"credits":       record.Credits,
		"used_count":    record.UsedCount,
	})
}

func (handler *httpHandler) handleLookup(ctx *gin.Context) {
	var request idRequest
	if !bindJSON(ctx, &request) {
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()

	result, err := handler.service.LookupAndConsume(requestCtx, request.ID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"entry":        result.Entry,
		"credits_left": result.Record.Credits,
		"used_count":   result.Record.UsedCount,
	})
}

func (handler *httpHandler) handlePending(ctx *gin.Context) {
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()

	pending, err := handler.service.ListPending(requestCtx)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"pending": pending})
}

func (handler *httpHandler) handleApprove(ctx *gin.Context) {
	var request idRequest
	if !bindJSON(ctx, &request) {
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.timeout)
	defer cancel()

	record, err := handler.service.ApprovePayment(requestCtx, request.ID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":        statusApprovedLiteral,
		"pending_count": record.PendingCount,
		"credits":       record.Credits,
	})
}

func (handler *httpHandler) respondError(ctx *gin.Context, err error) {
	class := ledger.Classify(err)
	statusCode := httpStatusFor(class)
	if statusCode >= http.StatusInternalServerError {
		handler.logger.Error("request failed",
			zap.String("request_id", requestIDFrom(ctx)),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("code", class.Code),
			zap.Error(err),
		)
	}
	ctx.JSON(statusCode, errorResponse(class.Code, class.Message))
}

// httpStatusFor keeps the status codes the browser client already expects.
func httpStatusFor(class ledger.ErrorClass) int {
	switch class.Code {
	case ledger.CodePaymentNotSubmitted, ledger.CodePaymentPending, ledger.CodeNoCredit:
		return http.StatusForbidden
	case ledger.CodeNoPendingPayment:
		return http.StatusBadRequest
	}
	switch class.Kind {
	case ledger.ErrorKindValidation:
		return http.StatusBadRequest
	case ledger.ErrorKindForbidden:
		return http.StatusForbidden
	case ledger.ErrorKindNotFound:
		return http.StatusNotFound
	case ledger.ErrorKindState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func bindJSON(ctx *gin.Context, target any) bool {
	if err := ctx.ShouldBindJSON(target); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, errorResponse(codeInvalidPayload, messageInvalidPayload))
		return false
	}
	return true
}

func metadataString(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" {
		return ""
	}
	return trimmed
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": message,
		"code":  code,
	}
}

type submitPaymentRequest struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Reference string          `json:"utr"`
	Metadata  json.RawMessage `json:"metadata"`
}

type idRequest struct {
	ID string `json:"id"`
}
