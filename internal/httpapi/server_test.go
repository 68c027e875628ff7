package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/internal/directory"
	"github.com/MarkoPoloResearchLab/matchledger/internal/store/snapshotstore"
	"github.com/MarkoPoloResearchLab/matchledger/internal/telemetry"
	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	knownIDValue   = "ABC123"
	blockedIDValue = "2025A5PS1503P"
	indexContent   = "<html>index</html>"
	adminContent   = "<html>admin</html>"
)

type testServer struct {
	router   *gin.Engine
	registry *prometheus.Registry
}

func newTestServer(test *testing.T) testServer {
	test.Helper()
	root := test.TempDir()
	staticDir := filepath.Join(root, "static")
	if err := os.MkdirAll(filepath.Join(staticDir, "assets"), 0o755); err != nil {
		test.Fatalf("mkdir: %v", err)
	}
	for name, content := range map[string]string{
		"index.html": indexContent,
		"admin.html": adminContent,
		"app.js":     "console.log('ok')",
	} {
		if err := os.WriteFile(filepath.Join(staticDir, name), []byte(content), 0o644); err != nil {
			test.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0o644); err != nil {
		test.Fatalf("write secret: %v", err)
	}

	store, err := snapshotstore.Open(filepath.Join(root, "payments.json"))
	if err != nil {
		test.Fatalf("open store: %v", err)
	}
	matches := directory.New([]ledger.MatchEntry{
		{ID: knownIDValue, Name: "Alice", MatchID: "XYZ789", MatchName: "Bob", Message: "hi"},
		{ID: blockedIDValue, Name: "Blocked"},
	})
	registry := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(registry)
	service, err := ledger.NewService(store, matches, func() time.Time { return time.Now().UTC() },
		ledger.WithBlockedIDs(blockedIDValue),
		ledger.WithOperationLogger(metrics),
	)
	if err != nil {
		test.Fatalf("new service: %v", err)
	}
	router := NewRouter(Config{StaticDir: staticDir}, Dependencies{
		Service:  service,
		Logger:   zap.NewNop(),
		Metrics:  metrics,
		Gatherer: registry,
	})
	return testServer{router: router, registry: registry}
}

func (server testServer) do(test *testing.T, method string, target string, body string) *httptest.ResponseRecorder {
	test.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(test *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	test.Helper()
	var payload map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		test.Fatalf("decode body %q: %v", recorder.Body.String(), err)
	}
	return payload
}

func expectError(test *testing.T, recorder *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	test.Helper()
	if recorder.Code != wantStatus {
		test.Fatalf("expected status %d, got %d (%s)", wantStatus, recorder.Code, recorder.Body.String())
	}
	payload := decodeBody(test, recorder)
	if payload["code"] != wantCode {
		test.Fatalf("expected code %q, got %v", wantCode, payload["code"])
	}
	if message, ok := payload["error"].(string); !ok || message == "" {
		test.Fatalf("expected error message string, got %v", payload["error"])
	}
}

func TestPaymentLifecycle(test *testing.T) {
	test.Parallel()
	server := newTestServer(test)

	submitted := server.do(test, http.MethodPost, "/api/submit-payment", `{"id":"abc 123","name":"Alice","utr":"UTR-1","metadata":{"channel":"upi"}}`)
	if submitted.Code != http.StatusOK {
		test.Fatalf("submit: %d %s", submitted.Code, submitted.Body.String())
	}
	submitBody := decodeBody(test, submitted)
	if submitBody["status"] != "pending" || submitBody["pending_count"] != float64(1) || submitBody["credits"] != float64(0) {
		test.Fatalf("unexpected submit body: %v", submitBody)
	}

	status := server.do(test, http.MethodGet, "/api/status?id=abc123", "")
	statusBody := decodeBody(test, status)
	record, _ := statusBody["record"].(map[string]any)
	if statusBody["status"] != "pending" || record["utr"] != "UTR-1" || record["name"] != "Alice" {
		test.Fatalf("unexpected status body: %v", statusBody)
	}

	expectError(test, server.do(test, http.MethodPost, "/api/lookup", `{"id":"ABC123"}`), http.StatusForbidden, ledger.CodePaymentPending)

	pending := decodeBody(test, server.do(test, http.MethodGet, "/api/admin/pending", ""))
	if list, _ := pending["pending"].([]any); len(list) != 1 {
		test.Fatalf("expected one pending record, got %v", pending)
	}

	approved := server.do(test, http.MethodPost, "/api/admin/approve", `{"id":"ABC123"}`)
	approveBody := decodeBody(test, approved)
	if approved.Code != http.StatusOK || approveBody["status"] != "approved" || approveBody["credits"] != float64(1) || approveBody["pending_count"] != float64(0) {
		test.Fatalf("unexpected approve response: %d %v", approved.Code, approveBody)
	}

	lookup := server.do(test, http.MethodPost, "/api/lookup", `{"id":"abc123"}`)
	if lookup.Code != http.StatusOK {
		test.Fatalf("lookup: %d %s", lookup.Code, lookup.Body.String())
	}
	lookupBody := decodeBody(test, lookup)
	entry, _ := lookupBody["entry"].(map[string]any)
	if entry["match_id"] != "XYZ789" || entry["match_name"] != "Bob" || lookupBody["credits_left"] != float64(0) || lookupBody["used_count"] != float64(1) {
		test.Fatalf("unexpected lookup body: %v", lookupBody)
	}

	expectError(test, server.do(test, http.MethodPost, "/api/lookup", `{"id":"abc123"}`), http.StatusForbidden, ledger.CodeNoCredit)
	expectError(test, server.do(test, http.MethodPost, "/api/admin/approve", `{"id":"abc123"}`), http.StatusBadRequest, ledger.CodeNoPendingPayment)

	finalStatus := decodeBody(test, server.do(test, http.MethodGet, "/api/status?id=ABC123", ""))
	if finalStatus["status"] != "none" {
		test.Fatalf("expected status none after consuming the credit, got %v", finalStatus)
	}
}

func TestRequestErrors(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "unknown id", method: http.MethodPost, target: "/api/submit-payment", body: `{"id":"NOPE1","name":"Alice"}`, wantStatus: http.StatusNotFound, wantCode: ledger.CodeIDNotFound},
		{name: "missing name", method: http.MethodPost, target: "/api/submit-payment", body: `{"id":"ABC123"}`, wantStatus: http.StatusBadRequest, wantCode: ledger.CodeNameRequired},
		{name: "blocked submit", method: http.MethodPost, target: "/api/submit-payment", body: `{"id":"2025a5ps1503p","name":"X"}`, wantStatus: http.StatusForbidden, wantCode: ledger.CodeIDBlocked},
		{name: "blocked lookup", method: http.MethodPost, target: "/api/lookup", body: `{"id":"2025A5PS1503P"}`, wantStatus: http.StatusForbidden, wantCode: ledger.CodeIDBlocked},
		{name: "metadata array", method: http.MethodPost, target: "/api/submit-payment", body: `{"id":"ABC123","name":"A","metadata":[1]}`, wantStatus: http.StatusBadRequest, wantCode: ledger.CodeInvalidMetadataJSON},
		{name: "malformed json", method: http.MethodPost, target: "/api/lookup", body: `{"id":`, wantStatus: http.StatusBadRequest, wantCode: codeInvalidPayload},
		{name: "empty lookup body", method: http.MethodPost, target: "/api/lookup", body: "", wantStatus: http.StatusBadRequest, wantCode: ledger.CodeIDRequired},
		{name: "lookup not submitted", method: http.MethodPost, target: "/api/lookup", body: `{"id":"ABC123"}`, wantStatus: http.StatusForbidden, wantCode: ledger.CodePaymentNotSubmitted},
		{name: "approve unknown", method: http.MethodPost, target: "/api/admin/approve", body: `{"id":"ABC123"}`, wantStatus: http.StatusNotFound, wantCode: ledger.CodeRecordNotFound},
		{name: "status without id", method: http.MethodGet, target: "/api/status", wantStatus: http.StatusBadRequest, wantCode: ledger.CodeIDRequired},
		{name: "unknown api route", method: http.MethodPost, target: "/api/unknown", body: `{}`, wantStatus: http.StatusNotFound, wantCode: codeNotFound},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			server := newTestServer(test)
			expectError(test, server.do(test, testCase.method, testCase.target, testCase.body), testCase.wantStatus, testCase.wantCode)
		})
	}
}

func TestStaticAssets(test *testing.T) {
	test.Parallel()
	server := newTestServer(test)
	testCases := []struct {
		target     string
		wantStatus int
		wantBody   string
	}{
		{target: "/", wantStatus: http.StatusOK, wantBody: indexContent},
		{target: "/rose", wantStatus: http.StatusOK, wantBody: adminContent},
		{target: "/app.js", wantStatus: http.StatusOK, wantBody: "console.log('ok')"},
		{target: "/index.html", wantStatus: http.StatusOK, wantBody: indexContent},
		{target: "/assets", wantStatus: http.StatusNotFound},
		{target: "/missing.css", wantStatus: http.StatusNotFound},
		{target: "/../secret.txt", wantStatus: http.StatusNotFound},
	}
	for _, testCase := range testCases {
		recorder := server.do(test, http.MethodGet, testCase.target, "")
		if recorder.Code != testCase.wantStatus {
			test.Fatalf("%s: expected %d, got %d", testCase.target, testCase.wantStatus, recorder.Code)
		}
		if testCase.wantBody != "" && recorder.Body.String() != testCase.wantBody {
			test.Fatalf("%s: unexpected body %q", testCase.target, recorder.Body.String())
		}
		if strings.Contains(recorder.Body.String(), "secret") {
			test.Fatalf("%s: leaked file outside the static root", testCase.target)
		}
	}
}

func TestStaticAssetsDisabled(test *testing.T) {
	test.Parallel()
	router := NewRouter(Config{}, Dependencies{Logger: zap.NewNop()})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	if recorder.Code != http.StatusNotFound {
		test.Fatalf("expected 404 without static dir, got %d", recorder.Code)
	}
}

func TestHealthRequestIDAndMetrics(test *testing.T) {
	test.Parallel()
	server := newTestServer(test)

	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	request.Header.Set(requestIDHeader, "req-42")
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK || recorder.Header().Get(requestIDHeader) != "req-42" {
		test.Fatalf("unexpected health response: %d %q", recorder.Code, recorder.Header().Get(requestIDHeader))
	}

	minted := server.do(test, http.MethodGet, "/healthz", "")
	if len(minted.Header().Get(requestIDHeader)) != 36 {
		test.Fatalf("expected minted uuid request id, got %q", minted.Header().Get(requestIDHeader))
	}

	server.do(test, http.MethodPost, "/api/lookup", `{"id":"ABC123"}`)
	metrics := server.do(test, http.MethodGet, "/metrics", "")
	body := metrics.Body.String()
	if metrics.Code != http.StatusOK {
		test.Fatalf("metrics: %d", metrics.Code)
	}
	for _, want := range []string{"matchledger_http_requests_total", `route="/healthz"`, "matchledger_operations_total", `code="payment_not_submitted"`} {
		if !strings.Contains(body, want) {
			test.Fatalf("expected metrics to contain %q", want)
		}
	}
}

func TestCORSAllowsConfiguredOrigin(test *testing.T) {
	test.Parallel()
	router := NewRouter(Config{AllowedOrigins: []string{"https://example.org"}}, Dependencies{Logger: zap.NewNop()})
	request := httptest.NewRequest(http.MethodOptions, "/api/lookup", nil)
	request.Header.Set("Origin", "https://example.org")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	if recorder.Header().Get("Access-Control-Allow-Origin") != "https://example.org" {
		test.Fatalf("expected allowed origin header, got %q", recorder.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestHTTPStatusFor(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		err  error
		want int
	}{
		{err: ledger.ErrIDRequired, want: http.StatusBadRequest},
		{err: ledger.ErrIDBlocked, want: http.StatusForbidden},
		{err: ledger.ErrIDNotFound, want: http.StatusNotFound},
		{err: ledger.ErrRecordNotFound, want: http.StatusNotFound},
		{err: ledger.ErrPaymentNotSubmitted, want: http.StatusForbidden},
		{err: ledger.ErrPaymentPending, want: http.StatusForbidden},
		{err: ledger.ErrNoCredit, want: http.StatusForbidden},
		{err: ledger.ErrNoPendingPayment, want: http.StatusBadRequest},
		{err: ledger.ErrMatchNotFound, want: http.StatusInternalServerError},
		{err: os.ErrPermission, want: http.StatusInternalServerError},
	}
	for _, testCase := range testCases {
		if got := httpStatusFor(ledger.Classify(testCase.err)); got != testCase.want {
			test.Fatalf("%v: expected %d, got %d", testCase.err, testCase.want, got)
		}
	}
}
