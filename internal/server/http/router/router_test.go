package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmehra/stitchbook/internal/config"
	"github.com/rmehra/stitchbook/internal/domain/model"
	"github.com/rmehra/stitchbook/internal/server/http/handlers"
	testhelpers "github.com/rmehra/stitchbook/internal/test"
)

var _ handlers.ReceiptFacade = testhelpers.ReceiptFacadeStub{}

func newTestRouter(t *testing.T, facade handlers.ReceiptFacade, staticDir string) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{
		RunAddress:  ":8080",
		StaticDir:   staticDir,
		CORSOrigins: []string{"*"},
		ListLimit:   300,
	}
	return Setup(facade, logger, cfg)
}

func TestSetupRoutesReachHandlers(t *testing.T) {
	facade := testhelpers.ReceiptFacadeStub{
		NextNumberFn: func(context.Context) (string, error) { return "0007", nil },
		ReceiptsFn: func(context.Context, string, string) ([]model.ReceiptSummary, error) {
			return []model.ReceiptSummary{{ID: 1, Number: "0001"}}, nil
		},
		ReceiptFn: func(_ context.Context, id int64) (*model.Receipt, error) {
			return &model.Receipt{ID: id, Number: "0001"}, nil
		},
	}
	router := newTestRouter(t, facade, "")

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/next-receipt-number", http.StatusOK},
		{http.MethodGet, "/api/receipts", http.StatusOK},
		{http.MethodGet, "/api/receipts/5", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != tt.status {
			t.Errorf("%s %s: expected status %d, got %d", tt.method, tt.path, tt.status, w.Code)
		}
	}
}

func TestSetupNextNumberBody(t *testing.T) {
	facade := testhelpers.ReceiptFacadeStub{
		NextNumberFn: func(context.Context) (string, error) { return "0007", nil },
	}
	router := newTestRouter(t, facade, "")

	req := httptest.NewRequest(http.MethodGet, "/api/next-receipt-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["receiptNo"] != "0007" {
		t.Fatalf("expected receiptNo 0007, got %+v", body)
	}
}

func TestSetupServesStaticClient(t *testing.T) {
	dir := t.TempDir()
	page := []byte("<!doctype html><title>receipts</title>")
	if err := os.WriteFile(filepath.Join(dir, "index.html"), page, 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	router := newTestRouter(t, testhelpers.ReceiptFacadeStub{}, dir)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for static index, got %d", w.Code)
	}
	if w.Body.String() != string(page) {
		t.Fatalf("expected index contents, got %q", w.Body.String())
	}
}

func TestSetupUnknownAPIPathIs404NotStatic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("page"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	router := newTestRouter(t, testhelpers.ReceiptFacadeStub{}, dir)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown api path, got %d", w.Code)
	}
	if w.Body.String() == "page" {
		t.Fatal("api path must not fall through to the static file server")
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	facade := testhelpers.ReceiptFacadeStub{
		NextNumberFn: func(context.Context) (string, error) { return "0007", nil },
	}
	router := newTestRouter(t, facade, "")

	req := httptest.NewRequest(http.MethodGet, "/api/next-receipt-number", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("expected gzip encoded response, got %q", got)
	}
}
