package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/pipewright/internal/app/store/sitecontent"
	"github.com/dalemusser/pipewright/internal/testutil"
)

type staticSource struct {
	data []byte
	err  error
}

func (s staticSource) ReadDocument(_ context.Context) ([]byte, error) {
	return s.data, s.err
}

func healthyStore(t *testing.T) *sitecontent.Store {
	t.Helper()
	src := staticSource{data: testutil.SiteDataJSON(t, testutil.ValidSiteData())}
	return sitecontent.New(src, zap.NewNop())
}

func brokenStore() *sitecontent.Store {
	return sitecontent.New(staticSource{err: errors.New("disk gone")}, zap.NewNop())
}

func TestHandler_Check(t *testing.T) {
	h := NewHandler(healthyStore(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Check() status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("response status = %q, want %q", resp.Status, "ok")
	}
	if resp.Services["content"] != "ok" {
		t.Errorf("content status = %q, want %q", resp.Services["content"], "ok")
	}
}

func TestHandler_Check_ContentUnavailable(t *testing.T) {
	h := NewHandler(brokenStore(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Check() status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("response status = %q, want %q", resp.Status, "degraded")
	}
	if resp.Services["content"] != "unavailable" {
		t.Errorf("content status = %q, want %q", resp.Services["content"], "unavailable")
	}
}

func TestHandler_Ready(t *testing.T) {
	h := NewHandler(healthyStore(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Ready() status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandler_Ready_NotReady(t *testing.T) {
	h := NewHandler(brokenStore(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Ready() status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHandler_Live(t *testing.T) {
	h := NewHandler(brokenStore(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	rec := httptest.NewRecorder()

	h.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Live() status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRoutes(t *testing.T) {
	h := NewHandler(healthyStore(t), zap.NewNop())
	router := Routes(h)

	for _, target := range []string{"/", "/ready", "/live"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", target, rec.Code, http.StatusOK)
		}
	}
}
