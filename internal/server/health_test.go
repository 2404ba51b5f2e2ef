package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	deps := newTestDeps(t)
	h := handleHealth(discardLogger(), deps)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
	if resp.Checks["sqlite"] != "ok" || resp.Checks["catalog"] != "ok" {
		t.Errorf("checks = %v, want all ok", resp.Checks)
	}
}

func TestHandleHealthEmptyCatalog(t *testing.T) {
	deps := newTestDeps(t)
	deps.Catalog = emptyCatalog(t)
	h := handleHealth(discardLogger(), deps)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// Still servable: empty catalog degrades the status but not the
	// status code.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp HealthResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Status != "degraded" || resp.Checks["catalog"] != "empty" {
		t.Errorf("resp = %+v, want degraded with empty catalog", resp)
	}
}
