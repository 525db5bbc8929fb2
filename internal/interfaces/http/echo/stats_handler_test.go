package echo_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	app "github.com/mohammadpnp/email-blast/internal/application/mailing"
)

func TestGetEmailStats(t *testing.T) {
	t.Parallel()

	f := newFakes()
	f.stats.output = app.GetEmailStatsOutput{SuccessCount: 42}
	e := f.server()

	req := httptest.NewRequest(http.MethodGet, "/email-stats", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if got["successCount"] != float64(42) {
		t.Fatalf("unexpected successCount: %#v", got["successCount"])
	}
}

func TestGetEmailStatsInternalError(t *testing.T) {
	t.Parallel()

	f := newFakes()
	f.stats.err = errors.Join(app.ErrGetEmailStats, errors.New("db down"))
	e := f.server()

	req := httptest.NewRequest(http.MethodGet, "/email-stats", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	e := newFakes().server()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "{\"status\":\"ok\"}\n" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}
