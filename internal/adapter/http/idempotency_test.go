package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"repayment-engine/internal/adapter/middleware"
	"repayment-engine/internal/logger"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func doIdempotent(e *echo.Echo, method, path string, body any, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderIdempotencyKey, key)
	req.Header.Set(middleware.HeaderRequestAt, time.Now().UTC().Format(time.RFC3339))
	req.Header.Set(middleware.HeaderOwnerID, strings.Repeat("b", 32))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRepay_ReplayDoesNotWriteSecondLedgerEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := newSQLiteServer(t, middleware.IdempotencyMiddleware(rdb, time.Minute, logger.Discard()))

	rec := doIdempotent(e, stdhttp.MethodPost, "/loans", validLoanBody, strings.Repeat("1", 32))
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("create loan: %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		LoanID string `json:"loan_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode loan: %v", err)
	}

	path := "/loans/" + created.LoanID + "/repayments"
	body := map[string]any{"amount": 2000, "received_at": "2024-02-01"}
	key := strings.Repeat("2", 32)

	first := doIdempotent(e, stdhttp.MethodPost, path, body, key)
	if first.Code != stdhttp.StatusCreated {
		t.Fatalf("first repayment: %d %s", first.Code, first.Body.String())
	}
	second := doIdempotent(e, stdhttp.MethodPost, path, body, key)
	if second.Code != stdhttp.StatusCreated || second.Body.String() != first.Body.String() {
		t.Fatalf("replay should return the stored response:\n first %s\nsecond %d %s", first.Body.String(), second.Code, second.Body.String())
	}

	list := doJSON(e, stdhttp.MethodGet, path, nil)
	if list.Code != stdhttp.StatusOK {
		t.Fatalf("list repayments: %d %s", list.Code, list.Body.String())
	}
	var payments []map[string]any
	if err := json.Unmarshal(list.Body.Bytes(), &payments); err != nil {
		t.Fatalf("decode payments: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("want exactly one ledger entry, got %d", len(payments))
	}

	// a fresh key is a new payment
	third := doIdempotent(e, stdhttp.MethodPost, path, body, strings.Repeat("3", 32))
	if third.Code != stdhttp.StatusCreated {
		t.Fatalf("new key: %d %s", third.Code, third.Body.String())
	}
	var loanView struct {
		OutstandingAmount int64 `json:"outstanding_amount"`
	}
	got := doJSON(e, stdhttp.MethodGet, "/loans/"+created.LoanID, nil)
	if err := json.Unmarshal(got.Body.Bytes(), &loanView); err != nil {
		t.Fatalf("decode loan view: %v", err)
	}
	if loanView.OutstandingAmount != 1000 {
		t.Fatalf("outstanding after two payments = %d, want 1000", loanView.OutstandingAmount)
	}
}
