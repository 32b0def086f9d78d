package http

import (
	stdhttp "net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRegister_MutatingMiddlewareOnlyOnPOST(t *testing.T) {
	e := newEchoWithValidator()
	hits := map[string]int{}
	mark := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hits[c.Request().Method]++
			return next(c)
		}
	}

	Register(e, NewHandler(nil), &LoanHandler{}, &RepaymentHandler{}, mark)

	routes := map[string]bool{}
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"POST /loans",
		"GET /loans/:loan_id",
		"POST /loans/:loan_id/repayments",
		"GET /loans/:loan_id/repayments",
		"GET /loans/:loan_id/repayments/:payment_id",
	} {
		if !routes[want] {
			t.Fatalf("route %s not registered; have %v", want, routes)
		}
	}

	rec := doJSON(e, stdhttp.MethodGet, "/health", nil)
	if rec.Code != stdhttp.StatusOK || hits[stdhttp.MethodGet] != 0 {
		t.Fatalf("GET must not pass through mutating middleware: code=%d hits=%v", rec.Code, hits)
	}

	// rejected at bind, before any usecase is needed
	rec = doJSON(e, stdhttp.MethodPost, "/loans", `{`)
	if rec.Code != stdhttp.StatusBadRequest || hits[stdhttp.MethodPost] != 1 {
		t.Fatalf("POST must pass through mutating middleware: code=%d hits=%v", rec.Code, hits)
	}
}
