package http

import (
	"github.com/labstack/echo/v4"
)

// Register mounts all routes. mutating wraps the POST routes (idempotency).
func Register(e *echo.Echo, h *Handler, loans *LoanHandler, repayments *RepaymentHandler, mutating ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	g := e.Group("/loans")
	g.POST("", loans.CreateLoan, mutating...)
	g.GET("/:loan_id", loans.GetLoan)
	g.POST("/:loan_id/repayments", repayments.Repay, mutating...)
	g.GET("/:loan_id/repayments", repayments.ListRepayments)
	g.GET("/:loan_id/repayments/:payment_id", repayments.GetRepayment)
}
