// Package overdue reports installments that passed their due date unpaid.
// It only reads; no fees or status changes are applied.
package overdue

import (
	"context"
	"time"

	"repayment-engine/internal/domain/installment"
	"repayment-engine/internal/domain/loan"
	"repayment-engine/pkg/calendar"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Report summarises one sweep.
type Report struct {
	AsOf         time.Time
	Installments int
	Loans        int
	Outstanding  int64
	// Truncated is set when the batch limit was hit and more rows may exist.
	Truncated bool
}

type Usecase struct {
	installments installment.Repository
	batch        int
	log          logrus.FieldLogger
	now          func() time.Time
}

func NewUsecase(installments installment.Repository, batch int, log logrus.FieldLogger) *Usecase {
	return &Usecase{
		installments: installments,
		batch:        batch,
		log:          log.WithField("usecase", "overdue"),
		now:          time.Now,
	}
}

// Sweep lists installments with an outstanding balance due before the start
// of asOf's UTC day and logs one line per affected loan.
func (u *Usecase) Sweep(ctx context.Context, asOf time.Time) (Report, error) {
	cutoff := calendar.StartOfDay(asOf)
	rep := Report{AsOf: cutoff}

	items, err := u.installments.ListOverdue(ctx, cutoff, u.batch)
	if err != nil {
		return rep, loan.Persistence("list overdue", err)
	}

	type perLoan struct {
		count       int
		outstanding int64
		oldest      time.Time
	}
	byLoan := make(map[string]*perLoan)
	order := make([]string, 0)
	for _, in := range items {
		p, ok := byLoan[in.PublicLoanID]
		if !ok {
			p = &perLoan{oldest: in.DueDate}
			byLoan[in.PublicLoanID] = p
			order = append(order, in.PublicLoanID)
		}
		p.count++
		p.outstanding += in.OutstandingAmount
		if in.DueDate.Before(p.oldest) {
			p.oldest = in.DueDate
		}
		rep.Outstanding += in.OutstandingAmount
	}
	rep.Installments = len(items)
	rep.Loans = len(order)
	rep.Truncated = u.batch > 0 && len(items) == u.batch

	for _, loanID := range order {
		p := byLoan[loanID]
		u.log.WithFields(logrus.Fields{
			"loan_id":      loanID,
			"installments": p.count,
			"outstanding":  p.outstanding,
			"oldest_due":   calendar.FormatDate(p.oldest),
		}).Warn("loan overdue")
	}

	u.log.WithFields(logrus.Fields{
		"as_of":        calendar.FormatDate(cutoff),
		"installments": rep.Installments,
		"loans":        rep.Loans,
		"outstanding":  rep.Outstanding,
		"truncated":    rep.Truncated,
	}).Info("overdue sweep finished")

	return rep, nil
}

// Register schedules Sweep on c with a standard 5-field cron spec. Each run
// is bounded by timeout.
func (u *Usecase) Register(c *cron.Cron, spec string, timeout time.Duration) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := u.Sweep(ctx, u.now()); err != nil {
			u.log.WithError(err).Error("overdue sweep failed")
		}
	})
}
