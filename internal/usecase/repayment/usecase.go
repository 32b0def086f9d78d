package repayment

import (
	"context"
	"errors"
	"strings"
	"time"

	"repayment-engine/internal/domain/installment"
	"repayment-engine/internal/domain/loan"
	"repayment-engine/internal/domain/payment"
	"repayment-engine/internal/domain/uow"
	"repayment-engine/pkg/id"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Usecase struct {
	loans    loan.Repository
	payments payment.Repository
	uow      uow.UnitOfWork
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewUsecase(loans loan.Repository, payments payment.Repository, tx uow.UnitOfWork, log logrus.FieldLogger) *Usecase {
	return &Usecase{
		loans:    loans,
		payments: payments,
		uow:      tx,
		log:      log.WithField("usecase", "repayment"),
		now:      time.Now,
	}
}

// RepayLoan applies amount to the loan's installments oldest due first and
// records the payment. The loan row stays locked for the whole call, so
// concurrent repayments on one loan are serialized. Every call records a new
// payment; replays are the caller's concern.
func (u *Usecase) RepayLoan(ctx context.Context, in RepayInput) (*PaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, loan.ErrInvalidAmount
	}
	receivedAt := in.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = u.now()
	}

	var (
		dto      PaymentDTO
		leftover int64
	)
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		// re-read under lock; never trust balances captured before the tx
		pending, err := r.Installments.ListOutstandingForUpdate(ctx, l.ID)
		if err != nil {
			return loan.Persistence("list outstanding installments", err)
		}

		before := make(map[uint64]int64, len(pending))
		for _, p := range pending {
			before[p.ID] = p.OutstandingAmount
		}

		var changed []installment.Installment
		changed, leftover = installment.Allocate(pending, in.Amount)

		allocations := make([]AllocationDTO, 0, len(changed))
		for i := range changed {
			if err := r.Installments.UpdateBalance(ctx, &changed[i]); err != nil {
				return loan.Persistence("update installment", err)
			}
			allocations = append(allocations, AllocationDTO{
				Sequence:          changed[i].Sequence,
				AppliedAmount:     before[changed[i].ID] - changed[i].OutstandingAmount,
				OutstandingAmount: changed[i].OutstandingAmount,
				Status:            string(changed[i].Status),
			})
		}

		currency := strings.ToUpper(strings.TrimSpace(in.CurrencyCode))
		if currency == "" {
			currency = l.CurrencyCode
		}
		p := &payment.ReceivedPayment{
			PaymentID:       id.NewID32(),
			LoanID:          l.ID,
			Amount:          in.Amount,
			AllocatedAmount: in.Amount - leftover,
			CurrencyCode:    currency,
			ReceivedAt:      receivedAt.UTC(),
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return loan.Persistence("record payment", err)
		}

		outstanding, err := r.Installments.SumOutstanding(ctx, l.ID)
		if err != nil {
			return loan.Persistence("sum outstanding", err)
		}
		l.OutstandingAmount = outstanding
		l.Status = loan.StatusFor(outstanding)
		if err := r.Loans.Save(ctx, l); err != nil {
			return loan.Persistence("update loan", err)
		}

		dto = toDTO(l.LoanID, p)
		dto.LoanOutstanding = &l.OutstandingAmount
		dto.LoanStatus = string(l.Status)
		dto.Allocations = allocations
		return nil
	})
	if err != nil {
		if !loan.IsDomain(err) {
			err = loan.Persistence("repay loan tx", err)
		}
		return nil, err
	}

	entry := u.log.WithFields(logrus.Fields{
		"loan_id":     dto.LoanID,
		"payment_id":  dto.PaymentID,
		"amount":      dto.Amount,
		"outstanding": *dto.LoanOutstanding,
	})
	if leftover > 0 {
		// kept as-is: the excess stays in the ledger amount and pays nothing
		entry.WithField("leftover", leftover).Warn("payment exceeds outstanding balance")
	} else {
		entry.Info("payment allocated")
	}
	return &dto, nil
}

// GetPayment returns one ledger entry of the loan. A payment recorded
// against another loan is reported as payment.ErrNotFound.
func (u *Usecase) GetPayment(ctx context.Context, loanID, paymentID string) (*PaymentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loan.ErrNotFound
	}
	if err != nil {
		return nil, loan.Persistence("get loan", err)
	}

	p, err := u.payments.GetByPaymentID(ctx, paymentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payment.ErrNotFound
	}
	if err != nil {
		return nil, loan.Persistence("get payment", err)
	}
	if p.LoanID != l.ID {
		return nil, payment.ErrNotFound
	}

	dto := toDTO(l.LoanID, p)
	return &dto, nil
}

// ListPayments returns the loan's ledger in the order payments were received.
func (u *Usecase) ListPayments(ctx context.Context, loanID string) ([]PaymentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loan.ErrNotFound
	}
	if err != nil {
		return nil, loan.Persistence("get loan", err)
	}

	rows, err := u.payments.ListByLoan(ctx, l.ID)
	if err != nil {
		return nil, loan.Persistence("list payments", err)
	}
	out := make([]PaymentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(l.LoanID, &rows[i]))
	}
	return out, nil
}
