package loan

import (
	"context"
	"errors"
	"strings"
	"time"

	"repayment-engine/internal/domain/installment"
	"repayment-engine/internal/domain/loan"
	"repayment-engine/internal/domain/uow"
	"repayment-engine/pkg/id"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Usecase struct {
	loans        loan.Repository
	installments installment.Repository
	uow          uow.UnitOfWork
	log          logrus.FieldLogger
	now          func() time.Time
}

// NewUsecase: reads go through the plain repos, CreateLoan through the UoW.
func NewUsecase(loans loan.Repository, installments installment.Repository, tx uow.UnitOfWork, log logrus.FieldLogger) *Usecase {
	return &Usecase{
		loans:        loans,
		installments: installments,
		uow:          tx,
		log:          log.WithField("usecase", "loan"),
		now:          time.Now,
	}
}

// CreateLoan stores a loan together with its full installment schedule in a
// single transaction.
func (u *Usecase) CreateLoan(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	processedAt := in.ProcessedAt
	if processedAt.IsZero() {
		processedAt = u.now()
	}
	processedAt = processedAt.UTC()
	currency := strings.ToUpper(strings.TrimSpace(in.CurrencyCode))

	// validates amount and terms before anything is written
	items, err := installment.BuildSchedule(in.Amount, in.Terms, currency, processedAt)
	if err != nil {
		return nil, err
	}

	l := &loan.Loan{
		LoanID:            id.NewID32(),
		OwnerID:           in.OwnerID,
		Amount:            in.Amount,
		Terms:             in.Terms,
		OutstandingAmount: in.Amount,
		CurrencyCode:      currency,
		Status:            loan.StatusDue,
		ProcessedAt:       processedAt,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return loan.Persistence("create loan", err)
		}
		for i := range items {
			items[i].LoanID = l.ID
		}
		if err := r.Installments.CreateBatch(ctx, items); err != nil {
			return loan.Persistence("create installments", err)
		}
		return nil
	})
	if err != nil {
		if !loan.IsDomain(err) {
			err = loan.Persistence("create loan tx", err)
		}
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"loan_id": l.LoanID,
		"amount":  l.Amount,
		"terms":   l.Terms,
	}).Info("loan created")

	return toDTO(l, items), nil
}

// Get returns the loan with its installments, oldest due first.
func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loan.ErrNotFound
	}
	if err != nil {
		return nil, loan.Persistence("get loan", err)
	}

	items, err := u.installments.ListByLoan(ctx, l.ID)
	if err != nil {
		return nil, loan.Persistence("list installments", err)
	}
	return toDTO(l, items), nil
}
