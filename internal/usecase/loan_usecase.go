package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
)

// LoanUseCase handles the loan lifecycle after disbursement: repayments,
// administrative defaults and reads with lazily evaluated overdue status.
type LoanUseCase struct {
	txManager  TransactionManager
	retrier    Retrier
	loanRepo   LoanRepository
	loanTxRepo LoanTransactionRepository
	ledgerRepo LedgerRepository
	idGen      IDGenerator
	cache      Cache
}

// NewLoanUseCase creates a new LoanUseCase.
func NewLoanUseCase(
	txManager TransactionManager,
	retrier Retrier,
	loanRepo LoanRepository,
	loanTxRepo LoanTransactionRepository,
	ledgerRepo LedgerRepository,
	idGen IDGenerator,
	cache Cache,
) *LoanUseCase {
	return &LoanUseCase{
		txManager:  txManager,
		retrier:    retrier,
		loanRepo:   loanRepo,
		loanTxRepo: loanTxRepo,
		ledgerRepo: ledgerRepo,
		idGen:      idGen,
		cache:      cache,
	}
}

// RecordRepaymentInput represents input for recording a loan repayment.
type RecordRepaymentInput struct {
	TransactionDate time.Time
	LoanID          string
	MeetingID       string
	Amount          decimal.Decimal
}

// RecordRepayment records a repayment against a loan: one repayment loan
// transaction, a balanced ledger pair (positive, cash returns to the pool)
// and the updated balance. The loan transitions to repaid when the balance
// reaches zero, including from overdue.
func (uc *LoanUseCase) RecordRepayment(ctx context.Context, input RecordRepaymentInput) (*domain.Loan, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	var updated *domain.Loan

	err := uc.retrier.Retry(ctx, func() error {
		loan, err := uc.repayInTx(ctx, input)
		if err != nil {
			return err
		}

		updated = loan

		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, balanceCacheKey(BalanceFilter{GroupID: updated.GroupID}))
	}

	return updated, nil
}

func (uc *LoanUseCase) repayInTx(ctx context.Context, input RecordRepaymentInput) (*domain.Loan, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	loan, err := uc.loanRepo.GetByIDForUpdate(ctx, tx, input.LoanID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if !loan.CanRepay(now) {
		return nil, domain.ErrLoanNotActive
	}

	newBalance, err := loan.ApplyRepayment(input.Amount)
	if err != nil {
		return nil, err
	}

	loanTx := &domain.LoanTransaction{
		ID:          uc.idGen.Generate(),
		LoanID:      loan.ID,
		Type:        domain.LoanTxRepayment,
		Amount:      input.Amount,
		Description: "loan repayment",
		CreatedAt:   now,
	}

	if err := uc.loanTxRepo.Create(ctx, tx, loanTx); err != nil {
		return nil, err
	}

	txDate := input.TransactionDate
	if txDate.IsZero() {
		txDate = now
	}

	meetingID := input.MeetingID
	if meetingID == "" {
		meetingID = loan.MeetingID
	}

	pair, err := domain.NewPairedEntry(domain.PairedEntryParams{
		GroupID:         loan.GroupID,
		CycleID:         loan.CycleID,
		MeetingID:       meetingID,
		MemberID:        loan.MemberID,
		Source:          domain.SourceLoanRepayment,
		Amount:          input.Amount,
		TransactionDate: txDate,
		Description:     fmt.Sprintf("repayment on loan %s", loan.ID),
	})
	if err != nil {
		return nil, err
	}

	pair.GroupEntry.ID = uc.idGen.Generate()
	pair.MemberEntry.ID = uc.idGen.Generate()
	pair.GroupEntry.CreatedAt = now
	pair.MemberEntry.CreatedAt = now

	if err := uc.ledgerRepo.CreatePair(ctx, tx, pair); err != nil {
		return nil, err
	}

	status := loan.Status
	if newBalance.IsZero() {
		status = domain.LoanStatusRepaid
	}

	if err := uc.loanRepo.UpdateBalance(ctx, tx, loan.ID, newBalance, status, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	loan.Balance = newBalance
	loan.Status = status
	loan.UpdatedAt = now

	return loan, nil
}

// MarkDefaulted moves a loan into the terminal defaulted state. This is an
// explicit administrative action and is never triggered automatically.
func (uc *LoanUseCase) MarkDefaulted(ctx context.Context, loanID string) (*domain.Loan, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	loan, err := uc.loanRepo.GetByIDForUpdate(ctx, tx, loanID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if !loan.CanRepay(now) {
		return nil, domain.ErrLoanNotActive
	}

	if err := uc.loanRepo.UpdateBalance(ctx, tx, loan.ID, loan.Balance, domain.LoanStatusDefaulted, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	loan.Status = domain.LoanStatusDefaulted
	loan.UpdatedAt = now

	return loan, nil
}

// GetLoan retrieves a loan with its status evaluated against now.
func (uc *LoanUseCase) GetLoan(ctx context.Context, id string) (*domain.Loan, error) {
	loan, err := uc.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	loan.Status = loan.EffectiveStatus(time.Now().UTC())

	return loan, nil
}

// ListLoansByGroupInput represents input for listing loans.
type ListLoansByGroupInput struct {
	GroupID string
	Limit   int
	Offset  int
}

// ListLoansByGroup lists a group's loans with lazily evaluated status.
func (uc *LoanUseCase) ListLoansByGroup(ctx context.Context, input ListLoansByGroupInput) ([]*domain.Loan, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	loans, err := uc.loanRepo.ListByGroup(ctx, input.GroupID, limit, offset)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, loan := range loans {
		loan.Status = loan.EffectiveStatus(now)
	}

	return loans, nil
}

// GetLoanTransactions lists the signed transaction rows for a loan.
func (uc *LoanUseCase) GetLoanTransactions(ctx context.Context, loanID string) ([]*domain.LoanTransaction, error) {
	return uc.loanTxRepo.ListByLoan(ctx, loanID)
}
