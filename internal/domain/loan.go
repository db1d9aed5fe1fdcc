package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus represents the lifecycle state of a loan.
type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "active"
	LoanStatusRepaid    LoanStatus = "repaid"
	LoanStatusOverdue   LoanStatus = "overdue"
	LoanStatusDefaulted LoanStatus = "defaulted"
)

var oneHundred = decimal.NewFromInt(100)

// TotalDue computes the amount owed on a loan: principal plus a flat
// percentage of principal. The rate is not scaled by duration; the interest
// charge is a single flat percentage regardless of how many months the loan
// runs. Changing the interest policy means changing only this function.
func TotalDue(principal, rate decimal.Decimal) decimal.Decimal {
	interest := principal.Mul(rate).Div(oneHundred)
	return principal.Add(interest)
}

// Loan is the aggregate record of a disbursed loan. Balance starts at
// TotalDue and trends toward zero as repayments are recorded.
type Loan struct {
	DisbursedAt    time.Time
	DueDate        time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ID             string
	GroupID        string
	CycleID        string
	MemberID       string
	MeetingID      string
	Purpose        string
	Status         LoanStatus
	Principal      decimal.Decimal
	InterestRate   decimal.Decimal
	TotalDue       decimal.Decimal
	Balance        decimal.Decimal
	DurationMonths int
}

// Validate checks the loan's invariants at creation time.
func (l *Loan) Validate() error {
	if l.Principal.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if l.InterestRate.IsNegative() {
		return ErrInvalidInterestRate
	}

	if l.DurationMonths <= 0 {
		return ErrInvalidDuration
	}

	if l.MemberID == "" {
		return ErrMissingMember
	}

	return nil
}

// EffectiveStatus returns the loan's status as of now. Overdue is evaluated
// lazily at read time: an active loan past its due date with a nonzero
// balance reads as overdue without any stored transition.
func (l *Loan) EffectiveStatus(now time.Time) LoanStatus {
	if l.Status == LoanStatusActive && now.After(l.DueDate) && !l.Balance.IsZero() {
		return LoanStatusOverdue
	}

	return l.Status
}

// CanRepay reports whether the loan accepts repayments in its current state.
func (l *Loan) CanRepay(now time.Time) bool {
	switch l.EffectiveStatus(now) {
	case LoanStatusActive, LoanStatusOverdue:
		return true
	}

	return false
}

// ApplyRepayment returns the balance after a repayment of amount.
func (l *Loan) ApplyRepayment(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return l.Balance, ErrInvalidAmount
	}

	if amount.GreaterThan(l.Balance) {
		return l.Balance, ErrRepaymentExceedsBalance
	}

	return l.Balance.Sub(amount), nil
}

// LoanTransactionType classifies per-loan transaction rows.
type LoanTransactionType string

const (
	LoanTxPrincipal LoanTransactionType = "principal"
	LoanTxInterest  LoanTransactionType = "interest"
	LoanTxRepayment LoanTransactionType = "repayment"
)

// LoanTransaction is a signed per-loan row. At disbursement the principal
// and interest rows sum to the negative of TotalDue (the member's debt);
// repayment rows are positive and move that sum toward zero.
type LoanTransaction struct {
	CreatedAt   time.Time
	ID          string
	LoanID      string
	Description string
	Type        LoanTransactionType
	Amount      decimal.Decimal
}

// DisbursementTransactions builds the principal and interest rows for a
// freshly disbursed loan. Their amounts sum to -TotalDue.
func DisbursementTransactions(l *Loan) []*LoanTransaction {
	interest := l.TotalDue.Sub(l.Principal)

	return []*LoanTransaction{
		{
			LoanID:      l.ID,
			Type:        LoanTxPrincipal,
			Amount:      l.Principal.Neg(),
			Description: "loan principal disbursed",
		},
		{
			LoanID:      l.ID,
			Type:        LoanTxInterest,
			Amount:      interest.Neg(),
			Description: "interest charged at disbursement",
		},
	}
}
