package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
)

func TestTotalDue(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		rate      string
		want      string
	}{
		{name: "ten percent", principal: 100000, rate: "10", want: "110000"},
		{name: "zero rate", principal: 100000, rate: "0", want: "100000"},
		{name: "fractional rate", principal: 100000, rate: "2.5", want: "102500"},
		{name: "rate not scaled by duration", principal: 50000, rate: "10", want: "55000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.TotalDue(decimal.NewFromInt(tt.principal), decimal.RequireFromString(tt.rate))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLoanEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  domain.LoanStatus
		dueDate time.Time
		balance int64
		want    domain.LoanStatus
	}{
		{
			name:    "active before due date",
			status:  domain.LoanStatusActive,
			dueDate: now.AddDate(0, 1, 0),
			balance: 110000,
			want:    domain.LoanStatusActive,
		},
		{
			name:    "active past due date with balance",
			status:  domain.LoanStatusActive,
			dueDate: now.AddDate(0, -1, 0),
			balance: 110000,
			want:    domain.LoanStatusOverdue,
		},
		{
			name:    "active past due date fully repaid",
			status:  domain.LoanStatusActive,
			dueDate: now.AddDate(0, -1, 0),
			balance: 0,
			want:    domain.LoanStatusActive,
		},
		{
			name:    "repaid never reads overdue",
			status:  domain.LoanStatusRepaid,
			dueDate: now.AddDate(0, -1, 0),
			balance: 0,
			want:    domain.LoanStatusRepaid,
		},
		{
			name:    "defaulted is terminal",
			status:  domain.LoanStatusDefaulted,
			dueDate: now.AddDate(0, -1, 0),
			balance: 50000,
			want:    domain.LoanStatusDefaulted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := &domain.Loan{
				Status:  tt.status,
				DueDate: tt.dueDate,
				Balance: decimal.NewFromInt(tt.balance),
			}

			if got := loan.EffectiveStatus(now); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLoanCanRepay(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	overdue := &domain.Loan{
		Status:  domain.LoanStatusActive,
		DueDate: now.AddDate(0, -1, 0),
		Balance: decimal.NewFromInt(40000),
	}
	if !overdue.CanRepay(now) {
		t.Fatalf("expected overdue loan to accept repayments")
	}

	defaulted := &domain.Loan{Status: domain.LoanStatusDefaulted, Balance: decimal.NewFromInt(40000)}
	if defaulted.CanRepay(now) {
		t.Fatalf("expected defaulted loan to reject repayments")
	}

	repaid := &domain.Loan{Status: domain.LoanStatusRepaid}
	if repaid.CanRepay(now) {
		t.Fatalf("expected repaid loan to reject repayments")
	}
}

func TestLoanApplyRepayment(t *testing.T) {
	loan := &domain.Loan{Balance: decimal.NewFromInt(110000)}

	newBalance, err := loan.ApplyRepayment(decimal.NewFromInt(50000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !newBalance.Equal(decimal.NewFromInt(60000)) {
		t.Fatalf("expected 60000, got %s", newBalance)
	}

	if _, err := loan.ApplyRepayment(decimal.NewFromInt(200000)); !errors.Is(err, domain.ErrRepaymentExceedsBalance) {
		t.Fatalf("expected ErrRepaymentExceedsBalance, got %v", err)
	}

	if _, err := loan.ApplyRepayment(decimal.Zero); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestLoanValidate(t *testing.T) {
	base := func() *domain.Loan {
		return &domain.Loan{
			MemberID:       "mbr-1",
			Principal:      decimal.NewFromInt(100000),
			InterestRate:   decimal.NewFromInt(10),
			DurationMonths: 3,
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(l *domain.Loan)
		wantErr error
	}{
		{
			name:    "zero principal",
			mutate:  func(l *domain.Loan) { l.Principal = decimal.Zero },
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative rate",
			mutate:  func(l *domain.Loan) { l.InterestRate = decimal.NewFromInt(-1) },
			wantErr: domain.ErrInvalidInterestRate,
		},
		{
			name:    "zero duration",
			mutate:  func(l *domain.Loan) { l.DurationMonths = 0 },
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "missing member",
			mutate:  func(l *domain.Loan) { l.MemberID = "" },
			wantErr: domain.ErrMissingMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := base()
			tt.mutate(loan)

			if err := loan.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDisbursementTransactions(t *testing.T) {
	loan := &domain.Loan{
		ID:        "loan-1",
		Principal: decimal.NewFromInt(100000),
		TotalDue:  decimal.NewFromInt(110000),
	}

	txs := domain.DisbursementTransactions(loan)
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}

	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	if !sum.Equal(loan.TotalDue.Neg()) {
		t.Fatalf("expected transactions to sum to -TotalDue, got %s", sum)
	}

	if txs[0].Type != domain.LoanTxPrincipal || !txs[0].Amount.Equal(decimal.NewFromInt(-100000)) {
		t.Fatalf("unexpected principal transaction: %+v", txs[0])
	}
	if txs[1].Type != domain.LoanTxInterest || !txs[1].Amount.Equal(decimal.NewFromInt(-10000)) {
		t.Fatalf("unexpected interest transaction: %+v", txs[1])
	}
}
