package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// MeetingResultResponse reports the outcome of processing a meeting.
type MeetingResultResponse struct {
	MeetingID           string   `json:"meeting_id"`
	SharesProcessed     int      `json:"shares_processed"`
	LoansProcessed      int      `json:"loans_processed"`
	SocialFundProcessed int      `json:"social_fund_processed"`
	Warnings            []string `json:"warnings,omitempty"`
	Errors              []string `json:"errors,omitempty"`
	Success             bool     `json:"success"`
}

// MeetingResultFromUseCase converts a use case result to a response.
func MeetingResultFromUseCase(r *usecase.MeetingResult) *MeetingResultResponse {
	return &MeetingResultResponse{
		MeetingID:           r.MeetingID,
		SharesProcessed:     r.SharesProcessed,
		LoansProcessed:      r.LoansProcessed,
		SocialFundProcessed: r.SocialFundProcessed,
		Warnings:            r.Warnings,
		Errors:              r.Errors,
		Success:             r.Success,
	}
}

// LoanResponse represents a loan in API responses.
type LoanResponse struct {
	ID             string          `json:"id"`
	GroupID        string          `json:"group_id"`
	CycleID        string          `json:"cycle_id"`
	MemberID       string          `json:"member_id"`
	MeetingID      string          `json:"meeting_id"`
	Purpose        string          `json:"purpose,omitempty"`
	Status         string          `json:"status"`
	Principal      decimal.Decimal `json:"principal"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	TotalDue       decimal.Decimal `json:"total_due"`
	Balance        decimal.Decimal `json:"balance"`
	DurationMonths int             `json:"duration_months"`
	DisbursedAt    time.Time       `json:"disbursed_at"`
	DueDate        time.Time       `json:"due_date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// LoanFromDomain converts a domain loan to a response.
func LoanFromDomain(l *domain.Loan) *LoanResponse {
	return &LoanResponse{
		ID:             l.ID,
		GroupID:        l.GroupID,
		CycleID:        l.CycleID,
		MemberID:       l.MemberID,
		MeetingID:      l.MeetingID,
		Purpose:        l.Purpose,
		Status:         string(l.Status),
		Principal:      l.Principal,
		InterestRate:   l.InterestRate,
		TotalDue:       l.TotalDue,
		Balance:        l.Balance,
		DurationMonths: l.DurationMonths,
		DisbursedAt:    l.DisbursedAt,
		DueDate:        l.DueDate,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// LoansFromDomain converts domain loans to responses.
func LoansFromDomain(loans []*domain.Loan) []*LoanResponse {
	result := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		result[i] = LoanFromDomain(l)
	}
	return result
}

// LoanTransactionResponse represents a signed per-loan row.
type LoanTransactionResponse struct {
	ID          string          `json:"id"`
	LoanID      string          `json:"loan_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LoanTransactionsFromDomain converts domain loan transactions to responses.
func LoanTransactionsFromDomain(txs []*domain.LoanTransaction) []*LoanTransactionResponse {
	result := make([]*LoanTransactionResponse, len(txs))
	for i, tx := range txs {
		result[i] = &LoanTransactionResponse{
			ID:          tx.ID,
			LoanID:      tx.LoanID,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		}
	}
	return result
}

// LedgerEntryResponse represents a ledger entry in API responses. A null
// member_id marks the group pool side of a pair.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	GroupID         string          `json:"group_id"`
	CycleID         string          `json:"cycle_id"`
	MeetingID       string          `json:"meeting_id"`
	MemberID        *string         `json:"member_id"`
	Source          string          `json:"source"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LedgerEntryFromDomain converts a domain ledger entry to a response.
func LedgerEntryFromDomain(e *domain.LedgerEntry) *LedgerEntryResponse {
	return &LedgerEntryResponse{
		ID:              e.ID,
		GroupID:         e.GroupID,
		CycleID:         e.CycleID,
		MeetingID:       e.MeetingID,
		MemberID:        e.MemberID,
		Source:          string(e.Source),
		Amount:          e.Amount,
		Description:     e.Description,
		TransactionDate: e.TransactionDate,
		CreatedAt:       e.CreatedAt,
	}
}

// LedgerEntriesFromDomain converts domain ledger entries to responses.
func LedgerEntriesFromDomain(entries []*domain.LedgerEntry) []*LedgerEntryResponse {
	result := make([]*LedgerEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = LedgerEntryFromDomain(e)
	}
	return result
}

// BalanceResponse represents a computed balance.
type BalanceResponse struct {
	GroupID  string          `json:"group_id"`
	CycleID  *string         `json:"cycle_id,omitempty"`
	MemberID *string         `json:"member_id,omitempty"`
	Source   *string         `json:"source,omitempty"`
	Balance  decimal.Decimal `json:"balance"`
}

// SocialFundBalanceResponse represents a group's social fund balance.
type SocialFundBalanceResponse struct {
	GroupID string          `json:"group_id"`
	CycleID string          `json:"cycle_id"`
	Balance decimal.Decimal `json:"balance"`
}

// ConsistencyResponse reports the ledger-wide pairing check.
type ConsistencyResponse struct {
	Consistent bool   `json:"consistent"`
	Detail     string `json:"detail,omitempty"`
}

// ReconciliationResponse reports one group's pairing totals.
type ReconciliationResponse struct {
	GroupID      string          `json:"group_id"`
	GroupTotal   decimal.Decimal `json:"group_total"`
	MemberTotal  decimal.Decimal `json:"member_total"`
	Difference   decimal.Decimal `json:"difference"`
	IsReconciled bool            `json:"is_reconciled"`
	CheckedAt    time.Time       `json:"checked_at"`
}

// ReconciliationFromUseCase converts a use case reconciliation to a response.
func ReconciliationFromUseCase(r *usecase.GroupReconciliation) *ReconciliationResponse {
	return &ReconciliationResponse{
		GroupID:      r.GroupID,
		GroupTotal:   r.GroupTotal,
		MemberTotal:  r.MemberTotal,
		Difference:   r.Difference,
		IsReconciled: r.IsReconciled,
		CheckedAt:    r.CheckedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
