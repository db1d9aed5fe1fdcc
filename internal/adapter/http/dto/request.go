package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// ProcessMeetingRequest represents a submitted meeting record.
type ProcessMeetingRequest struct {
	MeetingID      string              `json:"meeting_id"`
	GroupID        string              `json:"group_id"`
	CycleID        string              `json:"cycle_id"`
	MeetingDate    time.Time           `json:"meeting_date"`
	SubmittedBy    string              `json:"submitted_by,omitempty"`
	SharePurchases []SharePurchaseItem `json:"share_purchases,omitempty"`
	Loans          []LoanItem          `json:"loans,omitempty"`
	SocialFund     []SocialFundItem    `json:"social_fund,omitempty"`
}

// SharePurchaseItem is one member's share purchase in a meeting submission.
type SharePurchaseItem struct {
	MemberID   string          `json:"member_id"`
	Quantity   int             `json:"quantity"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

// LoanItem is one loan disbursement in a meeting submission.
type LoanItem struct {
	MemberID       string          `json:"member_id"`
	Purpose        string          `json:"purpose,omitempty"`
	Principal      decimal.Decimal `json:"principal"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	DurationMonths int             `json:"duration_months"`
}

// SocialFundItem is one social fund movement in a meeting submission.
type SocialFundItem struct {
	MemberID string          `json:"member_id"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Reason   string          `json:"reason,omitempty"`
}

// ToDomain converts the request to a domain meeting.
func (r *ProcessMeetingRequest) ToDomain() domain.Meeting {
	meeting := domain.Meeting{
		ID:          r.MeetingID,
		GroupID:     r.GroupID,
		CycleID:     r.CycleID,
		Date:        r.MeetingDate,
		SubmittedBy: r.SubmittedBy,
	}

	for _, item := range r.SharePurchases {
		meeting.Shares = append(meeting.Shares, domain.ShareLineItem{
			MemberID:   item.MemberID,
			Quantity:   item.Quantity,
			AmountPaid: item.AmountPaid,
		})
	}

	for _, item := range r.Loans {
		meeting.Loans = append(meeting.Loans, domain.LoanLineItem{
			MemberID:       item.MemberID,
			Purpose:        item.Purpose,
			Principal:      item.Principal,
			InterestRate:   item.InterestRate,
			DurationMonths: item.DurationMonths,
		})
	}

	for _, item := range r.SocialFund {
		meeting.SocialFund = append(meeting.SocialFund, domain.SocialFundLineItem{
			MemberID: item.MemberID,
			Type:     domain.SocialFundType(item.Type),
			Amount:   item.Amount,
			Reason:   item.Reason,
		})
	}

	return meeting
}

// RecordRepaymentRequest represents a request to record a loan repayment.
type RecordRepaymentRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	MeetingID       string          `json:"meeting_id,omitempty"`
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordRepaymentRequest) ToUseCaseInput(loanID string) usecase.RecordRepaymentInput {
	input := usecase.RecordRepaymentInput{
		LoanID:    loanID,
		MeetingID: r.MeetingID,
		Amount:    r.Amount,
	}

	if r.TransactionDate != nil {
		input.TransactionDate = *r.TransactionDate
	}

	return input
}
