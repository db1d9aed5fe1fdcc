package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
)

func TestProcessMeetingRequest_ToDomain(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	req := &ProcessMeetingRequest{
		MeetingID:   "mtg-1",
		GroupID:     "grp-1",
		CycleID:     "cyc-1",
		MeetingDate: date,
		SubmittedBy: "chairperson",
		SharePurchases: []SharePurchaseItem{
			{MemberID: "mbr-1", Quantity: 2, AmountPaid: decimal.RequireFromString("100000")},
		},
		Loans: []LoanItem{
			{
				MemberID:       "mbr-2",
				Purpose:        "seed capital",
				Principal:      decimal.RequireFromString("100000"),
				InterestRate:   decimal.RequireFromString("10"),
				DurationMonths: 3,
			},
		},
		SocialFund: []SocialFundItem{
			{MemberID: "mbr-3", Type: "contribution", Amount: decimal.RequireFromString("5000"), Reason: "monthly"},
		},
	}

	meeting := req.ToDomain()

	if meeting.ID != "mtg-1" || meeting.GroupID != "grp-1" || meeting.CycleID != "cyc-1" {
		t.Fatalf("unexpected meeting identity: %+v", meeting)
	}

	if !meeting.Date.Equal(date) {
		t.Fatalf("expected meeting date %v, got %v", date, meeting.Date)
	}

	if len(meeting.Shares) != 1 || meeting.Shares[0].Quantity != 2 {
		t.Fatalf("unexpected shares: %+v", meeting.Shares)
	}

	if len(meeting.Loans) != 1 || meeting.Loans[0].DurationMonths != 3 {
		t.Fatalf("unexpected loans: %+v", meeting.Loans)
	}

	if len(meeting.SocialFund) != 1 || meeting.SocialFund[0].Type != domain.FundContribution {
		t.Fatalf("unexpected social fund items: %+v", meeting.SocialFund)
	}
}

func TestProcessMeetingRequest_ToDomainEmptyLineItems(t *testing.T) {
	req := &ProcessMeetingRequest{
		MeetingID:   "mtg-2",
		GroupID:     "grp-1",
		CycleID:     "cyc-1",
		MeetingDate: time.Now(),
	}

	meeting := req.ToDomain()

	if len(meeting.Shares) != 0 || len(meeting.Loans) != 0 || len(meeting.SocialFund) != 0 {
		t.Fatalf("expected empty line item slices, got %+v", meeting)
	}
}

func TestRecordRepaymentRequest_ToUseCaseInput(t *testing.T) {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	req := &RecordRepaymentRequest{
		Amount:          decimal.RequireFromString("50000"),
		MeetingID:       "mtg-5",
		TransactionDate: &date,
	}

	input := req.ToUseCaseInput("loan-1")

	if input.LoanID != "loan-1" || input.MeetingID != "mtg-5" {
		t.Fatalf("unexpected input identity: %+v", input)
	}

	if !input.Amount.Equal(decimal.RequireFromString("50000")) {
		t.Fatalf("unexpected amount: %s", input.Amount)
	}

	if !input.TransactionDate.Equal(date) {
		t.Fatalf("unexpected transaction date: %v", input.TransactionDate)
	}
}

func TestRecordRepaymentRequest_ToUseCaseInputNoDate(t *testing.T) {
	req := &RecordRepaymentRequest{Amount: decimal.RequireFromString("10")}

	input := req.ToUseCaseInput("loan-2")

	if !input.TransactionDate.IsZero() {
		t.Fatalf("expected zero transaction date, got %v", input.TransactionDate)
	}
}
