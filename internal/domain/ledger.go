package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySource identifies the business event that produced a ledger entry.
type EntrySource string

const (
	SourceSharePurchase          EntrySource = "share_purchase"
	SourceLoanDisbursement       EntrySource = "loan_disbursement"
	SourceLoanRepayment          EntrySource = "loan_repayment"
	SourceSocialFundContribution EntrySource = "social_fund_contribution"
	SourceSocialFundWithdrawal   EntrySource = "social_fund_withdrawal"
)

// Valid reports whether s is a known entry source.
func (s EntrySource) Valid() bool {
	switch s {
	case SourceSharePurchase,
		SourceLoanDisbursement,
		SourceLoanRepayment,
		SourceSocialFundContribution,
		SourceSocialFundWithdrawal:
		return true
	}

	return false
}

// LedgerEntry is an immutable signed-amount record. A nil MemberID means the
// entry tracks the group pool; otherwise it tracks a member's position.
// Positive amounts are inflows to the group, negative amounts are outflows.
type LedgerEntry struct {
	CreatedAt       time.Time
	TransactionDate time.Time
	ID              string
	GroupID         string
	CycleID         string
	MeetingID       string
	MemberID        *string
	Source          EntrySource
	Description     string
	Amount          decimal.Decimal
}

// IsGroupScoped reports whether the entry belongs to the group pool.
func (e *LedgerEntry) IsGroupScoped() bool {
	return e.MemberID == nil
}

// PairedEntryParams describes one business event to be recorded as a
// balanced pair of ledger entries.
type PairedEntryParams struct {
	TransactionDate time.Time
	GroupID         string
	CycleID         string
	MeetingID       string
	MemberID        string
	Description     string
	Source          EntrySource
	Amount          decimal.Decimal
}

// PairedEntry holds the two rows produced by one business event: a
// group-scoped entry and a member-scoped entry carrying the same signed
// amount. Constructing the pair through NewPairedEntry is the only way the
// system writes ledger rows, so a lone unbalanced entry cannot exist.
type PairedEntry struct {
	GroupEntry  LedgerEntry
	MemberEntry LedgerEntry
}

// NewPairedEntry builds a balanced pair of ledger entries for one event.
// The amount must be nonzero; its sign encodes direction (positive = inflow
// to the group from the member, negative = outflow to the member).
func NewPairedEntry(p PairedEntryParams) (*PairedEntry, error) {
	if !p.Source.Valid() {
		return nil, ErrInvalidSource
	}

	if p.Amount.IsZero() {
		return nil, ErrZeroAmount
	}

	if p.GroupID == "" || p.CycleID == "" {
		return nil, ErrMissingGroup
	}

	if p.MemberID == "" {
		return nil, ErrMissingMember
	}

	memberID := p.MemberID

	return &PairedEntry{
		GroupEntry: LedgerEntry{
			GroupID:         p.GroupID,
			CycleID:         p.CycleID,
			MeetingID:       p.MeetingID,
			MemberID:        nil,
			Source:          p.Source,
			Amount:          p.Amount,
			TransactionDate: p.TransactionDate,
			Description:     p.Description,
		},
		MemberEntry: LedgerEntry{
			GroupID:         p.GroupID,
			CycleID:         p.CycleID,
			MeetingID:       p.MeetingID,
			MemberID:        &memberID,
			Source:          p.Source,
			Amount:          p.Amount,
			TransactionDate: p.TransactionDate,
			Description:     p.Description,
		},
	}, nil
}

// Balanced reports whether both sides carry the same signed amount.
func (p *PairedEntry) Balanced() bool {
	return p.GroupEntry.Amount.Equal(p.MemberEntry.Amount)
}

// Entries returns both rows, group side first.
func (p *PairedEntry) Entries() []*LedgerEntry {
	return []*LedgerEntry{&p.GroupEntry, &p.MemberEntry}
}
