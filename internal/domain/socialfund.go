package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SocialFundType classifies social fund transactions.
type SocialFundType string

const (
	FundContribution SocialFundType = "contribution"
	FundWithdrawal   SocialFundType = "withdrawal"
)

// Valid reports whether t is a known social fund transaction type.
func (t SocialFundType) Valid() bool {
	return t == FundContribution || t == FundWithdrawal
}

// SocialFundTransaction is a signed row in a group's welfare fund.
// Contributions are stored positive, withdrawals negative; the fund balance
// for a cycle is the sum of its rows and must never go negative. The
// withdrawal guard is enforced by the processing service, not here.
type SocialFundTransaction struct {
	TransactionDate time.Time
	CreatedAt       time.Time
	ID              string
	GroupID         string
	CycleID         string
	MemberID        string
	MeetingID       string
	Description     string
	Reason          string
	CreatedBy       string
	Type            SocialFundType
	Amount          decimal.Decimal
}
