package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Meeting is a submitted meeting record: the raw line items for one sitting
// of a savings group, grouped by category. Line items are validated at this
// boundary before any of them reach the processing service.
type Meeting struct {
	Date        time.Time
	ID          string
	GroupID     string
	CycleID     string
	SubmittedBy string
	Shares      []ShareLineItem
	Loans       []LoanLineItem
	SocialFund  []SocialFundLineItem
}

// Validate checks meeting-level required fields.
func (m *Meeting) Validate() error {
	if m.ID == "" || m.GroupID == "" || m.CycleID == "" {
		return ErrInvalidMeeting
	}

	if m.Date.IsZero() {
		return fmt.Errorf("%w: meeting date is required", ErrInvalidMeeting)
	}

	return nil
}

// ShareLineItem is one member's share purchase within a meeting.
type ShareLineItem struct {
	MemberID   string
	Quantity   int
	AmountPaid decimal.Decimal
}

// Validate checks the line item's fields. Zero and negative amounts are
// rejected rather than written as no-op pairs.
func (li ShareLineItem) Validate() error {
	if li.MemberID == "" {
		return ErrMissingMember
	}

	if li.Quantity <= 0 {
		return fmt.Errorf("%w: share quantity must be positive", ErrInvalidAmount)
	}

	if li.AmountPaid.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// LoanLineItem is one loan disbursement within a meeting.
type LoanLineItem struct {
	MemberID       string
	Purpose        string
	Principal      decimal.Decimal
	InterestRate   decimal.Decimal
	DurationMonths int
}

// Validate checks the line item's fields.
func (li LoanLineItem) Validate() error {
	if li.MemberID == "" {
		return ErrMissingMember
	}

	if li.Principal.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if li.InterestRate.IsNegative() {
		return ErrInvalidInterestRate
	}

	if li.DurationMonths <= 0 {
		return ErrInvalidDuration
	}

	return nil
}

// SocialFundLineItem is one social fund movement within a meeting.
type SocialFundLineItem struct {
	MemberID string
	Reason   string
	Type     SocialFundType
	Amount   decimal.Decimal
}

// Validate checks the line item's fields. Amount is the magnitude; the sign
// stored on the resulting row is derived from Type.
func (li SocialFundLineItem) Validate() error {
	if li.MemberID == "" {
		return ErrMissingMember
	}

	if !li.Type.Valid() {
		return ErrInvalidFundType
	}

	if li.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}
