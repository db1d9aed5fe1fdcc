package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Share records one share purchase by a member. Each purchase also produces
// a balanced ledger pair with source SourceSharePurchase.
type Share struct {
	PurchasedAt time.Time
	CreatedAt   time.Time
	ID          string
	GroupID     string
	CycleID     string
	MemberID    string
	MeetingID   string
	Quantity    int
	AmountPaid  decimal.Decimal
}
