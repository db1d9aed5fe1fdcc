package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInconsistentLedger is returned when group-side and member-side
	// entry totals diverge.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: group totals do not equal member totals")
)

// ReconciliationUseCase verifies the double-entry invariant: every business
// event wrote one group-scoped and one member-scoped entry with the same
// signed amount, so the two totals must always match.
type ReconciliationUseCase struct {
	ledgerRepo LedgerRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(ledgerRepo LedgerRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// CheckConsistency verifies pairing across the whole ledger.
func (uc *ReconciliationUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	groupTotal, memberTotal, err := uc.ledgerRepo.CheckConsistency(ctx)
	if err != nil {
		return false, err
	}

	if !groupTotal.Equal(memberTotal) {
		return false, fmt.Errorf("%w: group=%s member=%s difference=%s",
			ErrInconsistentLedger,
			groupTotal.String(),
			memberTotal.String(),
			groupTotal.Sub(memberTotal).String(),
		)
	}

	return true, nil
}

// GroupReconciliation reports one group's pairing totals.
type GroupReconciliation struct {
	GroupID      string
	GroupTotal   decimal.Decimal
	MemberTotal  decimal.Decimal
	Difference   decimal.Decimal
	IsReconciled bool
	CheckedAt    time.Time
}

// ReconcileGroup verifies pairing for a single group.
func (uc *ReconciliationUseCase) ReconcileGroup(ctx context.Context, groupID string) (*GroupReconciliation, error) {
	groupTotal, memberTotal, err := uc.ledgerRepo.SumPairTotals(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &GroupReconciliation{
		GroupID:      groupID,
		GroupTotal:   groupTotal,
		MemberTotal:  memberTotal,
		Difference:   groupTotal.Sub(memberTotal),
		IsReconciled: groupTotal.Equal(memberTotal),
		CheckedAt:    time.Now().UTC(),
	}, nil
}
