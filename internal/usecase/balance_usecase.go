package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
)

// BalanceUseCase computes point-in-time balances by summing ledger entries.
// It is a pure aggregation over immutable rows, used both as the withdrawal
// validation gate and as the reporting primitive.
type BalanceUseCase struct {
	ledgerRepo     LedgerRepository
	socialFundRepo SocialFundRepository
	cache          Cache
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(ledgerRepo LedgerRepository, socialFundRepo SocialFundRepository, cache Cache) *BalanceUseCase {
	return &BalanceUseCase{
		ledgerRepo:     ledgerRepo,
		socialFundRepo: socialFundRepo,
		cache:          cache,
	}
}

// GetBalance returns the signed sum of ledger entries matching the filter.
// Results are cached briefly for the reporting path.
func (uc *BalanceUseCase) GetBalance(ctx context.Context, f BalanceFilter) (decimal.Decimal, error) {
	if f.GroupID == "" {
		return decimal.Zero, domain.ErrMissingGroup
	}

	if f.Source != nil && !f.Source.Valid() {
		return decimal.Zero, domain.ErrInvalidSource
	}

	key := balanceCacheKey(f)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil && cached != nil {
			if d, err := decimal.NewFromString(string(cached)); err == nil {
				return d, nil
			}
		}
	}

	sum, err := uc.ledgerRepo.SumByFilter(ctx, f)
	if err != nil {
		return decimal.Zero, err
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, key, []byte(sum.String()), BalanceCacheTTL)
	}

	return sum, nil
}

// GetSocialFundBalance returns the fund balance for a group and cycle,
// summed from social fund rows rather than the ledger.
func (uc *BalanceUseCase) GetSocialFundBalance(ctx context.Context, groupID, cycleID string) (decimal.Decimal, error) {
	if groupID == "" || cycleID == "" {
		return decimal.Zero, domain.ErrMissingGroup
	}

	return uc.socialFundRepo.Sum(ctx, groupID, cycleID)
}

// ListEntriesInput represents input for listing ledger entries.
type ListEntriesInput struct {
	GroupID string
	Limit   int
	Offset  int
}

// ListEntries lists ledger entries for a group, newest first.
func (uc *BalanceUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.LedgerEntry, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.ledgerRepo.ListByGroup(ctx, input.GroupID, limit, offset)
}
