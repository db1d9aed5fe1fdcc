package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
)

func TestValidateAmount(t *testing.T) {
	if err := domain.ValidateAmount(decimal.NewFromInt(100000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := domain.ValidateAmount(decimal.Zero); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero, got %v", err)
	}

	if err := domain.ValidateAmount(decimal.NewFromInt(-1)); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative, got %v", err)
	}

	huge := decimal.RequireFromString(domain.MaxTransactionAmount).Add(decimal.NewFromInt(1))
	if err := domain.ValidateAmount(huge); !errors.Is(err, domain.ErrAmountTooLarge) {
		t.Fatalf("expected ErrAmountTooLarge, got %v", err)
	}
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: 0, wantLimit: 50, wantOffset: 0},
		{name: "negative offset clamps", limit: 10, offset: -3, wantLimit: 10, wantOffset: 0},
		{name: "oversized limit capped", limit: 5000, offset: 20, wantLimit: 1000, wantOffset: 20},
		{name: "passthrough", limit: 25, offset: 75, wantLimit: 25, wantOffset: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := domain.ValidatePagination(tt.limit, tt.offset)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("expected (%d, %d), got (%d, %d)", tt.wantLimit, tt.wantOffset, limit, offset)
			}
		})
	}
}
