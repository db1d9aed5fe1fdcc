package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/mulisa/vsla-ledger/internal/usecase"
	"github.com/mulisa/vsla-ledger/internal/usecase/mocks"
)

func TestReconciliationUseCase_CheckConsistency(t *testing.T) {
	tests := []struct {
		name        string
		groupTotal  decimal.Decimal
		memberTotal decimal.Decimal
		wantOK      bool
		wantErr     error
	}{
		{
			name:        "balanced ledger",
			groupTotal:  decimal.NewFromInt(300000),
			memberTotal: decimal.NewFromInt(300000),
			wantOK:      true,
		},
		{
			name:        "divergent totals",
			groupTotal:  decimal.NewFromInt(300000),
			memberTotal: decimal.NewFromInt(299000),
			wantErr:     usecase.ErrInconsistentLedger,
		},
		{
			name:        "both zero",
			groupTotal:  decimal.Zero,
			memberTotal: decimal.Zero,
			wantOK:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ledgerRepo := mocks.NewGomockLedgerRepository(ctrl)
			ledgerRepo.EXPECT().
				CheckConsistency(gomock.Any()).
				Return(tt.groupTotal, tt.memberTotal, nil)

			uc := usecase.NewReconciliationUseCase(ledgerRepo)

			ok, err := uc.CheckConsistency(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
		})
	}
}

func TestReconciliationUseCase_CheckConsistencyRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledgerRepo := mocks.NewGomockLedgerRepository(ctrl)

	repoErr := errors.New("query timeout")
	ledgerRepo.EXPECT().
		CheckConsistency(gomock.Any()).
		Return(decimal.Zero, decimal.Zero, repoErr)

	uc := usecase.NewReconciliationUseCase(ledgerRepo)

	if _, err := uc.CheckConsistency(context.Background()); !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestReconciliationUseCase_ReconcileGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledgerRepo := mocks.NewGomockLedgerRepository(ctrl)
	ledgerRepo.EXPECT().
		SumPairTotals(gomock.Any(), "grp-1").
		Return(decimal.NewFromInt(300000), decimal.NewFromInt(299000), nil)

	uc := usecase.NewReconciliationUseCase(ledgerRepo)

	rec, err := uc.ReconcileGroup(context.Background(), "grp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.IsReconciled {
		t.Fatalf("expected divergent group to be unreconciled")
	}
	if !rec.Difference.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected difference 1000, got %s", rec.Difference)
	}
	if rec.CheckedAt.IsZero() {
		t.Fatalf("expected CheckedAt to be set")
	}
}
