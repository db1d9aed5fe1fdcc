package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// SocialFundRepository implements usecase.SocialFundRepository.
type SocialFundRepository struct {
	pool *pgxpool.Pool
}

// NewSocialFundRepository creates a new SocialFundRepository.
func NewSocialFundRepository(pool *pgxpool.Pool) *SocialFundRepository {
	return &SocialFundRepository{pool: pool}
}

// Create inserts a social fund transaction inside the transaction.
func (r *SocialFundRepository) Create(ctx context.Context, tx usecase.Transaction, fundTx *domain.SocialFundTransaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO social_fund_transactions (
			id, group_id, cycle_id, member_id, meeting_id,
			type, amount, transaction_date, description, reason, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		fundTx.ID,
		fundTx.GroupID,
		fundTx.CycleID,
		fundTx.MemberID,
		fundTx.MeetingID,
		string(fundTx.Type),
		decimalToNumeric(fundTx.Amount),
		timeToPgTimestamptz(fundTx.TransactionDate),
		fundTx.Description,
		fundTx.Reason,
		fundTx.CreatedBy,
		timeToPgTimestamptz(fundTx.CreatedAt),
	)

	return err
}

const sumFundSQL = `
	SELECT COALESCE(SUM(amount), 0)
	FROM social_fund_transactions
	WHERE group_id = $1 AND cycle_id = $2`

// SumByGroupCycle sums fund rows under the given transaction, so the
// withdrawal guard and the writes it protects see the same snapshot.
func (r *SocialFundRepository) SumByGroupCycle(ctx context.Context, tx usecase.Transaction, groupID, cycleID string) (decimal.Decimal, error) {
	pgxTx := tx.(*Tx).PgxTx()

	var sum pgtype.Numeric
	if err := pgxTx.QueryRow(ctx, sumFundSQL, groupID, cycleID).Scan(&sum); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// Sum sums fund rows outside any transaction, for reporting.
func (r *SocialFundRepository) Sum(ctx context.Context, groupID, cycleID string) (decimal.Decimal, error) {
	var sum pgtype.Numeric
	if err := r.pool.QueryRow(ctx, sumFundSQL, groupID, cycleID).Scan(&sum); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// DeleteByMeeting removes fund rows a prior run of a meeting created.
func (r *SocialFundRepository) DeleteByMeeting(ctx context.Context, tx usecase.Transaction, meetingID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM social_fund_transactions WHERE meeting_id = $1`, meetingID)

	return err
}
