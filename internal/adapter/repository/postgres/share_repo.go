package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// ShareRepository implements usecase.ShareRepository.
type ShareRepository struct {
	pool *pgxpool.Pool
}

// NewShareRepository creates a new ShareRepository.
func NewShareRepository(pool *pgxpool.Pool) *ShareRepository {
	return &ShareRepository{pool: pool}
}

// Create inserts a share purchase inside the transaction.
func (r *ShareRepository) Create(ctx context.Context, tx usecase.Transaction, share *domain.Share) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO shares (id, group_id, cycle_id, member_id, meeting_id, quantity, amount_paid, purchased_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		share.ID,
		share.GroupID,
		share.CycleID,
		share.MemberID,
		share.MeetingID,
		share.Quantity,
		decimalToNumeric(share.AmountPaid),
		timeToPgTimestamptz(share.PurchasedAt),
		timeToPgTimestamptz(share.CreatedAt),
	)

	return err
}

// ListByGroup lists a group's share purchases, newest first.
func (r *ShareRepository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.Share, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, group_id, cycle_id, member_id, meeting_id, quantity, amount_paid, purchased_at, created_at
		FROM shares
		WHERE group_id = $1
		ORDER BY purchased_at DESC, created_at DESC
		LIMIT $2 OFFSET $3`,
		groupID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []*domain.Share

	for rows.Next() {
		var (
			share       domain.Share
			amountPaid  pgtype.Numeric
			purchasedAt pgtype.Timestamptz
			createdAt   pgtype.Timestamptz
		)

		err := rows.Scan(
			&share.ID,
			&share.GroupID,
			&share.CycleID,
			&share.MemberID,
			&share.MeetingID,
			&share.Quantity,
			&amountPaid,
			&purchasedAt,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		share.AmountPaid = numericToDecimal(amountPaid)
		share.PurchasedAt = purchasedAt.Time
		share.CreatedAt = createdAt.Time

		shares = append(shares, &share)
	}

	return shares, rows.Err()
}

// DeleteByMeeting removes share purchases a prior run of a meeting created.
func (r *ShareRepository) DeleteByMeeting(ctx context.Context, tx usecase.Transaction, meetingID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM shares WHERE meeting_id = $1`, meetingID)

	return err
}
