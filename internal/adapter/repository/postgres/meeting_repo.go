package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// MeetingRepository implements usecase.MeetingRepository.
type MeetingRepository struct {
	pool *pgxpool.Pool
}

// NewMeetingRepository creates a new MeetingRepository.
func NewMeetingRepository(pool *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{pool: pool}
}

// Upsert records that a meeting was processed. Reprocessing overwrites the
// previous processed_at timestamp.
func (r *MeetingRepository) Upsert(ctx context.Context, tx usecase.Transaction, meeting *domain.Meeting, processedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO meetings (id, group_id, cycle_id, meeting_date, submitted_by, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET processed_at = EXCLUDED.processed_at`,
		meeting.ID,
		meeting.GroupID,
		meeting.CycleID,
		timeToPgTimestamptz(meeting.Date),
		meeting.SubmittedBy,
		timeToPgTimestamptz(processedAt),
	)

	return err
}

// Exists reports whether a meeting has been processed before.
func (r *MeetingRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM meetings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
