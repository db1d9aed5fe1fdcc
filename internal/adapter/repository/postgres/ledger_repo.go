package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const insertEntrySQL = `
	INSERT INTO ledger_entries (
		id, group_id, cycle_id, member_id, meeting_id,
		source, amount, transaction_date, description, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// CreatePair inserts both sides of a balanced pair inside the transaction.
func (r *LedgerRepository) CreatePair(ctx context.Context, tx usecase.Transaction, pair *domain.PairedEntry) error {
	if !pair.Balanced() {
		return domain.ErrUnbalancedPair
	}

	pgxTx := tx.(*Tx).PgxTx()

	for _, entry := range pair.Entries() {
		_, err := pgxTx.Exec(ctx, insertEntrySQL,
			entry.ID,
			entry.GroupID,
			entry.CycleID,
			textOrNil(entry.MemberID),
			entry.MeetingID,
			string(entry.Source),
			decimalToNumeric(entry.Amount),
			timeToPgTimestamptz(entry.TransactionDate),
			entry.Description,
			timeToPgTimestamptz(entry.CreatedAt),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// DeleteByMeeting removes all entries a prior run of a meeting created.
func (r *LedgerRepository) DeleteByMeeting(ctx context.Context, tx usecase.Transaction, meetingID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM ledger_entries WHERE meeting_id = $1`, meetingID)

	return err
}

// SumByFilter sums entry amounts matching the filter. A nil member filter
// selects group-pool entries (member_id IS NULL), not all entries.
func (r *LedgerRepository) SumByFilter(ctx context.Context, f usecase.BalanceFilter) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE group_id = $1`
	args := []any{f.GroupID}

	if f.CycleID != nil {
		args = append(args, *f.CycleID)
		query += fmt.Sprintf(" AND cycle_id = $%d", len(args))
	}

	if f.MemberID != nil {
		args = append(args, *f.MemberID)
		query += fmt.Sprintf(" AND member_id = $%d", len(args))
	} else {
		query += " AND member_id IS NULL"
	}

	if f.Source != nil {
		args = append(args, string(*f.Source))
		query += fmt.Sprintf(" AND source = $%d", len(args))
	}

	var sum pgtype.Numeric
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// ListByGroup lists a group's entries, newest first.
func (r *LedgerRepository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, group_id, cycle_id, member_id, meeting_id,
		       source, amount, transaction_date, description, created_at
		FROM ledger_entries
		WHERE group_id = $1
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2 OFFSET $3`,
		groupID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry

	for rows.Next() {
		var (
			entry     domain.LedgerEntry
			memberID  pgtype.Text
			amount    pgtype.Numeric
			txDate    pgtype.Timestamptz
			createdAt pgtype.Timestamptz
			source    string
		)

		err := rows.Scan(
			&entry.ID,
			&entry.GroupID,
			&entry.CycleID,
			&memberID,
			&entry.MeetingID,
			&source,
			&amount,
			&txDate,
			&entry.Description,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entry.MemberID = textToStringPtr(memberID)
		entry.Source = domain.EntrySource(source)
		entry.Amount = numericToDecimal(amount)
		entry.TransactionDate = txDate.Time
		entry.CreatedAt = createdAt.Time

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

const pairTotalsSQL = `
	SELECT
		COALESCE(SUM(amount) FILTER (WHERE member_id IS NULL), 0),
		COALESCE(SUM(amount) FILTER (WHERE member_id IS NOT NULL), 0)
	FROM ledger_entries`

// CheckConsistency returns ledger-wide group-side and member-side totals.
func (r *LedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var groupTotal, memberTotal pgtype.Numeric

	err := r.pool.QueryRow(ctx, pairTotalsSQL).Scan(&groupTotal, &memberTotal)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(groupTotal), numericToDecimal(memberTotal), nil
}

// SumPairTotals returns group-side and member-side totals for one group.
func (r *LedgerRepository) SumPairTotals(ctx context.Context, groupID string) (decimal.Decimal, decimal.Decimal, error) {
	var groupTotal, memberTotal pgtype.Numeric

	err := r.pool.QueryRow(ctx, pairTotalsSQL+` WHERE group_id = $1`, groupID).Scan(&groupTotal, &memberTotal)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(groupTotal), numericToDecimal(memberTotal), nil
}
