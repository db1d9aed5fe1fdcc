package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// LoanRepository implements usecase.LoanRepository.
type LoanRepository struct {
	pool *pgxpool.Pool
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

const loanColumns = `
	id, group_id, cycle_id, member_id, meeting_id,
	principal, interest_rate, duration_months, total_due, balance,
	purpose, disbursed_at, due_date, status, created_at, updated_at`

// Create inserts a loan inside the transaction.
func (r *LoanRepository) Create(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO loans (`+loanColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		loan.ID,
		loan.GroupID,
		loan.CycleID,
		loan.MemberID,
		loan.MeetingID,
		decimalToNumeric(loan.Principal),
		decimalToNumeric(loan.InterestRate),
		loan.DurationMonths,
		decimalToNumeric(loan.TotalDue),
		decimalToNumeric(loan.Balance),
		loan.Purpose,
		timeToPgTimestamptz(loan.DisbursedAt),
		timeToPgTimestamptz(loan.DueDate),
		string(loan.Status),
		timeToPgTimestamptz(loan.CreatedAt),
		timeToPgTimestamptz(loan.UpdatedAt),
	)

	return err
}

// GetByID retrieves a loan by ID.
func (r *LoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1`, id)

	return scanLoan(row)
}

// GetByIDForUpdate retrieves a loan with a FOR UPDATE lock.
func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Loan, error) {
	pgxTx := tx.(*Tx).PgxTx()
	row := pgxTx.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1 FOR UPDATE`, id)

	return scanLoan(row)
}

// UpdateBalance updates a loan's running balance and status.
func (r *LoanRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, status domain.LoanStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		UPDATE loans SET balance = $2, status = $3, updated_at = $4 WHERE id = $1`,
		id,
		decimalToNumeric(balance),
		string(status),
		timeToPgTimestamptz(updatedAt),
	)

	return err
}

// ListByGroup lists a group's loans, newest first.
func (r *LoanRepository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.Loan, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+loanColumns+`
		FROM loans
		WHERE group_id = $1
		ORDER BY disbursed_at DESC, created_at DESC
		LIMIT $2 OFFSET $3`,
		groupID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []*domain.Loan

	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}

		loans = append(loans, loan)
	}

	return loans, rows.Err()
}

// DeleteByMeeting removes loans a prior run of a meeting created.
func (r *LoanRepository) DeleteByMeeting(ctx context.Context, tx usecase.Transaction, meetingID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM loans WHERE meeting_id = $1`, meetingID)

	return err
}

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var (
		loan                               domain.Loan
		principal, rate, totalDue, balance pgtype.Numeric
		disbursedAt, dueDate               pgtype.Timestamptz
		createdAt, updatedAt               pgtype.Timestamptz
		status                             string
	)

	err := row.Scan(
		&loan.ID,
		&loan.GroupID,
		&loan.CycleID,
		&loan.MemberID,
		&loan.MeetingID,
		&principal,
		&rate,
		&loan.DurationMonths,
		&totalDue,
		&balance,
		&loan.Purpose,
		&disbursedAt,
		&dueDate,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}

		return nil, err
	}

	loan.Principal = numericToDecimal(principal)
	loan.InterestRate = numericToDecimal(rate)
	loan.TotalDue = numericToDecimal(totalDue)
	loan.Balance = numericToDecimal(balance)
	loan.DisbursedAt = disbursedAt.Time
	loan.DueDate = dueDate.Time
	loan.Status = domain.LoanStatus(status)
	loan.CreatedAt = createdAt.Time
	loan.UpdatedAt = updatedAt.Time

	return &loan, nil
}
