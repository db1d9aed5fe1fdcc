package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// LoanTransactionRepository implements usecase.LoanTransactionRepository.
type LoanTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewLoanTransactionRepository creates a new LoanTransactionRepository.
func NewLoanTransactionRepository(pool *pgxpool.Pool) *LoanTransactionRepository {
	return &LoanTransactionRepository{pool: pool}
}

// Create inserts a loan transaction inside the transaction.
func (r *LoanTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, loanTx *domain.LoanTransaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO loan_transactions (id, loan_id, type, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		loanTx.ID,
		loanTx.LoanID,
		string(loanTx.Type),
		decimalToNumeric(loanTx.Amount),
		loanTx.Description,
		timeToPgTimestamptz(loanTx.CreatedAt),
	)

	return err
}

// ListByLoan lists a loan's transactions in insertion order.
func (r *LoanTransactionRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.LoanTransaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, loan_id, type, amount, description, created_at
		FROM loan_transactions
		WHERE loan_id = $1
		ORDER BY created_at, id`,
		loanID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*domain.LoanTransaction

	for rows.Next() {
		var (
			loanTx    domain.LoanTransaction
			txType    string
			amount    pgtype.Numeric
			createdAt pgtype.Timestamptz
		)

		err := rows.Scan(&loanTx.ID, &loanTx.LoanID, &txType, &amount, &loanTx.Description, &createdAt)
		if err != nil {
			return nil, err
		}

		loanTx.Type = domain.LoanTransactionType(txType)
		loanTx.Amount = numericToDecimal(amount)
		loanTx.CreatedAt = createdAt.Time

		txs = append(txs, &loanTx)
	}

	return txs, rows.Err()
}

// DeleteByMeeting removes transactions belonging to loans a prior run of
// the meeting created.
func (r *LoanTransactionRepository) DeleteByMeeting(ctx context.Context, tx usecase.Transaction, meetingID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		DELETE FROM loan_transactions
		WHERE loan_id IN (SELECT id FROM loans WHERE meeting_id = $1)`,
		meetingID,
	)

	return err
}
