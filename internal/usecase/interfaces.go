package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
)

// BalanceFilter selects the ledger entries summed by a balance query.
// CycleID, MemberID and Source are optional; nil means unfiltered.
type BalanceFilter struct {
	GroupID  string
	CycleID  *string
	MemberID *string
	Source   *domain.EntrySource
}

// LedgerRepository defines data access for ledger entries. Entries are only
// ever written in balanced pairs and never updated in place.
type LedgerRepository interface {
	CreatePair(ctx context.Context, tx Transaction, pair *domain.PairedEntry) error
	DeleteByMeeting(ctx context.Context, tx Transaction, meetingID string) error
	SumByFilter(ctx context.Context, f BalanceFilter) (decimal.Decimal, error)
	ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.LedgerEntry, error)
	// CheckConsistency returns the total of group-scoped amounts and the
	// total of member-scoped amounts across the whole ledger.
	CheckConsistency(ctx context.Context) (groupTotal, memberTotal decimal.Decimal, err error)
	// SumPairTotals returns the same totals scoped to one group.
	SumPairTotals(ctx context.Context, groupID string) (groupTotal, memberTotal decimal.Decimal, err error)
}

// LoanRepository defines data access for loans.
type LoanRepository interface {
	Create(ctx context.Context, tx Transaction, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Loan, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, status domain.LoanStatus, updatedAt time.Time) error
	ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.Loan, error)
	DeleteByMeeting(ctx context.Context, tx Transaction, meetingID string) error
}

// LoanTransactionRepository defines data access for per-loan transactions.
type LoanTransactionRepository interface {
	Create(ctx context.Context, tx Transaction, loanTx *domain.LoanTransaction) error
	ListByLoan(ctx context.Context, loanID string) ([]*domain.LoanTransaction, error)
	DeleteByMeeting(ctx context.Context, tx Transaction, meetingID string) error
}

// ShareRepository defines data access for share purchases.
type ShareRepository interface {
	Create(ctx context.Context, tx Transaction, share *domain.Share) error
	ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.Share, error)
	DeleteByMeeting(ctx context.Context, tx Transaction, meetingID string) error
}

// SocialFundRepository defines data access for social fund transactions.
type SocialFundRepository interface {
	Create(ctx context.Context, tx Transaction, fundTx *domain.SocialFundTransaction) error
	// SumByGroupCycle sums fund rows for a group and cycle. It runs inside
	// the given transaction so the withdrawal guard sees a consistent view.
	SumByGroupCycle(ctx context.Context, tx Transaction, groupID, cycleID string) (decimal.Decimal, error)
	Sum(ctx context.Context, groupID, cycleID string) (decimal.Decimal, error)
	DeleteByMeeting(ctx context.Context, tx Transaction, meetingID string) error
}

// MemberRepository defines data access for group members.
type MemberRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.Member, error)
}

// MeetingRepository defines data access for processed meeting records.
type MeetingRepository interface {
	Upsert(ctx context.Context, tx Transaction, meeting *domain.Meeting, processedAt time.Time) error
	Exists(ctx context.Context, id string) (bool, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient database errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
