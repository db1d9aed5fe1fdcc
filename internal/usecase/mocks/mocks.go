package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// MockTx is a no-op transaction.
type MockTx struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (t *MockTx) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTx) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTxManager hands out MockTx transactions.
type MockTxManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu  sync.Mutex
	Txs []*MockTx
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTx{}
	m.Txs = append(m.Txs, tx)
	return tx, nil
}

// MockRetrier runs the operation once with no backoff.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu   sync.Mutex
	next int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "id-" + itoa(m.next)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}

// MockCache is an in-memory cache without TTL expiry.
type MockCache struct {
	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error

	mu    sync.RWMutex
	items map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// MockLedgerRepository stores ledger entries in memory and answers sum
// queries the way the SQL repository would.
type MockLedgerRepository struct {
	CreatePairFunc func(ctx context.Context, tx usecase.Transaction, pair *domain.PairedEntry) error

	mu      sync.RWMutex
	entries []*domain.LedgerEntry
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

func (m *MockLedgerRepository) CreatePair(ctx context.Context, tx usecase.Transaction, pair *domain.PairedEntry) error {
	if m.CreatePairFunc != nil {
		return m.CreatePairFunc(ctx, tx, pair)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	group := pair.GroupEntry
	member := pair.MemberEntry
	m.entries = append(m.entries, &group, &member)
	return nil
}

func (m *MockLedgerRepository) DeleteByMeeting(ctx context.Context, tx usecase.Transaction, meetingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.MeetingID != meetingID {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

func (m *MockLedgerRepository) SumByFilter(ctx context.Context, f usecase.BalanceFilter) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, e := range m.entries {
		if e.GroupID != f.GroupID {
			continue
		}
		if f.CycleID != nil && e.CycleID != *f.CycleID {
			continue
		}
		if f.MemberID == nil {
			if e.MemberID != nil {
				continue
			}
		} else if e.MemberID == nil || *e.MemberID != *f.MemberID {
			continue
		}
		if f.Source != nil && e.Source != *f.Source {
			continue
		}
		sum = sum.Add(e.Amount)
	}
	return sum, nil
}

func (m *MockLedgerRepository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.LedgerEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.GroupID == groupID {
			out = append(out, e)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockLedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	groupTotal, memberTotal := decimal.Zero, decimal.Zero
	for _, e := range m.entries {
		if e.MemberID == nil {
			groupTotal = groupTotal.Add(e.Amount)
		} else {
			memberTotal = memberTotal.Add(e.Amount)
		}
	}
	return groupTotal, memberTotal, nil
}

func (m *MockLedgerRepository) SumPairTotals(ctx context.Context, groupID string) (decimal.Decimal, decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	groupTotal, memberTotal := decimal.Zero, decimal.Zero
	for _, e := range m.entries {
		if e.GroupID != groupID {
			continue
		}
		if e.MemberID == nil {
			groupTotal = groupTotal.Add(e.Amount)
		} else {
			memberTotal = memberTotal.Add(e.Amount)
		}
	}
	return groupTotal, memberTotal, nil
}

// Entries returns a snapshot of stored entries.
func (m *MockLedgerRepository) Entries() []*domain.LedgerEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.LedgerEntry(nil), m.entries...)
}

// MockLoanRepository stores loans in memory.
type MockLoanRepository struct {
	CreateFunc           func(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Loan, error)

	mu    sync.RWMutex
	loans map[string]*domain.Loan
}

func NewMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{loans: make(map[string]*domain.Loan)}
}

func (m *MockLoanRepository) Create(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, loan)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *loan
	m.loans[loan.ID] = &cp
	return nil
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if loan, ok := m.loans[id]; ok {
		cp := *loan
		return &cp, nil
	}
	return nil, domain.ErrLoanNotFound
}

func (m *MockLoanRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Loan, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockLoanRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, status domain.LoanStatus, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	loan, ok := m.loans[id]
	if !ok {
		return domain.ErrLoanNotFound
	}
	loan.Balance = balance
	loan.Status = status
	loan.UpdatedAt = updatedAt
	return nil
}

func (m *MockLoanRepository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.Loan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Loan
	for _, loan := range m.loans {
		if loan.GroupID == groupID {
			cp := *loan
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockLoanRepository) DeleteByMeeting(ctx context.Context, tx usecase.Transaction, meetingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, loan := range m.loans {
		if loan.MeetingID == meetingID {
			delete(m.loans, id)
		}
	}
	return nil
}

// MockLoanTransactionRepository stores loan transactions in memory. It
// consults the loan repository for DeleteByMeeting, mirroring the SQL
// repository's join on loans.
type MockLoanTransactionRepository struct {
	CreateFunc func(ctx context.Context, tx usecase.Transaction, loanTx *domain.LoanTransaction) error

	loanRepo *MockLoanRepository
	mu       sync.RWMutex
	txs      []*domain.LoanTransaction
}

func NewMockLoanTransactionRepository(loanRepo *MockLoanRepository) *MockLoanTransactionRepository {
	return &MockLoanTransactionRepository{loanRepo: loanRepo}
}

func (m *MockLoanTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, loanTx *domain.LoanTransaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, loanTx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *loanTx
	m.txs = append(m.txs, &cp)
	return nil
}

func (m *MockLoanTransactionRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.LoanTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.LoanTransaction
	for _, t := range m.txs {
		if t.LoanID == loanID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockLoanTransactionRepository) DeleteByMeeting(ctx context.Context, tx usecase.Transaction, meetingID string) error {
	meetingOf := make(map[string]string)
	if m.loanRepo != nil {
		m.loanRepo.mu.RLock()
		for id, loan := range m.loanRepo.loans {
			meetingOf[id] = loan.MeetingID
		}
		m.loanRepo.mu.RUnlock()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.txs[:0]
	for _, t := range m.txs {
		if meetingOf[t.LoanID] != meetingID {
			kept = append(kept, t)
		}
	}
	m.txs = kept
	return nil
}

// Transactions returns a snapshot of stored loan transactions.
func (m *MockLoanTransactionRepository) Transactions() []*domain.LoanTransaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.LoanTransaction(nil), m.txs...)
}

// MockShareRepository stores share purchases in memory.
type MockShareRepository struct {
	CreateFunc func(ctx context.Context, tx usecase.Transaction, share *domain.Share) error

	mu     sync.RWMutex
	shares []*domain.Share
}

func NewMockShareRepository() *MockShareRepository {
	return &MockShareRepository{}
}

func (m *MockShareRepository) Create(ctx context.Context, tx usecase.Transaction, share *domain.Share) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, share)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *share
	m.shares = append(m.shares, &cp)
	return nil
}

func (m *MockShareRepository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.Share, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Share
	for _, s := range m.shares {
		if s.GroupID == groupID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockShareRepository) DeleteByMeeting(ctx context.Context, tx usecase.Transaction, meetingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.shares[:0]
	for _, s := range m.shares {
		if s.MeetingID != meetingID {
			kept = append(kept, s)
		}
	}
	m.shares = kept
	return nil
}

// Shares returns a snapshot of stored share purchases.
func (m *MockShareRepository) Shares() []*domain.Share {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Share(nil), m.shares...)
}

// MockSocialFundRepository stores social fund transactions in memory.
type MockSocialFundRepository struct {
	CreateFunc func(ctx context.Context, tx usecase.Transaction, fundTx *domain.SocialFundTransaction) error

	mu  sync.RWMutex
	txs []*domain.SocialFundTransaction
}

func NewMockSocialFundRepository() *MockSocialFundRepository {
	return &MockSocialFundRepository{}
}

func (m *MockSocialFundRepository) Create(ctx context.Context, tx usecase.Transaction, fundTx *domain.SocialFundTransaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, fundTx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *fundTx
	m.txs = append(m.txs, &cp)
	return nil
}

func (m *MockSocialFundRepository) SumByGroupCycle(ctx context.Context, tx usecase.Transaction, groupID, cycleID string) (decimal.Decimal, error) {
	return m.Sum(ctx, groupID, cycleID)
}

func (m *MockSocialFundRepository) Sum(ctx context.Context, groupID, cycleID string) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, t := range m.txs {
		if t.GroupID == groupID && t.CycleID == cycleID {
			sum = sum.Add(t.Amount)
		}
	}
	return sum, nil
}

func (m *MockSocialFundRepository) DeleteByMeeting(ctx context.Context, tx usecase.Transaction, meetingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.txs[:0]
	for _, t := range m.txs {
		if t.MeetingID != meetingID {
			kept = append(kept, t)
		}
	}
	m.txs = kept
	return nil
}

// Transactions returns a snapshot of stored fund rows.
func (m *MockSocialFundRepository) Transactions() []*domain.SocialFundTransaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.SocialFundTransaction(nil), m.txs...)
}

// MockMemberRepository stores members in memory.
type MockMemberRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Member, error)

	mu      sync.RWMutex
	members map[string]*domain.Member
}

func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{members: make(map[string]*domain.Member)}
}

// Add registers a member.
func (m *MockMemberRepository) Add(member *domain.Member) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.ID] = member
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if member, ok := m.members[id]; ok {
		return member, nil
	}
	return nil, domain.ErrMemberNotFound
}

func (m *MockMemberRepository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Member
	for _, member := range m.members {
		if member.GroupID == groupID {
			out = append(out, member)
		}
	}
	return out, nil
}

// MockMeetingRepository stores processed meeting records in memory.
type MockMeetingRepository struct {
	UpsertFunc func(ctx context.Context, tx usecase.Transaction, meeting *domain.Meeting, processedAt time.Time) error

	mu       sync.RWMutex
	meetings map[string]*domain.Meeting
}

func NewMockMeetingRepository() *MockMeetingRepository {
	return &MockMeetingRepository{meetings: make(map[string]*domain.Meeting)}
}

func (m *MockMeetingRepository) Upsert(ctx context.Context, tx usecase.Transaction, meeting *domain.Meeting, processedAt time.Time) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, tx, meeting, processedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.meetings[meeting.ID] = meeting
	return nil
}

func (m *MockMeetingRepository) Exists(ctx context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.meetings[id]
	return ok, nil
}
