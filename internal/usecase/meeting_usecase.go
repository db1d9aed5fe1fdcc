package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mulisa/vsla-ledger/internal/domain"
)

// MeetingUseCase processes submitted meeting records: share purchases, loan
// disbursements and social fund movements. Each valid line item produces one
// domain row plus a balanced pair of ledger entries. Invalid line items are
// recorded in the result and skipped; only infrastructure failures abort the
// whole meeting.
type MeetingUseCase struct {
	txManager      TransactionManager
	retrier        Retrier
	ledgerRepo     LedgerRepository
	loanRepo       LoanRepository
	loanTxRepo     LoanTransactionRepository
	shareRepo      ShareRepository
	socialFundRepo SocialFundRepository
	memberRepo     MemberRepository
	meetingRepo    MeetingRepository
	idGen          IDGenerator
	cache          Cache
}

// NewMeetingUseCase creates a new MeetingUseCase.
func NewMeetingUseCase(
	txManager TransactionManager,
	retrier Retrier,
	ledgerRepo LedgerRepository,
	loanRepo LoanRepository,
	loanTxRepo LoanTransactionRepository,
	shareRepo ShareRepository,
	socialFundRepo SocialFundRepository,
	memberRepo MemberRepository,
	meetingRepo MeetingRepository,
	idGen IDGenerator,
	cache Cache,
) *MeetingUseCase {
	return &MeetingUseCase{
		txManager:      txManager,
		retrier:        retrier,
		ledgerRepo:     ledgerRepo,
		loanRepo:       loanRepo,
		loanTxRepo:     loanTxRepo,
		shareRepo:      shareRepo,
		socialFundRepo: socialFundRepo,
		memberRepo:     memberRepo,
		meetingRepo:    meetingRepo,
		idGen:          idGen,
		cache:          cache,
	}
}

// MeetingResult reports the outcome of processing one meeting.
type MeetingResult struct {
	MeetingID           string
	SharesProcessed     int
	LoansProcessed      int
	SocialFundProcessed int
	Warnings            []string
	Errors              []string
	Success             bool
}

type validatedShare struct {
	item domain.ShareLineItem
}

type validatedLoan struct {
	item domain.LoanLineItem
}

type validatedFund struct {
	item domain.SocialFundLineItem
}

// ProcessMeeting processes a meeting's line items inside one database
// transaction. Reprocessing the same meeting ID first deletes all rows the
// previous run created, so resubmission is idempotent.
func (uc *MeetingUseCase) ProcessMeeting(ctx context.Context, meeting domain.Meeting) (*MeetingResult, error) {
	if err := meeting.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	result := &MeetingResult{MeetingID: meeting.ID}

	// Validate line items and resolve members before touching the database
	// transaction. Validation failures never roll back valid siblings.
	shares := uc.validateShares(ctx, meeting, result)
	loans := uc.validateLoans(ctx, meeting, result)
	fund := uc.validateSocialFund(ctx, meeting, result)

	var committed *MeetingResult

	err := uc.retrier.Retry(ctx, func() error {
		// Each attempt gets its own copy of the validation findings so a
		// retried transaction does not double-append.
		attempt := &MeetingResult{
			MeetingID: meeting.ID,
			Warnings:  append([]string(nil), result.Warnings...),
			Errors:    append([]string(nil), result.Errors...),
		}

		if err := uc.processInTx(ctx, meeting, shares, loans, fund, attempt); err != nil {
			return err
		}

		committed = attempt

		return nil
	})
	if err != nil {
		return nil, err
	}

	committed.Success = true

	uc.invalidateBalances(ctx, meeting.GroupID)

	return committed, nil
}

func (uc *MeetingUseCase) processInTx(
	ctx context.Context,
	meeting domain.Meeting,
	shares []validatedShare,
	loans []validatedLoan,
	fund []validatedFund,
	result *MeetingResult,
) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()

	if err := uc.meetingRepo.Upsert(ctx, tx, &meeting, now); err != nil {
		return err
	}

	// Idempotent reprocessing: drop everything a previous run of this
	// meeting wrote. Loan transactions go first (they reference loans).
	if err := uc.ledgerRepo.DeleteByMeeting(ctx, tx, meeting.ID); err != nil {
		return err
	}

	if err := uc.loanTxRepo.DeleteByMeeting(ctx, tx, meeting.ID); err != nil {
		return err
	}

	if err := uc.loanRepo.DeleteByMeeting(ctx, tx, meeting.ID); err != nil {
		return err
	}

	if err := uc.shareRepo.DeleteByMeeting(ctx, tx, meeting.ID); err != nil {
		return err
	}

	if err := uc.socialFundRepo.DeleteByMeeting(ctx, tx, meeting.ID); err != nil {
		return err
	}

	for _, vs := range shares {
		if err := uc.processShare(ctx, tx, meeting, vs.item, now); err != nil {
			return err
		}

		result.SharesProcessed++
	}

	for _, vl := range loans {
		if err := uc.processLoan(ctx, tx, meeting, vl.item, now); err != nil {
			return err
		}

		result.LoansProcessed++
	}

	if len(fund) > 0 {
		if err := uc.processSocialFund(ctx, tx, meeting, fund, now, result); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (uc *MeetingUseCase) validateShares(ctx context.Context, meeting domain.Meeting, result *MeetingResult) []validatedShare {
	var valid []validatedShare

	for i, li := range meeting.Shares {
		if err := li.Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("share purchase %d: %v", i, err))
			continue
		}

		if err := domain.ValidateAmount(li.AmountPaid); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("share purchase %d: %v", i, err))
			continue
		}

		if !uc.resolveMember(ctx, li.MemberID, fmt.Sprintf("share purchase %d", i), result) {
			continue
		}

		valid = append(valid, validatedShare{item: li})
	}

	return valid
}

func (uc *MeetingUseCase) validateLoans(ctx context.Context, meeting domain.Meeting, result *MeetingResult) []validatedLoan {
	var valid []validatedLoan

	for i, li := range meeting.Loans {
		if err := li.Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("loan %d: %v", i, err))
			continue
		}

		if err := domain.ValidateAmount(li.Principal); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("loan %d: %v", i, err))
			continue
		}

		if !uc.resolveMember(ctx, li.MemberID, fmt.Sprintf("loan %d", i), result) {
			continue
		}

		valid = append(valid, validatedLoan{item: li})
	}

	return valid
}

func (uc *MeetingUseCase) validateSocialFund(ctx context.Context, meeting domain.Meeting, result *MeetingResult) []validatedFund {
	var valid []validatedFund

	for i, li := range meeting.SocialFund {
		if err := li.Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("social fund %d: %v", i, err))
			continue
		}

		if !uc.resolveMember(ctx, li.MemberID, fmt.Sprintf("social fund %d", i), result) {
			continue
		}

		valid = append(valid, validatedFund{item: li})
	}

	return valid
}

// resolveMember checks that the member exists. A member with no recorded
// name is a consistency warning; processing continues on the canonical ID.
func (uc *MeetingUseCase) resolveMember(ctx context.Context, memberID, label string, result *MeetingResult) bool {
	member, err := uc.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: member %s not found", label, memberID))
			return false
		}

		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", label, err))

		return false
	}

	if member.Name == "" {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: member %s has no name on record", label, memberID))
	}

	return true
}

func (uc *MeetingUseCase) processShare(ctx context.Context, tx Transaction, meeting domain.Meeting, li domain.ShareLineItem, now time.Time) error {
	share := &domain.Share{
		ID:          uc.idGen.Generate(),
		GroupID:     meeting.GroupID,
		CycleID:     meeting.CycleID,
		MemberID:    li.MemberID,
		MeetingID:   meeting.ID,
		Quantity:    li.Quantity,
		AmountPaid:  li.AmountPaid,
		PurchasedAt: meeting.Date,
		CreatedAt:   now,
	}

	if err := uc.shareRepo.Create(ctx, tx, share); err != nil {
		return err
	}

	// Member pays in; group pool and member equity both go up.
	pair, err := domain.NewPairedEntry(domain.PairedEntryParams{
		GroupID:         meeting.GroupID,
		CycleID:         meeting.CycleID,
		MeetingID:       meeting.ID,
		MemberID:        li.MemberID,
		Source:          domain.SourceSharePurchase,
		Amount:          li.AmountPaid,
		TransactionDate: meeting.Date,
		Description:     fmt.Sprintf("purchase of %d shares", li.Quantity),
	})
	if err != nil {
		return err
	}

	return uc.createPair(ctx, tx, pair, now)
}

func (uc *MeetingUseCase) processLoan(ctx context.Context, tx Transaction, meeting domain.Meeting, li domain.LoanLineItem, now time.Time) error {
	totalDue := domain.TotalDue(li.Principal, li.InterestRate)

	loan := &domain.Loan{
		ID:             uc.idGen.Generate(),
		GroupID:        meeting.GroupID,
		CycleID:        meeting.CycleID,
		MemberID:       li.MemberID,
		MeetingID:      meeting.ID,
		Principal:      li.Principal,
		InterestRate:   li.InterestRate,
		DurationMonths: li.DurationMonths,
		TotalDue:       totalDue,
		Balance:        totalDue,
		Purpose:        li.Purpose,
		DisbursedAt:    meeting.Date,
		DueDate:        meeting.Date.AddDate(0, li.DurationMonths, 0),
		Status:         domain.LoanStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := loan.Validate(); err != nil {
		return err
	}

	if err := uc.loanRepo.Create(ctx, tx, loan); err != nil {
		return err
	}

	for _, loanTx := range domain.DisbursementTransactions(loan) {
		loanTx.ID = uc.idGen.Generate()
		loanTx.CreatedAt = now

		if err := uc.loanTxRepo.Create(ctx, tx, loanTx); err != nil {
			return err
		}
	}

	// Only the disbursed cash leaves the pool; the interest charge lives on
	// the loan transactions, not the ledger.
	pair, err := domain.NewPairedEntry(domain.PairedEntryParams{
		GroupID:         meeting.GroupID,
		CycleID:         meeting.CycleID,
		MeetingID:       meeting.ID,
		MemberID:        li.MemberID,
		Source:          domain.SourceLoanDisbursement,
		Amount:          li.Principal.Neg(),
		TransactionDate: meeting.Date,
		Description:     fmt.Sprintf("loan disbursement: %s", li.Purpose),
	})
	if err != nil {
		return err
	}

	return uc.createPair(ctx, tx, pair, now)
}

func (uc *MeetingUseCase) processSocialFund(
	ctx context.Context,
	tx Transaction,
	meeting domain.Meeting,
	items []validatedFund,
	now time.Time,
	result *MeetingResult,
) error {
	// The guard balance is read under the same transaction that writes, so
	// two concurrent withdrawals cannot both pass against a stale sum.
	fundBalance, err := uc.socialFundRepo.SumByGroupCycle(ctx, tx, meeting.GroupID, meeting.CycleID)
	if err != nil {
		return err
	}

	for i, vf := range items {
		li := vf.item

		amount := li.Amount
		source := domain.SourceSocialFundContribution

		if li.Type == domain.FundWithdrawal {
			if li.Amount.GreaterThan(fundBalance) {
				result.Errors = append(result.Errors, fmt.Sprintf(
					"social fund %d: %v (requested %s, available %s)",
					i, domain.ErrInsufficientSocialFund, li.Amount, fundBalance))

				continue
			}

			amount = li.Amount.Neg()
			source = domain.SourceSocialFundWithdrawal
		}

		fundTx := &domain.SocialFundTransaction{
			ID:              uc.idGen.Generate(),
			GroupID:         meeting.GroupID,
			CycleID:         meeting.CycleID,
			MemberID:        li.MemberID,
			MeetingID:       meeting.ID,
			Type:            li.Type,
			Amount:          amount,
			TransactionDate: meeting.Date,
			Description:     string(li.Type),
			Reason:          li.Reason,
			CreatedBy:       meeting.SubmittedBy,
			CreatedAt:       now,
		}

		if err := uc.socialFundRepo.Create(ctx, tx, fundTx); err != nil {
			return err
		}

		pair, err := domain.NewPairedEntry(domain.PairedEntryParams{
			GroupID:         meeting.GroupID,
			CycleID:         meeting.CycleID,
			MeetingID:       meeting.ID,
			MemberID:        li.MemberID,
			Source:          source,
			Amount:          amount,
			TransactionDate: meeting.Date,
			Description:     li.Reason,
		})
		if err != nil {
			return err
		}

		if err := uc.createPair(ctx, tx, pair, now); err != nil {
			return err
		}

		fundBalance = fundBalance.Add(amount)
		result.SocialFundProcessed++
	}

	return nil
}

func (uc *MeetingUseCase) createPair(ctx context.Context, tx Transaction, pair *domain.PairedEntry, now time.Time) error {
	pair.GroupEntry.ID = uc.idGen.Generate()
	pair.MemberEntry.ID = uc.idGen.Generate()
	pair.GroupEntry.CreatedAt = now
	pair.MemberEntry.CreatedAt = now

	if !pair.Balanced() {
		return domain.ErrUnbalancedPair
	}

	return uc.ledgerRepo.CreatePair(ctx, tx, pair)
}

// invalidateBalances drops the group-wide cached balance. Narrower cached
// filters expire via their TTL.
func (uc *MeetingUseCase) invalidateBalances(ctx context.Context, groupID string) {
	if uc.cache == nil {
		return
	}

	_ = uc.cache.Delete(ctx, balanceCacheKey(BalanceFilter{GroupID: groupID}))
}

func balanceCacheKey(f BalanceFilter) string {
	cycle, member, source := "-", "-", "-"

	if f.CycleID != nil {
		cycle = *f.CycleID
	}

	if f.MemberID != nil {
		member = *f.MemberID
	}

	if f.Source != nil {
		source = string(*f.Source)
	}

	return fmt.Sprintf("balance:%s:%s:%s:%s", f.GroupID, cycle, member, source)
}
