package domain

import "errors"

var (
	// Ledger errors
	ErrInvalidSource  = errors.New("unknown ledger entry source")
	ErrZeroAmount     = errors.New("amount must be nonzero")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrMissingGroup   = errors.New("group and cycle are required")
	ErrMissingMember  = errors.New("member is required")
	ErrUnbalancedPair = errors.New("ledger pair is not balanced")

	// Member errors
	ErrMemberNotFound = errors.New("member not found")

	// Loan errors
	ErrLoanNotFound            = errors.New("loan not found")
	ErrLoanNotActive           = errors.New("loan is not active")
	ErrInvalidInterestRate     = errors.New("interest rate must not be negative")
	ErrInvalidDuration         = errors.New("loan duration must be positive")
	ErrRepaymentExceedsBalance = errors.New("repayment exceeds outstanding balance")

	// Social fund errors
	ErrInsufficientSocialFund = errors.New("withdrawal exceeds social fund balance")
	ErrInvalidFundType        = errors.New("unknown social fund transaction type")

	// Meeting errors
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrInvalidMeeting  = errors.New("meeting is missing required fields")
)
