package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mulisa/vsla-ledger/internal/adapter/http/dto"
	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/infrastructure/metrics"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// LoanService handles the loan lifecycle after disbursement.
type LoanService interface {
	RecordRepayment(ctx context.Context, input usecase.RecordRepaymentInput) (*domain.Loan, error)
	MarkDefaulted(ctx context.Context, loanID string) (*domain.Loan, error)
	GetLoan(ctx context.Context, id string) (*domain.Loan, error)
	ListLoansByGroup(ctx context.Context, input usecase.ListLoansByGroupInput) ([]*domain.Loan, error)
	GetLoanTransactions(ctx context.Context, loanID string) ([]*domain.LoanTransaction, error)
}

// LoanHandler handles loan-related HTTP requests.
type LoanHandler struct {
	loanUC  LoanService
	metrics *metrics.Metrics
}

// NewLoanHandler creates a new LoanHandler. Metrics may be nil.
func NewLoanHandler(loanUC LoanService, m *metrics.Metrics) *LoanHandler {
	return &LoanHandler{loanUC: loanUC, metrics: m}
}

// Get retrieves a loan by ID with its status evaluated as of now.
func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	loan, err := h.loanUC.GetLoan(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get loan", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.LoanFromDomain(loan))
}

// ListByGroup lists a group's loans.
func (h *LoanHandler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	if groupID == "" {
		writeError(w, http.StatusBadRequest, "missing group ID", "")
		return
	}

	loans, err := h.loanUC.ListLoansByGroup(r.Context(), usecase.ListLoansByGroupInput{
		GroupID: groupID,
		Limit:   parseIntQuery(r, "limit", 0),
		Offset:  parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list loans", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoansFromDomain(loans))
}

// Repay records a repayment against a loan.
func (h *LoanHandler) Repay(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")
	if loanID == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	var req dto.RecordRepaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	loan, err := h.loanUC.RecordRepayment(r.Context(), req.ToUseCaseInput(loanID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record repayment", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.RepaymentsRecorded.Inc()
		h.metrics.RepaymentAmount.Observe(req.Amount.InexactFloat64())
	}

	writeJSON(w, http.StatusCreated, dto.LoanFromDomain(loan))
}

// Default marks a loan as defaulted. This is an explicit administrative
// action; loans never default automatically.
func (h *LoanHandler) Default(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")
	if loanID == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	loan, err := h.loanUC.MarkDefaulted(r.Context(), loanID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to mark loan defaulted", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.LoansDefaulted.Inc()
	}

	writeJSON(w, http.StatusOK, dto.LoanFromDomain(loan))
}

// Transactions lists the signed transaction rows for a loan.
func (h *LoanHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")
	if loanID == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	txs, err := h.loanUC.GetLoanTransactions(r.Context(), loanID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list loan transactions", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.LoanTransactionsFromDomain(txs))
}
