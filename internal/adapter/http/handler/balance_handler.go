package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mulisa/vsla-ledger/internal/adapter/http/dto"
	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// BalanceService computes balances and lists ledger entries.
type BalanceService interface {
	GetBalance(ctx context.Context, f usecase.BalanceFilter) (decimal.Decimal, error)
	GetSocialFundBalance(ctx context.Context, groupID, cycleID string) (decimal.Decimal, error)
	ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.LedgerEntry, error)
}

// BalanceHandler handles balance and ledger entry HTTP requests.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// GetGroupBalance returns a group's balance, optionally narrowed by
// cycle_id, member_id and source query parameters.
func (h *BalanceHandler) GetGroupBalance(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	if groupID == "" {
		writeError(w, http.StatusBadRequest, "missing group ID", "")
		return
	}

	filter := usecase.BalanceFilter{
		GroupID:  groupID,
		CycleID:  optionalQuery(r, "cycle_id"),
		MemberID: optionalQuery(r, "member_id"),
	}

	sourceParam := optionalQuery(r, "source")
	if sourceParam != nil {
		source := domain.EntrySource(*sourceParam)
		filter.Source = &source
	}

	balance, err := h.balanceUC.GetBalance(r.Context(), filter)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get balance", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		GroupID:  groupID,
		CycleID:  filter.CycleID,
		MemberID: filter.MemberID,
		Source:   sourceParam,
		Balance:  balance,
	})
}

// GetSocialFundBalance returns a group's social fund balance for a cycle.
func (h *BalanceHandler) GetSocialFundBalance(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	cycleID := r.URL.Query().Get("cycle_id")

	if groupID == "" || cycleID == "" {
		writeError(w, http.StatusBadRequest, "group ID and cycle_id are required", "")
		return
	}

	balance, err := h.balanceUC.GetSocialFundBalance(r.Context(), groupID, cycleID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get social fund balance", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.SocialFundBalanceResponse{
		GroupID: groupID,
		CycleID: cycleID,
		Balance: balance,
	})
}

// ListEntries lists a group's ledger entries, newest first.
func (h *BalanceHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	if groupID == "" {
		writeError(w, http.StatusBadRequest, "missing group ID", "")
		return
	}

	entries, err := h.balanceUC.ListEntries(r.Context(), usecase.ListEntriesInput{
		GroupID: groupID,
		Limit:   parseIntQuery(r, "limit", 0),
		Offset:  parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerEntriesFromDomain(entries))
}
