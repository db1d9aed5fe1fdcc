package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mulisa/vsla-ledger/internal/adapter/http/dto"
	"github.com/mulisa/vsla-ledger/internal/infrastructure/metrics"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// ReconciliationService verifies the ledger's pairing invariant.
type ReconciliationService interface {
	CheckConsistency(ctx context.Context) (bool, error)
	ReconcileGroup(ctx context.Context, groupID string) (*usecase.GroupReconciliation, error)
}

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	reconciliationUC ReconciliationService
	metrics          *metrics.Metrics
}

// NewLedgerHandler creates a new LedgerHandler. Metrics may be nil.
func NewLedgerHandler(reconciliationUC ReconciliationService, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{reconciliationUC: reconciliationUC, metrics: m}
}

// CheckConsistency verifies that group-side and member-side entry totals
// match across the whole ledger.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	consistent, err := h.reconciliationUC.CheckConsistency(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrInconsistentLedger) {
			if h.metrics != nil {
				h.metrics.ConsistencyChecks.WithLabelValues("inconsistent").Inc()
			}

			writeJSON(w, http.StatusConflict, dto.ConsistencyResponse{
				Consistent: false,
				Detail:     err.Error(),
			})
			return
		}

		writeError(w, http.StatusInternalServerError, "failed to check consistency", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.ConsistencyChecks.WithLabelValues("consistent").Inc()
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{Consistent: consistent})
}

// ReconcileGroup reports one group's pairing totals.
func (h *LedgerHandler) ReconcileGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	if groupID == "" {
		writeError(w, http.StatusBadRequest, "missing group ID", "")
		return
	}

	rec, err := h.reconciliationUC.ReconcileGroup(r.Context(), groupID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reconcile group", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationFromUseCase(rec))
}
