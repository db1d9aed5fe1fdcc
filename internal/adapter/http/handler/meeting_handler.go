package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mulisa/vsla-ledger/internal/adapter/http/dto"
	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/infrastructure/metrics"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// MeetingService processes submitted meeting records.
type MeetingService interface {
	ProcessMeeting(ctx context.Context, meeting domain.Meeting) (*usecase.MeetingResult, error)
}

// MeetingHandler handles meeting-related HTTP requests.
type MeetingHandler struct {
	meetingUC MeetingService
	metrics   *metrics.Metrics
}

// NewMeetingHandler creates a new MeetingHandler. Metrics may be nil.
func NewMeetingHandler(meetingUC MeetingService, m *metrics.Metrics) *MeetingHandler {
	return &MeetingHandler{meetingUC: meetingUC, metrics: m}
}

// Process processes a meeting record. Resubmitting the same meeting ID
// replaces the previous run's rows, so the endpoint is safe to retry.
func (h *MeetingHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	start := time.Now()

	result, err := h.meetingUC.ProcessMeeting(r.Context(), req.ToDomain())
	if err != nil {
		if h.metrics != nil {
			h.metrics.ObserveMeeting(0, 0, 0, 0, false, time.Since(start).Seconds())
		}

		status := mapDomainError(err)
		writeError(w, status, "failed to process meeting", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.ObserveMeeting(
			result.SharesProcessed,
			result.LoansProcessed,
			result.SocialFundProcessed,
			len(result.Errors),
			result.Success,
			time.Since(start).Seconds(),
		)
	}

	writeJSON(w, http.StatusOK, dto.MeetingResultFromUseCase(result))
}
