package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mulisa/vsla-ledger/internal/adapter/http/dto"
	"github.com/mulisa/vsla-ledger/internal/domain"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

type fakeMeetingService struct {
	processFn func(ctx context.Context, meeting domain.Meeting) (*usecase.MeetingResult, error)
	lastInput domain.Meeting
}

func (f *fakeMeetingService) ProcessMeeting(ctx context.Context, meeting domain.Meeting) (*usecase.MeetingResult, error) {
	f.lastInput = meeting
	if f.processFn != nil {
		return f.processFn(ctx, meeting)
	}
	return &usecase.MeetingResult{MeetingID: meeting.ID, Success: true}, nil
}

func TestMeetingHandler_Process(t *testing.T) {
	svc := &fakeMeetingService{
		processFn: func(ctx context.Context, meeting domain.Meeting) (*usecase.MeetingResult, error) {
			return &usecase.MeetingResult{
				MeetingID:       meeting.ID,
				SharesProcessed: 1,
				Success:         true,
			}, nil
		},
	}
	h := NewMeetingHandler(svc, nil)

	body := `{
		"meeting_id": "mtg-1",
		"group_id": "grp-1",
		"cycle_id": "cyc-1",
		"meeting_date": "2026-03-14T00:00:00Z",
		"share_purchases": [
			{"member_id": "mbr-1", "quantity": 2, "amount_paid": "100000"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/meetings/process", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Process(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dto.MeetingResultResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.MeetingID != "mtg-1" || resp.SharesProcessed != 1 || !resp.Success {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if len(svc.lastInput.Shares) != 1 || svc.lastInput.Shares[0].MemberID != "mbr-1" {
		t.Fatalf("expected share line item to reach the service, got %+v", svc.lastInput)
	}
}

func TestMeetingHandler_ProcessInvalidBody(t *testing.T) {
	h := NewMeetingHandler(&fakeMeetingService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/meetings/process", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	h.Process(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestMeetingHandler_ProcessInvalidMeeting(t *testing.T) {
	svc := &fakeMeetingService{
		processFn: func(ctx context.Context, meeting domain.Meeting) (*usecase.MeetingResult, error) {
			return nil, domain.ErrInvalidMeeting
		},
	}
	h := NewMeetingHandler(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/meetings/process", strings.NewReader(`{"meeting_id":""}`))
	rr := httptest.NewRecorder()

	h.Process(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid meeting, got %d", rr.Code)
	}
}

func TestMeetingHandler_ProcessReportsLineItemErrors(t *testing.T) {
	svc := &fakeMeetingService{
		processFn: func(ctx context.Context, meeting domain.Meeting) (*usecase.MeetingResult, error) {
			return &usecase.MeetingResult{
				MeetingID: meeting.ID,
				Errors:    []string{"share purchase 0: invalid amount"},
				Success:   true,
			}, nil
		},
	}
	h := NewMeetingHandler(svc, nil)

	body := `{"meeting_id":"mtg-1","group_id":"grp-1","cycle_id":"cyc-1","meeting_date":"2026-03-14T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/meetings/process", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Process(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for partial failure, got %d", rr.Code)
	}

	var resp dto.MeetingResultResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Errors) != 1 || !resp.Success {
		t.Fatalf("expected per-line errors alongside success, got %+v", resp)
	}
}
