package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/response"
)

// SearchParticipants handles GET /checkin/participants?query=&event_code=.
func (h *Handlers) SearchParticipants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	eventCode := r.URL.Query().Get("event_code")
	if eventCode == "" {
		response.BadRequest(w, "event_code is required")
		return
	}

	participants, err := h.checkins.Search(r.Context(), query, eventCode)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"data": participants})
}

type checkInRequest struct {
	ParticipantID string `json:"participant_id"`
	Day           int    `json:"day"`
	AttendCount   int    `json:"attend_count"`
}

// SubmitCheckIn handles POST /checkin. A duplicate confirmation for the
// same participant and day returns 409 with a friendly message instead of
// the raw constraint error.
func (h *Handlers) SubmitCheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if req.ParticipantID == "" {
		response.BadRequest(w, "participant_id is required")
		return
	}

	checkin, err := h.checkins.Submit(r.Context(), req.ParticipantID, req.Day, req.AttendCount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyCheckedIn):
			response.Conflict(w, "Already checked in for today.")
		case errors.Is(err, domain.ErrNotFound):
			response.NotFound(w, "Participant not found.")
		default:
			response.BadRequest(w, err.Error())
		}
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "data": checkin})
}

type updateCheckInRequest struct {
	AttendCount int `json:"attend_count"`
}

// UpdateCheckIn handles PATCH /checkin/{participantID}/{day}: head-count
// correction on an existing check-in.
func (h *Handlers) UpdateCheckIn(w http.ResponseWriter, r *http.Request) {
	participantID := chi.URLParam(r, "participantID")
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		response.BadRequest(w, "Invalid day")
		return
	}

	var req updateCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	checkin, err := h.checkins.UpdateCount(r.Context(), participantID, day, req.AttendCount)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "No check-in found for that day.")
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "data": checkin})
}
