package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/importer"
	"github.com/growthops/checkin-api/internal/response"
)

// ListParticipants handles GET /admin/participants with paging and the
// name/phone, event and created-at range filters.
func (h *Handlers) ListParticipants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	filter := domain.ParticipantFilter{
		Query:     q.Get("query"),
		EventCode: q.Get("event_code"),
	}
	if v := q.Get("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "start_date must be YYYY-MM-DD")
			return
		}
		filter.StartDate = &t
	}
	if v := q.Get("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "end_date must be YYYY-MM-DD")
			return
		}
		filter.EndDate = &t
	}

	participants, total, err := h.participants.List(r.Context(), filter, page, pageSize)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"data":  participants,
		"count": total,
	})
}

func (h *Handlers) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	participant, err := h.participants.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Participant not found.")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"data": participant})
}

func (h *Handlers) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var rec importer.Record
	body := struct {
		EventCode        string  `json:"event_code"`
		Name             string  `json:"name"`
		Phone            string  `json:"phone"`
		Email            string  `json:"email"`
		Niche            string  `json:"niche"`
		State            string  `json:"state"`
		RegistrationDate *string `json:"registration_date"`
		TicketType       string  `json:"ticket_type"`
		TotalSales       *string `json:"total_sales"`
		Package          string  `json:"package"`
		PaymentStatus    string  `json:"payment_status"`
		PIC              string  `json:"pic"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	rec = importer.Record{
		EventCode:        body.EventCode,
		Name:             body.Name,
		Phone:            body.Phone,
		Email:            body.Email,
		Niche:            body.Niche,
		State:            body.State,
		RegistrationDate: body.RegistrationDate,
		TicketType:       body.TicketType,
		TotalSales:       body.TotalSales,
		Package:          body.Package,
		PaymentStatus:    body.PaymentStatus,
		PIC:              body.PIC,
	}

	participant, err := h.participants.Create(r.Context(), rec)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "data": participant})
}

type updateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// UpdateParticipant handles PATCH /admin/participants/{id}: a single-field
// inline edit.
func (h *Handlers) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if err := h.participants.UpdateField(r.Context(), id, req.Field, req.Value); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Participant not found.")
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ImportParticipants handles POST /admin/import. The CSV comes either as a
// multipart "file" part or as the raw request body.
func (h *Handlers) ImportParticipants(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Import.MaxUploadBytes)

	text, err := readUpload(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	summary, err := h.importer.Import(r.Context(), text)
	if err != nil {
		if errors.Is(err, importer.ErrEmptyCSV) {
			response.BadRequest(w, "CSV file is empty.")
			return
		}
		// Store errors pass through verbatim; the upload is re-triable.
		response.WriteError(w, http.StatusUnprocessableEntity, err.Error(), response.CodeConflict)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "data": summary})
}

func readUpload(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(32 << 20); err == nil {
		file, _, err := r.FormFile("file")
		if err != nil {
			// The body is multipart but has no "file" part; it has
			// already been consumed, so don't fall through to it.
			return "", fmt.Errorf(`multipart upload must include a "file" part`)
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.Dashboard(r.Context())
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handlers) ListSeminars(w http.ResponseWriter, r *http.Request) {
	seminars, err := h.analytics.ListSeminars(r.Context())
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"events": seminars})
}

func (h *Handlers) SeminarAnalytics(w http.ResponseWriter, r *http.Request) {
	eventCode := chi.URLParam(r, "eventCode")

	stats, err := h.analytics.SeminarAnalytics(r.Context(), eventCode)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "stats": stats})
}

func (h *Handlers) GetSeminarStats(w http.ResponseWriter, r *http.Request) {
	eventCode := chi.URLParam(r, "eventCode")

	stats, err := h.analytics.GetSeminarStats(r.Context(), eventCode)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "stats": stats})
}

type seminarStatsRequest struct {
	PaidCount    int `json:"paid_count"`
	SponsorCount int `json:"sponsor_count"`
}

func (h *Handlers) UpdateSeminarStats(w http.ResponseWriter, r *http.Request) {
	eventCode := chi.URLParam(r, "eventCode")

	var req seminarStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	err := h.analytics.UpdateSeminarStats(r.Context(), &domain.SeminarStats{
		EventCode:    eventCode,
		PaidCount:    req.PaidCount,
		SponsorCount: req.SponsorCount,
	})
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
