package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/response"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLogin) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		response.InternalError(w, "Login failed")
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}
