package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/response"
)

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	claims := getClaims(r)
	response.WriteJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"users":           users,
		"current_user_id": claims.Sub,
	})
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handlers) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")

	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		response.BadRequest(w, "Role must be admin or general")
		return
	}

	claims := getClaims(r)
	if err := h.users.ChangeRole(r.Context(), claims.Sub, targetID, role); err != nil {
		writeUserError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

type setPermissionRequest struct {
	Capability string `json:"capability"`
	Value      bool   `json:"value"`
}

func (h *Handlers) SetUserPermission(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")

	var req setPermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	capability, ok := domain.ParseCapability(req.Capability)
	if !ok {
		response.BadRequest(w, "Unknown capability")
		return
	}

	claims := getClaims(r)
	if err := h.users.SetCapability(r.Context(), claims.Sub, targetID, capability, req.Value); err != nil {
		writeUserError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")

	claims := getClaims(r)
	if err := h.users.Delete(r.Context(), claims.Sub, targetID); err != nil {
		writeUserError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

type inviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *Handlers) InviteUser(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		response.BadRequest(w, "Role must be admin or general")
		return
	}

	invite, err := h.users.Invite(r.Context(), req.Email, role)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyInvited) {
			response.Conflict(w, "Email has already been invited.")
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "invite": invite})
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOwnAccount):
		response.Forbidden(w, "You cannot modify your own account.")
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, "User not found.")
	default:
		response.InternalError(w, err.Error())
	}
}
