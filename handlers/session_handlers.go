package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/report"
)

// CreateSessionRequest is the body of POST /sessions.
type CreateSessionRequest struct {
	Name string `json:"name"`
}

// CreateSession handles POST /sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name != "" {
		if err := h.validator.ValidateInput(req.Name); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	session, err := h.sessions.Create(req.Name)
	if err != nil {
		RespondWithError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, session)
}

// ListSessions handles GET /sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, h.sessions.List())
}

// GetSession handles GET /sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}
	RespondWithJSON(w, r, http.StatusOK, session)
}

// DeleteSession handles DELETE /sessions/{id}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Delete(chi.URLParam(r, "id")) {
		RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddSessionMedication handles POST /sessions/{id}/medications
func (h *Handler) AddSessionMedication(w http.ResponseWriter, r *http.Request) {
	var medication entities.Medication
	if err := json.NewDecoder(r.Body).Decode(&medication); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.ValidateMedication(&medication); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessions.AddMedication(chi.URLParam(r, "id"), medication)
	if err != nil {
		RespondWithError(w, http.StatusConflict, err.Error())
		return
	}

	RespondWithJSON(w, r, http.StatusOK, session)
}

// RemoveSessionMedication handles DELETE /sessions/{id}/medications/{medicationId}
func (h *Handler) RemoveSessionMedication(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.RemoveMedication(chi.URLParam(r, "id"), chi.URLParam(r, "medicationId"))
	if err != nil {
		RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	RespondWithJSON(w, r, http.StatusOK, session)
}

// SetSessionPatient handles PUT /sessions/{id}/patient
func (h *Handler) SetSessionPatient(w http.ResponseWriter, r *http.Request) {
	var patient entities.PatientInfo
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.ValidatePatient(&patient); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessions.SetPatient(chi.URLParam(r, "id"), patient)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	RespondWithJSON(w, r, http.StatusOK, session)
}

// CheckSession handles POST /sessions/{id}/check, running the full bundle
// over the session's medication list and patient profile
func (h *Handler) CheckSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, h.checker.CheckAll(session.Medications, session.Patient))
}

// ExportSession handles GET /sessions/{id}/export
func (h *Handler) ExportSession(w http.ResponseWriter, r *http.Request) {
	data, err := h.sessions.Export(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=session.json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ImportSession handles POST /sessions/import
func (h *Handler) ImportSession(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Could not read request body")
		return
	}

	session, err := h.sessions.Import(data)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	for i := range session.Medications {
		if err := h.validator.ValidateMedication(&session.Medications[i]); err != nil {
			h.sessions.Delete(session.ID)
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	RespondWithJSON(w, r, http.StatusCreated, session)
}

// SessionReport handles GET /sessions/{id}/report, rendering a plain-text
// safety summary
func (h *Handler) SessionReport(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	bundle := h.checker.CheckAll(session.Medications, session.Patient)
	text := report.Render(session.Name, session.Medications, session.Patient, bundle)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
