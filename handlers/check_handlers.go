package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ntufar/meps/engine"
	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/interfaces"
	"github.com/ntufar/meps/logging"
	"github.com/ntufar/meps/metrics"
	"github.com/ntufar/meps/store"
)

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	dataStore interfaces.DataStore
	checker   interfaces.RuleChecker
	validator interfaces.Validator
	health    interfaces.HealthChecker
	sessions  *store.SessionStore
}

// NewHandler creates a handler with injected dependencies
func NewHandler(dataStore interfaces.DataStore, checker interfaces.RuleChecker,
	validator interfaces.Validator, health interfaces.HealthChecker, sessions *store.SessionStore) *Handler {
	return &Handler{
		dataStore: dataStore,
		checker:   checker,
		validator: validator,
		health:    health,
		sessions:  sessions,
	}
}

// CheckRequest is the body of every check endpoint. The patient profile is
// optional for the interaction check.
type CheckRequest struct {
	Medications []entities.Medication `json:"medications"`
	Patient     entities.PatientInfo  `json:"patient"`
}

// DosageRequest is the body of the dosage endpoint.
type DosageRequest struct {
	Medication entities.Medication  `json:"medication"`
	Patient    entities.PatientInfo `json:"patient"`
}

// decodeCheckRequest parses and validates a check request body.
func (h *Handler) decodeCheckRequest(w http.ResponseWriter, r *http.Request) (CheckRequest, bool) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return CheckRequest{}, false
	}

	for i := range req.Medications {
		if err := h.validator.ValidateMedication(&req.Medications[i]); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return CheckRequest{}, false
		}
	}

	if err := h.validator.ValidatePatient(&req.Patient); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return CheckRequest{}, false
	}

	return req, true
}

// CheckInteractions handles POST /check/interactions
func (h *Handler) CheckInteractions(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCheckRequest(w, r)
	if !ok {
		return
	}

	findings := h.checker.CheckInteractions(req.Medications)

	metrics.ChecksTotal.WithLabelValues("interactions").Inc()
	for _, finding := range findings {
		metrics.FindingsTotal.WithLabelValues("interactions", finding.Severity).Inc()
	}

	RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"interactions": findings,
	})
}

// CheckAllergies handles POST /check/allergies
func (h *Handler) CheckAllergies(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCheckRequest(w, r)
	if !ok {
		return
	}

	alerts := h.checker.CheckAllergies(req.Medications, req.Patient)

	metrics.ChecksTotal.WithLabelValues("allergies").Inc()
	for _, alert := range alerts {
		metrics.FindingsTotal.WithLabelValues("allergies", alert.Severity).Inc()
	}

	RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"allergyAlerts": alerts,
	})
}

// CheckContraindications handles POST /check/contraindications
func (h *Handler) CheckContraindications(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCheckRequest(w, r)
	if !ok {
		return
	}

	findings := h.checker.CheckContraindications(req.Medications, req.Patient)

	metrics.ChecksTotal.WithLabelValues("contraindications").Inc()
	for _, finding := range findings {
		metrics.FindingsTotal.WithLabelValues("contraindications", finding.Severity).Inc()
	}

	// Risk summary covers every finding, even when a severity filter is on.
	score := engine.CalculateRiskScore(findings)
	summary := map[string]interface{}{
		"riskScore":    score,
		"riskLevel":    engine.RiskLevel(score),
		"monitoring":   engine.MonitoringRecommendations(findings),
		"alternatives": engine.AlternativeMedications(findings),
	}

	if severity := r.URL.Query().Get("severity"); severity != "" {
		if severity != entities.SeverityAbsolute && severity != entities.SeverityRelative {
			RespondWithError(w, http.StatusBadRequest, "Unknown severity filter")
			return
		}
		filtered := engine.FilterBySeverity(findings, severity)
		if filtered == nil {
			filtered = []entities.Contraindication{}
		}
		findings = filtered
	}

	RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"contraindications": findings,
		"summary":           summary,
	})
}

// CalculateDosage handles POST /check/dosage
func (h *Handler) CalculateDosage(w http.ResponseWriter, r *http.Request) {
	var req DosageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.ValidateMedication(&req.Medication); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validator.ValidatePatient(&req.Patient); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.ChecksTotal.WithLabelValues("dosage").Inc()

	RespondWithJSON(w, r, http.StatusOK, h.checker.CalculateDosage(req.Medication, req.Patient))
}

// CheckAll handles POST /check and runs every checker at once
func (h *Handler) CheckAll(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCheckRequest(w, r)
	if !ok {
		return
	}

	bundle := h.checker.CheckAll(req.Medications, req.Patient)

	metrics.ChecksTotal.WithLabelValues("all").Inc()
	for _, finding := range bundle.Contraindications {
		metrics.FindingsTotal.WithLabelValues("contraindications", finding.Severity).Inc()
	}

	logging.Debug("Full safety check completed",
		"medications", len(req.Medications),
		"interactions", len(bundle.Interactions),
		"allergy_alerts", len(bundle.AllergyAlerts),
		"contraindications", len(bundle.Contraindications),
		"risk_score", bundle.RiskScore)

	RespondWithJSON(w, r, http.StatusOK, bundle)
}
