// Package health provides health checking for the medication safety API.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/ntufar/meps/interfaces"
)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	dataStore interfaces.DataStore
}

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(dataStore interfaces.DataStore) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		dataStore: dataStore,
	}
}

// HealthCheck returns HTTP-specific health data for the /health endpoint.
// The service is unhealthy without rule tables and degraded when the daily
// revalidation has not run.
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	interactions := h.dataStore.GetInteractionRules()
	allergies := h.dataStore.GetAllergyRules()
	contraindications := h.dataStore.GetContraindications()
	dosages := h.dataStore.GetDosageRules()
	catalog := h.dataStore.GetCatalog()
	lastUpdate := h.dataStore.GetLastUpdated()
	isUpdating := h.dataStore.IsUpdating()

	dataAge := time.Since(lastUpdate)

	switch {
	case len(interactions) == 0 || len(allergies) == 0 || len(contraindications) == 0 || len(dosages) == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case len(catalog) == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 48*time.Hour:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 25*time.Hour:
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"last_update":       lastUpdate.Format(time.RFC3339),
		"data_age_hours":    math.Round(dataAge.Hours()*10) / 10,
		"interactions":      len(interactions),
		"allergies":         len(allergies),
		"contraindications": len(contraindications),
		"dosage_rules":      len(dosages),
		"catalog":           len(catalog),
		"is_updating":       isUpdating,
	}

	return status, data, httpStatus
}

// CalculateNextUpdate returns the next scheduled revalidation time.
// Revalidation runs daily at 06:00 local time.
func (h *HealthCheckerImpl) CalculateNextUpdate() time.Time {
	now := time.Now()

	sixAM := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, now.Location())

	if now.Before(sixAM) {
		return sixAM
	}

	return sixAM.AddDate(0, 0, 1)
}
