package health

import (
	"net/http"
	"testing"
	"time"

	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/reference"
)

// stubStore provides a configurable DataStore for health checks.
type stubStore struct {
	interactions      []entities.InteractionRule
	allergies         []entities.AllergyRule
	contraindications []entities.Contraindication
	dosages           []entities.DosageRule
	catalog           []entities.MedicationOption
	lastUpdated       time.Time
	updating          bool
}

func (s *stubStore) GetInteractionRules() []entities.InteractionRule     { return s.interactions }
func (s *stubStore) GetAllergyRules() []entities.AllergyRule             { return s.allergies }
func (s *stubStore) GetContraindications() []entities.Contraindication   { return s.contraindications }
func (s *stubStore) GetDosageRules() []entities.DosageRule               { return s.dosages }
func (s *stubStore) GetCatalog() []entities.MedicationOption             { return s.catalog }
func (s *stubStore) GetCatalogMap() map[string]entities.MedicationOption { return nil }
func (s *stubStore) GetLastUpdated() time.Time                           { return s.lastUpdated }
func (s *stubStore) IsUpdating() bool                                    { return s.updating }
func (s *stubStore) GetServerStartTime() time.Time                       { return time.Time{} }
func (s *stubStore) BeginUpdate() bool                                   { return true }
func (s *stubStore) EndUpdate()                                          {}
func (s *stubStore) UpdateData([]entities.InteractionRule, []entities.AllergyRule,
	[]entities.Contraindication, []entities.DosageRule,
	[]entities.MedicationOption, map[string]entities.MedicationOption) {
}

func populatedStore(age time.Duration) *stubStore {
	return &stubStore{
		interactions:      reference.InteractionRules(),
		allergies:         reference.AllergyRules(),
		contraindications: reference.Contraindications(),
		dosages:           reference.DosageRules(),
		catalog:           reference.Catalog(),
		lastUpdated:       time.Now().Add(-age),
	}
}

func TestHealthCheckHealthy(t *testing.T) {
	checker := NewHealthChecker(populatedStore(time.Hour))

	status, data, httpStatus := checker.HealthCheck()

	if status != "healthy" {
		t.Errorf("Expected healthy, got %s", status)
	}
	if httpStatus != http.StatusOK {
		t.Errorf("Expected 200, got %d", httpStatus)
	}
	if data["interactions"].(int) == 0 {
		t.Error("Expected interaction count in details")
	}
	if data["is_updating"].(bool) {
		t.Error("Expected is_updating false")
	}
}

func TestHealthCheckDegradedWhenStale(t *testing.T) {
	checker := NewHealthChecker(populatedStore(26 * time.Hour))

	status, _, httpStatus := checker.HealthCheck()

	if status != "degraded" {
		t.Errorf("Expected degraded at 26h, got %s", status)
	}
	if httpStatus != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", httpStatus)
	}
}

func TestHealthCheckUnhealthyWhenVeryStale(t *testing.T) {
	checker := NewHealthChecker(populatedStore(49 * time.Hour))

	status, _, _ := checker.HealthCheck()
	if status != "unhealthy" {
		t.Errorf("Expected unhealthy at 49h, got %s", status)
	}
}

func TestHealthCheckUnhealthyWithoutTables(t *testing.T) {
	store := populatedStore(time.Hour)
	store.dosages = nil

	status, _, httpStatus := NewHealthChecker(store).HealthCheck()

	if status != "unhealthy" {
		t.Errorf("Expected unhealthy with empty dosage table, got %s", status)
	}
	if httpStatus != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", httpStatus)
	}
}

func TestHealthCheckUnhealthyWithoutCatalog(t *testing.T) {
	store := populatedStore(time.Hour)
	store.catalog = nil

	status, _, _ := NewHealthChecker(store).HealthCheck()
	if status != "unhealthy" {
		t.Errorf("Expected unhealthy with empty catalog, got %s", status)
	}
}

func TestCalculateNextUpdate(t *testing.T) {
	checker := NewHealthChecker(populatedStore(time.Hour))

	next := checker.CalculateNextUpdate()
	now := time.Now()

	if !next.After(now) {
		t.Error("Next update must be in the future")
	}
	if next.Hour() != 6 || next.Minute() != 0 {
		t.Errorf("Next update should be at 06:00, got %02d:%02d", next.Hour(), next.Minute())
	}
	if next.Sub(now) > 24*time.Hour {
		t.Error("Next update must be within 24 hours")
	}
}
