// Package interfaces defines core abstractions for the medication safety
// API to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"time"

	"github.com/ntufar/meps/entities"
)

// DataQualityReport summarizes issues found in the reference tables.
type DataQualityReport struct {
	DuplicateContraindicationIDs []string // IDs appearing more than once
	InteractionRulesUnderTwo     int      // Interaction rules with fewer than two required terms
	DosageRulesWithoutCatalog    []string // Dosage rule keys with no catalog entry
	ContraindicationsOffCatalog  []string // Contraindication medications missing from the catalog
	CatalogDuplicateNames        []string // Catalog names appearing more than once
}

// DataStore is the contract for reference-data storage. It provides
// thread-safe access to the rule tables and the medication catalog with
// atomic swaps for zero-downtime updates.
type DataStore interface {
	GetInteractionRules() []entities.InteractionRule
	GetAllergyRules() []entities.AllergyRule
	GetContraindications() []entities.Contraindication
	GetDosageRules() []entities.DosageRule
	GetCatalog() []entities.MedicationOption
	GetCatalogMap() map[string]entities.MedicationOption
	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time

	UpdateData(interactions []entities.InteractionRule, allergies []entities.AllergyRule,
		contraindications []entities.Contraindication, dosages []entities.DosageRule,
		catalog []entities.MedicationOption, catalogMap map[string]entities.MedicationOption)
	BeginUpdate() bool
	EndUpdate()
}

// RuleChecker is the in-process boundary consumed by the HTTP layer: the
// four safety checks over the current reference tables.
type RuleChecker interface {
	CheckInteractions(medications []entities.Medication) []entities.DrugInteraction
	CheckAllergies(medications []entities.Medication, patient entities.PatientInfo) []entities.AllergyAlert
	CheckContraindications(medications []entities.Medication, patient entities.PatientInfo) []entities.Contraindication
	CalculateDosage(medication entities.Medication, patient entities.PatientInfo) entities.DosageCalculation
	CheckAll(medications []entities.Medication, patient entities.PatientInfo) entities.CheckBundle
}

// Scheduler manages the periodic reference-data refresh and health
// monitoring.
type Scheduler interface {
	Start() error
	Stop()
}

// HealthChecker reports system health from the data store's state.
type HealthChecker interface {
	HealthCheck() (status string, details map[string]any, httpStatus int)
	CalculateNextUpdate() time.Time
}

// Validator is the contract for input and reference-data validation.
type Validator interface {
	ValidateInput(input string) error
	ValidateMedication(m *entities.Medication) error
	ValidatePatient(p *entities.PatientInfo) error
	ReportDataQuality(interactions []entities.InteractionRule, contraindications []entities.Contraindication,
		dosages []entities.DosageRule, catalog []entities.MedicationOption) *DataQualityReport
}
