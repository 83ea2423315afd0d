// Package data provides thread-safe storage for the reference tables and
// the medication catalog. The DataContainer uses atomic swaps so readers
// never see a partially loaded table set during a refresh.
package data

import (
	"sync/atomic"
	"time"

	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/interfaces"
	"github.com/ntufar/meps/logging"
)

// Compile-time check to ensure DataContainer implements DataStore
var _ interfaces.DataStore = (*DataContainer)(nil)

// DataContainer holds all reference data behind atomic pointers for
// zero-downtime updates.
type DataContainer struct {
	interactions      atomic.Value // []entities.InteractionRule
	allergies         atomic.Value // []entities.AllergyRule
	contraindications atomic.Value // []entities.Contraindication
	dosages           atomic.Value // []entities.DosageRule
	catalog           atomic.Value // []entities.MedicationOption
	catalogMap        atomic.Value // map[string]entities.MedicationOption
	lastUpdated       atomic.Value // time.Time
	updating          atomic.Bool
	serverStartTime   atomic.Value // time.Time
}

// NewDataContainer creates a new DataContainer with empty tables.
func NewDataContainer() *DataContainer {
	dc := &DataContainer{}
	dc.interactions.Store(make([]entities.InteractionRule, 0))
	dc.allergies.Store(make([]entities.AllergyRule, 0))
	dc.contraindications.Store(make([]entities.Contraindication, 0))
	dc.dosages.Store(make([]entities.DosageRule, 0))
	dc.catalog.Store(make([]entities.MedicationOption, 0))
	dc.catalogMap.Store(make(map[string]entities.MedicationOption))
	dc.lastUpdated.Store(time.Time{})
	dc.serverStartTime.Store(time.Time{})
	return dc
}

// Thread-safe getters with type check

// GetInteractionRules returns the interaction rule table.
func (dc *DataContainer) GetInteractionRules() []entities.InteractionRule {
	if v := dc.interactions.Load(); v != nil {
		if rules, ok := v.([]entities.InteractionRule); ok {
			return rules
		}
	}

	logging.Warn("Interaction rule table is empty or invalid")
	return []entities.InteractionRule{}
}

// GetAllergyRules returns the allergy cross-reactivity table.
func (dc *DataContainer) GetAllergyRules() []entities.AllergyRule {
	if v := dc.allergies.Load(); v != nil {
		if rules, ok := v.([]entities.AllergyRule); ok {
			return rules
		}
	}

	logging.Warn("Allergy rule table is empty or invalid")
	return []entities.AllergyRule{}
}

// GetContraindications returns the contraindication table.
func (dc *DataContainer) GetContraindications() []entities.Contraindication {
	if v := dc.contraindications.Load(); v != nil {
		if rules, ok := v.([]entities.Contraindication); ok {
			return rules
		}
	}

	logging.Warn("Contraindication table is empty or invalid")
	return []entities.Contraindication{}
}

// GetDosageRules returns the dosage rule table.
func (dc *DataContainer) GetDosageRules() []entities.DosageRule {
	if v := dc.dosages.Load(); v != nil {
		if rules, ok := v.([]entities.DosageRule); ok {
			return rules
		}
	}

	logging.Warn("Dosage rule table is empty or invalid")
	return []entities.DosageRule{}
}

// GetCatalog returns the medication catalog.
func (dc *DataContainer) GetCatalog() []entities.MedicationOption {
	if v := dc.catalog.Load(); v != nil {
		if catalog, ok := v.([]entities.MedicationOption); ok {
			return catalog
		}
	}

	logging.Warn("Medication catalog is empty or invalid")
	return []entities.MedicationOption{}
}

// GetCatalogMap returns the name-indexed catalog for O(1) lookups.
func (dc *DataContainer) GetCatalogMap() map[string]entities.MedicationOption {
	if v := dc.catalogMap.Load(); v != nil {
		if catalogMap, ok := v.(map[string]entities.MedicationOption); ok {
			return catalogMap
		}
	}

	logging.Warn("Catalog map is empty or invalid")
	return make(map[string]entities.MedicationOption)
}

// GetLastUpdated returns the timestamp of the last data update.
func (dc *DataContainer) GetLastUpdated() time.Time {
	if v := dc.lastUpdated.Load(); v != nil {
		if lastUpdated, ok := v.(time.Time); ok {
			return lastUpdated
		}
	}

	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a data update is currently in progress.
func (dc *DataContainer) IsUpdating() bool {
	return dc.updating.Load()
}

// SetServerStartTime sets the server start time.
func (dc *DataContainer) SetServerStartTime(startTime time.Time) {
	dc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time.
func (dc *DataContainer) GetServerStartTime() time.Time {
	if v := dc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// UpdateData atomically replaces every table in the container.
func (dc *DataContainer) UpdateData(interactions []entities.InteractionRule, allergies []entities.AllergyRule,
	contraindications []entities.Contraindication, dosages []entities.DosageRule,
	catalog []entities.MedicationOption, catalogMap map[string]entities.MedicationOption) {

	// Atomic swap (zero downtime replacement)
	dc.interactions.Store(interactions)
	dc.allergies.Store(allergies)
	dc.contraindications.Store(contraindications)
	dc.dosages.Store(dosages)
	dc.catalog.Store(catalog)
	dc.catalogMap.Store(catalogMap)
	dc.lastUpdated.Store(time.Now())
}

// BeginUpdate marks the start of a data update operation.
// Returns true if the update can proceed, false if another update is in progress.
func (dc *DataContainer) BeginUpdate() bool {
	return dc.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a data update operation.
func (dc *DataContainer) EndUpdate() {
	dc.updating.Store(false)
}
