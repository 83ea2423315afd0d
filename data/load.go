package data

import (
	"fmt"

	"github.com/ntufar/meps/logging"
	"github.com/ntufar/meps/reference"
)

// LoadReferenceTables populates the container from the built-in reference
// tables. Skips silently when another update is already in progress.
func LoadReferenceTables(dc *DataContainer) error {
	if !dc.BeginUpdate() {
		logging.Warn("Reference table load skipped, update already in progress")
		return fmt.Errorf("update already in progress")
	}
	defer dc.EndUpdate()

	catalog := reference.Catalog()
	dc.UpdateData(
		reference.InteractionRules(),
		reference.AllergyRules(),
		reference.Contraindications(),
		reference.DosageRules(),
		catalog,
		reference.CatalogMap(catalog),
	)

	logging.Info("Reference tables loaded",
		"interactions", len(dc.GetInteractionRules()),
		"allergies", len(dc.GetAllergyRules()),
		"contraindications", len(dc.GetContraindications()),
		"dosageRules", len(dc.GetDosageRules()),
		"catalog", len(catalog))
	return nil
}
