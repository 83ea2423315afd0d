// Package entities defines the data model shared by the rule engine,
// reference tables and HTTP layer: medications, patient profiles and the
// result records produced by each safety check.
package entities

// Dose units accepted on a medication record.
const (
	UnitMg       = "mg"
	UnitMl       = "ml"
	UnitMcg      = "mcg"
	UnitG        = "g"
	UnitUnits    = "units"
	UnitTablets  = "tablets"
	UnitCapsules = "capsules"
)

// Administration routes.
const (
	RouteOral       = "oral"
	RouteInjection  = "injection"
	RouteTopical    = "topical"
	RouteInhalation = "inhalation"
	RouteRectal     = "rectal"
	RouteVaginal    = "vaginal"
)

// Medication forms.
const (
	FormTablet    = "tablet"
	FormCapsule   = "capsule"
	FormLiquid    = "liquid"
	FormInjection = "injection"
	FormCream     = "cream"
	FormPatch     = "patch"
	FormInhaler   = "inhaler"
)

// Medication is a single entry on a session's medication list. ID is an
// opaque per-instance identifier, not a drug identity key; all matching in
// the engine goes through Name and GenericName.
type Medication struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	GenericName string  `json:"genericName"`
	Dosage      string  `json:"dosage"`
	Unit        string  `json:"unit"`
	Frequency   string  `json:"frequency"`
	Route       string  `json:"route"`
	Form        string  `json:"form"`
	Strength    float64 `json:"strength,omitempty"`
}

// MedicationOption is a catalog entry used by the search endpoints to
// pre-fill Medication records.
type MedicationOption struct {
	Name          string   `json:"name"`
	GenericName   string   `json:"genericName"`
	CommonDosages []string `json:"commonDosages"`
	Forms         []string `json:"forms"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Route         string   `json:"route"`
	Unit          string   `json:"unit"`
	Strength      float64  `json:"strength"`
	Frequency     string   `json:"frequency"`
}

// ValidUnit reports whether unit is one of the accepted dose units.
func ValidUnit(unit string) bool {
	switch unit {
	case UnitMg, UnitMl, UnitMcg, UnitG, UnitUnits, UnitTablets, UnitCapsules:
		return true
	}
	return false
}

// ValidRoute reports whether route is an accepted administration route.
func ValidRoute(route string) bool {
	switch route {
	case RouteOral, RouteInjection, RouteTopical, RouteInhalation, RouteRectal, RouteVaginal:
		return true
	}
	return false
}

// ValidForm reports whether form is an accepted medication form.
func ValidForm(form string) bool {
	switch form {
	case FormTablet, FormCapsule, FormLiquid, FormInjection, FormCream, FormPatch, FormInhaler:
		return true
	}
	return false
}
