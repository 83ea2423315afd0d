package entities

// Interaction severities, lowest to highest.
const (
	InteractionMinor           = "minor"
	InteractionModerate        = "moderate"
	InteractionMajor           = "major"
	InteractionContraindicated = "contraindicated"
)

// Evidence tiers attached to interaction rules.
const (
	EvidenceExcellent = "excellent"
	EvidenceGood      = "good"
	EvidenceFair      = "fair"
	EvidencePoor      = "poor"
)

// Allergy severities, lowest to highest.
const (
	AllergyMild            = "mild"
	AllergyModerate        = "moderate"
	AllergySevere          = "severe"
	AllergyLifeThreatening = "life-threatening"
)

// Contraindication severities.
const (
	SeverityAbsolute = "absolute"
	SeverityRelative = "relative"
)

// InteractionRule is a static rule describing a known adverse combination.
// Medications holds canonical lowercase name fragments that must all be
// present (as substrings of some medication name) for the rule to fire.
type InteractionRule struct {
	Medications    []string `json:"medications"`
	Severity       string   `json:"severity"`
	Description    string   `json:"description"`
	ClinicalEffect string   `json:"clinicalEffect"`
	Management     string   `json:"management"`
	Evidence       string   `json:"evidence"`
	References     []string `json:"references"`
}

// AllergyRule is a static cross-reactivity rule: allergy to Allergen
// predicts reactions to every entry in CrossReactive.
type AllergyRule struct {
	Allergen      string   `json:"allergen"`
	CrossReactive []string `json:"crossReactive"`
	Severity      string   `json:"severity"`
	Reaction      string   `json:"reaction"`
	Alternatives  []string `json:"alternatives"`
	Action        string   `json:"action"`
}

// Contraindication doubles as a static rule and a finding: matching
// produces the rule record itself. Medication is matched by exact name,
// Condition is matched fuzzily against the patient profile.
type Contraindication struct {
	ID          string   `json:"id"`
	Medication  string   `json:"medication"`
	Condition   string   `json:"condition"`
	Severity    string   `json:"severity"`
	Description string   `json:"description"`
	Alternative string   `json:"alternative"`
	Monitoring  []string `json:"monitoring"`
}

// DosageRule holds per-medication dosing parameters. Medication is a
// lowercase key matched by substring against medication names.
type DosageRule struct {
	Medication        string   `json:"medication"`
	BaseDose          float64  `json:"baseDose"`
	Unit              string   `json:"unit"`
	MaxDailyDose      float64  `json:"maxDailyDose"`
	WeightBased       bool     `json:"weightBased"`
	AgeAdjustment     bool     `json:"ageAdjustment"`
	RenalAdjustment   bool     `json:"renalAdjustment"`
	HepaticAdjustment bool     `json:"hepaticAdjustment"`
	Warnings          []string `json:"warnings"`
	Contraindications []string `json:"contraindications"`
}
