package entities

// DrugInteraction is a finding emitted by the interaction checker.
// Fields are copied verbatim from the rule that fired.
type DrugInteraction struct {
	ID             string   `json:"id"`
	Severity       string   `json:"severity"`
	Description    string   `json:"description"`
	ClinicalEffect string   `json:"clinicalEffect"`
	Management     string   `json:"management"`
	Evidence       string   `json:"evidence"`
	References     []string `json:"references"`
}

// AllergyAlert is a finding emitted by the allergy checker. Allergen keeps
// the patient's original-cased allergy string, not the rule's canonical form.
type AllergyAlert struct {
	Medication  string `json:"medication"`
	Allergen    string `json:"allergen"`
	Severity    string `json:"severity"`
	Reaction    string `json:"reaction"`
	Alternative string `json:"alternative"`
	Action      string `json:"action"`
}

// DosageCalculation is the result of a dose estimate for one medication.
type DosageCalculation struct {
	Medication     Medication `json:"medication"`
	CalculatedDose float64    `json:"calculatedDose"`
	Unit           string     `json:"unit"`
	Frequency      string     `json:"frequency"`
	MaxDailyDose   float64    `json:"maxDailyDose"`
	Warnings       []string   `json:"warnings"`
	Adjustments    []string   `json:"adjustments"`
}

// CheckBundle aggregates the output of all four checkers for one
// medication list and patient profile.
type CheckBundle struct {
	Interactions      []DrugInteraction   `json:"interactions"`
	AllergyAlerts     []AllergyAlert      `json:"allergyAlerts"`
	Contraindications []Contraindication  `json:"contraindications"`
	Dosages           []DosageCalculation `json:"dosages"`
	RiskScore         int                 `json:"riskScore"`
	RiskLevel         string              `json:"riskLevel"`
}

// InteractionSeverityRank orders interaction severities for display,
// highest first. Unknown severities rank lowest.
func InteractionSeverityRank(severity string) int {
	switch severity {
	case InteractionContraindicated:
		return 4
	case InteractionMajor:
		return 3
	case InteractionModerate:
		return 2
	case InteractionMinor:
		return 1
	}
	return 0
}

// AllergySeverityRank orders allergy severities for display, highest first.
func AllergySeverityRank(severity string) int {
	switch severity {
	case AllergyLifeThreatening:
		return 4
	case AllergySevere:
		return 3
	case AllergyModerate:
		return 2
	case AllergyMild:
		return 1
	}
	return 0
}
