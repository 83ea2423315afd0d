package engine

import (
	"strings"

	"github.com/ntufar/meps/entities"
)

// CheckContraindications evaluates the contraindication table against the
// medication list and patient profile. Medication matching is EXACT,
// case-sensitive equality on the medication name. This asymmetry with the
// substring matching used by the other checkers is intentional and load
// bearing: "warfarin" (lowercase) does not match the "Warfarin" rules.
func CheckContraindications(rules []entities.Contraindication, medications []entities.Medication, patient entities.PatientInfo) []entities.Contraindication {
	found := []entities.Contraindication{}

	for _, medication := range medications {
		for _, rule := range rules {
			if rule.Medication != medication.Name {
				continue
			}
			if isConditionPresent(rule.Condition, patient) {
				found = append(found, rule)
			}
		}
	}

	return found
}

// isConditionPresent tests whether a rule's condition phrase applies to
// the patient. Checks run in priority order and short-circuit: word-level
// fuzzy overlap against medical conditions, then against allergies, then
// keyword special cases.
func isConditionPresent(condition string, patient entities.PatientInfo) bool {
	conditionLower := strings.ToLower(condition)

	conditions := make([]string, len(patient.MedicalConditions))
	for i, c := range patient.MedicalConditions {
		conditions[i] = strings.ToLower(c)
	}

	for _, c := range conditions {
		if conditionWordsOverlap(conditionLower, c) {
			return true
		}
	}

	for _, allergy := range patient.Allergies {
		if conditionWordsOverlap(conditionLower, strings.ToLower(allergy)) {
			return true
		}
	}

	if strings.Contains(conditionLower, "pregnancy") && patient.PregnancyStatus == entities.PregnancyPregnant {
		return true
	}

	if strings.Contains(conditionLower, "renal") || strings.Contains(conditionLower, "kidney") {
		return anyConditionContains(conditions, "kidney", "renal", "dialysis")
	}

	if strings.Contains(conditionLower, "liver") {
		return anyConditionContains(conditions, "liver", "hepatic")
	}

	if strings.Contains(conditionLower, "asthma") {
		return anyConditionContains(conditions, "asthma", "copd")
	}

	if strings.Contains(conditionLower, "bleeding") {
		return anyConditionContains(conditions, "bleeding", "hemorrhage", "coagulation")
	}

	if strings.Contains(conditionLower, "seizure") {
		return anyConditionContains(conditions, "seizure", "epilepsy")
	}

	if strings.Contains(conditionLower, "heart failure") {
		return anyConditionContains(conditions, "heart failure", "congestive heart failure")
	}

	return false
}

// conditionWordsOverlap reports whether any word of one phrase is a
// substring of, or contains, any word of the other.
func conditionWordsOverlap(a, b string) bool {
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)

	for _, wa := range wordsA {
		for _, wb := range wordsB {
			if strings.Contains(wb, wa) || strings.Contains(wa, wb) {
				return true
			}
		}
	}
	return false
}

func anyConditionContains(conditions []string, keywords ...string) bool {
	for _, c := range conditions {
		for _, keyword := range keywords {
			if strings.Contains(c, keyword) {
				return true
			}
		}
	}
	return false
}

// ContraindicationsForMedication returns the static rules for an exact
// medication name, independent of any patient.
func ContraindicationsForMedication(rules []entities.Contraindication, medicationName string) []entities.Contraindication {
	var matches []entities.Contraindication
	for _, rule := range rules {
		if rule.Medication == medicationName {
			matches = append(matches, rule)
		}
	}
	return matches
}

// FilterBySeverity keeps only findings of the given severity.
func FilterBySeverity(findings []entities.Contraindication, severity string) []entities.Contraindication {
	var filtered []entities.Contraindication
	for _, finding := range findings {
		if finding.Severity == severity {
			filtered = append(filtered, finding)
		}
	}
	return filtered
}

// PregnancyContraindications returns the pregnancy-related rules for the
// medication list when the patient is pregnant, and nothing otherwise.
func PregnancyContraindications(rules []entities.Contraindication, medications []entities.Medication, patient entities.PatientInfo) []entities.Contraindication {
	if patient.PregnancyStatus != entities.PregnancyPregnant {
		return []entities.Contraindication{}
	}

	var found []entities.Contraindication
	for _, medication := range medications {
		for _, rule := range ContraindicationsForMedication(rules, medication.Name) {
			if strings.Contains(strings.ToLower(rule.Condition), "pregnancy") {
				found = append(found, rule)
			}
		}
	}
	return found
}

// MonitoringRecommendations aggregates the monitoring lists of the given
// findings, de-duplicated, preserving first-seen order.
func MonitoringRecommendations(findings []entities.Contraindication) []string {
	seen := make(map[string]bool)
	var monitoring []string
	for _, finding := range findings {
		for _, item := range finding.Monitoring {
			if !seen[item] {
				seen[item] = true
				monitoring = append(monitoring, item)
			}
		}
	}
	return monitoring
}

// AlternativeMedications collects the non-empty alternative suggestions.
func AlternativeMedications(findings []entities.Contraindication) []string {
	var alternatives []string
	for _, finding := range findings {
		if finding.Alternative != "" {
			alternatives = append(alternatives, finding.Alternative)
		}
	}
	return alternatives
}

// CalculateRiskScore sums 10 points per absolute and 5 per relative
// contraindication, capped at 100.
func CalculateRiskScore(findings []entities.Contraindication) int {
	score := 0
	for _, finding := range findings {
		switch finding.Severity {
		case entities.SeverityAbsolute:
			score += 10
		case entities.SeverityRelative:
			score += 5
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

// RiskLevel bands a risk score into a description.
func RiskLevel(score int) string {
	switch {
	case score >= 80:
		return "Very High Risk"
	case score >= 60:
		return "High Risk"
	case score >= 40:
		return "Moderate Risk"
	case score >= 20:
		return "Low Risk"
	default:
		return "Minimal Risk"
	}
}
