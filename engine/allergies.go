package engine

import (
	"strings"

	"github.com/ntufar/meps/entities"
)

// CheckAllergies evaluates the cross-reactivity table for every
// (medication, patient allergy) pair. Matching is bidirectional substring
// containment on lowercased strings; this is deliberately permissive and
// can produce false positives. One alert is emitted per matching
// (medication, allergy, rule) triple, without de-duplication across
// overlapping rules. The alert carries the patient's original-cased
// allergy string.
func CheckAllergies(rules []entities.AllergyRule, medications []entities.Medication, patient entities.PatientInfo) []entities.AllergyAlert {
	alerts := []entities.AllergyAlert{}

	if len(patient.Allergies) == 0 {
		return alerts
	}

	for _, medication := range medications {
		medName := strings.ToLower(medication.Name)
		genericName := strings.ToLower(medication.GenericName)

		for _, allergy := range patient.Allergies {
			allergyLower := strings.ToLower(allergy)

			for _, rule := range rules {
				if !allergyMatchesRule(allergyLower, rule) {
					continue
				}
				if !medicationMatchesRule(medName, genericName, rule) {
					continue
				}
				alerts = append(alerts, entities.AllergyAlert{
					Medication:  medication.Name,
					Allergen:    allergy,
					Severity:    rule.Severity,
					Reaction:    rule.Reaction,
					Alternative: strings.Join(rule.Alternatives, ", "),
					Action:      rule.Action,
				})
			}
		}
	}

	return alerts
}

// allergyMatchesRule reports whether the patient's allergy string matches
// the rule's allergen or any cross-reactive entry.
func allergyMatchesRule(allergy string, rule entities.AllergyRule) bool {
	if fuzzyMatch(allergy, rule.Allergen) {
		return true
	}
	for _, cross := range rule.CrossReactive {
		if fuzzyMatch(allergy, cross) {
			return true
		}
	}
	return false
}

// medicationMatchesRule reports whether either medication name matches the
// rule's allergen or any cross-reactive entry.
func medicationMatchesRule(medName, genericName string, rule entities.AllergyRule) bool {
	if nameMatches(medName, genericName, rule.Allergen) {
		return true
	}
	for _, cross := range rule.CrossReactive {
		if nameMatches(medName, genericName, cross) {
			return true
		}
	}
	return false
}

func nameMatches(medName, genericName, target string) bool {
	return fuzzyMatch(medName, target) || fuzzyMatch(genericName, target)
}

// fuzzyMatch is bidirectional substring containment. Both arguments are
// expected to be lowercase already. Empty strings never match: the empty
// string is a substring of everything, which would turn a blank generic
// name into a universal match.
func fuzzyMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
