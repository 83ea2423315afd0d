// Package engine implements the rule-evaluation core: pure functions that
// take a medication list and patient profile and produce interaction
// findings, allergy alerts, contraindication findings and dosage
// estimates. Every function is total over its inputs and performs no I/O;
// the rule tables are passed in by the caller.
package engine

import (
	"strings"

	"github.com/ntufar/meps/entities"
)

// CheckInteractions evaluates the interaction rule table against a
// medication list. A rule fires when every one of its name fragments is a
// substring of at least one lowercased medication name; a single
// medication may satisfy more than one fragment. Findings come out in
// table definition order.
//
// When no rule fires and the list has at least two medications, a single
// generic minor finding naming the first two medications is emitted
// instead, directing the user to a professional.
func CheckInteractions(rules []entities.InteractionRule, medications []entities.Medication) []entities.DrugInteraction {
	interactions := []entities.DrugInteraction{}

	names := make([]string, len(medications))
	for i, med := range medications {
		names[i] = strings.ToLower(med.Name)
	}

	for _, rule := range rules {
		if !ruleFires(rule, names) {
			continue
		}
		interactions = append(interactions, entities.DrugInteraction{
			ID:             "interaction-" + strings.Join(rule.Medications, "-"),
			Severity:       rule.Severity,
			Description:    rule.Description,
			ClinicalEffect: rule.ClinicalEffect,
			Management:     rule.Management,
			Evidence:       rule.Evidence,
			References:     rule.References,
		})
	}

	if len(interactions) == 0 && len(medications) >= 2 {
		interactions = append(interactions, entities.DrugInteraction{
			ID:             "generic-interaction",
			Severity:       entities.InteractionMinor,
			Description:    medications[0].Name + " and " + medications[1].Name,
			ClinicalEffect: "Potential interaction - consult pharmacist or physician",
			Management:     "Monitor for unusual side effects, consider timing of doses",
			Evidence:       entities.EvidencePoor,
			References:     []string{"General Drug Interaction Guidelines"},
		})
	}

	return interactions
}

// ruleFires reports whether every required fragment matches some
// medication name.
func ruleFires(rule entities.InteractionRule, names []string) bool {
	for _, fragment := range rule.Medications {
		found := false
		for _, name := range names {
			if strings.Contains(name, fragment) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(rule.Medications) > 0
}

// SearchInteractions returns every rule that mentions the given drug name
// fragment, case-insensitively.
func SearchInteractions(rules []entities.InteractionRule, medicationName string) []entities.InteractionRule {
	needle := strings.ToLower(medicationName)
	var matches []entities.InteractionRule
	for _, rule := range rules {
		for _, fragment := range rule.Medications {
			if strings.Contains(fragment, needle) || strings.Contains(needle, fragment) {
				matches = append(matches, rule)
				break
			}
		}
	}
	return matches
}
