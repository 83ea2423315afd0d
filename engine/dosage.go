package engine

import (
	"math"
	"strings"

	"github.com/ntufar/meps/entities"
)

// referenceWeightKg is the standard adult weight the weight-based factor
// is normalized against.
const referenceWeightKg = 70.0

// defaultBaseDose is used when no dosage rule matches and the medication
// carries no strength.
const defaultBaseDose = 10.0

// CalculateDosage computes an adjusted dose estimate for one medication.
// Adjustments are sequential multiplicative factors applied in a fixed
// order (weight, age, renal), followed by rounding to one decimal and the
// warning/adjustment collection; the order of the emitted strings is part
// of the contract. The function is deterministic and total: unknown
// medications fall back to the strength or a default base dose, and a
// non-positive weight skips the weight and renal branches rather than
// producing zero or NaN doses.
func CalculateDosage(rules []entities.DosageRule, medication entities.Medication, patient entities.PatientInfo) entities.DosageCalculation {
	rule, hasRule := findDosageRule(rules, medication.Name)
	warnings := []string{}
	adjustments := []string{}

	dose := defaultBaseDose
	if hasRule {
		dose = rule.BaseDose
	} else if medication.Strength > 0 {
		dose = medication.Strength
	}

	if hasRule && rule.WeightBased && patient.Weight > 0 {
		dose = dose * (patient.Weight / referenceWeightKg)
		adjustments = append(adjustments, "Dose adjusted for patient weight")
	}

	if hasRule && rule.AgeAdjustment {
		if patient.Age > 65 {
			dose = dose * 0.8
			adjustments = append(adjustments, "Reduced dose for elderly patient")
			warnings = append(warnings, "Monitor for increased sensitivity in elderly")
		} else if patient.Age < 18 {
			dose = dose * 0.7
			adjustments = append(adjustments, "Pediatric dosing adjustment")
			warnings = append(warnings, "Pediatric dosing - monitor closely")
		}
	}

	if hasRule && rule.RenalAdjustment && patient.Weight > 0 {
		crCl := EstimateCreatinineClearance(patient)
		if crCl < 30 {
			dose = dose * 0.5
			adjustments = append(adjustments, "Reduced dose for renal impairment")
			warnings = append(warnings, "Severe renal impairment - monitor kidney function")
		} else if crCl < 60 {
			dose = dose * 0.75
			adjustments = append(adjustments, "Moderate dose reduction for renal function")
			warnings = append(warnings, "Moderate renal impairment - monitor kidney function")
		}
	}

	dose = math.Round(dose*10) / 10

	if hasRule {
		warnings = append(warnings, rule.Warnings...)
		for _, contraindication := range rule.Contraindications {
			if hasContraindication(patient, contraindication) {
				warnings = append(warnings, "WARNING: "+contraindication+" - consider alternative")
			}
		}
	}

	switch patient.PregnancyStatus {
	case entities.PregnancyPregnant:
		warnings = append(warnings, "Pregnancy - consult obstetrician")
		adjustments = append(adjustments, "Consider pregnancy-safe alternatives")
	case entities.PregnancyBreastfeeding:
		warnings = append(warnings, "Breastfeeding - consider infant safety")
		adjustments = append(adjustments, "Monitor infant for side effects")
	}

	if hasAllergy(patient, medication) {
		warnings = append(warnings, "ALLERGY ALERT - Do not administer")
		adjustments = append(adjustments, "Use alternative medication")
	}

	if len(warnings) == 0 {
		warnings = []string{"Monitor for side effects"}
	}
	if len(adjustments) == 0 {
		adjustments = []string{"Consider individual patient factors"}
	}

	unit := medication.Unit
	maxDailyDose := dose * 3
	if hasRule {
		unit = rule.Unit
		maxDailyDose = rule.MaxDailyDose
	}

	return entities.DosageCalculation{
		Medication:     medication,
		CalculatedDose: dose,
		Unit:           unit,
		Frequency:      medication.Frequency,
		MaxDailyDose:   maxDailyDose,
		Warnings:       warnings,
		Adjustments:    adjustments,
	}
}

// findDosageRule matches the rule's lowercase medication key as a
// substring of the medication name.
func findDosageRule(rules []entities.DosageRule, medicationName string) (entities.DosageRule, bool) {
	name := strings.ToLower(medicationName)
	for _, rule := range rules {
		if strings.Contains(name, strings.ToLower(rule.Medication)) {
			return rule, true
		}
	}
	return entities.DosageRule{}, false
}

// EstimateCreatinineClearance applies the Cockcroft-Gault equation with an
// assumed serum creatinine of 1.0 mg/dL. Females (and other) get the 0.85
// gender factor.
func EstimateCreatinineClearance(patient entities.PatientInfo) float64 {
	genderFactor := 0.85
	if patient.Gender == entities.GenderMale {
		genderFactor = 1.0
	}
	const serumCreatinine = 1.0
	return (float64(140-patient.Age) * patient.Weight * genderFactor) / (72 * serumCreatinine)
}

// hasContraindication tests a rule's contraindication phrase against the
// patient's conditions with bidirectional substring matching.
func hasContraindication(patient entities.PatientInfo, contraindication string) bool {
	needle := strings.ToLower(contraindication)
	for _, condition := range patient.MedicalConditions {
		if fuzzyMatch(strings.ToLower(condition), needle) {
			return true
		}
	}
	return false
}

// hasAllergy tests every patient allergy against the medication's name and
// generic name with bidirectional substring matching.
func hasAllergy(patient entities.PatientInfo, medication entities.Medication) bool {
	medName := strings.ToLower(medication.Name)
	genericName := strings.ToLower(medication.GenericName)
	for _, allergy := range patient.Allergies {
		allergyLower := strings.ToLower(allergy)
		if fuzzyMatch(medName, allergyLower) || fuzzyMatch(genericName, allergyLower) {
			return true
		}
	}
	return false
}
