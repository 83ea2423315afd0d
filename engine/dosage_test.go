package engine

import (
	"math"
	"testing"

	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/reference"
)

func adult() entities.PatientInfo {
	return entities.PatientInfo{Age: 40, Weight: 70, Gender: entities.GenderMale}
}

func TestCalculateDosage_ReferenceWeightIsNoOp(t *testing.T) {
	// Strattera is weight based; at 70 kg the factor is exactly 1.
	result := CalculateDosage(reference.DosageRules(), med("Strattera"), adult())

	if result.CalculatedDose != 40 {
		t.Errorf("Expected base dose 40 at reference weight, got %f", result.CalculatedDose)
	}
	if result.Unit != entities.UnitMg {
		t.Errorf("Expected mg, got %s", result.Unit)
	}
	if result.MaxDailyDose != 100 {
		t.Errorf("Expected max daily dose 100, got %f", result.MaxDailyDose)
	}
}

func TestCalculateDosage_WeightAdjustment(t *testing.T) {
	patient := adult()
	patient.Weight = 35

	result := CalculateDosage(reference.DosageRules(), med("Strattera"), patient)

	if result.CalculatedDose != 20 {
		t.Errorf("Expected 20 at half reference weight, got %f", result.CalculatedDose)
	}

	found := false
	for _, adjustment := range result.Adjustments {
		if adjustment == "Dose adjusted for patient weight" {
			found = true
		}
	}
	if !found {
		t.Error("Expected weight adjustment note")
	}
}

func TestCalculateDosage_ElderlyReduction(t *testing.T) {
	patient := adult()
	patient.Age = 70

	// Wellbutrin is not weight based, so only the age factor applies.
	result := CalculateDosage(reference.DosageRules(), med("Wellbutrin"), patient)

	if result.CalculatedDose != 120 {
		t.Errorf("Expected 150*0.8=120 for elderly patient, got %f", result.CalculatedDose)
	}

	found := false
	for _, warning := range result.Warnings {
		if warning == "Monitor for increased sensitivity in elderly" {
			found = true
		}
	}
	if !found {
		t.Error("Expected elderly sensitivity warning")
	}
}

func TestCalculateDosage_PediatricReduction(t *testing.T) {
	patient := adult()
	patient.Age = 10

	result := CalculateDosage(reference.DosageRules(), med("Wellbutrin"), patient)

	if result.CalculatedDose != 105 {
		t.Errorf("Expected 150*0.7=105 for pediatric patient, got %f", result.CalculatedDose)
	}
}

func TestCalculateDosage_NoAgeFactorForAdults(t *testing.T) {
	for _, age := range []int{18, 40, 65} {
		patient := adult()
		patient.Age = age

		result := CalculateDosage(reference.DosageRules(), med("Wellbutrin"), patient)
		if result.CalculatedDose != 150 {
			t.Errorf("Age %d: expected unadjusted dose 150, got %f", age, result.CalculatedDose)
		}
	}
}

func TestCalculateDosage_RenalAdjustment(t *testing.T) {
	// Cockcroft-Gault: (140-80)*50*0.85/72 = 35.4, between 30 and 60.
	patient := entities.PatientInfo{Age: 80, Weight: 50, Gender: entities.GenderFemale}

	result := CalculateDosage(reference.DosageRules(), med("Lisinopril"), patient)

	// 10 * 0.8 (elderly) * 0.75 (renal) = 6.0
	if result.CalculatedDose != 6 {
		t.Errorf("Expected 6.0 after elderly and renal reductions, got %f", result.CalculatedDose)
	}

	found := false
	for _, warning := range result.Warnings {
		if warning == "Moderate renal impairment - monitor kidney function" {
			found = true
		}
	}
	if !found {
		t.Error("Expected moderate renal warning")
	}
}

func TestCalculateDosage_NoRenalBranchWithoutWeight(t *testing.T) {
	patient := entities.PatientInfo{Age: 85}

	result := CalculateDosage(reference.DosageRules(), med("Lisinopril"), patient)

	// Only the elderly factor applies: 10 * 0.8 = 8. A zero weight must
	// not drive the creatinine clearance to zero and halve the dose.
	if result.CalculatedDose != 8 {
		t.Errorf("Expected 8 without weight data, got %f", result.CalculatedDose)
	}
}

func TestCalculateDosage_UnknownMedicationFallbacks(t *testing.T) {
	result := CalculateDosage(reference.DosageRules(), med("Obscuratol"), adult())

	if result.CalculatedDose != defaultBaseDose {
		t.Errorf("Expected default base dose %f, got %f", defaultBaseDose, result.CalculatedDose)
	}
	if result.MaxDailyDose != defaultBaseDose*3 {
		t.Errorf("Expected max daily dose %f, got %f", defaultBaseDose*3, result.MaxDailyDose)
	}
	if len(result.Warnings) != 1 || result.Warnings[0] != "Monitor for side effects" {
		t.Errorf("Expected default warning, got %v", result.Warnings)
	}
	if len(result.Adjustments) != 1 || result.Adjustments[0] != "Consider individual patient factors" {
		t.Errorf("Expected default adjustment, got %v", result.Adjustments)
	}
}

func TestCalculateDosage_StrengthFallback(t *testing.T) {
	medication := entities.Medication{Name: "Obscuratol", Strength: 25}

	result := CalculateDosage(reference.DosageRules(), medication, adult())
	if result.CalculatedDose != 25 {
		t.Errorf("Expected strength fallback 25, got %f", result.CalculatedDose)
	}
}

func TestCalculateDosage_PregnancyWarnings(t *testing.T) {
	patient := adult()
	patient.Gender = entities.GenderFemale
	patient.PregnancyStatus = entities.PregnancyPregnant

	result := CalculateDosage(reference.DosageRules(), med("Warfarin"), patient)

	foundWarning := false
	for _, warning := range result.Warnings {
		if warning == "Pregnancy - consult obstetrician" {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Error("Expected pregnancy warning")
	}

	// Warfarin's rule lists Pregnancy as a contraindication, but that path
	// only matches against medical conditions, not the pregnancy status.
	foundContraindication := false
	for _, warning := range result.Warnings {
		if warning == "WARNING: Pregnancy - consider alternative" {
			foundContraindication = true
		}
	}
	if foundContraindication {
		t.Error("Pregnancy status must not trigger the condition-based contraindication warning")
	}
}

func TestCalculateDosage_AllergyAlert(t *testing.T) {
	patient := adult()
	patient.Allergies = []string{"warfarin"}

	result := CalculateDosage(reference.DosageRules(), med("Warfarin"), patient)

	found := false
	for _, warning := range result.Warnings {
		if warning == "ALLERGY ALERT - Do not administer" {
			found = true
		}
	}
	if !found {
		t.Error("Expected allergy alert warning")
	}
}

func TestCalculateDosage_Rounding(t *testing.T) {
	patient := adult()
	patient.Weight = 71 // 5 * 71/70 = 5.0714...

	result := CalculateDosage(reference.DosageRules(), med("Warfarin"), patient)

	if math.Abs(result.CalculatedDose-5.1) > 1e-9 {
		t.Errorf("Expected dose rounded to 5.1, got %f", result.CalculatedDose)
	}
}

func TestCalculateDosage_Deterministic(t *testing.T) {
	patient := entities.PatientInfo{
		Age: 72, Weight: 55, Gender: entities.GenderFemale,
		MedicalConditions: []string{"severe liver disease"},
		Allergies:         []string{"aspirin"},
		PregnancyStatus:   entities.PregnancyNone,
	}

	first := CalculateDosage(reference.DosageRules(), med("Warfarin"), patient)
	for i := 0; i < 5; i++ {
		again := CalculateDosage(reference.DosageRules(), med("Warfarin"), patient)
		if again.CalculatedDose != first.CalculatedDose {
			t.Fatalf("Dose changed between runs: %f vs %f", again.CalculatedDose, first.CalculatedDose)
		}
		if len(again.Warnings) != len(first.Warnings) {
			t.Fatalf("Warning count changed between runs")
		}
		for j := range again.Warnings {
			if again.Warnings[j] != first.Warnings[j] {
				t.Errorf("Warning order changed at index %d", j)
			}
		}
	}
}

func TestEstimateCreatinineClearance(t *testing.T) {
	male := entities.PatientInfo{Age: 40, Weight: 70, Gender: entities.GenderMale}
	female := entities.PatientInfo{Age: 40, Weight: 70, Gender: entities.GenderFemale}

	crClMale := EstimateCreatinineClearance(male)
	crClFemale := EstimateCreatinineClearance(female)

	expectedMale := (140.0 - 40.0) * 70.0 / 72.0
	if math.Abs(crClMale-expectedMale) > 1e-9 {
		t.Errorf("Expected %f for male, got %f", expectedMale, crClMale)
	}
	if math.Abs(crClFemale-expectedMale*0.85) > 1e-9 {
		t.Errorf("Expected female factor 0.85, got %f", crClFemale)
	}
}
