package engine

import (
	"testing"

	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/reference"
)

func TestCheckContraindications_ExactNameMatch(t *testing.T) {
	patient := entities.PatientInfo{MedicalConditions: []string{"active bleeding"}}

	findings := CheckContraindications(reference.Contraindications(), []entities.Medication{med("Warfarin")}, patient)
	if len(findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(findings))
	}
	if findings[0].ID != "warfarin-bleeding" {
		t.Errorf("Expected warfarin-bleeding, got %s", findings[0].ID)
	}
}

func TestCheckContraindications_NameMatchIsCaseSensitive(t *testing.T) {
	patient := entities.PatientInfo{MedicalConditions: []string{"active bleeding"}}

	// The table stores "Warfarin"; a lowercase entry does not match.
	findings := CheckContraindications(reference.Contraindications(), []entities.Medication{med("warfarin")}, patient)
	if len(findings) != 0 {
		t.Errorf("Lowercase name must not match the rule table, got %d findings", len(findings))
	}
}

func TestCheckContraindications_AllergyMatch(t *testing.T) {
	patient := entities.PatientInfo{Allergies: []string{"penicillin"}}

	findings := CheckContraindications(reference.Contraindications(), []entities.Medication{med("Amoxicillin")}, patient)
	if len(findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(findings))
	}
	if findings[0].ID != "amoxicillin-penicillin-allergy" {
		t.Errorf("Expected amoxicillin-penicillin-allergy, got %s", findings[0].ID)
	}
}

func TestCheckContraindications_PregnancyStatus(t *testing.T) {
	patient := entities.PatientInfo{PregnancyStatus: entities.PregnancyPregnant}

	findings := CheckContraindications(reference.Contraindications(), []entities.Medication{med("Lisinopril")}, patient)
	if len(findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(findings))
	}
	if findings[0].ID != "lisinopril-pregnancy" {
		t.Errorf("Expected lisinopril-pregnancy, got %s", findings[0].ID)
	}

	notPregnant := entities.PatientInfo{}
	findings = CheckContraindications(reference.Contraindications(), []entities.Medication{med("Lisinopril")}, notPregnant)
	if len(findings) != 0 {
		t.Errorf("Expected no findings without pregnancy, got %d", len(findings))
	}
}

func TestIsConditionPresent_KeywordSpecials(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		patient   entities.PatientInfo
		want      bool
	}{
		{"renal via dialysis", "Severe renal impairment", entities.PatientInfo{MedicalConditions: []string{"on dialysis"}}, true},
		{"liver via hepatic", "Severe liver disease", entities.PatientInfo{MedicalConditions: []string{"hepatic cirrhosis"}}, true},
		{"asthma via copd", "Severe asthma", entities.PatientInfo{MedicalConditions: []string{"COPD"}}, true},
		{"bleeding via hemorrhage", "Active bleeding", entities.PatientInfo{MedicalConditions: []string{"intracranial hemorrhage"}}, true},
		{"seizure via epilepsy", "Seizure disorder", entities.PatientInfo{MedicalConditions: []string{"epilepsy"}}, true},
		{"no match", "Severe renal impairment", entities.PatientInfo{MedicalConditions: []string{"diabetes"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConditionPresent(tt.condition, tt.patient); got != tt.want {
				t.Errorf("isConditionPresent(%q) = %v, want %v", tt.condition, got, tt.want)
			}
		})
	}
}

func TestContraindicationsForMedication(t *testing.T) {
	rules := ContraindicationsForMedication(reference.Contraindications(), "Warfarin")
	if len(rules) != 2 {
		t.Errorf("Expected 2 Warfarin rules, got %d", len(rules))
	}

	none := ContraindicationsForMedication(reference.Contraindications(), "warfarin")
	if len(none) != 0 {
		t.Errorf("Lookup is case-sensitive, got %d rules", len(none))
	}
}

func TestCalculateRiskScore(t *testing.T) {
	findings := []entities.Contraindication{
		{Severity: entities.SeverityAbsolute},
		{Severity: entities.SeverityAbsolute},
		{Severity: entities.SeverityRelative},
	}

	if got := CalculateRiskScore(findings); got != 25 {
		t.Errorf("Expected score 25, got %d", got)
	}

	if got := CalculateRiskScore(nil); got != 0 {
		t.Errorf("Expected score 0 for no findings, got %d", got)
	}
}

func TestCalculateRiskScore_Cap(t *testing.T) {
	findings := make([]entities.Contraindication, 15)
	for i := range findings {
		findings[i] = entities.Contraindication{Severity: entities.SeverityAbsolute}
	}

	if got := CalculateRiskScore(findings); got != 100 {
		t.Errorf("Expected capped score 100, got %d", got)
	}
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Minimal Risk"},
		{19, "Minimal Risk"},
		{20, "Low Risk"},
		{40, "Moderate Risk"},
		{60, "High Risk"},
		{80, "Very High Risk"},
		{100, "Very High Risk"},
	}

	for _, tt := range tests {
		if got := RiskLevel(tt.score); got != tt.want {
			t.Errorf("RiskLevel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestMonitoringRecommendations_Dedup(t *testing.T) {
	findings := []entities.Contraindication{
		{Monitoring: []string{"INR", "Hemoglobin"}},
		{Monitoring: []string{"INR", "Liver function tests"}},
	}

	monitoring := MonitoringRecommendations(findings)
	if len(monitoring) != 3 {
		t.Fatalf("Expected 3 unique items, got %d", len(monitoring))
	}
	if monitoring[0] != "INR" || monitoring[1] != "Hemoglobin" || monitoring[2] != "Liver function tests" {
		t.Errorf("Unexpected order: %v", monitoring)
	}
}

func TestPregnancyContraindications(t *testing.T) {
	pregnant := entities.PatientInfo{PregnancyStatus: entities.PregnancyPregnant}
	findings := PregnancyContraindications(reference.Contraindications(), []entities.Medication{med("Lisinopril")}, pregnant)
	if len(findings) != 1 {
		t.Errorf("Expected 1 pregnancy finding, got %d", len(findings))
	}

	findings = PregnancyContraindications(reference.Contraindications(), []entities.Medication{med("Lisinopril")}, entities.PatientInfo{})
	if len(findings) != 0 {
		t.Errorf("Expected no findings for non-pregnant patient, got %d", len(findings))
	}
}
