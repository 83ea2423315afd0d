package engine

import (
	"testing"

	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/reference"
)

func TestCheckAllergies_NoAllergies(t *testing.T) {
	alerts := CheckAllergies(reference.AllergyRules(), []entities.Medication{med("Amoxicillin")}, entities.PatientInfo{})

	if alerts == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(alerts) != 0 {
		t.Errorf("Expected no alerts without allergies, got %d", len(alerts))
	}
}

func TestCheckAllergies_PenicillinCrossReactivity(t *testing.T) {
	patient := entities.PatientInfo{Allergies: []string{"Penicillin"}}
	alerts := CheckAllergies(reference.AllergyRules(), []entities.Medication{med("Amoxicillin")}, patient)

	if len(alerts) == 0 {
		t.Fatal("Expected an alert for amoxicillin with penicillin allergy")
	}

	got := alerts[0]
	if got.Medication != "Amoxicillin" {
		t.Errorf("Expected medication Amoxicillin, got %s", got.Medication)
	}
	// The alert carries the patient's original casing.
	if got.Allergen != "Penicillin" {
		t.Errorf("Expected allergen Penicillin, got %s", got.Allergen)
	}
	if got.Severity != entities.AllergySevere {
		t.Errorf("Expected severe alert, got %s", got.Severity)
	}
	if got.Alternative != "azithromycin, clindamycin, doxycycline, vancomycin" {
		t.Errorf("Unexpected alternatives: %s", got.Alternative)
	}
}

func TestCheckAllergies_GenericNameMatches(t *testing.T) {
	patient := entities.PatientInfo{Allergies: []string{"aspirin"}}
	medication := entities.Medication{Name: "Advil", GenericName: "Ibuprofen"}

	alerts := CheckAllergies(reference.AllergyRules(), []entities.Medication{medication}, patient)

	if len(alerts) == 0 {
		t.Fatal("Expected an alert via the generic name")
	}
	if alerts[0].Medication != "Advil" {
		t.Errorf("Alert should carry the brand name, got %s", alerts[0].Medication)
	}
}

func TestCheckAllergies_NoMatch(t *testing.T) {
	patient := entities.PatientInfo{Allergies: []string{"latex"}}
	alerts := CheckAllergies(reference.AllergyRules(), []entities.Medication{med("Metformin")}, patient)

	if len(alerts) != 0 {
		t.Errorf("Expected no alerts, got %d", len(alerts))
	}
}

func TestCheckAllergies_OneAlertPerTriple(t *testing.T) {
	// Penicillin and amoxicillin rules both cover this pair, so two alerts
	// come out for one medication and one allergy.
	patient := entities.PatientInfo{Allergies: []string{"penicillin"}}
	alerts := CheckAllergies(reference.AllergyRules(), []entities.Medication{med("Amoxicillin")}, patient)

	if len(alerts) != 2 {
		t.Errorf("Expected 2 alerts across overlapping rules, got %d", len(alerts))
	}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"amoxicillin", "amoxicillin", true},
		{"amoxicillin 500mg", "amoxicillin", true},
		{"amoxicillin", "amoxicillin 500mg", true},
		{"warfarin", "aspirin", false},
		{"", "aspirin", false},
		{"aspirin", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		if got := fuzzyMatch(tt.a, tt.b); got != tt.want {
			t.Errorf("fuzzyMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
