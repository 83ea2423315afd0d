package validation

import (
	"strings"
	"testing"

	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/reference"
)

func TestValidateInput_Valid(t *testing.T) {
	v := NewDataValidator()

	valid := []string{
		"Warfarin",
		"Tylenol Extra Strength",
		"co-trimoxazole",
		"vitamin-k",
		"Insulin Glargine",
	}

	for _, input := range valid {
		if err := v.ValidateInput(input); err != nil {
			t.Errorf("ValidateInput(%q) unexpected error: %v", input, err)
		}
	}
}

func TestValidateInput_Invalid(t *testing.T) {
	v := NewDataValidator()

	invalid := []string{
		"",
		" ",
		"a",
		strings.Repeat("x", 150),
		"<script>alert(1)</script>",
		"' or 1=1",
		"../etc/passwd",
		"one two three four five six seven",
		strings.Repeat("a", 20),
	}

	for _, input := range invalid {
		if err := v.ValidateInput(input); err == nil {
			t.Errorf("ValidateInput(%q) expected error", input)
		}
	}
}

func TestValidateMedication(t *testing.T) {
	v := NewDataValidator()

	good := entities.Medication{Name: "Warfarin", Unit: entities.UnitMg, Route: entities.RouteOral}
	if err := v.ValidateMedication(&good); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if err := v.ValidateMedication(nil); err == nil {
		t.Error("Expected error for nil medication")
	}

	empty := entities.Medication{Name: "   "}
	if err := v.ValidateMedication(&empty); err == nil {
		t.Error("Expected error for blank name")
	}

	badUnit := entities.Medication{Name: "Warfarin", Unit: "stones"}
	if err := v.ValidateMedication(&badUnit); err == nil {
		t.Error("Expected error for unknown unit")
	}

	negative := entities.Medication{Name: "Warfarin", Strength: -5}
	if err := v.ValidateMedication(&negative); err == nil {
		t.Error("Expected error for negative strength")
	}
}

func TestValidatePatient(t *testing.T) {
	v := NewDataValidator()

	good := entities.PatientInfo{Age: 40, Weight: 70, Gender: entities.GenderFemale}
	if err := v.ValidatePatient(&good); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if err := v.ValidatePatient(nil); err == nil {
		t.Error("Expected error for nil patient")
	}

	tooOld := entities.PatientInfo{Age: 200}
	if err := v.ValidatePatient(&tooOld); err == nil {
		t.Error("Expected error for out-of-range age")
	}

	badGender := entities.PatientInfo{Age: 30, Gender: "robot"}
	if err := v.ValidatePatient(&badGender); err == nil {
		t.Error("Expected error for unknown gender")
	}

	blankAllergy := entities.PatientInfo{Age: 30, Allergies: []string{" "}}
	if err := v.ValidatePatient(&blankAllergy); err == nil {
		t.Error("Expected error for blank allergy entry")
	}

	// Zero-valued patient (anonymous check) is acceptable.
	anonymous := entities.PatientInfo{}
	if err := v.ValidatePatient(&anonymous); err != nil {
		t.Errorf("Zero patient should validate: %v", err)
	}
}

func TestReportDataQuality_CleanTables(t *testing.T) {
	v := NewDataValidator()

	report := v.ReportDataQuality(
		reference.InteractionRules(),
		reference.Contraindications(),
		reference.DosageRules(),
		reference.Catalog(),
	)

	if len(report.DuplicateContraindicationIDs) != 0 {
		t.Errorf("Unexpected duplicate IDs: %v", report.DuplicateContraindicationIDs)
	}
	if report.InteractionRulesUnderTwo != 0 {
		t.Errorf("Unexpected degenerate interaction rules: %d", report.InteractionRulesUnderTwo)
	}
	if len(report.DosageRulesWithoutCatalog) != 0 {
		t.Errorf("Unexpected orphan dosage rules: %v", report.DosageRulesWithoutCatalog)
	}
	if len(report.CatalogDuplicateNames) != 0 {
		t.Errorf("Unexpected duplicate catalog names: %v", report.CatalogDuplicateNames)
	}
}

func TestReportDataQuality_DetectsIssues(t *testing.T) {
	v := NewDataValidator()

	interactions := []entities.InteractionRule{
		{Medications: []string{"solo"}},
	}
	contraindications := []entities.Contraindication{
		{ID: "dup", Medication: "Ghost"},
		{ID: "dup", Medication: "Warfarin"},
	}
	dosages := []entities.DosageRule{
		{Medication: "unobtainium"},
	}
	catalog := []entities.MedicationOption{
		{Name: "Warfarin"},
		{Name: "warfarin"},
	}

	report := v.ReportDataQuality(interactions, contraindications, dosages, catalog)

	if report.InteractionRulesUnderTwo != 1 {
		t.Errorf("Expected 1 degenerate interaction rule, got %d", report.InteractionRulesUnderTwo)
	}
	if len(report.DuplicateContraindicationIDs) != 1 || report.DuplicateContraindicationIDs[0] != "dup" {
		t.Errorf("Expected duplicate ID dup, got %v", report.DuplicateContraindicationIDs)
	}
	if len(report.DosageRulesWithoutCatalog) != 1 {
		t.Errorf("Expected 1 orphan dosage rule, got %v", report.DosageRulesWithoutCatalog)
	}
	if len(report.ContraindicationsOffCatalog) != 1 || report.ContraindicationsOffCatalog[0] != "Ghost" {
		t.Errorf("Expected Ghost off catalog, got %v", report.ContraindicationsOffCatalog)
	}
	if len(report.CatalogDuplicateNames) != 1 {
		t.Errorf("Expected 1 duplicate catalog name, got %v", report.CatalogDuplicateNames)
	}
}
