package engine

import (
	"testing"

	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/reference"
)

func med(name string) entities.Medication {
	return entities.Medication{Name: name}
}

func TestCheckInteractions_EmptyList(t *testing.T) {
	interactions := CheckInteractions(reference.InteractionRules(), nil)

	if interactions == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(interactions) != 0 {
		t.Errorf("Expected no interactions for empty list, got %d", len(interactions))
	}
}

func TestCheckInteractions_SingleMedicationNoFallback(t *testing.T) {
	interactions := CheckInteractions(reference.InteractionRules(), []entities.Medication{med("Wellbutrin")})

	if len(interactions) != 0 {
		t.Errorf("Expected no interactions for a single medication, got %d", len(interactions))
	}
}

func TestCheckInteractions_KnownPair(t *testing.T) {
	interactions := CheckInteractions(reference.InteractionRules(), []entities.Medication{
		med("Wellbutrin XL"),
		med("Prozac"),
	})

	if len(interactions) != 1 {
		t.Fatalf("Expected 1 interaction, got %d", len(interactions))
	}

	got := interactions[0]
	if got.ID != "interaction-wellbutrin-prozac" {
		t.Errorf("Expected ID interaction-wellbutrin-prozac, got %s", got.ID)
	}
	if got.Severity != entities.InteractionModerate {
		t.Errorf("Expected moderate severity, got %s", got.Severity)
	}
	if got.Description != "Wellbutrin (Bupropion) and Prozac (Fluoxetine)" {
		t.Errorf("Unexpected description: %s", got.Description)
	}
}

func TestCheckInteractions_CaseInsensitive(t *testing.T) {
	interactions := CheckInteractions(reference.InteractionRules(), []entities.Medication{
		med("WARFARIN"),
		med("aspirin"),
	})

	if len(interactions) != 1 {
		t.Fatalf("Expected 1 interaction, got %d", len(interactions))
	}
	if interactions[0].ID != "interaction-warfarin-aspirin" {
		t.Errorf("Unexpected ID: %s", interactions[0].ID)
	}
}

func TestCheckInteractions_SubstringMatching(t *testing.T) {
	// The full product name contains the rule's fragment.
	interactions := CheckInteractions(reference.InteractionRules(), []entities.Medication{
		med("Warfarin Sodium 5mg"),
		med("Ibuprofen 200mg"),
	})

	if len(interactions) != 1 {
		t.Fatalf("Expected 1 interaction, got %d", len(interactions))
	}
	if interactions[0].ID != "interaction-warfarin-ibuprofen" {
		t.Errorf("Unexpected ID: %s", interactions[0].ID)
	}
}

func TestCheckInteractions_MultipleRulesFire(t *testing.T) {
	interactions := CheckInteractions(reference.InteractionRules(), []entities.Medication{
		med("Warfarin"),
		med("Aspirin"),
		med("Ibuprofen"),
	})

	// warfarin+aspirin and warfarin+ibuprofen both fire, in table order.
	if len(interactions) != 2 {
		t.Fatalf("Expected 2 interactions, got %d", len(interactions))
	}
	if interactions[0].ID != "interaction-warfarin-aspirin" {
		t.Errorf("Expected warfarin-aspirin first, got %s", interactions[0].ID)
	}
	if interactions[1].ID != "interaction-warfarin-ibuprofen" {
		t.Errorf("Expected warfarin-ibuprofen second, got %s", interactions[1].ID)
	}
}

func TestCheckInteractions_GenericFallback(t *testing.T) {
	interactions := CheckInteractions(reference.InteractionRules(), []entities.Medication{
		med("Tylenol"),
		med("Amlodipine"),
		med("Omeprazole"),
	})

	if len(interactions) != 1 {
		t.Fatalf("Expected the generic fallback, got %d interactions", len(interactions))
	}

	got := interactions[0]
	if got.ID != "generic-interaction" {
		t.Errorf("Expected generic-interaction, got %s", got.ID)
	}
	if got.Severity != entities.InteractionMinor {
		t.Errorf("Expected minor severity, got %s", got.Severity)
	}
	// The fallback names the first two medications only.
	if got.Description != "Tylenol and Amlodipine" {
		t.Errorf("Unexpected fallback description: %s", got.Description)
	}
	if got.Evidence != entities.EvidencePoor {
		t.Errorf("Expected poor evidence, got %s", got.Evidence)
	}
}

func TestCheckInteractions_NoFallbackWhenRuleFires(t *testing.T) {
	interactions := CheckInteractions(reference.InteractionRules(), []entities.Medication{
		med("Warfarin"),
		med("Aspirin"),
	})

	for _, interaction := range interactions {
		if interaction.ID == "generic-interaction" {
			t.Error("Fallback must not be emitted when a rule fires")
		}
	}
}

func TestCheckInteractions_EmptyRuleNeverFires(t *testing.T) {
	rules := []entities.InteractionRule{
		{Medications: []string{}, Severity: entities.InteractionMajor},
	}

	interactions := CheckInteractions(rules, []entities.Medication{med("Warfarin")})
	if len(interactions) != 0 {
		t.Errorf("Rule with no required terms must never fire, got %d findings", len(interactions))
	}
}

func TestSearchInteractions(t *testing.T) {
	rules := SearchInteractions(reference.InteractionRules(), "warfarin")
	if len(rules) != 3 {
		t.Errorf("Expected 3 warfarin rules, got %d", len(rules))
	}

	none := SearchInteractions(reference.InteractionRules(), "nonexistent-drug-xyz")
	if len(none) != 0 {
		t.Errorf("Expected no rules, got %d", len(none))
	}
}

func TestCheckInteractions_Deterministic(t *testing.T) {
	meds := []entities.Medication{med("Warfarin"), med("Aspirin"), med("Ibuprofen")}

	first := CheckInteractions(reference.InteractionRules(), meds)
	for i := 0; i < 5; i++ {
		again := CheckInteractions(reference.InteractionRules(), meds)
		if len(again) != len(first) {
			t.Fatalf("Result count changed between runs: %d vs %d", len(again), len(first))
		}
		for j := range again {
			if again[j].ID != first[j].ID {
				t.Errorf("Result order changed between runs at index %d", j)
			}
		}
	}
}
