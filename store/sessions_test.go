package store

import (
	"encoding/json"
	"testing"

	"github.com/ntufar/meps/entities"
)

func newTestStore() *SessionStore {
	return NewSessionStore(10, 5)
}

func TestCreateAndGetSession(t *testing.T) {
	s := newTestStore()

	session, err := s.Create("morning review")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if session.ID == "" {
		t.Error("Expected a generated session ID")
	}
	if session.Name != "morning review" {
		t.Errorf("Unexpected name: %s", session.Name)
	}
	if session.Medications == nil || len(session.Medications) != 0 {
		t.Error("New session should have an empty medication list")
	}

	got, ok := s.Get(session.ID)
	if !ok {
		t.Fatal("Get should find the created session")
	}
	if got.ID != session.ID {
		t.Errorf("ID mismatch: %s vs %s", got.ID, session.ID)
	}
}

func TestGetUnknownSession(t *testing.T) {
	s := newTestStore()
	if _, ok := s.Get("nope"); ok {
		t.Error("Get should report missing sessions")
	}
}

func TestSessionLimit(t *testing.T) {
	s := NewSessionStore(2, 5)

	if _, err := s.Create("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create("b"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create("c"); err == nil {
		t.Error("Expected session limit error")
	}
}

func TestAddAndRemoveMedication(t *testing.T) {
	s := newTestStore()
	session, _ := s.Create("review")

	updated, err := s.AddMedication(session.ID, entities.Medication{Name: "Warfarin"})
	if err != nil {
		t.Fatalf("AddMedication failed: %v", err)
	}
	if len(updated.Medications) != 1 {
		t.Fatalf("Expected 1 medication, got %d", len(updated.Medications))
	}
	if updated.Medications[0].ID == "" {
		t.Error("Medication should get a generated entry ID")
	}

	// Duplicate names are rejected case-insensitively.
	if _, err := s.AddMedication(session.ID, entities.Medication{Name: "WARFARIN"}); err == nil {
		t.Error("Expected duplicate medication error")
	}

	removed, err := s.RemoveMedication(session.ID, updated.Medications[0].ID)
	if err != nil {
		t.Fatalf("RemoveMedication failed: %v", err)
	}
	if len(removed.Medications) != 0 {
		t.Errorf("Expected empty list after removal, got %d", len(removed.Medications))
	}

	if _, err := s.RemoveMedication(session.ID, "missing"); err == nil {
		t.Error("Expected error for unknown medication ID")
	}
}

func TestMedicationLimit(t *testing.T) {
	s := NewSessionStore(10, 2)
	session, _ := s.Create("review")

	s.AddMedication(session.ID, entities.Medication{Name: "A"})
	s.AddMedication(session.ID, entities.Medication{Name: "B"})
	if _, err := s.AddMedication(session.ID, entities.Medication{Name: "C"}); err == nil {
		t.Error("Expected medication limit error")
	}
}

func TestSetPatient(t *testing.T) {
	s := newTestStore()
	session, _ := s.Create("review")

	patient := entities.PatientInfo{Age: 70, Allergies: []string{"penicillin"}}
	updated, err := s.SetPatient(session.ID, patient)
	if err != nil {
		t.Fatalf("SetPatient failed: %v", err)
	}
	if updated.Patient.Age != 70 {
		t.Errorf("Expected age 70, got %d", updated.Patient.Age)
	}
}

func TestDeleteSession(t *testing.T) {
	s := newTestStore()
	session, _ := s.Create("review")

	if !s.Delete(session.ID) {
		t.Error("Delete should succeed for live session")
	}
	if s.Delete(session.ID) {
		t.Error("Delete should fail for removed session")
	}
	if s.Count() != 0 {
		t.Errorf("Expected 0 sessions, got %d", s.Count())
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore()
	session, _ := s.Create("transfer")
	s.AddMedication(session.ID, entities.Medication{Name: "Warfarin", Dosage: "5mg"})
	s.SetPatient(session.ID, entities.PatientInfo{Age: 64, Allergies: []string{"sulfa"}})

	data, err := s.Export(session.ID)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	imported, err := s.Import(data)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if imported.ID == session.ID {
		t.Error("Import must assign a fresh ID")
	}
	if imported.Name != "transfer" {
		t.Errorf("Name should survive the round trip, got %s", imported.Name)
	}
	if len(imported.Medications) != 1 || imported.Medications[0].Name != "Warfarin" {
		t.Errorf("Medications should survive the round trip: %v", imported.Medications)
	}
	if imported.Patient.Age != 64 || len(imported.Patient.Allergies) != 1 {
		t.Errorf("Patient should survive the round trip: %+v", imported.Patient)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	s := newTestStore()
	if _, err := s.Import([]byte("not json")); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestImportEnforcesMedicationLimit(t *testing.T) {
	s := NewSessionStore(10, 1)

	payload, _ := json.Marshal(Session{
		Name: "big",
		Medications: []entities.Medication{
			{Name: "A"}, {Name: "B"},
		},
	})

	if _, err := s.Import(payload); err == nil {
		t.Error("Expected medication limit error on import")
	}
}

func TestReturnedSessionsAreCopies(t *testing.T) {
	s := newTestStore()
	session, _ := s.Create("isolated")
	s.AddMedication(session.ID, entities.Medication{Name: "Warfarin"})

	got, _ := s.Get(session.ID)
	got.Medications[0].Name = "Tampered"

	again, _ := s.Get(session.ID)
	if again.Medications[0].Name != "Warfarin" {
		t.Error("Mutating a returned session must not affect stored state")
	}
}
