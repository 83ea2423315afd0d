package scheduler

import (
	"testing"

	"github.com/ntufar/meps/data"
)

func TestStartLoadsTables(t *testing.T) {
	dataContainer := data.NewDataContainer()
	s := NewScheduler(dataContainer)

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()

	if len(dataContainer.GetInteractionRules()) == 0 {
		t.Error("Expected interaction rules after initial load")
	}
	if len(dataContainer.GetCatalog()) == 0 {
		t.Error("Expected a populated catalog after initial load")
	}
	if dataContainer.GetLastUpdated().IsZero() {
		t.Error("Expected last updated timestamp after initial load")
	}
	if dataContainer.IsUpdating() {
		t.Error("Update flag must be cleared after the load finishes")
	}
}

func TestUpdateDataSkipsWhenBusy(t *testing.T) {
	dataContainer := data.NewDataContainer()
	s := NewScheduler(dataContainer)

	dataContainer.BeginUpdate()
	defer dataContainer.EndUpdate()

	// A concurrent update is not an error, the run is skipped.
	if err := s.updateData(); err != nil {
		t.Fatalf("updateData should skip, not fail: %v", err)
	}
	if len(dataContainer.GetInteractionRules()) != 0 {
		t.Error("Tables must not change when the update is skipped")
	}
}

func TestUpdateDataIsRepeatable(t *testing.T) {
	dataContainer := data.NewDataContainer()
	s := NewScheduler(dataContainer)

	if err := s.updateData(); err != nil {
		t.Fatalf("First update failed: %v", err)
	}
	first := dataContainer.GetLastUpdated()

	if err := s.updateData(); err != nil {
		t.Fatalf("Second update failed: %v", err)
	}
	if dataContainer.GetLastUpdated().Before(first) {
		t.Error("Last updated must move forward on revalidation")
	}
}
