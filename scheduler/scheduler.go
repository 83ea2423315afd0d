// Package scheduler handles the periodic reference-data revalidation and
// health monitoring. The tables ship with the binary, so the scheduled job
// reloads them, re-runs the data quality checks and logs what it finds.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/ntufar/meps/interfaces"
	"github.com/ntufar/meps/logging"
	"github.com/ntufar/meps/reference"
	"github.com/ntufar/meps/validation"
)

// Compile-time check to ensure Scheduler implements the Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles data updates and health monitoring using dependency injection
type Scheduler struct {
	dataStore interfaces.DataStore
	scheduler *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(dataStore interfaces.DataStore) *Scheduler {
	return &Scheduler{
		dataStore: dataStore,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start performs the initial table load and schedules the daily
// revalidation and health monitoring.
func (s *Scheduler) Start() error {
	if err := s.updateData(); err != nil {
		logging.Error("Failed to perform initial data load", "error", err)
		return fmt.Errorf("initial data load failed: %w", err)
	}

	// Revalidate daily at 06:00
	_, err := s.scheduler.Every(1).Days().At("06:00").Do(func() {
		if err := s.updateData(); err != nil {
			logging.Error("Failed to update data", "error", err)
		}
	})

	if err != nil {
		logging.Error("Failed to schedule updates", "error", err)
		return fmt.Errorf("failed to schedule updates: %w", err)
	}

	s.scheduler.StartAsync()

	s.startHealthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// updateData reloads the reference tables and logs data quality findings
func (s *Scheduler) updateData() error {
	// Prevent concurrent updates
	if !s.dataStore.BeginUpdate() {
		logging.Info("Update already in progress, skipping...")
		return nil
	}
	defer s.dataStore.EndUpdate()

	start := time.Now()

	interactions := reference.InteractionRules()
	allergies := reference.AllergyRules()
	contraindications := reference.Contraindications()
	dosages := reference.DosageRules()
	catalog := reference.Catalog()
	catalogMap := reference.CatalogMap(catalog)

	validator := validation.NewDataValidator()
	report := validator.ReportDataQuality(interactions, contraindications, dosages, catalog)

	if len(report.DuplicateContraindicationIDs) > 0 {
		logging.Warn("Duplicate contraindication IDs detected",
			"total", len(report.DuplicateContraindicationIDs),
			"id_list", report.DuplicateContraindicationIDs,
		)
	}

	if report.InteractionRulesUnderTwo > 0 {
		logging.Warn("Interaction rules with fewer than two required terms",
			"count", report.InteractionRulesUnderTwo,
		)
	}

	if len(report.DosageRulesWithoutCatalog) > 0 {
		logging.Warn("Dosage rules without catalog entries",
			"count", len(report.DosageRulesWithoutCatalog),
			"medications", report.DosageRulesWithoutCatalog,
		)
	}

	if len(report.ContraindicationsOffCatalog) > 0 {
		logging.Warn("Contraindications referencing medications outside the catalog",
			"count", len(report.ContraindicationsOffCatalog),
			"medications", report.ContraindicationsOffCatalog,
		)
	}

	if len(report.CatalogDuplicateNames) > 0 {
		logging.Warn("Duplicate catalog names detected",
			"total", len(report.CatalogDuplicateNames),
			"names", report.CatalogDuplicateNames,
		)
	}

	// Atomic swap
	s.dataStore.UpdateData(interactions, allergies, contraindications, dosages, catalog, catalogMap)

	elapsed := time.Since(start)
	logging.Info("Reference data update completed",
		"duration", elapsed.String(),
		"interaction_rules", len(interactions),
		"allergy_rules", len(allergies),
		"contraindications", len(contraindications),
		"dosage_rules", len(dosages),
		"catalog", len(catalog))

	return nil
}

// startHealthMonitoring monitors the freshness of the reference data
func (s *Scheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			lastUpdate := s.dataStore.GetLastUpdated()
			if time.Since(lastUpdate) > 25*time.Hour {
				logging.Warn("Reference data hasn't been revalidated in over 25 hours")
			}
		}
	}()
}
