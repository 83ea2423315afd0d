// Package report renders a plain-text safety summary for a medication
// review session.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ntufar/meps/engine"
	"github.com/ntufar/meps/entities"
)

var titleCaser = cases.Title(language.English)

// Render produces a human-readable report from a check bundle. Findings
// are ordered by severity, highest first, within each section.
func Render(name string, medications []entities.Medication, patient entities.PatientInfo, bundle entities.CheckBundle) string {
	var b strings.Builder

	title := strings.TrimSpace(name)
	if title == "" {
		title = "Medication Review"
	}
	fmt.Fprintf(&b, "%s\n", titleCaser.String(title))
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04"))

	b.WriteString("MEDICATIONS\n")
	if len(medications) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, medication := range medications {
		line := "  - " + titleCaser.String(medication.Name)
		if medication.Dosage != "" {
			line += " " + medication.Dosage
		}
		if medication.Frequency != "" {
			line += ", " + medication.Frequency
		}
		b.WriteString(line + "\n")
	}

	fmt.Fprintf(&b, "\nPATIENT\n  Age: %d", patient.Age)
	if patient.Weight > 0 {
		fmt.Fprintf(&b, ", Weight: %.1f kg", patient.Weight)
	}
	b.WriteString("\n")
	if len(patient.Allergies) > 0 {
		fmt.Fprintf(&b, "  Allergies: %s\n", strings.Join(patient.Allergies, ", "))
	}
	if len(patient.MedicalConditions) > 0 {
		fmt.Fprintf(&b, "  Conditions: %s\n", strings.Join(patient.MedicalConditions, ", "))
	}

	fmt.Fprintf(&b, "\nRISK: %s (score %d)\n", bundle.RiskLevel, bundle.RiskScore)

	b.WriteString("\nDRUG INTERACTIONS\n")
	if len(bundle.Interactions) == 0 {
		b.WriteString("  None found.\n")
	} else {
		interactions := make([]entities.DrugInteraction, len(bundle.Interactions))
		copy(interactions, bundle.Interactions)
		sort.SliceStable(interactions, func(i, j int) bool {
			return entities.InteractionSeverityRank(interactions[i].Severity) > entities.InteractionSeverityRank(interactions[j].Severity)
		})
		for _, interaction := range interactions {
			fmt.Fprintf(&b, "  [%s] %s\n", strings.ToUpper(interaction.Severity), interaction.Description)
			fmt.Fprintf(&b, "    Effect: %s\n", interaction.ClinicalEffect)
			fmt.Fprintf(&b, "    Management: %s\n", interaction.Management)
		}
	}

	b.WriteString("\nALLERGY ALERTS\n")
	if len(bundle.AllergyAlerts) == 0 {
		b.WriteString("  None found.\n")
	} else {
		alerts := make([]entities.AllergyAlert, len(bundle.AllergyAlerts))
		copy(alerts, bundle.AllergyAlerts)
		sort.SliceStable(alerts, func(i, j int) bool {
			return entities.AllergySeverityRank(alerts[i].Severity) > entities.AllergySeverityRank(alerts[j].Severity)
		})
		for _, alert := range alerts {
			fmt.Fprintf(&b, "  [%s] %s vs allergy %q\n", strings.ToUpper(alert.Severity), titleCaser.String(alert.Medication), alert.Allergen)
			fmt.Fprintf(&b, "    Reaction: %s\n", alert.Reaction)
			fmt.Fprintf(&b, "    Action: %s\n", alert.Action)
			if alert.Alternative != "" {
				fmt.Fprintf(&b, "    Alternatives: %s\n", alert.Alternative)
			}
		}
	}

	b.WriteString("\nCONTRAINDICATIONS\n")
	if len(bundle.Contraindications) == 0 {
		b.WriteString("  None found.\n")
	} else {
		for _, finding := range bundle.Contraindications {
			fmt.Fprintf(&b, "  [%s] %s with %s\n", strings.ToUpper(finding.Severity), titleCaser.String(finding.Medication), finding.Condition)
			fmt.Fprintf(&b, "    %s\n", finding.Description)
			if finding.Alternative != "" {
				fmt.Fprintf(&b, "    Alternative: %s\n", finding.Alternative)
			}
		}
		if monitoring := engine.MonitoringRecommendations(bundle.Contraindications); len(monitoring) > 0 {
			b.WriteString("  Monitoring:\n")
			for _, item := range monitoring {
				fmt.Fprintf(&b, "    - %s\n", item)
			}
		}
	}

	b.WriteString("\nDOSAGE\n")
	if len(bundle.Dosages) == 0 {
		b.WriteString("  No dosage estimates.\n")
	} else {
		for _, dosage := range bundle.Dosages {
			fmt.Fprintf(&b, "  %s: %.1f %s", titleCaser.String(dosage.Medication.Name), dosage.CalculatedDose, dosage.Unit)
			if dosage.MaxDailyDose > 0 {
				fmt.Fprintf(&b, " (max %.1f %s/day)", dosage.MaxDailyDose, dosage.Unit)
			}
			b.WriteString("\n")
			for _, warning := range dosage.Warnings {
				fmt.Fprintf(&b, "    ! %s\n", warning)
			}
		}
	}

	b.WriteString("\nThis report is informational and does not replace clinical judgment.\n")
	return b.String()
}
