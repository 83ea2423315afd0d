// Package validation provides input and reference-data validation for the
// medication safety API.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/interfaces"
)

// Pre-compiled regex, compiled once at package initialization.
var (
	// Input validation: alphanumeric + safe punctuation
	inputRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+'/\(\)]+$`)

	// Dangerous patterns as strings; strings.Contains is much faster than
	// regex for plain substring checks.
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "onmouseover=", "onfocus=", "onblur=", "onchange=", "onsubmit=",
		"eval(", "expression(", "url(", "import ", "@import", "binding(", "behavior(",
		// SQL injection patterns
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"update set", "--", "/*", "*/", "xp_", "sp_", "exec(", "execute(",
		// Command injection patterns
		"; ", "| ", "& ", "`", "$(", "${",
		// Path traversal patterns
		"../", "..\\", "%2e%2e", "file://",
		// NoSQL injection patterns
		"{$ne:", "{$gt:", "{$where:", "{$or:", "{$regex:", "{$expr:",
	}
)

// Validation bounds for patient profiles.
const (
	maxPatientAge   = 150
	maxWeightKg     = 500
	maxHeightCm     = 300
	maxNameLength   = 200
	maxListEntries  = 50
	maxEntryLength  = 100
	maxDosageLength = 50
)

// DataValidatorImpl implements the interfaces.Validator interface
type DataValidatorImpl struct{}

var _ interfaces.Validator = (*DataValidatorImpl)(nil)

// NewDataValidator creates a new data validator
func NewDataValidator() interfaces.Validator {
	return &DataValidatorImpl{}
}

// ValidateInput validates free-text user input such as search terms and
// medication names coming off the wire.
func (v *DataValidatorImpl) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(input) < 2 {
		return fmt.Errorf("input too short: minimum 2 characters")
	}

	if len(input) > maxEntryLength {
		return fmt.Errorf("input too long: maximum %d characters", maxEntryLength)
	}

	words := strings.Fields(input)
	if len(words) > 6 {
		return fmt.Errorf("input too complex: maximum 6 words allowed")
	}

	lowerInput := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerInput, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}

	if !inputRegex.MatchString(input) {
		return fmt.Errorf("input contains invalid characters. Only letters, numbers, spaces, hyphens, apostrophes, periods, plus sign, slashes and parentheses are allowed")
	}

	if hasExcessiveRepetition(input) {
		return fmt.Errorf("input contains excessive character repetition")
	}

	return nil
}

// ValidateMedication checks a medication entry from a check request or a
// session update.
func (v *DataValidatorImpl) ValidateMedication(m *entities.Medication) error {
	if m == nil {
		return fmt.Errorf("medication is nil")
	}

	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("medication name cannot be empty")
	}

	if len(m.Name) > maxNameLength {
		return fmt.Errorf("medication name too long: %d characters", len(m.Name))
	}

	if len(m.GenericName) > maxNameLength {
		return fmt.Errorf("generic name too long for %s: %d characters", m.Name, len(m.GenericName))
	}

	if len(m.Dosage) > maxDosageLength {
		return fmt.Errorf("dosage string too long for %s: %d characters", m.Name, len(m.Dosage))
	}

	if m.Unit != "" && !entities.ValidUnit(m.Unit) {
		return fmt.Errorf("unknown unit for %s: %s", m.Name, m.Unit)
	}

	if m.Route != "" && !entities.ValidRoute(m.Route) {
		return fmt.Errorf("unknown route for %s: %s", m.Name, m.Route)
	}

	if m.Form != "" && !entities.ValidForm(m.Form) {
		return fmt.Errorf("unknown form for %s: %s", m.Name, m.Form)
	}

	if m.Strength < 0 {
		return fmt.Errorf("negative strength for %s: %f", m.Name, m.Strength)
	}

	return nil
}

// ValidatePatient checks a patient profile from a check request.
func (v *DataValidatorImpl) ValidatePatient(p *entities.PatientInfo) error {
	if p == nil {
		return fmt.Errorf("patient is nil")
	}

	if p.Age < 0 || p.Age > maxPatientAge {
		return fmt.Errorf("age out of range: %d", p.Age)
	}

	if p.Weight < 0 || p.Weight > maxWeightKg {
		return fmt.Errorf("weight out of range: %f", p.Weight)
	}

	if p.Height < 0 || p.Height > maxHeightCm {
		return fmt.Errorf("height out of range: %f", p.Height)
	}

	if p.Gender != "" && !entities.ValidGender(p.Gender) {
		return fmt.Errorf("unknown gender: %s", p.Gender)
	}

	if !entities.ValidPregnancyStatus(p.PregnancyStatus) {
		return fmt.Errorf("unknown pregnancy status: %s", p.PregnancyStatus)
	}

	if err := validateStringList(p.Allergies, "allergies"); err != nil {
		return err
	}

	return validateStringList(p.MedicalConditions, "medical conditions")
}

func validateStringList(list []string, what string) error {
	if len(list) > maxListEntries {
		return fmt.Errorf("too many %s: %d (max %d)", what, len(list), maxListEntries)
	}
	for _, entry := range list {
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("empty entry in %s", what)
		}
		if len(entry) > maxEntryLength {
			return fmt.Errorf("entry too long in %s: %d characters", what, len(entry))
		}
	}
	return nil
}

// ReportDataQuality scans the reference tables for internal inconsistencies.
// The report is informational; bad rows still load.
func (v *DataValidatorImpl) ReportDataQuality(
	interactions []entities.InteractionRule,
	contraindications []entities.Contraindication,
	dosages []entities.DosageRule,
	catalog []entities.MedicationOption,
) *interfaces.DataQualityReport {
	report := &interfaces.DataQualityReport{
		DuplicateContraindicationIDs: []string{},
		DosageRulesWithoutCatalog:    []string{},
		ContraindicationsOffCatalog:  []string{},
		CatalogDuplicateNames:        []string{},
	}

	// Check 1: interaction rules that can never fire meaningfully
	for _, rule := range interactions {
		if len(rule.Medications) < 2 {
			report.InteractionRulesUnderTwo++
		}
	}

	// Check 2: duplicate contraindication IDs
	idSeen := make(map[string]bool)
	for _, rule := range contraindications {
		if idSeen[rule.ID] {
			report.DuplicateContraindicationIDs = append(report.DuplicateContraindicationIDs, rule.ID)
		}
		idSeen[rule.ID] = true
	}

	// Catalog name index, lowercased, covering names and generic names
	catalogNames := make(map[string]bool)
	nameSeen := make(map[string]bool)
	for _, option := range catalog {
		lower := strings.ToLower(option.Name)
		if nameSeen[lower] {
			report.CatalogDuplicateNames = append(report.CatalogDuplicateNames, option.Name)
		}
		nameSeen[lower] = true
		catalogNames[lower] = true
		if option.GenericName != "" {
			catalogNames[strings.ToLower(option.GenericName)] = true
		}
	}

	// Check 3: dosage rule keys that match no catalog entry
	for _, rule := range dosages {
		key := strings.ToLower(rule.Medication)
		if !catalogNameContains(catalogNames, key) {
			report.DosageRulesWithoutCatalog = append(report.DosageRulesWithoutCatalog, rule.Medication)
		}
	}

	// Check 4: contraindication medications missing from the catalog
	for _, rule := range contraindications {
		if !catalogNames[strings.ToLower(rule.Medication)] {
			report.ContraindicationsOffCatalog = append(report.ContraindicationsOffCatalog, rule.Medication)
		}
	}

	return report
}

// catalogNameContains reports whether any catalog name contains the key as
// a substring, mirroring how the dosage checker matches rules.
func catalogNameContains(catalogNames map[string]bool, key string) bool {
	for name := range catalogNames {
		if strings.Contains(name, key) {
			return true
		}
	}
	return false
}

// hasExcessiveRepetition checks for the same character repeated more than
// 10 times consecutively.
func hasExcessiveRepetition(input string) bool {
	for i := 0; i < len(input)-10; i++ {
		allSame := true
		for j := 1; j <= 10; j++ {
			if input[i] != input[i+j] {
				allSame = false
				break
			}
		}
		if allSame {
			return true
		}
	}
	return false
}
