package entities

import "strings"

// Pregnancy statuses.
const (
	PregnancyPregnant      = "pregnant"
	PregnancyBreastfeeding = "breastfeeding"
	PregnancyNone          = "none"
)

// Genders.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// PatientInfo is the current patient profile for a session. It is
// overwritten wholesale on each submit; allergies and conditions keep
// insertion order and are de-duplicated case-insensitively.
type PatientInfo struct {
	Age               int      `json:"age"`
	Weight            float64  `json:"weight"`
	Height            float64  `json:"height"`
	Gender            string   `json:"gender"`
	Allergies         []string `json:"allergies"`
	MedicalConditions []string `json:"medicalConditions"`
	PregnancyStatus   string   `json:"pregnancyStatus"`
}

// AddAllergy appends an allergy unless an equal entry (ignoring case)
// is already present.
func (p *PatientInfo) AddAllergy(allergy string) {
	p.Allergies = appendUnique(p.Allergies, allergy)
}

// AddCondition appends a medical condition unless an equal entry
// (ignoring case) is already present.
func (p *PatientInfo) AddCondition(condition string) {
	p.MedicalConditions = appendUnique(p.MedicalConditions, condition)
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if strings.EqualFold(existing, value) {
			return list
		}
	}
	return append(list, value)
}

// ValidGender reports whether gender is an accepted value.
func ValidGender(gender string) bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ValidPregnancyStatus reports whether status is an accepted value.
// An empty status is treated as "none" by the engine, so it is accepted.
func ValidPregnancyStatus(status string) bool {
	switch status {
	case PregnancyPregnant, PregnancyBreastfeeding, PregnancyNone, "":
		return true
	}
	return false
}
