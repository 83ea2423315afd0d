package engine

import (
	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/interfaces"
)

// Service binds the pure checker functions to a data store holding the
// current reference tables.
type Service struct {
	store interfaces.DataStore
}

// Compile-time check that Service implements the RuleChecker interface.
var _ interfaces.RuleChecker = (*Service)(nil)

func NewService(store interfaces.DataStore) *Service {
	return &Service{store: store}
}

func (s *Service) CheckInteractions(medications []entities.Medication) []entities.DrugInteraction {
	return CheckInteractions(s.store.GetInteractionRules(), medications)
}

func (s *Service) CheckAllergies(medications []entities.Medication, patient entities.PatientInfo) []entities.AllergyAlert {
	return CheckAllergies(s.store.GetAllergyRules(), medications, patient)
}

func (s *Service) CheckContraindications(medications []entities.Medication, patient entities.PatientInfo) []entities.Contraindication {
	return CheckContraindications(s.store.GetContraindications(), medications, patient)
}

func (s *Service) CalculateDosage(medication entities.Medication, patient entities.PatientInfo) entities.DosageCalculation {
	return CalculateDosage(s.store.GetDosageRules(), medication, patient)
}

// CheckAll runs every checker over the same snapshot of the tables and
// aggregates the findings with a contraindication-based risk score.
func (s *Service) CheckAll(medications []entities.Medication, patient entities.PatientInfo) entities.CheckBundle {
	contraindications := s.CheckContraindications(medications, patient)

	dosages := make([]entities.DosageCalculation, 0, len(medications))
	rules := s.store.GetDosageRules()
	for _, medication := range medications {
		dosages = append(dosages, CalculateDosage(rules, medication, patient))
	}

	score := CalculateRiskScore(contraindications)

	return entities.CheckBundle{
		Interactions:      s.CheckInteractions(medications),
		AllergyAlerts:     s.CheckAllergies(medications, patient),
		Contraindications: contraindications,
		Dosages:           dosages,
		RiskScore:         score,
		RiskLevel:         RiskLevel(score),
	}
}
