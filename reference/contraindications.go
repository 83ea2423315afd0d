package reference

import "github.com/ntufar/meps/entities"

var contraindications = []entities.Contraindication{
	// Cardiovascular
	{
		ID:          "warfarin-bleeding",
		Medication:  "Warfarin",
		Condition:   "Active bleeding",
		Severity:    entities.SeverityAbsolute,
		Description: "Warfarin is absolutely contraindicated in patients with active bleeding",
		Alternative: "Consider alternative anticoagulation or delay therapy",
		Monitoring:  []string{"INR", "Hemoglobin", "Signs of bleeding"},
	},
	{
		ID:          "warfarin-liver-severe",
		Medication:  "Warfarin",
		Condition:   "Severe liver disease",
		Severity:    entities.SeverityAbsolute,
		Description: "Severe liver disease impairs warfarin metabolism and increases bleeding risk",
		Alternative: "Consider LMWH or alternative anticoagulation",
		Monitoring:  []string{"Liver function tests", "INR", "Bleeding signs"},
	},
	{
		ID:          "aspirin-ulcer",
		Medication:  "Aspirin",
		Condition:   "Active peptic ulcer disease",
		Severity:    entities.SeverityAbsolute,
		Description: "Aspirin increases risk of gastrointestinal bleeding in active ulcer disease",
		Alternative: "Use acetaminophen for pain/fever, consider PPI if aspirin needed",
		Monitoring:  []string{"Hemoglobin", "Stool occult blood", "GI symptoms"},
	},
	{
		ID:          "metoprolol-asthma",
		Medication:  "Metoprolol",
		Condition:   "Severe asthma",
		Severity:    entities.SeverityAbsolute,
		Description: "Beta-blockers can cause severe bronchospasm in asthma patients",
		Alternative: "Consider calcium channel blockers or ACE inhibitors",
		Monitoring:  []string{"Pulmonary function tests", "Respiratory symptoms"},
	},
	{
		ID:          "lisinopril-pregnancy",
		Medication:  "Lisinopril",
		Condition:   "Pregnancy (2nd and 3rd trimester)",
		Severity:    entities.SeverityAbsolute,
		Description: "ACE inhibitors cause fetal malformations and death in 2nd/3rd trimester",
		Alternative: "Use methyldopa, labetalol, or nifedipine",
		Monitoring:  []string{"Fetal monitoring", "Blood pressure", "Renal function"},
	},
	// Antibiotics
	{
		ID:          "amoxicillin-penicillin-allergy",
		Medication:  "Amoxicillin",
		Condition:   "Penicillin allergy",
		Severity:    entities.SeverityAbsolute,
		Description: "Cross-reactivity between penicillins and cephalosporins",
		Alternative: "Use macrolides, fluoroquinolones, or clindamycin",
		Monitoring:  []string{"Allergic reaction signs", "Skin rash monitoring"},
	},
	{
		ID:          "ciprofloxacin-tendon",
		Medication:  "Ciprofloxacin",
		Condition:   "Tendon disorders",
		Severity:    entities.SeverityRelative,
		Description: "Fluoroquinolones increase risk of tendon rupture",
		Alternative: "Consider alternative antibiotics",
		Monitoring:  []string{"Tendon pain", "Joint swelling", "Mobility assessment"},
	},
	// Pain management
	{
		ID:          "morphine-respiratory",
		Medication:  "Morphine",
		Condition:   "Respiratory depression",
		Severity:    entities.SeverityAbsolute,
		Description: "Morphine can cause severe respiratory depression",
		Alternative: "Use non-opioid analgesics or lower potency opioids",
		Monitoring:  []string{"Respiratory rate", "Oxygen saturation", "Consciousness level"},
	},
	{
		ID:          "ibuprofen-renal-severe",
		Medication:  "Ibuprofen",
		Condition:   "Severe renal impairment (eGFR < 30)",
		Severity:    entities.SeverityAbsolute,
		Description: "NSAIDs can cause acute kidney injury in severe renal impairment",
		Alternative: "Use acetaminophen or topical analgesics",
		Monitoring:  []string{"Renal function", "Urine output", "Electrolytes"},
	},
	// Mental health
	{
		ID:          "sertraline-maoi",
		Medication:  "Sertraline",
		Condition:   "MAO inhibitor use",
		Severity:    entities.SeverityAbsolute,
		Description: "Risk of serotonin syndrome with MAO inhibitors",
		Alternative: "Wait 14 days after MAOI discontinuation before starting",
		Monitoring:  []string{"Serotonin syndrome signs", "Blood pressure", "Temperature"},
	},
	{
		ID:          "bupropion-seizure",
		Medication:  "Bupropion",
		Condition:   "Seizure disorder",
		Severity:    entities.SeverityAbsolute,
		Description: "Bupropion lowers seizure threshold",
		Alternative: "Use alternative antidepressants",
		Monitoring:  []string{"Seizure activity", "EEG if indicated"},
	},
	// Diabetes
	{
		ID:          "metformin-renal-severe",
		Medication:  "Metformin",
		Condition:   "Severe renal impairment (eGFR < 30)",
		Severity:    entities.SeverityAbsolute,
		Description: "Risk of lactic acidosis with severe renal impairment",
		Alternative: "Use alternative antidiabetic agents",
		Monitoring:  []string{"Renal function", "Lactate levels", "Acid-base status"},
	},
	{
		ID:          "metformin-heart-failure",
		Medication:  "Metformin",
		Condition:   "Heart failure requiring pharmacologic treatment",
		Severity:    entities.SeverityRelative,
		Description: "Increased risk of lactic acidosis in heart failure",
		Alternative: "Consider alternative antidiabetic agents",
		Monitoring:  []string{"Lactate levels", "Heart failure symptoms", "Renal function"},
	},
	// Gastrointestinal
	{
		ID:          "omeprazole-magnesium",
		Medication:  "Omeprazole",
		Condition:   "Severe hypomagnesemia",
		Severity:    entities.SeverityRelative,
		Description: "PPIs can worsen hypomagnesemia",
		Alternative: "Correct magnesium levels first, consider H2 blockers",
		Monitoring:  []string{"Magnesium levels", "ECG changes", "Neuromuscular symptoms"},
	},
	// Respiratory
	{
		ID:          "albuterol-hypersensitivity",
		Medication:  "Albuterol",
		Condition:   "Hypersensitivity to beta-agonists",
		Severity:    entities.SeverityAbsolute,
		Description: "Risk of severe allergic reaction",
		Alternative: "Use anticholinergics or corticosteroids",
		Monitoring:  []string{"Allergic reaction signs", "Respiratory status"},
	},
}

// Contraindications returns a copy of the contraindication rule table in
// definition order.
func Contraindications() []entities.Contraindication {
	rules := make([]entities.Contraindication, len(contraindications))
	copy(rules, contraindications)
	return rules
}
