package reference

import "github.com/ntufar/meps/entities"

var allergyRules = []entities.AllergyRule{
	// Penicillin allergies
	{
		Allergen:      "penicillin",
		CrossReactive: []string{"amoxicillin", "ampicillin", "cephalexin", "cefazolin", "ceftriaxone"},
		Severity:      entities.AllergySevere,
		Reaction:      "Rash, hives, difficulty breathing, anaphylaxis",
		Alternatives:  []string{"azithromycin", "clindamycin", "doxycycline", "vancomycin"},
		Action:        "CONTRAINDICATED - Use alternative antibiotic",
	},
	{
		Allergen:      "amoxicillin",
		CrossReactive: []string{"penicillin", "ampicillin", "cephalexin"},
		Severity:      entities.AllergyModerate,
		Reaction:      "Rash, hives, gastrointestinal upset",
		Alternatives:  []string{"azithromycin", "clindamycin", "doxycycline"},
		Action:        "Avoid - Use alternative antibiotic",
	},
	{
		Allergen:      "cephalexin",
		CrossReactive: []string{"penicillin", "amoxicillin", "cefazolin", "ceftriaxone"},
		Severity:      entities.AllergyModerate,
		Reaction:      "Rash, hives, gastrointestinal upset",
		Alternatives:  []string{"azithromycin", "clindamycin", "doxycycline"},
		Action:        "Use with caution - Monitor for reactions",
	},

	// Sulfa allergies
	{
		Allergen:      "sulfa",
		CrossReactive: []string{"sulfamethoxazole", "trimethoprim-sulfa", "sulfasalazine", "furosemide", "hydrochlorothiazide"},
		Severity:      entities.AllergySevere,
		Reaction:      "Stevens-Johnson syndrome, toxic epidermal necrolysis, anaphylaxis",
		Alternatives:  []string{"amoxicillin", "azithromycin", "doxycycline"},
		Action:        "CONTRAINDICATED - Use alternative medication",
	},
	{
		Allergen:      "sulfamethoxazole",
		CrossReactive: []string{"sulfa", "trimethoprim-sulfa", "sulfasalazine"},
		Severity:      entities.AllergySevere,
		Reaction:      "Severe skin reactions, blood disorders",
		Alternatives:  []string{"amoxicillin", "azithromycin", "doxycycline"},
		Action:        "CONTRAINDICATED - Use alternative antibiotic",
	},

	// NSAID allergies
	{
		Allergen:      "aspirin",
		CrossReactive: []string{"ibuprofen", "naproxen", "diclofenac", "celecoxib"},
		Severity:      entities.AllergyModerate,
		Reaction:      "Asthma exacerbation, nasal polyps, gastrointestinal bleeding",
		Alternatives:  []string{"acetaminophen", "tramadol", "codeine"},
		Action:        "Avoid NSAIDs - Use acetaminophen for pain",
	},
	{
		Allergen:      "ibuprofen",
		CrossReactive: []string{"aspirin", "naproxen", "diclofenac", "celecoxib"},
		Severity:      entities.AllergyModerate,
		Reaction:      "Gastrointestinal irritation, asthma exacerbation",
		Alternatives:  []string{"acetaminophen", "tramadol", "codeine"},
		Action:        "Avoid NSAIDs - Use acetaminophen for pain",
	},

	// Opioid allergies
	{
		Allergen:      "morphine",
		CrossReactive: []string{"codeine", "hydrocodone", "oxycodone", "fentanyl"},
		Severity:      entities.AllergySevere,
		Reaction:      "Respiratory depression, severe itching, anaphylaxis",
		Alternatives:  []string{"acetaminophen", "tramadol", "gabapentin"},
		Action:        "CONTRAINDICATED - Use alternative pain management",
	},
	{
		Allergen:      "codeine",
		CrossReactive: []string{"morphine", "hydrocodone", "oxycodone"},
		Severity:      entities.AllergyModerate,
		Reaction:      "Respiratory depression, severe itching",
		Alternatives:  []string{"acetaminophen", "tramadol", "gabapentin"},
		Action:        "Avoid opioids - Use alternative pain management",
	},

	// Anticonvulsant allergies
	{
		Allergen:      "phenytoin",
		CrossReactive: []string{"carbamazepine", "oxcarbazepine", "lamotrigine"},
		Severity:      entities.AllergySevere,
		Reaction:      "Stevens-Johnson syndrome, toxic epidermal necrolysis",
		Alternatives:  []string{"valproic acid", "levetiracetam", "gabapentin"},
		Action:        "CONTRAINDICATED - Use alternative anticonvulsant",
	},
	{
		Allergen:      "carbamazepine",
		CrossReactive: []string{"phenytoin", "oxcarbazepine", "lamotrigine"},
		Severity:      entities.AllergySevere,
		Reaction:      "Severe skin reactions, blood disorders",
		Alternatives:  []string{"valproic acid", "levetiracetam", "gabapentin"},
		Action:        "CONTRAINDICATED - Use alternative anticonvulsant",
	},

	// ACE inhibitor allergies
	{
		Allergen:      "lisinopril",
		CrossReactive: []string{"enalapril", "ramipril", "captopril", "benazepril"},
		Severity:      entities.AllergyModerate,
		Reaction:      "Angioedema, persistent cough, hyperkalemia",
		Alternatives:  []string{"amlodipine", "losartan", "metoprolol"},
		Action:        "Avoid ACE inhibitors - Use ARB or calcium channel blocker",
	},

	// Statin allergies
	{
		Allergen:      "atorvastatin",
		CrossReactive: []string{"simvastatin", "lovastatin", "pravastatin", "rosuvastatin"},
		Severity:      entities.AllergyModerate,
		Reaction:      "Muscle pain, liver enzyme elevation, rash",
		Alternatives:  []string{"ezetimibe", "colesevelam", "niacin"},
		Action:        "Avoid statins - Use alternative cholesterol medication",
	},
}

// AllergyRules returns a copy of the allergy cross-reactivity table in
// definition order.
func AllergyRules() []entities.AllergyRule {
	rules := make([]entities.AllergyRule, len(allergyRules))
	copy(rules, allergyRules)
	return rules
}

// CommonAllergies lists frequent allergens for form autocomplete.
func CommonAllergies() []string {
	return []string{
		"Penicillin",
		"Amoxicillin",
		"Sulfa",
		"Aspirin",
		"Ibuprofen",
		"Morphine",
		"Codeine",
		"Phenytoin",
		"Carbamazepine",
		"Lisinopril",
		"Atorvastatin",
		"Latex",
		"Shellfish",
		"Peanuts",
		"Eggs",
		"Dairy",
	}
}
