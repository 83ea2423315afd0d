// Package reference holds the static rule tables and the medication
// catalog. The tables are package-level literals constructed once at init
// and never mutated; accessors hand out copies so callers cannot corrupt
// the shared data between zero-downtime swaps.
package reference

import "github.com/ntufar/meps/entities"

var interactionRules = []entities.InteractionRule{
	// Wellbutrin interactions
	{
		Medications:    []string{"wellbutrin", "strattera"},
		Severity:       entities.InteractionMajor,
		Description:    "Wellbutrin (Bupropion) and Strattera (Atomoxetine)",
		ClinicalEffect: "Increased risk of seizures, hypertension, and cardiovascular events",
		Management:     "Monitor blood pressure and heart rate closely. Consider alternative treatments or lower doses.",
		Evidence:       entities.EvidenceExcellent,
		References:     []string{"FDA Drug Interaction Database", "Clinical Pharmacology 2024"},
	},
	{
		Medications:    []string{"wellbutrin", "prozac"},
		Severity:       entities.InteractionModerate,
		Description:    "Wellbutrin (Bupropion) and Prozac (Fluoxetine)",
		ClinicalEffect: "Increased risk of seizures and serotonin syndrome",
		Management:     "Monitor for seizure activity and serotonin syndrome symptoms. Consider dose reduction.",
		Evidence:       entities.EvidenceGood,
		References:     []string{"Drug Interaction Database 2024"},
	},
	{
		Medications:    []string{"wellbutrin", "alcohol"},
		Severity:       entities.InteractionMajor,
		Description:    "Wellbutrin (Bupropion) and Alcohol",
		ClinicalEffect: "Increased risk of seizures and central nervous system depression",
		Management:     "Avoid alcohol consumption. If unavoidable, monitor closely for seizure activity.",
		Evidence:       entities.EvidenceExcellent,
		References:     []string{"FDA Labeling", "Clinical Guidelines"},
	},

	// Warfarin interactions
	{
		Medications:    []string{"warfarin", "aspirin"},
		Severity:       entities.InteractionModerate,
		Description:    "Warfarin and Aspirin",
		ClinicalEffect: "Increased bleeding risk due to additive anticoagulant effects",
		Management:     "Monitor INR closely, consider lower aspirin dose or alternative pain management",
		Evidence:       entities.EvidenceExcellent,
		References:     []string{"Anticoagulation Guidelines 2024"},
	},
	{
		Medications:    []string{"warfarin", "ibuprofen"},
		Severity:       entities.InteractionModerate,
		Description:    "Warfarin and Ibuprofen",
		ClinicalEffect: "Increased bleeding risk and potential for gastrointestinal bleeding",
		Management:     "Monitor INR and watch for signs of bleeding. Consider acetaminophen instead.",
		Evidence:       entities.EvidenceGood,
		References:     []string{"Drug Interaction Database 2024"},
	},
	{
		Medications:    []string{"warfarin", "vitamin-k"},
		Severity:       entities.InteractionModerate,
		Description:    "Warfarin and Vitamin K",
		ClinicalEffect: "Decreased anticoagulant effect of warfarin",
		Management:     "Maintain consistent vitamin K intake. Monitor INR more frequently if diet changes.",
		Evidence:       entities.EvidenceExcellent,
		References:     []string{"Anticoagulation Guidelines 2024"},
	},

	// SSRI interactions
	{
		Medications:    []string{"prozac", "zoloft"},
		Severity:       entities.InteractionModerate,
		Description:    "Prozac (Fluoxetine) and Zoloft (Sertraline)",
		ClinicalEffect: "Increased risk of serotonin syndrome",
		Management:     "Monitor for serotonin syndrome symptoms. Consider alternative treatment.",
		Evidence:       entities.EvidenceGood,
		References:     []string{"SSRI Interaction Guidelines"},
	},
	{
		Medications:    []string{"prozac", "maoi"},
		Severity:       entities.InteractionContraindicated,
		Description:    "Prozac (Fluoxetine) and MAOIs",
		ClinicalEffect: "Life-threatening serotonin syndrome",
		Management:     "CONTRAINDICATED - Do not use together. Wait 14 days between treatments.",
		Evidence:       entities.EvidenceExcellent,
		References:     []string{"FDA Black Box Warning"},
	},

	// Blood pressure medications
	{
		Medications:    []string{"lisinopril", "potassium"},
		Severity:       entities.InteractionModerate,
		Description:    "Lisinopril and Potassium Supplements",
		ClinicalEffect: "Risk of hyperkalemia (high potassium levels)",
		Management:     "Monitor potassium levels regularly. Avoid high-potassium foods.",
		Evidence:       entities.EvidenceGood,
		References:     []string{"Hypertension Guidelines 2024"},
	},
	{
		Medications:    []string{"metformin", "contrast"},
		Severity:       entities.InteractionModerate,
		Description:    "Metformin and Contrast Dye",
		ClinicalEffect: "Risk of lactic acidosis with contrast imaging",
		Management:     "Hold metformin 48 hours before and after contrast procedures.",
		Evidence:       entities.EvidenceExcellent,
		References:     []string{"Radiology Safety Guidelines"},
	},

	// Pain medication interactions
	{
		Medications:    []string{"morphine", "alcohol"},
		Severity:       entities.InteractionMajor,
		Description:    "Morphine and Alcohol",
		ClinicalEffect: "Severe respiratory depression and central nervous system depression",
		Management:     "CONTRAINDICATED - Do not use together. Monitor respiratory status closely.",
		Evidence:       entities.EvidenceExcellent,
		References:     []string{"FDA Black Box Warning"},
	},
	{
		Medications:    []string{"acetaminophen", "alcohol"},
		Severity:       entities.InteractionModerate,
		Description:    "Acetaminophen and Alcohol",
		ClinicalEffect: "Increased risk of liver damage",
		Management:     "Limit alcohol consumption. Monitor liver function tests.",
		Evidence:       entities.EvidenceGood,
		References:     []string{"Hepatology Guidelines"},
	},
}

// InteractionRules returns a copy of the drug interaction rule table in
// definition order.
func InteractionRules() []entities.InteractionRule {
	rules := make([]entities.InteractionRule, len(interactionRules))
	copy(rules, interactionRules)
	return rules
}
