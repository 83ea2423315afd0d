package reference

import "github.com/ntufar/meps/entities"

var dosageRules = []entities.DosageRule{
	{
		Medication:        "wellbutrin",
		BaseDose:          150,
		Unit:              entities.UnitMg,
		MaxDailyDose:      450,
		WeightBased:       false,
		AgeAdjustment:     true,
		RenalAdjustment:   true,
		HepaticAdjustment: true,
		Warnings:          []string{"Monitor for seizures", "Avoid in eating disorders", "May cause insomnia"},
		Contraindications: []string{"Seizure disorder", "Eating disorders", "MAOI use"},
	},
	{
		Medication:        "strattera",
		BaseDose:          40,
		Unit:              entities.UnitMg,
		MaxDailyDose:      100,
		WeightBased:       true,
		AgeAdjustment:     true,
		RenalAdjustment:   true,
		HepaticAdjustment: true,
		Warnings:          []string{"Monitor blood pressure", "Monitor heart rate", "May cause liver problems"},
		Contraindications: []string{"Narrow-angle glaucoma", "MAOI use", "Severe hepatic impairment"},
	},
	{
		Medication:        "warfarin",
		BaseDose:          5,
		Unit:              entities.UnitMg,
		MaxDailyDose:      20,
		WeightBased:       true,
		AgeAdjustment:     true,
		RenalAdjustment:   false,
		HepaticAdjustment: true,
		Warnings:          []string{"Monitor INR regularly", "Watch for bleeding signs", "Avoid vitamin K changes"},
		Contraindications: []string{"Active bleeding", "Severe liver disease", "Pregnancy"},
	},
	{
		Medication:        "metformin",
		BaseDose:          500,
		Unit:              entities.UnitMg,
		MaxDailyDose:      2550,
		WeightBased:       false,
		AgeAdjustment:     true,
		RenalAdjustment:   true,
		HepaticAdjustment: true,
		Warnings:          []string{"Monitor kidney function", "Watch for lactic acidosis", "Hold before contrast"},
		Contraindications: []string{"Severe renal impairment", "Severe hepatic impairment", "Contrast procedures"},
	},
	{
		Medication:        "lisinopril",
		BaseDose:          10,
		Unit:              entities.UnitMg,
		MaxDailyDose:      40,
		WeightBased:       false,
		AgeAdjustment:     true,
		RenalAdjustment:   true,
		HepaticAdjustment: false,
		Warnings:          []string{"Monitor blood pressure", "Watch for cough", "Monitor potassium levels"},
		Contraindications: []string{"Pregnancy", "Bilateral renal artery stenosis", "Angioedema history"},
	},
}

// DosageRules returns a copy of the dosage rule table in definition order.
func DosageRules() []entities.DosageRule {
	rules := make([]entities.DosageRule, len(dosageRules))
	copy(rules, dosageRules)
	return rules
}
