package reference

import (
	"sort"
	"strings"

	"github.com/ntufar/meps/entities"
)

var catalog = []entities.MedicationOption{
	// Antidepressants
	{
		Name:          "Wellbutrin",
		GenericName:   "Bupropion",
		CommonDosages: []string{"75mg", "100mg", "150mg", "300mg"},
		Forms:         []string{"tablet", "extended-release tablet"},
		Category:      "Antidepressant",
		Description:   "Atypical antidepressant used for depression and smoking cessation",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      150,
		Frequency:     "twice daily",
	},
	{
		Name:          "Prozac",
		GenericName:   "Fluoxetine",
		CommonDosages: []string{"10mg", "20mg", "40mg"},
		Forms:         []string{"tablet", "capsule", "liquid"},
		Category:      "SSRI Antidepressant",
		Description:   "Selective serotonin reuptake inhibitor for depression and anxiety",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      20,
		Frequency:     "once daily",
	},
	{
		Name:          "Zoloft",
		GenericName:   "Sertraline",
		CommonDosages: []string{"25mg", "50mg", "100mg", "200mg"},
		Forms:         []string{"tablet", "liquid"},
		Category:      "SSRI Antidepressant",
		Description:   "SSRI used for depression, anxiety, and panic disorders",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      50,
		Frequency:     "once daily",
	},
	{
		Name:          "Lexapro",
		GenericName:   "Escitalopram",
		CommonDosages: []string{"5mg", "10mg", "20mg"},
		Forms:         []string{"tablet", "liquid"},
		Category:      "SSRI Antidepressant",
		Description:   "SSRI for depression and generalized anxiety disorder",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      10,
		Frequency:     "once daily",
	},

	// ADHD medications
	{
		Name:          "Strattera",
		GenericName:   "Atomoxetine",
		CommonDosages: []string{"10mg", "18mg", "25mg", "40mg", "60mg", "80mg", "100mg"},
		Forms:         []string{"capsule"},
		Category:      "ADHD Medication",
		Description:   "Non-stimulant medication for attention deficit hyperactivity disorder",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      40,
		Frequency:     "once daily",
	},
	{
		Name:          "Adderall",
		GenericName:   "Amphetamine/Dextroamphetamine",
		CommonDosages: []string{"5mg", "10mg", "15mg", "20mg", "30mg"},
		Forms:         []string{"tablet", "extended-release capsule"},
		Category:      "ADHD Medication",
		Description:   "Stimulant medication for ADHD and narcolepsy",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      10,
		Frequency:     "once daily",
	},
	{
		Name:          "Ritalin",
		GenericName:   "Methylphenidate",
		CommonDosages: []string{"5mg", "10mg", "15mg", "20mg"},
		Forms:         []string{"tablet", "extended-release tablet"},
		Category:      "ADHD Medication",
		Description:   "Stimulant for ADHD and narcolepsy",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      10,
		Frequency:     "twice daily",
	},

	// Anticoagulants
	{
		Name:          "Warfarin",
		GenericName:   "Warfarin",
		CommonDosages: []string{"1mg", "2mg", "2.5mg", "3mg", "4mg", "5mg", "6mg", "7.5mg", "10mg"},
		Forms:         []string{"tablet"},
		Category:      "Anticoagulant",
		Description:   "Blood thinner used to prevent blood clots",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      5,
		Frequency:     "once daily",
	},
	{
		Name:          "Eliquis",
		GenericName:   "Apixaban",
		CommonDosages: []string{"2.5mg", "5mg"},
		Forms:         []string{"tablet"},
		Category:      "Anticoagulant",
		Description:   "Direct oral anticoagulant for stroke prevention",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      5,
		Frequency:     "twice daily",
	},
	{
		Name:          "Xarelto",
		GenericName:   "Rivaroxaban",
		CommonDosages: []string{"10mg", "15mg", "20mg"},
		Forms:         []string{"tablet"},
		Category:      "Anticoagulant",
		Description:   "Direct oral anticoagulant for blood clot prevention",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      20,
		Frequency:     "once daily",
	},

	// Pain medications
	{
		Name:          "Aspirin",
		GenericName:   "Acetylsalicylic Acid",
		CommonDosages: []string{"81mg", "325mg", "500mg"},
		Forms:         []string{"tablet", "chewable tablet"},
		Category:      "NSAID/Antiplatelet",
		Description:   "Pain reliever and blood thinner",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      81,
		Frequency:     "once daily",
	},
	{
		Name:          "Ibuprofen",
		GenericName:   "Ibuprofen",
		CommonDosages: []string{"200mg", "400mg", "600mg", "800mg"},
		Forms:         []string{"tablet", "liquid", "gel"},
		Category:      "NSAID",
		Description:   "Nonsteroidal anti-inflammatory drug for pain and inflammation",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      400,
		Frequency:     "every 6 hours",
	},
	{
		Name:          "Tylenol",
		GenericName:   "Acetaminophen",
		CommonDosages: []string{"325mg", "500mg", "650mg"},
		Forms:         []string{"tablet", "liquid", "suppository"},
		Category:      "Analgesic",
		Description:   "Pain reliever and fever reducer",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      650,
		Frequency:     "every 6 hours",
	},
	{
		Name:          "Morphine",
		GenericName:   "Morphine",
		CommonDosages: []string{"5mg", "10mg", "15mg", "30mg"},
		Forms:         []string{"tablet", "injection", "liquid"},
		Category:      "Opioid Analgesic",
		Description:   "Strong pain medication for severe pain",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      10,
		Frequency:     "every 4 hours",
	},

	// Antibiotics
	{
		Name:          "Amoxicillin",
		GenericName:   "Amoxicillin",
		CommonDosages: []string{"250mg", "500mg", "875mg"},
		Forms:         []string{"capsule", "tablet", "liquid"},
		Category:      "Penicillin Antibiotic",
		Description:   "Broad-spectrum penicillin antibiotic",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      500,
		Frequency:     "three times daily",
	},
	{
		Name:          "Azithromycin",
		GenericName:   "Azithromycin",
		CommonDosages: []string{"250mg", "500mg"},
		Forms:         []string{"tablet", "liquid"},
		Category:      "Macrolide Antibiotic",
		Description:   "Macrolide antibiotic for respiratory and skin infections",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      250,
		Frequency:     "once daily",
	},
	{
		Name:          "Ciprofloxacin",
		GenericName:   "Ciprofloxacin Hydrochloride",
		CommonDosages: []string{"250mg", "500mg", "750mg"},
		Forms:         []string{"tablet"},
		Category:      "Fluoroquinolone Antibiotic",
		Description:   "Fluoroquinolone antibiotic for urinary and GI infections",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      500,
		Frequency:     "twice daily",
	},

	// Diabetes medications
	{
		Name:          "Metformin",
		GenericName:   "Metformin",
		CommonDosages: []string{"500mg", "850mg", "1000mg"},
		Forms:         []string{"tablet", "extended-release tablet"},
		Category:      "Antidiabetic",
		Description:   "First-line medication for type 2 diabetes",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      500,
		Frequency:     "twice daily",
	},
	{
		Name:          "Insulin Glargine",
		GenericName:   "Insulin Glargine",
		CommonDosages: []string{"10 units", "20 units", "30 units"},
		Forms:         []string{"injection", "pen"},
		Category:      "Antidiabetic",
		Description:   "Long-acting insulin for blood sugar control in diabetes",
		Route:         entities.RouteInjection,
		Unit:          entities.UnitUnits,
		Strength:      20,
		Frequency:     "once daily",
	},

	// Blood pressure medications
	{
		Name:          "Lisinopril",
		GenericName:   "Lisinopril",
		CommonDosages: []string{"2.5mg", "5mg", "10mg", "20mg", "40mg"},
		Forms:         []string{"tablet"},
		Category:      "ACE Inhibitor",
		Description:   "ACE inhibitor for high blood pressure and heart failure",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      10,
		Frequency:     "once daily",
	},
	{
		Name:          "Amlodipine",
		GenericName:   "Amlodipine",
		CommonDosages: []string{"2.5mg", "5mg", "10mg"},
		Forms:         []string{"tablet"},
		Category:      "Calcium Channel Blocker",
		Description:   "Calcium channel blocker for hypertension and chest pain",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      5,
		Frequency:     "once daily",
	},
	{
		Name:          "Metoprolol",
		GenericName:   "Metoprolol Tartrate",
		CommonDosages: []string{"25mg", "50mg", "100mg"},
		Forms:         []string{"tablet"},
		Category:      "Beta Blocker",
		Description:   "Beta blocker for hypertension and heart rate control",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      50,
		Frequency:     "twice daily",
	},

	// Cholesterol medications
	{
		Name:          "Lipitor",
		GenericName:   "Atorvastatin",
		CommonDosages: []string{"10mg", "20mg", "40mg", "80mg"},
		Forms:         []string{"tablet"},
		Category:      "Statin",
		Description:   "Statin medication for high cholesterol",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      20,
		Frequency:     "once daily",
	},
	{
		Name:          "Crestor",
		GenericName:   "Rosuvastatin",
		CommonDosages: []string{"5mg", "10mg", "20mg", "40mg"},
		Forms:         []string{"tablet"},
		Category:      "Statin",
		Description:   "Statin for cholesterol management",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      10,
		Frequency:     "once daily",
	},

	// Gastrointestinal and respiratory
	{
		Name:          "Omeprazole",
		GenericName:   "Omeprazole",
		CommonDosages: []string{"20mg", "40mg"},
		Forms:         []string{"capsule"},
		Category:      "Proton Pump Inhibitor",
		Description:   "PPI for acid reflux and ulcer treatment",
		Route:         entities.RouteOral,
		Unit:          entities.UnitMg,
		Strength:      20,
		Frequency:     "once daily",
	},
	{
		Name:          "Albuterol",
		GenericName:   "Albuterol Sulfate",
		CommonDosages: []string{"90mcg"},
		Forms:         []string{"inhaler"},
		Category:      "Bronchodilator",
		Description:   "Short-acting bronchodilator for asthma and COPD",
		Route:         entities.RouteInhalation,
		Unit:          entities.UnitMcg,
		Strength:      90,
		Frequency:     "as needed",
	},
}

// Catalog returns a copy of the medication catalog in definition order.
func Catalog() []entities.MedicationOption {
	options := make([]entities.MedicationOption, len(catalog))
	copy(options, catalog)
	return options
}

// CatalogMap builds a lowercase name/generic-name index over a catalog
// slice for O(1) exact lookups.
func CatalogMap(options []entities.MedicationOption) map[string]entities.MedicationOption {
	index := make(map[string]entities.MedicationOption, len(options)*2)
	for _, opt := range options {
		index[strings.ToLower(opt.Name)] = opt
		if generic := strings.ToLower(opt.GenericName); generic != "" {
			if _, taken := index[generic]; !taken {
				index[generic] = opt
			}
		}
	}
	return index
}

// Categories returns the sorted set of catalog categories.
func Categories(options []entities.MedicationOption) []string {
	seen := make(map[string]bool, len(options))
	var categories []string
	for _, opt := range options {
		if !seen[opt.Category] {
			seen[opt.Category] = true
			categories = append(categories, opt.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
