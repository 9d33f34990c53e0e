package normalize

import (
	"regexp"
	"strings"

	"foodrisk/internal/domain"
)

// Hazard is a canonical hazard name with its category.
type Hazard struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

var unknownHazard = Hazard{Name: domain.Unknown, Category: domain.Unknown}

// hazardRules is a total order: named agents first, then families, then generic buckets.
var hazardRules = Rules{
	rule(`salmonella`, "Salmonella", "Pathogen"),
	rule(`listeria|l\.\s*monocytogenes`, "Listeria", "Pathogen"),
	rule(`shiga|\bstec\b|verotox`, "E. coli (STEC)", "Pathogen"),
	rule(`\be\.?\s*coli\b|escherichia`, "E. coli", "Pathogen"),
	rule(`norovirus`, "Norovirus", "Pathogen"),
	rule(`hepatitis\s+e\b|\bhev\b`, "Hepatitis E", "Pathogen"),
	rule(`hepatitis`, "Hepatitis A", "Pathogen"),
	rule(`campylobacter`, "Campylobacter", "Pathogen"),
	rule(`clostridium|botul`, "Clostridium", "Pathogen"),
	rule(`bacillus\s+cereus`, "Bacillus cereus", "Pathogen"),
	rule(`vibrio`, "Vibrio", "Pathogen"),
	rule(`aflatoxin`, "Aflatoxin", "Mycotoxin"),
	rule(`ochratoxin`, "Ochratoxin", "Mycotoxin"),
	rule(`mycotoxin|deoxynivalenol|zearalenone|fumonisin|patulin`, "Mycotoxin", "Mycotoxin"),
	rule(`chlorpyrifos`, "Chlorpyrifos", "Pesticide"),
	rule(`carbendazim`, "Carbendazim", "Pesticide"),
	rule(`ethylene\s+oxide|2-chloroethanol`, "Ethylene Oxide", "Pesticide"),
	rule(`pesticide`, "Pesticide Residue", "Pesticide"),
	rule(`mercury|\bhg\b`, "Mercury", "Heavy Metal"),
	rule(`cadmium|\bcd\b`, "Cadmium", "Heavy Metal"),
	rule(`\blead\b|\bpb\b`, "Lead", "Heavy Metal"),
	rule(`arsenic`, "Arsenic", "Heavy Metal"),
	rule(`heavy\s+metal`, "Heavy Metals", "Heavy Metal"),
	rule(`histamine`, "Histamine", "Natural Toxin"),
	rule(`dioxin|\bpcbs?\b`, "Dioxins/PCBs", "Pollutant"),
	rule(`anisakis|parasit`, "Parasites", "Parasite"),
	rule(`undeclared\s+milk|milk.*not.*declared`, "Undeclared Milk", "Allergen"),
	rule(`undeclared\s+peanut|peanut.*not.*declared`, "Undeclared Peanut", "Allergen"),
	rule(`undeclared\s+gluten|gluten.*not.*declared`, "Undeclared Gluten", "Allergen"),
	rule(`allergen|undeclared\s+(egg|nut|soy|wheat|sesame|fish|shellfish|sulphite|mustard|celery)`, "Undeclared Allergen", "Allergen"),
	rule(`foreign\s+bod|\bglass\b|\bmetal\b|plastic.*fragment|\binsects?\b`, "Foreign Body", "Foreign Body"),
	rule(`migration|\bbpa\b|phthalate`, "Migration", "Migration"),
	rule(`novel\s+food|unauthori[sz]ed`, "Unauthorized Substance", "Novel Food"),
	rule(`label|missing.*information|incorrect.*marking`, "Labelling Issue", "Labelling"),
}

// hazardCategories maps the upstream {category} marker to a canonical category.
var hazardCategories = map[string]string{
	"pathogenic micro-organisms":                "Pathogen",
	"mycotoxins":                                "Mycotoxin",
	"pesticide residues":                        "Pesticide",
	"heavy metals":                              "Heavy Metal",
	"metals":                                    "Heavy Metal",
	"novel food":                                "Novel Food",
	"labelling absent/incomplete/incorrect":     "Labelling",
	"natural toxins (other)":                    "Natural Toxin",
	"biotoxins (other)":                         "Natural Toxin",
	"environmental pollutants":                  "Pollutant",
	"industrial contaminants":                   "Contaminant",
	"migration":                                 "Migration",
	"composition":                               "Composition",
	"biological contaminants":                   "Biological",
	"chemical contamination (other)":            "Chemical",
	"non-pathogenic micro-organisms":            "Micro-organism",
	"food additives and flavourings":            "Additive",
	"feed additives":                            "Additive",
	"residues of veterinary medicinal products": "Veterinary Drug",
	"allergens":                                 "Allergen",
	"foreign bodies":                            "Foreign Body",
	"gmo / novel food":                          "GMO/Novel Food",
	"genetically modified":                      "GMO/Novel Food",
	"parasitic infestation":                     "Parasite",
	"radiation":                                 "Radiation",
	"tses":                                      "TSE",
	"adulteration / fraud":                      "Fraud",
	"organoleptic aspects":                      "Quality",
	"packaging defective / incorrect":           "Packaging",
	"poor or insufficient controls":             "Controls",
}

// hazardKeywords is the generic last resort before "Other".
var hazardKeywords = []keywordRule{
	{[]string{"virus", "bacteri", "pathogen", "staphylococc", "cronobacter", "shigella", "yersinia", "enterobacter"}, "Pathogen"},
	{[]string{"mould", "mold", "yeast", "micro-organism", "microbiolog", "total count", "coliform"}, "Micro-organism"},
	{[]string{"toxin", "alkaloid", "cyanogenic", "tetrodotoxin"}, "Natural Toxin"},
	{[]string{"insecticide", "fungicide", "herbicide", "acaricide"}, "Pesticide"},
	{[]string{"veterinary", "antibiotic", "antimicrobial", "chloramphenicol", "nitrofuran", "sulfonamide"}, "Veterinary Drug"},
	{[]string{"nickel", "chromium", "copper", "aluminium"}, "Heavy Metal"},
	{[]string{"colour", "color", "additive", "sulphite", "sulfite", "preservative", "sweetener", "benzoic", "sorbic"}, "Additive"},
	{[]string{"allerg", "gluten", "lactose", "hazelnut", "almond", "soya", "sesame", "mustard", "celery", "lupin"}, "Allergen"},
	{[]string{"3-mcpd", "glycidyl", "acrylamide", "chlorate", "mineral oil", "benzo(a)pyrene", "polycyclic", "solvent"}, "Contaminant"},
	{[]string{"radioactiv", "radiation", "caesium", "cesium", "iodine-131"}, "Radiation"},
	{[]string{"packaging", "damaged pack", "seal", "leaking", "swollen"}, "Packaging"},
	{[]string{"marking", "declar", "labell", "expiry"}, "Labelling"},
	{[]string{"fraud", "adulterat", "counterfeit", "illegal", "falsif", "tamper"}, "Fraud"},
	{[]string{"gmo", "genetically modified"}, "GMO/Novel Food"},
	{[]string{"temperature", "cold chain", "spoil", "decompos", "rotten", "organoleptic", "smell", "taste", "quality"}, "Quality"},
	{[]string{"certificate", "document", "control", "traceab"}, "Controls"},
	{[]string{"fragment", "stone", "hair", "wood", "bone", "foreign"}, "Foreign Body"},
	{[]string{"spongiform", "prion", "bse "}, "TSE"},
}

var categoryMarker = regexp.MustCompile(`\s*-?\s*\{([^}]*)\}\s*$`)

// ParseHazard classifies a single hazard value. It never returns an empty name.
func ParseHazard(raw string) Hazard {
	h, _ := classifyHazard(raw)
	return h
}

// ParseHazards splits a *** packed field, classifies each piece and keeps the first
// occurrence of every canonical name. It returns at least one hazard.
func ParseHazards(raw string) []Hazard {
	pieces := splitMulti(Repair(raw))
	if len(pieces) == 0 {
		return []Hazard{unknownHazard}
	}

	out := make([]Hazard, 0, len(pieces))
	seen := make(map[string]struct{}, len(pieces))
	for _, p := range pieces {
		h := ParseHazard(p)
		if _, ok := seen[h.Name]; ok {
			continue
		}
		seen[h.Name] = struct{}{}
		out = append(out, h)
	}
	return out
}

// classifyHazard reports whether the value was recognized by something more specific
// than the final fallback.
func classifyHazard(raw string) (Hazard, bool) {
	text := collapseSpaces(Repair(raw))
	if text == "" {
		return unknownHazard, true
	}

	marker := ""
	if m := categoryMarker.FindStringSubmatchIndex(text); m != nil {
		marker = strings.ToLower(strings.TrimSpace(text[m[2]:m[3]]))
		text = strings.TrimSpace(text[:m[0]])
	}

	if r, ok := hazardRules.First(text); ok {
		return Hazard{Name: r.Name, Category: r.Category}, true
	}

	if marker != "" {
		name := fallbackName(text)
		if cat, ok := hazardCategories[marker]; ok {
			return Hazard{Name: name, Category: cat}, true
		}
		return Hazard{Name: name, Category: titleCase(marker)}, false
	}

	if cat, ok := firstKeyword(hazardKeywords, text); ok {
		return Hazard{Name: fallbackName(text), Category: cat}, true
	}

	return Hazard{Name: fallbackName(text), Category: domain.Other}, false
}

// fallbackName keeps the text before the last " - " separator, title-cased.
func fallbackName(text string) string {
	text = strings.Trim(text, `"' `)
	if i := strings.LastIndex(text, " - "); i > 0 {
		text = text[:i]
	}
	if text = titleCase(text); text == "" {
		return domain.Unknown
	}
	return text
}
