package normalize

import (
	"strings"

	"foodrisk/internal/domain"
)

var categoryRules = Rules{
	rule(`poultry|chicken|turkey\s+meat`, "Poultry", ""),
	rule(`meat`, "Meat Products", ""),
	rule(`fish|seafood|crustacean|mollusc|cephalopod|bivalve|gastropod`, "Fish & Seafood", ""),
	rule(`\bnuts?\b|nut\s+products|seeds?\b`, "Nuts & Seeds", ""),
	rule(`fruit|vegetable|produce`, "Fruits & Vegetables", ""),
	rule(`cereal|bakery|bread|pastry`, "Cereals & Bakery", ""),
	rule(`milk|dairy|cheese|yog(h)?urt`, "Dairy", ""),
	rule(`herb|spice`, "Herbs & Spices", ""),
	rule(`supplement|dietetic|vitamin`, "Supplements", ""),
	rule(`cocoa|coffee|\btea\b`, "Cocoa, Coffee & Tea", ""),
	rule(`\bfats?\b|\boils?\b`, "Fats & Oils", ""),
	rule(`sauce|condiment|soup|broth`, "Sauces & Condiments", ""),
	rule(`prepared.*dish|snack|ready.*eat`, "Prepared Foods", ""),
	rule(`pet\s*food`, "Pet Food", ""),
	rule(`feed`, "Animal Feed", ""),
	rule(`food\s*contact|packaging.*material`, "Food Contact Materials", ""),
	rule(`non-alcoholic`, "Beverages", ""),
	rule(`alcoholic|\bwine\b|\bbeer\b|spirits`, "Alcoholic Beverages", ""),
	rule(`beverage|drink|water`, "Beverages", ""),
	rule(`\beggs?\b`, "Eggs", ""),
	rule(`additive|flavour`, "Additives", ""),
	rule(`honey|royal\s+jelly`, "Honey", ""),
	rule(`confection|sweet|candy|chocolate`, "Confectionery", ""),
	rule(`ice\s*cream|dessert`, "Desserts", ""),
}

// categoryNames holds exact upstream names, checked before the rules.
var categoryNames = map[string]string{
	"meat and meat products (other than poultry)": "Meat Products",
	"poultry meat and poultry meat products":      "Poultry",
	"non-alcoholic beverages":                     "Beverages",
	"live animals":                                "Live Animals",
	"other food product / mixed":                  "Other",
	"not determined / other":                      "Other",
	"other":                                       "Other",
	"plant protection products":                   "Plant Protection Products",
	"gmo / novel food":                            "Novel Food",
	"natural mineral water":                       "Beverages",
	"cosmetics":                                   "Cosmetics",
	"products for human use":                      "Other",
	"food contact material":                       "Food Contact Materials",
	"materials in contact with food":              "Food Contact Materials",
}

// ProductCategory returns the canonical product category; empty input yields "Other".
func ProductCategory(raw string) string {
	c, _ := classifyCategory(raw)
	return c
}

func classifyCategory(raw string) (string, bool) {
	cleaned := collapseSpaces(Repair(raw))
	if cleaned == "" {
		return domain.Other, true
	}

	if name, ok := categoryNames[strings.ToLower(cleaned)]; ok {
		return name, true
	}
	if r, ok := categoryRules.First(cleaned); ok {
		return r.Name, true
	}

	name := titleCase(cleaned)
	name = strings.ReplaceAll(name, " And ", " & ")
	return name, false
}
