package normalize

import (
	"fmt"
	"strings"

	"foodrisk/internal/domain"
)

// countryRules are anchored so a rule never rewrites part of a longer name.
var countryRules = Rules{
	rule(`^(republic\s+of\s+)?(türkiye|turkiye|turkey)$`, "Turkey", ""),
	rule(`^(u\.?s\.?a?\.?|united\s*states(\s+of\s+america)?)$`, "USA", ""),
	rule(`^(u\.?k\.?|united\s*kingdom.*|great\s*britain)$`, "UK", ""),
	rule(`^viet\s*nam$`, "Vietnam", ""),
	rule(`^(czech\s*republic|czechia)$`, "Czechia", ""),
	rule(`^((the\s+)?netherlands|holland)$`, "Netherlands", ""),
	rule(`^russian\s*federation$`, "Russia", ""),
	rule(`^(democratic\s+people'?s\s+republic\s+of\s+korea|korea,?\s*democratic.*|north\s+korea)$`, "North Korea", ""),
	rule(`^(republic\s+of\s+korea|korea,?\s*republic\s+of|south\s+korea)$`, "South Korea", ""),
	rule(`^(china|prc|people'?s\s+republic\s+of\s+china)$`, "China", ""),
	rule(`^hong\s*kong(\s+sar.*)?$`, "Hong Kong", ""),
	rule(`^(c[oô]te\s+d.?ivoire|ivory\s+coast)$`, "Côte d'Ivoire", ""),
	rule(`^(uae|united\s+arab\s+emirates)$`, "United Arab Emirates", ""),
	rule(`^(drc|democratic\s+republic\s+of\s+(the\s+)?congo)$`, "DR Congo", ""),
	rule(`^(iran|islamic\s+republic\s+of\s+iran|iran,?\s*islamic\s+republic\s+of)$`, "Iran", ""),
	rule(`^brasil$`, "Brazil", ""),
	rule(`^(unknown.*|not\s*determined.*|n/a|-)$`, domain.Unknown, ""),
}

// knownCountries are names that pass through unchanged without being reported as unmapped.
var knownCountries = map[string]struct{}{}

func init() {
	for _, c := range []string{
		"Albania", "Algeria", "Argentina", "Armenia", "Australia", "Austria", "Azerbaijan",
		"Bangladesh", "Belarus", "Belgium", "Bolivia", "Bosnia and Herzegovina", "Brazil",
		"Bulgaria", "Cambodia", "Cameroon", "Canada", "Chile", "China", "Colombia", "Costa Rica",
		"Croatia", "Cyprus", "Czechia", "Denmark", "Dominican Republic", "Ecuador", "Egypt",
		"El Salvador", "Estonia", "Ethiopia", "Finland", "France", "Georgia", "Germany", "Ghana",
		"Greece", "Guatemala", "Honduras", "Hong Kong", "Hungary", "Iceland", "India", "Indonesia",
		"Iran", "Ireland", "Israel", "Italy", "Japan", "Jordan", "Kazakhstan", "Kenya", "Kosovo",
		"Latvia", "Lebanon", "Liechtenstein", "Lithuania", "Luxembourg", "Madagascar", "Malaysia",
		"Malta", "Mauritius", "Mexico", "Moldova", "Montenegro", "Morocco", "Namibia", "Nepal",
		"Netherlands", "New Zealand", "Nicaragua", "Nigeria", "North Macedonia", "Norway",
		"Pakistan", "Panama", "Paraguay", "Peru", "Philippines", "Poland", "Portugal", "Romania",
		"Russia", "Saudi Arabia", "Senegal", "Serbia", "Singapore", "Slovakia", "Slovenia",
		"South Africa", "Spain", "Sri Lanka", "Sweden", "Switzerland", "Syria", "Taiwan",
		"Tanzania", "Thailand", "Tunisia", "Turkey", "Uganda", "Ukraine", "Uruguay", "Uzbekistan",
		"Vietnam", "Zimbabwe",
		"USA", "UK", "South Korea", "North Korea", "Côte d'Ivoire", "United Arab Emirates", "DR Congo",
	} {
		knownCountries[strings.ToLower(c)] = struct{}{}
	}
}

// Country returns the canonical name of one country value; empty input yields "Unknown".
func Country(raw string) string {
	c, _ := classifyCountry(raw)
	return c
}

func classifyCountry(raw string) (string, bool) {
	cleaned := collapseSpaces(Repair(raw))
	if cleaned == "" {
		return domain.Unknown, true
	}

	if r, ok := countryRules.First(cleaned); ok {
		return r.Name, true
	}

	if shouting(cleaned) {
		cleaned = titleCase(cleaned)
	}
	_, known := knownCountries[strings.ToLower(cleaned)]
	return cleaned, known
}

// Countries splits a *** packed field into distinct canonical names. "Unknown" is kept
// only when nothing else is present.
func Countries(raw string) []string {
	var out []string
	for _, piece := range splitMulti(Repair(raw)) {
		if c := Country(piece); c != domain.Unknown {
			out = append(out, c)
		}
	}
	out = dedupe(out)
	if len(out) == 0 {
		return []string{domain.Unknown}
	}
	return out
}

// CountryLabel renders a short display label: the full list up to three values,
// otherwise the first two and a count of the rest.
func CountryLabel(countries []string) string {
	countries = dedupe(countries)
	switch {
	case len(countries) == 0:
		return domain.Unknown
	case len(countries) <= 3:
		return strings.Join(countries, ", ")
	default:
		return fmt.Sprintf("%s +%d more", strings.Join(countries[:2], ", "), len(countries)-2)
	}
}
