package normalize

import (
	"regexp"
	"strings"
)

// Rule maps every input matched by Pattern to a canonical name and category.
//
// Rule lists are evaluated in declaration order and the first match wins, so a list
// must keep specific patterns ahead of the generic ones that would also match.
type Rule struct {
	Pattern  *regexp.Regexp
	Name     string
	Category string
}

type Rules []Rule

func rule(pattern, name, category string) Rule {
	return Rule{Pattern: regexp.MustCompile("(?i)" + pattern), Name: name, Category: category}
}

// First returns the first rule matching s.
func (rs Rules) First(s string) (Rule, bool) {
	for _, r := range rs {
		if r.Pattern.MatchString(s) {
			return r, true
		}
	}
	return Rule{}, false
}

// Names lists the distinct canonical names in declaration order.
func (rs Rules) Names() []string {
	names := make([]string, 0, len(rs))
	for _, r := range rs {
		names = append(names, r.Name)
	}
	return dedupe(names)
}

// keywordRule assigns Category to any text containing one of Keywords.
type keywordRule struct {
	Keywords []string
	Category string
}

func firstKeyword(rules []keywordRule, s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Category, true
			}
		}
	}
	return "", false
}
