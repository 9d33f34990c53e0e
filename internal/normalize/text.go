package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// titleCase lowercases s and upper-cases the first letter of every space separated word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// shouting reports whether s is all upper case and long enough to be worth recasing.
func shouting(s string) bool {
	return len(s) > 3 && s == strings.ToUpper(s) && s != strings.ToLower(s)
}

// splitMulti splits a field packed with the *** delimiter. Empty pieces are dropped.
func splitMulti(raw string) []string {
	parts := strings.Split(raw, "***")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
