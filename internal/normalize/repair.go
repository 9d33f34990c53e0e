package normalize

import "strings"

// repairs undoes common UTF-8 text that was decoded as Latin-1 upstream. Whole words
// come first so they win over the single-character fixes they contain.
var repairs = []string{
	"TÃ¼rkiye", "Türkiye",
	"CÃ´te d'Ivoire", "Côte d'Ivoire",
	"CuraÃ§ao", "Curaçao",
	"RÃ©union", "Réunion",
	"SÃ£o TomÃ©", "São Tomé",
	"Ã…land", "Åland",
	"Ã–sterreich", "Österreich",
	"fÃ¼r", "für",
	"Ã¤", "ä",
	"Ã¶", "ö",
	"Ã¼", "ü",
	"Ã©", "é",
	"Ã¨", "è",
	"Ã¢", "â",
	"Ã®", "î",
	"Ã´", "ô",
	"Ã»", "û",
	"Ã±", "ñ",
	"Ã§", "ç",
	"Ã£", "ã",
	"Ã ", "à",
	"â€™", "’",
	"â€“", "–",
	"Â°", "°",
	"Âµ", "µ",
}

var repairer = strings.NewReplacer(repairs...)

// Repair applies the fixed mis-decoding substitution table. It is best effort and
// knows nothing about classification.
func Repair(s string) string {
	if !strings.ContainsAny(s, "ÃâÂ") {
		return s
	}
	return repairer.Replace(s)
}
