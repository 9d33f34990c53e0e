package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHazard(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Hazard
	}{
		{"empty", "", Hazard{Name: "Unknown", Category: "Unknown"}},
		{"whitespace", "   ", Hazard{Name: "Unknown", Category: "Unknown"}},
		{"named pathogen", "Salmonella enteritidis", Hazard{Name: "Salmonella", Category: "Pathogen"}},
		{"pathogen with marker", "Listeria monocytogenes - {pathogenic micro-organisms}", Hazard{Name: "Listeria", Category: "Pathogen"}},
		{"stec before e. coli", "shigatoxin-producing Escherichia coli", Hazard{Name: "E. coli (STEC)", Category: "Pathogen"}},
		{"plain e. coli", "E. coli", Hazard{Name: "E. coli", Category: "Pathogen"}},
		{"specific pesticide before generic", "chlorpyrifos pesticide residue", Hazard{Name: "Chlorpyrifos", Category: "Pesticide"}},
		{"generic pesticide", "unauthorised pesticide", Hazard{Name: "Pesticide Residue", Category: "Pesticide"}},
		{"lead word boundary", "lead in ceramic", Hazard{Name: "Lead", Category: "Heavy Metal"}},
		{"mislead is not lead", "misleading claims", Hazard{Name: "Misleading Claims", Category: "Other"}},
		{"marker only", "fipronil - {residues of veterinary medicinal products}", Hazard{Name: "Fipronil", Category: "Veterinary Drug"}},
		{"marker case insensitive", "sudan 4 - {Food Additives and Flavourings}", Hazard{Name: "Sudan 4", Category: "Additive"}},
		{"unknown marker", "something odd - {brand new thing}", Hazard{Name: "Something Odd", Category: "Brand New Thing"}},
		{"keyword", "too high count of coliforms", Hazard{Name: "Too High Count Of Coliforms", Category: "Micro-organism"}},
		{"unrecognized without marker", "Xyzzylin residue", Hazard{Name: "Xyzzylin Residue", Category: "Other"}},
		{"fallback strips trailing part", "Frobnicate - batch 12", Hazard{Name: "Frobnicate", Category: "Other"}},
		{"repaired before matching", "Salmonella in TÃ¼rkiye", Hazard{Name: "Salmonella", Category: "Pathogen"}},
		{"hepatitis e before hepatitis a", "hepatitis E virus - {pathogenic micro-organisms}", Hazard{Name: "Hepatitis E", Category: "Pathogen"}},
		{"hepatitis defaults to a", "hepatitis A virus", Hazard{Name: "Hepatitis A", Category: "Pathogen"}},
		{"insects are a foreign body", "live insects in rice", Hazard{Name: "Foreign Body", Category: "Foreign Body"}},
		{"insecticide is not an insect", "insecticide residue", Hazard{Name: "Insecticide Residue", Category: "Pesticide"}},
		{"insecticide with pesticide marker", "fipronil (insecticide) - {pesticide residues}", Hazard{Name: "Fipronil (insecticide)", Category: "Pesticide"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHazard(tt.raw))
		})
	}
}

func TestParseHazards_SplitsAndDedupes(t *testing.T) {
	raw := "Salmonella spp. - {pathogenic micro-organisms} *** Listeria monocytogenes - {pathogenic micro-organisms}"

	hazards := ParseHazards(raw)

	require.Len(t, hazards, 2)
	assert.Equal(t, Hazard{Name: "Salmonella", Category: "Pathogen"}, hazards[0])
	assert.Equal(t, Hazard{Name: "Listeria", Category: "Pathogen"}, hazards[1])
}

func TestParseHazards_DuplicateCanonicalNames(t *testing.T) {
	hazards := ParseHazards("Salmonella enteritidis *** salmonella typhimurium *** aflatoxin B1")

	assert.Equal(t, []Hazard{
		{Name: "Salmonella", Category: "Pathogen"},
		{Name: "Aflatoxin", Category: "Mycotoxin"},
	}, hazards)
}

func TestParseHazards_Empty(t *testing.T) {
	assert.Equal(t, []Hazard{{Name: "Unknown", Category: "Unknown"}}, ParseHazards(" *** "))
}

func TestParseHazard_NeverEmptyName(t *testing.T) {
	for _, raw := range []string{"-", " - ", "{allergens}", "''", "***"} {
		h := ParseHazard(raw)
		assert.NotEmpty(t, h.Name, raw)
		assert.NotEmpty(t, h.Category, raw)
	}
}
