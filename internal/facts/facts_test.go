package facts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodrisk/internal/domain"
	"foodrisk/internal/identity"
	"foodrisk/internal/normalize"
	"foodrisk/testdata/utils"
)

func TestExpand_OneFactPerHazard(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	alert := domain.NormalizedAlert{
		Hazard:           "Salmonella",
		HazardCategory:   "Pathogen",
		ProductText:      "Chicken kebab",
		ProductCategory:  "Poultry",
		OriginCountry:    "Turkey",
		OriginCountries:  []string{"Turkey", "Belgium"},
		NotifyingCountry: "Germany",
		RiskLevel:        domain.RiskSerious,
		AlertDate:        &date,
		Link:             utils.Ptr("https://example.test/2024.1234"),
	}
	hazards := normalize.ParseHazards("Salmonella spp. - {pathogenic micro-organisms} *** Listeria monocytogenes - {pathogenic micro-organisms}")

	got := Expand("2024.1234", "raw-1", alert, hazards)

	require.Len(t, got, 2)
	assert.Equal(t, "Salmonella", got[0].Hazard)
	assert.Equal(t, "Listeria", got[1].Hazard)
	for i, f := range got {
		assert.Equal(t, "Pathogen", f.HazardCategory)
		assert.Equal(t, "raw-1", f.RawID)
		assert.Equal(t, identity.FactID("2024.1234", f.Hazard, i), f.ID)
		assert.Equal(t, i, f.Ordinal)
		assert.Equal(t, "Poultry", f.ProductCategory)
		assert.Equal(t, []string{"Turkey", "Belgium"}, f.OriginCountries)
		assert.Equal(t, "Germany", f.NotifyingCountry)
		assert.Equal(t, &date, f.AlertDate)
	}
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestExpand_Idempotent(t *testing.T) {
	alert := domain.NormalizedAlert{ProductCategory: "Dairy"}
	hazards := []normalize.Hazard{{Name: "Listeria", Category: "Pathogen"}, {Name: "Aflatoxin", Category: "Mycotoxin"}}

	first := Expand("src", "raw", alert, hazards)
	second := Expand("src", "raw", alert, hazards)

	assert.Equal(t, first, second)
}

func TestExpand_DedupesCaseSensitive(t *testing.T) {
	hazards := []normalize.Hazard{
		{Name: "Salmonella", Category: "Pathogen"},
		{Name: "Salmonella", Category: "Pathogen"},
		{Name: "salmonella", Category: "Other"},
	}

	got := Expand("src", "raw", domain.NormalizedAlert{}, hazards)

	require.Len(t, got, 2)
	assert.Equal(t, identity.FactID("src", "salmonella", 1), got[1].ID)
}

func TestExpand_NoHazardsUsesAlertHazard(t *testing.T) {
	got := Expand("src", "raw", domain.NormalizedAlert{Hazard: "Unknown", HazardCategory: "Unknown"}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "Unknown", got[0].Hazard)
}

func TestAggregate_UnionPerRawRecord(t *testing.T) {
	facts := []domain.AlertFact{
		{ID: "F1", RawID: "R1", Hazard: "Salmonella", OriginCountry: "Turkey", ProductCategory: "Poultry", ProductText: "Kebab"},
		{ID: "F2", RawID: "R1", Hazard: "Listeria", OriginCountry: "Unknown", ProductCategory: "Ignored"},
		{ID: "F3", RawID: "R1", Hazard: "Salmonella", OriginCountry: "Turkey"},
	}

	got := Aggregate(facts)

	require.Len(t, got, 1)
	a := got[0]
	assert.Equal(t, "R1", a.RawID)
	assert.Equal(t, "F1", a.ID)
	assert.Equal(t, []string{"Salmonella", "Listeria"}, a.Hazards)
	assert.Equal(t, []string{"Turkey"}, a.Countries)
	assert.Equal(t, "Poultry", a.ProductCategory)
	assert.Equal(t, "Kebab", a.ProductText)
	assert.Equal(t, []string{"F1", "F2", "F3"}, a.FactIDs)
}

func TestAggregate_UnknownOnlyWhenAlone(t *testing.T) {
	facts := []domain.AlertFact{
		{ID: "F1", RawID: "R1", Hazard: "Unknown", OriginCountry: "Unknown"},
		{ID: "F2", RawID: "R2", Hazard: "Unknown", OriginCountries: []string{"Unknown"}},
		{ID: "F3", RawID: "R2", Hazard: "Aflatoxin", OriginCountries: []string{"Unknown", "India"}},
	}

	got := Aggregate(facts)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"Unknown"}, got[0].Hazards)
	assert.Equal(t, []string{"Unknown"}, got[0].Countries)
	assert.Equal(t, []string{"Aflatoxin"}, got[1].Hazards)
	assert.Equal(t, []string{"India"}, got[1].Countries)
}

func TestAggregate_InsertionOrderAndFallbackKey(t *testing.T) {
	facts := []domain.AlertFact{
		{ID: "F1", RawID: "R2", Hazard: "Lead"},
		{ID: "F2", RawID: "", Hazard: "Mercury"},
		{ID: "F3", RawID: "R1", Hazard: "Arsenic"},
		{ID: "F4", RawID: "R2", Hazard: "Cadmium"},
	}

	got := Aggregate(facts)

	require.Len(t, got, 3)
	assert.Equal(t, "R2", got[0].RawID)
	assert.Equal(t, []string{"Lead", "Cadmium"}, got[0].Hazards)
	assert.Equal(t, "F2", got[1].RawID)
	assert.Equal(t, "R1", got[2].RawID)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}
