package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodrisk/internal/domain"
)

func TestMatch(t *testing.T) {
	listeriaTurkey := domain.AggregatedAlert{Hazards: []string{"Listeria"}, Countries: []string{"Turkey"}, ProductCategory: "Dairy"}
	bothTurkey := domain.AggregatedAlert{Hazards: []string{"Salmonella", "Listeria"}, Countries: []string{"Turkey"}, ProductCategory: "Poultry"}
	notifiedByTurkey := domain.AggregatedAlert{Hazards: []string{"Salmonella"}, Countries: []string{"Brazil"}, NotifyingCountry: "Turkey"}

	salmonellaInTurkey := Filters{Hazards: []string{"Salmonella"}, Countries: []string{"Turkey"}}

	tests := []struct {
		name    string
		alert   domain.AggregatedAlert
		filters Filters
		want    bool
	}{
		{"no filters match everything", listeriaTurkey, Filters{}, true},
		{"hazard dimension fails", listeriaTurkey, salmonellaInTurkey, false},
		{"all dimensions satisfied", bothTurkey, salmonellaInTurkey, true},
		{"notifying country counts", notifiedByTurkey, salmonellaInTurkey, true},
		{"or within a dimension", listeriaTurkey, Filters{Hazards: []string{"Aflatoxin", "Listeria"}}, true},
		{"case insensitive substring", bothTurkey, Filters{Hazards: []string{"SALMON"}, Categories: []string{"poul"}}, true},
		{"category dimension fails", bothTurkey, Filters{Categories: []string{"Dairy"}}, false},
		{"country dimension fails", bothTurkey, Filters{Countries: []string{"Spain"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.alert, tt.filters))
		})
	}
}

func TestFromRules(t *testing.T) {
	rules := []domain.FilterRule{
		{FilterID: "f1", RuleType: domain.RuleHazard, RuleValue: "Salmonella"},
		{FilterID: "f1", RuleType: domain.RuleCountry, RuleValue: " Turkey "},
		{FilterID: "f1", RuleType: domain.RuleCategory, RuleValue: "Dairy"},
		{FilterID: "f1", RuleType: domain.RuleHazard, RuleValue: "  "},
		{FilterID: "f1", RuleType: "brand", RuleValue: "Acme"},
	}

	f := FromRules(rules)

	assert.Equal(t, []string{"Salmonella"}, f.Hazards)
	assert.Equal(t, []string{"Turkey"}, f.Countries)
	assert.Equal(t, []string{"Dairy"}, f.Categories)
	assert.False(t, f.Empty())
	assert.True(t, FromRules(nil).Empty())
}

func TestApply(t *testing.T) {
	alerts := []domain.AggregatedAlert{
		{ID: "a", Hazards: []string{"Listeria"}},
		{ID: "b", Hazards: []string{"Salmonella"}},
		{ID: "c", Hazards: []string{"Salmonella", "Lead"}},
	}

	got := Apply(alerts, Filters{Hazards: []string{"salmonella"}})

	assert.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Len(t, Apply(alerts, Filters{}), 3)
}
