package identity

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"foodrisk/internal/domain"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestSourceID_VendorID(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.RawRecord
		want string
	}{
		{"id", domain.RawRecord{"id": "abc", "notif_id": "def"}, "abc"},
		{"numeric id", domain.RawRecord{"ID": json.Number("42")}, "42"},
		{"notif id", domain.RawRecord{"NOTIF_ID": 77.0}, "77"},
		{"reference", domain.RawRecord{"notification_reference": "2024.1234"}, "2024.1234"},
		{"camel reference", domain.RawRecord{"referenceNumber": "2024.99"}, "2024.99"},
		{"string zero is a real id", domain.RawRecord{"id": "0"}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SourceID(tt.rec))
		})
	}
}

func TestSourceID_ContentHashFallback(t *testing.T) {
	a := domain.RawRecord{
		"notification_type_desc": "alert notification",
		"product_category_desc":  "herbs and spices",
		"origin_country_desc":    "India",
		"subject":                "ignored",
	}
	b := domain.RawRecord{
		"notificationType": "alert notification",
		"productCategory":  "herbs and spices",
		"country":          "India",
		"subject":          "different but not salient",
	}
	c := domain.RawRecord{
		"notification_type_desc": "alert notification",
		"product_category_desc":  "herbs and spices",
		"origin_country_desc":    "Pakistan",
	}

	idA := SourceID(a)
	assert.Len(t, idA, 40)
	assert.Equal(t, idA, SourceID(b))
	assert.NotEqual(t, idA, SourceID(c))
	assert.Equal(t, idA, SourceID(a))
}

func TestSourceID_EmptyRecord(t *testing.T) {
	// sha1 of [null,null,null,null]
	assert.Equal(t, "2e5aa337513b879eb71bbeb70709b52c16d5605b", SourceID(domain.RawRecord{}))
	assert.Equal(t, SourceID(domain.RawRecord{}), SourceID(domain.RawRecord{"id": ""}))
	assert.Equal(t, SourceID(domain.RawRecord{}), SourceID(domain.RawRecord{"id": 0.0}))
	assert.Equal(t, SourceID(domain.RawRecord{}), SourceID(domain.RawRecord{"id": json.Number("0")}))
}

func TestStableID(t *testing.T) {
	id := StableID("2024.1234")

	assert.Regexp(t, uuidPattern, id)
	assert.Equal(t, id, StableID("2024.1234"))
	assert.NotEqual(t, id, StableID("2024.1235"))
	assert.Equal(t, RawID("2024.1234"), id)
}

func TestFactID_DistinctPerHazardAndOrdinal(t *testing.T) {
	ids := map[string]struct{}{
		FactID("2024.1234", "Salmonella", 0): {},
		FactID("2024.1234", "Listeria", 1):   {},
		FactID("2024.1234", "Salmonella", 1): {},
		FactID("2024.1235", "Salmonella", 0): {},
	}
	assert.Len(t, ids, 4)

	assert.Equal(t, StableID("2024.1234-Salmonella-0"), FactID("2024.1234", "Salmonella", 0))
}
