// Package identity derives the deterministic ids that make ingestion idempotent.
package identity

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"foodrisk/internal/domain"
	"foodrisk/internal/record"
)

// Vendor id fields, in priority order.
var sourceIDFields = []string{"id", "notif_id", "notification_reference", "referenceNumber"}

// Fields hashed when a record carries no vendor id.
var fallbackFields = [][]string{
	{"notification_reference", "referenceNumber"},
	{"notification_type_desc", "notificationType"},
	{"product_category_desc", "productCategory"},
	{"origin_country_desc", "country"},
}

// SourceID returns the vendor-assigned id of rec, or a content hash of its salient
// fields when none is present. Identical records always yield the same id.
func SourceID(rec domain.RawRecord) string {
	if v, ok := record.Pick(rec, sourceIDFields...); ok && !numericZero(v) {
		if id := record.String(rec, sourceIDFields...); id != "" {
			return id
		}
	}

	pieces := make([]any, len(fallbackFields))
	for i, candidates := range fallbackFields {
		if v, ok := record.Pick(rec, candidates...); ok {
			pieces[i] = v
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pieces); err != nil {
		// Only reachable with values json cannot encode; fall back to their printed form.
		buf.Reset()
		fmt.Fprint(&buf, pieces...)
	}

	sum := sha1.Sum(bytes.TrimRight(buf.Bytes(), "\n"))
	return hex.EncodeToString(sum[:])
}

// numericZero reports whether v is a JSON number equal to zero. The string "0" is a
// real vendor id.
func numericZero(v any) bool {
	switch n := v.(type) {
	case float64:
		return n == 0
	case int:
		return n == 0
	case int64:
		return n == 0
	case json.Number:
		f, err := n.Float64()
		return err == nil && f == 0
	}
	return false
}

// StableID formats the first 16 bytes of sha256(seed) as a UUID string.
func StableID(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	id, _ := uuid.FromBytes(sum[:16])
	return id.String()
}

// RawID is the envelope id of a raw record.
func RawID(sourceID string) string {
	return StableID(sourceID)
}

// FactID is the id of the ordinal-th hazard fact split from a source record.
func FactID(sourceID, hazard string, ordinal int) string {
	return StableID(fmt.Sprintf("%s-%s-%d", sourceID, hazard, ordinal))
}
