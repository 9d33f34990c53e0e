package normalize

import (
	"strconv"
	"time"
)

const productNotSpecified = "Product not specified"

// NotificationURL is the public permalink prefix of a notification.
const NotificationURL = "https://webgate.ec.europa.eu/rasff-window/screen/notification/"

// ProductText cleans the free-text product description.
func ProductText(raw string) string {
	text := collapseSpaces(Repair(raw))
	if shouting(text) {
		text = titleCase(text)
	}
	if text == "" {
		return productNotSpecified
	}
	return text
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006 15:04:05",
	"02-01-2006",
	"02/01/2006",
}

// Date parses the alert date. Unparsable or missing values yield nil.
func Date(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	if len(raw) >= 12 {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
			t := time.UnixMilli(ms).UTC()
			return &t
		}
	}
	return nil
}

func link(base, ref string) *string {
	if ref == "" {
		return nil
	}
	l := base + ref
	return &l
}
