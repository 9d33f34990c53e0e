// Package digest decides when a subscription is due and which alerts it has not seen.
//
// Due-ness follows the calendar: weekly digests go out on Mondays and monthly digests on
// the 1st, both in UTC. A missed run is not caught up; the subscription waits for the
// next boundary.
package digest

import (
	"fmt"
	"time"

	"foodrisk/internal/domain"
)

const (
	WeeklyDay  = time.Monday
	MonthlyDay = 1
)

// IsDue reports whether a digest of freq should be sent on today.
func IsDue(freq domain.Frequency, today time.Time) bool {
	today = today.UTC()
	switch freq {
	case domain.FrequencyDaily:
		return true
	case domain.FrequencyWeekly:
		return today.Weekday() == WeeklyDay
	case domain.FrequencyMonthly:
		return today.Day() == MonthlyDay
	}
	return false
}

// Lookback returns the number of whole days a digest of freq covers.
func Lookback(freq domain.Frequency) (int, error) {
	switch freq {
	case domain.FrequencyDaily:
		return 1, nil
	case domain.FrequencyWeekly:
		return 7, nil
	case domain.FrequencyMonthly:
		return 30, nil
	}
	return 0, fmt.Errorf("unknown frequency %q", freq)
}

// LookbackWindow returns [from, to) where to is midnight UTC of today and from is
// the lookback number of whole days earlier.
func LookbackWindow(freq domain.Frequency, today time.Time) (time.Time, time.Time, error) {
	days, err := Lookback(freq)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to := Midnight(today)
	return to.AddDate(0, 0, -days), to, nil
}

// Midnight truncates t to 00:00 UTC of its UTC calendar day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ExcludeDelivered drops alerts whose facts were all delivered before. Alerts with at
// least one new fact are kept whole.
func ExcludeDelivered(alerts []domain.AggregatedAlert, delivered map[string]struct{}) []domain.AggregatedAlert {
	if len(delivered) == 0 {
		return alerts
	}
	out := make([]domain.AggregatedAlert, 0, len(alerts))
	for _, a := range alerts {
		if !allDelivered(a.FactIDs, delivered) {
			out = append(out, a)
		}
	}
	return out
}

func allDelivered(ids []string, delivered map[string]struct{}) bool {
	for _, id := range ids {
		if _, ok := delivered[id]; !ok {
			return false
		}
	}
	return true
}

// FactIDs flattens the fact ids of alerts, in order.
func FactIDs(alerts []domain.AggregatedAlert) []string {
	var ids []string
	for _, a := range alerts {
		ids = append(ids, a.FactIDs...)
	}
	return ids
}
