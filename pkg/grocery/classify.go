package grocery

import (
	"foodloop/domain"
	"time"
)

const (
	expiringSoonDays = 2
	useSoonDays      = 7
)

// DaysLeft is the number of calendar days from today until expiry. It is
// negative once the expiry date has passed.
func DaysLeft(expiry, today time.Time) int {
	return int((calendarDate(expiry).Unix() - calendarDate(today).Unix()) / 86400)
}

// Classify derives the freshness status of an entry expiring on expiry.
func Classify(expiry, today time.Time) domain.Status {
	daysLeft := DaysLeft(expiry, today)
	switch {
	case daysLeft < expiringSoonDays:
		return domain.StatusExpiringSoon
	case daysLeft < useSoonDays:
		return domain.StatusUseSoon
	default:
		return domain.StatusFresh
	}
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
