package timezone

import "time"

// The whole system runs in a single local timezone.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// StartOfDay truncates t to midnight in the system timezone.
func StartOfDay(t time.Time) time.Time {
	loc := Location()
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay compares two instants by calendar day component only.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(Location()).Date()
	by, bm, bd := b.In(Location()).Date()
	return ay == by && am == bm && ad == bd
}
