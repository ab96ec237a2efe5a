package appointment

import "regexp"

// Wall-clock times are strict zero-padded 24h "HH:MM" strings. Keeping
// the format strict means lexicographic order equals chronological
// order, which the SQL conflict query relies on.
var timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseTime converts "HH:MM" to minutes since midnight.
// ok is false for anything outside the strict format.
func ParseTime(s string) (minutes int, ok bool) {
	m := timeRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	hours := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	mins := int(m[2][0]-'0')*10 + int(m[2][1]-'0')

	return hours*60 + mins, true
}

// Overlaps reports whether two half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Exact back-to-back slots do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// TimesOverlap is Overlaps over raw "HH:MM" strings; malformed input
// never conflicts (validation rejects it before this point).
func TimesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	as, ok1 := ParseTime(aStart)
	ae, ok2 := ParseTime(aEnd)
	bs, ok3 := ParseTime(bStart)
	be, ok4 := ParseTime(bEnd)

	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}

	return Overlaps(as, ae, bs, be)
}
