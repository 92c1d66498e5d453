package registration

import "time"

// AdultAge is the age from which an RFC is required.
const AdultAge = 18

// Age returns the completed years between two calendar dates. Only the
// year, month and day of each value are used, so both should be expressed in the
// same location. A birth date after today gives a negative age.
func Age(birth, today time.Time) int {
	by, bm, bd := birth.Date()
	ty, tm, td := today.Date()

	age := ty - by
	if tm < bm || (tm == bm && td < bd) {
		age--
	}
	return age
}

// IsAdult reports whether someone born on birth is at least AdultAge on today.
func IsAdult(birth, today time.Time) bool {
	return Age(birth, today) >= AdultAge
}
