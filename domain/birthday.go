package domain

import "time"

// BirthdayLayout is the wire format for birthday strings.
const BirthdayLayout = "2006-01-02"

// DaysUntilUnknown marks a birthday that could not be parsed. It sorts
// after every real entry in the reminder listing.
const DaysUntilUnknown = 999

// Birthday is a successfully parsed calendar date of birth. Parse
// failures stay visible as errors; callers decide whether to fall back
// to sentinel values.
type Birthday struct {
	date time.Time
}

func ParseBirthday(s string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return Birthday{}, err
	}
	return Birthday{date: t}, nil
}

// AgeOn returns the number of complete years elapsed as of today. On
// the anniversary itself the new year already counts.
func (b Birthday) AgeOn(today time.Time) int {
	age := today.Year() - b.date.Year()
	if today.Month() < b.date.Month() ||
		(today.Month() == b.date.Month() && today.Day() < b.date.Day()) {
		age--
	}
	return age
}

// DaysUntilFrom returns the number of days from today until the next
// occurrence of the birthday, 0 on the anniversary itself. A Feb 29
// birthday re-anchored into a non-leap year rolls forward to Mar 1.
func (b Birthday) DaysUntilFrom(today time.Time) int {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	next := time.Date(today.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}

	return int(next.Sub(today).Hours() / 24)
}
