package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// DateLayout is the only accepted birthdate representation.
const DateLayout = "YYYY-MM-DD"

var datePattern = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})-([0-9]{2})$`)

// CalendarDate is a timezone-less Gregorian date. Values are only produced by
// ParseCalendarDate and always name a day that exists.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseCalendarDate validates raw against YYYY-MM-DD and the Gregorian
// calendar.
func ParseCalendarDate(raw string) (CalendarDate, error) {
	m := datePattern.FindStringSubmatch(raw)
	if m == nil {
		return CalendarDate{}, &ValidationError{Kind: KindMalformedFormat, Input: raw}
	}

	// The pattern guarantees short digit runs, so Atoi cannot fail.
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return CalendarDate{}, &ValidationError{Kind: KindOutOfRange, Input: raw}
	}
	if day > DaysInMonth(year, month) {
		return CalendarDate{}, &ValidationError{Kind: KindInvalidCalendarDate, Input: raw}
	}

	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year. month must be in [1,12].
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}
