package domain

// ZodiacSign is one of the twelve Western tropical zodiac labels.
type ZodiacSign string

const (
	Aries       ZodiacSign = "Aries"
	Taurus      ZodiacSign = "Taurus"
	Gemini      ZodiacSign = "Gemini"
	Cancer      ZodiacSign = "Cancer"
	Leo         ZodiacSign = "Leo"
	Virgo       ZodiacSign = "Virgo"
	Libra       ZodiacSign = "Libra"
	Scorpio     ZodiacSign = "Scorpio"
	Sagittarius ZodiacSign = "Sagittarius"
	Capricorn   ZodiacSign = "Capricorn"
	Aquarius    ZodiacSign = "Aquarius"
	Pisces      ZodiacSign = "Pisces"
)

// AllSigns lists the signs in calendar order starting with Capricorn.
func AllSigns() []ZodiacSign {
	signs := make([]ZodiacSign, 0, len(signRanges))
	for _, r := range signRanges {
		signs = append(signs, r.sign)
	}
	return signs
}

// signRange bounds are inclusive on both ends.
type signRange struct {
	startMonth, startDay int
	endMonth, endDay     int
	sign                 ZodiacSign
}

var signRanges = []signRange{
	{12, 22, 1, 19, Capricorn},
	{1, 20, 2, 18, Aquarius},
	{2, 19, 3, 20, Pisces},
	{3, 21, 4, 19, Aries},
	{4, 20, 5, 20, Taurus},
	{5, 21, 6, 20, Gemini},
	{6, 21, 7, 22, Cancer},
	{7, 23, 8, 22, Leo},
	{8, 23, 9, 22, Virgo},
	{9, 23, 10, 22, Libra},
	{10, 23, 11, 21, Scorpio},
	{11, 22, 12, 21, Sagittarius},
}

// ordinal orders (month, day) pairs the way the calendar does.
func ordinal(month, day int) int {
	return month*100 + day
}

func (r signRange) contains(month, day int) bool {
	start := ordinal(r.startMonth, r.startDay)
	end := ordinal(r.endMonth, r.endDay)
	at := ordinal(month, day)
	if start <= end {
		return at >= start && at <= end
	}
	// wraps the year boundary
	return at >= start || at <= end
}

// Classify returns the sign for a validated date. The ranges partition the
// year, so every CalendarDate matches exactly one of them.
func Classify(date CalendarDate) ZodiacSign {
	for _, r := range signRanges {
		if r.contains(date.Month, date.Day) {
			return r.sign
		}
	}
	panic("zodiac: no sign range covers " + date.String())
}
