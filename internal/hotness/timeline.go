package hotness

import (
	"strconv"
	"strings"
	"time"
)

// TimelineSeparator splits a timeline entry into its date and description.
const TimelineSeparator = " — "

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,

	"январь": time.January, "января": time.January,
	"февраль": time.February, "февраля": time.February,
	"март": time.March, "марта": time.March,
	"апрель": time.April, "апреля": time.April,
	"май": time.May, "мая": time.May,
	"июнь": time.June, "июня": time.June,
	"июль": time.July, "июля": time.July,
	"август": time.August, "августа": time.August,
	"сентябрь": time.September, "сентября": time.September,
	"октябрь": time.October, "октября": time.October,
	"ноябрь": time.November, "ноября": time.November,
	"декабрь": time.December, "декабря": time.December,
}

// ParseTimelineDate reads the "<day> <month-name> <year>" prefix of a
// timeline entry. Everything after the first separator is ignored; an entry
// without a separator is parsed whole. The date is midnight in loc.
func ParseTimelineDate(entry string, loc *time.Location) (time.Time, bool) {
	datePart, _, _ := strings.Cut(entry, TimelineSeparator)

	fields := strings.Fields(datePart)
	if len(fields) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	month, ok := monthNames[strings.ToLower(fields[1])]
	if !ok {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(fields[2])
	if err != nil || year < 1 || year > 9999 {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	// time.Date normalizes overflow such as 31 February; reject it.
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}
