package textutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var referenceMonths = []string{
	"january",
	"february",
	"march",
	"april",
	"may",
	"june",
	"july",
	"august",
	"september",
	"october",
	"november",
	"december",
}

func parseMonth(text string) time.Month {
	text = strings.TrimSuffix(strings.ToLower(text), ".")
	if len(text) < 3 {
		return -1
	}
	for i, month := range referenceMonths {
		if strings.HasPrefix(month, text[:3]) {
			return time.January + time.Month(i)
		}
	}
	return -1
}

const monthPattern = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sept?(?:ember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`

var (
	monthDayYearRegex = regexp.MustCompile(`(?i)\b` + monthPattern + `\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
	dayMonthYearRegex = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+` + monthPattern + `,?\s+(\d{4})\b`)
	isoDateRegex      = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	slashDateRegex    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
)

func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// ParseDate finds a calendar date anywhere inside free-form text, ex.
// "Ordered on December 3, 2024" or "Digital Order: 11 Oct 2024". Surrounding words are
// ignored. The result is midnight UTC of that calendar day.
func ParseDate(text string) (time.Time, bool) {
	text = CollapseSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	if m := monthDayYearRegex.FindStringSubmatch(text); m != nil {
		if t, ok := makeDate(atoi(m[3]), int(parseMonth(m[1])), atoi(m[2])); ok {
			return t, true
		}
	}
	if m := dayMonthYearRegex.FindStringSubmatch(text); m != nil {
		if t, ok := makeDate(atoi(m[3]), int(parseMonth(m[2])), atoi(m[1])); ok {
			return t, true
		}
	}
	if m := isoDateRegex.FindStringSubmatch(text); m != nil {
		if t, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3])); ok {
			return t, true
		}
	}
	if m := slashDateRegex.FindStringSubmatch(text); m != nil {
		if t, ok := makeDate(atoi(m[3]), atoi(m[1]), atoi(m[2])); ok {
			return t, true
		}
	}

	// last resort for layouts the regexes above do not know about, the whole
	// text has to be a date for this to succeed
	parsed, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
}
