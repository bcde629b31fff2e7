package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var clockRE = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)

// ParseClockTime converts a 12-hour "H:MM AM/PM" string into a fractional
// hour in [0, 24): "6:00 AM" -> 6.0, "02:30 PM" -> 14.5, "12:00 AM" -> 0.
// Schedule cells are free text, so a false result is an expected outcome;
// callers skip the record rather than treating it as an error.
func ParseClockTime(s string) (float64, bool) {
	m := clockRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, false
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return float64(hour) + float64(minute)/60.0, true
}
