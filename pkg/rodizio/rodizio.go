// Package rodizio computes the weekday on which a plate is banned from
// circulating under the municipal rotation scheme.
package rodizio

import (
	"strings"
	"time"
)

const (
	Monday    = "Segunda"
	Tuesday   = "Terça"
	Wednesday = "Quarta"
	Thursday  = "Quinta"
	Friday    = "Sexta"
	None      = "N/A"
)

// checked in order; the first pair with a digit present in the plate tail wins
var digitRules = []struct {
	digits string
	day    string
}{
	{"12", Monday},
	{"34", Tuesday},
	{"56", Wednesday},
	{"78", Thursday},
	{"90", Friday},
}

var weekdays = map[time.Weekday]string{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
}

// DayForPlate inspects the last two characters of the plate.
func DayForPlate(plate string) string {
	plate = strings.TrimSpace(plate)
	if len(plate) < 7 {
		return None
	}

	tail := plate[len(plate)-2:]
	for _, rule := range digitRules {
		if strings.ContainsAny(tail, rule.digits) {
			return rule.day
		}
	}
	return None
}

func IsRestrictedOn(day string, t time.Time) bool {
	name, ok := weekdays[t.Weekday()]
	return ok && name == day
}

func IsRestrictedToday(day string) bool {
	return IsRestrictedOn(day, time.Now())
}
