// Package derive computes the display metrics synthesized from raw table
// dates: experience totals, project durations, average tenure, and ages.
// Every calculator fails closed, returning its zero or sentinel value on
// unparseable input rather than an error.
package derive

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Clock supplies the current time. Injected so calculators are testable
// against fixed dates.
type Clock func() time.Time

// SystemClock is the production clock.
func SystemClock() time.Time {
	return time.Now()
}

// YearsOfExperience converts a YYYY-MM-DD work start date into fractional
// years, rounded to one decimal. Unparseable or future dates yield 0.0.
func YearsOfExperience(startDate string, now Clock) float64 {
	start, err := time.Parse("2006-01-02", strings.TrimSpace(startDate))
	if err != nil {
		return 0.0
	}
	days := now().Sub(start).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Round(days/365.25*10) / 10
}

// ProjectDuration renders the span between two YYYY-MM-DD dates as a human
// label. No start date yields the empty string; a missing end date means the
// project is ongoing and is measured up to today.
//
//	under 30 days   "N days"
//	under a year    "N months"   (30-day months)
//	otherwise       "Y years" with a month remainder when present
func ProjectDuration(startDate, endDate string, now Clock) string {
	start, err := time.Parse("2006-01-02", strings.TrimSpace(startDate))
	if err != nil {
		return ""
	}

	end := now()
	if trimmed := strings.TrimSpace(endDate); trimmed != "" {
		parsed, err := time.Parse("2006-01-02", trimmed)
		if err != nil {
			return ""
		}
		end = parsed
	}

	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}

	switch {
	case days < 30:
		return fmt.Sprintf("%d %s", days, plural(days, "day"))
	case days < 365:
		months := days / 30
		return fmt.Sprintf("%d %s", months, plural(months, "month"))
	default:
		years := days / 365
		months := (days % 365) / 30
		label := fmt.Sprintf("%d %s", years, plural(years, "year"))
		if months > 0 {
			label += fmt.Sprintf(" %d %s", months, plural(months, "month"))
		}
		return label
	}
}

// NotSpecified is the sentinel rendered when a metric has no usable input.
const NotSpecified = "Not specified"

// Tenure is one completed employment span in YYYY-MM form.
type Tenure struct {
	Start string
	End   string
}

// TenureMonths measures one tenure in whole months. The count is inclusive
// of the final month whenever the span reaches the start month of a later
// year, or ends in the same-or-later month of the same year.
func TenureMonths(t Tenure) (int, bool) {
	start, err := time.Parse("2006-01", strings.TrimSpace(t.Start))
	if err != nil {
		return 0, false
	}
	end, err := time.Parse("2006-01", strings.TrimSpace(t.End))
	if err != nil {
		return 0, false
	}

	yearDiff := end.Year() - start.Year()
	monthDiff := int(end.Month()) - int(start.Month())
	months := yearDiff*12 + monthDiff
	if int(end.Month()) >= int(start.Month()) || yearDiff > 0 {
		months++
	}
	if months < 0 {
		return 0, false
	}
	return months, true
}

// AverageTenure averages the completed tenures and renders the result as
// "X.X years" when at least a year, "N months" otherwise. Spans that are
// ongoing or unparseable are skipped; with nothing left the sentinel
// "Not specified" is returned.
func AverageTenure(tenures []Tenure) string {
	var total, count int
	for _, t := range tenures {
		months, ok := TenureMonths(t)
		if !ok {
			continue
		}
		total += months
		count++
	}
	if count == 0 {
		return NotSpecified
	}

	avg := float64(total) / float64(count)
	if avg >= 12 {
		return fmt.Sprintf("%.1f years", avg/12)
	}
	return fmt.Sprintf("%.0f months", avg)
}

// Age computes whole years since a YYYY-MM-DD birth date, nil when the date
// cannot be parsed.
func Age(dob string, now Clock) *int {
	birth, err := time.Parse("2006-01-02", strings.TrimSpace(dob))
	if err != nil {
		return nil
	}
	today := now()
	age := today.Year() - birth.Year()
	if int(today.Month()) < int(birth.Month()) ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return &age
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
