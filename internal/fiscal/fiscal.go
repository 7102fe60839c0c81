package fiscal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultStartMonth is the first month of a South African company's usual
// financial year.
const DefaultStartMonth = time.March

// FinancialYear returns the financial year a date falls in, labelled by the
// calendar year in which it ends. With a March start, 2025-03-01 through
// 2026-02-28 is financial year 2026.
func FinancialYear(date time.Time, startMonth time.Month) int {
	if startMonth > time.January && date.Month() >= startMonth {
		return date.Year() + 1
	}
	return date.Year()
}

// Label returns the display label for a financial year: "FY2026".
func Label(fy int) string {
	return fmt.Sprintf("FY%04d", fy)
}

// ParseLabel parses "FY2026" (case-insensitive) into 2026.
func ParseLabel(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "FY") {
		return 0, fmt.Errorf("invalid financial year label: %q", s)
	}
	fy, err := strconv.Atoi(s[2:])
	if err != nil || fy < 1 {
		return 0, fmt.Errorf("invalid financial year label: %q", s)
	}
	return fy, nil
}

// Bounds returns the first and last day of financial year fy.
func Bounds(fy int, startMonth time.Month) (first, last time.Time) {
	year := fy
	if startMonth > time.January {
		year--
	}
	first = time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(1, 0, -1)
	return first, last
}

// ParseYearStart parses a "MM-DD" year start. Financial years must begin on
// the first of a month.
func ParseYearStart(s string) (time.Month, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid year start %q: want MM-DD", s)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month in year start %q", s)
	}

	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid day in year start %q: %w", s, err)
	}
	if day != 1 {
		return 0, fmt.Errorf("year start %q must fall on the first of a month", s)
	}

	return time.Month(month), nil
}
