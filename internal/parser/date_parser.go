package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses the date formats accepted on the command line
// Supported formats:
// - dd/mm/yyyy (e.g., "16/02/2026")
// - dd.mm.yyyy (e.g., "16.02.2026")
// - "today", "yesterday", "tomorrow"
func ParseDate(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(strings.ToLower(input))

	switch input {
	case "today":
		d := atMidnight(time.Now())
		return &d, nil
	case "yesterday":
		d := atMidnight(time.Now().AddDate(0, 0, -1))
		return &d, nil
	case "tomorrow":
		d := atMidnight(time.Now().AddDate(0, 0, 1))
		return &d, nil
	}

	if date, err := parseDateFormat(input); err == nil {
		return date, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: dd/mm/yyyy, dd.mm.yyyy, today, yesterday or tomorrow")
}

var dateRegex = regexp.MustCompile(`^(\d{1,2})[/.](\d{1,2})[/.](\d{4})$`)

// parseDateFormat parses dd/mm/yyyy and dd.mm.yyyy
func parseDateFormat(input string) (*time.Time, error) {
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2000 and 2100")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &date, nil
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDecimal parses a non-negative decimal amount (hours or money),
// accepting both "2.5" and the Romanian-keyboard "2,5".
func ParseDecimal(input string) (float64, error) {
	input = strings.TrimSpace(strings.ReplaceAll(input, ",", "."))
	if input == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", input)
	}
	if v < 0 {
		return 0, fmt.Errorf("value must be non-negative, got %v", v)
	}
	return v, nil
}
