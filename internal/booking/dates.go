package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const dateLayout = "02/01/2006"

var (
	ErrDateFormat      = errors.New("date must be DD/MM/YYYY")
	ErrDateNotCalendar = errors.New("date does not exist on the calendar")
	ErrDateInPast      = errors.New("date is in the past")
	ErrDateTooFar      = errors.New("date is beyond the booking window")
)

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// FormatDateInput normalizes raw typed input into DD/MM/YYYY form:
// non-digits are stripped, separators re-inserted, anything past
// eight digits dropped.
func FormatDateInput(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() >= 8 {
			break
		}
	}

	digits := b.String()
	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 4:
		return digits[:2] + "/" + digits[2:]
	default:
		return digits[:2] + "/" + digits[2:4] + "/" + digits[4:]
	}
}

// ValidateDate accepts a formatted date only if it is a real calendar
// date inside [today, today + windowMonths]. Inputs the calendar would
// normalise away, like 31/02, are rejected rather than rolled over.
func ValidateDate(formatted string, today time.Time, windowMonths int) error {
	if !datePattern.MatchString(formatted) {
		return ErrDateFormat
	}

	d, err := time.Parse(dateLayout, formatted)
	if err != nil {
		return ErrDateNotCalendar
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(day) {
		return ErrDateInPast
	}
	if d.After(day.AddDate(0, windowMonths, 0)) {
		return ErrDateTooFar
	}

	return nil
}

// DateValid is the boolean convenience form of ValidateDate.
func DateValid(formatted string, today time.Time, windowMonths int) bool {
	return ValidateDate(formatted, today, windowMonths) == nil
}
