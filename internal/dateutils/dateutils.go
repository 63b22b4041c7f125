// Package dateutils holds the calendar-date helpers shared by the codecs.
// Every date produced here is a midnight UTC time.Time.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fjacquet/stmtconv/internal/parsererror"
)

const (
	DateLayoutISO      = "2006-01-02"
	DateTimeLayoutISO  = "2006-01-02T15:04:05"
	DateLayoutEuropean = "02.01.2006"
)

// TabularLayouts are tried in order; the first successful match wins.
// Single-digit day and month fields are accepted.
var TabularLayouts = []string{
	"2.1.2006",
	"2006-1-2",
	"2/1/2006",
	"1/2/2006",
}

// Date builds a calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the time of day, keeping the wall-clock date of t.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Ptr returns a pointer to a copy of t.
func Ptr(t time.Time) *time.Time {
	return &t
}

// ExpandYear applies the fixed two-digit year pivot: below 50 is 20xx, otherwise 19xx.
func ExpandYear(yy int) int {
	if yy < 50 {
		return 2000 + yy
	}
	return 1900 + yy
}

// ParseYYMMDD parses a six-digit line-format date.
func ParseYYMMDD(s string) (time.Time, error) {
	if len(s) != 6 {
		return time.Time{}, fmt.Errorf("%w: %q is not YYMMDD", parsererror.ErrInvalidDate, s)
	}
	yy, err1 := twoDigits(s[0:2])
	mm, err2 := twoDigits(s[2:4])
	dd, err3 := twoDigits(s[4:6])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYMMDD", parsererror.ErrInvalidDate, s)
	}
	return civil(ExpandYear(yy), mm, dd, s)
}

// ParseMMDD parses a four-digit month/day using the supplied year.
func ParseMMDD(s string, year int) (time.Time, error) {
	if len(s) != 4 {
		return time.Time{}, fmt.Errorf("%w: %q is not MMDD", parsererror.ErrInvalidDate, s)
	}
	mm, err1 := twoDigits(s[0:2])
	dd, err2 := twoDigits(s[2:4])
	if err1 != nil || err2 != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not MMDD", parsererror.ErrInvalidDate, s)
	}
	return civil(year, mm, dd, s)
}

// FormatYYMMDD renders t as six digits.
func FormatYYMMDD(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", t.Year()%100, int(t.Month()), t.Day())
}

// FormatMMDD renders the month and day of t.
func FormatMMDD(t time.Time) string {
	return fmt.Sprintf("%02d%02d", int(t.Month()), t.Day())
}

// ParseISODate parses YYYY-MM-DD.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", parsererror.ErrInvalidDate, s)
	}
	return t, nil
}

// ParseISODateTime parses an ISO date-time and keeps only its date. The plain
// YYYY-MM-DDTHH:MM:SS form is tried first, then forms carrying fractions or
// an offset; the date is taken as written, not shifted to UTC.
func ParseISODateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateTimeLayoutISO, time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Truncate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", parsererror.ErrInvalidDate, s)
}

// FormatISODateTime renders the date at midnight, YYYY-MM-DDT00:00:00.
func FormatISODateTime(t time.Time) string {
	return t.Format(DateLayoutISO) + "T00:00:00"
}

// ParseFirstMatch tries each layout in order and returns the first match with
// the layout that matched.
func ParseFirstMatch(s string, layouts []string) (time.Time, string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("%w: %q", parsererror.ErrInvalidDate, s)
}

func twoDigits(s string) (int, error) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, fmt.Errorf("not two digits: %q", s)
	}
	return strconv.Atoi(s)
}

// civil rejects dates time.Date would silently normalize, e.g. Feb 30.
func civil(year, month, day int, raw string) (time.Time, error) {
	t := Date(year, time.Month(month), day)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", parsererror.ErrInvalidDate, raw)
	}
	return t, nil
}
