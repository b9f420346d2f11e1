// Package hijri implements tabular (civil) Islamic calendar arithmetic.
//
// The tabular calendar alternates 30- and 29-day months and inserts a leap
// day into the 12th month on 11 years of a 30-year cycle. It tracks the
// observational Umm al-Qura calendar to within a day, which is sufficient
// for resolving recurring anniversaries; conversions are deterministic and
// round-trip exactly.
package hijri

import (
	"fmt"
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
)

// epochJDN is the Julian day number of 1 Muharram 1 AH (16 July 622 CE,
// civil epoch).
const epochJDN = 1948440

// Date is a Hijri calendar date.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-30
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d AH", d.Year, d.Month, d.Day)
}

// IsLeapYear reports whether the given Hijri year has a 30-day 12th month.
func IsLeapYear(year int) bool {
	return mod(11*year+14, 30) < 11
}

// DaysInMonth returns the number of days in the given Hijri month (29 or 30).
func DaysInMonth(year, month int) int {
	if month%2 == 1 {
		return 30
	}
	if month == 12 && IsLeapYear(year) {
		return 30
	}
	return 29
}

// Validate checks that the day/month pair can occur in some Hijri month.
// Day 30 is accepted for every month; callers clamp it to 29-day months.
func Validate(day, month int) error {
	if month < 1 || month > 12 {
		return apperrors.NewValidationError(fmt.Sprintf("hijri month must be between 1 and 12, got %d", month))
	}
	if day < 1 || day > 30 {
		return apperrors.NewValidationError(fmt.Sprintf("hijri day must be between 1 and 30, got %d", day))
	}
	return nil
}

// ToGregorian converts a Hijri date to the corresponding Gregorian date at
// UTC midnight. The day is clamped to the length of the target month.
func ToGregorian(d Date) time.Time {
	day := d.Day
	if max := DaysInMonth(d.Year, d.Month); day > max {
		day = max
	}
	return jdnToGregorian(hijriToJDN(d.Year, d.Month, day))
}

// FromGregorian converts a Gregorian date to its Hijri equivalent.
// The time-of-day component is ignored.
func FromGregorian(t time.Time) Date {
	jdn := gregorianToJDN(t.Year(), int(t.Month()), t.Day())
	return jdnToHijri(jdn)
}

// ResolveNextAnniversary resolves the next occurrence of a recurring Hijri
// anniversary relative to ref. The candidate in ref's current Hijri year is
// used unless it lies more than 30 days in the past, in which case the
// anniversary advances to the next Hijri year. The day is clamped to the
// length of the candidate month. Returns the solar date at UTC midnight and
// the Hijri year that keys the cycle.
func ResolveNextAnniversary(day, month int, ref time.Time) (time.Time, int, error) {
	if err := Validate(day, month); err != nil {
		return time.Time{}, 0, err
	}

	ref = Midnight(ref)
	year := FromGregorian(ref).Year
	candidate := ToGregorian(Date{Year: year, Month: month, Day: day})

	if candidate.Before(ref.AddDate(0, 0, -30)) {
		year++
		candidate = ToGregorian(Date{Year: year, Month: month, Day: day})
	}
	return candidate, year, nil
}

// ResolveNextSolarAnniversary resolves the next yearly occurrence of a fixed
// solar month/day relative to ref, with the same 30-day grace rule, and
// returns the Hijri year containing the resolved date as the cycle key.
func ResolveNextSolarAnniversary(anchor, ref time.Time) (time.Time, int) {
	ref = Midnight(ref)
	candidate := time.Date(ref.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(ref.AddDate(0, 0, -30)) {
		candidate = time.Date(ref.Year()+1, anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate, FromGregorian(candidate).Year
}

// Midnight truncates t to a UTC calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// hijriToJDN converts a Hijri date to a Julian day number.
// The inputs must already be within tabular range.
func hijriToJDN(year, month, day int) int {
	monthDays := 29*(month-1) + month/2
	leapDays := (3 + 11*year) / 30
	return day + monthDays + 354*(year-1) + leapDays + epochJDN - 1
}

// jdnToHijri converts a Julian day number to a Hijri date.
func jdnToHijri(jdn int) Date {
	// Initial estimate from the mean year length (10631/30 days),
	// corrected against the tabular year boundaries.
	year := (30*(jdn-epochJDN) + 10646) / 10631
	for hijriToJDN(year, 1, 1) > jdn {
		year--
	}
	for hijriToJDN(year+1, 1, 1) <= jdn {
		year++
	}

	month := 1
	rem := jdn - hijriToJDN(year, 1, 1)
	for month < 12 && rem >= DaysInMonth(year, month) {
		rem -= DaysInMonth(year, month)
		month++
	}
	return Date{Year: year, Month: month, Day: rem + 1}
}

// gregorianToJDN converts a Gregorian calendar date to a Julian day number
// (Fliegel-Van Flandern).
func gregorianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian converts a Julian day number to a Gregorian date at UTC midnight.
func jdnToGregorian(jdn int) time.Time {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	day := e - (153*m+2)/5 + 1
	month := m + 3 - 12*(m/10)
	year := 100*b + d - 4800 + m/10
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
