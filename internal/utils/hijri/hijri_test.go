package hijri_test

import (
	"testing"
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils/hijri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Reference pairs from a tabular (civil) calendar table.
var anchorPairs = []struct {
	hijri     hijri.Date
	gregorian time.Time
}{
	{hijri.Date{Year: 1442, Month: 1, Day: 1}, date(2020, time.August, 20)},
	{hijri.Date{Year: 1446, Month: 9, Day: 1}, date(2025, time.March, 1)},
	{hijri.Date{Year: 1447, Month: 1, Day: 1}, date(2025, time.June, 27)},
}

func TestToGregorian_Anchors(t *testing.T) {
	for _, pair := range anchorPairs {
		assert.Equal(t, pair.gregorian, hijri.ToGregorian(pair.hijri), "hijri %s", pair.hijri)
	}
}

func TestFromGregorian_Anchors(t *testing.T) {
	for _, pair := range anchorPairs {
		assert.Equal(t, pair.hijri, hijri.FromGregorian(pair.gregorian), "gregorian %s", pair.gregorian)
	}
}

func TestRoundTrip_GregorianRange(t *testing.T) {
	// Every day across several solar years must survive the round trip.
	for d := date(2020, time.January, 1); d.Year() < 2028; d = d.AddDate(0, 0, 1) {
		h := hijri.FromGregorian(d)
		assert.Equal(t, d, hijri.ToGregorian(h), "round trip %s via %s", d, h)
	}
}

func TestRoundTrip_HijriRange(t *testing.T) {
	for year := 1440; year <= 1450; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= hijri.DaysInMonth(year, month); day++ {
				h := hijri.Date{Year: year, Month: month, Day: day}
				assert.Equal(t, h, hijri.FromGregorian(hijri.ToGregorian(h)))
			}
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, hijri.DaysInMonth(1446, 1))
	assert.Equal(t, 29, hijri.DaysInMonth(1446, 2))
	assert.Equal(t, 30, hijri.DaysInMonth(1446, 9))

	// 12th month carries the leap day.
	assert.True(t, hijri.IsLeapYear(1442))
	assert.Equal(t, 30, hijri.DaysInMonth(1442, 12))
	assert.False(t, hijri.IsLeapYear(1443))
	assert.Equal(t, 29, hijri.DaysInMonth(1443, 12))
}

func TestToGregorian_ClampsShortMonths(t *testing.T) {
	// Day 30 in a 29-day month resolves to the last actual day.
	clamped := hijri.ToGregorian(hijri.Date{Year: 1447, Month: 2, Day: 30})
	last := hijri.ToGregorian(hijri.Date{Year: 1447, Month: 2, Day: 29})
	assert.Equal(t, last, clamped)
}

func TestResolveNextAnniversary_CurrentYear(t *testing.T) {
	// 1 Ramadan 1446 is 2025-03-01; a reference a few days later keeps the
	// current year's candidate thanks to the 30-day grace.
	ref := date(2025, time.March, 10)
	got, year, err := hijri.ResolveNextAnniversary(1, 9, ref)
	require.NoError(t, err)
	assert.Equal(t, 1446, year)
	assert.Equal(t, date(2025, time.March, 1), got)
}

func TestResolveNextAnniversary_AdvancesPastGrace(t *testing.T) {
	// 27 Ramadan 1446 is 2025-03-27. A reference 40 days later is past the
	// grace window, so the anniversary advances to 1447.
	ref := date(2025, time.May, 6)
	got, year, err := hijri.ResolveNextAnniversary(27, 9, ref)
	require.NoError(t, err)
	assert.Equal(t, 1447, year)
	assert.True(t, got.After(ref), "advanced anniversary %s must be in the future of %s", got, ref)

	back := hijri.FromGregorian(got)
	assert.Equal(t, 1447, back.Year)
	assert.Equal(t, 9, back.Month)
	assert.Equal(t, 27, back.Day)
}

func TestResolveNextAnniversary_Properties(t *testing.T) {
	refs := []time.Time{
		date(2024, time.January, 15),
		date(2025, time.June, 26),
		date(2025, time.June, 27),
		date(2026, time.December, 31),
	}
	for month := 1; month <= 12; month++ {
		for _, day := range []int{1, 15, 29, 30} {
			for _, ref := range refs {
				got, year, err := hijri.ResolveNextAnniversary(day, month, ref)
				require.NoError(t, err)

				floor := ref.AddDate(0, 0, -30)
				assert.False(t, got.Before(floor), "day=%d month=%d ref=%s got=%s", day, month, ref, got)

				back := hijri.FromGregorian(got)
				assert.Equal(t, year, back.Year)
				assert.Equal(t, month, back.Month)
				assert.LessOrEqual(t, back.Day, day, "clamped day must not exceed the requested day")
			}
		}
	}
}

func TestResolveNextAnniversary_RejectsInvalidInput(t *testing.T) {
	cases := []struct{ day, month int }{
		{0, 9}, {31, 9}, {-3, 9},
		{15, 0}, {15, 13},
	}
	for _, tc := range cases {
		_, _, err := hijri.ResolveNextAnniversary(tc.day, tc.month, date(2025, time.January, 1))
		require.Error(t, err, "day=%d month=%d", tc.day, tc.month)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestResolveNextSolarAnniversary(t *testing.T) {
	anchor := date(2000, time.April, 10)

	got, year := hijri.ResolveNextSolarAnniversary(anchor, date(2025, time.April, 1))
	assert.Equal(t, date(2025, time.April, 10), got)
	assert.Equal(t, hijri.FromGregorian(got).Year, year)

	// More than 30 days past rolls to the next solar year.
	got, _ = hijri.ResolveNextSolarAnniversary(anchor, date(2025, time.June, 1))
	assert.Equal(t, date(2026, time.April, 10), got)
}
