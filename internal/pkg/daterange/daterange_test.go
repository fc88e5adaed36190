package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEnumerate_InclusiveAscendingNoDuplicates(t *testing.T) {
	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"single day", date(2024, 6, 1), date(2024, 6, 1), 1},
		{"five days", date(2024, 6, 1), date(2024, 6, 5), 5},
		{"month boundary", date(2024, 5, 30), date(2024, 6, 2), 4},
		{"leap february", date(2024, 2, 27), date(2024, 3, 1), 4},
		{"year boundary", date(2023, 12, 30), date(2024, 1, 2), 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dates, err := Enumerate(c.from, c.to)
			require.NoError(t, err)
			require.Len(t, dates, c.want)

			assert.True(t, dates[0].Equal(Normalize(c.from)))
			assert.True(t, dates[len(dates)-1].Equal(Normalize(c.to)))
			for i := 1; i < len(dates); i++ {
				assert.True(t, dates[i].After(dates[i-1]), "dates must be strictly ascending")
				assert.Equal(t, 24*time.Hour, dates[i].Sub(dates[i-1]))
			}
		})
	}
}

func TestEnumerate_InvertedRange(t *testing.T) {
	_, err := Enumerate(date(2024, 6, 5), date(2024, 6, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.True(t, IsRangeError(err))
}

func TestEnumerate_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, 6, 3, 0, 1, 0, 0, time.UTC)

	dates, err := Enumerate(from, to)
	require.NoError(t, err)
	assert.Len(t, dates, 3)
}

func TestEnumerateBounded(t *testing.T) {
	from := date(2024, 6, 1)

	// Exactly at the cap succeeds.
	dates, err := EnumerateBounded(from, date(2024, 6, 15), 15)
	require.NoError(t, err)
	assert.Len(t, dates, 15)

	// One day past the cap is rejected, never truncated.
	_, err = EnumerateBounded(from, date(2024, 6, 16), 15)
	assert.ErrorIs(t, err, ErrRangeTooLong)
	assert.True(t, IsRangeError(err))

	// Ordering is still checked first.
	_, err = EnumerateBounded(from, date(2024, 5, 31), 15)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDays(t *testing.T) {
	n, err := Days(date(2024, 6, 1), date(2024, 6, 5))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = Days(date(2024, 6, 1), date(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = Days(date(2024, 6, 2), date(2024, 6, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestParseFormatRoundTrip(t *testing.T) {
	d, err := Parse("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", Format(d))

	_, err = Parse("06/03/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Parse("2024-6-3")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
