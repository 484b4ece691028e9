package datekey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTimeNormalizesToUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	ts := time.Date(2024, 3, 9, 22, 30, 0, 0, est)

	assert.Equal(t, Key("2024-03-10"), FromTime(ts))
}

func TestParse(t *testing.T) {
	k, err := Parse("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Key("2024-02-29"), k)

	_, err = Parse("2024-13-01")
	assert.Error(t, err)

	_, err = Parse("yesterday")
	assert.Error(t, err)

	def, err := ParseOr("", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, Key("2024-01-01"), def)
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2024-05-01T23:30:00-02:00")
	require.NoError(t, err)
	assert.Equal(t, Key("2024-05-02"), FromTime(ts))

	ts, err = ParseTimestamp("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), ts)

	_, err = ParseTimestamp("not a time")
	assert.Error(t, err)
}

func TestAddDaysCrossesMonthAndYear(t *testing.T) {
	assert.Equal(t, Key("2024-03-01"), Key("2024-02-29").AddDays(1))
	assert.Equal(t, Key("2023-12-31"), Key("2024-01-01").AddDays(-1))
}

func TestBackwardIsBoundedAndRestartable(t *testing.T) {
	seq := Backward("2024-01-02", 3)

	var first []Key
	for k := range seq {
		first = append(first, k)
	}
	var second []Key
	for k := range seq {
		second = append(second, k)
	}

	assert.Equal(t, []Key{"2024-01-02", "2024-01-01", "2023-12-31"}, first)
	assert.Equal(t, first, second)
}

func TestBackwardStopsEarly(t *testing.T) {
	count := 0
	for range Backward("2024-01-02", 365) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestWindowOldestFirst(t *testing.T) {
	days := Window("2024-01-03", 7)

	require.Len(t, days, 7)
	assert.Equal(t, Key("2023-12-28"), days[0])
	assert.Equal(t, Key("2024-01-03"), days[6])
	assert.Equal(t, "Wed", days[6].Weekday())
}

func TestTodayUsesClock(t *testing.T) {
	clock := FixedClock{T: time.Date(2024, 7, 4, 23, 59, 0, 0, time.UTC)}
	assert.Equal(t, Key("2024-07-04"), Today(clock))
}
