package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDuration_SameDay(t *testing.T) {
	start := NewTimeOfDay(9, 0)
	end := AddDuration(start, NewDuration(1, 30))
	assert.Equal(t, "10:30", end.String())
}

func TestAddDuration_WrapsPastMidnight(t *testing.T) {
	start := NewTimeOfDay(23, 30)
	end := AddDuration(start, NewDuration(1, 0))
	assert.Equal(t, "00:30", end.String())
	assert.True(t, end < start, "wrapped end must read as earlier than start")
	assert.True(t, WrapsMidnight(start, NewDuration(1, 0)))
	assert.False(t, WrapsMidnight(NewTimeOfDay(9, 0), NewDuration(1, 0)))
}

func TestSubtractTimes_SameDay(t *testing.T) {
	d := SubtractTimes(NewTimeOfDay(10, 30), NewTimeOfDay(9, 0))
	assert.Equal(t, "01:30", d.String())
}

func TestSubtractTimes_MidnightCrossingNeverNegative(t *testing.T) {
	d := SubtractTimes(NewTimeOfDay(0, 30), NewTimeOfDay(23, 30))
	assert.Equal(t, "01:00", d.String())
	assert.GreaterOrEqual(t, int(d), 0)
}

func TestSubtractTimes_EqualTimesIsZero(t *testing.T) {
	d := SubtractTimes(NewTimeOfDay(9, 0), NewTimeOfDay(9, 0))
	assert.Equal(t, Duration(0), d)
}

func TestParseTimeOfDay_Normalizes(t *testing.T) {
	got, err := ParseTimeOfDay("9:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", got.String())

	// Excess minutes carry into hours.
	got, err = ParseTimeOfDay("09:75")
	require.NoError(t, err)
	assert.Equal(t, "10:15", got.String())

	// Hours wrap modulo 24.
	got, err = ParseTimeOfDay("24:10")
	require.NoError(t, err)
	assert.Equal(t, "00:10", got.String())

	got, err = ParseTimeOfDay(" 23:59 ")
	require.NoError(t, err)
	assert.Equal(t, "23:59", got.String())
}

func TestParseTimeOfDay_Rejected(t *testing.T) {
	_, err := ParseTimeOfDay("soonish")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("10")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("aa:bb")
	assert.Error(t, err)
}

func TestParseDuration_MalformedMinutesCarried(t *testing.T) {
	// "01:90" is invalid input but must be normalized, not rejected.
	d, err := ParseDuration("01:90")
	require.NoError(t, err)
	assert.Equal(t, "02:30", d.String())
}

func TestParseDuration_BareMinutes(t *testing.T) {
	d, err := ParseDuration("90")
	require.NoError(t, err)
	assert.Equal(t, "01:30", d.String())
}

func TestParseDuration_LongerThanADay(t *testing.T) {
	d, err := ParseDuration("26:15")
	require.NoError(t, err)
	assert.Equal(t, "26:15", d.String())

	// Additions still land on the 24-hour clock.
	end := AddDuration(NewTimeOfDay(9, 0), d)
	assert.Equal(t, "11:15", end.String())
}

func TestParseDuration_NegativeClampsToZero(t *testing.T) {
	d, err := ParseDuration("-30")
	require.NoError(t, err)
	assert.Equal(t, Duration(0), d)
}
