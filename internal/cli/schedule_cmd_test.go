package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostrella/clockwise/internal/domain"
)

func TestParseDays_Names(t *testing.T) {
	days, err := parseDays("mon,wed,fri")
	require.NoError(t, err)
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday}, days)
}

func TestParseDays_Numbers(t *testing.T) {
	days, err := parseDays("1, 7")
	require.NoError(t, err)
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Sunday}, days)
}

func TestParseDays_Unknown(t *testing.T) {
	_, err := parseDays("mon,funday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "funday")
}

func TestParseDays_Empty(t *testing.T) {
	_, err := parseDays("")
	require.Error(t, err)
}

func TestValidateClock(t *testing.T) {
	assert.NoError(t, validateClock("09:00"))
	assert.NoError(t, validateClock("5:30 PM"))
	assert.Error(t, validateClock("25:99"))
}

func TestDaysFlag_RoundTrip(t *testing.T) {
	var f daysFlag
	require.NoError(t, f.Set("mon,fri"))
	assert.Equal(t, "Mon,Fri", f.String())
	assert.Equal(t, "days", f.Type())

	assert.Error(t, f.Set("nope"))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "Mon,Tue", formatDays([]domain.Weekday{domain.Monday, domain.Tuesday}))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("123456789abc"))
	assert.Equal(t, "abc", shortID("abc"))
}
