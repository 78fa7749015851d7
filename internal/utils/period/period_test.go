package period_test

import (
	"testing"
	"time"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	"github.com/orgledger/orgledger-backend/internal/utils/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

func TestResolveWeek(t *testing.T) {
	// 2024-03-13 is a Wednesday.
	w := period.Resolve(domain.PeriodWeek, date(2024, time.March, 13))

	assert.Equal(t, domain.PeriodWeek, w.Type)
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Monday, w.Start.Weekday())
	assert.Equal(t, time.Sunday, w.End.Weekday())
	assert.Equal(t, 17, w.End.Day())
	assert.Equal(t, 23, w.End.Hour())
	assert.True(t, w.Start.Before(date(2024, time.March, 13)))
	assert.True(t, w.End.After(date(2024, time.March, 13)))
}

func TestResolveWeekSundayReference(t *testing.T) {
	// A Sunday belongs to the week that started the previous Monday.
	w := period.Resolve(domain.PeriodWeek, date(2024, time.March, 17))

	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, 17, w.End.Day())
}

func TestResolveMonth(t *testing.T) {
	w := period.Resolve(domain.PeriodMonth, date(2024, time.January, 15))

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.January, w.End.Month())
	assert.Equal(t, 31, w.End.Day())
	assert.Equal(t, 23, w.End.Hour())
}

func TestResolveMonthFebruaryLeapYear(t *testing.T) {
	w := period.Resolve(domain.PeriodMonth, date(2024, time.February, 10))

	assert.Equal(t, 29, w.End.Day())
}

func TestResolveYear(t *testing.T) {
	w := period.Resolve(domain.PeriodYear, date(2023, time.July, 4))

	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.December, w.End.Month())
	assert.Equal(t, 31, w.End.Day())
	assert.Equal(t, 2023, w.End.Year())
}

func TestResolveUnknownKindFallsBackToMonth(t *testing.T) {
	ref := date(2024, time.May, 20)
	unknown := period.Resolve(domain.PeriodType("quarter"), ref)
	month := period.Resolve(domain.PeriodMonth, ref)

	require.Equal(t, month.Start, unknown.Start)
	require.Equal(t, month.End, unknown.End)
	assert.Equal(t, domain.PeriodMonth, unknown.Type)
}

func TestResolveIsDeterministic(t *testing.T) {
	ref := date(2024, time.March, 13)
	first := period.Resolve(domain.PeriodWeek, ref)
	second := period.Resolve(domain.PeriodWeek, ref)

	assert.Equal(t, first, second)
}

func TestResolvePreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	w := period.Resolve(domain.PeriodMonth, time.Date(2024, time.June, 15, 8, 0, 0, 0, loc))

	assert.Equal(t, loc, w.Start.Location())
	assert.Equal(t, loc, w.End.Location())
}
