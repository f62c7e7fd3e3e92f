package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_ParseAndCompare(t *testing.T) {
	a, err := domain.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", a.String())
	assert.Equal(t, domain.NewDate(2024, time.February, 29), a)
	assert.True(t, a.Before(a.AddDays(1)))
	assert.Equal(t, "2024-03-01", a.AddDays(1).String())
	assert.Equal(t, 0, a.Compare(domain.DateOf(time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC))))

	_, err = domain.ParseDate("2023-02-29")
	assert.Error(t, err)
	_, err = domain.ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestDate_IsAMapKey(t *testing.T) {
	m := map[domain.Date]int{}
	m[domain.NewDate(2025, time.January, 1)]++
	m[domain.DateOf(time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC))]++
	assert.Len(t, m, 1)
}

func TestDate_JSON(t *testing.T) {
	raw, err := json.Marshal(domain.NewDate(2025, time.July, 4))
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-07-04"`, string(raw))

	var back domain.Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, domain.NewDate(2025, time.July, 4), back)
}

func TestDaysInMonthAndMonthDiff(t *testing.T) {
	assert.Equal(t, 28, domain.DaysInMonth(2025, time.February))
	assert.Equal(t, 29, domain.DaysInMonth(2024, time.February))
	assert.Equal(t, 29, domain.DaysInMonth(2000, time.February))
	assert.Equal(t, 28, domain.DaysInMonth(1900, time.February))
	assert.Equal(t, 31, domain.DaysInMonth(2025, time.December))

	assert.Equal(t, 13, domain.MonthDiff(domain.NewDate(2025, time.February, 1), domain.NewDate(2024, time.January, 31)))
	assert.Equal(t, -1, domain.MonthDiff(domain.NewDate(2024, time.December, 31), domain.NewDate(2025, time.January, 1)))
}

func TestYearMonth(t *testing.T) {
	ym, err := domain.NewYearMonth(2024, 12)
	require.NoError(t, err)
	assert.Equal(t, "2024-12", ym.String())
	assert.Equal(t, "2025-01", ym.Next().String())
	assert.Equal(t, "2024-11", ym.Prev().String())
	assert.Equal(t, "2024-12-01", ym.FirstDay().String())
	assert.Equal(t, "2024-12-31", ym.LastDay().String())
	assert.True(t, ym.Contains(domain.NewDate(2024, time.December, 15)))
	assert.False(t, ym.Contains(domain.NewDate(2025, time.December, 15)))
	assert.True(t, ym.Before(ym.Next()))
	assert.Equal(t, ym.Index()+1, ym.Next().Index())

	jan, err := domain.ParseYearMonth("2020-01")
	require.NoError(t, err)
	assert.Equal(t, domain.YearMonth{Year: 2020, Month: time.January}, jan)
	assert.Equal(t, "2019-12", jan.Prev().String())

	_, err = domain.NewYearMonth(2024, 13)
	assert.Error(t, err)
	_, err = domain.NewYearMonth(2024, 0)
	assert.Error(t, err)
	_, err = domain.NewYearMonth(0, 1)
	assert.Error(t, err)
	_, err = domain.ParseYearMonth("2020-1-01")
	assert.Error(t, err)
}
