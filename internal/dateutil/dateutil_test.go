package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekRangeMondayStart(t *testing.T) {
	// Mercredi 5 mars 2025
	wed := time.Date(2025, 3, 5, 12, 0, 0, 0, moscow)
	start, end := WeekRange(wed)
	assert.Equal(t, "2025-03-03", start)
	assert.Equal(t, "2025-03-09", end)
}

func TestWeekRangeOnMonday(t *testing.T) {
	mon := time.Date(2025, 3, 3, 0, 30, 0, 0, moscow)
	start, end := WeekRange(mon)
	assert.Equal(t, "2025-03-03", start)
	assert.Equal(t, "2025-03-09", end)
}

func TestWeekRangeOnSunday(t *testing.T) {
	// Dimanche appartient à la semaine commencée le lundi précédent
	sun := time.Date(2025, 3, 9, 23, 59, 0, 0, moscow)
	start, end := WeekRange(sun)
	assert.Equal(t, "2025-03-03", start)
	assert.Equal(t, "2025-03-09", end)
}

func TestWeekRangeCrossesMonthBoundary(t *testing.T) {
	// Samedi 1er mars 2025 : la semaine a commencé le lundi 24 février
	sat := time.Date(2025, 3, 1, 10, 0, 0, 0, moscow)
	start, end := WeekRange(sat)
	assert.Equal(t, "2025-02-24", start)
	assert.Equal(t, "2025-03-02", end)
}

func TestMonthRange(t *testing.T) {
	d := time.Date(2025, 3, 15, 10, 0, 0, 0, moscow)
	start, end := MonthRange(d)
	assert.Equal(t, "2025-03-01", start)
	assert.Equal(t, "2025-03-31", end)
}

func TestMonthRangeFebruaryLeapYear(t *testing.T) {
	d := time.Date(2024, 2, 10, 10, 0, 0, 0, moscow)
	start, end := MonthRange(d)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestValidDay(t *testing.T) {
	assert.True(t, ValidDay("2025-03-05"))
	assert.False(t, ValidDay("2025-3-5")) // non zéro-paddé : comparaison de chaînes invalide
	assert.False(t, ValidDay("05-03-2025"))
	assert.False(t, ValidDay(""))
	assert.False(t, ValidDay("2025-13-01"))
}

func TestFormatDayLexicographicOrder(t *testing.T) {
	// La comparaison de chaînes doit suivre l'ordre chronologique
	a := FormatDay(time.Date(2025, 9, 30, 0, 0, 0, 0, moscow))
	b := FormatDay(time.Date(2025, 10, 1, 0, 0, 0, 0, moscow))
	assert.Less(t, a, b)
}
