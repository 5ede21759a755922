// Package dateutil gère les périodes du tableau de bord : jours ISO,
// semaine courante (lundi-dimanche) et mois courant, en heure de Moscou.
package dateutil

import "time"

// DayFormat format des jours ISO, comparable lexicographiquement
const DayFormat = "2006-01-02"

var moscow *time.Location

func init() {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		// Pas de tzdata sur la machine : MSK est fixe (UTC+3, pas d'heure d'été)
		loc = time.FixedZone("MSK", 3*60*60)
	}
	moscow = loc
}

// MoscowNow retourne l'heure courante en heure de Moscou
func MoscowNow() time.Time {
	return time.Now().In(moscow)
}

// FormatDay formate une date en jour ISO YYYY-MM-DD
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// WeekRange retourne les bornes incluses de la semaine contenant t (lundi..dimanche)
func WeekRange(t time.Time) (startDate, endDate string) {
	t = t.In(moscow)
	// time.Weekday place dimanche à 0, on ramène lundi à 0
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return FormatDay(monday), FormatDay(sunday)
}

// MonthRange retourne le premier et le dernier jour du mois contenant t
func MonthRange(t time.Time) (startDate, endDate string) {
	t = t.In(moscow)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, moscow)
	last := first.AddDate(0, 1, -1)
	return FormatDay(first), FormatDay(last)
}

// ValidDay vérifie qu'une chaîne est bien un jour ISO zéro-paddé
func ValidDay(s string) bool {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return false
	}
	return FormatDay(t) == s
}
