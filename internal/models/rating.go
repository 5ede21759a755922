package model

import "time"

// RatingData note composite d'un membre : un seul enregistrement logique par userId.
// Les compteurs absents en base sont normalisés à zéro à la lecture (voir scanner).
type RatingData struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Earnings          int64     `json:"earnings"` // kopecks
	Messages          int       `json:"messages"`
	Initiatives       int       `json:"initiatives"`
	Signals           int       `json:"signals"`
	ProfitableSignals int       `json:"profitableSignals"`
	Referrals         int       `json:"referrals"`
	DaysOff           int       `json:"daysOff"`
	SickDays          int       `json:"sickDays"`
	VacationDays      int       `json:"vacationDays"`
	PoolAmount        int64     `json:"poolAmount"` // kopecks
	Rating            float64   `json:"rating"`     // pourcentage 0..100
	LastUpdated       time.Time `json:"lastUpdated"`
}

// UpdateRatingRequest mise à jour partielle d'une note ; un champ nil est conservé.
// L'upsert crée l'enregistrement s'il n'existe pas encore pour ce membre.
type UpdateRatingRequest struct {
	Earnings          *int64   `json:"earnings"`
	Messages          *int     `json:"messages"`
	Initiatives       *int     `json:"initiatives"`
	Signals           *int     `json:"signals"`
	ProfitableSignals *int     `json:"profitableSignals"`
	Referrals         *int     `json:"referrals"`
	DaysOff           *int     `json:"daysOff"`
	SickDays          *int     `json:"sickDays"`
	VacationDays      *int     `json:"vacationDays"`
	PoolAmount        *int64   `json:"poolAmount"`
	Rating            *float64 `json:"rating"`
}
