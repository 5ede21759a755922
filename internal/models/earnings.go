package model

// Earning enregistrement de gain journalier d'un membre.
// Tous les montants sont en kopecks (unités mineures) : les sommes restent exactes,
// contrairement à une accumulation en virgule flottante.
type Earning struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Date       string `json:"date"` // jour ISO "2006-01-02", comparable lexicographiquement
	Amount     int64  `json:"amount"`
	PoolAmount int64  `json:"poolAmount"`
	DateFields
}

type CreateEarningRequest struct {
	UserID     string `json:"userId"`
	Date       string `json:"date"`
	Amount     int64  `json:"amount"`
	PoolAmount int64  `json:"poolAmount"`
}

// UpdateEarningRequest mise à jour partielle ; un champ nil n'est pas modifié
type UpdateEarningRequest struct {
	Amount     *int64 `json:"amount"`
	PoolAmount *int64 `json:"poolAmount"`
}

// EarningsStats totaux d'un membre sur une période
type EarningsStats struct {
	TotalEarnings int64 `json:"totalEarnings"`
	TotalPool     int64 `json:"totalPool"`
	Count         int   `json:"count"`
}

// MemberStatsRow ligne du tableau de statistiques
type MemberStatsRow struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	EarningsStats
}

// PeriodStats tableau par membre plus le total de l'équipe pour une période
type PeriodStats struct {
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	Members   []MemberStatsRow `json:"members"`
	Team      EarningsStats    `json:"team"`
}

// EarningsStatsResponse statistiques de la semaine et du mois courants
type EarningsStatsResponse struct {
	Week  PeriodStats `json:"week"`
	Month PeriodStats `json:"month"`
}
