// Package stats agrège les gains en mémoire : filtre par membre et par période,
// puis réduction en totaux. Les dates ISO zéro-paddées se comparent comme des chaînes.
package stats

import (
	model "github.com/artyomlancov333-art/apevaultteam/internal/models"
)

// ComputeStats calcule les totaux d'un membre sur [startDate, endDate] inclus.
// Les enregistrements des autres membres ou hors période sont ignorés.
func ComputeStats(userID, startDate, endDate string, earnings []model.Earning) model.EarningsStats {
	var s model.EarningsStats
	for _, e := range earnings {
		if e.UserID != userID {
			continue
		}
		if e.Date < startDate || e.Date > endDate {
			continue
		}
		s.TotalEarnings += e.Amount
		s.TotalPool += e.PoolAmount
		s.Count++
	}
	return s
}

// BuildPeriodStats construit le tableau d'une période : une ligne par membre
// plus le total de l'équipe (somme des lignes, composition linéaire).
func BuildPeriodStats(members []model.TeamMember, startDate, endDate string, earnings []model.Earning) model.PeriodStats {
	ps := model.PeriodStats{
		StartDate: startDate,
		EndDate:   endDate,
		Members:   make([]model.MemberStatsRow, 0, len(members)),
	}

	for _, m := range members {
		s := ComputeStats(m.ID, startDate, endDate, earnings)
		ps.Members = append(ps.Members, model.MemberStatsRow{
			UserID:        m.ID,
			Name:          m.Name,
			EarningsStats: s,
		})
		ps.Team.TotalEarnings += s.TotalEarnings
		ps.Team.TotalPool += s.TotalPool
		ps.Team.Count += s.Count
	}

	return ps
}
