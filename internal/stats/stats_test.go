package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/artyomlancov333-art/apevaultteam/internal/models"
)

func earning(userID, date string, amount, pool int64) model.Earning {
	return model.Earning{UserID: userID, Date: date, Amount: amount, PoolAmount: pool}
}

func TestComputeStatsFiltersUserAndRange(t *testing.T) {
	earnings := []model.Earning{
		earning("u1", "2025-03-03", 100000, 20000),
		earning("u1", "2025-03-05", 50000, 10000),
		earning("u2", "2025-03-04", 70000, 0),       // autre membre
		earning("u1", "2025-03-02", 999900, 100),    // veille du début
		earning("u1", "2025-03-10", 123400, 100),    // lendemain de la fin
	}

	s := ComputeStats("u1", "2025-03-03", "2025-03-09", earnings)

	assert.Equal(t, int64(150000), s.TotalEarnings)
	assert.Equal(t, int64(30000), s.TotalPool)
	assert.Equal(t, 2, s.Count)
}

func TestComputeStatsBoundsInclusive(t *testing.T) {
	earnings := []model.Earning{
		earning("u1", "2025-03-03", 100, 1),
		earning("u1", "2025-03-09", 200, 2),
	}

	s := ComputeStats("u1", "2025-03-03", "2025-03-09", earnings)

	assert.Equal(t, int64(300), s.TotalEarnings)
	assert.Equal(t, int64(3), s.TotalPool)
	assert.Equal(t, 2, s.Count)
}

func TestComputeStatsOrderIndependent(t *testing.T) {
	earnings := []model.Earning{
		earning("u1", "2025-03-03", 100000, 20000),
		earning("u1", "2025-03-04", 35000, 5000),
		earning("u1", "2025-03-05", 1, 0),
		earning("u2", "2025-03-05", 42, 42),
	}

	want := ComputeStats("u1", "2025-03-01", "2025-03-31", earnings)

	for i := 0; i < 10; i++ {
		shuffled := make([]model.Earning, len(earnings))
		copy(shuffled, earnings)
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, ComputeStats("u1", "2025-03-01", "2025-03-31", shuffled))
	}
}

func TestComputeStatsEmptySet(t *testing.T) {
	s := ComputeStats("u1", "2025-03-01", "2025-03-31", nil)
	assert.Zero(t, s.TotalEarnings)
	assert.Zero(t, s.TotalPool)
	assert.Zero(t, s.Count)
}

func TestBuildPeriodStatsTeamTotalComposes(t *testing.T) {
	members := []model.TeamMember{
		{ID: "u1", Name: "Artyom"},
		{ID: "u2", Name: "Dima"},
		{ID: "u3", Name: "Lena"},
	}
	earnings := []model.Earning{
		earning("u1", "2025-03-03", 100000, 20000),
		earning("u2", "2025-03-04", 50000, 10000),
		earning("u2", "2025-03-05", 25000, 0),
		earning("u9", "2025-03-05", 777777, 777), // hors équipe : ignoré
	}

	ps := BuildPeriodStats(members, "2025-03-01", "2025-03-31", earnings)

	require.Len(t, ps.Members, 3)

	var sumEarnings, sumPool int64
	var sumCount int
	for _, row := range ps.Members {
		sumEarnings += row.TotalEarnings
		sumPool += row.TotalPool
		sumCount += row.Count
	}

	assert.Equal(t, sumEarnings, ps.Team.TotalEarnings)
	assert.Equal(t, sumPool, ps.Team.TotalPool)
	assert.Equal(t, sumCount, ps.Team.Count)

	assert.Equal(t, int64(175000), ps.Team.TotalEarnings)
	assert.Equal(t, int64(30000), ps.Team.TotalPool)
	assert.Equal(t, 3, ps.Team.Count)

	// Un membre sans enregistrement garde une ligne à zéro
	assert.Equal(t, "u3", ps.Members[2].UserID)
	assert.Zero(t, ps.Members[2].Count)
}

func TestBuildPeriodStatsKeepsMemberOrder(t *testing.T) {
	members := []model.TeamMember{
		{ID: "b", Name: "B"},
		{ID: "a", Name: "A"},
	}

	ps := BuildPeriodStats(members, "2025-01-01", "2025-01-31", nil)

	require.Len(t, ps.Members, 2)
	assert.Equal(t, "b", ps.Members[0].UserID)
	assert.Equal(t, "a", ps.Members[1].UserID)
}
