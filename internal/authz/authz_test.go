package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanEditAmountsWithinRange(t *testing.T) {
	// 1000 RUB -> 1400 RUB : écart de 400 RUB, accepté pour un non-admin
	ok := CanEditAmounts(false, 100000, 20000, 140000, 20000)
	assert.True(t, ok)
}

func TestCanEditAmountsExceedsRange(t *testing.T) {
	// 1000 RUB -> 1600 RUB : écart de 600 RUB, refusé pour un non-admin
	ok := CanEditAmounts(false, 100000, 20000, 160000, 20000)
	assert.False(t, ok)
}

func TestCanEditAmountsPoolExceedsRange(t *testing.T) {
	// Le montant passe mais le pool dépasse l'écart autorisé
	ok := CanEditAmounts(false, 100000, 20000, 100000, 80000)
	assert.False(t, ok)
}

func TestCanEditAmountsExactlyAtLimit(t *testing.T) {
	ok := CanEditAmounts(false, 100000, 0, 100000+MaxEditDelta, 0)
	assert.True(t, ok)

	ok = CanEditAmounts(false, 100000, 0, 100000+MaxEditDelta+1, 0)
	assert.False(t, ok)
}

func TestCanEditAmountsNegativeDelta(t *testing.T) {
	// L'écart est absolu : une baisse trop forte est refusée aussi
	ok := CanEditAmounts(false, 160000, 0, 100000, 0)
	assert.False(t, ok)
}

func TestCanEditAmountsAdminBypass(t *testing.T) {
	ok := CanEditAmounts(true, 100000, 20000, 10000000, 5000000)
	assert.True(t, ok)
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name    string
		isAdmin bool
		actorID string
		ownerID string
		want    bool
	}{
		{"admin supprime n'importe quoi", true, "admin1", "u2", true},
		{"propriétaire supprime sa ligne", false, "u1", "u1", true},
		{"non-admin non-propriétaire refusé", false, "u1", "u2", false},
		{"acteur vide refusé", false, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDelete(tt.isAdmin, tt.actorID, tt.ownerID))
		})
	}
}
