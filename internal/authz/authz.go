// Package authz regroupe les règles d'autorisation des mutations sur les gains.
// Les refus sont décidés localement, avant tout appel au stockage.
package authz

// MaxEditDelta écart maximal autorisé pour une modification non-admin :
// 500 roubles, exprimés en kopecks
const MaxEditDelta int64 = 500 * 100

// CanEditAmounts autorise une modification de montants. Un administrateur passe
// toujours ; sinon chaque écart absolu doit rester dans MaxEditDelta.
func CanEditAmounts(isAdmin bool, originalAmount, originalPool, newAmount, newPool int64) bool {
	if isAdmin {
		return true
	}
	return abs(newAmount-originalAmount) <= MaxEditDelta &&
		abs(newPool-originalPool) <= MaxEditDelta
}

// CanDelete autorise une suppression : administrateur, ou propriétaire de
// l'enregistrement
func CanDelete(isAdmin bool, actorID, ownerID string) bool {
	if isAdmin {
		return true
	}
	return actorID != "" && actorID == ownerID
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
