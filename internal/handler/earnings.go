package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/artyomlancov333-art/apevaultteam/internal/authz"
	"github.com/artyomlancov333-art/apevaultteam/internal/config"
	"github.com/artyomlancov333-art/apevaultteam/internal/database"
	"github.com/artyomlancov333-art/apevaultteam/internal/dateutil"
	"github.com/artyomlancov333-art/apevaultteam/internal/middleware"
	model "github.com/artyomlancov333-art/apevaultteam/internal/models"
	"github.com/artyomlancov333-art/apevaultteam/internal/scanner"
	"github.com/artyomlancov333-art/apevaultteam/internal/stats"
	"github.com/artyomlancov333-art/apevaultteam/internal/utils"
	"github.com/gorilla/mux"
)

const earningColumns = `id, user_id, date, amount, pool_amount, created_at, updated_at, created_by, updated_by`

// GetEarnings récupère les gains, filtrés par membre et/ou par période.
// Les bornes startDate/endDate vont ensemble : une seule des deux est une erreur.
// Résultats triés par date décroissante.
func GetEarnings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := query.Get("userId")
	startDate := query.Get("startDate")
	endDate := query.Get("endDate")

	if (startDate == "") != (endDate == "") {
		utils.ErrorSimple(w, http.StatusBadRequest, "startDate et endDate doivent être fournis ensemble")
		return
	}
	if startDate != "" && (!dateutil.ValidDay(startDate) || !dateutil.ValidDay(endDate)) {
		utils.ErrorSimple(w, http.StatusBadRequest, "dates invalides, format attendu YYYY-MM-DD")
		return
	}

	ctx := context.Background()

	sqlQuery := `SELECT ` + earningColumns + ` FROM earnings WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if userID != "" {
		sqlQuery += " AND user_id = $" + strconv.Itoa(argCount)
		args = append(args, userID)
		argCount++
	}

	if startDate != "" {
		sqlQuery += " AND date >= $" + strconv.Itoa(argCount)
		args = append(args, startDate)
		argCount++
		sqlQuery += " AND date <= $" + strconv.Itoa(argCount)
		args = append(args, endDate)
		argCount++
	}

	sqlQuery += " ORDER BY date DESC"

	rows, err := database.DB.Query(ctx, sqlQuery, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de récupérer les gains", err)
		return
	}
	defer rows.Close()

	earnings := []model.Earning{}
	for rows.Next() {
		e, err := scanner.ScanEarning(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "erreur de lecture", err)
			return
		}
		earnings = append(earnings, *e)
	}

	utils.Success(w, earnings)
}

// CreateEarning enregistre un gain journalier
func CreateEarning(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEarningRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	if req.UserID == "" || req.Date == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "userId et date requis")
		return
	}
	if !dateutil.ValidDay(req.Date) {
		utils.ErrorSimple(w, http.StatusBadRequest, "date invalide, format attendu YYYY-MM-DD")
		return
	}
	if req.Amount < 0 || req.PoolAmount < 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "les montants ne peuvent pas être négatifs")
		return
	}

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentification requise", err)
		return
	}

	ctx := context.Background()

	row := database.DB.QueryRow(ctx, `
		INSERT INTO earnings(user_id, date, amount, pool_amount, created_at, updated_at, created_by)
		VALUES($1, $2, $3, $4, NOW(), NOW(), $5)
		RETURNING `+earningColumns,
		req.UserID, req.Date, req.Amount, req.PoolAmount, user.ID,
	)

	earning, err := scanner.ScanEarning(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible d'enregistrer le gain", err)
		return
	}

	utils.Success(w, earning)
}

// UpdateEarning modifie les montants d'un gain.
// Un non-admin ne peut pas s'écarter de plus de 500 roubles des valeurs d'origine ;
// le refus est décidé ici, avant tout appel au stockage.
func UpdateEarning(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var req model.UpdateEarningRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentification requise", err)
		return
	}

	ctx := context.Background()

	// Charger l'enregistrement d'origine pour vérifier l'écart
	row := database.DB.QueryRow(ctx,
		`SELECT `+earningColumns+` FROM earnings WHERE id=$1`, id)
	original, err := scanner.ScanEarning(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "gain introuvable")
		return
	}

	newAmount := original.Amount
	if req.Amount != nil {
		newAmount = *req.Amount
	}
	newPool := original.PoolAmount
	if req.PoolAmount != nil {
		newPool = *req.PoolAmount
	}

	if newAmount < 0 || newPool < 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "les montants ne peuvent pas être négatifs")
		return
	}

	if !authz.CanEditAmounts(user.IsAdmin, original.Amount, original.PoolAmount, newAmount, newPool) {
		utils.ErrorSimple(w, http.StatusForbidden,
			"modification limitée à un écart de 500 roubles ; contactez un administrateur pour plus")
		return
	}

	row = database.DB.QueryRow(ctx, `
		UPDATE earnings SET amount=$1, pool_amount=$2, updated_at=NOW(), updated_by=$3
		WHERE id=$4
		RETURNING `+earningColumns,
		newAmount, newPool, user.ID, id,
	)

	earning, err := scanner.ScanEarning(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de mettre à jour le gain", err)
		return
	}

	utils.Success(w, earning)
}

// DeleteEarning supprime un gain. Seul un administrateur ou le propriétaire
// de l'enregistrement peut le faire ; un refus n'émet aucun appel au stockage.
func DeleteEarning(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentification requise", err)
		return
	}

	ctx := context.Background()

	var ownerID string
	if err := database.DB.QueryRow(ctx,
		`SELECT user_id FROM earnings WHERE id=$1`, id,
	).Scan(&ownerID); err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "gain introuvable")
		return
	}

	if !authz.CanDelete(user.IsAdmin, user.ID, ownerID) {
		utils.ErrorSimple(w, http.StatusForbidden, "seul un administrateur peut supprimer les enregistrements des autres")
		return
	}

	res, err := database.DB.Exec(ctx, `DELETE FROM earnings WHERE id=$1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de supprimer le gain", err)
		return
	}

	if res.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "gain introuvable")
		return
	}

	utils.Success(w, map[string]bool{"deleted": true})
}

// GetEarningsStats construit le tableau de statistiques du dashboard :
// une ligne par membre plus le total de l'équipe, pour la semaine courante
// (lundi-dimanche, heure de Moscou) et le mois calendaire courant.
func GetEarningsStats(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "configuration invalide", err)
		return
	}

	ctx := context.Background()

	rows, err := database.DB.Query(ctx,
		`SELECT `+earningColumns+` FROM earnings ORDER BY date DESC`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de récupérer les gains", err)
		return
	}
	defer rows.Close()

	var earnings []model.Earning
	for rows.Next() {
		e, err := scanner.ScanEarning(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "erreur de lecture", err)
			return
		}
		earnings = append(earnings, *e)
	}

	now := dateutil.MoscowNow()
	weekStart, weekEnd := dateutil.WeekRange(now)
	monthStart, monthEnd := dateutil.MonthRange(now)

	resp := model.EarningsStatsResponse{
		Week:  stats.BuildPeriodStats(cfg.TeamMembers, weekStart, weekEnd, earnings),
		Month: stats.BuildPeriodStats(cfg.TeamMembers, monthStart, monthEnd, earnings),
	}

	utils.Success(w, resp)
}
