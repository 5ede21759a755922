package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/artyomlancov333-art/apevaultteam/internal/database"
	"github.com/artyomlancov333-art/apevaultteam/internal/dateutil"
	"github.com/artyomlancov333-art/apevaultteam/internal/middleware"
	model "github.com/artyomlancov333-art/apevaultteam/internal/models"
	"github.com/artyomlancov333-art/apevaultteam/internal/scanner"
	"github.com/artyomlancov333-art/apevaultteam/internal/utils"
	"github.com/gorilla/mux"
)

const dayStatusColumns = `id, user_id, date, status, comment, created_at, updated_at, created_by, updated_by`

// GetDayStatuses récupère les statuts de journée, filtrés par membre et/ou par jour.
// Résultats triés par date croissante.
func GetDayStatuses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := query.Get("userId")
	date := query.Get("date")

	ctx := context.Background()

	sqlQuery := `SELECT ` + dayStatusColumns + ` FROM day_statuses WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if userID != "" {
		sqlQuery += " AND user_id = $" + strconv.Itoa(argCount)
		args = append(args, userID)
		argCount++
	}

	if date != "" {
		sqlQuery += " AND date = $" + strconv.Itoa(argCount)
		args = append(args, date)
		argCount++
	}

	sqlQuery += " ORDER BY date ASC"

	rows, err := database.DB.Query(ctx, sqlQuery, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de récupérer les statuts", err)
		return
	}
	defer rows.Close()

	statuses := []model.DayStatus{}
	for rows.Next() {
		ds, err := scanner.ScanDayStatus(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "erreur de lecture", err)
			return
		}
		statuses = append(statuses, *ds)
	}

	utils.Success(w, statuses)
}

// CreateDayStatus enregistre le statut d'une journée
func CreateDayStatus(w http.ResponseWriter, r *http.Request) {
	var req model.CreateDayStatusRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	if req.UserID == "" || req.Date == "" || req.Status == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "userId, date et status requis")
		return
	}
	if !dateutil.ValidDay(req.Date) {
		utils.ErrorSimple(w, http.StatusBadRequest, "date invalide, format attendu YYYY-MM-DD")
		return
	}
	if !model.ValidDayStatus(req.Status) {
		utils.ErrorSimple(w, http.StatusBadRequest, "status inconnu")
		return
	}

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentification requise", err)
		return
	}

	ctx := context.Background()

	row := database.DB.QueryRow(ctx, `
		INSERT INTO day_statuses(user_id, date, status, comment, created_at, updated_at, created_by)
		VALUES($1, $2, $3, $4, NOW(), NOW(), $5)
		RETURNING `+dayStatusColumns,
		req.UserID, req.Date, req.Status, req.Comment, user.ID,
	)

	status, err := scanner.ScanDayStatus(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible d'enregistrer le statut", err)
		return
	}

	utils.Success(w, status)
}

// UpdateDayStatus met à jour un statut de journée (propriétaire ou administrateur)
func UpdateDayStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var req model.UpdateDayStatusRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	if req.Status != nil && !model.ValidDayStatus(*req.Status) {
		utils.ErrorSimple(w, http.StatusBadRequest, "status inconnu")
		return
	}

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentification requise", err)
		return
	}

	ctx := context.Background()

	var ownerID string
	if err := database.DB.QueryRow(ctx,
		`SELECT user_id FROM day_statuses WHERE id=$1`, id,
	).Scan(&ownerID); err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "statut introuvable")
		return
	}

	if !middleware.IsOwnerOrAdmin(r, ownerID) {
		utils.ErrorSimple(w, http.StatusForbidden, "vous ne pouvez modifier que vos propres statuts")
		return
	}

	sqlQuery := "UPDATE day_statuses SET updated_at = NOW()"
	args := []interface{}{}
	argCount := 1

	if req.Status != nil {
		sqlQuery += ", status = $" + strconv.Itoa(argCount)
		args = append(args, *req.Status)
		argCount++
	}
	if req.Comment != nil {
		sqlQuery += ", comment = $" + strconv.Itoa(argCount)
		args = append(args, *req.Comment)
		argCount++
	}

	sqlQuery += ", updated_by = $" + strconv.Itoa(argCount)
	args = append(args, user.ID)
	argCount++

	sqlQuery += " WHERE id = $" + strconv.Itoa(argCount)
	args = append(args, id)
	sqlQuery += " RETURNING " + dayStatusColumns

	row := database.DB.QueryRow(ctx, sqlQuery, args...)
	status, err := scanner.ScanDayStatus(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de mettre à jour le statut", err)
		return
	}

	utils.Success(w, status)
}

// DeleteDayStatus supprime un statut de journée (propriétaire ou administrateur)
func DeleteDayStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := context.Background()

	var ownerID string
	if err := database.DB.QueryRow(ctx,
		`SELECT user_id FROM day_statuses WHERE id=$1`, id,
	).Scan(&ownerID); err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "statut introuvable")
		return
	}

	if !middleware.IsOwnerOrAdmin(r, ownerID) {
		utils.ErrorSimple(w, http.StatusForbidden, "vous ne pouvez supprimer que vos propres statuts")
		return
	}

	res, err := database.DB.Exec(ctx, `DELETE FROM day_statuses WHERE id=$1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de supprimer le statut", err)
		return
	}

	if res.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "statut introuvable")
		return
	}

	utils.Success(w, map[string]bool{"deleted": true})
}
