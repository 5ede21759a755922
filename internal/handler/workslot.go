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

const workSlotColumns = `id, user_id, date, start_time, end_time, note, created_at, updated_at, created_by, updated_by`

// GetWorkSlots récupère les créneaux, filtrés par membre et/ou par jour exact.
// Résultats triés par date croissante.
func GetWorkSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := query.Get("userId")
	date := query.Get("date")

	ctx := context.Background()

	sqlQuery := `SELECT ` + workSlotColumns + ` FROM work_slots WHERE 1=1`
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
		utils.Error(w, http.StatusInternalServerError, "impossible de récupérer les créneaux", err)
		return
	}
	defer rows.Close()

	slots := []model.WorkSlot{}
	for rows.Next() {
		ws, err := scanner.ScanWorkSlot(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "erreur de lecture", err)
			return
		}
		slots = append(slots, *ws)
	}

	utils.Success(w, slots)
}

// CreateWorkSlot ajoute un créneau de travail
func CreateWorkSlot(w http.ResponseWriter, r *http.Request) {
	var req model.CreateWorkSlotRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	if req.UserID == "" || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "userId, date, startTime et endTime requis")
		return
	}
	if !dateutil.ValidDay(req.Date) {
		utils.ErrorSimple(w, http.StatusBadRequest, "date invalide, format attendu YYYY-MM-DD")
		return
	}

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentification requise", err)
		return
	}

	ctx := context.Background()

	row := database.DB.QueryRow(ctx, `
		INSERT INTO work_slots(user_id, date, start_time, end_time, note, created_at, updated_at, created_by)
		VALUES($1, $2, $3, $4, $5, NOW(), NOW(), $6)
		RETURNING `+workSlotColumns,
		req.UserID, req.Date, req.StartTime, req.EndTime, req.Note, user.ID,
	)

	slot, err := scanner.ScanWorkSlot(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de créer le créneau", err)
		return
	}

	utils.Success(w, slot)
}

// UpdateWorkSlot met à jour un créneau (propriétaire ou administrateur)
func UpdateWorkSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var req model.UpdateWorkSlotRequest
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

	var ownerID string
	if err := database.DB.QueryRow(ctx,
		`SELECT user_id FROM work_slots WHERE id=$1`, id,
	).Scan(&ownerID); err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "créneau introuvable")
		return
	}

	if !middleware.IsOwnerOrAdmin(r, ownerID) {
		utils.ErrorSimple(w, http.StatusForbidden, "vous ne pouvez modifier que vos propres créneaux")
		return
	}

	// Construction dynamique de la requête UPDATE
	sqlQuery := "UPDATE work_slots SET updated_at = NOW()"
	args := []interface{}{}
	argCount := 1

	if req.StartTime != nil {
		sqlQuery += ", start_time = $" + strconv.Itoa(argCount)
		args = append(args, *req.StartTime)
		argCount++
	}
	if req.EndTime != nil {
		sqlQuery += ", end_time = $" + strconv.Itoa(argCount)
		args = append(args, *req.EndTime)
		argCount++
	}
	if req.Note != nil {
		sqlQuery += ", note = $" + strconv.Itoa(argCount)
		args = append(args, *req.Note)
		argCount++
	}

	sqlQuery += ", updated_by = $" + strconv.Itoa(argCount)
	args = append(args, user.ID)
	argCount++

	sqlQuery += " WHERE id = $" + strconv.Itoa(argCount)
	args = append(args, id)
	sqlQuery += " RETURNING " + workSlotColumns

	row := database.DB.QueryRow(ctx, sqlQuery, args...)
	slot, err := scanner.ScanWorkSlot(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de mettre à jour le créneau", err)
		return
	}

	utils.Success(w, slot)
}

// DeleteWorkSlot supprime un créneau (propriétaire ou administrateur)
func DeleteWorkSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := context.Background()

	var ownerID string
	if err := database.DB.QueryRow(ctx,
		`SELECT user_id FROM work_slots WHERE id=$1`, id,
	).Scan(&ownerID); err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "créneau introuvable")
		return
	}

	if !middleware.IsOwnerOrAdmin(r, ownerID) {
		utils.ErrorSimple(w, http.StatusForbidden, "vous ne pouvez supprimer que vos propres créneaux")
		return
	}

	res, err := database.DB.Exec(ctx, `DELETE FROM work_slots WHERE id=$1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de supprimer le créneau", err)
		return
	}

	if res.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "créneau introuvable")
		return
	}

	utils.Success(w, map[string]bool{"deleted": true})
}
