package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/artyomlancov333-art/apevaultteam/internal/database"
	model "github.com/artyomlancov333-art/apevaultteam/internal/models"
	"github.com/artyomlancov333-art/apevaultteam/internal/scanner"
	"github.com/artyomlancov333-art/apevaultteam/internal/utils"
	"github.com/gorilla/mux"
)

const ratingColumns = `id, user_id, earnings, messages, initiatives, signals, profitable_signals, referrals, days_off, sick_days, vacation_days, pool_amount, rating, last_updated`

// GetRatings récupère les notes, éventuellement filtrées par membre.
// Les champs numériques absents sont normalisés à zéro à la lecture.
func GetRatings(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	ctx := context.Background()

	sqlQuery := `SELECT ` + ratingColumns + ` FROM ratings`
	args := []interface{}{}

	if userID != "" {
		sqlQuery += " WHERE user_id = $1"
		args = append(args, userID)
	}

	sqlQuery += " ORDER BY user_id"

	rows, err := database.DB.Query(ctx, sqlQuery, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de récupérer les notes", err)
		return
	}
	defer rows.Close()

	ratings := []model.RatingData{}
	for rows.Next() {
		rd, err := scanner.ScanRating(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "erreur de lecture", err)
			return
		}
		ratings = append(ratings, *rd)
	}

	utils.Success(w, ratings)
}

// UpsertRating met à jour la note d'un membre, ou la crée si elle n'existe pas
// encore. Une seule ligne logique par membre : la clé est user_id. Pas de
// verrou optimiste, le dernier écrivain gagne.
func UpsertRating(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	var req model.UpdateRatingRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 100) {
		utils.ErrorSimple(w, http.StatusBadRequest, "rating doit être un pourcentage entre 0 et 100")
		return
	}

	// Seules les colonnes fournies sont écrites ; le reste garde sa valeur
	// (ou le défaut zéro à la création)
	type field struct {
		column string
		value  interface{}
	}
	var fields []field

	if req.Earnings != nil {
		fields = append(fields, field{"earnings", *req.Earnings})
	}
	if req.Messages != nil {
		fields = append(fields, field{"messages", *req.Messages})
	}
	if req.Initiatives != nil {
		fields = append(fields, field{"initiatives", *req.Initiatives})
	}
	if req.Signals != nil {
		fields = append(fields, field{"signals", *req.Signals})
	}
	if req.ProfitableSignals != nil {
		fields = append(fields, field{"profitable_signals", *req.ProfitableSignals})
	}
	if req.Referrals != nil {
		fields = append(fields, field{"referrals", *req.Referrals})
	}
	if req.DaysOff != nil {
		fields = append(fields, field{"days_off", *req.DaysOff})
	}
	if req.SickDays != nil {
		fields = append(fields, field{"sick_days", *req.SickDays})
	}
	if req.VacationDays != nil {
		fields = append(fields, field{"vacation_days", *req.VacationDays})
	}
	if req.PoolAmount != nil {
		fields = append(fields, field{"pool_amount", *req.PoolAmount})
	}
	if req.Rating != nil {
		fields = append(fields, field{"rating", *req.Rating})
	}

	insertCols := "user_id"
	insertVals := "$1"
	args := []interface{}{userID}
	argCount := 2
	updateSet := "last_updated = NOW()"

	for _, f := range fields {
		insertCols += ", " + f.column
		insertVals += ", $" + strconv.Itoa(argCount)
		args = append(args, f.value)
		argCount++
		updateSet += ", " + f.column + " = EXCLUDED." + f.column
	}

	insertCols += ", last_updated"
	insertVals += ", NOW()"

	sqlQuery := "INSERT INTO ratings(" + insertCols + ") VALUES(" + insertVals + ")" +
		" ON CONFLICT (user_id) DO UPDATE SET " + updateSet +
		" RETURNING " + ratingColumns

	ctx := context.Background()

	row := database.DB.QueryRow(ctx, sqlQuery, args...)
	rating, err := scanner.ScanRating(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de mettre à jour la note", err)
		return
	}

	utils.Success(w, rating)
}
