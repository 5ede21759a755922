package scanner

import (
	"database/sql"
	"time"

	model "github.com/artyomlancov333-art/apevaultteam/internal/models"
	"github.com/artyomlancov333-art/apevaultteam/internal/utils"
)

// RowScanner abstraction commune à pgx.Row et pgx.Rows
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanEarning scanne une ligne SQL vers un Earning
// Colonnes attendues : id, user_id, date, amount, pool_amount, created_at, updated_at, created_by, updated_by
func ScanEarning(row RowScanner) (*model.Earning, error) {
	var e model.Earning
	var createdBy, updatedBy sql.NullString

	if err := row.Scan(
		&e.ID, &e.UserID, &e.Date, &e.Amount, &e.PoolAmount,
		&e.CreatedAt, &e.UpdatedAt, &createdBy, &updatedBy,
	); err != nil {
		return nil, err
	}

	e.CreatedBy = utils.NullStringToPointer(createdBy)
	e.UpdatedBy = utils.NullStringToPointer(updatedBy)
	return &e, nil
}

// ScanWorkSlot scanne une ligne SQL vers un WorkSlot
// Colonnes attendues : id, user_id, date, start_time, end_time, note, created_at, updated_at, created_by, updated_by
func ScanWorkSlot(row RowScanner) (*model.WorkSlot, error) {
	var ws model.WorkSlot
	var note, createdBy, updatedBy sql.NullString

	if err := row.Scan(
		&ws.ID, &ws.UserID, &ws.Date, &ws.StartTime, &ws.EndTime, &note,
		&ws.CreatedAt, &ws.UpdatedAt, &createdBy, &updatedBy,
	); err != nil {
		return nil, err
	}

	ws.Note = utils.NullStringToString(note)
	ws.CreatedBy = utils.NullStringToPointer(createdBy)
	ws.UpdatedBy = utils.NullStringToPointer(updatedBy)
	return &ws, nil
}

// ScanDayStatus scanne une ligne SQL vers un DayStatus
// Colonnes attendues : id, user_id, date, status, comment, created_at, updated_at, created_by, updated_by
func ScanDayStatus(row RowScanner) (*model.DayStatus, error) {
	var ds model.DayStatus
	var comment, createdBy, updatedBy sql.NullString

	if err := row.Scan(
		&ds.ID, &ds.UserID, &ds.Date, &ds.Status, &comment,
		&ds.CreatedAt, &ds.UpdatedAt, &createdBy, &updatedBy,
	); err != nil {
		return nil, err
	}

	ds.Comment = utils.NullStringToString(comment)
	ds.CreatedBy = utils.NullStringToPointer(createdBy)
	ds.UpdatedBy = utils.NullStringToPointer(updatedBy)
	return &ds, nil
}

// ScanRating scanne une ligne SQL vers un RatingData.
// Chaque champ numérique absent est normalisé à zéro et last_updated à maintenant,
// pour se protéger des enregistrements partiellement écrits.
// Colonnes attendues : id, user_id, earnings, messages, initiatives, signals,
// profitable_signals, referrals, days_off, sick_days, vacation_days, pool_amount,
// rating, last_updated
func ScanRating(row RowScanner) (*model.RatingData, error) {
	var rd model.RatingData
	var earnings, poolAmount sql.NullInt64
	var messages, initiatives, signals, profitable, referrals sql.NullInt64
	var daysOff, sickDays, vacationDays sql.NullInt64
	var rating sql.NullFloat64
	var lastUpdated sql.NullTime

	if err := row.Scan(
		&rd.ID, &rd.UserID, &earnings, &messages, &initiatives, &signals,
		&profitable, &referrals, &daysOff, &sickDays, &vacationDays,
		&poolAmount, &rating, &lastUpdated,
	); err != nil {
		return nil, err
	}

	rd.Earnings = utils.NullInt64ToInt64(earnings)
	rd.Messages = utils.NullInt64ToInt(messages)
	rd.Initiatives = utils.NullInt64ToInt(initiatives)
	rd.Signals = utils.NullInt64ToInt(signals)
	rd.ProfitableSignals = utils.NullInt64ToInt(profitable)
	rd.Referrals = utils.NullInt64ToInt(referrals)
	rd.DaysOff = utils.NullInt64ToInt(daysOff)
	rd.SickDays = utils.NullInt64ToInt(sickDays)
	rd.VacationDays = utils.NullInt64ToInt(vacationDays)
	rd.PoolAmount = utils.NullInt64ToInt64(poolAmount)
	rd.Rating = utils.NullFloat64ToFloat64(rating)

	if lastUpdated.Valid {
		rd.LastUpdated = lastUpdated.Time
	} else {
		rd.LastUpdated = time.Now()
	}

	return &rd, nil
}
