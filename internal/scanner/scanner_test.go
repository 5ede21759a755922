package scanner

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow rejoue des valeurs dans les destinations de Scan, comme le ferait pgx
type fakeRow struct {
	values []interface{}
	err    error
}

func (f *fakeRow) Scan(dest ...interface{}) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		if i >= len(f.values) {
			break
		}
		switch v := d.(type) {
		case *string:
			*v = f.values[i].(string)
		case *int64:
			*v = f.values[i].(int64)
		case *time.Time:
			*v = f.values[i].(time.Time)
		case *sql.NullString:
			if f.values[i] == nil {
				*v = sql.NullString{}
			} else {
				*v = sql.NullString{String: f.values[i].(string), Valid: true}
			}
		case *sql.NullInt64:
			if f.values[i] == nil {
				*v = sql.NullInt64{}
			} else {
				*v = sql.NullInt64{Int64: f.values[i].(int64), Valid: true}
			}
		case *sql.NullFloat64:
			if f.values[i] == nil {
				*v = sql.NullFloat64{}
			} else {
				*v = sql.NullFloat64{Float64: f.values[i].(float64), Valid: true}
			}
		case *sql.NullTime:
			if f.values[i] == nil {
				*v = sql.NullTime{}
			} else {
				*v = sql.NullTime{Time: f.values[i].(time.Time), Valid: true}
			}
		}
	}
	return nil
}

func TestScanRatingNormalizesMissingFields(t *testing.T) {
	// Enregistrement partiellement écrit : seuls id, user_id et messages existent
	row := &fakeRow{values: []interface{}{
		"r1", "u1",
		nil, int64(12), nil, nil, nil, nil, nil, nil, nil, nil,
		nil, nil,
	}}

	rd, err := ScanRating(row)
	require.NoError(t, err)

	assert.Equal(t, "r1", rd.ID)
	assert.Equal(t, "u1", rd.UserID)
	assert.Equal(t, 12, rd.Messages)

	// Jamais de valeur manquante : tout est normalisé à zéro
	assert.Zero(t, rd.Earnings)
	assert.Zero(t, rd.Initiatives)
	assert.Zero(t, rd.Signals)
	assert.Zero(t, rd.ProfitableSignals)
	assert.Zero(t, rd.Referrals)
	assert.Zero(t, rd.DaysOff)
	assert.Zero(t, rd.SickDays)
	assert.Zero(t, rd.VacationDays)
	assert.Zero(t, rd.PoolAmount)
	assert.Zero(t, rd.Rating)

	// last_updated absent : normalisé à "maintenant"
	assert.WithinDuration(t, time.Now(), rd.LastUpdated, 5*time.Second)
}

func TestScanRatingFullRecord(t *testing.T) {
	updated := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	row := &fakeRow{values: []interface{}{
		"r1", "u1",
		int64(150000), int64(42), int64(3), int64(17), int64(9), int64(2),
		int64(4), int64(1), int64(0), int64(30000),
		87.5, updated,
	}}

	rd, err := ScanRating(row)
	require.NoError(t, err)

	assert.Equal(t, int64(150000), rd.Earnings)
	assert.Equal(t, 42, rd.Messages)
	assert.Equal(t, 17, rd.Signals)
	assert.Equal(t, 9, rd.ProfitableSignals)
	assert.Equal(t, int64(30000), rd.PoolAmount)
	assert.Equal(t, 87.5, rd.Rating)
	assert.Equal(t, updated, rd.LastUpdated)
}

func TestScanEarning(t *testing.T) {
	now := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	row := &fakeRow{values: []interface{}{
		"e1", "u1", "2025-03-05", int64(100000), int64(20000),
		now, now, "u1", nil,
	}}

	e, err := ScanEarning(row)
	require.NoError(t, err)

	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, "2025-03-05", e.Date)
	assert.Equal(t, int64(100000), e.Amount)
	assert.Equal(t, int64(20000), e.PoolAmount)
	require.NotNil(t, e.CreatedBy)
	assert.Equal(t, "u1", *e.CreatedBy)
	assert.Nil(t, e.UpdatedBy)
}

func TestScanPropagatesError(t *testing.T) {
	row := &fakeRow{err: errors.New("no rows")}

	_, err := ScanEarning(row)
	assert.Error(t, err)

	_, err = ScanRating(row)
	assert.Error(t, err)
}
