package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/artyomlancov333-art/apevaultteam/internal/utils"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, h http.HandlerFunc, method, target string, body interface{}, vars map[string]string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}

	rec := httptest.NewRecorder()
	h(rec, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestGetEarningsRejectsLoneStartDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/earnings?startDate=2025-03-01", nil)
	rec := httptest.NewRecorder()

	GetEarnings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "ensemble")
}

func TestGetEarningsRejectsLoneEndDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/earnings?endDate=2025-03-31", nil)
	rec := httptest.NewRecorder()

	GetEarnings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEarningsRejectsMalformedRange(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/earnings?startDate=01-03-2025&endDate=2025-03-31", nil)
	rec := httptest.NewRecorder()

	GetEarnings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEarningRequiresUserAndDate(t *testing.T) {
	rec, resp := doJSON(t, CreateEarning, http.MethodPost, "/earnings",
		map[string]interface{}{"amount": 100000}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestCreateEarningRejectsBadDate(t *testing.T) {
	rec, _ := doJSON(t, CreateEarning, http.MethodPost, "/earnings",
		map[string]interface{}{"userId": "u1", "date": "2025-3-1"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEarningRejectsNegativeAmounts(t *testing.T) {
	rec, _ := doJSON(t, CreateEarning, http.MethodPost, "/earnings",
		map[string]interface{}{"userId": "u1", "date": "2025-03-01", "amount": -100}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateEarningRequiresAuth(t *testing.T) {
	rec, _ := doJSON(t, UpdateEarning, http.MethodPut, "/earnings/abc",
		map[string]interface{}{"amount": 100000}, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateWorkSlotRequiresTimes(t *testing.T) {
	rec, _ := doJSON(t, CreateWorkSlot, http.MethodPost, "/work-slots",
		map[string]interface{}{"userId": "u1", "date": "2025-03-01"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDayStatusRejectsUnknownStatus(t *testing.T) {
	rec, resp := doJSON(t, CreateDayStatus, http.MethodPost, "/day-statuses",
		map[string]interface{}{"userId": "u1", "date": "2025-03-01", "status": "holiday"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Error, "status")
}

func TestUpsertRatingRejectsOutOfRangeRating(t *testing.T) {
	rec, _ := doJSON(t, UpsertRating, http.MethodPut, "/ratings/u1",
		map[string]interface{}{"rating": 150.0}, map[string]string{"userId": "u1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpsertRatingRejectsUnknownField(t *testing.T) {
	rec, _ := doJSON(t, UpsertRating, http.MethodPut, "/ratings/u1",
		map[string]interface{}{"bonus": 10}, map[string]string{"userId": "u1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
