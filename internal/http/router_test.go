package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"railticket/internal/catalog"
	intconfig "railticket/internal/config"
	"railticket/internal/http/handlers"
	"railticket/internal/ledger"
	"railticket/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecret = "router-test-secret"

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cat, err := catalog.Open(dir)
	if err != nil {
		t.Fatalf("catalog open: %v", err)
	}
	handlers.Configure(handlers.App{
		Catalog:   cat,
		Ledger:    ledger.New(dir),
		Users:     repositories.NewUserStore(dir),
		JWTSecret: []byte(testSecret),
	})
	return NewRouter(intconfig.Env{AppAddr: ":0", JWTSecret: testSecret})
}

func doJSON(r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupTestRouter(t)
	w := doJSON(r, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrainSearch(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/trains?from=kolk&to=del", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count  int `json:"count"`
		Trains []struct {
			TrainID string `json:"train_id"`
		} `json:"trains"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "12001", resp.Trains[0].TrainID)

	// Empty filter matches all seeded trains.
	w = doJSON(r, http.MethodGet, "/api/trains", nil, nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Count)

	w = doJSON(r, http.MethodGet, "/api/trains/99999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuote(t *testing.T) {
	r := setupTestRouter(t)
	w := doJSON(r, http.MethodPost, "/api/quote", gin.H{"train_id": "12001", "class": "1AC", "seats": 2}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PricePerSeat int `json:"price_per_seat"`
		TotalPrice   int `json:"total_price"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 12001: digit sum 4, base 204, 1AC multiplier 4.0
	assert.Equal(t, 816, resp.PricePerSeat)
	assert.Equal(t, 1632, resp.TotalPrice)
}

func bookingBody(seats int) gin.H {
	return gin.H{
		"train_id":       "22691",
		"travel_date":    "2026-09-01",
		"seats":          seats,
		"passenger_name": "Asha Verma",
		"phone":          "9876543210",
	}
}

func TestCreateBooking(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(2), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Seats []int `json:"seats"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{1, 2}, resp.Seats)

	// History is newest first and has one row per seat.
	w = doJSON(r, http.MethodGet, "/api/bookings", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count int `json:"count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Count)
}

func TestCreateBookingInsufficientCapacity(t *testing.T) {
	r := setupTestRouter(t)

	// Train 22691 seats 60; take 59, then ask for 2.
	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(59), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/bookings", bookingBody(2), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "only 1 available")
}

func TestCreateBookingValidation(t *testing.T) {
	r := setupTestRouter(t)
	body := bookingBody(1)
	body["travel_date"] = "01-09-2026"
	w := doJSON(r, http.MethodPost, "/api/bookings", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBookingRequiresAuth(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, http.MethodDelete, "/api/bookings/BK123", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteBookingWithToken(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register",
		gin.H{"name": "Asha", "email": "asha@example.com", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login",
		gin.H{"email": "asha@example.com", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)
	auth := map[string]string{"Authorization": "Bearer " + login.Token}

	w = doJSON(r, http.MethodPost, "/api/bookings", bookingBody(1), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/bookings", nil, nil)
	var list struct {
		Bookings []struct {
			ID string `json:"booking_id"`
		} `json:"bookings"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Bookings, 1)

	w = doJSON(r, http.MethodDelete, "/api/bookings/"+list.Bookings[0].ID, nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)

	// Deleting again is the no-op path.
	w = doJSON(r, http.MethodDelete, "/api/bookings/"+list.Bookings[0].ID, nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":false`)
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	r := setupTestRouter(t)
	w := doJSON(r, http.MethodPost, "/api/auth/register",
		gin.H{"name": "Asha", "email": "asha@example.com", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login",
		gin.H{"email": "asha@example.com", "password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingStats(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(2), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/stats/bookings?group_by=train", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "22691 Duronto Special")

	w = doJSON(r, http.MethodGet, "/api/stats/bookings?group_by=bogus", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestETicket(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(1), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/bookings", nil, nil)
	var list struct {
		Bookings []struct {
			ID string `json:"booking_id"`
		} `json:"bookings"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	w = doJSON(r, http.MethodGet, "/api/bookings/"+list.Bookings[0].ID+"/e-ticket", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	w = doJSON(r, http.MethodGet, "/api/bookings/BK404/e-ticket", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
