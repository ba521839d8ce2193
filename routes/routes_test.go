package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/services"
	"hotel-management/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type msgResponse struct {
	Msg     string         `json:"msg"`
	Details map[string]any `json:"details"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	log := zap.NewNop()

	return SetupRouter(config.Server{}, log, Controllers{
		Users:       controllers.NewUserController(services.NewUserService(db, log), log),
		Rooms:       controllers.NewRoomController(services.NewRoomService(db, log), log),
		Bookings:    controllers.NewBookingController(services.NewBookingService(db, log), log),
		Services:    controllers.NewServiceRequestController(services.NewServiceRequestService(db, log), log),
		Inventory:   controllers.NewInventoryController(services.NewInventoryService(db, log), log),
		Analytics:   controllers.NewAnalyticsController(services.NewAnalyticsService(db, log), log),
		Maintenance: controllers.NewMaintenanceController(services.NewMaintenanceService(db, log), log),
	})
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), v), resp.Body.String())
}

func createGuest(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	resp := performRequest(router, http.MethodPost, "/api/users", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
		"role":     "guest",
		"fullName": "Guest " + username,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var user map[string]any
	decode(t, resp, &user)
	assert.NotContains(t, user, "password")
	return user["id"].(string)
}

func createRoom(t *testing.T, router *gin.Engine, number string) string {
	t.Helper()
	resp := performRequest(router, http.MethodPost, "/api/rooms", gin.H{
		"roomNumber":   number,
		"type":         "Deluxe",
		"basePrice":    120,
		"weekendPrice": 150,
		"holidayPrice": 180,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var room map[string]any
	decode(t, resp, &room)
	assert.Equal(t, "Available", room["status"])
	return room["id"].(string)
}

func TestWelcomeAndHealth(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Welcome to Hotel Management API"}`, resp.Body.String())

	resp = performRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestBookingScenarioOverHTTP(t *testing.T) {
	router := setupRouter(t)
	guestID := createGuest(t, router, "alice")
	roomID := createRoom(t, router, "101")

	resp := performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"roomId":         roomID,
		"guestId":        guestID,
		"checkIn":        "2099-06-01",
		"checkOut":       "2099-06-03",
		"numberOfGuests": 2,
		"totalPrice":     240,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var booking map[string]any
	decode(t, resp, &booking)
	assert.Equal(t, "confirmed", booking["status"])
	assert.Equal(t, "Guest alice", booking["guestName"])
	assert.Equal(t, "101", booking["room"].(map[string]any)["roomNumber"])
	bookingID := booking["id"].(string)

	resp = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"roomId":   roomID,
		"guestId":  guestID,
		"checkIn":  "2099-06-02",
		"checkOut": "2099-06-04",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	var clash msgResponse
	decode(t, resp, &clash)
	assert.Equal(t, "Room is already booked for the selected dates", clash.Msg)

	resp = performRequest(router, http.MethodPut, "/api/bookings/"+bookingID, gin.H{"status": "checked-out"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = performRequest(router, http.MethodGet, "/api/rooms/"+roomID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var room map[string]any
	decode(t, resp, &room)
	assert.Equal(t, "Cleaning", room["status"])

	resp = performRequest(router, http.MethodGet, "/api/bookings?guestId="+guestID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var list []map[string]any
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "checked-out", list[0]["status"])

	resp = performRequest(router, http.MethodDelete, "/api/bookings/"+bookingID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"msg":"Booking removed"}`, resp.Body.String())
}

func TestBookingByRoomNumber(t *testing.T) {
	router := setupRouter(t)
	guestID := createGuest(t, router, "bob")
	createRoom(t, router, "205")

	resp := performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"roomId": "205 - Deluxe", "guestId": guestID, "checkIn": "2099-01-10", "checkOut": "2099-01-12",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"roomId": "999", "guestId": guestID, "checkIn": "2099-01-10", "checkOut": "2099-01-12",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"msg":"Room not found with number: 999"}`, resp.Body.String())

	resp = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"roomId": "suite", "guestId": guestID, "checkIn": "2099-01-10", "checkOut": "2099-01-12",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"msg":"Invalid room ID format: suite"}`, resp.Body.String())

	resp = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"roomId": uuid.NewString(), "guestId": guestID, "checkIn": "2099-01-10", "checkOut": "2099-01-12",
	})
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"msg":"Room not found"}`, resp.Body.String())
}

func TestNotFoundMessages(t *testing.T) {
	router := setupRouter(t)
	missing := uuid.NewString()

	cases := []struct {
		method string
		path   string
		msg    string
	}{
		{http.MethodGet, "/api/bookings/not-an-id", "Booking not found"},
		{http.MethodGet, "/api/bookings/" + missing, "Booking not found"},
		{http.MethodDelete, "/api/bookings/" + missing, "Booking not found"},
		{http.MethodGet, "/api/rooms/" + missing, "Room not found"},
		{http.MethodDelete, "/api/rooms/" + missing, "Room not found"},
		{http.MethodGet, "/api/users/" + missing, "User not found"},
		{http.MethodDelete, "/api/users/42", "User not found"},
		{http.MethodGet, "/api/services/" + missing, "Service request not found"},
		{http.MethodDelete, "/api/inventory/" + missing, "Item not found"},
		{http.MethodGet, "/api/maintenance/" + missing, "Task not found"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := performRequest(router, tc.method, tc.path, nil)
			require.Equal(t, http.StatusNotFound, resp.Code)
			var body msgResponse
			decode(t, resp, &body)
			assert.Equal(t, tc.msg, body.Msg)
		})
	}
}

func TestBadRequests(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	var body msgResponse
	decode(t, resp, &body)
	assert.Equal(t, "Invalid request payload", body.Msg)
	assert.Contains(t, body.Details["body"], "invalid character")

	resp = performRequest(router, http.MethodPost, "/api/services", gin.H{"notes": "extra pillows"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	body = msgResponse{}
	decode(t, resp, &body)
	assert.Equal(t, "Missing required fields", body.Msg)
	assert.Equal(t, map[string]any{
		"type": "required", "guestId": "required", "roomId": "required", "item": "required",
	}, body.Details)

	resp = performRequest(router, http.MethodGet, "/api/bookings?fromDate=yesterday", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"msg":"Invalid fromDate: yesterday"}`, resp.Body.String())

	resp = performRequest(router, http.MethodPost, "/api/users", gin.H{"username": "carol"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	body = msgResponse{}
	decode(t, resp, &body)
	assert.Equal(t, "Missing required fields", body.Msg)
	assert.Equal(t, "missing", body.Details["email"])
}

func TestDuplicatesAreRejected(t *testing.T) {
	router := setupRouter(t)
	createGuest(t, router, "dave")
	createRoom(t, router, "301")

	resp := performRequest(router, http.MethodPost, "/api/users", gin.H{
		"username": "dave", "email": "other@example.com", "password": "secret123", "role": "guest",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"msg":"User already exists"}`, resp.Body.String())

	resp = performRequest(router, http.MethodPost, "/api/rooms", gin.H{
		"roomNumber": "301", "basePrice": 1, "weekendPrice": 1, "holidayPrice": 1,
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"msg":"Room with this number already exists"}`, resp.Body.String())
}

func TestInventoryOverHTTP(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/inventory", gin.H{"name": "Soap", "stock": 5})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var item map[string]any
	decode(t, resp, &item)
	assert.Equal(t, "Critical", item["status"])
	assert.EqualValues(t, 50, item["lowThreshold"])
	id := item["id"].(string)

	resp = performRequest(router, http.MethodPut, "/api/inventory/"+id, gin.H{"stock": 60})
	require.Equal(t, http.StatusOK, resp.Code)
	decode(t, resp, &item)
	assert.Equal(t, "Sufficient", item["status"])

	resp = performRequest(router, http.MethodPut, "/api/inventory/"+id, gin.H{"stock": -1})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = performRequest(router, http.MethodDelete, "/api/inventory/"+id, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"msg":"Item deleted"}`, resp.Body.String())
}

func TestMaintenanceAndAnalyticsOverHTTP(t *testing.T) {
	router := setupRouter(t)
	guestID := createGuest(t, router, "erin")
	roomID := createRoom(t, router, "410")

	resp := performRequest(router, http.MethodPost, "/api/maintenance", gin.H{
		"roomId": "410", "issue": "Leaking tap", "reportedBy": guestID,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var task map[string]any
	decode(t, resp, &task)
	assert.Equal(t, "medium", task["priority"])
	assert.Equal(t, roomID, task["room"].(map[string]any)["id"])

	resp = performRequest(router, http.MethodGet, "/api/maintenance/guest/"+guestID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var tasks []map[string]any
	decode(t, resp, &tasks)
	assert.Len(t, tasks, 1)

	resp = performRequest(router, http.MethodGet, "/api/analytics/overview", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var overview map[string]any
	decode(t, resp, &overview)
	assert.EqualValues(t, 1, overview["totalRooms"])
	assert.EqualValues(t, 1, overview["totalGuests"])
	assert.Equal(t, "0.00", overview["occupancyRate"])

	resp = performRequest(router, http.MethodGet, "/api/analytics/revenue?period=monthly", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	resp = performRequest(router, http.MethodGet, "/api/analytics/bookings", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"bookingSources":[],"roomTypeDistribution":[]}`, resp.Body.String())
}
