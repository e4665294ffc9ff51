package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onibook/config"
	availabilityRepo "onibook/database/repository/availability"
	bookingRepo "onibook/database/repository/booking"
	commentRepo "onibook/database/repository/comment"
	userRepo "onibook/database/repository/user"
	"onibook/handlers"
	"onibook/models"
	"onibook/routes"
	"onibook/services/account"
	commentSvc "onibook/services/comment"
	"onibook/services/schedule"
	"onibook/utils"
)

type testEnv struct {
	router   *gin.Engine
	accounts *account.DefaultAccountService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.Technician = "oni"
	config.AppConfig.StorageBackend = ""

	scheduleService := &schedule.DefaultScheduleService{
		AvailabilityRepo: availabilityRepo.NewMemoryAvailabilityRepo(),
		BookingRepo:      bookingRepo.NewMemoryBookingRepo(),
		Technician:       "oni",
	}
	accountService := &account.DefaultAccountService{Repo: userRepo.NewMemoryUserRepo()}
	commentService := &commentSvc.DefaultCommentService{Repo: commentRepo.NewMemoryCommentRepo()}

	authHandler := handlers.NewAuthHandler(accountService)
	availabilityHandler := handlers.NewAvailabilityHandler(scheduleService)
	bookingHandler := handlers.NewBookingHandler(scheduleService, nil, nil)
	commentHandler := handlers.NewCommentHandler(commentService)

	hb := &handlers.HandlerBundle{
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,

		ListAvailabilityHandler:   availabilityHandler.ListHandler,
		GetAvailabilityHandler:    availabilityHandler.GetByDateHandler,
		UpsertAvailabilityHandler: availabilityHandler.UpsertHandler,
		RemoveSlotHandler:         availabilityHandler.RemoveSlotHandler,

		AvailableSlotsHandler: bookingHandler.AvailableSlotsHandler,
		BookHandler:           bookingHandler.BookHandler,
		MyBookingsHandler:     bookingHandler.MyBookingsHandler,
		AdminListHandler:      bookingHandler.AdminListHandler,
		AdminCancelHandler:    bookingHandler.AdminCancelHandler,

		ListCommentsHandler:  commentHandler.ListHandler,
		CreateCommentHandler: commentHandler.CreateHandler,
	}

	router := gin.New()
	routes.RegisterRoutes(router, hb)
	return &testEnv{router: router, accounts: accountService}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	return e.do(t, method, path, token, &buf, "application/json")
}

func clientToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("client-1", "linh@example.com", models.RoleClient, time.Hour)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("admin-1", "oni@salon.test", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	return token
}

func bookingForm(t *testing.T, date, slot string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for field, value := range map[string]string{
		"name":    "Linh",
		"email":   "linh@example.com",
		"service": "gel manicure",
		"date":    date,
		"time":    slot,
		"note":    "almond shape please",
	} {
		require.NoError(t, mw.WriteField(field, value))
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestAvailabilityMutationAuthMatrix(t *testing.T) {
	env := newTestEnv(t)
	payload := gin.H{"slots": []string{"09:00"}}

	// No capability at all.
	w := env.doJSON(t, http.MethodPut, "/api/availability/2025-06-01", "", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Authenticated but not admin.
	w = env.doJSON(t, http.MethodPut, "/api/availability/2025-06-01", clientToken(t), payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin.
	w = env.doJSON(t, http.MethodPut, "/api/availability/2025-06-01", adminToken(t), payload)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAvailabilityReadEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPut, "/api/availability/2025-06-01", adminToken(t), gin.H{"slots": []string{"10:00", "09:00"}})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/availability/2025-06-01", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var record models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.ElementsMatch(t, []string{"09:00", "10:00"}, record.Slots)

	// Unknown dates come back as an empty-slots shape, not a 404.
	w = env.do(t, http.MethodGet, "/api/availability/2030-01-01", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Empty(t, record.Slots)

	w = env.do(t, http.MethodGet, "/api/availability", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var records []models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 1)
}

func TestRemoveSlotEndpoint(t *testing.T) {
	env := newTestEnv(t)
	admin := adminToken(t)

	w := env.doJSON(t, http.MethodPut, "/api/availability/2025-06-01", admin, gin.H{"slots": []string{"09:00", "10:00"}})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/availability/2025-06-01/09:00", admin, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/availability/2030-01-01/09:00", admin, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	admin := adminToken(t)
	client := clientToken(t)

	w := env.doJSON(t, http.MethodPut, "/api/availability/2025-06-01", admin, gin.H{"slots": []string{"09:00", "10:00"}})
	require.Equal(t, http.StatusOK, w.Code)

	// Anyone can read available slots.
	w = env.do(t, http.MethodGet, "/api/booking/available?date=2025-06-01", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var slots []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Equal(t, []string{"09:00", "10:00"}, slots)

	// Booking requires some identity capability.
	form, contentType := bookingForm(t, "2025-06-01", "09:00")
	w = env.do(t, http.MethodPost, "/api/booking/book", "", form, contentType)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	form, contentType = bookingForm(t, "2025-06-01", "09:00")
	w = env.do(t, http.MethodPost, "/api/booking/book", client, form, contentType)
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		OK      bool           `json:"ok"`
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.OK)
	require.NotEmpty(t, created.Booking.ID)

	// The slot disappears from the derived view.
	w = env.do(t, http.MethodGet, "/api/booking/available?date=2025-06-01", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Equal(t, []string{"10:00"}, slots)

	// A second attempt on the same slot loses the race.
	form, contentType = bookingForm(t, "2025-06-01", "09:00")
	w = env.do(t, http.MethodPost, "/api/booking/book", client, form, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SLOT_TAKEN")

	// The client sees their booking.
	w = env.do(t, http.MethodGet, "/api/booking/mine", client, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 1)

	// Admin listing requires the admin role.
	w = env.do(t, http.MethodGet, "/api/booking/admin?scope=all", client, nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/booking/admin?scope=all", admin, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)

	// Cancel restores the derived availability.
	w = env.do(t, http.MethodDelete, "/api/booking/admin/"+created.Booking.ID, admin, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/booking/available?date=2025-06-01", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Equal(t, []string{"09:00", "10:00"}, slots)

	// Cancelling an unknown id is a 404.
	w = env.do(t, http.MethodDelete, "/api/booking/admin/bogus", admin, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingValidationOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	client := clientToken(t)

	w := env.do(t, http.MethodGet, "/api/booking/available", "", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	form, contentType := bookingForm(t, "not a date", "09:00")
	w = env.do(t, http.MethodPost, "/api/booking/book", client, form, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/comments", "", gin.H{"name": "Mai", "message": "love it"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/comments", "", gin.H{"name": "", "message": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/comments", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var comments []models.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	assert.Len(t, comments, 1)
}

func TestRegisterAndLoginOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/auth/register", "", gin.H{"email": "new@client.test", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "new@client.test", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, models.RoleClient, session.Role)
	require.NotEmpty(t, session.Token)

	// The issued token works against an authenticated endpoint.
	w = env.do(t, http.MethodGet, "/api/booking/mine", session.Token, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "new@client.test", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
