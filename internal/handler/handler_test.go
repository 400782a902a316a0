package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/VenueBooker/internal/auth"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/VenueBooker/internal/handler/mocks"
	"github.com/stpnv0/VenueBooker/internal/middleware"
	"github.com/stpnv0/VenueBooker/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	events   *hmocks.MockEventSvc
	bookings *hmocks.MockBookingSvc
	users    *hmocks.MockUserSvc
	stats    *hmocks.MockStatsSvc
	tokens   *auth.TokenManager
	router   http.Handler
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		events:   hmocks.NewMockEventSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		users:    hmocks.NewMockUserSvc(t),
		stats:    hmocks.NewMockStatsSvc(t),
		tokens:   auth.NewTokenManager("test-secret-key", time.Hour),
	}

	h := NewHandler(env.events, env.bookings, env.users, env.stats, env.tokens)
	env.router = router.InitRouter("test", h, middleware.Authenticate(env.tokens))

	return env
}

var (
	aliceAccount = &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	adminAccount = &domain.User{ID: 99, Name: "Admin", Email: "admin@events.local", IsAdmin: true}
)

func (e *testEnv) token(t *testing.T, u *domain.User) string {
	t.Helper()
	tok, _, err := e.tokens.Issue(u)
	require.NoError(t, err)
	return tok
}

func (e *testEnv) do(t *testing.T, method, path string, body any, as *domain.User) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if as != nil {
		req.Header.Set("Authorization", "Bearer "+e.token(t, as))
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func actorID(id int64) any {
	return mock.MatchedBy(func(a *domain.Actor) bool { return a != nil && a.UserID == id })
}

func strPtr(s string) *string { return &s }

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Register(mock.Anything, domain.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret",
	}).Return(aliceAccount, nil)

	w := env.do(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.User.Email)

	actor, err := env.tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), actor.UserID)
}

func TestHandler_Register_BadRequest(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", []byte(`{"name":"Alice"}`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := env.do(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret",
	}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Login(mock.Anything, "alice@example.com", "nope", false).
		Return(nil, domain.ErrInvalidCredentials)

	w := env.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email: "alice@example.com", Password: "nope",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_AdminLogin(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Login(mock.Anything, "admin@events.local", "admin123", true).Return(adminAccount, nil)

	w := env.do(t, http.MethodPost, "/api/auth/admin/login", dto.LoginRequest{
		Email: "admin@events.local", Password: "admin123",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.User.IsAdmin)
}

func TestHandler_Logout_RequiresToken(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/api/auth/logout", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env.users.EXPECT().Logout(mock.Anything, actorID(1)).Return(nil)

	w = env.do(t, http.MethodPost, "/api/auth/logout", nil, aliceAccount)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_InvalidToken(t *testing.T) {
	env := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Events ---

func TestHandler_ListEvents(t *testing.T) {
	env := setupRouter(t)

	events := []*domain.Event{
		{ID: 2, Name: "Tech Expo 2026", Category: "Technology", Price: 12000},
		{ID: 1, Name: "Food Festival", Category: "Food & Beverages", Price: 3000},
	}
	env.events.EXPECT().List(mock.Anything, domain.EventFilter{Search: "fest"}).Return(events, nil)

	w := env.do(t, http.MethodGet, "/api/events?category=all&search=fest", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "12000.00", resp[0].PriceText)
}

func TestHandler_ListCategories(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().Categories(mock.Anything).Return([]string{"Birthday", "Wedding"}, nil)

	w := env.do(t, http.MethodGet, "/api/events/categories", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Birthday","Wedding"]`, w.Body.String())
}

func TestHandler_GetEvent(t *testing.T) {
	env := setupRouter(t)

	event := &domain.Event{
		ID:             5,
		Name:           "Wedding",
		AvailableDates: domain.AvailableDates{"Hall A": {"2026-03-01"}},
		CreatedAt:      time.Now(),
	}
	env.events.EXPECT().GetByID(mock.Anything, int64(5)).Return(event, nil)

	w := env.do(t, http.MethodGet, "/api/events/5", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2026-03-01"}, resp.AvailableDates["Hall A"])
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/api/events/abc", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().GetByID(mock.Anything, int64(404)).Return(nil, domain.ErrEventNotFound)

	w := env.do(t, http.MethodGet, "/api/events/404", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateEvent(t *testing.T) {
	env := setupRouter(t)

	req := dto.EventRequest{
		Name:            "Jazz Night",
		Category:        "Concert",
		Price:           2500,
		AvailableDays:   "Friday",
		AvailableVenues: "Blue Hall",
		AvailableDates:  `{"Blue Hall": ["2026-04-03"]}`,
	}
	env.events.EXPECT().Create(mock.Anything, actorID(99), toEventInput(req)).
		Return(&domain.Event{ID: 11, Name: "Jazz Night"}, nil)

	w := env.do(t, http.MethodPost, "/api/events", req, adminAccount)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateEvent_Forbidden(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().Create(mock.Anything, actorID(1), mock.Anything).Return(nil, domain.ErrForbidden)

	w := env.do(t, http.MethodPost, "/api/events", dto.EventRequest{Name: "X", Category: "Y"}, aliceAccount)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateEvent_Anonymous(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/api/events", dto.EventRequest{Name: "X", Category: "Y"}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_UpdateEvent_Validation(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().Update(mock.Anything, actorID(99), int64(11), mock.Anything).
		Return(nil, errors.Join(domain.ErrValidation, errors.New("venue value not a list")))

	w := env.do(t, http.MethodPut, "/api/events/11", dto.EventRequest{Name: "Jazz", Category: "Concert"}, adminAccount)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().Delete(mock.Anything, actorID(99), int64(11)).Return(nil)

	w := env.do(t, http.MethodDelete, "/api/events/11", nil, adminAccount)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ValidateDates(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().ValidateAvailability(`{"Hall": ["2026-01-01"]}`).Return(nil)
	env.events.EXPECT().ValidateAvailability(`[1,2,3]`).
		Return(errors.Join(domain.ErrValidation, errors.New("not an object")))

	w := env.do(t, http.MethodPost, "/api/events/validate-dates",
		dto.ValidateDatesRequest{AvailableDates: `{"Hall": ["2026-01-01"]}`}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/events/validate-dates",
		dto.ValidateDatesRequest{AvailableDates: `[1,2,3]`}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ValidateDatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "not an object")
}

// --- Bookings ---

func TestHandler_BookEvent(t *testing.T) {
	env := setupRouter(t)

	booking := &domain.Booking{
		ID: 7, UserID: 1, EventID: 5, Date: "2999-03-01", Venue: "Hall A",
		Status: domain.BookingStatusPending, CreatedAt: time.Now(),
	}
	env.bookings.EXPECT().Create(mock.Anything, actorID(1), domain.CreateBookingInput{
		EventID: 5, Date: "2999-03-01", Venue: "Hall A",
	}).Return(booking, nil)

	w := env.do(t, http.MethodPost, "/api/events/5/book", dto.BookRequest{Date: "2999-03-01", Venue: "Hall A"}, aliceAccount)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pending", resp.Status)
	assert.True(t, resp.Upcoming)
	assert.Nil(t, resp.PaymentReference)
}

func TestHandler_BookEvent_MissingVenue(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/api/events/5/book", []byte(`{"date":"2026-03-01"}`), aliceAccount)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MyBookings(t *testing.T) {
	env := setupRouter(t)

	env.bookings.EXPECT().ListMine(mock.Anything, actorID(1)).Return([]*domain.Booking{
		{ID: 7, UserID: 1, Date: "2020-01-01"},
	}, nil)

	w := env.do(t, http.MethodGet, "/api/bookings/me", nil, aliceAccount)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.False(t, resp[0].Upcoming)
}

func TestHandler_PayBooking_EmptyBody(t *testing.T) {
	env := setupRouter(t)

	env.bookings.EXPECT().CompletePayment(mock.Anything, actorID(1), int64(7), "").Return(&domain.Booking{
		ID: 7, UserID: 1, Paid: true, PaymentReference: strPtr("FAKE-CARD-000007"),
	}, nil)

	w := env.do(t, http.MethodPost, "/api/bookings/7/pay", nil, aliceAccount)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FAKE-CARD-000007", *resp.PaymentReference)
}

func TestHandler_PayBooking_NotOwner(t *testing.T) {
	env := setupRouter(t)

	env.bookings.EXPECT().CompletePayment(mock.Anything, actorID(1), int64(8), "UPI").Return(nil, domain.ErrForbidden)

	w := env.do(t, http.MethodPost, "/api/bookings/8/pay", dto.PayRequest{Method: "UPI"}, aliceAccount)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Receipt(t *testing.T) {
	env := setupRouter(t)

	env.bookings.EXPECT().Receipt(mock.Anything, actorID(1), int64(7)).Return(&domain.Receipt{
		Number: 7, GeneratedAt: time.Now(), PaymentReference: "FAKE-CARD-000007",
		EventName: "Wedding", Amount: 1500, AmountText: "1500.00",
	}, nil)
	env.bookings.EXPECT().Receipt(mock.Anything, actorID(1), int64(8)).Return(nil, domain.ErrReceiptUnavailable)

	w := env.do(t, http.MethodGet, "/api/bookings/7/receipt", nil, aliceAccount)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReceiptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1500.00", resp.AmountText)

	w = env.do(t, http.MethodGet, "/api/bookings/8/receipt", nil, aliceAccount)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Admin ---

func TestHandler_ApproveBooking_Conflict(t *testing.T) {
	env := setupRouter(t)

	env.bookings.EXPECT().Approve(mock.Anything, actorID(99), int64(7)).Return(nil, domain.ErrInvalidTransition)

	w := env.do(t, http.MethodPost, "/api/admin/bookings/7/approve", nil, adminAccount)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectBooking(t *testing.T) {
	env := setupRouter(t)

	env.bookings.EXPECT().Reject(mock.Anything, actorID(99), int64(7), "Venue closed").Return(&domain.Booking{
		ID: 7, Status: domain.BookingStatusRejected, RejectionReason: strPtr("Venue closed"),
	}, nil)

	w := env.do(t, http.MethodPost, "/api/admin/bookings/7/reject", dto.RejectRequest{Reason: "Venue closed"}, adminAccount)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Rejected", resp.Status)
	assert.Equal(t, "Venue closed", *resp.RejectionReason)
}

func TestHandler_AdminListBookings_Filters(t *testing.T) {
	env := setupRouter(t)

	paid := true
	want := domain.BookingFilter{
		Statuses: []domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusApproved},
		Paid:     &paid,
		DateFrom: "2026-01-01",
		DateTo:   "2026-12-31",
	}
	env.bookings.EXPECT().List(mock.Anything, actorID(99), want).Return([]*domain.Booking{}, nil)

	w := env.do(t, http.MethodGet,
		"/api/admin/bookings?status=pending,Approved&paid=yes&from=2026-01-01&to=2026-12-31", nil, adminAccount)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_AdminListBookings_BadFilter(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/api/admin/bookings?status=cancelled", nil, adminAccount)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/bookings?from=01-01-2026", nil, adminAccount)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AdminListUsers(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().List(mock.Anything, actorID(99), mock.MatchedBy(func(f domain.UserFilter) bool {
		return f.Search == "ali" &&
			f.CreatedFrom != nil && f.CreatedFrom.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.CreatedTo != nil && f.CreatedTo.Before(time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)) &&
			f.CreatedTo.After(time.Date(2026, 1, 2, 23, 59, 0, 0, time.UTC))
	})).Return([]*domain.User{aliceAccount}, nil)

	w := env.do(t, http.MethodGet, "/api/admin/users?search=ali&from=2026-01-01&to=2026-01-02", nil, adminAccount)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Alice", resp[0].Name)
}

func TestHandler_AdminActivity(t *testing.T) {
	env := setupRouter(t)

	env.stats.EXPECT().Activity(mock.Anything, actorID(99), 5).Return([]domain.ActivityEntry{
		{Kind: domain.ActivityBooking, Icon: "📝", Text: "Alice created booking #7", Time: "10 Feb 2026, 09:05 PM"},
	}, nil)

	w := env.do(t, http.MethodGet, "/api/admin/activity?limit=5", nil, adminAccount)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"type":"booking","icon":"📝","text":"Alice created booking #7","time":"10 Feb 2026, 09:05 PM"}]`,
		w.Body.String())

	w = env.do(t, http.MethodGet, "/api/admin/activity?limit=many", nil, adminAccount)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Account ---

func TestHandler_Stats(t *testing.T) {
	env := setupRouter(t)

	env.stats.EXPECT().Dashboard(mock.Anything, actorID(1)).Return(&domain.Dashboard{
		TotalUsers: 3, TotalRevenue: 4500,
	}, nil)

	w := env.do(t, http.MethodGet, "/api/stats", nil, aliceAccount)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalUsers)
	assert.NotNil(t, resp.Activity)
}

func TestHandler_Profile(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Profile(mock.Anything, actorID(1)).Return(&domain.Profile{
		User:          *aliceAccount,
		TotalBookings: 2,
		PaidBookings:  1,
		Recent:        []*domain.Booking{{ID: 7}, {ID: 6}},
	}, nil)

	w := env.do(t, http.MethodGet, "/api/profile", nil, aliceAccount)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalBookings)
	assert.Len(t, resp.Recent, 2)
}

func TestHandler_ChangePassword_Mismatch(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().ChangePassword(mock.Anything, actorID(1), "a", "b").
		Return(errors.Join(domain.ErrValidation, errors.New("new passwords do not match")))

	w := env.do(t, http.MethodPut, "/api/profile/password",
		dto.ChangePasswordRequest{NewPassword: "a", ConfirmPassword: "b"}, aliceAccount)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	env := setupRouter(t)

	env.bookings.EXPECT().ListMine(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	w := env.do(t, http.MethodGet, "/api/bookings/me", nil, aliceAccount)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestHandler_Health(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
