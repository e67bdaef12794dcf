package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medicare-plus/config"
	"medicare-plus/internal/delivery/http/handler"
	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/internal/repository"
	"medicare-plus/internal/service"
	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/jwt"
	"medicare-plus/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type testServer struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func newTestServer(t *testing.T, gateway service.PaymentGateway) *testServer {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	locks := service.NewSessionLockService(log)
	t.Cleanup(locks.Stop)

	sessions := repository.NewMemoryBookingSessionRepository(time.Hour)
	storage := repository.NewMemoryClientStorage()
	v := validator.NewValidator()

	receiptCfg := config.ReceiptConfig{VATRate: 0.16, QRBaseURL: "https://qr.example.test", HospitalName: "MediCare Plus Hospital"}
	dispatcher := service.NewPaymentDispatcher(config.PaymentConfig{}, gateway, nil, v)

	router := NewRouter(
		handler.NewCatalogHandler(usecase.NewCatalogUsecase(log, time.UTC, 0.16), v),
		handler.NewBookingHandler(usecase.NewBookingUsecase(log, sessions, locks, time.UTC), v),
		handler.NewPaymentHandler(usecase.NewPaymentUsecase(log, sessions, locks, dispatcher, 0, nil)),
		handler.NewReceiptHandler(usecase.NewReceiptUsecase(log, sessions, service.NewReceiptIdentifierService(storage, log), service.NewReceiptRenderer(receiptCfg))),
		handler.NewCareerHandler(usecase.NewCareerUsecase(log), v),
		middleware.NewClientMiddleware(jwt.NewJWTService(config.ClientConfig{TokenSecret: "test-secret", TokenExpiry: time.Hour, CookieName: "mcp_client"}), "mcp_client", false, log),
		middleware.NewCORSMiddleware("*"),
	)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return &testServer{t: t, server: server}
}

// do sends a request, remembering the client token the server hands out
func (s *testServer) do(method, path string, body interface{}) (*http.Response, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set(middleware.ClientTokenHeader, s.token)
	}

	resp, err := s.server.Client().Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	if token := resp.Header.Get(middleware.ClientTokenHeader); token != "" {
		s.token = token
	}

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func bookingForm() map[string]interface{} {
	date := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
	return map[string]interface{}{
		"patient_name": "Jane Wanjiku",
		"email":        "jane@example.com",
		"phone":        "+254712345678",
		"department":   "cardiology",
		"doctor_id":    "card-1",
		"date":         date,
		"time_slot":    "morning-10",
		"reason":       "Chest pain follow-up",
		"billing_type": "individual",
	}
}

func startBooking(t *testing.T, s *testServer) string {
	t.Helper()
	resp, env := s.do(http.MethodPost, "/api/v1/bookings", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	return session.ID
}

func TestRouter_BookingFlowCardPayment(t *testing.T) {
	s := newTestServer(t, service.FixedGateway{Approve: true})
	id := startBooking(t, s)
	require.NotEmpty(t, s.token)

	resp, env := s.do(http.MethodPost, "/api/v1/bookings/"+id+"/submit", bookingForm())
	require.Equal(t, http.StatusOK, resp.StatusCode, string(env.Error))
	assert.Contains(t, string(env.Data), `"step":"payment"`)
	assert.Contains(t, string(env.Data), `"amount":"2500"`)

	resp, env = s.do(http.MethodPost, "/api/v1/bookings/"+id+"/payments", map[string]string{
		"method":      "card",
		"card_number": "4111 1111 1111 1111",
		"card_name":   "Jane Wanjiku",
		"card_expiry": "12/29",
		"card_cvv":    "123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"step":"confirmation"`)
	assert.NotContains(t, string(env.Data), "4111 1111")

	resp, _ = s.do(http.MethodGet, "/api/v1/bookings/"+id+"/receipt", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	resp, _ = s.do(http.MethodGet, "/api/v1/bookings/"+id+"/receipt?format=pdf", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")

	resp, _ = s.do(http.MethodDelete, "/api/v1/storage/receipt-identifiers", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_DeclinedPayment(t *testing.T) {
	s := newTestServer(t, service.FixedGateway{Approve: false})
	id := startBooking(t, s)

	resp, _ := s.do(http.MethodPost, "/api/v1/bookings/"+id+"/submit", bookingForm())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := s.do(http.MethodPost, "/api/v1/bookings/"+id+"/payments", map[string]string{
		"method":        "mobile_money",
		"mobile_number": "0712345678",
	})
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, service.MessageMobileDeclined, env.Message)
	assert.Contains(t, string(env.Data), `"status":"error"`)

	resp, _ = s.do(http.MethodGet, "/api/v1/bookings/"+id+"/receipt", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_FieldErrors(t *testing.T) {
	s := newTestServer(t, service.FixedGateway{Approve: true})
	id := startBooking(t, s)

	form := bookingForm()
	form["email"] = "not-an-email"
	form["is_company"] = true
	resp, env := s.do(http.MethodPost, "/api/v1/bookings/"+id+"/submit", form)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(env.Error), `"email"`)
	assert.Contains(t, string(env.Error), `"company_name"`)

	resp, _ = s.do(http.MethodPost, "/api/v1/bookings/"+id+"/submit", bookingForm())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = s.do(http.MethodPost, "/api/v1/bookings/"+id+"/payments", map[string]string{"method": "bank_transfer"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(env.Error), `"bank_reference"`)

	resp, env = s.do(http.MethodGet, "/api/v1/bookings/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"step":"payment"`)
}

func TestRouter_SessionsAreScopedToClient(t *testing.T) {
	s := newTestServer(t, service.FixedGateway{Approve: true})
	id := startBooking(t, s)

	other := &testServer{t: t, server: s.server}
	resp, _ := other.do(http.MethodGet, "/api/v1/bookings/"+id, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.NotEmpty(t, other.token)
	assert.NotEqual(t, s.token, other.token)

	resp, _ = s.do(http.MethodGet, "/api/v1/bookings/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Catalog(t *testing.T) {
	s := newTestServer(t, service.FixedGateway{Approve: true})

	resp, env := s.do(http.MethodGet, "/api/v1/departments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"total":8`)

	resp, _ = s.do(http.MethodGet, "/api/v1/departments/dentistry/doctors", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	date := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	resp, env = s.do(http.MethodGet, "/api/v1/slots?date="+date+"&priority=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"token":"morning-8"`)

	resp, _ = s.do(http.MethodGet, "/api/v1/slots?date=tomorrow", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = s.do(http.MethodPost, "/api/v1/quotes", map[string]interface{}{
		"department":          "neurology",
		"group_booking":       true,
		"number_of_attendees": 4,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"total":"7200"`)
}

func TestRouter_Careers(t *testing.T) {
	s := newTestServer(t, service.FixedGateway{Approve: true})

	resp, _ := s.do(http.MethodGet, "/api/v1/careers/openings", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := s.do(http.MethodPost, "/api/v1/careers/applications", map[string]interface{}{
		"full_name":        "Mary Atieno",
		"email":            "mary@example.com",
		"phone":            "+254711000111",
		"opening_id":       "physio",
		"years_experience": 4,
		"cover_letter":     strings.Repeat("I have worked in sports rehabilitation. ", 3),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(env.Error))
	assert.Contains(t, string(env.Data), `"reference":"APP-`)
}

func TestRouter_NotFoundAndPreflight(t *testing.T) {
	s := newTestServer(t, service.FixedGateway{Approve: true})

	resp, env := s.do(http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)

	resp, _ = s.do(http.MethodOptions, "/api/v1/bookings", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, _ = s.do(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
