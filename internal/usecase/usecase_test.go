package usecase

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"medicare-plus/config"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/internal/domain/entity"
	domainRepo "medicare-plus/internal/domain/repository"
	"medicare-plus/internal/repository"
	"medicare-plus/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// switchGateway approves or declines depending on its current setting
type switchGateway struct {
	mu      sync.Mutex
	approve bool
}

func (g *switchGateway) set(approve bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.approve = approve
}

func (g *switchGateway) Authorize(ctx context.Context, method entity.PaymentMethod, amount decimal.Decimal) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.approve, nil
}

type fixture struct {
	ctx      context.Context
	repo     domainRepo.BookingSessionRepository
	storage  domainRepo.ClientStorage
	locks    *service.SessionLockService
	gateway  *switchGateway
	booking  *bookingUsecase
	payment  *paymentUsecase
	receipts ReceiptUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithGateway(t, &switchGateway{approve: true}, nil)
}

func newFixtureWithGateway(t *testing.T, gateway *switchGateway, sleep service.Sleeper) *fixture {
	t.Helper()
	log := newTestLogger()

	locks := service.NewSessionLockService(log)
	t.Cleanup(locks.Stop)

	repo := repository.NewMemoryBookingSessionRepository(time.Hour)
	storage := repository.NewMemoryClientStorage()

	var paymentGateway service.PaymentGateway = gateway
	dispatcher := service.NewPaymentDispatcher(config.PaymentConfig{}, paymentGateway, sleep, nil)

	booking := NewBookingUsecase(log, repo, locks, time.UTC).(*bookingUsecase)
	booking.now = func() time.Time { return testNow }

	payment := NewPaymentUsecase(log, repo, locks, dispatcher, 0, sleep).(*paymentUsecase)
	payment.now = func() time.Time { return testNow }

	renderer := service.NewReceiptRenderer(config.ReceiptConfig{
		VATRate:      0.16,
		QRBaseURL:    "https://qr.example.test/create",
		HospitalName: "MediCare Plus Hospital",
	})

	return &fixture{
		ctx:      middleware.WithClientID(context.Background(), "client-1"),
		repo:     repo,
		storage:  storage,
		locks:    locks,
		gateway:  gateway,
		booking:  booking,
		payment:  payment,
		receipts: NewReceiptUsecase(log, repo, service.NewReceiptIdentifierService(storage, log), renderer),
	}
}

func validBookingRequest() *dto.SubmitBookingRequest {
	return &dto.SubmitBookingRequest{
		PatientName: "Jane Wanjiku",
		Email:       "jane@example.com",
		Phone:       "+254712345678",
		Department:  string(entity.DepartmentCardiology),
		DoctorID:    "card-1",
		Date:        "2026-03-12",
		TimeSlot:    "morning-10",
		Reason:      "Follow-up on blood pressure",
		BillingType: string(entity.BillingTypeIndividual),
	}
}

func validCardPayment() *dto.SubmitPaymentRequest {
	return &dto.SubmitPaymentRequest{
		Method:     string(entity.PaymentMethodCard),
		CardNumber: "4111 1111 1111 1111",
		CardName:   "Jane Wanjiku",
		CardExpiry: "12/29",
		CardCVV:    "123",
	}
}

// startAtPayment opens a session and submits req so it sits at the payment step
func (f *fixture) startAtPayment(t *testing.T, req *dto.SubmitBookingRequest) *dto.BookingSessionResponse {
	t.Helper()
	session, err := f.booking.StartSession(f.ctx)
	require.NoError(t, err)

	session, err = f.booking.SubmitForm(f.ctx, session.ID, req)
	require.NoError(t, err)
	require.Equal(t, string(entity.BookingStepPayment), session.Step)
	return session
}
