package usecase

import (
	"context"
	"errors"
	"time"

	"medicare-plus/internal/converter"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/domain/repository"
	"medicare-plus/internal/service"
	"medicare-plus/pkg/mask"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrPaymentDeclined is returned together with the session so the
	// caller can show the failure message and offer a retry
	ErrPaymentDeclined = errors.New("payment declined")
)

const (
	transactionIDDigits = 12
	persistTimeout      = 5 * time.Second

	msgPaymentUnavailable = "Payment could not be processed. Please try again."
)

type PaymentUsecase interface {
	SubmitPayment(ctx context.Context, id uuid.UUID, req *dto.SubmitPaymentRequest) (*dto.BookingSessionResponse, error)
}

type paymentUsecase struct {
	log             *logrus.Logger
	sessionRepo     repository.BookingSessionRepository
	locks           *service.SessionLockService
	dispatcher      *service.PaymentDispatcher
	completionDelay time.Duration
	sleep           service.Sleeper
	now             func() time.Time
}

func NewPaymentUsecase(
	log *logrus.Logger,
	sessionRepo repository.BookingSessionRepository,
	locks *service.SessionLockService,
	dispatcher *service.PaymentDispatcher,
	completionDelay time.Duration,
	sleep service.Sleeper,
) PaymentUsecase {
	if sleep == nil {
		sleep = service.SleepContext
	}
	return &paymentUsecase{
		log:             log,
		sessionRepo:     sessionRepo,
		locks:           locks,
		dispatcher:      dispatcher,
		completionDelay: completionDelay,
		sleep:           sleep,
		now:             time.Now,
	}
}

// SubmitPayment runs one simulated payment attempt.
//
// Flow:
// 1. Reject a second submit while one is processing (per-session TryLock)
// 2. Check the session is at the payment step
// 3. Validate the method fields; field errors leave the session untouched
// 4. Persist status processing, then wait out the method's delay
// 5. Declined: persist status error with the message, stay at payment
// 6. Approved: persist status success, wait the completion delay, build the
//    receipt and move to confirmation
//
// The method fields are never written to the session store.
func (u *paymentUsecase) SubmitPayment(ctx context.Context, id uuid.UUID, req *dto.SubmitPaymentRequest) (*dto.BookingSessionResponse, error) {
	unlock, ok := u.locks.TryLock(id)
	if !ok {
		return nil, ErrPaymentInProgress
	}
	defer unlock()

	session, err := findOwnedSession(ctx, u.sessionRepo, u.log, id)
	if err != nil {
		return nil, err
	}
	if session.Step != entity.BookingStepPayment {
		return nil, ErrInvalidStep
	}

	method := entity.NormalizePaymentMethod(req.Method)
	processor := u.dispatcher.For(method)
	input := converter.PaymentRequestToInput(req)

	if errs := processor.Validate(input); len(errs) > 0 {
		return nil, FieldErrors(errs)
	}

	session.Payment = &entity.PaymentAttempt{
		Method:    method,
		Status:    entity.PaymentStatusProcessing,
		StartedAt: u.now(),
		Input:     input,
	}
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	outcome, err := processor.Process(ctx, session.Amount)
	if err != nil {
		if ctx.Err() != nil {
			u.log.Infof("Payment for session %s abandoned: %v", session.ID, ctx.Err())
			session.Payment.Abandon()
			u.persistDetached(ctx, session)
			return nil, ctx.Err()
		}

		u.log.Warnf("Failed to process %s payment for session %s: %+v", method, session.ID, err)
		session.Payment.Fail(msgPaymentUnavailable)
		u.persistDetached(ctx, session)
		return nil, err
	}

	if !outcome.Approved {
		session.Payment.Fail(outcome.Message)
		if err := u.save(ctx, session); err != nil {
			return nil, err
		}
		u.log.Infof("Payment for session %s declined (%s)", session.ID, method)
		if method == entity.PaymentMethodCard {
			u.log.Debugf("Declined card %s for session %s", mask.CardNumber(input.CardNumber), session.ID)
		}
		return converter.BookingSessionToResponse(session), ErrPaymentDeclined
	}

	session.Payment.Succeed(outcome.Message)
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	// The charge went through, so completion no longer depends on the caller
	completionCtx := context.WithoutCancel(ctx)
	if err := u.sleep(ctx, u.completionDelay); err != nil {
		u.log.Debugf("Completing payment for session %s after caller left: %v", session.ID, err)
	}

	paidAt := u.now()
	receipt := BuildReceipt(session, method, input, service.RandomDigits(transactionIDDigits), paidAt)
	session.Confirm(receipt)
	if err := u.save(completionCtx, session); err != nil {
		return nil, err
	}

	u.log.Infof("Payment for session %s confirmed: %s %s via %s", session.ID, receipt.TransactionID, receipt.Amount, method)
	return converter.BookingSessionToResponse(session), nil
}

func (u *paymentUsecase) save(ctx context.Context, session *entity.BookingSession) error {
	session.UpdatedAt = u.now()
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save booking session %s: %+v", session.ID, err)
		return err
	}
	return nil
}

// persistDetached saves with a fresh deadline when ctx may already be done
func (u *paymentUsecase) persistDetached(ctx context.Context, session *entity.BookingSession) {
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	_ = u.save(saveCtx, session)
}
