package usecase

import (
	"context"
	"errors"
	"time"

	"medicare-plus/internal/converter"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/domain/repository"
	"medicare-plus/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrClientNotFound    = errors.New("client not found in context")
	ErrSessionNotFound   = errors.New("booking session not found")
	ErrSessionNotOwned   = errors.New("booking session does not belong to you")
	ErrInvalidStep       = errors.New("operation not allowed at the current booking step")
	ErrPaymentInProgress = errors.New("a payment is already being processed")
)

const (
	msgDateFormat      = "date must be a date in YYYY-MM-DD format"
	msgDateInPast      = "date cannot be in the past"
	msgDoctorMismatch  = "doctor_id must be a doctor of the selected department"
	msgSlotUnavailable = "time_slot is not offered on this date"
	msgSlotStarted     = "time_slot has already started"
	msgAttendees       = "number_of_attendees is required for group bookings"
)

type BookingUsecase interface {
	StartSession(ctx context.Context) (*dto.BookingSessionResponse, error)
	GetSession(ctx context.Context, id uuid.UUID) (*dto.BookingSessionResponse, error)
	SelectDepartment(ctx context.Context, id uuid.UUID, req *dto.SelectDepartmentRequest) (*dto.SelectDepartmentResponse, error)
	SelectDoctor(ctx context.Context, id uuid.UUID, req *dto.SelectDoctorRequest) (*dto.BookingSessionResponse, error)
	SubmitForm(ctx context.Context, id uuid.UUID, req *dto.SubmitBookingRequest) (*dto.BookingSessionResponse, error)
	Back(ctx context.Context, id uuid.UUID) (*dto.BookingSessionResponse, error)
	Reset(ctx context.Context, id uuid.UUID) (*dto.BookingSessionResponse, error)
}

type bookingUsecase struct {
	log         *logrus.Logger
	sessionRepo repository.BookingSessionRepository
	locks       *service.SessionLockService
	loc         *time.Location
	now         func() time.Time
}

func NewBookingUsecase(
	log *logrus.Logger,
	sessionRepo repository.BookingSessionRepository,
	locks *service.SessionLockService,
	loc *time.Location,
) BookingUsecase {
	return &bookingUsecase{
		log:         log,
		sessionRepo: sessionRepo,
		locks:       locks,
		loc:         loc,
		now:         time.Now,
	}
}

// StartSession opens a new booking at the form step
func (u *bookingUsecase) StartSession(ctx context.Context) (*dto.BookingSessionResponse, error) {
	clientID, ok := middleware.GetClientIDFromContext(ctx)
	if !ok {
		return nil, ErrClientNotFound
	}

	session := entity.NewBookingSession(clientID, u.now())
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to create booking session: %+v", err)
		return nil, err
	}

	u.log.Debugf("Booking session %s started for client %s", session.ID, clientID)
	return converter.BookingSessionToResponse(session), nil
}

func (u *bookingUsecase) GetSession(ctx context.Context, id uuid.UUID) (*dto.BookingSessionResponse, error) {
	session, err := findOwnedSession(ctx, u.sessionRepo, u.log, id)
	if err != nil {
		return nil, err
	}
	return converter.BookingSessionToResponse(session), nil
}

// SelectDepartment switches the draft department. The previously selected
// doctor is always cleared and the new department's doctors are returned.
func (u *bookingUsecase) SelectDepartment(ctx context.Context, id uuid.UUID, req *dto.SelectDepartmentRequest) (*dto.SelectDepartmentResponse, error) {
	department := entity.Department(req.Department)
	if !department.IsValid() {
		return nil, ErrDepartmentNotFound
	}

	unlock := u.locks.Lock(id)
	defer unlock()

	session, err := u.findDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Appointment.SetDepartment(department)
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return &dto.SelectDepartmentResponse{
		Session: converter.BookingSessionToResponse(session),
		Doctors: converter.DoctorsToResponses(entity.DoctorsByDepartment(department)),
	}, nil
}

// SelectDoctor sets the draft doctor, who must work in the draft department
func (u *bookingUsecase) SelectDoctor(ctx context.Context, id uuid.UUID, req *dto.SelectDoctorRequest) (*dto.BookingSessionResponse, error) {
	unlock := u.locks.Lock(id)
	defer unlock()

	session, err := u.findDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, ok := entity.FindDoctor(session.Appointment.Department, req.DoctorID); !ok {
		return nil, FieldErrors{"doctor_id": msgDoctorMismatch}
	}

	session.Appointment.DoctorID = req.DoctorID
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return converter.BookingSessionToResponse(session), nil
}

// SubmitForm validates the completed form and moves the session to the
// payment step.
//
// Flow:
// 1. Check the session is at the form step
// 2. Apply the rules tags cannot express (date, doctor, slot, attendees)
// 3. Price the booking from the pricing table
// 4. Carry the request unchanged into the payment step
func (u *bookingUsecase) SubmitForm(ctx context.Context, id uuid.UUID, req *dto.SubmitBookingRequest) (*dto.BookingSessionResponse, error) {
	unlock := u.locks.Lock(id)
	defer unlock()

	session, err := u.findDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment := converter.SubmitRequestToAppointment(req)
	if errs := validateAppointment(appointment, u.now().In(u.loc), u.loc); len(errs) > 0 {
		return nil, errs
	}

	amount, ok := entity.Cost(appointment.Department, appointment.IsCompany, appointment.Priority, appointment.GroupBooking, appointment.NumberOfAttendees)
	if !ok {
		return nil, ErrDepartmentNotFound
	}

	session.EnterPayment(appointment, amount)
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	u.log.Infof("Booking session %s moved to payment: %s, amount %s", session.ID, appointment.Department, amount)
	return converter.BookingSessionToResponse(session), nil
}

// Back returns from the payment step to the form, keeping every field
func (u *bookingUsecase) Back(ctx context.Context, id uuid.UUID) (*dto.BookingSessionResponse, error) {
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
	// The lock is free, so a processing status is left over from an attempt
	// that never finished
	if session.Payment.IsProcessing() {
		u.log.Infof("Discarding unfinished payment attempt of session %s", session.ID)
	}

	session.BackToForm()
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return converter.BookingSessionToResponse(session), nil
}

// Reset clears the session for another appointment
func (u *bookingUsecase) Reset(ctx context.Context, id uuid.UUID) (*dto.BookingSessionResponse, error) {
	unlock := u.locks.Lock(id)
	defer unlock()

	session, err := findOwnedSession(ctx, u.sessionRepo, u.log, id)
	if err != nil {
		return nil, err
	}

	session.Reset()
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return converter.BookingSessionToResponse(session), nil
}

// findDraft loads a session that is still editable
func (u *bookingUsecase) findDraft(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error) {
	session, err := findOwnedSession(ctx, u.sessionRepo, u.log, id)
	if err != nil {
		return nil, err
	}
	if session.Step != entity.BookingStepForm {
		return nil, ErrInvalidStep
	}
	return session, nil
}

func (u *bookingUsecase) save(ctx context.Context, session *entity.BookingSession) error {
	session.UpdatedAt = u.now()
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save booking session %s: %+v", session.ID, err)
		return err
	}
	return nil
}

// validateAppointment applies the domain rules of a booking. now must be in loc.
func validateAppointment(a entity.AppointmentRequest, now time.Time, loc *time.Location) FieldErrors {
	errs := FieldErrors{}

	if _, ok := entity.FindDoctor(a.Department, a.DoctorID); !ok {
		errs["doctor_id"] = msgDoctorMismatch
	}

	if a.GroupBooking && a.NumberOfAttendees < 1 {
		errs["number_of_attendees"] = msgAttendees
	}

	date, err := parseAppointmentDate(a.Date, loc)
	if err != nil {
		errs["date"] = msgDateFormat
		return errs
	}
	if date.Before(startOfDay(now)) {
		errs["date"] = msgDateInPast
		return errs
	}

	slot, ok := entity.FindSlot(entity.GenerateSlots(date, now, a.WantsPrioritySlots()), a.TimeSlot)
	switch {
	case !ok:
		errs["time_slot"] = msgSlotUnavailable
	case slot.Disabled:
		errs["time_slot"] = msgSlotStarted
	}

	return errs
}
