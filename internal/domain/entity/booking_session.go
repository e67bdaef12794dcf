package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStep is the page-level step of the booking workflow
type BookingStep string

const (
	BookingStepForm         BookingStep = "form"
	BookingStepPayment      BookingStep = "payment"
	BookingStepConfirmation BookingStep = "confirmation"
)

// BookingSession is one pass through form -> payment -> confirmation.
// Sessions are ephemeral and expire with their store TTL.
type BookingSession struct {
	ID          uuid.UUID          `json:"id"`
	ClientID    string             `json:"client_id"`
	Step        BookingStep        `json:"step"`
	Appointment AppointmentRequest `json:"appointment"`
	Amount      decimal.Decimal    `json:"amount"`
	Payment     *PaymentAttempt    `json:"payment,omitempty"`
	Receipt     *ReceiptData       `json:"receipt,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// NewBookingSession starts a session at the form step
func NewBookingSession(clientID string, now time.Time) *BookingSession {
	return &BookingSession{
		ID:        uuid.New(),
		ClientID:  clientID,
		Step:      BookingStepForm,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy checks the session belongs to the client
func (s *BookingSession) IsOwnedBy(clientID string) bool {
	return s.ClientID == clientID
}

// EnterPayment carries the validated form to the payment step
func (s *BookingSession) EnterPayment(req AppointmentRequest, amount decimal.Decimal) {
	s.Appointment = req
	s.Amount = amount
	s.Payment = nil
	s.Step = BookingStepPayment
}

// BackToForm returns from the payment step keeping the form values
func (s *BookingSession) BackToForm() {
	s.Payment = nil
	s.Step = BookingStepForm
}

// Confirm discards the payment attempt and moves to confirmation
func (s *BookingSession) Confirm(receipt ReceiptData) {
	s.Payment = nil
	s.Receipt = &receipt
	s.Step = BookingStepConfirmation
}

// Reset clears everything for a new appointment
func (s *BookingSession) Reset() {
	s.Appointment = AppointmentRequest{}
	s.Amount = decimal.Zero
	s.Payment = nil
	s.Receipt = nil
	s.Step = BookingStepForm
}
