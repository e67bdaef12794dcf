package entity

import "time"

// PaymentMethod selects the simulated payment flow
type PaymentMethod string

const (
	PaymentMethodCard          PaymentMethod = "card"
	PaymentMethodMobileMoney   PaymentMethod = "mobile_money"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodInsurance     PaymentMethod = "insurance"
	PaymentMethodPayAtHospital PaymentMethod = "pay_at_hospital"
)

// NormalizePaymentMethod maps an empty or unknown tag to pay at hospital
func NormalizePaymentMethod(tag string) PaymentMethod {
	switch m := PaymentMethod(tag); m {
	case PaymentMethodCard, PaymentMethodMobileMoney, PaymentMethodBankTransfer, PaymentMethodInsurance:
		return m
	default:
		return PaymentMethodPayAtHospital
	}
}

// DisplayName returns the label printed on receipts
func (m PaymentMethod) DisplayName() string {
	switch m {
	case PaymentMethodCard:
		return "Credit/Debit Card"
	case PaymentMethodMobileMoney:
		return "Mobile Money"
	case PaymentMethodBankTransfer:
		return "Bank Transfer"
	case PaymentMethodInsurance:
		return "Insurance"
	default:
		return "Pay at Hospital"
	}
}

// PaymentStatus represents the status of a payment attempt
type PaymentStatus string

const (
	PaymentStatusIdle       PaymentStatus = "idle"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSuccess    PaymentStatus = "success"
	PaymentStatusError      PaymentStatus = "error"
)

// PaymentInput carries the method specific fields typed by the patient.
// It only lives for the duration of a request.
type PaymentInput struct {
	CardNumber string
	CardName   string
	CardExpiry string // Format: MM/YY
	CardCVV    string

	MobileNumber   string
	MobileProvider string

	BankReference string

	InsuranceProvider string
	InsurancePolicy   string
	InsuranceMember   string
}

// PaymentAttempt is the in-flight payment of a booking session. Input is
// never serialized.
type PaymentAttempt struct {
	Method    PaymentMethod `json:"method"`
	Status    PaymentStatus `json:"status"`
	Message   string        `json:"message,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Input     PaymentInput  `json:"-"`
}

// IsProcessing checks if the attempt is waiting on the simulated processor
func (p *PaymentAttempt) IsProcessing() bool {
	return p != nil && p.Status == PaymentStatusProcessing
}

// Fail marks the attempt failed with a user facing message
func (p *PaymentAttempt) Fail(message string) {
	p.Status = PaymentStatusError
	p.Message = message
}

// Succeed marks the attempt successful
func (p *PaymentAttempt) Succeed(message string) {
	p.Status = PaymentStatusSuccess
	p.Message = message
}

// Abandon resets an attempt whose caller went away mid-processing
func (p *PaymentAttempt) Abandon() {
	p.Status = PaymentStatusIdle
	p.Message = ""
}
