package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type SelectDepartmentRequest struct {
	Department string `json:"department" validate:"required,department"`
}

type SelectDoctorRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
}

// SubmitBookingRequest is the completed booking form
type SubmitBookingRequest struct {
	PatientName string `json:"patient_name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,phone"`
	Department  string `json:"department" validate:"required,department"`
	DoctorID    string `json:"doctor_id" validate:"required"`
	Date        string `json:"date" validate:"required,date_ymd"`
	TimeSlot    string `json:"time_slot" validate:"required,slot_token"`
	Reason      string `json:"reason" validate:"omitempty,max=500"`

	IsCompany         bool   `json:"is_company"`
	CompanyName       string `json:"company_name" validate:"required_if=IsCompany true,max=100"`
	EmployeeID        string `json:"employee_id" validate:"omitempty,max=50"`
	Priority          bool   `json:"priority"`
	GroupBooking      bool   `json:"group_booking"`
	NumberOfAttendees int    `json:"number_of_attendees" validate:"omitempty,gte=1,lte=20"`
	BillingType       string `json:"billing_type" validate:"omitempty,oneof=individual company insurance"`
	InsuranceProvider string `json:"insurance_provider" validate:"required_if=BillingType insurance"`
	InsurancePolicy   string `json:"insurance_policy" validate:"required_if=BillingType insurance"`
}

// Response DTOs

type PaymentAttemptResponse struct {
	Method  string `json:"method"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type AppointmentResponse struct {
	PatientName string `json:"patient_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name,omitempty"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	Reason      string `json:"reason"`

	IsCompany         bool   `json:"is_company"`
	CompanyName       string `json:"company_name,omitempty"`
	EmployeeID        string `json:"employee_id,omitempty"`
	Priority          bool   `json:"priority"`
	GroupBooking      bool   `json:"group_booking"`
	NumberOfAttendees int    `json:"number_of_attendees,omitempty"`
	BillingType       string `json:"billing_type,omitempty"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	InsurancePolicy   string `json:"insurance_policy,omitempty"`
}

type ConfirmationResponse struct {
	TransactionID   string          `json:"transaction_id"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentDate     time.Time       `json:"payment_date"`
	Amount          decimal.Decimal `json:"amount"`
	Service         string          `json:"service"`
	DoctorName      string          `json:"doctor_name"`
	AppointmentDate string          `json:"appointment_date"`
	AppointmentTime string          `json:"appointment_time"`
}

type BookingSessionResponse struct {
	ID           uuid.UUID               `json:"id"`
	Step         string                  `json:"step"`
	Appointment  AppointmentResponse     `json:"appointment"`
	Amount       decimal.Decimal         `json:"amount"`
	Payment      *PaymentAttemptResponse `json:"payment,omitempty"`
	Confirmation *ConfirmationResponse   `json:"confirmation,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

type SelectDepartmentResponse struct {
	Session *BookingSessionResponse `json:"session"`
	Doctors []DoctorResponse        `json:"doctors"`
}
