package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client storage keys of the receipt identifiers
const (
	StorageKeyInvoiceNumber = "invoiceNumber"
	StorageKeyControlUnitNo = "controlUnitNo"
	StorageKeyReceiptID     = "receiptId"
)

// ReceiptData is the flat record printed on a payment receipt.
// It is NOT a database entity, it is composed when a payment completes.
type ReceiptData struct {
	PatientName     string          `json:"patient_name"`
	PatientEmail    string          `json:"patient_email"`
	PatientPhone    string          `json:"patient_phone"`
	Service         string          `json:"service"`
	Department      Department      `json:"department"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	PaymentDate     time.Time       `json:"payment_date"`
	TransactionID   string          `json:"transaction_id"`
	DoctorName      string          `json:"doctor_name"`
	AppointmentDate string          `json:"appointment_date"`
	AppointmentTime string          `json:"appointment_time"`

	IsCompany         bool        `json:"is_company"`
	CompanyName       string      `json:"company_name,omitempty"`
	EmployeeID        string      `json:"employee_id,omitempty"`
	Priority          bool        `json:"priority"`
	GroupBooking      bool        `json:"group_booking"`
	NumberOfAttendees int         `json:"number_of_attendees,omitempty"`
	BillingType       BillingType `json:"billing_type,omitempty"`
	InsuranceProvider string      `json:"insurance_provider,omitempty"`
	InsurancePolicy   string      `json:"insurance_policy,omitempty"`
}

// ReceiptIdentifiers are cosmetic numbers cached per client storage context
type ReceiptIdentifiers struct {
	InvoiceNumber string `json:"invoice_number"`
	ControlUnitNo string `json:"control_unit_no"`
	ReceiptID     string `json:"receipt_id"`
}

// VATBreakdown splits a VAT-inclusive amount
type VATBreakdown struct {
	PreVAT decimal.Decimal `json:"pre_vat"`
	VAT    decimal.Decimal `json:"vat"`
	Total  decimal.Decimal `json:"total"`
	Rate   decimal.Decimal `json:"rate"`
}

// ComputeVAT derives pre-VAT = amount / (1 + rate), rounded to cents. The VAT
// is the remainder so PreVAT + VAT == Total exactly.
func ComputeVAT(amount, rate decimal.Decimal) VATBreakdown {
	divisor := decimal.NewFromInt(1).Add(rate)
	preVAT := amount.DivRound(divisor, 2)
	return VATBreakdown{
		PreVAT: preVAT,
		VAT:    amount.Sub(preVAT),
		Total:  amount,
		Rate:   rate,
	}
}
