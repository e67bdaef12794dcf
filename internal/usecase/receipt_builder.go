package usecase

import (
	"time"

	"medicare-plus/internal/domain/entity"
)

// BuildReceipt assembles the receipt record of a completed payment. Insurance
// details typed on the payment form win over the ones of the booking form.
func BuildReceipt(session *entity.BookingSession, method entity.PaymentMethod, input entity.PaymentInput, transactionID string, paidAt time.Time) entity.ReceiptData {
	a := session.Appointment

	receipt := entity.ReceiptData{
		PatientName:     a.PatientName,
		PatientEmail:    a.Email,
		PatientPhone:    a.Phone,
		Service:         a.Department.DisplayName() + " Consultation",
		Department:      a.Department,
		Amount:          session.Amount,
		PaymentMethod:   method,
		PaymentDate:     paidAt,
		TransactionID:   transactionID,
		AppointmentDate: formatAppointmentDate(a.Date),
		AppointmentTime: entity.SlotTimeLabel(a.TimeSlot),

		IsCompany:         a.IsCompany,
		Priority:          a.Priority,
		GroupBooking:      a.GroupBooking,
		BillingType:       a.BillingType,
		InsuranceProvider: a.InsuranceProvider,
		InsurancePolicy:   a.InsurancePolicy,
	}

	if doctor, ok := entity.FindDoctor(a.Department, a.DoctorID); ok {
		receipt.DoctorName = doctor.Name
	}
	if a.IsCompany {
		receipt.CompanyName = a.CompanyName
		receipt.EmployeeID = a.EmployeeID
	}
	if a.GroupBooking {
		receipt.NumberOfAttendees = a.Attendees()
	}
	if method == entity.PaymentMethodInsurance {
		receipt.InsuranceProvider = input.InsuranceProvider
		receipt.InsurancePolicy = input.InsurancePolicy
	}

	return receipt
}

// formatAppointmentDate renders YYYY-MM-DD as "Thursday, March 12, 2026"
func formatAppointmentDate(value string) string {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return date.Format("Monday, January 2, 2006")
}
