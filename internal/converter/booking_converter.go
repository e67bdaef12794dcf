package converter

import (
	"strings"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"
)

// SubmitRequestToAppointment converts the submitted form to an AppointmentRequest entity.
// Values are carried exactly as typed.
func SubmitRequestToAppointment(req *dto.SubmitBookingRequest) entity.AppointmentRequest {
	return entity.AppointmentRequest{
		PatientName:       req.PatientName,
		Email:             req.Email,
		Phone:             req.Phone,
		Department:        entity.Department(req.Department),
		DoctorID:          req.DoctorID,
		Date:              req.Date,
		TimeSlot:          req.TimeSlot,
		Reason:            req.Reason,
		IsCompany:         req.IsCompany,
		CompanyName:       req.CompanyName,
		EmployeeID:        req.EmployeeID,
		Priority:          req.Priority,
		GroupBooking:      req.GroupBooking,
		NumberOfAttendees: req.NumberOfAttendees,
		BillingType:       entity.BillingType(req.BillingType),
		InsuranceProvider: req.InsuranceProvider,
		InsurancePolicy:   req.InsurancePolicy,
	}
}

// PaymentRequestToInput converts the payment form to a PaymentInput
func PaymentRequestToInput(req *dto.SubmitPaymentRequest) entity.PaymentInput {
	return entity.PaymentInput{
		CardNumber:        req.CardNumber,
		CardName:          req.CardName,
		CardExpiry:        strings.TrimSpace(req.CardExpiry),
		CardCVV:           strings.TrimSpace(req.CardCVV),
		MobileNumber:      req.MobileNumber,
		MobileProvider:    req.MobileProvider,
		BankReference:     req.BankReference,
		InsuranceProvider: req.InsuranceProvider,
		InsurancePolicy:   req.InsurancePolicy,
		InsuranceMember:   req.InsuranceMember,
	}
}

// AppointmentToResponse converts an AppointmentRequest entity to AppointmentResponse DTO
func AppointmentToResponse(a entity.AppointmentRequest) dto.AppointmentResponse {
	response := dto.AppointmentResponse{
		PatientName:       a.PatientName,
		Email:             a.Email,
		Phone:             a.Phone,
		Department:        string(a.Department),
		DoctorID:          a.DoctorID,
		Date:              a.Date,
		TimeSlot:          a.TimeSlot,
		Reason:            a.Reason,
		IsCompany:         a.IsCompany,
		CompanyName:       a.CompanyName,
		EmployeeID:        a.EmployeeID,
		Priority:          a.Priority,
		GroupBooking:      a.GroupBooking,
		NumberOfAttendees: a.NumberOfAttendees,
		BillingType:       string(a.BillingType),
		InsuranceProvider: a.InsuranceProvider,
		InsurancePolicy:   a.InsurancePolicy,
	}

	if doctor, ok := entity.FindDoctor(a.Department, a.DoctorID); ok {
		response.DoctorName = doctor.Name
	}

	return response
}

// BookingSessionToResponse converts a BookingSession entity to BookingSessionResponse DTO
func BookingSessionToResponse(session *entity.BookingSession) *dto.BookingSessionResponse {
	if session == nil {
		return nil
	}

	response := &dto.BookingSessionResponse{
		ID:          session.ID,
		Step:        string(session.Step),
		Appointment: AppointmentToResponse(session.Appointment),
		Amount:      session.Amount,
		CreatedAt:   session.CreatedAt,
		UpdatedAt:   session.UpdatedAt,
	}

	if session.Payment != nil {
		response.Payment = &dto.PaymentAttemptResponse{
			Method:  string(session.Payment.Method),
			Status:  string(session.Payment.Status),
			Message: session.Payment.Message,
		}
	}

	// Include confirmation details once the payment completed
	if session.Receipt != nil {
		response.Confirmation = &dto.ConfirmationResponse{
			TransactionID:   session.Receipt.TransactionID,
			PaymentMethod:   session.Receipt.PaymentMethod.DisplayName(),
			PaymentDate:     session.Receipt.PaymentDate,
			Amount:          session.Receipt.Amount,
			Service:         session.Receipt.Service,
			DoctorName:      session.Receipt.DoctorName,
			AppointmentDate: session.Receipt.AppointmentDate,
			AppointmentTime: session.Receipt.AppointmentTime,
		}
	}

	return response
}
