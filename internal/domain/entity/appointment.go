package entity

// BillingType describes who settles the bill
type BillingType string

const (
	BillingTypeIndividual BillingType = "individual"
	BillingTypeCompany    BillingType = "company"
	BillingTypeInsurance  BillingType = "insurance"
)

// AppointmentRequest is the booking form as the patient filled it in
type AppointmentRequest struct {
	PatientName string     `json:"patient_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Department  Department `json:"department"`
	DoctorID    string     `json:"doctor_id"`
	Date        string     `json:"date"` // Format: YYYY-MM-DD
	TimeSlot    string     `json:"time_slot"`
	Reason      string     `json:"reason"`

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

// SetDepartment switches the department and drops the doctor picked for the
// previous one
func (a *AppointmentRequest) SetDepartment(d Department) {
	a.Department = d
	a.DoctorID = ""
}

// Attendees is the number of people billed for the booking
func (a *AppointmentRequest) Attendees() int {
	if a.GroupBooking && a.NumberOfAttendees > 0 {
		return a.NumberOfAttendees
	}
	return 1
}

// PriceTier returns the fee tier the booking falls into
func (a *AppointmentRequest) PriceTier() PriceTier {
	return Tier(a.IsCompany, a.Priority)
}

// WantsPrioritySlots reports whether priority slots are offered to this booking
func (a *AppointmentRequest) WantsPrioritySlots() bool {
	return a.IsCompany || a.Priority
}
