package entity

import "github.com/shopspring/decimal"

// Department is one of the fixed hospital departments that accept appointments
type Department string

const (
	DepartmentCardiology      Department = "cardiology"
	DepartmentNeurology       Department = "neurology"
	DepartmentPediatrics      Department = "pediatrics"
	DepartmentOrthopedics     Department = "orthopedics"
	DepartmentDermatology     Department = "dermatology"
	DepartmentOphthalmology   Department = "ophthalmology"
	DepartmentGynecology      Department = "gynecology"
	DepartmentGeneralMedicine Department = "general-medicine"
)

// Departments lists every department in display order
var Departments = []Department{
	DepartmentCardiology,
	DepartmentNeurology,
	DepartmentPediatrics,
	DepartmentOrthopedics,
	DepartmentDermatology,
	DepartmentOphthalmology,
	DepartmentGynecology,
	DepartmentGeneralMedicine,
}

var departmentNames = map[Department]string{
	DepartmentCardiology:      "Cardiology",
	DepartmentNeurology:       "Neurology",
	DepartmentPediatrics:      "Pediatrics",
	DepartmentOrthopedics:     "Orthopedics",
	DepartmentDermatology:     "Dermatology",
	DepartmentOphthalmology:   "Ophthalmology",
	DepartmentGynecology:      "Gynecology",
	DepartmentGeneralMedicine: "General Medicine",
}

// IsValid reports whether d is one of the fixed departments
func (d Department) IsValid() bool {
	_, ok := departmentNames[d]
	return ok
}

// DisplayName returns the human readable department name
func (d Department) DisplayName() string {
	if name, ok := departmentNames[d]; ok {
		return name
	}
	return string(d)
}

// PriceTier is the fee tier applied to a booking
type PriceTier string

const (
	PriceTierStandard  PriceTier = "standard"
	PriceTierPriority  PriceTier = "priority"
	PriceTierCorporate PriceTier = "corporate"
)

// Rates holds the consultation fees of a department
type Rates struct {
	Standard  decimal.Decimal `json:"standard"`
	Priority  decimal.Decimal `json:"priority"`
	Corporate decimal.Decimal `json:"corporate"`
}

// PricingTable maps every department to its consultation fees (KES)
var PricingTable = map[Department]Rates{
	DepartmentCardiology:      newRates(2500, 3500, 2000),
	DepartmentNeurology:       newRates(1800, 2800, 1500),
	DepartmentPediatrics:      newRates(1500, 2200, 1200),
	DepartmentOrthopedics:     newRates(2200, 3200, 1800),
	DepartmentDermatology:     newRates(1600, 2400, 1300),
	DepartmentOphthalmology:   newRates(1700, 2500, 1400),
	DepartmentGynecology:      newRates(2000, 3000, 1700),
	DepartmentGeneralMedicine: newRates(1000, 1500, 800),
}

func newRates(standard, priority, corporate int64) Rates {
	return Rates{
		Standard:  decimal.NewFromInt(standard),
		Priority:  decimal.NewFromInt(priority),
		Corporate: decimal.NewFromInt(corporate),
	}
}

// Tier picks the fee tier: corporate wins over priority, priority over standard
func Tier(isCompany, priority bool) PriceTier {
	switch {
	case isCompany:
		return PriceTierCorporate
	case priority:
		return PriceTierPriority
	default:
		return PriceTierStandard
	}
}

// Rate returns the fee for the given tier
func (r Rates) Rate(tier PriceTier) decimal.Decimal {
	switch tier {
	case PriceTierCorporate:
		return r.Corporate
	case PriceTierPriority:
		return r.Priority
	default:
		return r.Standard
	}
}

// BaseRate returns the per-person fee of a department. Unknown departments
// report ok=false.
func BaseRate(d Department, isCompany, priority bool) (decimal.Decimal, bool) {
	rates, ok := PricingTable[d]
	if !ok {
		return decimal.Zero, false
	}
	return rates.Rate(Tier(isCompany, priority)), true
}

// Cost computes the total fee of a booking. Group bookings are charged per
// attendee; an attendee count below one is charged as one.
func Cost(d Department, isCompany, priority, groupBooking bool, attendees int) (decimal.Decimal, bool) {
	rate, ok := BaseRate(d, isCompany, priority)
	if !ok {
		return decimal.Zero, false
	}
	if !groupBooking || attendees < 1 {
		return rate, true
	}
	return rate.Mul(decimal.NewFromInt(int64(attendees))), true
}
