package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPricingTable_CoversEveryDepartment(t *testing.T) {
	assert.Len(t, Departments, 8)
	for _, d := range Departments {
		_, ok := PricingTable[d]
		assert.True(t, ok, "missing rates for %s", d)
		assert.NotEmpty(t, DoctorsByDepartment(d), "missing doctors for %s", d)
	}
}

func TestBaseRate_Precedence(t *testing.T) {
	rates := PricingTable[DepartmentCardiology]

	tests := []struct {
		name      string
		isCompany bool
		priority  bool
		want      decimal.Decimal
	}{
		{"standard", false, false, rates.Standard},
		{"priority", false, true, rates.Priority},
		{"corporate", true, false, rates.Corporate},
		{"corporate wins over priority", true, true, rates.Corporate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BaseRate(DepartmentCardiology, tt.isCompany, tt.priority)
			assert.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestCost_GroupBookingNeurology(t *testing.T) {
	cost, ok := Cost(DepartmentNeurology, false, false, true, 4)
	assert.True(t, ok)
	assert.Equal(t, "7200", cost.String())
}

func TestCost_AttendeesIgnoredWithoutGroupBooking(t *testing.T) {
	cost, ok := Cost(DepartmentNeurology, false, false, false, 4)
	assert.True(t, ok)
	assert.Equal(t, "1800", cost.String())
}

func TestCost_UnknownDepartment(t *testing.T) {
	_, ok := Cost(Department("dentistry"), false, false, false, 1)
	assert.False(t, ok)
}

func TestFindDoctor_OnlyWithinDepartment(t *testing.T) {
	_, ok := FindDoctor(DepartmentCardiology, "card-1")
	assert.True(t, ok)

	_, ok = FindDoctor(DepartmentNeurology, "card-1")
	assert.False(t, ok)

	for _, d := range Departments {
		for _, doctor := range DoctorsByDepartment(d) {
			assert.Equal(t, d, doctor.Department)
		}
	}
}

func TestAppointmentRequest_SetDepartmentClearsDoctor(t *testing.T) {
	req := AppointmentRequest{Department: DepartmentCardiology, DoctorID: "card-1"}
	req.SetDepartment(DepartmentCardiology)
	assert.Empty(t, req.DoctorID)
	assert.Equal(t, DepartmentCardiology, req.Department)
}
