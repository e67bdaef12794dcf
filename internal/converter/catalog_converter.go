package converter

import (
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"
)

// DepartmentToResponse converts a department and its rates to DepartmentResponse DTO
func DepartmentToResponse(d entity.Department) dto.DepartmentResponse {
	rates := entity.PricingTable[d]
	return dto.DepartmentResponse{
		ID:   string(d),
		Name: d.DisplayName(),
		Rates: dto.RatesResponse{
			Standard:  rates.Standard,
			Priority:  rates.Priority,
			Corporate: rates.Corporate,
		},
	}
}

func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i, d := range departments {
		responses[i] = DepartmentToResponse(d)
	}
	return responses
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor entity.Doctor) dto.DoctorResponse {
	return dto.DoctorResponse{
		ID:         doctor.ID,
		Name:       doctor.Name,
		Title:      doctor.Title,
		Department: string(doctor.Department),
		Experience: doctor.Experience,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = DoctorToResponse(doctor)
	}
	return responses
}

func TimeSlotsToResponses(slots []entity.TimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.TimeSlotResponse{
			Token:    slot.Token,
			Period:   string(slot.Period),
			Hour:     slot.Hour,
			Label:    slot.Label,
			Priority: slot.Priority,
			Disabled: slot.Disabled,
		}
	}
	return responses
}

func JobOpeningsToResponses(openings []entity.JobOpening) []dto.JobOpeningResponse {
	responses := make([]dto.JobOpeningResponse, len(openings))
	for i, opening := range openings {
		responses[i] = dto.JobOpeningResponse{
			ID:         opening.ID,
			Title:      opening.Title,
			Department: string(opening.Department),
			Type:       opening.Type,
			Location:   opening.Location,
		}
	}
	return responses
}
