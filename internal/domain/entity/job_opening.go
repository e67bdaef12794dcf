package entity

// JobOpening is a vacancy listed on the careers page
type JobOpening struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Department Department `json:"department,omitempty"`
	Type       string     `json:"type"`
	Location   string     `json:"location"`
}

var jobOpenings = []JobOpening{
	{ID: "rn-icu", Title: "Registered Nurse - ICU", Department: DepartmentCardiology, Type: "Full-time", Location: "Nairobi"},
	{ID: "peds-mo", Title: "Medical Officer - Pediatrics", Department: DepartmentPediatrics, Type: "Full-time", Location: "Nairobi"},
	{ID: "radiographer", Title: "Radiographer", Type: "Full-time", Location: "Nairobi"},
	{ID: "physio", Title: "Physiotherapist", Department: DepartmentOrthopedics, Type: "Part-time", Location: "Mombasa"},
	{ID: "front-desk", Title: "Patient Services Officer", Type: "Contract", Location: "Nairobi"},
}

// JobOpenings returns a copy of the current vacancies
func JobOpenings() []JobOpening {
	result := make([]JobOpening, len(jobOpenings))
	copy(result, jobOpenings)
	return result
}

// FindJobOpening looks a vacancy up by id
func FindJobOpening(id string) (JobOpening, bool) {
	for _, opening := range jobOpenings {
		if opening.ID == id {
			return opening, true
		}
	}
	return JobOpening{}, false
}
