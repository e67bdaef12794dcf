package entity

// Doctor is an entry in the static per-department doctor directory
type Doctor struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Title      string     `json:"title"`
	Department Department `json:"department"`
	Experience int        `json:"experience_years"`
}

var doctorDirectory = map[Department][]Doctor{
	DepartmentCardiology: {
		{ID: "card-1", Name: "Dr. Amina Wanjiru", Title: "Consultant Cardiologist", Department: DepartmentCardiology, Experience: 15},
		{ID: "card-2", Name: "Dr. Peter Otieno", Title: "Interventional Cardiologist", Department: DepartmentCardiology, Experience: 11},
	},
	DepartmentNeurology: {
		{ID: "neuro-1", Name: "Dr. Grace Muthoni", Title: "Consultant Neurologist", Department: DepartmentNeurology, Experience: 13},
		{ID: "neuro-2", Name: "Dr. Samuel Kiprop", Title: "Neurophysiologist", Department: DepartmentNeurology, Experience: 9},
	},
	DepartmentPediatrics: {
		{ID: "ped-1", Name: "Dr. Faith Achieng", Title: "Consultant Pediatrician", Department: DepartmentPediatrics, Experience: 12},
		{ID: "ped-2", Name: "Dr. Brian Mwangi", Title: "Neonatologist", Department: DepartmentPediatrics, Experience: 8},
	},
	DepartmentOrthopedics: {
		{ID: "ortho-1", Name: "Dr. David Kamau", Title: "Orthopedic Surgeon", Department: DepartmentOrthopedics, Experience: 17},
		{ID: "ortho-2", Name: "Dr. Lucy Njeri", Title: "Sports Medicine Specialist", Department: DepartmentOrthopedics, Experience: 7},
	},
	DepartmentDermatology: {
		{ID: "derm-1", Name: "Dr. Esther Chebet", Title: "Consultant Dermatologist", Department: DepartmentDermatology, Experience: 10},
		{ID: "derm-2", Name: "Dr. Kevin Ouma", Title: "Cosmetic Dermatologist", Department: DepartmentDermatology, Experience: 6},
	},
	DepartmentOphthalmology: {
		{ID: "oph-1", Name: "Dr. Joseph Mutua", Title: "Consultant Ophthalmologist", Department: DepartmentOphthalmology, Experience: 14},
		{ID: "oph-2", Name: "Dr. Mercy Wambui", Title: "Pediatric Ophthalmologist", Department: DepartmentOphthalmology, Experience: 8},
	},
	DepartmentGynecology: {
		{ID: "gyn-1", Name: "Dr. Ruth Atieno", Title: "Consultant Obstetrician & Gynecologist", Department: DepartmentGynecology, Experience: 16},
		{ID: "gyn-2", Name: "Dr. Ann Nyambura", Title: "Fertility Specialist", Department: DepartmentGynecology, Experience: 10},
	},
	DepartmentGeneralMedicine: {
		{ID: "gen-1", Name: "Dr. James Kariuki", Title: "General Physician", Department: DepartmentGeneralMedicine, Experience: 12},
		{ID: "gen-2", Name: "Dr. Sarah Akinyi", Title: "Family Medicine Physician", Department: DepartmentGeneralMedicine, Experience: 5},
	},
}

// DoctorsByDepartment returns a copy of the department's doctor list
func DoctorsByDepartment(d Department) []Doctor {
	doctors := doctorDirectory[d]
	result := make([]Doctor, len(doctors))
	copy(result, doctors)
	return result
}

// FindDoctor looks a doctor up within a department only
func FindDoctor(d Department, doctorID string) (Doctor, bool) {
	for _, doctor := range doctorDirectory[d] {
		if doctor.ID == doctorID {
			return doctor, true
		}
	}
	return Doctor{}, false
}
