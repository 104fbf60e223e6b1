package constvars

// Enumerated column values mirrored from the remote schema. The remote
// service enforces them too; validating here keeps bad rows from ever
// leaving this process.

var DocumentTypes = []string{"RC", "TI", "CC", "CE", "TE", "PEP", "DIE", "PP", "CD", "DIP"}

var CivilStates = []string{"Single", "Married", "Non-Cohabitation", "Divorced", "Cohabitation", "Widowed"}

var Sexes = []string{"Male", "Female"}

var Genders = []string{"Heterosexual", "Homosexual", "Transexual", "Other"}

var Specialties = []string{
	"Cardiologist",
	"Dermatologist",
	"General Practitioner",
	"Gynecologist",
	"Neurologist",
	"Ophthalmologist",
	"Orthopedist",
	"Pediatrician",
	"Physiotherapist",
	"Psychiatrist",
}
