package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient messages
	PatientLookupSuccess  = "patient lookup completed successfully"
	PatientGetSuccess     = "get patient successfully"
	PatientCreatedSuccess = "patient created successfully"

	// Medic messages
	MedicSignUpSuccess     = "medic signed up successfully"
	MedicSignInSuccess     = "medic signed in successfully"
	MedicProfileGetSuccess = "get medic profile successfully"
	MedicProfileSaved      = "medic profile saved successfully"
	MedicLogoutSuccess     = "logged out successfully"

	// Consultation messages
	ConsultationCreatedSuccess = "consultation created successfully"
	ConsultationListSuccess    = "consultations listed successfully"
	ConsultationGetSuccess     = "get consultation successfully"
)
