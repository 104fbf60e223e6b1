package constvars

const (
	TablePatients      = "patients"
	TableMedics        = "medics"
	TableConsultations = "consultations"
)

const (
	SupabaseRestPath   = "/rest/v1"
	SupabaseSignUpPath = "/auth/v1/signup"
	SupabaseSignInPath = "/auth/v1/token?grant_type=password"
)

const (
	HeaderSupabaseAPIKey = "apikey"
	HeaderPrefer         = "Prefer"

	PreferReturnRepresentation = "return=representation"
)

// Column list the patient lookup projects, matching the summary row the
// lookup page renders.
const PatientLookupColumns = "id,first_name,last_name,email,document"

const SelectAllColumns = "*"

// Consultation history reads newest first.
const ConsultationListOrder = "created_at.desc"
