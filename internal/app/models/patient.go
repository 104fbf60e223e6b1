package models

// Patient mirrors a row of the remote patients table. Phone and Job are
// pointers so an absent value round-trips as SQL null instead of being
// omitted from the payload.
type Patient struct {
	ID           string  `json:"id,omitempty"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	DocumentType string  `json:"document_type"`
	Document     string  `json:"document"`
	BirthDate    string  `json:"birth_date"`
	CivilState   string  `json:"civil_state"`
	Sex          string  `json:"sex"`
	Gender       string  `json:"gender"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Phone        *string `json:"phone"`
	Job          *string `json:"job"`
}

// PatientSummary is the projection returned by the lookup query.
type PatientSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Document  string `json:"document"`
}
