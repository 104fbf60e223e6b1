package requests

// LookupPatients carries the inclusive-OR filter of the lookup endpoint.
// Either field may be empty; both empty means the lookup is skipped.
type LookupPatients struct {
	Email    string `json:"email"`
	Document string `json:"document"`
}

type CreatePatient struct {
	Email        string `json:"email" validate:"required,email"`
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	DocumentType string `json:"document_type" validate:"required,document_type"`
	Document     string `json:"document" validate:"required,max=20"`
	BirthDate    string `json:"birth_date" validate:"required,date"`
	CivilState   string `json:"civil_state" validate:"required,civil_state"`
	Sex          string `json:"sex" validate:"required,sex"`
	Gender       string `json:"gender" validate:"required,gender"`
	Address      string `json:"address" validate:"required,max=200"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	Job          string `json:"job" validate:"omitempty,max=100"`
}
