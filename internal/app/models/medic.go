package models

// Medic mirrors a row of the remote medics table. Exactly one row exists
// per account email.
type Medic struct {
	ID         string `json:"id,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	BirthDate  string `json:"birth_date"`
	Specialty  string `json:"specialty"`
	Consultory string `json:"consultory"`
}

// MedicProfile carries the columns a profile save is allowed to touch.
// ID and UserID must never appear in an update payload.
type MedicProfile struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	BirthDate  string `json:"birth_date"`
	Specialty  string `json:"specialty"`
	Consultory string `json:"consultory"`
}
