package requests

type SignUpMedic struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"password"`
}

// SignInMedic only requires a non-empty password; the password policy
// is enforced at sign-up, not on every login attempt.
type SignInMedic struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SaveMedicProfile struct {
	Email      string `json:"email" validate:"omitempty,email"`
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	BirthDate  string `json:"birth_date" validate:"required,date"`
	Specialty  string `json:"specialty" validate:"required,specialty"`
	Consultory string `json:"consultory" validate:"required,max=50"`
}
