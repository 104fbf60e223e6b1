package requests

type CreateConsultation struct {
	PatientID    string `json:"patient_id" validate:"required,uuid"`
	MedicID      string `json:"medic_id" validate:"required,uuid"`
	Observations string `json:"observations" validate:"required"`
	Diagnostic   string `json:"diagnostic" validate:"required"`
	Medicine     string `json:"medicine" validate:"required"`
}
