package models

// Consultation is an append-only record; no update or delete exists.
type Consultation struct {
	ID           string `json:"id,omitempty"`
	PatientID    string `json:"patient_id"`
	MedicID      string `json:"medic_id"`
	Observations string `json:"observations"`
	Diagnostic   string `json:"diagnostic"`
	Medicine     string `json:"medicine"`
	CreatedAt    string `json:"created_at,omitempty"`
}
