package utils

import (
	"consultorio-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeLookupPatientsRequest(request *requests.LookupPatients) {
	request.Email = SanitizeEmail(request.Email)
	request.Document = strings.TrimSpace(request.Document)
}

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.Email = SanitizeEmail(request.Email)
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Document = strings.TrimSpace(request.Document)
	request.Address = strings.TrimSpace(request.Address)
	request.City = strings.TrimSpace(request.City)
	request.State = strings.TrimSpace(request.State)
	request.Phone = strings.TrimSpace(request.Phone)
	request.Job = strings.TrimSpace(request.Job)
}

func SanitizeSignUpMedicRequest(request *requests.SignUpMedic) {
	request.Email = SanitizeEmail(request.Email)
}

func SanitizeSignInMedicRequest(request *requests.SignInMedic) {
	request.Email = SanitizeEmail(request.Email)
}

func SanitizeSaveMedicProfileRequest(request *requests.SaveMedicProfile) {
	request.Email = SanitizeEmail(request.Email)
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Consultory = strings.TrimSpace(request.Consultory)
}
