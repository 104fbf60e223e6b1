package contracts

import (
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/dto/requests"
	"context"
)

type PatientSupabaseClient interface {
	LookupPatients(ctx context.Context, email, document string) ([]models.PatientSummary, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
}

type PatientUsecase interface {
	LookupPatients(ctx context.Context, request *requests.LookupPatients) ([]models.PatientSummary, error)
	GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
}
