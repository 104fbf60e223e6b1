package contracts

import (
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/dto/requests"
	"context"
)

type ConsultationSupabaseClient interface {
	CreateConsultation(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error)
	ListConsultationsByMedic(ctx context.Context, medicID string) ([]models.Consultation, error)
	ListConsultationsByPatient(ctx context.Context, patientID string) ([]models.Consultation, error)
	FindConsultationByID(ctx context.Context, consultationID string) (*models.Consultation, error)
}

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, request *requests.CreateConsultation) (*models.Consultation, error)
	ListConsultationsByMedic(ctx context.Context, medicID string) ([]models.Consultation, error)
	ListConsultationsByPatient(ctx context.Context, patientID string) ([]models.Consultation, error)
	GetConsultationByID(ctx context.Context, consultationID string) (*models.Consultation, error)
}
