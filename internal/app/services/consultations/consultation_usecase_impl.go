package consultations

import (
	"consultorio-service/internal/app/contracts"
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/constvars"
	"consultorio-service/internal/pkg/dto/requests"
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	consultationUsecaseInstance contracts.ConsultationUsecase
	onceConsultationUsecase     sync.Once
)

type consultationUsecase struct {
	ConsultationSupabaseClient contracts.ConsultationSupabaseClient
	Log                        *zap.Logger
}

func NewConsultationUsecase(consultationSupabaseClient contracts.ConsultationSupabaseClient, logger *zap.Logger) contracts.ConsultationUsecase {
	onceConsultationUsecase.Do(func() {
		usecase := &consultationUsecase{
			ConsultationSupabaseClient: consultationSupabaseClient,
			Log:                        logger,
		}
		consultationUsecaseInstance = usecase
	})
	return consultationUsecaseInstance
}

func (u *consultationUsecase) CreateConsultation(ctx context.Context, request *requests.CreateConsultation) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("consultationUsecase.CreateConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingMedicIDKey, request.MedicID),
	)

	consultation := &models.Consultation{
		PatientID:    request.PatientID,
		MedicID:      request.MedicID,
		Observations: request.Observations,
		Diagnostic:   request.Diagnostic,
		Medicine:     request.Medicine,
	}
	return u.ConsultationSupabaseClient.CreateConsultation(ctx, consultation)
}

func (u *consultationUsecase) ListConsultationsByMedic(ctx context.Context, medicID string) ([]models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("consultationUsecase.ListConsultationsByMedic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicIDKey, medicID),
	)

	consultations, err := u.ConsultationSupabaseClient.ListConsultationsByMedic(ctx, medicID)
	if err != nil {
		return nil, err
	}
	if consultations == nil {
		consultations = []models.Consultation{}
	}
	return consultations, nil
}

func (u *consultationUsecase) ListConsultationsByPatient(ctx context.Context, patientID string) ([]models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("consultationUsecase.ListConsultationsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	consultations, err := u.ConsultationSupabaseClient.ListConsultationsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if consultations == nil {
		consultations = []models.Consultation{}
	}
	return consultations, nil
}

func (u *consultationUsecase) GetConsultationByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("consultationUsecase.GetConsultationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	return u.ConsultationSupabaseClient.FindConsultationByID(ctx, consultationID)
}
