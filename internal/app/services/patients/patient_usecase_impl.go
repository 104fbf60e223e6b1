package patients

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
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientSupabaseClient contracts.PatientSupabaseClient
	Log                   *zap.Logger
}

func NewPatientUsecase(patientSupabaseClient contracts.PatientSupabaseClient, logger *zap.Logger) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		usecase := &patientUsecase{
			PatientSupabaseClient: patientSupabaseClient,
			Log:                   logger,
		}
		patientUsecaseInstance = usecase
	})
	return patientUsecaseInstance
}

func (u *patientUsecase) LookupPatients(ctx context.Context, request *requests.LookupPatients) ([]models.PatientSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("patientUsecase.LookupPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := u.PatientSupabaseClient.LookupPatients(ctx, request.Email, request.Document)
	if err != nil {
		return nil, err
	}
	// An empty result is a valid answer, never a failure.
	if patients == nil {
		patients = []models.PatientSummary{}
	}
	return patients, nil
}

func (u *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("patientUsecase.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	return u.PatientSupabaseClient.FindPatientByID(ctx, patientID)
}

func (u *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	patient := &models.Patient{
		Email:        request.Email,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		DocumentType: request.DocumentType,
		Document:     request.Document,
		BirthDate:    request.BirthDate,
		CivilState:   request.CivilState,
		Sex:          request.Sex,
		Gender:       request.Gender,
		Address:      request.Address,
		City:         request.City,
		State:        request.State,
		Phone:        optionalColumn(request.Phone),
		Job:          optionalColumn(request.Job),
	}
	return u.PatientSupabaseClient.CreatePatient(ctx, patient)
}

// optionalColumn maps an empty form value to SQL null.
func optionalColumn(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
