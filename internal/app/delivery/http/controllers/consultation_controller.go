package controllers

import (
	"consultorio-service/internal/app/contracts"
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/constvars"
	"consultorio-service/internal/pkg/dto/requests"
	"consultorio-service/internal/pkg/exceptions"
	"consultorio-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ConsultationController struct {
	Log                 *zap.Logger
	ConsultationUsecase contracts.ConsultationUsecase
}

var (
	consultationControllerInstance *ConsultationController
	onceConsultationController     sync.Once
)

func NewConsultationController(logger *zap.Logger, consultationUsecase contracts.ConsultationUsecase) *ConsultationController {
	onceConsultationController.Do(func() {
		instance := &ConsultationController{
			Log:                 logger,
			ConsultationUsecase: consultationUsecase,
		}
		consultationControllerInstance = instance
	})
	return consultationControllerInstance
}

func (ctrl *ConsultationController) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.CreateConsultation)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("Request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultation, err := ctrl.ConsultationUsecase.CreateConsultation(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to create consultation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ConsultationCreatedSuccess, consultation)
}

// ListConsultations answers the history for exactly one side: a
// medic_id or a patient_id query parameter, never both.
func (ctrl *ConsultationController) ListConsultations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	medicID := r.URL.Query().Get("medic_id")
	patientID := r.URL.Query().Get("patient_id")
	if (medicID == "") == (patientID == "") {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrConsultationFilterRequired(nil))
		return
	}

	filterParam := constvars.URLParamMedicID
	filterValue := medicID
	if patientID != "" {
		filterParam = constvars.URLParamPatientID
		filterValue = patientID
	}
	if err := utils.ValidateUrlParamID(filterValue); err != nil {
		ctrl.Log.Error("Invalid consultation filter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueryKey, filterParam),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, filterParam))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var consultations []models.Consultation
	var err error
	if medicID != "" {
		consultations, err = ctrl.ConsultationUsecase.ListConsultationsByMedic(ctx, medicID)
	} else {
		consultations, err = ctrl.ConsultationUsecase.ListConsultationsByPatient(ctx, patientID)
	}
	if err != nil {
		ctrl.Log.Error("Failed to list consultations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueryKey, filterParam),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationListSuccess, consultations)
}

func (ctrl *ConsultationController) GetConsultationByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)
	if err := utils.ValidateUrlParamID(consultationID); err != nil {
		ctrl.Log.Error("Invalid consultation ID in URL",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultationID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamConsultationID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultation, err := ctrl.ConsultationUsecase.GetConsultationByID(ctx, consultationID)
	if err != nil {
		ctrl.Log.Error("Failed to get consultation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultationID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationGetSuccess, consultation)
}
