package controllers

import (
	"consultorio-service/internal/app/contracts"
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

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	oncePatientController.Do(func() {
		instance := &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
		}
		patientControllerInstance = instance
	})
	return patientControllerInstance
}

func (ctrl *PatientController) LookupPatients(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := &requests.LookupPatients{
		Email:    r.URL.Query().Get("email"),
		Document: r.URL.Query().Get("document"),
	}
	utils.SanitizeLookupPatientsRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patients, err := ctrl.PatientUsecase.LookupPatients(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to lookup patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientLookupSuccess, patients)
}

func (ctrl *PatientController) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if err := utils.ValidateUrlParamID(patientID); err != nil {
		ctrl.Log.Error("Invalid patient ID in URL",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.GetPatientByID(ctx, patientID)
	if err != nil {
		ctrl.Log.Error("Failed to get patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
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
	if patient == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRemoteRowNotFound(nil, constvars.TablePatients))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientGetSuccess, patient)
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.CreatePatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreatePatientRequest(request)

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

	patient, err := ctrl.PatientUsecase.CreatePatient(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to create patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
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

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientCreatedSuccess, patient)
}
