package medics

import (
	"consultorio-service/internal/app/config"
	"consultorio-service/internal/app/contracts"
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/constvars"
	"consultorio-service/internal/pkg/dto/requests"
	"consultorio-service/internal/pkg/dto/responses"
	"consultorio-service/internal/pkg/exceptions"
	"consultorio-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	medicUsecaseInstance contracts.MedicUsecase
	onceMedicUsecase     sync.Once
)

type medicUsecase struct {
	MedicSupabaseClient contracts.MedicSupabaseClient
	SessionService      contracts.SessionService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewMedicUsecase(
	medicSupabaseClient contracts.MedicSupabaseClient,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MedicUsecase {
	onceMedicUsecase.Do(func() {
		usecase := &medicUsecase{
			MedicSupabaseClient: medicSupabaseClient,
			SessionService:      sessionService,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
		medicUsecaseInstance = usecase
	})
	return medicUsecaseInstance
}

// SignUp registers the account remotely, opens a redis-backed session
// and hands back a session JWT.
func (u *medicUsecase) SignUp(ctx context.Context, request *requests.SignUpMedic) (*responses.SignUpMedic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("medicUsecase.SignUp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	result, err := u.MedicSupabaseClient.SignUp(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    result.UserID,
		Email:     result.Email,
		ExpiresAt: time.Now().Add(time.Duration(u.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour),
	}
	if err := u.SessionService.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, u.InternalConfig.JWT.Secret, u.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		u.Log.Error("medicUsecase.SignUp error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	u.Log.Info("medicUsecase.SignUp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.UserID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.SignUpMedic{
		UserID: result.UserID,
		Email:  result.Email,
		Token:  token,
	}, nil
}

// SignIn verifies the credentials remotely and opens a fresh session
// the same way SignUp does, so a logged-out medic can return.
func (u *medicUsecase) SignIn(ctx context.Context, request *requests.SignInMedic) (*responses.SignInMedic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("medicUsecase.SignIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	result, err := u.MedicSupabaseClient.SignIn(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    result.UserID,
		Email:     result.Email,
		ExpiresAt: time.Now().Add(time.Duration(u.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour),
	}
	if err := u.SessionService.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, u.InternalConfig.JWT.Secret, u.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		u.Log.Error("medicUsecase.SignIn error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	u.Log.Info("medicUsecase.SignIn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.UserID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.SignInMedic{
		UserID: result.UserID,
		Email:  result.Email,
		Token:  token,
	}, nil
}

func (u *medicUsecase) GetMedicByEmail(ctx context.Context, email string) (*models.Medic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("medicUsecase.GetMedicByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	return u.MedicSupabaseClient.FindMedicByEmail(ctx, utils.SanitizeEmail(email))
}

// SaveMedicProfile updates the profile columns of the row keyed by the
// session email. A blank email or a filter matching no rows is a no-op,
// not a failure.
func (u *medicUsecase) SaveMedicProfile(ctx context.Context, request *requests.SaveMedicProfile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("medicUsecase.SaveMedicProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	if request.Email == "" {
		u.Log.Warn("medicUsecase.SaveMedicProfile skipped, no email on session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	profile := &models.MedicProfile{
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		BirthDate:  request.BirthDate,
		Specialty:  request.Specialty,
		Consultory: request.Consultory,
	}
	matched, err := u.MedicSupabaseClient.UpdateMedicByEmail(ctx, request.Email, profile)
	if err != nil {
		return err
	}
	if matched == 0 {
		u.Log.Warn("medicUsecase.SaveMedicProfile no update required",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
	}
	return nil
}

func (u *medicUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("medicUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	return u.SessionService.DeleteSession(ctx, sessionID)
}
