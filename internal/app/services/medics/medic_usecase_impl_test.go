package medics

import (
	"consultorio-service/internal/app/config"
	"consultorio-service/internal/app/contracts"
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/dto/requests"
	"consultorio-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMedicSupabaseClient struct {
	signUpResult  *contracts.SignUpResult
	signInResult  *contracts.SignUpResult
	signInErr     error
	updateMatched int
	updateCalled  bool
}

func (s *stubMedicSupabaseClient) SignUp(ctx context.Context, email, password string) (*contracts.SignUpResult, error) {
	return s.signUpResult, nil
}

func (s *stubMedicSupabaseClient) SignIn(ctx context.Context, email, password string) (*contracts.SignUpResult, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return s.signInResult, nil
}

func (s *stubMedicSupabaseClient) FindMedicByEmail(ctx context.Context, email string) (*models.Medic, error) {
	return nil, nil
}

func (s *stubMedicSupabaseClient) UpdateMedicByEmail(ctx context.Context, email string, profile *models.MedicProfile) (int, error) {
	s.updateCalled = true
	return s.updateMatched, nil
}

type stubSessionService struct {
	created *models.Session
}

func (s *stubSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	s.created = session
	return nil
}

func (s *stubSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.created, nil
}

func (s *stubSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func newTestUsecase(client contracts.MedicSupabaseClient, sessions contracts.SessionService) *medicUsecase {
	return &medicUsecase{
		MedicSupabaseClient: client,
		SessionService:      sessions,
		InternalConfig: &config.InternalConfig{
			App: config.App{LoginSessionExpiredTimeInHours: 5},
			JWT: config.JWT{Secret: "test-jwt-secret", ExpTimeInHour: 5},
		},
		Log: zap.NewNop(),
	}
}

func TestMedicSignUpOpensSession(t *testing.T) {
	client := &stubMedicSupabaseClient{
		signUpResult: &contracts.SignUpResult{
			UserID: "5f1c2a34-0000-4000-8000-000000000010",
			Email:  "doc@example.com",
		},
	}
	sessions := &stubSessionService{}
	usecase := newTestUsecase(client, sessions)

	response, err := usecase.SignUp(context.Background(), &requests.SignUpMedic{
		Email:    "doc@example.com",
		Password: "Sup3r$ecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "5f1c2a34-0000-4000-8000-000000000010", response.UserID)
	assert.NotEmpty(t, response.Token)

	require.NotNil(t, sessions.created)
	assert.Equal(t, "doc@example.com", sessions.created.Email)
	assert.False(t, sessions.created.ExpiresAt.IsZero())
}

func TestMedicSignInOpensSession(t *testing.T) {
	client := &stubMedicSupabaseClient{
		signInResult: &contracts.SignUpResult{
			UserID: "5f1c2a34-0000-4000-8000-000000000010",
			Email:  "doc@example.com",
		},
	}
	sessions := &stubSessionService{}
	usecase := newTestUsecase(client, sessions)

	response, err := usecase.SignIn(context.Background(), &requests.SignInMedic{
		Email:    "doc@example.com",
		Password: "Sup3r$ecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "5f1c2a34-0000-4000-8000-000000000010", response.UserID)
	assert.NotEmpty(t, response.Token)

	require.NotNil(t, sessions.created, "a returning medic gets a fresh session")
	assert.Equal(t, "doc@example.com", sessions.created.Email)
	assert.False(t, sessions.created.ExpiresAt.IsZero())
}

func TestMedicSignInRejectedCredentials(t *testing.T) {
	client := &stubMedicSupabaseClient{signInErr: exceptions.ErrRemoteSignIn(nil)}
	sessions := &stubSessionService{}
	usecase := newTestUsecase(client, sessions)

	response, err := usecase.SignIn(context.Background(), &requests.SignInMedic{
		Email:    "doc@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Nil(t, response)
	assert.Nil(t, sessions.created, "no session opens on rejected credentials")
}

func TestSaveMedicProfile(t *testing.T) {
	profileRequest := func(email string) *requests.SaveMedicProfile {
		return &requests.SaveMedicProfile{
			Email:      email,
			FirstName:  "Carla",
			LastName:   "Mendez",
			BirthDate:  "1980-06-01",
			Specialty:  "Cardiologist",
			Consultory: "204B",
		}
	}

	t.Run("Empty email is a no-op", func(t *testing.T) {
		client := &stubMedicSupabaseClient{}
		usecase := newTestUsecase(client, &stubSessionService{})

		err := usecase.SaveMedicProfile(context.Background(), profileRequest(""))
		require.NoError(t, err)
		assert.False(t, client.updateCalled, "no remote update should be attempted")
	})

	t.Run("Zero rows matched is not an error", func(t *testing.T) {
		client := &stubMedicSupabaseClient{updateMatched: 0}
		usecase := newTestUsecase(client, &stubSessionService{})

		err := usecase.SaveMedicProfile(context.Background(), profileRequest("doc@example.com"))
		require.NoError(t, err)
		assert.True(t, client.updateCalled)
	})

	t.Run("Matched row saves cleanly", func(t *testing.T) {
		client := &stubMedicSupabaseClient{updateMatched: 1}
		usecase := newTestUsecase(client, &stubSessionService{})

		err := usecase.SaveMedicProfile(context.Background(), profileRequest("doc@example.com"))
		require.NoError(t, err)
	})
}
