package middlewares

import (
	"consultorio-service/internal/app/config"
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/constvars"
	"consultorio-service/internal/pkg/exceptions"
	"consultorio-service/internal/pkg/utils"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionService struct {
	sessions map[string]*models.Session
}

func (s *stubSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	s.sessions[session.SessionID] = session
	return nil
}

func (s *stubSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	session, found := s.sessions[sessionID]
	if !found {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (s *stubSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func TestAuthenticate(t *testing.T) {
	secret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: secret, ExpTimeInHour: 1},
	}

	session := &models.Session{
		SessionID: "b91c2a34-0000-4000-8000-000000000050",
		UserID:    "5f1c2a34-0000-4000-8000-000000000010",
		Email:     "doc@example.com",
	}
	sessionService := &stubSessionService{sessions: map[string]*models.Session{
		session.SessionID: session,
	}}

	m := NewMiddlewares(zap.NewNop(), sessionService, internalConfig)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		require.True(t, ok, "session should be set in context")
		assert.Equal(t, "doc@example.com", got.Email)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT(session.SessionID, secret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/medics/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/medics/profile", nil)

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Malformed token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/medics/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT(session.SessionID, "another-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/medics/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Session gone from store", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("b91c2a34-0000-4000-8000-000000000099", secret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/medics/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{})

	t.Run("Generates an ID when absent", func(t *testing.T) {
		var gotID string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Contains(t, gotID, constvars.REQUEST_ID_PREFIX)
		assert.Equal(t, gotID, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps a client supplied ID", func(t *testing.T) {
		var gotID string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-supplied-id", gotID)
	})
}
