package consultations

import (
	"consultorio-service/internal/app/drivers/database"
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/constvars"
	"consultorio-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(server *httptest.Server) *consultationSupabaseClient {
	return &consultationSupabaseClient{
		Supabase: &database.SupabaseClient{
			RestURL: server.URL + constvars.SupabaseRestPath,
			AuthURL: server.URL,
			APIKey:  "test-service-key",
			HTTP:    server.Client(),
		},
		Log: zap.NewNop(),
	}
}

func TestCreateConsultation(t *testing.T) {
	t.Run("Inserted row is returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MethodPost, r.Method)
			assert.Equal(t, constvars.PreferReturnRepresentation, r.Header.Get(constvars.HeaderPrefer))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"id":"7f1c2a34-0000-4000-8000-000000000030","patient_id":"9f1c2a34-0000-4000-8000-000000000001","medic_id":"5f1c2a34-0000-4000-8000-000000000020","observations":"headache","diagnostic":"migraine","medicine":"ibuprofen","created_at":"2026-09-01T10:00:00Z"}]`))
		}))
		defer server.Close()

		client := newTestClient(server)
		created, err := client.CreateConsultation(context.Background(), &models.Consultation{
			PatientID:    "9f1c2a34-0000-4000-8000-000000000001",
			MedicID:      "5f1c2a34-0000-4000-8000-000000000020",
			Observations: "headache",
			Diagnostic:   "migraine",
			Medicine:     "ibuprofen",
		})
		require.NoError(t, err)
		assert.Equal(t, "7f1c2a34-0000-4000-8000-000000000030", created.ID)
		assert.NotEmpty(t, created.CreatedAt)
	})

	t.Run("Remote rejection surfaces an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"insert or update violates foreign key constraint","code":"23503"}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CreateConsultation(context.Background(), &models.Consultation{})
		assert.Error(t, err)
	})
}

func TestListConsultations(t *testing.T) {
	t.Run("By medic orders newest first", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "eq.5f1c2a34-0000-4000-8000-000000000020", r.URL.Query().Get("medic_id"))
			assert.Equal(t, constvars.ConsultationListOrder, r.URL.Query().Get("order"))
			w.Write([]byte(`[{"id":"7f1c2a34-0000-4000-8000-000000000031"},{"id":"7f1c2a34-0000-4000-8000-000000000030"}]`))
		}))
		defer server.Close()

		client := newTestClient(server)
		consultations, err := client.ListConsultationsByMedic(context.Background(), "5f1c2a34-0000-4000-8000-000000000020")
		require.NoError(t, err)
		assert.Len(t, consultations, 2)
	})

	t.Run("By patient with empty history", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "eq.9f1c2a34-0000-4000-8000-000000000001", r.URL.Query().Get("patient_id"))
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(server)
		consultations, err := client.ListConsultationsByPatient(context.Background(), "9f1c2a34-0000-4000-8000-000000000001")
		require.NoError(t, err)
		assert.Empty(t, consultations)
	})
}

func TestFindConsultationByID(t *testing.T) {
	t.Run("Found returns the row", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MIMEApplicationPgrstJSON, r.Header.Get(constvars.HeaderAccept))
			w.Write([]byte(`{"id":"7f1c2a34-0000-4000-8000-000000000030","patient_id":"9f1c2a34-0000-4000-8000-000000000001","medic_id":"5f1c2a34-0000-4000-8000-000000000020","observations":"headache","diagnostic":"migraine","medicine":"ibuprofen","created_at":"2026-09-01T10:00:00Z"}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		consultation, err := client.FindConsultationByID(context.Background(), "7f1c2a34-0000-4000-8000-000000000030")
		require.NoError(t, err)
		assert.Equal(t, "migraine", consultation.Diagnostic)
	})

	t.Run("No row is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotAcceptable)
			w.Write([]byte(`{"message":"JSON object requested, multiple (or no) rows returned","code":"PGRST116"}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.FindConsultationByID(context.Background(), "7f1c2a34-0000-4000-8000-000000000099")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
