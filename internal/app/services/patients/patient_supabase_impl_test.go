package patients

import (
	"consultorio-service/internal/app/drivers/database"
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/constvars"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(server *httptest.Server) *patientSupabaseClient {
	return &patientSupabaseClient{
		Supabase: &database.SupabaseClient{
			RestURL: server.URL + constvars.SupabaseRestPath,
			AuthURL: server.URL,
			APIKey:  "test-service-key",
			HTTP:    server.Client(),
		},
		Log: zap.NewNop(),
	}
}

func TestLookupPatients(t *testing.T) {
	t.Run("Both filters present uses OR", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			assert.Equal(t, "test-service-key", r.Header.Get(constvars.HeaderSupabaseAPIKey))
			assert.Equal(t, "Bearer test-service-key", r.Header.Get(constvars.HeaderAuthorization))
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`[{"id":"9f1c2a34-0000-4000-8000-000000000001","first_name":"Ana","last_name":"Rojas","email":"ana@example.com","document":"123456"}]`))
		}))
		defer server.Close()

		client := newTestClient(server)
		patients, err := client.LookupPatients(context.Background(), "ana@example.com", "123456")
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Equal(t, "Ana", patients[0].FirstName)
		assert.Contains(t, gotQuery, "or=")
		assert.Contains(t, gotQuery, "select="+constvars.PatientLookupColumns)
	})

	t.Run("Filter grammar in values stays literal", func(t *testing.T) {
		var gotOr string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotOr = r.URL.Query().Get("or")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.LookupPatients(context.Background(), "ana@example.com", `123,email.neq.zzz`)
		require.NoError(t, err)

		// The comma-bearing document must arrive as one quoted operand,
		// not as an extra OR condition.
		assert.Equal(t, `(email.eq."ana@example.com",document.eq."123,email.neq.zzz")`, gotOr)
	})

	t.Run("Quotes and backslashes in values are escaped", func(t *testing.T) {
		var gotOr string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotOr = r.URL.Query().Get("or")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.LookupPatients(context.Background(), "ana@example.com", `12"3\4`)
		require.NoError(t, err)
		assert.Equal(t, `(email.eq."ana@example.com",document.eq."12\"3\\4")`, gotOr)
	})

	t.Run("Only email degrades to single filter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "eq.ana@example.com", r.URL.Query().Get("email"))
			assert.Empty(t, r.URL.Query().Get("or"))
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(server)
		patients, err := client.LookupPatients(context.Background(), "ana@example.com", "")
		require.NoError(t, err)
		assert.Empty(t, patients)
	})

	t.Run("Only document degrades to single filter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "eq.123456", r.URL.Query().Get("document"))
			assert.Empty(t, r.URL.Query().Get("or"))
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.LookupPatients(context.Background(), "", "123456")
		require.NoError(t, err)
	})

	t.Run("Both empty skips the remote call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := newTestClient(server)
		patients, err := client.LookupPatients(context.Background(), "", "")
		require.NoError(t, err)
		assert.Nil(t, patients)
		assert.False(t, called, "no HTTP request should be issued")
	})

	t.Run("Remote failure surfaces an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"relation does not exist","code":"42P01"}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.LookupPatients(context.Background(), "ana@example.com", "")
		assert.Error(t, err)
	})
}

func TestFindPatientByID(t *testing.T) {
	t.Run("Found returns the row", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MIMEApplicationPgrstJSON, r.Header.Get(constvars.HeaderAccept))
			assert.Equal(t, "eq.9f1c2a34-0000-4000-8000-000000000001", r.URL.Query().Get("id"))
			w.Write([]byte(`{"id":"9f1c2a34-0000-4000-8000-000000000001","email":"ana@example.com","first_name":"Ana","last_name":"Rojas","document_type":"CC","document":"123456","birth_date":"1990-04-12","civil_state":"Single","sex":"Female","gender":"Heterosexual","address":"Calle 1","city":"Bogota","state":"Cundinamarca","phone":null,"job":null}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		patient, err := client.FindPatientByID(context.Background(), "9f1c2a34-0000-4000-8000-000000000001")
		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.Equal(t, "Ana", patient.FirstName)
		assert.Nil(t, patient.Phone)
		assert.Nil(t, patient.Job)
	})

	t.Run("No row answers nil without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotAcceptable)
			w.Write([]byte(`{"message":"JSON object requested, multiple (or no) rows returned","code":"PGRST116"}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		patient, err := client.FindPatientByID(context.Background(), "9f1c2a34-0000-4000-8000-000000000099")
		require.NoError(t, err)
		assert.Nil(t, patient)
	})
}

func TestCreatePatient(t *testing.T) {
	t.Run("Inserted row is returned", func(t *testing.T) {
		var gotBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MethodPost, r.Method)
			assert.Equal(t, constvars.PreferReturnRepresentation, r.Header.Get(constvars.HeaderPrefer))
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"id":"9f1c2a34-0000-4000-8000-000000000002","email":"luis@example.com","first_name":"Luis","last_name":"Prada","document_type":"CC","document":"654321","birth_date":"1985-01-30","civil_state":"Married","sex":"Male","gender":"Heterosexual","address":"Carrera 2","city":"Medellin","state":"Antioquia","phone":null,"job":null}]`))
		}))
		defer server.Close()

		client := newTestClient(server)
		created, err := client.CreatePatient(context.Background(), &models.Patient{
			Email:        "luis@example.com",
			FirstName:    "Luis",
			LastName:     "Prada",
			DocumentType: "CC",
			Document:     "654321",
			BirthDate:    "1985-01-30",
			CivilState:   "Married",
			Sex:          "Male",
			Gender:       "Heterosexual",
			Address:      "Carrera 2",
			City:         "Medellin",
			State:        "Antioquia",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "9f1c2a34-0000-4000-8000-000000000002", created.ID)

		// Absent optional values go over the wire as null, not missing.
		assert.Contains(t, string(gotBody), `"phone":null`)
		assert.Contains(t, string(gotBody), `"job":null`)
	})

	t.Run("Remote rejection surfaces an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"duplicate key value violates unique constraint","code":"23505"}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CreatePatient(context.Background(), &models.Patient{Email: "dup@example.com"})
		assert.Error(t, err)
	})
}
