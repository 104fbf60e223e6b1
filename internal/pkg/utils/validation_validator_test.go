package utils

import (
	"consultorio-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePatient() *requests.CreatePatient {
	return &requests.CreatePatient{
		Email:        "ana@example.com",
		FirstName:    "Ana",
		LastName:     "Rojas",
		DocumentType: "CC",
		Document:     "123456",
		BirthDate:    "1990-04-12",
		CivilState:   "Single",
		Sex:          "Female",
		Gender:       "Heterosexual",
		Address:      "Calle 1 # 2-3",
		City:         "Bogota",
		State:        "Cundinamarca",
	}
}

func TestValidateCreatePatient(t *testing.T) {
	t.Run("Valid request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validCreatePatient()))
	})

	t.Run("Optional phone and job may be empty", func(t *testing.T) {
		request := validCreatePatient()
		request.Phone = ""
		request.Job = ""
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Unknown document type", func(t *testing.T) {
		request := validCreatePatient()
		request.DocumentType = "XX"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Bad birth date format", func(t *testing.T) {
		request := validCreatePatient()
		request.BirthDate = "12/04/1990"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Unknown civil state", func(t *testing.T) {
		request := validCreatePatient()
		request.CivilState = "Complicated"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Missing email", func(t *testing.T) {
		request := validCreatePatient()
		request.Email = ""
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateSignUpMedic(t *testing.T) {
	t.Run("Valid request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.SignUpMedic{
			Email:    "doc@example.com",
			Password: "Sup3r$ecret",
		}))
	})

	t.Run("Password without uppercase", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&requests.SignUpMedic{
			Email:    "doc@example.com",
			Password: "sup3r$ecret",
		}))
	})

	t.Run("Password without special character", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&requests.SignUpMedic{
			Email:    "doc@example.com",
			Password: "Sup3rSecret",
		}))
	})

	t.Run("Password too short", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&requests.SignUpMedic{
			Email:    "doc@example.com",
			Password: "Su$3r",
		}))
	})
}

func TestValidateSaveMedicProfile(t *testing.T) {
	t.Run("Valid request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.SaveMedicProfile{
			Email:      "doc@example.com",
			FirstName:  "Carla",
			LastName:   "Mendez",
			BirthDate:  "1980-06-01",
			Specialty:  "Cardiologist",
			Consultory: "204B",
		}))
	})

	t.Run("Unknown specialty", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&requests.SaveMedicProfile{
			Email:      "doc@example.com",
			FirstName:  "Carla",
			LastName:   "Mendez",
			BirthDate:  "1980-06-01",
			Specialty:  "Alchemist",
			Consultory: "204B",
		}))
	})
}

func TestSanitization(t *testing.T) {
	t.Run("Email is lowercased and trimmed", func(t *testing.T) {
		assert.Equal(t, "ana@example.com", SanitizeEmail("  Ana@Example.COM "))
	})

	t.Run("Lookup request", func(t *testing.T) {
		request := &requests.LookupPatients{Email: " Ana@Example.com ", Document: " 123456 "}
		SanitizeLookupPatientsRequest(request)
		assert.Equal(t, "ana@example.com", request.Email)
		assert.Equal(t, "123456", request.Document)
	})
}

func TestSessionJWTRoundTrip(t *testing.T) {
	secret := "test-jwt-secret"
	sessionID := "b91c2a34-0000-4000-8000-000000000050"

	token, err := GenerateSessionJWT(sessionID, secret, 1)
	require.NoError(t, err)

	parsed, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsed)

	_, err = ParseJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestValidateUrlParamID(t *testing.T) {
	assert.NoError(t, ValidateUrlParamID("9f1c2a34-0000-4000-8000-000000000001"))
	assert.Error(t, ValidateUrlParamID(""))
	assert.Error(t, ValidateUrlParamID("not-a-uuid"))
}
