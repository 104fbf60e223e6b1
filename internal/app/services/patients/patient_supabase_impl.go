package patients

import (
	"bytes"
	"consultorio-service/internal/app/contracts"
	"consultorio-service/internal/app/drivers/database"
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/constvars"
	"consultorio-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	patientSupabaseClientInstance contracts.PatientSupabaseClient
	oncePatientSupabaseClient     sync.Once
)

type patientSupabaseClient struct {
	Supabase *database.SupabaseClient
	Log      *zap.Logger
}

func NewPatientSupabaseClient(supabase *database.SupabaseClient, logger *zap.Logger) contracts.PatientSupabaseClient {
	oncePatientSupabaseClient.Do(func() {
		client := &patientSupabaseClient{
			Supabase: supabase,
			Log:      logger,
		}
		patientSupabaseClientInstance = client
	})
	return patientSupabaseClientInstance
}

func (c *patientSupabaseClient) tableURL(query url.Values) string {
	return fmt.Sprintf("%s/%s?%s", c.Supabase.RestURL, constvars.TablePatients, query.Encode())
}

// quoteFilterOperand wraps a value for use inside a PostgREST logical
// expression. Unquoted, a comma or parenthesis in the value would be
// parsed as extra grammar and widen the filter.
func quoteFilterOperand(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// LookupPatients filters the patients table with an inclusive OR across
// the email and document columns. An empty value is excluded from the
// filter; with both values empty no remote call is made and a nil list
// is returned.
func (c *patientSupabaseClient) LookupPatients(ctx context.Context, email, document string) ([]models.PatientSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientSupabaseClient.LookupPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if email == "" && document == "" {
		c.Log.Warn("patientSupabaseClient.LookupPatients skipped, both filters empty",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	}

	query := url.Values{}
	query.Set("select", constvars.PatientLookupColumns)
	switch {
	case email != "" && document != "":
		query.Set("or", fmt.Sprintf("(email.eq.%s,document.eq.%s)", quoteFilterOperand(email), quoteFilterOperand(document)))
	case email != "":
		query.Set("email", "eq."+email)
	default:
		query.Set("document", "eq."+document)
	}

	req, err := c.Supabase.NewRequest(ctx, constvars.MethodGet, c.tableURL(query), nil)
	if err != nil {
		c.Log.Error("patientSupabaseClient.LookupPatients error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.Supabase.HTTP.Do(req)
	if err != nil {
		c.Log.Error("patientSupabaseClient.LookupPatients error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		remoteErr := database.DecodeRemoteError(resp)
		c.Log.Error("patientSupabaseClient.LookupPatients remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return nil, exceptions.ErrRemoteQuery(remoteErr, constvars.TablePatients)
	}

	patients := []models.PatientSummary{}
	if err := json.NewDecoder(resp.Body).Decode(&patients); err != nil {
		c.Log.Error("patientSupabaseClient.LookupPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.TablePatients)
	}

	c.Log.Info("patientSupabaseClient.LookupPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientSupabaseClient) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientSupabaseClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	query := url.Values{}
	query.Set("select", constvars.SelectAllColumns)
	query.Set("id", "eq."+patientID)

	req, err := c.Supabase.NewRequest(ctx, constvars.MethodGet, c.tableURL(query), nil)
	if err != nil {
		c.Log.Error("patientSupabaseClient.FindPatientByID error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationPgrstJSON)

	resp, err := c.Supabase.HTTP.Do(req)
	if err != nil {
		c.Log.Error("patientSupabaseClient.FindPatientByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	// A single-object read answers 406 when no row matched the filter.
	if resp.StatusCode == constvars.StatusNotAcceptable {
		c.Log.Warn("patientSupabaseClient.FindPatientByID no row found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		remoteErr := database.DecodeRemoteError(resp)
		c.Log.Error("patientSupabaseClient.FindPatientByID remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return nil, exceptions.ErrRemoteQuery(remoteErr, constvars.TablePatients)
	}

	patient := new(models.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patient); err != nil {
		c.Log.Error("patientSupabaseClient.FindPatientByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.TablePatients)
	}

	c.Log.Info("patientSupabaseClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientSupabaseClient) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientSupabaseClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, patient.Email),
	)

	requestJSON, err := json.Marshal(patient)
	if err != nil {
		c.Log.Error("patientSupabaseClient.CreatePatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	query := url.Values{}
	query.Set("select", constvars.SelectAllColumns)

	req, err := c.Supabase.NewRequest(ctx, constvars.MethodPost, c.tableURL(query), bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientSupabaseClient.CreatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderPrefer, constvars.PreferReturnRepresentation)

	resp, err := c.Supabase.HTTP.Do(req)
	if err != nil {
		c.Log.Error("patientSupabaseClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		remoteErr := database.DecodeRemoteError(resp)
		c.Log.Error("patientSupabaseClient.CreatePatient remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return nil, exceptions.ErrRemoteInsert(remoteErr, constvars.TablePatients)
	}

	var inserted []models.Patient
	if err := json.NewDecoder(resp.Body).Decode(&inserted); err != nil {
		c.Log.Error("patientSupabaseClient.CreatePatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.TablePatients)
	}
	if len(inserted) == 0 {
		c.Log.Error("patientSupabaseClient.CreatePatient empty representation returned",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrRemoteInsert(nil, constvars.TablePatients)
	}

	c.Log.Info("patientSupabaseClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, inserted[0].ID),
	)
	return &inserted[0], nil
}
