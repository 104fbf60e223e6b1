package consultations

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
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	consultationSupabaseClientInstance contracts.ConsultationSupabaseClient
	onceConsultationSupabaseClient     sync.Once
)

type consultationSupabaseClient struct {
	Supabase *database.SupabaseClient
	Log      *zap.Logger
}

func NewConsultationSupabaseClient(supabase *database.SupabaseClient, logger *zap.Logger) contracts.ConsultationSupabaseClient {
	onceConsultationSupabaseClient.Do(func() {
		client := &consultationSupabaseClient{
			Supabase: supabase,
			Log:      logger,
		}
		consultationSupabaseClientInstance = client
	})
	return consultationSupabaseClientInstance
}

func (c *consultationSupabaseClient) tableURL(query url.Values) string {
	return fmt.Sprintf("%s/%s?%s", c.Supabase.RestURL, constvars.TableConsultations, query.Encode())
}

func (c *consultationSupabaseClient) CreateConsultation(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("consultationSupabaseClient.CreateConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, consultation.PatientID),
		zap.String(constvars.LoggingMedicIDKey, consultation.MedicID),
	)

	requestJSON, err := json.Marshal(consultation)
	if err != nil {
		c.Log.Error("consultationSupabaseClient.CreateConsultation error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	query := url.Values{}
	query.Set("select", constvars.SelectAllColumns)

	req, err := c.Supabase.NewRequest(ctx, constvars.MethodPost, c.tableURL(query), bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("consultationSupabaseClient.CreateConsultation error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderPrefer, constvars.PreferReturnRepresentation)

	resp, err := c.Supabase.HTTP.Do(req)
	if err != nil {
		c.Log.Error("consultationSupabaseClient.CreateConsultation error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		remoteErr := database.DecodeRemoteError(resp)
		c.Log.Error("consultationSupabaseClient.CreateConsultation remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return nil, exceptions.ErrRemoteInsert(remoteErr, constvars.TableConsultations)
	}

	var inserted []models.Consultation
	if err := json.NewDecoder(resp.Body).Decode(&inserted); err != nil {
		c.Log.Error("consultationSupabaseClient.CreateConsultation error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.TableConsultations)
	}
	if len(inserted) == 0 {
		c.Log.Error("consultationSupabaseClient.CreateConsultation empty representation returned",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrRemoteInsert(nil, constvars.TableConsultations)
	}

	c.Log.Info("consultationSupabaseClient.CreateConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, inserted[0].ID),
	)
	return &inserted[0], nil
}

func (c *consultationSupabaseClient) ListConsultationsByMedic(ctx context.Context, medicID string) ([]models.Consultation, error) {
	return c.listByColumn(ctx, "medic_id", medicID)
}

func (c *consultationSupabaseClient) ListConsultationsByPatient(ctx context.Context, patientID string) ([]models.Consultation, error) {
	return c.listByColumn(ctx, "patient_id", patientID)
}

// listByColumn reads the history for one side of the consultation,
// newest first.
func (c *consultationSupabaseClient) listByColumn(ctx context.Context, column, value string) ([]models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("consultationSupabaseClient.listByColumn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, column),
	)

	query := url.Values{}
	query.Set("select", constvars.SelectAllColumns)
	query.Set(column, "eq."+value)
	query.Set("order", constvars.ConsultationListOrder)

	req, err := c.Supabase.NewRequest(ctx, constvars.MethodGet, c.tableURL(query), nil)
	if err != nil {
		c.Log.Error("consultationSupabaseClient.listByColumn error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.Supabase.HTTP.Do(req)
	if err != nil {
		c.Log.Error("consultationSupabaseClient.listByColumn error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		remoteErr := database.DecodeRemoteError(resp)
		c.Log.Error("consultationSupabaseClient.listByColumn remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return nil, exceptions.ErrRemoteQuery(remoteErr, constvars.TableConsultations)
	}

	consultations := []models.Consultation{}
	if err := json.NewDecoder(resp.Body).Decode(&consultations); err != nil {
		c.Log.Error("consultationSupabaseClient.listByColumn error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.TableConsultations)
	}

	c.Log.Info("consultationSupabaseClient.listByColumn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowCountKey, len(consultations)),
	)
	return consultations, nil
}

// FindConsultationByID errors when no row matches; a consultation is
// only ever requested by an ID the service handed out.
func (c *consultationSupabaseClient) FindConsultationByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("consultationSupabaseClient.FindConsultationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	query := url.Values{}
	query.Set("select", constvars.SelectAllColumns)
	query.Set("id", "eq."+consultationID)

	req, err := c.Supabase.NewRequest(ctx, constvars.MethodGet, c.tableURL(query), nil)
	if err != nil {
		c.Log.Error("consultationSupabaseClient.FindConsultationByID error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationPgrstJSON)

	resp, err := c.Supabase.HTTP.Do(req)
	if err != nil {
		c.Log.Error("consultationSupabaseClient.FindConsultationByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotAcceptable {
		c.Log.Error("consultationSupabaseClient.FindConsultationByID no row found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultationID),
		)
		return nil, exceptions.ErrRemoteRowNotFound(nil, constvars.TableConsultations)
	}
	if resp.StatusCode != constvars.StatusOK {
		remoteErr := database.DecodeRemoteError(resp)
		c.Log.Error("consultationSupabaseClient.FindConsultationByID remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return nil, exceptions.ErrRemoteQuery(remoteErr, constvars.TableConsultations)
	}

	consultation := new(models.Consultation)
	if err := json.NewDecoder(resp.Body).Decode(consultation); err != nil {
		c.Log.Error("consultationSupabaseClient.FindConsultationByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.TableConsultations)
	}

	c.Log.Info("consultationSupabaseClient.FindConsultationByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultation.ID),
	)
	return consultation, nil
}
