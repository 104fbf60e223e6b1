package medics

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
	medicSupabaseClientInstance contracts.MedicSupabaseClient
	onceMedicSupabaseClient     sync.Once
)

type medicSupabaseClient struct {
	Supabase *database.SupabaseClient
	Log      *zap.Logger
}

func NewMedicSupabaseClient(supabase *database.SupabaseClient, logger *zap.Logger) contracts.MedicSupabaseClient {
	onceMedicSupabaseClient.Do(func() {
		client := &medicSupabaseClient{
			Supabase: supabase,
			Log:      logger,
		}
		medicSupabaseClientInstance = client
	})
	return medicSupabaseClientInstance
}

func (c *medicSupabaseClient) tableURL(query url.Values) string {
	return fmt.Sprintf("%s/%s?%s", c.Supabase.RestURL, constvars.TableMedics, query.Encode())
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	User  *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SignUp registers the account against the remote auth endpoint. The
// provider answers with the user at the top level or nested under
// "user" depending on the confirmation flow, so both shapes are read.
func (c *medicSupabaseClient) SignUp(ctx context.Context, email, password string) (*contracts.SignUpResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicSupabaseClient.SignUp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	requestJSON, err := json.Marshal(signUpRequest{Email: email, Password: password})
	if err != nil {
		c.Log.Error("medicSupabaseClient.SignUp error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := c.Supabase.NewRequest(ctx, constvars.MethodPost, c.Supabase.AuthURL+constvars.SupabaseSignUpPath, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("medicSupabaseClient.SignUp error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.Supabase.HTTP.Do(req)
	if err != nil {
		c.Log.Error("medicSupabaseClient.SignUp error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		remoteErr := database.DecodeRemoteError(resp)
		c.Log.Error("medicSupabaseClient.SignUp remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(remoteErr),
		)
		return nil, exceptions.ErrRemoteSignUp(remoteErr)
	}

	payload := new(signUpResponse)
	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		c.Log.Error("medicSupabaseClient.SignUp error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "auth")
	}

	result := &contracts.SignUpResult{UserID: payload.ID, Email: payload.Email}
	if payload.User != nil {
		result.UserID = payload.User.ID
		result.Email = payload.User.Email
	}
	if result.UserID == "" {
		c.Log.Error("medicSupabaseClient.SignUp response missing user ID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrRemoteSignUp(nil)
	}

	c.Log.Info("medicSupabaseClient.SignUp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.UserID),
	)
	return result, nil
}

type signInResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SignIn exchanges the credentials for the account identity via the
// password grant. The provider's own access token is not kept; this
// service issues its own session JWT.
func (c *medicSupabaseClient) SignIn(ctx context.Context, email, password string) (*contracts.SignUpResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicSupabaseClient.SignIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	requestJSON, err := json.Marshal(signUpRequest{Email: email, Password: password})
	if err != nil {
		c.Log.Error("medicSupabaseClient.SignIn error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := c.Supabase.NewRequest(ctx, constvars.MethodPost, c.Supabase.AuthURL+constvars.SupabaseSignInPath, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("medicSupabaseClient.SignIn error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.Supabase.HTTP.Do(req)
	if err != nil {
		c.Log.Error("medicSupabaseClient.SignIn error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		remoteErr := database.DecodeRemoteError(resp)
		c.Log.Warn("medicSupabaseClient.SignIn credentials rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(remoteErr),
		)
		return nil, exceptions.ErrRemoteSignIn(remoteErr)
	}

	payload := new(signInResponse)
	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		c.Log.Error("medicSupabaseClient.SignIn error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "auth")
	}
	if payload.User.ID == "" {
		c.Log.Error("medicSupabaseClient.SignIn response missing user ID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrRemoteSignIn(nil)
	}

	c.Log.Info("medicSupabaseClient.SignIn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, payload.User.ID),
	)
	return &contracts.SignUpResult{UserID: payload.User.ID, Email: payload.User.Email}, nil
}

// FindMedicByEmail reads the single medic row keyed by the account
// email. An empty email resolves to no row without a remote call.
func (c *medicSupabaseClient) FindMedicByEmail(ctx context.Context, email string) (*models.Medic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicSupabaseClient.FindMedicByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	if email == "" {
		return nil, nil
	}

	query := url.Values{}
	query.Set("select", constvars.SelectAllColumns)
	query.Set("email", "eq."+email)

	req, err := c.Supabase.NewRequest(ctx, constvars.MethodGet, c.tableURL(query), nil)
	if err != nil {
		c.Log.Error("medicSupabaseClient.FindMedicByEmail error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationPgrstJSON)

	resp, err := c.Supabase.HTTP.Do(req)
	if err != nil {
		c.Log.Error("medicSupabaseClient.FindMedicByEmail error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotAcceptable {
		c.Log.Warn("medicSupabaseClient.FindMedicByEmail no row found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
		)
		return nil, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		remoteErr := database.DecodeRemoteError(resp)
		c.Log.Error("medicSupabaseClient.FindMedicByEmail remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return nil, exceptions.ErrRemoteQuery(remoteErr, constvars.TableMedics)
	}

	medic := new(models.Medic)
	if err := json.NewDecoder(resp.Body).Decode(medic); err != nil {
		c.Log.Error("medicSupabaseClient.FindMedicByEmail error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.TableMedics)
	}

	c.Log.Info("medicSupabaseClient.FindMedicByEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicIDKey, medic.ID),
	)
	return medic, nil
}

// UpdateMedicByEmail patches the profile columns of the row keyed by
// email and reports how many rows the filter matched.
func (c *medicSupabaseClient) UpdateMedicByEmail(ctx context.Context, email string, profile *models.MedicProfile) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicSupabaseClient.UpdateMedicByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	requestJSON, err := json.Marshal(profile)
	if err != nil {
		c.Log.Error("medicSupabaseClient.UpdateMedicByEmail error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	query := url.Values{}
	query.Set("email", "eq."+email)

	req, err := c.Supabase.NewRequest(ctx, constvars.MethodPatch, c.tableURL(query), bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("medicSupabaseClient.UpdateMedicByEmail error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderPrefer, constvars.PreferReturnRepresentation)

	resp, err := c.Supabase.HTTP.Do(req)
	if err != nil {
		c.Log.Error("medicSupabaseClient.UpdateMedicByEmail error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		remoteErr := database.DecodeRemoteError(resp)
		c.Log.Error("medicSupabaseClient.UpdateMedicByEmail remote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(remoteErr),
		)
		return 0, exceptions.ErrRemoteUpdate(remoteErr, constvars.TableMedics)
	}

	var updated []models.Medic
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		c.Log.Error("medicSupabaseClient.UpdateMedicByEmail error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrDecodeResponse(err, constvars.TableMedics)
	}

	c.Log.Info("medicSupabaseClient.UpdateMedicByEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowCountKey, len(updated)),
	)
	return len(updated), nil
}
