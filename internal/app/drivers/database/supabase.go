package database

import (
	"consultorio-service/internal/app/config"
	"consultorio-service/internal/pkg/constvars"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// SupabaseClient is the handle every data service issues its remote
// calls through. Construction is a pure factory over the two configured
// values; nothing is validated here and no connection is opened, so a
// missing or bad key only surfaces on the first query.
type SupabaseClient struct {
	RestURL string
	AuthURL string
	APIKey  string
	HTTP    *http.Client
}

func NewSupabaseClient(driverConfig *config.DriverConfig) *SupabaseClient {
	baseURL := strings.TrimRight(driverConfig.Supabase.URL, "/")
	return &SupabaseClient{
		RestURL: baseURL + constvars.SupabaseRestPath,
		AuthURL: baseURL,
		APIKey:  driverConfig.Supabase.APIKey,
		HTTP:    &http.Client{},
	}
}

// NewRequest applies the credential headers the remote service expects
// on every call, both the table API and the auth endpoint.
func (c *SupabaseClient) NewRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderSupabaseAPIKey, c.APIKey)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.APIKey)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	return req, nil
}

// RemoteError is the JSON error document the remote service returns on
// non-2xx responses.
type RemoteError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (code %s)", e.Message, e.Code)
	}
	return e.Message
}

// DecodeRemoteError drains a failed response body into a RemoteError,
// falling back to the raw body when it is not the expected JSON shape.
func DecodeRemoteError(resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{Message: fmt.Sprintf("remote service returned status %d", resp.StatusCode)}
	}

	remoteErr := new(RemoteError)
	if err := json.Unmarshal(bodyBytes, remoteErr); err != nil || remoteErr.Message == "" {
		return &RemoteError{Message: fmt.Sprintf("remote service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))}
	}
	return remoteErr
}
