package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"alphanum":      "must contain only alphanumeric characters",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"oneof":         "must be one of [%s]",
	"uuid":          "must be a valid UUID",
	"password":      "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"document_type": "must be a valid identification document type",
	"civil_state":   "must be a valid civil state",
	"sex":           "must be either 'Male' or 'Female'",
	"gender":        "must be a valid gender",
	"specialty":     "must be a valid medical specialty",
	"date":          "must be a date in YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientInvalidCredentials            = "invalid email or password"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientMedicNotFound                 = "medic not found"
	ErrClientConsultationNotFound          = "consultation not found"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevValidationFailed             = "request validation failed"
	ErrDevURLParamIDValidationFailed   = "invalid %s url parameter"
	ErrDevCannotParseJSON              = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON            = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest            = "failed to create HTTP request"
	ErrDevSendHTTPRequest              = "failed to send HTTP request"
	ErrDevDecodeResponse               = "failed to decode %s response body"
	ErrDevRemoteQueryFailed            = "remote query on %s table failed"
	ErrDevRemoteInsertFailed           = "remote insert into %s table failed"
	ErrDevRemoteUpdateFailed           = "remote update on %s table failed"
	ErrDevRemoteRowNotFound            = "no %s row matched the requested filter"
	ErrDevRemoteSignUpFailed           = "remote auth provider rejected the sign up"
	ErrDevRemoteSignInFailed           = "remote auth provider rejected the credentials"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevAuthTokenMissing             = "authorization token is missing"
	ErrDevAuthTokenInvalid             = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired    = "authorization token is invalid or already expired"
	ErrDevAuthGenerateToken            = "failed to generate token"
	ErrDevAuthSigningMethod            = "unexpected token signing method"
	ErrDevRedisSetFailed               = "failed to set value to redis"
	ErrDevRedisGetFailed               = "failed to get value of key '%s' from redis"
	ErrDevRedisDeleteFailed            = "failed to delete value from redis"
	ErrDevSessionNotFound              = "session data not found"
	ErrDevEmailRequiredForProfileFetch = "email is required to fetch a medic profile"
	ErrDevConsultationFilterRequired   = "consultation listing requires exactly one of medic_id or patient_id"
)
