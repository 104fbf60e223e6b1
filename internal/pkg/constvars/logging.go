package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingEmailKey          = "email"
	LoggingPatientIDKey      = "patient_id"
	LoggingMedicIDKey        = "medic_id"
	LoggingConsultationIDKey = "consultation_id"
	LoggingUserIDKey         = "user_id"
	LoggingSessionIDKey      = "session_id"
	LoggingRowCountKey       = "row_count"
)
