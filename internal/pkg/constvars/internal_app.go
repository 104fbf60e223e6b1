package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CNSLTR_SVC_"
)

// JWTClaimSessionID is the claim carrying the redis session key inside
// the session JWT. The generator writes it and the parser reads it
// back, so both sides share this name.
const JWTClaimSessionID = "session_id"

const (
	URLParamPatientID      = "patient_id"
	URLParamMedicID        = "medic_id"
	URLParamConsultationID = "consultation_id"
)
