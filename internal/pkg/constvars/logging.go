package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingSessionIDKey = "session_id"
	LoggingPatientIDKey = "patient_id"
	LoggingDossierIDKey = "dossier_id"
	LoggingCpnIDKey     = "cpn_id"
	LoggingFieldTypeKey = "field_type"
	LoggingBlockCodeKey = "block_code"
)
