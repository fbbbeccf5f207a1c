package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "CPN_SVC_"
)

// Roles carried by the remote token. extractRole folds raw authorities
// (authorities/roles/role claims, any casing) into these three.
const (
	RoleAdmin        = "ADMIN"
	RoleDoctor       = "DOCTOR"
	RoleReceptionist = "RECEPTIONIST"
)

const (
	AntecedentTypeObstetrics = "OBSTETRICS"
	AntecedentTypeGyneco     = "GYNECO"
	AntecedentTypeGeneral    = "GENERAL"
)

const (
	ResourceDossier    = "dossier"
	ResourcePatient    = "patient"
	ResourceAntecedent = "antecedent"
	ResourceCpn        = "cpn"
	ResourceUser       = "users"
	ResourceRole       = "roles"
	ResourceAuth       = "auth"
)

const (
	RedisKeySessionPrefix = "session:"
)

const (
	URLParamDossierUniqueID = "uniqueID"
	URLParamAntecedentID    = "antecedentID"
	URLParamCpnID           = "cpnID"
	URLParamUserID          = "userID"

	URLQueryParamSearch         = "search"
	URLQueryParamAntecedentType = "antecedentType"
	URLQueryParamPatientID      = "patientID"
	URLQueryParamLMP            = "lmp"
)

const (
	// DossierIDPrefix matches the records API generator ("DOS-" + millis).
	DossierIDPrefix = "DOS-"

	ISODateLayout = "2006-01-02"
)
