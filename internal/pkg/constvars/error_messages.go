package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must be a valid date (yyyy-mm-dd)",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "your session is invalid or has expired, please log in again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientRecordsUnavailable            = "the records service cannot be reached at the moment"
	ErrClientResourceNotFound              = "the requested resource was not found"
	ErrClientFormValidation                = "some fields are invalid, please review the form"
)

// Error messages for developers
const (
	ErrDevValidationFailed         = "Input validation failed"
	ErrDevCannotParseJSON          = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON        = "Failed to marshal value to JSON"
	ErrDevURLParamValidationFailed = "URL parameter %s is missing or invalid"

	ErrDevAuthTokenMissing           = "Authorization token is missing"
	ErrDevAuthTokenInvalid           = "Authorization token is invalid"
	ErrDevAuthSigningMethod          = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken          = "Failed to generate session JWT"
	ErrDevAuthInvalidSession         = "Session not found or expired"
	ErrDevAuthRemoteTokenUndecodable = "Remote bearer token cannot be decoded"
	ErrDevAuthRoleNotRecognized      = "No known role found in token authorities"
	ErrDevAuthRoleNotAllowed         = "Session role is not allowed on this route"

	ErrDevCreateHTTPRequest   = "Failed to create HTTP request to records API"
	ErrDevSendHTTPRequest     = "Failed to send HTTP request to records API"
	ErrDevDecodeResponse      = "Failed to decode records API response for %s"
	ErrDevRecordsStatus       = "Records API returned status %d for %s"
	ErrDevRecordsUnauthorized = "Records API rejected the bearer token"
	ErrDevOutboundLimiter     = "Outbound limiter wait aborted"

	ErrDevRedisSetData    = "Failed to set data to redis"
	ErrDevRedisGetData    = "Failed to get data from redis"
	ErrDevRedisDeleteData = "Failed to delete data from redis"

	ErrDevMongoInsertDocument = "Failed to insert document to mongo"
	ErrDevMongoFindDocument   = "Failed to find document in mongo"

	ErrDevQueuePublishMessage = "Failed to publish message to queue %s"

	ErrDevFormSchemaLoad     = "Failed to load antecedent block definitions"
	ErrDevFormNotSubmittable = "Form has validation errors and cannot be submitted"
	ErrDevFormWrongState     = "Form operation not allowed in current state"
)
