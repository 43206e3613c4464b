package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":             "is required",
	"email":                "must be a valid email",
	"alphanum":             "must contain only alphanumeric characters",
	"min":                  "must be at least %s characters long",
	"max":                  "maximum at %s characters long",
	"eqfield":              "must match %s",
	"numeric":              "must be a number",
	"len":                  "must be %s characters long",
	"oneof":                "must be one of [%s]",
	"gt":                   "must be greater than %s",
	"gte":                  "must be greater than or equal to %s",
	"lt":                   "must be less than %s",
	"lte":                  "must be less than or equal to %s",
	"url":                  "must be a valid URL",
	"uuid":                 "must be a valid UUID",
	"file":                 "must be a valid file",
	"base64":               "must be a valid base64 string",
	"excludes":             "must not contain %s",
	"excludesall":          "must not contain any of [%s]",
	"excludesrune":         "must not contain the rune %s",
	"required_if":          "is required when %s is %s",
	"required_unless":      "is required unless %s is %s",
	"required_with":        "is required when %s is present",
	"required_with_all":    "is required when all of [%s] are present",
	"required_without":     "is required when %s is not present",
	"required_without_all": "is required when none of [%s] are present",
	"portal_role":          "must be one of user, psychologist or admin",
	"e164":                 "must be a phone number in international format",
	"datetime":             "must be a date in %s format",
	"session_status":       "must be a known session status",
	"complaint_status":     "must be a known complaint status",
	"application_status":   "must be a known application status",
	"application_decision": "must be either approve or reject",
	"transaction_status":   "must be a known transaction status",
	"psychologist_sort":    "must be a known sort option",
	"trend_interval":       "must be one of day, month or year",
	"gender":               "must be either male or female",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":                  true,
	"max":                  true,
	"len":                  true,
	"eqfield":              true,
	"gt":                   true,
	"gte":                  true,
	"lt":                   true,
	"lte":                  true,
	"excludes":             true,
	"oneof":                true,
	"datetime":             true,
	"excludesrune":         true,
	"required_if":          true,
	"required_unless":      true,
	"required_with":        true,
	"required_with_all":    true,
	"required_without":     true,
	"required_without_all": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientServiceUnreachable            = "we can't reach the booking service right now, please try again"
	ErrClientPageOutOfRange                = "the requested page does not exist"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientStorageUnavailable            = "documents are not available right now"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotBuildMultipartForm = "cannot build multipart form body"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevRoleTypeDoesntMatch      = "invalid role type, request done by user with different role"
	ErrDevUnknownPictureVariant    = "unknown profile picture variant %T"

	// Upstream messages
	ErrDevUpstreamResponse        = "booking backend answered %s with status %d"
	ErrDevUpstreamDecodeResponse  = "failed to decode %s response from booking backend"
	ErrDevUpstreamReadResponse    = "failed to read %s response body from booking backend"
	ErrDevUpstreamThrottleAborted = "outbound throttle wait aborted"

	// Listing messages
	ErrDevPageOutOfRange  = "requested page %d is out of range"
	ErrDevInvalidPageSize = "requested page size %d must be greater than zero"
	ErrDevNilListFetcher  = "list fetcher is nil"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthMissingPrincipal      = "principal missing from request context"

	// Minio messages
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"

	// RabbitMQ messages
	ErrDevRabbitMQConsume = "failed to consume messages from queue %s"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerNotFound         = "resource not found"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)
