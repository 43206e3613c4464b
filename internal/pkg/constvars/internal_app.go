package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_BEARER_TOKEN_KEY         ContextKey = "bearer_token"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "principal"
)

const (
	REQUEST_ID_PREFIX = "KNSLN_PRTL_"
)

const (
	ResourceSessions      = "sessions"
	ResourceSlots         = "slots"
	ResourcePsychologists = "psychologists"
	ResourceNotifications = "notifications"
	ResourceProfile       = "profile"
	ResourceComplaints    = "complaints"
	ResourceApplications  = "applications"
	ResourceTransactions  = "transactions"
	ResourceTrends        = "trends"
	ResourceUnreadCount   = "notifications/count"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

const (
	AppPaginationUrlFormat = "%s?page=%d&limit=%d"
)

const (
	RedisKeyUnreadCountFormat = "portal:unread:%s"
)

var ImageAllowedProfilePictureFormats = []string{".jpg", ".jpeg", ".png", ".webp"}
