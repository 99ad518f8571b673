package constvars

type ContextKey string

const (
	ResourceClients  = "clients"
	ResourceCalendar = "calendar"
	ResourceCalls    = "calls"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HCAL_SVC_"
)

const (
	URLParamDate     = "date"
	URLParamCallID   = "callId"
	URLParamCallKind = "kind"
	URLParamClientID = "clientId"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
)
