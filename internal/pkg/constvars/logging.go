package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorKey          = "error"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"

	LoggingCallIDKey     = "call_id"
	LoggingCallKindKey   = "call_kind"
	LoggingCallTypeKey   = "call_type"
	LoggingClientIDKey   = "client_id"
	LoggingDateKey       = "date"
	LoggingStartTimeKey  = "start_time"
	LoggingCallCountKey  = "call_count"
	LoggingQueueKey      = "queue"
	LoggingEventKey      = "event"
	LoggingBucketKey     = "bucket"
	LoggingObjectNameKey = "object_name"
)
