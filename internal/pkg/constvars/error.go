package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"oneof":     "must be one of %s",
	"call_type": "must be either onboarding or follow-up",
	"max":       "maximum at %s characters long",
	"datetime":  "must be an RFC3339 timestamp",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"max":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientBookingConflict               = "This time slot overlaps with an existing call for %s."
	ErrClientBookingInProgress             = "another booking is being processed, please retry"
	ErrClientBookingSaveFailed             = "Could not save the booking. Please try again."
	ErrClientBookingDeleteFailed           = "Could not delete the booking. Please try again."
	ErrClientCallsLoadFailed               = "Could not fetch bookings from the database. Please check your connection."
	ErrClientCallNotFound                  = "the call does not exist"
	ErrClientClientNotFound                = "the client does not exist"
	ErrClientSlotNotOnGrid                 = "the requested time is not a bookable slot"
	ErrClientInvalidCallKind               = "call kind must be one-time or recurring"
	ErrClientInvalidDate                   = "date must use the YYYY-MM-DD format"
	ErrClientExportFailed                  = "Could not export the calendar day. Please try again."
	ErrClientTooManyRequests               = "too many requests, you are blocked temporarily"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevValidationFailed           = "validation failed"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevURLParamValidationFailed   = "URL param %s validation failed"
	ErrDevBookingConflict            = "booking overlaps existing call"
	ErrDevBookingLockNotAcquired     = "booking lock is held by another request"
	ErrDevSlotNotOnGrid              = "start time is not a slot grid point"
	ErrDevClientNotFound             = "client not found in roster"
	ErrDevCallNotFound               = "call document not found"
	ErrDevInvalidCallKind            = "unknown call kind"
	ErrDevInvalidTimeOfDay           = "invalid time of day"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"
	ErrDevRedisGetNoData             = "failed to get data from redis with key %s"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevTooManyRequests            = "rate limit exceeded"
)
