package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetClientsSuccessMessage  = "successfully retrieved clients"
	GetClientSuccessMessage   = "successfully retrieved client"
	GetDaySuccessMessage      = "successfully retrieved calendar day"
	GetCallsSuccessMessage    = "successfully retrieved calls"
	CallBookedSuccessMessage  = "call booked successfully"
	CallDeletedSuccessMessage = "call deleted successfully"
	DayExportedSuccessMessage = "calendar day exported successfully"
)
