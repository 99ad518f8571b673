package constvars

const (
	MongoCollectionOneTimeCalls   = "oneTimeCalls"
	MongoCollectionRecurringCalls = "recurringCalls"
)

const (
	RedisKeyBookingLock = "calls:booking:lock"
	RedisKeyAgendaLock  = "agenda:leader"
)

const (
	EventCallBooked  = "call.booked"
	EventCallDeleted = "call.deleted"
	EventAgendaDaily = "agenda.daily"
)

const (
	NotificationTitleCallBooked        = "Call Booked!"
	NotificationDescriptionCallBooked  = "Your %s call with %s has been scheduled."
	NotificationTitleCallDeleted       = "Call Deleted"
	NotificationDescriptionCallDeleted = "The call with %s has been removed."
	NotificationTitleDailyAgenda       = "Today's calls"
	NotificationDescriptionDailyAgenda = "%d call(s) scheduled for %s."
	ExportObjectNameFormat             = "agendas/%s.ics"
	ExportProductID                    = "-//healthcal//coaching calendar//EN"
	ExportEventSummaryFormat           = "%s call with %s"
	ExportEventUIDFormat               = "%s@%s"
	ExportLocalTimestampLayout         = "20060102T150405"
)
