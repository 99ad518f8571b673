package requests

type BookCall struct {
	ClientID  string `json:"clientId" validate:"required,max=64"`
	CallType  string `json:"callType" validate:"required,call_type"`
	StartTime string `json:"startTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}
