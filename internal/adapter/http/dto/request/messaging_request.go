package request

type SendEmailRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Body      string `json:"body" binding:"required"`
}

type SendSMSRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Carrier     string `json:"carrier" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// ClientLogRequest is a front-end audit line. Both fields are optional.
type ClientLogRequest struct {
	Action string `json:"action"`
	User   string `json:"user"`
}

const (
	defaultLogAction = "unknown action"
	defaultLogUser   = "anonymous"
)

func (r ClientLogRequest) ResolveAction() string {
	if r.Action == "" {
		return defaultLogAction
	}
	return r.Action
}

func (r ClientLogRequest) ResolveUser() string {
	if r.User == "" {
		return defaultLogUser
	}
	return r.User
}
