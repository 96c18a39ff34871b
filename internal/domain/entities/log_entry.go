package entities

import "time"

type LogType string

const (
	LogTypeConfirmation LogType = "confirmation"
	LogTypeReminder     LogType = "reminder"
	LogTypeSMS          LogType = "sms"
	LogTypeWarning      LogType = "warning"
)

// LogEntry is the append-only audit record of a delivery run.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Entries are created once per workflow invocation (or per flagged
// condition) and never updated or deleted.
type LogEntry struct {
	ID            string         `json:"id"`
	Type          LogType        `json:"type"`
	AppointmentID string         `json:"appointmentId,omitempty"`
	EmailSent     bool           `json:"emailSent"`
	SMSSent       bool           `json:"smsSent"`
	Status        DeliveryStatus `json:"status,omitempty"`
	SMSError      *string        `json:"smsError"`
	Message       string         `json:"message,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}
