package entities

import (
	"strings"
	"time"
)

// NotificationType selects which template set is rendered for an appointment.
//
// Confirmation and StatusUpdate are requested by the booking front-end;
// Reminder is only produced by the reminder sweep.
type NotificationType string

const (
	NotificationConfirmation NotificationType = "confirmation"
	NotificationStatusUpdate NotificationType = "statusUpdate"
	NotificationReminder     NotificationType = "reminder"
)

// IsRequestable reports whether the type may be requested through the API.
func (t NotificationType) IsRequestable() bool {
	return t == NotificationConfirmation || t == NotificationStatusUpdate
}

const DefaultAppointmentStatus = "Scheduled"

// Appointment is the booking document owned by the upstream booking system.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Ownership:
//   - Contact, scheduling and service fields are read-only here.
//   - Delivery bookkeeping (ConfirmationSent .. NeedsResend) and the reminder
//     flags are written by this service only, and only after an attempt
//     completes.
type Appointment struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Carrier  string `json:"carrier,omitempty"`

	Date            time.Time  `json:"date"`
	ReminderEnabled bool       `json:"reminderEnabled"`
	ReminderSent    bool       `json:"reminderSent"`
	ReminderSentAt  *time.Time `json:"reminderSentAt,omitempty"`

	Equipment string   `json:"equipment,omitempty"`
	Issue     string   `json:"issue,omitempty"`
	BasePrice *float64 `json:"basePrice,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Status    string   `json:"status,omitempty"`

	ConfirmationSent   bool             `json:"confirmationSent"`
	ConfirmationSentAt *time.Time       `json:"confirmationSentAt,omitempty"`
	LastStatusSent     NotificationType `json:"lastStatusSent,omitempty"`
	LastAttemptStatus  DeliveryStatus   `json:"lastAttemptStatus,omitempty"`
	NeedsResend        bool             `json:"needsResend"`
}

func (a Appointment) HasEmail() bool {
	return strings.TrimSpace(a.Email) != ""
}

func (a Appointment) HasPhone() bool {
	return strings.TrimSpace(a.Phone) != ""
}

// HasContact reports whether at least one delivery channel can be targeted.
func (a Appointment) HasContact() bool {
	return a.HasEmail() || a.HasPhone()
}

// StartsWithin reports whether the appointment date falls in [from, to].
// A missing date never matches.
func (a Appointment) StartsWithin(from, to time.Time) bool {
	if a.Date.IsZero() {
		return false
	}
	return !a.Date.Before(from) && !a.Date.After(to)
}

// DeliveryUpdate is the bookkeeping written after a confirmation run.
// It is applied as a single conditional update.
type DeliveryUpdate struct {
	ConfirmationSent   bool
	ConfirmationSentAt time.Time
	LastStatusSent     NotificationType
	LastAttemptStatus  DeliveryStatus
	NeedsResend        bool
}

// ReminderUpdate is the bookkeeping written after a reminder attempt.
type ReminderUpdate struct {
	ReminderSentAt    time.Time
	LastAttemptStatus DeliveryStatus
}
