package repository

import (
	"time"

	"cfr_notifier/internal/domain/entities"
)

func formatOptionalTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return formatTime(*t)
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:                 a.ID,
		Customer:           a.Customer,
		Email:              a.Email,
		Phone:              a.Phone,
		Carrier:            a.Carrier,
		Date:               formatTime(a.Date),
		ReminderEnabled:    a.ReminderEnabled,
		ReminderSent:       a.ReminderSent,
		ReminderSentAt:     formatOptionalTime(a.ReminderSentAt),
		Equipment:          a.Equipment,
		Issue:              a.Issue,
		BasePrice:          a.BasePrice,
		Price:              a.Price,
		Status:             a.Status,
		ConfirmationSent:   a.ConfirmationSent,
		ConfirmationSentAt: formatOptionalTime(a.ConfirmationSentAt),
		LastStatusSent:     string(a.LastStatusSent),
		LastAttemptStatus:  string(a.LastAttemptStatus),
		NeedsResend:        a.NeedsResend,
	}
}
