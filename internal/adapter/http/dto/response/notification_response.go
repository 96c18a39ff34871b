package response

import (
	"cfr_notifier/internal/usecase"
)

const NoRemindersMessage = "No reminders to send."

type ConfirmationResponse struct {
	Success  bool     `json:"success"`
	Status   string   `json:"status"`
	Warnings []string `json:"warnings,omitempty"`
}

func FromConfirmationResult(r usecase.ConfirmationResult) ConfirmationResponse {
	return ConfirmationResponse{
		Success:  true,
		Status:   string(r.Status),
		Warnings: r.Warnings,
	}
}

type ReminderResult struct {
	AppointmentID string `json:"appointmentId"`
	EmailSent     bool   `json:"emailSent"`
	SMSSent       bool   `json:"smsSent"`
	Status        string `json:"status"`
}

// RemindersResponse carries either Results or, when nothing was due, Message.
type RemindersResponse struct {
	Success bool             `json:"success"`
	Results []ReminderResult `json:"results,omitempty"`
	Message string           `json:"message,omitempty"`
}

func FromReminderSweep(r usecase.ReminderSweepResult) RemindersResponse {
	if len(r.Processed) == 0 {
		return RemindersResponse{Success: true, Message: NoRemindersMessage}
	}
	out := RemindersResponse{Success: true, Results: make([]ReminderResult, 0, len(r.Processed))}
	for _, p := range r.Processed {
		out.Results = append(out.Results, ReminderResult{
			AppointmentID: p.AppointmentID,
			EmailSent:     p.EmailSent,
			SMSSent:       p.SMSSent,
			Status:        string(p.Status),
		})
	}
	return out
}
