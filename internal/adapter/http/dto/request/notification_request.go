package request

import (
	"strings"

	"cfr_notifier/internal/domain/entities"
)

// SendConfirmationRequest triggers a confirmation or status-update run.
type SendConfirmationRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
	Type          string `json:"type" binding:"required"`
}

func (r SendConfirmationRequest) ResolveAppointmentID() string {
	return strings.TrimSpace(r.AppointmentID)
}

func (r SendConfirmationRequest) ResolveType() entities.NotificationType {
	return entities.NotificationType(strings.TrimSpace(r.Type))
}
