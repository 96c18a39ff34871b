package interfaces

import (
	"cfr_notifier/internal/domain/entities"
	"context"
	"time"
)

//go:generate mockgen -source=appointment_repository_interface.go -destination=mocks/appointment_repository_mock.go -package=mock_interfaces

// IAppointmentRepository abstracts the appointment document store.
//
// The notifier must be able to:
//   - load one appointment by id (zero value when absent)
//   - list reminder candidates due inside a time window
//   - write confirmation bookkeeping in a single update
//   - flag an appointment as reminded so the sweep never re-selects it

type IAppointmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListDueForReminder(ctx context.Context, from, to time.Time) ([]entities.Appointment, error)
	UpdateDelivery(ctx context.Context, id string, update entities.DeliveryUpdate) error
	MarkReminderSent(ctx context.Context, id string, update entities.ReminderUpdate) error
}
