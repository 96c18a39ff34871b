package interfaces

import (
	"cfr_notifier/internal/domain/entities"
	"context"
)

//go:generate mockgen -source=log_repository_interface.go -destination=mocks/log_repository_mock.go -package=mock_interfaces

// ILogRepository appends audit entries. Entries are never updated.

type ILogRepository interface {
	Append(ctx context.Context, entry entities.LogEntry) (entities.LogEntry, error)
}
