package interfaces

import (
	"cfr_notifier/internal/domain/entities"
	"context"
)

//go:generate mockgen -source=geocoder_interface.go -destination=mocks/geocoder_mock.go -package=mock_interfaces

// IGeocoder abstracts the third-party address search used by the booking form.
type IGeocoder interface {
	Search(ctx context.Context, query string) ([]entities.AddressCandidate, error)
}
