package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cfr_notifier/internal/domain/entities"
	"cfr_notifier/internal/usecase/interfaces"
)

const MinGeocodeQueryLength = 3

var (
	ErrQueryTooShort       = errors.New("query too short")
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
)

// IGeocodeUseCase backs the address autocomplete of the booking form.
type IGeocodeUseCase interface {
	Search(ctx context.Context, query string) ([]entities.AddressCandidate, error)
}

type GeocodeUseCase struct {
	geocoder interfaces.IGeocoder
}

var _ IGeocodeUseCase = (*GeocodeUseCase)(nil)

func NewGeocodeUseCase(geocoder interfaces.IGeocoder) *GeocodeUseCase {
	return &GeocodeUseCase{geocoder: geocoder}
}

func (u *GeocodeUseCase) Search(ctx context.Context, query string) ([]entities.AddressCandidate, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinGeocodeQueryLength {
		return nil, ErrQueryTooShort
	}

	candidates, err := u.geocoder.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeocoderUnavailable, err)
	}
	if candidates == nil {
		candidates = []entities.AddressCandidate{}
	}
	return candidates, nil
}
