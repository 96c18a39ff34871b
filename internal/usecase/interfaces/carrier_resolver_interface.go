package interfaces

import "context"

//go:generate mockgen -source=carrier_resolver_interface.go -destination=mocks/carrier_resolver_mock.go -package=mock_interfaces

// ICarrierResolver turns a customer's carrier choice into an email-to-SMS
// gateway domain.
//
// Implementations return carrier.ErrCarrierNotProvided for empty/"unknown"
// carriers and carrier.ErrUnsupportedCarrier when no gateway matches.
type ICarrierResolver interface {
	Resolve(ctx context.Context, carrierKey, phone string) (gatewayDomain string, err error)
	Supported() []string
}
