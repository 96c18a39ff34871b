package carrierlookup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	appconfig "cfr_notifier/internal/config"
	"cfr_notifier/internal/domain/carrier"
	"cfr_notifier/internal/infrastructure/httpclient"
	"cfr_notifier/internal/usecase/interfaces"
)

type lookupResponse struct {
	PhoneNumber          string `json:"phone_number"`
	LineTypeIntelligence *struct {
		CarrierName string `json:"carrier_name"`
		Type        string `json:"type"`
	} `json:"line_type_intelligence"`
}

// TwilioResolver resolves carriers from the static table first. Only a
// carrier value that is set but not in the table triggers a Twilio Lookup
// of the phone number; the returned carrier name is then matched against
// the table keys.
type TwilioResolver struct {
	table      *carrier.Table
	client     *httpclient.Client
	baseURL    string
	accountSID string
	authToken  string
}

var _ interfaces.ICarrierResolver = (*TwilioResolver)(nil)

func NewTwilioResolver(table *carrier.Table, client *httpclient.Client, cfg appconfig.CarrierLookupConfig) *TwilioResolver {
	return &TwilioResolver{
		table:      table,
		client:     client,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
	}
}

func (r *TwilioResolver) Resolve(ctx context.Context, carrierKey, phone string) (string, error) {
	if !carrier.IsProvided(carrierKey) {
		return "", carrier.ErrCarrierNotProvided
	}
	if domain, ok := r.table.Lookup(carrierKey); ok {
		return domain, nil
	}

	name, err := r.lookupCarrierName(ctx, phone)
	if err != nil {
		return "", err
	}
	key, ok := matchCarrier(r.table, name)
	if !ok {
		slog.InfoContext(ctx, "[carrierlookup] no gateway for looked-up carrier", "given", carrierKey, "carrier_name", name)
		return "", carrier.ErrUnsupportedCarrier
	}
	domain, _ := r.table.Lookup(key)
	slog.InfoContext(ctx, "[carrierlookup] resolved carrier", "given", carrierKey, "carrier_name", name, "key", key)
	return domain, nil
}

func (r *TwilioResolver) Supported() []string {
	return r.table.Supported()
}

func (r *TwilioResolver) lookupCarrierName(ctx context.Context, phone string) (string, error) {
	e164 := toE164(phone)
	if e164 == "" {
		return "", carrier.ErrUnsupportedCarrier
	}

	endpoint := fmt.Sprintf("%s/v2/PhoneNumbers/%s?Fields=line_type_intelligence", r.baseURL, url.PathEscape(e164))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("carrier lookup: build request: %w", err)
	}
	req.SetBasicAuth(r.accountSID, r.authToken)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("carrier lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", carrier.ErrUnsupportedCarrier
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("carrier lookup: unexpected status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("carrier lookup: decode response: %w", err)
	}
	if body.LineTypeIntelligence == nil {
		return "", nil
	}
	return body.LineTypeIntelligence.CarrierName, nil
}

// matchCarrier finds the first table key contained in a carrier name such
// as "Bell Mobility" or "Rogers Communications Canada".
func matchCarrier(table *carrier.Table, carrierName string) (string, bool) {
	name := strings.ToLower(carrierName)
	if name == "" {
		return "", false
	}
	for _, key := range table.Supported() {
		if strings.Contains(name, key) {
			return key, true
		}
	}
	return "", false
}

// toE164 assumes North American numbers.
func toE164(phone string) string {
	digits := carrier.DigitsOnly(phone)
	switch {
	case len(digits) == 10:
		return "+1" + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits
	default:
		return ""
	}
}
